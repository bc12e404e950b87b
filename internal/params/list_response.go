package params

type ListResponse struct {
	Items       []map[string]any `json:"items"`
	CurrentPage int              `json:"current_page"`
	TotalPages  int              `json:"total_pages"`
	PageSize    int              `json:"page_size"`
	// Message carries the "no records found" description for empty results.
	Message string `json:"message,omitempty"`
	// Stale marks a response served from cache after a failed refresh.
	Stale bool `json:"stale,omitempty"`
}

type ExportResult struct {
	Filename string `json:"filename"`
	Content  string `json:"-"`
	Rows     int    `json:"rows"`
}
