package params

type WalletAdjustPreview struct {
	UserID           string  `json:"user_id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Type             string  `json:"type"`
	Amount           float64 `json:"amount"`
	CurrentBalance   float64 `json:"current_balance"`
	ProjectedBalance float64 `json:"projected_balance"`
	// RequiresConfirmation is set on the dry-run response returned when the
	// request did not carry confirm=true.
	RequiresConfirmation bool `json:"requires_confirmation"`
}

type WalletAdjustResult struct {
	UserID     string  `json:"user_id"`
	Email      string  `json:"email"`
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	NewBalance float64 `json:"new_balance"`
}

type KycDecisionResult struct {
	SubmissionID string `json:"submission_id"`
	Status       string `json:"status"`
}

type NotificationResult struct {
	Topic string `json:"topic"`
	Title string `json:"title"`
}
