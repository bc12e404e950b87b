package params

import "go-admin-console/internal/filter"

// PageSizes is the fixed set of accepted page sizes.
var PageSizes = []int{10, 25, 50, 100}

func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

type ListRequest struct {
	Page     int
	PageSize int
	Applied  filter.State
}
