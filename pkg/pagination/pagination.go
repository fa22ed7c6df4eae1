package pagination

// PageSize is fixed across every paginated listing.
const PageSize = 12

// Page is the envelope returned by paginated endpoints.
type Page struct {
	Count      int64       `json:"count"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
	Results    interface{} `json:"results"`
}

// Normalize clamps a requested page number to something usable.
func Normalize(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Offset returns the row offset for a page number.
func Offset(page int) int {
	return (Normalize(page) - 1) * PageSize
}

// New builds the response envelope for one page of results.
func New(count int64, page int, results interface{}) Page {
	totalPages := int(count) / PageSize
	if int(count)%PageSize != 0 {
		totalPages++
	}
	return Page{
		Count:      count,
		Page:       Normalize(page),
		PageSize:   PageSize,
		TotalPages: totalPages,
		Results:    results,
	}
}
