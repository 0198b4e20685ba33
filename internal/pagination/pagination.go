package pagination

import "strconv"

// Page is a bounded window over an ordered result set. Number is 1-based and
// always valid: requests for pages outside the range are clamped, never
// rejected.
type Page struct {
	Number      int   `json:"number"`
	Size        int   `json:"size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// New resolves a raw page query parameter against the total item count.
// A missing, non-numeric or out-of-range value clamps to the nearest valid
// page, so every input yields a usable window.
func New(raw string, size int, total int64) Page {
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:      number,
		Size:        size,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}

// Offset is the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
