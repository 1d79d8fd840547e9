package domain

// Page selects a window of a list. The zero value selects everything.
type Page struct {
	Number int
	Size   int
}

func (p Page) Enabled() bool {
	return p.Size > 0
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Paginate describes where p sits in a list of total items.
// It returns nil when p is not enabled.
func Paginate(p Page, total int64) *Pagination {
	if !p.Enabled() {
		return nil
	}
	pages := int((total + int64(p.Size) - 1) / int64(p.Size))
	return &Pagination{
		Page:       max(p.Number, 1),
		PageSize:   p.Size,
		Total:      total,
		TotalPages: pages,
	}
}
