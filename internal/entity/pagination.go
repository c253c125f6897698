package entity

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type Page struct {
	Page  int
	Limit int
}

// Normalize clamps page to >= 1 and limit to [1, MaxPageLimit].
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}

	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}

	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}

	return p
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func NewPagination(p Page, total int) Pagination {
	p = p.Normalize()

	pages := total / p.Limit
	if total%p.Limit != 0 {
		pages++
	}

	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: pages,
	}
}

// Paginate returns the slice of items that falls on page p.
func Paginate[T any](items []T, p Page) []T {
	p = p.Normalize()

	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}

	end := min(start+p.Limit, len(items))

	return items[start:end]
}
