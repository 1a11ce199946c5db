package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 10
	// MaxPageSize caps how many rows any page query can request.
	MaxPageSize = 100
)

// Params holds page-number pagination inputs from controllers.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps the parameters to sane values.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the normalized page.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Limit returns the normalized page size.
func (p Params) Limit() int {
	return p.Normalize().PageSize
}

// Page wraps a result set with its pagination metadata.
type Page[T any] struct {
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	HasNext  bool  `json:"has_next"`
	HasPrev  bool  `json:"has_prev"`
	Results  []T   `json:"results"`
}

// NewPage assembles pagination metadata from the total row count.
func NewPage[T any](results []T, total int64, params Params) Page[T] {
	n := params.Normalize()
	if results == nil {
		results = []T{}
	}
	return Page[T]{
		Count:    total,
		Page:     n.Page,
		PageSize: n.PageSize,
		HasNext:  int64(n.Page*n.PageSize) < total,
		HasPrev:  n.Page > 1,
		Results:  results,
	}
}
