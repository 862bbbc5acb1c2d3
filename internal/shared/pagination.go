package shared

import "fmt"

// Pagination describes the visible window into a paginated listing.
type Pagination struct {
	Size  int
	Page  int
	Total int
}

// NewPagination computes a pagination window. Size and page must both be at
// least 1; the transport validator normally rejects these earlier, but the
// calculator guards against direct calls.
func NewPagination(size, page, total int) (Pagination, error) {
	if size < 1 {
		return Pagination{}, fmt.Errorf("%w: size must be >= 1", ErrInvalidArgument)
	}
	if page < 1 {
		return Pagination{}, fmt.Errorf("%w: page must be >= 1", ErrInvalidArgument)
	}
	if total < 0 {
		return Pagination{}, fmt.Errorf("%w: total must be >= 0", ErrInvalidArgument)
	}
	return Pagination{Size: size, Page: page, Total: total}, nil
}

// FromIdx returns the inclusive start of the window, clamped to [0, Total].
func (p Pagination) FromIdx() int {
	from := (p.Page - 1) * p.Size
	if from > p.Total {
		return p.Total
	}
	return from
}

// ToIdx returns the exclusive end of the window, clamped to [0, Total].
func (p Pagination) ToIdx() int {
	to := p.FromIdx() + p.Size
	if to > p.Total {
		return p.Total
	}
	return to
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether more items exist beyond this window.
func (p Pagination) HasNext() bool {
	return p.ToIdx() < p.Total
}

// PrevPage returns the window one page back.
func (p Pagination) PrevPage() Pagination {
	return Pagination{Size: p.Size, Page: p.Page - 1, Total: p.Total}
}

// NextPage returns the window one page forward.
func (p Pagination) NextPage() Pagination {
	return Pagination{Size: p.Size, Page: p.Page + 1, Total: p.Total}
}
