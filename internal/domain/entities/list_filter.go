package entities

import "strings"

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// ListFilter narrows admin listings. A zero PageSize with All set returns every row.
type ListFilter struct {
	Status string
	Query  string
	Page   int
	// PageSize is clamped to MaxPageSize.
	PageSize int
	All      bool
}

func (f ListFilter) Normalize() ListFilter {
	f.Status = strings.TrimSpace(f.Status)
	f.Query = strings.TrimSpace(f.Query)
	if f.All {
		f.Page, f.PageSize = 1, 0
		return f
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	return f
}

func (f ListFilter) Offset() int {
	if f.All || f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Matches applies the Query substring test against name and contact.
func (f ListFilter) Matches(name, contact string) bool {
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(name), q) || strings.Contains(contact, f.Query)
}
