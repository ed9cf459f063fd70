package models

import "userpanel/internal/entities"

// PageMeta holds pagination metadata for a listing page
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// HasPrev reports whether a previous page exists
func (m PageMeta) HasPrev() bool {
	return m.CurrentPage > 1
}

// HasNext reports whether a next page exists
func (m PageMeta) HasNext() bool {
	return m.CurrentPage < m.LastPage
}

// PrevPage returns the previous page number (valid only when HasPrev)
func (m PageMeta) PrevPage() int {
	return m.CurrentPage - 1
}

// NextPage returns the next page number (valid only when HasNext)
func (m PageMeta) NextPage() int {
	return m.CurrentPage + 1
}

// PageNumbers returns all page numbers for rendering pagination links
func (m PageMeta) PageNumbers() []int {
	pages := make([]int, 0, m.LastPage)
	for p := 1; p <= m.LastPage; p++ {
		pages = append(pages, p)
	}
	return pages
}

// UserPage represents one page of the user listing
type UserPage struct {
	Users []*entities.User `json:"users"`
	Meta  PageMeta         `json:"meta"`
}
