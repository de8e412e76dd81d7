package menu

// DefaultPerPage matches the page size the menu page has always requested.
const DefaultPerPage = 3

// PageState mirrors the server's pagination cursors.
// Total is -1 until the first successful fetch.
type PageState struct {
	Page    int
	PerPage int
	Total   int
	HasPrev bool
	HasNext bool
}

// FirstPage is the state before anything has been fetched.
func FirstPage(perPage int) PageState {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return PageState{Page: 1, PerPage: perPage, Total: -1}
}

// TotalKnown reports whether the server has told us the total yet.
func (p PageState) TotalKnown() bool { return p.Total >= 0 }

// Next returns the state for the following page, or false when the server
// reported no next page.
func (p PageState) Next() (PageState, bool) {
	if !p.HasNext {
		return p, false
	}
	p.Page++
	return p, true
}

// Prev returns the state for the previous page, or false when the server
// reported no previous page.
func (p PageState) Prev() (PageState, bool) {
	if !p.HasPrev || p.Page <= 1 {
		return p, false
	}
	p.Page--
	return p, true
}

// Page is one list response: the items plus the canonical cursors.
type Page struct {
	Items []Item
	State PageState
}
