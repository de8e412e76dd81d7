package ui

import (
	"menuview/internal/menu"
)

// Op names a mutation the view can perform.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// ModalState is closed -> open (user) -> closed (close or successful submit).
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

// Success messages shown after a mutation.
const (
	MsgCreated = "Menu created successfully"
	MsgUpdated = "Menu updated successfully"
	MsgDeleted = "Menu deleted successfully"
)

// Notice is the success/error pair for one operation.
type Notice struct {
	Success string
	Error   string
}

// MenuState is the whole view state of the menu page. It is a value: every
// transition returns a new MenuState and leaves the receiver untouched. Items
// and Deleting are never modified in place.
type MenuState struct {
	Items     []menu.Item
	Page      menu.PageState
	Loading   bool
	ListSeq   uint64 // sequence number of the latest list request
	ListError string

	Create      ModalState
	Update      ModalState
	CreateDraft menu.Draft
	UpdateDraft menu.Draft
	PriceError  string

	CreateSubmitting bool
	UpdateSubmitting bool
	Deleting         []menu.ID

	CreateNotice Notice
	UpdateNotice Notice
	DeleteNotice Notice
}

// NewMenuState is the state before the first fetch.
func NewMenuState(perPage int) MenuState {
	return MenuState{Page: menu.FirstPage(perPage)}
}

// RequestPage records that page is being fetched and bumps the list sequence.
func (s MenuState) RequestPage(page, perPage int) MenuState {
	if page < 1 {
		page = 1
	}
	if perPage > 0 {
		s.Page.PerPage = perPage
	}
	s.Page.Page = page
	s.Loading = true
	s.ListSeq++
	s.ListError = ""
	return s
}

// PageLoaded applies a list response. Items and pagination come verbatim from
// the server. Responses for an older request are ignored (ok=false).
func (s MenuState) PageLoaded(seq uint64, p menu.Page) (MenuState, bool) {
	if seq != s.ListSeq {
		return s, false
	}
	s.Items = p.Items
	s.Page = p.State
	s.Loading = false
	s.ListError = ""
	return s, true
}

// PageFailed records a list failure for the latest request.
func (s MenuState) PageFailed(seq uint64, message string) (MenuState, bool) {
	if seq != s.ListSeq {
		return s, false
	}
	s.Loading = false
	s.ListError = message
	return s, true
}

// NextPage moves to the following page if the server reported one.
func (s MenuState) NextPage() (MenuState, bool) {
	next, ok := s.Page.Next()
	if !ok {
		return s, false
	}
	return s.RequestPage(next.Page, next.PerPage), true
}

// PrevPage moves to the previous page if the server reported one.
func (s MenuState) PrevPage() (MenuState, bool) {
	prev, ok := s.Page.Prev()
	if !ok {
		return s, false
	}
	return s.RequestPage(prev.Page, prev.PerPage), true
}

// OpenCreate opens the create modal with an empty draft. A create still in
// flight keeps CreateSubmitting set until its response arrives.
func (s MenuState) OpenCreate() MenuState {
	s.Create = ModalOpen
	s.CreateDraft = menu.Draft{}
	s.CreateNotice.Error = ""
	s.PriceError = ""
	return s
}

// CloseCreate discards the create draft.
func (s MenuState) CloseCreate() MenuState {
	s.Create = ModalClosed
	s.CreateDraft = menu.Draft{}
	s.PriceError = ""
	return s
}

// OpenUpdate seeds the update draft from it and opens the update modal.
func (s MenuState) OpenUpdate(it menu.Item) MenuState {
	s.Update = ModalOpen
	s.UpdateDraft = menu.DraftFromItem(it)
	s.UpdateNotice.Error = ""
	s.PriceError = ""
	return s
}

// CloseUpdate discards the update draft.
func (s MenuState) CloseUpdate() MenuState {
	s.Update = ModalClosed
	s.UpdateDraft = menu.Draft{}
	s.PriceError = ""
	return s
}

// SubmitCreate validates d. ok is true only when a request should be sent:
// the price is valid and no create is already in flight.
func (s MenuState) SubmitCreate(d menu.Draft) (next MenuState, p menu.Payload, ok bool) {
	if s.CreateSubmitting {
		return s, menu.Payload{}, false
	}
	s.CreateDraft = d
	s.PriceError = ""
	p, err := d.Payload()
	if err != nil {
		s.PriceError = err.Error()
		return s, menu.Payload{}, false
	}
	s.CreateSubmitting = true
	return s, p, true
}

// CreateSucceeded closes the create modal and reports success. Only the
// latest mutation's success message is kept.
func (s MenuState) CreateSucceeded() MenuState {
	s = s.CloseCreate().clearSuccess()
	s.CreateSubmitting = false
	s.CreateNotice = Notice{Success: MsgCreated}
	return s
}

// CreateFailed keeps the modal open and shows the server's message.
func (s MenuState) CreateFailed(message string) MenuState {
	s.CreateSubmitting = false
	s.CreateNotice = Notice{Error: message}
	return s
}

// SubmitUpdate is SubmitCreate for the update modal. The draft keeps its target id.
func (s MenuState) SubmitUpdate(d menu.Draft) (next MenuState, p menu.Payload, ok bool) {
	if s.UpdateSubmitting {
		return s, menu.Payload{}, false
	}
	s.UpdateDraft = d
	s.PriceError = ""
	p, err := d.Payload()
	if err != nil {
		s.PriceError = err.Error()
		return s, menu.Payload{}, false
	}
	s.UpdateSubmitting = true
	return s, p, true
}

// UpdateSucceeded closes the update modal and reports success.
func (s MenuState) UpdateSucceeded() MenuState {
	s = s.CloseUpdate().clearSuccess()
	s.UpdateSubmitting = false
	s.UpdateNotice = Notice{Success: MsgUpdated}
	return s
}

// UpdateFailed keeps the modal open and shows the server's message.
func (s MenuState) UpdateFailed(message string) MenuState {
	s.UpdateSubmitting = false
	s.UpdateNotice = Notice{Error: message}
	return s
}

// StartDelete marks id as being deleted. ok is false if it already is.
func (s MenuState) StartDelete(id menu.ID) (MenuState, bool) {
	if s.IsDeleting(id) {
		return s, false
	}
	s.Deleting = append(append([]menu.ID(nil), s.Deleting...), id)
	return s, true
}

// IsDeleting reports whether a delete for id is in flight.
func (s MenuState) IsDeleting(id menu.ID) bool {
	for _, d := range s.Deleting {
		if d == id {
			return true
		}
	}
	return false
}

// DeleteSucceeded reports success and clears any earlier delete error.
func (s MenuState) DeleteSucceeded(id menu.ID) MenuState {
	s = s.clearSuccess()
	s.Deleting = without(s.Deleting, id)
	s.DeleteNotice = Notice{Success: MsgDeleted}
	return s
}

// DeleteFailed shows the server's message and clears the previous success.
func (s MenuState) DeleteFailed(id menu.ID, message string) MenuState {
	s.Deleting = without(s.Deleting, id)
	s.DeleteNotice = Notice{Error: message}
	return s
}

// Item returns the cached item with id.
func (s MenuState) Item(id menu.ID) (menu.Item, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return menu.Item{}, false
}

func (s MenuState) clearSuccess() MenuState {
	s.CreateNotice.Success = ""
	s.UpdateNotice.Success = ""
	s.DeleteNotice.Success = ""
	return s
}

func without(ids []menu.ID, id menu.ID) []menu.ID {
	out := make([]menu.ID, 0, len(ids))
	for _, d := range ids {
		if d != id {
			out = append(out, d)
		}
	}
	return out
}
