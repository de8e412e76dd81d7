package ui

import (
	"menuview/internal/menu"
)

// PageLoadedMsg carries a successful list response. Seq identifies the request;
// MenuView drops responses that are not for its latest request.
type PageLoadedMsg struct {
	Seq  uint64
	Page menu.Page
}

// PageLoadFailedMsg is sent when a list request fails.
type PageLoadFailedMsg struct {
	Seq uint64
	Err error
}

// MenuCreatedMsg is sent when POST /menu succeeds.
type MenuCreatedMsg struct {
	Item menu.Item
}

// MenuCreateFailedMsg is sent when POST /menu fails.
type MenuCreateFailedMsg struct {
	Err error
}

// MenuUpdatedMsg is sent when PUT /menu/{id} succeeds.
type MenuUpdatedMsg struct {
	Item menu.Item
}

// MenuUpdateFailedMsg is sent when PUT /menu/{id} fails.
type MenuUpdateFailedMsg struct {
	ID  menu.ID
	Err error
}

// MenuDeletedMsg is sent when DELETE /menu/{id} succeeds.
type MenuDeletedMsg struct {
	ID menu.ID
}

// MenuDeleteFailedMsg is sent when DELETE /menu/{id} fails.
type MenuDeleteFailedMsg struct {
	ID  menu.ID
	Err error
}

// ItemLoadedMsg is sent when the detail view's GET /menu/{id} succeeds.
type ItemLoadedMsg struct {
	ID   menu.ID
	Item menu.Item
}

// ItemLoadFailedMsg is sent when the detail view's fetch fails.
type ItemLoadFailedMsg struct {
	ID  menu.ID
	Err error
}

// SubmitFormMsg is sent by a form modal on Enter (last field) or Ctrl+S.
type SubmitFormMsg struct {
	Op    Op
	Draft menu.Draft
}

// ConfirmDeleteMsg is sent when the user confirms deletion of an item.
type ConfirmDeleteMsg struct {
	ID menu.ID
}

// ShowCreateMsg opens the create modal (SPC c).
type ShowCreateMsg struct{}

// RefreshMsg reloads the current page (SPC r).
type RefreshMsg struct{}

// NextPageMsg and PrevPageMsg page through the list (SPC n / SPC b).
type NextPageMsg struct{}

type PrevPageMsg struct{}

// DismissModalMsg is sent when the user cancels a modal.
type DismissModalMsg struct{}
