package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"menuview/internal/menu"
)

// MenuAPI is the remote menu service as the view uses it.
// *menuapi.Client implements it.
type MenuAPI interface {
	List(ctx context.Context, page, perPage int) (menu.Page, error)
	Get(ctx context.Context, id menu.ID) (menu.Item, error)
	Create(ctx context.Context, p menu.Payload) (menu.Item, error)
	Update(ctx context.Context, id menu.ID, p menu.Payload) (menu.Item, error)
	Delete(ctx context.Context, id menu.ID) error
}

// loadPageCmd fetches one page. ctx is owned by the caller so a newer request
// can cancel it; cancel is released when the call returns.
func loadPageCmd(ctx context.Context, cancel context.CancelFunc, api MenuAPI, seq uint64, page, perPage int) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		p, err := api.List(ctx, page, perPage)
		if err != nil {
			return PageLoadFailedMsg{Seq: seq, Err: err}
		}
		return PageLoadedMsg{Seq: seq, Page: p}
	}
}

func createMenuCmd(api MenuAPI, timeout time.Duration, p menu.Payload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		it, err := api.Create(ctx, p)
		if err != nil {
			return MenuCreateFailedMsg{Err: err}
		}
		return MenuCreatedMsg{Item: it}
	}
}

func updateMenuCmd(api MenuAPI, timeout time.Duration, id menu.ID, p menu.Payload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		it, err := api.Update(ctx, id, p)
		if err != nil {
			return MenuUpdateFailedMsg{ID: id, Err: err}
		}
		return MenuUpdatedMsg{Item: it}
	}
}

func deleteMenuCmd(api MenuAPI, timeout time.Duration, id menu.ID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := api.Delete(ctx, id); err != nil {
			return MenuDeleteFailedMsg{ID: id, Err: err}
		}
		return MenuDeletedMsg{ID: id}
	}
}

func loadItemCmd(api MenuAPI, timeout time.Duration, id menu.ID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		it, err := api.Get(ctx, id)
		if err != nil {
			return ItemLoadFailedMsg{ID: id, Err: err}
		}
		return ItemLoadedMsg{ID: id, Item: it}
	}
}
