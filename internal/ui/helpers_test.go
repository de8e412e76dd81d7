package ui

import (
	"context"
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"menuview/internal/menu"
)

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// isAppMsg reports whether msg is one of ours. Widget ticks and blinks are
// dropped so tests never wait on timers.
func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case PageLoadedMsg, PageLoadFailedMsg,
		MenuCreatedMsg, MenuCreateFailedMsg,
		MenuUpdatedMsg, MenuUpdateFailedMsg,
		MenuDeletedMsg, MenuDeleteFailedMsg,
		ItemLoadedMsg, ItemLoadFailedMsg,
		SubmitFormMsg, ConfirmDeleteMsg, DismissModalMsg,
		ShowCreateMsg, RefreshMsg, NextPageMsg, PrevPageMsg,
		NavigateMsg, BackMsg:
		return true
	}
	return false
}

// drainWith runs cmd and every command its messages produce, feeding app
// messages back through update.
func drainWith(t *testing.T, update func(tea.Msg) tea.Cmd, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatal("drain: command chain did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if !isAppMsg(msg) {
			continue
		}
		queue = append(queue, update(msg))
	}
}

func drain(t *testing.T, v View, cmd tea.Cmd) {
	t.Helper()
	drainWith(t, func(msg tea.Msg) tea.Cmd {
		_, next := v.Update(msg)
		return next
	}, cmd)
}

// press sends each key and drains the result. Do not use it for keys that
// move focus inside a form: those return a cursor blink that waits on a timer.
func press(t *testing.T, v View, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_, cmd := v.Update(keyMsg(k))
		drain(t, v, cmd)
	}
}

// typeText types s into whatever has focus and discards the widget commands.
func typeText(v View, s string) {
	v.Update(keyMsg(s))
}

func testItem(id string) menu.Item {
	return menu.Item{
		ID:          menu.ID(id),
		Name:        "Item " + id,
		Description: "Description " + id,
		ImageURL:    "https://img.example/" + id + ".png",
		Price:       10,
	}
}

func testPage(page, perPage, total int, hasPrev, hasNext bool, ids ...string) menu.Page {
	p := menu.Page{State: menu.PageState{Page: page, PerPage: perPage, Total: total, HasPrev: hasPrev, HasNext: hasNext}}
	for _, id := range ids {
		p.Items = append(p.Items, testItem(id))
	}
	return p
}

type listCall struct {
	page    int
	perPage int
	ctxErr  error // ctx.Err() when the call started
}

// fakeAPI is a scripted MenuAPI. Pages not in pages come back empty.
type fakeAPI struct {
	pages     map[int]menu.Page
	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	lists   []listCall
	gets    []menu.ID
	creates []menu.Payload
	updates []menu.ID
	deletes []menu.ID
}

func newFakeAPI(pages ...menu.Page) *fakeAPI {
	f := &fakeAPI{pages: make(map[int]menu.Page)}
	for _, p := range pages {
		f.pages[p.State.Page] = p
	}
	return f
}

func (f *fakeAPI) listedPages() []int {
	out := make([]int, 0, len(f.lists))
	for _, c := range f.lists {
		out = append(out, c.page)
	}
	return out
}

func (f *fakeAPI) List(ctx context.Context, page, perPage int) (menu.Page, error) {
	f.lists = append(f.lists, listCall{page: page, perPage: perPage, ctxErr: ctx.Err()})
	if f.listErr != nil {
		return menu.Page{}, f.listErr
	}
	if p, ok := f.pages[page]; ok {
		return p, nil
	}
	return menu.Page{State: menu.PageState{Page: page, PerPage: perPage}}, nil
}

func (f *fakeAPI) Get(_ context.Context, id menu.ID) (menu.Item, error) {
	f.gets = append(f.gets, id)
	if f.getErr != nil {
		return menu.Item{}, f.getErr
	}
	for _, p := range f.pages {
		for _, it := range p.Items {
			if it.ID == id {
				it.Description += " (fresh)"
				return it, nil
			}
		}
	}
	return menu.Item{ID: id, Name: "Remote " + id.String(), Price: 1}, nil
}

func (f *fakeAPI) Create(_ context.Context, p menu.Payload) (menu.Item, error) {
	f.creates = append(f.creates, p)
	if f.createErr != nil {
		return menu.Item{}, f.createErr
	}
	return menu.Item{ID: menu.ID(strconv.Itoa(100 + len(f.creates))), Name: p.Name, Price: p.Price}, nil
}

func (f *fakeAPI) Update(_ context.Context, id menu.ID, p menu.Payload) (menu.Item, error) {
	f.updates = append(f.updates, id)
	if f.updateErr != nil {
		return menu.Item{}, f.updateErr
	}
	return menu.Item{ID: id, Name: p.Name, Description: p.Description, ImageURL: p.ImageURL, Price: p.Price}, nil
}

func (f *fakeAPI) Delete(_ context.Context, id menu.ID) error {
	f.deletes = append(f.deletes, id)
	return f.deleteErr
}

// recordingRouter captures navigation instead of emitting NavigateMsg.
type recordingRouter struct {
	paths []string
}

func (r *recordingRouter) Navigate(path string) tea.Cmd {
	r.paths = append(r.paths, path)
	return nil
}
