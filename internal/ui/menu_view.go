package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"menuview/internal/menu"
	"menuview/internal/menuapi"
	"menuview/internal/ui/textutil"
)

// DefaultTimeout bounds each API call when none is configured.
const DefaultTimeout = 10 * time.Second

const nameColumnWidth = 28

// menuListItem implements list.Item for a menu.Item.
type menuListItem struct {
	item     menu.Item
	deleting bool
}

func (i menuListItem) FilterValue() string { return i.item.Name }
func (i menuListItem) Title() string {
	line := textutil.PadRightVisual(i.item.Name, nameColumnWidth) + "  " + menu.FormatPrice(i.item.Price)
	if i.deleting {
		line += "  (deleting…)"
	}
	return line
}
func (i menuListItem) Description() string {
	return textutil.Truncate(i.item.Description, 60)
}

// MenuView is the paginated menu list with create, update and delete
// modals. All of its state lives in State; the fields below are widgets and
// collaborators.
type MenuView struct {
	State MenuState

	api      MenuAPI
	router   Router
	timeout  time.Duration
	list     list.Model
	spinner  spinner.Model
	overlays OverlayStack

	cancelList context.CancelFunc
	width      int
	height     int
}

var _ View = (*MenuView)(nil)

// NewMenuView creates the menu list. The first page is fetched by Init.
func NewMenuView(api MenuAPI, router Router, perPage int, timeout time.Duration) *MenuView {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	l := list.New(nil, NewCompactListDelegate(), 80, 12)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	return &MenuView{
		State:   NewMenuState(perPage),
		api:     api,
		router:  router,
		timeout: timeout,
		list:    l,
		spinner: s,
	}
}

// Init implements View.
func (m *MenuView) Init() tea.Cmd {
	return tea.Batch(m.LoadPage(m.State.Page.Page, m.State.Page.PerPage), m.spinner.Tick)
}

// LoadPage fetches page, cancelling any list request still in flight.
func (m *MenuView) LoadPage(page, perPage int) tea.Cmd {
	m.State = m.State.RequestPage(page, perPage)
	return m.fetchPage()
}

// Refresh reloads the current page.
func (m *MenuView) Refresh() tea.Cmd {
	return m.LoadPage(m.State.Page.Page, m.State.Page.PerPage)
}

// GoNext loads the next page. Returns nil without a request when the server
// reported no next page.
func (m *MenuView) GoNext() tea.Cmd {
	next, ok := m.State.NextPage()
	if !ok {
		return nil
	}
	m.State = next
	return m.fetchPage()
}

// GoBack loads the previous page; nil when there is none.
func (m *MenuView) GoBack() tea.Cmd {
	prev, ok := m.State.PrevPage()
	if !ok {
		return nil
	}
	m.State = prev
	return m.fetchPage()
}

func (m *MenuView) fetchPage() tea.Cmd {
	if m.cancelList != nil {
		m.cancelList()
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	m.cancelList = cancel
	return loadPageCmd(ctx, cancel, m.api, m.State.ListSeq, m.State.Page.Page, m.State.Page.PerPage)
}

// OpenCreateModal opens an empty create form.
func (m *MenuView) OpenCreateModal() tea.Cmd {
	m.overlays.Remove(isForm)
	m.State = m.State.CloseUpdate().OpenCreate()
	form := NewMenuFormModal(OpCreate, m.State.CreateDraft)
	m.overlays.Push(Overlay{View: form, Dismiss: "esc"})
	m.syncForm()
	return form.Init()
}

// OpenUpdateModal opens the update form seeded from it.
func (m *MenuView) OpenUpdateModal(it menu.Item) tea.Cmd {
	m.overlays.Remove(isForm)
	m.State = m.State.CloseCreate().OpenUpdate(it)
	form := NewMenuFormModal(OpUpdate, m.State.UpdateDraft)
	m.overlays.Push(Overlay{View: form, Dismiss: "esc"})
	m.syncForm()
	return form.Init()
}

// CloseModal closes the top modal without submitting.
func (m *MenuView) CloseModal() tea.Cmd {
	top, ok := m.overlays.Pop()
	if !ok {
		return nil
	}
	if form, ok := top.View.(*MenuFormModal); ok {
		switch form.Op {
		case OpCreate:
			m.State = m.State.CloseCreate()
		case OpUpdate:
			m.State = m.State.CloseUpdate()
		}
	}
	return nil
}

// SubmitCreate validates d and sends POST /menu. An invalid price or a
// create already in flight sends nothing.
func (m *MenuView) SubmitCreate(d menu.Draft) tea.Cmd {
	next, p, ok := m.State.SubmitCreate(d)
	m.State = next
	m.syncForm()
	if !ok {
		return nil
	}
	return createMenuCmd(m.api, m.timeout, p)
}

// SubmitUpdate validates d and sends PUT /menu/{d.ID}.
func (m *MenuView) SubmitUpdate(d menu.Draft) tea.Cmd {
	next, p, ok := m.State.SubmitUpdate(d)
	m.State = next
	m.syncForm()
	if !ok {
		return nil
	}
	return updateMenuCmd(m.api, m.timeout, d.ID, p)
}

// DeleteItem sends DELETE /menu/{id} unless one is already in flight.
func (m *MenuView) DeleteItem(id menu.ID) tea.Cmd {
	next, ok := m.State.StartDelete(id)
	if !ok {
		return nil
	}
	m.State = next
	m.setItems()
	return deleteMenuCmd(m.api, m.timeout, id)
}

// OpenDetail routes to the detail screen of it.
func (m *MenuView) OpenDetail(it menu.Item) tea.Cmd {
	if m.router == nil {
		return nil
	}
	return m.router.Navigate(DetailPath(it.ID))
}

// Selected returns the highlighted row.
func (m *MenuView) Selected() (menu.Item, bool) {
	it, ok := m.list.SelectedItem().(menuListItem)
	if !ok {
		return menu.Item{}, false
	}
	return it.item, true
}

// CapturingInput reports whether a modal is open.
func (m *MenuView) CapturingInput() bool {
	return m.overlays.Len() > 0
}

// Form returns the open form modal, if any.
func (m *MenuView) Form() (*MenuFormModal, bool) {
	for i := len(m.overlays.Stack) - 1; i >= 0; i-- {
		if f, ok := m.overlays.Stack[i].View.(*MenuFormModal); ok {
			return f, true
		}
	}
	return nil, false
}

func isForm(v View) bool {
	_, ok := v.(*MenuFormModal)
	return ok
}

// isFormFor matches only the form of op, so a late response for one
// operation leaves the other operation's form alone.
func isFormFor(op Op) func(View) bool {
	return func(v View) bool {
		f, ok := v.(*MenuFormModal)
		return ok && f.Op == op
	}
}

func isConfirm(v View) bool {
	_, ok := v.(*ConfirmModal)
	return ok
}

// syncForm copies validation and operation errors into the open form.
func (m *MenuView) syncForm() {
	form, ok := m.Form()
	if !ok {
		return
	}
	form.PriceError = m.State.PriceError
	switch form.Op {
	case OpCreate:
		form.Err = m.State.CreateNotice.Error
		form.Submitting = m.State.CreateSubmitting
	case OpUpdate:
		form.Err = m.State.UpdateNotice.Error
		form.Submitting = m.State.UpdateSubmitting
	}
}

func (m *MenuView) setItems() {
	items := make([]list.Item, 0, len(m.State.Items))
	for _, it := range m.State.Items {
		items = append(items, menuListItem{item: it, deleting: m.State.IsDeleting(it.ID)})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

// Update implements View.
func (m *MenuView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-10, 3))
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PageLoadedMsg:
		next, ok := m.State.PageLoaded(msg.Seq, msg.Page)
		if !ok {
			log.Printf("ui: dropping stale page response seq=%d (latest %d)", msg.Seq, m.State.ListSeq)
			return m, nil
		}
		m.State = next
		m.setItems()
		return m, nil
	case PageLoadFailedMsg:
		next, ok := m.State.PageFailed(msg.Seq, menuapi.Message(msg.Err))
		if !ok {
			return m, nil
		}
		log.Printf("ui: list page %d: %v", m.State.Page.Page, msg.Err)
		m.State = next
		return m, nil

	case MenuCreatedMsg:
		m.State = m.State.CreateSucceeded()
		m.overlays.Remove(isFormFor(OpCreate))
		return m, m.Refresh()
	case MenuCreateFailedMsg:
		log.Printf("ui: create menu: %v", msg.Err)
		m.State = m.State.CreateFailed(menuapi.Message(msg.Err))
		m.syncForm()
		return m, nil
	case MenuUpdatedMsg:
		m.State = m.State.UpdateSucceeded()
		m.overlays.Remove(isFormFor(OpUpdate))
		return m, m.Refresh()
	case MenuUpdateFailedMsg:
		log.Printf("ui: update menu %s: %v", msg.ID, msg.Err)
		m.State = m.State.UpdateFailed(menuapi.Message(msg.Err))
		m.syncForm()
		return m, nil
	case MenuDeletedMsg:
		m.State = m.State.DeleteSucceeded(msg.ID)
		return m, m.Refresh()
	case MenuDeleteFailedMsg:
		log.Printf("ui: delete menu %s: %v", msg.ID, msg.Err)
		m.State = m.State.DeleteFailed(msg.ID, menuapi.Message(msg.Err))
		m.setItems()
		return m, nil

	case SubmitFormMsg:
		switch msg.Op {
		case OpCreate:
			return m, m.SubmitCreate(msg.Draft)
		case OpUpdate:
			return m, m.SubmitUpdate(msg.Draft)
		}
		return m, nil
	case ConfirmDeleteMsg:
		m.overlays.Remove(isConfirm)
		return m, m.DeleteItem(msg.ID)
	case DismissModalMsg:
		return m, m.CloseModal()
	case ShowCreateMsg:
		return m, m.OpenCreateModal()
	case RefreshMsg:
		return m, m.Refresh()
	case NextPageMsg:
		return m, m.GoNext()
	case PrevPageMsg:
		return m, m.GoBack()

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if cmd, ok := m.overlays.UpdateTop(msg); ok {
		return m, cmd
	}
	return m, nil
}

func (m *MenuView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if top, ok := m.overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			return m.CloseModal()
		}
		cmd, _ := m.overlays.UpdateTop(msg)
		return cmd
	}
	switch msg.String() {
	case "n", "right":
		return m.GoNext()
	case "b", "left":
		return m.GoBack()
	case "c":
		return m.OpenCreateModal()
	case "r":
		return m.Refresh()
	case "u":
		if it, ok := m.Selected(); ok {
			return m.OpenUpdateModal(it)
		}
		return nil
	case "d":
		if it, ok := m.Selected(); ok && !m.State.IsDeleting(it.ID) {
			m.overlays.Push(Overlay{View: NewDeleteMenuConfirmModal(it), Dismiss: "esc"})
		}
		return nil
	case "enter":
		if it, ok := m.Selected(); ok {
			return m.OpenDetail(it)
		}
		return nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

// View implements View.
func (m *MenuView) View() string {
	s := m.State
	header := Styles.Title.Render("Menu") + "  " + Styles.Muted.Render(pageLabel(s.Page))
	if s.Loading {
		header += "  " + m.spinner.View()
	}
	parts := []string{header}

	for _, n := range []Notice{s.CreateNotice, s.UpdateNotice, s.DeleteNotice} {
		if n.Success != "" {
			parts = append(parts, Styles.Success.Render(n.Success))
		}
	}
	for _, n := range []Notice{s.CreateNotice, s.UpdateNotice, s.DeleteNotice} {
		if n.Error != "" {
			parts = append(parts, Styles.Error.Render(n.Error))
		}
	}
	if s.ListError != "" {
		parts = append(parts, Styles.Error.Render(s.ListError))
	}
	parts = append(parts, "")

	switch {
	case len(s.Items) > 0:
		parts = append(parts, m.list.View())
	case s.Loading:
		parts = append(parts, Styles.Empty.Render("Loading menu…"))
	default:
		parts = append(parts, Styles.Empty.Render("No menu items"))
	}

	parts = append(parts, "", pagerHints(s.Page),
		Styles.Hint.Render("c: create  u: update  d: delete  Enter: detail  r: refresh  SPC: commands  q: quit"))
	base := strings.Join(parts, "\n")

	top, ok := m.overlays.Peek()
	if !ok {
		return base
	}
	modal := top.View.View()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}
	return base + "\n" + modal
}

func pageLabel(p menu.PageState) string {
	label := fmt.Sprintf("page %d", p.Page)
	if p.TotalKnown() {
		label += fmt.Sprintf(" · %d items", p.Total)
	}
	return label
}

func pagerHints(p menu.PageState) string {
	prev := Styles.Muted.Render("← b: previous")
	if p.HasPrev {
		prev = Styles.Normal.Render("← b: previous")
	}
	next := Styles.Muted.Render("n: next →")
	if p.HasNext {
		next = Styles.Normal.Render("n: next →")
	}
	return prev + "   " + next
}
