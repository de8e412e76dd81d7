package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"menuview/internal/menu"
	"menuview/internal/menuapi"
)

// DetailView shows one menu item fetched with GET /menu/{id}. Until the
// fetch returns (or if it fails) it shows the copy cached by the list.
type DetailView struct {
	ID      menu.ID
	Item    menu.Item
	HasItem bool
	Loading bool
	Err     string

	api      MenuAPI
	timeout  time.Duration
	viewport viewport.Model
	spinner  spinner.Model
}

var _ View = (*DetailView)(nil)

// NewDetailView creates a detail view for id. cached may be nil.
func NewDetailView(api MenuAPI, timeout time.Duration, id menu.ID, cached *menu.Item) *DetailView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status
	v := &DetailView{
		ID:       id,
		Loading:  api != nil,
		api:      api,
		timeout:  timeout,
		viewport: viewport.New(80, 16),
		spinner:  s,
	}
	if cached != nil {
		v.Item = *cached
		v.HasItem = true
	}
	v.refreshContent()
	return v
}

// Init implements View.
func (v *DetailView) Init() tea.Cmd {
	if v.api == nil {
		return nil
	}
	return tea.Batch(loadItemCmd(v.api, v.timeout, v.ID), v.spinner.Tick)
}

// Update implements View.
func (v *DetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.viewport.Width = msg.Width
		v.viewport.Height = max(msg.Height-6, 3)
		v.refreshContent()
		return v, nil
	case ItemLoadedMsg:
		if msg.ID != v.ID {
			return v, nil
		}
		v.Item = msg.Item
		v.HasItem = true
		v.Loading = false
		v.Err = ""
		v.refreshContent()
		return v, nil
	case ItemLoadFailedMsg:
		if msg.ID != v.ID {
			return v, nil
		}
		log.Printf("ui: load menu %s: %v", msg.ID, msg.Err)
		v.Loading = false
		v.Err = menuapi.Message(msg.Err)
		return v, nil
	case spinner.TickMsg:
		if !v.Loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "backspace" {
			return v, func() tea.Msg { return BackMsg{} }
		}
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *DetailView) refreshContent() {
	if !v.HasItem {
		v.viewport.SetContent("")
		return
	}
	it := v.Item
	width := v.viewport.Width
	if width <= 0 {
		width = 80
	}
	var b strings.Builder
	b.WriteString(Styles.Title.Render(it.Name) + "  " + Styles.Price.Render(menu.FormatPrice(it.Price)) + "\n\n")
	if it.ImageURL != "" {
		b.WriteString(Styles.Muted.Render("Image: "+it.ImageURL) + "\n\n")
	}
	desc := it.Description
	if desc == "" {
		desc = Styles.Empty.Render("No description")
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Render(desc))
	v.viewport.SetContent(b.String())
}

// View implements View.
func (v *DetailView) View() string {
	header := Styles.Muted.Render(fmt.Sprintf("Menu %s", v.ID))
	if v.Loading {
		header += "  " + v.spinner.View()
	}
	parts := []string{header, ""}
	if v.Err != "" {
		parts = append(parts, Styles.Error.Render(v.Err))
	}
	if v.HasItem {
		parts = append(parts, v.viewport.View())
	} else if !v.Loading {
		parts = append(parts, Styles.Empty.Render("Menu not found"))
	}
	parts = append(parts, "", Styles.Hint.Render("j/k: scroll  Esc: back  SPC: commands"))
	return strings.Join(parts, "\n")
}
