package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"menuview/internal/menu"
)

// Form field IDs, in tab order.
const (
	fieldName        = "name"
	fieldDescription = "description"
	fieldImageURL    = "imageUrl"
	fieldPrice       = "price"
)

var formFields = []struct {
	id          string
	label       string
	placeholder string
}{
	{fieldName, "Name", "Nasi goreng"},
	{fieldDescription, "Description", "Fried rice with egg"},
	{fieldImageURL, "Image URL", "https://..."},
	{fieldPrice, "Price", "25000"},
}

// MenuFormModal edits a create or update draft. Tab/Shift+Tab move between
// fields; Enter on the last field or Ctrl+S submits; Esc closes.
type MenuFormModal struct {
	Op         Op
	ID         menu.ID // target of an update; empty for create
	PriceError string
	Err        string
	Submitting bool

	inputs map[string]*textinput.Model
	focus  FocusManager
}

var _ View = (*MenuFormModal)(nil)

// NewMenuFormModal opens a form seeded with d.
func NewMenuFormModal(op Op, d menu.Draft) *MenuFormModal {
	m := &MenuFormModal{
		Op:     op,
		ID:     d.ID,
		inputs: make(map[string]*textinput.Model, len(formFields)),
	}
	values := map[string]string{
		fieldName:        d.Name,
		fieldDescription: d.Description,
		fieldImageURL:    d.ImageURL,
		fieldPrice:       d.Price,
	}
	order := make([]string, 0, len(formFields))
	for _, f := range formFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.placeholder
		ti.Width = 40
		ti.SetValue(values[f.id])
		m.inputs[f.id] = &ti
		order = append(order, f.id)
	}
	m.focus = NewFocusManager(order...)
	m.applyFocus()
	return m
}

// Draft returns the current field values.
func (m *MenuFormModal) Draft() menu.Draft {
	return menu.Draft{
		ID:          m.ID,
		Name:        m.inputs[fieldName].Value(),
		Description: m.inputs[fieldDescription].Value(),
		ImageURL:    m.inputs[fieldImageURL].Value(),
		Price:       m.inputs[fieldPrice].Value(),
	}
}

// Focused returns the ID of the focused field.
func (m *MenuFormModal) Focused() string { return m.focus.Current }

// CapturingInput implements inputCapturer.
func (m *MenuFormModal) CapturingInput() bool { return true }

func (m *MenuFormModal) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	for id, in := range m.inputs {
		if id == m.focus.Current {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (m *MenuFormModal) submit() tea.Cmd {
	msg := SubmitFormMsg{Op: m.Op, Draft: m.Draft()}
	return func() tea.Msg { return msg }
}

// Init implements View.
func (m *MenuFormModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *MenuFormModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "ctrl+s":
			return m, m.submit()
		case "enter":
			if m.focus.IsLast() {
				return m, m.submit()
			}
			m.focus.Next()
			return m, m.applyFocus()
		case "tab", "down":
			m.focus.Next()
			return m, m.applyFocus()
		case "shift+tab", "up":
			m.focus.Prev()
			return m, m.applyFocus()
		}
	}
	in := m.inputs[m.focus.Current]
	if in == nil {
		return m, nil
	}
	updated, cmd := in.Update(msg)
	*in = updated
	return m, cmd
}

// View implements View.
func (m *MenuFormModal) View() string {
	title := "Create menu"
	if m.Op == OpUpdate {
		title = "Update menu"
	}
	var b strings.Builder
	b.WriteString(Styles.Title.Render(title) + "\n\n")
	for _, f := range formFields {
		label := Styles.Muted.Render(f.label)
		if f.id == m.focus.Current {
			label = Styles.Selected.Render(f.label)
		}
		b.WriteString(label + "\n")
		b.WriteString(m.inputs[f.id].View() + "\n")
		if f.id == fieldPrice && m.PriceError != "" {
			b.WriteString(Styles.Details.Render(m.PriceError) + "\n")
		}
		b.WriteString("\n")
	}
	if m.Err != "" {
		b.WriteString(Styles.Error.Render(m.Err) + "\n\n")
	}
	if m.Submitting {
		b.WriteString(Styles.Status.Render("Saving…") + "\n\n")
	}
	b.WriteString(Styles.Hint.Render("Tab: next field  Enter/Ctrl+S: save  Esc: cancel"))
	return Styles.Box.Render(b.String())
}
