// Package tui is the interactive todo browser.
package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/todo"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	frameStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

type keyMap struct {
	Done, Delete, Add, Undo, Quit key.Binding
}

var keys = keyMap{
	Done:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "done")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo delete")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
}

// listItem adapts model.Item to bubbles/list.Item.
type listItem struct {
	model.Item
}

func (i listItem) FilterValue() string { return i.Description }

// itemDelegate renders one line per item.
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := mutedStyle.Render(boxUnchecked)
	text := it.Description
	if it.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	date := mutedStyle.Render(it.CreatedAt.Local().Format(model.TimeLayout))

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s  %s", prefix, box, text, date)
}

// Model is the Bubble Tea model for the browser.
type Model struct {
	list    list.Model
	changed bool
	now     func() time.Time

	adding bool
	ti     textinput.Model
	addErr string

	undoIndex int
	undoItem  *listItem
}

// NewModel builds the browser over items.
func NewModel(items []model.Item) Model {
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{it})
	}

	l := list.New(li, itemDelegate{}, 80, 20)
	l.Title = header(items)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	extra := func() []key.Binding { return []key.Binding{keys.Done, keys.Delete, keys.Add, keys.Undo} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo..."

	return Model{list: l, ti: ti, now: time.Now, undoIndex: -1}
}

func header(items []model.Item) string {
	d, p := todo.Stats(items)
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✓"), d,
		pendingStyle.Render("✗"), p,
		accentStyle.Render("Total"), len(items),
	)
}

// Items returns the list as currently edited.
func (m Model) Items() []model.Item {
	out := make([]model.Item, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.Item)
		}
	}
	return out
}

// Changed reports whether anything needs saving.
func (m Model) Changed() bool { return m.changed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		h := ws.Height - 4
		if m.adding {
			h -= 2
		}
		m.list.SetSize(ws.Width-4, h)
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.SettingFilter() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, keys.Quit) && m.list.FilterState() == list.Unfiltered:
		return m, tea.Quit
	case key.Matches(km, keys.Done):
		if i, li, ok := m.selected(); ok && !li.Completed {
			li.Completed = true
			cmd := m.list.SetItem(i, li)
			m.changed = true
			return m.refresh(cmd)
		}
		return m, nil
	case key.Matches(km, keys.Delete):
		if i, li, ok := m.selected(); ok {
			tmp := li
			m.undoItem = &tmp
			m.undoIndex = i
			m.list.RemoveItem(i)
			m.changed = true
			return m.refresh(nil)
		}
		return m, nil
	case key.Matches(km, keys.Undo):
		if m.undoItem == nil {
			return m, nil
		}
		idx := m.undoIndex
		if idx < 0 {
			idx = 0
		}
		if n := len(m.list.Items()); idx > n {
			idx = n
		}
		cmd := m.list.InsertItem(idx, *m.undoItem)
		m.undoItem = nil
		m.undoIndex = -1
		m.changed = true
		return m.refresh(cmd)
	case key.Matches(km, keys.Add):
		m.adding = true
		m.addErr = ""
		m.ti.SetValue("")
		cmd := m.ti.Focus()
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// selected returns the highlighted item and its index in the unfiltered list.
func (m Model) selected() (int, listItem, bool) {
	sel, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return -1, listItem{}, false
	}
	for i, it := range m.list.Items() {
		if li, ok := it.(listItem); ok && li.ID == sel.ID {
			return i, sel, true
		}
	}
	return -1, listItem{}, false
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			desc := m.ti.Value()
			if desc == "" {
				m.addErr = "Description cannot be empty"
				return m, nil
			}
			// New items always go to the end, like `todo add`.
			cmd := m.list.InsertItem(len(m.list.Items()), listItem{model.NewItem(desc, m.now())})
			m.changed = true
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			return m.refresh(cmd)
		case "esc":
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) refresh(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.list.Title = header(m.Items())
	return m, cmd
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding {
		title := "Add todo"
		if m.addErr != "" {
			title += " - " + errorStyle.Render(m.addErr)
		}
		content += "\n" + frameStyle.Render(title+"\n"+m.ti.View())
	}
	return frameStyle.Render(content)
}

// Run opens the browser over l and saves once on exit if anything changed.
func Run(l *todo.List) (saved bool, err error) {
	items, err := l.Items()
	if err != nil {
		return false, err
	}
	p := tea.NewProgram(NewModel(items), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	if !ok || !fm.Changed() {
		return false, nil
	}
	if err := l.Replace(fm.Items()); err != nil {
		return false, err
	}
	return true, nil
}
