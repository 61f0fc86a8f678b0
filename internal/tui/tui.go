// Package tui implements the terminal catalog browser: a search-first
// screen backed by the same debounced search box state machine the web UI
// uses, plus database and table detail screens.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"lakeview/internal/catalog"
	"lakeview/internal/search"
)

// ViewState represents which screen is active.
type ViewState int

const (
	ViewSearch ViewState = iota
	ViewDatabase
	ViewTable
)

// programRef is an indirect pointer to the tea.Program so the search box's
// debounce timer goroutine can send messages. It must be set after
// tea.NewProgram returns but before Run.
type programRef struct {
	p *tea.Program
}

// resultsMsg signals that the search box committed a new result set.
type resultsMsg struct{}

// Config holds what the CLI layer passes in.
type Config struct {
	Store    *catalog.Store
	Registry *search.Registry
	Title    string

	// program is set internally so the debounce goroutine can send messages.
	program *programRef
}

// Model is the top-level Bubble Tea model.
type Model struct {
	state  ViewState
	config Config
	width  int
	height int

	search searchModel
	detail detailModel
	err    error
}

// New creates the TUI model with the given config.
func New(cfg Config) Model {
	return Model{
		state:  ViewSearch,
		config: cfg,
		search: newSearchModel(cfg),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	switch m.state {
	case ViewSearch:
		var target *search.IndexItem
		m.search, target, cmd = m.search.Update(msg)
		if target != nil {
			m.openDetail(*target)
		}
		return m, cmd

	case ViewDatabase, ViewTable:
		done := false
		m.detail, done = m.detail.Update(msg)
		if done {
			m.state = ViewSearch
			m.search.focus()
		}
		return m, nil
	}

	return m, nil
}

// openDetail resolves the activated search item against the store and
// switches to the matching detail screen.
func (m *Model) openDetail(item search.IndexItem) {
	catalogName := m.search.catalogName()
	c, err := m.config.Store.Catalog(catalogName)
	if err != nil {
		m.err = err
		return
	}

	if item.Kind == search.KindDatabase {
		db, ok := c.Database(item.Database)
		if !ok {
			return
		}
		m.detail = newDatabaseDetail(c.Name, db)
		m.state = ViewDatabase
		return
	}

	db, ok := c.Database(item.Database)
	if !ok {
		return
	}
	t, ok := db.Table(item.Table)
	if !ok {
		return
	}
	m.detail = newTableDetail(c.Name, db.Name, t, item.Column)
	m.state = ViewTable
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n"
	}

	switch m.state {
	case ViewSearch:
		return m.search.View(m.config.Title, m.width, m.height)
	case ViewDatabase, ViewTable:
		return m.detail.View(m.width, m.height)
	}
	return ""
}

// Run starts the TUI program.
func Run(cfg Config) error {
	ref := &programRef{}
	cfg.program = ref
	model := New(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	ref.p = p
	_, err := p.Run()
	return err
}
