// Package ui is the interactive character browser: a search box above the
// filtered list, with a spinner while pages arrive.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rickmorty/catalog/internal/catalog"
	"rickmorty/catalog/internal/domain"
	"rickmorty/catalog/internal/labels"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

const defaultVisibleRows = 20

// Loader starts a catalog load.
type Loader interface {
	Load(ctx context.Context) (*domain.LoadReport, error)
}

// Catalog is the state the browser reads and the search term it writes.
type Catalog interface {
	Snapshot() catalog.State
	SetSearchTerm(term string)
}

type keyMap struct {
	Quit     key.Binding
	Reload   key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc")),
	Reload:   key.NewBinding(key.WithKeys("ctrl+r")),
	Up:       key.NewBinding(key.WithKeys("up")),
	Down:     key.NewBinding(key.WithKeys("down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
}

type loadFinishedMsg struct {
	report *domain.LoadReport
	err    error
}

type Model struct {
	ctx        context.Context
	loader     Loader
	catalog    Catalog
	translator *labels.Translator
	messages   labels.Messages

	input   textinput.Model
	spinner spinner.Model

	pending  bool
	offset   int
	width    int
	height   int
	quitting bool
}

func New(ctx context.Context, loader Loader, cat Catalog, translator *labels.Translator) Model {
	messages := translator.Messages()

	ti := textinput.New()
	ti.Placeholder = messages.SearchPlaceholder
	ti.Prompt = "🔎 "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	ti.CharLimit = 64
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	return Model{
		ctx:        ctx,
		loader:     loader,
		catalog:    cat,
		translator: translator,
		messages:   messages,
		input:      ti,
		spinner:    sp,
		pending:    true,
	}
}

// Init starts the first load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.load())
}

func (m Model) load() tea.Cmd {
	return func() tea.Msg {
		report, err := m.loader.Load(m.ctx)
		return loadFinishedMsg{report: report, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(0, msg.Width-6)
		return m, nil

	case loadFinishedMsg:
		m.pending = false
		if errors.Is(msg.err, catalog.ErrLoadInProgress) {
			log.Debug("Reload ignored, a load is already running")
		}
		return m, nil

	case spinner.TickMsg:
		if !m.isLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Reload):
			if m.isLoading() {
				return m, nil
			}
			m.pending = true
			return m, tea.Batch(m.load(), m.spinner.Tick)
		case key.Matches(msg, keys.Up):
			m.scroll(-1)
			return m, nil
		case key.Matches(msg, keys.Down):
			m.scroll(1)
			return m, nil
		case key.Matches(msg, keys.PageUp):
			m.scroll(-m.visibleRows())
			return m, nil
		case key.Matches(msg, keys.PageDown):
			m.scroll(m.visibleRows())
			return m, nil
		}
	}

	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if value := m.input.Value(); value != before {
		m.catalog.SetSearchTerm(value)
		m.offset = 0
	}

	return m, cmd
}

func (m Model) isLoading() bool {
	return m.pending || m.catalog.Snapshot().Loading
}

func (m *Model) scroll(delta int) {
	limit := max(0, len(m.catalog.Snapshot().Filtered)-m.visibleRows())
	m.offset = min(max(0, m.offset+delta), limit)
}

func (m Model) visibleRows() int {
	if m.height == 0 {
		return defaultVisibleRows
	}
	return max(3, m.height-9)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.catalog.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.messages.Title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.pending || state.Loading:
		b.WriteString(m.spinner.View())
		b.WriteString(loadingStyle.Render(" " + m.messages.Loading))
		if state.TotalPages > 0 {
			b.WriteString(detailStyle.Render(fmt.Sprintf(" (%d/%d)", state.PagesLoaded, state.TotalPages)))
		}
		b.WriteString("\n")
	case state.Error != "":
		b.WriteString(errorStyle.Render(state.Error))
		b.WriteString("\n")
	}

	if len(state.Filtered) == 0 && !state.Loading && !m.pending {
		b.WriteString(detailStyle.Render(m.messages.NoResults))
		b.WriteString("\n")
	}

	end := min(len(state.Filtered), m.offset+m.visibleRows())
	for _, character := range state.Filtered[min(m.offset, end):end] {
		b.WriteString(m.renderCharacter(character))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.messages.Count(len(state.Filtered), len(state.Characters)) + " · ↑/↓ scroll · ctrl+r reload · esc quit"))
	return b.String()
}

func (m Model) renderCharacter(c domain.Character) string {
	details := fmt.Sprintf("%s · %s · %s", c.Species, m.translator.Gender(c.Gender), c.Location.Name)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		nameStyle.Render(c.Name),
		statusStyle(c.Status).Render(m.translator.Status(c.Status)),
		detailStyle.Render(details),
	)
}
