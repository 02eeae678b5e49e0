package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/repoanalyzer/internal/config"
	"github.com/quantmind-br/repoanalyzer/internal/domain"
)

type state int

const (
	stateMenu state = iota
	stateForm
	stateConfirm
)

const savedMessage = "Configuration saved"

// Model is the bubbletea model of the configuration editor. The menu lists
// one entry per config section followed by a save entry; a section whose
// values differ from the last saved ones is marked with "*".
type Model struct {
	state     state
	values    *ConfigValues
	saved     *ConfigValues
	menuIndex int
	form      *huh.Form

	// status is shown after a successful save, err after a failed one.
	// errIndex is the category the error belongs to, or -1.
	status   string
	err      error
	errIndex int

	saveFunc   func(*config.Config) error
	accessible bool
}

// Options contains options for the configuration editor
type Options struct {
	Config *config.Config
	// SaveFunc persists the edited configuration
	SaveFunc   func(*config.Config) error
	Accessible bool
}

// NewModel creates the editor model. A nil Config starts from defaults.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	values := FromConfig(cfg)

	return Model{
		state:      stateMenu,
		values:     values,
		saved:      values.clone(),
		errIndex:   -1,
		saveFunc:   opts.SaveFunc,
		accessible: opts.Accessible,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses in the menu and confirm views and forwards
// everything else to the open form
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case stateMenu:
			return m.updateMenu(key)
		case stateConfirm:
			return m.updateConfirm(key)
		case stateForm:
			if key.String() == "esc" {
				m.state = stateMenu
				m.form = nil
				return m, nil
			}
		}
	}

	if m.state != stateForm || m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		if m.errIndex == m.menuIndex {
			m.err, m.errIndex = nil, -1
		}
		m.state = stateMenu
		m.form = nil
		return m, nil
	}
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		if m.Dirty() {
			m.state = stateConfirm
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}

	case "down", "j":
		if m.menuIndex < len(Categories) {
			m.menuIndex++
		}

	case "s":
		return m.save(false)

	case "enter":
		if m.menuIndex == len(Categories) {
			return m.save(false)
		}
		m.status = ""
		m.state = stateForm
		m.form = GetFormForCategory(Categories[m.menuIndex].ID, m.values, m.accessible)
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.save(true)
	case "n", "N":
		return m, tea.Quit
	case "c", "esc":
		m.state = stateMenu
	}
	return m, nil
}

// save validates and persists the values. A validation error moves the
// cursor to the offending category; quitting is only done on success.
func (m Model) save(quit bool) (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.status = ""
	m.err, m.errIndex = nil, -1

	cfg, err := m.values.ToConfig()
	if err != nil {
		m.err = err
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			if i := categoryForKey(verr.Field); i >= 0 {
				m.errIndex = i
				m.menuIndex = i
			}
		}
		return m, nil
	}

	if m.saveFunc != nil {
		if err := m.saveFunc(cfg); err != nil {
			m.err = fmt.Errorf("save failed: %w", err)
			return m, nil
		}
	}

	m.saved = m.values.clone()
	m.status = savedMessage
	if quit {
		return m, tea.Quit
	}
	return m, nil
}

// ChangedCategories returns the names of the categories with unsaved changes
func (m Model) ChangedCategories() []string {
	var names []string
	for _, c := range Categories {
		if c.Changed(m.values, m.saved) {
			names = append(names, c.Name)
		}
	}
	return names
}

// Dirty reports whether there are unsaved changes
func (m Model) Dirty() bool {
	return len(m.ChangedCategories()) > 0
}

func (m Model) View() string {
	var s strings.Builder

	title := "RepoAnalyzer Configuration"
	if m.state == stateForm && m.menuIndex < len(Categories) {
		title += " / " + Categories[m.menuIndex].Name
	}
	s.WriteString(titleStyle.Render(title))
	s.WriteString("\n\n")

	switch m.state {
	case stateMenu:
		s.WriteString(m.renderMenu())
	case stateForm:
		s.WriteString(summaryStyle.Render(Categories[m.menuIndex].Description))
		s.WriteString("\n\n")
		if m.form != nil {
			s.WriteString(m.form.View())
		}
	case stateConfirm:
		s.WriteString(unsavedBorder.Render(
			"Unsaved changes in: " + strings.Join(m.ChangedCategories(), ", ") +
				"\n\nSave before quitting?\n\n[y] Yes  [n] No  [c] Cancel"))
	}
	return s.String()
}

func (m Model) renderMenu() string {
	var s strings.Builder

	for i, c := range Categories {
		cursor, style := "  ", itemStyle
		if i == m.menuIndex {
			cursor, style = "> ", cursorStyle
		}
		s.WriteString(style.Render(cursor + c.Name))
		if c.Changed(m.values, m.saved) {
			s.WriteString(changedStyle.Render(" *"))
		}
		if i == m.errIndex {
			s.WriteString(problemStyle.Render(" !"))
		}
		if i == m.menuIndex {
			s.WriteString(summaryStyle.Render("  " + c.Summary(m.values)))
		}
		s.WriteString("\n")
	}

	cursor, style := "  ", itemStyle
	if m.menuIndex == len(Categories) {
		cursor, style = "> ", cursorStyle
	}
	s.WriteString("\n")
	s.WriteString(style.Render(cursor + "Save Configuration"))
	if m.Dirty() {
		s.WriteString(changedStyle.Render(" *"))
	}
	s.WriteString("\n")

	switch {
	case m.err != nil:
		s.WriteString("\n" + problemStyle.Render("Error: "+m.err.Error()) + "\n")
	case m.status != "":
		s.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	s.WriteString(keyHintStyle.Render("↑/↓ navigate • enter edit • s save • q quit"))
	return s.String()
}

// Run starts the editor on the alternate screen and blocks until it exits
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
