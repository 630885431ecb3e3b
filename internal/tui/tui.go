package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"reellog/internal/catalog"
	"reellog/internal/library"
	"reellog/internal/movie"
)

type screen int

const (
	mainScreen screen = iota
	listScreen
	addScreen
	removeScreen
	displayScreen
	searchScreen
)

var (
	mainItems = []string{"Watched Movies Menu", "To Watch Movies Menu", "Search Movie", "Exit"}
	listItems = []string{"Add Movie", "Remove Movie", "Display Movies", "Return to Main Menu"}
)

const farewell = "Saving data and exiting..."

// Options configures Run.
type Options struct {
	Input    io.Reader
	Output   io.Writer
	Colorize bool
}

type model struct {
	lib      *library.Library
	styles   styles
	screen   screen
	list     library.List
	cursor   int
	fields   []field
	focus    int
	status   string
	quitting bool
}

func newModel(lib *library.Library, st styles) model {
	return model{lib: lib, styles: st}
}

// Run shows the menu until the user exits. Saving both lists on exit is left
// to the caller's Library.Close.
func Run(ctx context.Context, lib *library.Library, opts Options) error {
	var progOpts []tea.ProgramOption
	if ctx != nil {
		progOpts = append(progOpts, tea.WithContext(ctx))
	}
	// The default stdin path is what puts a terminal into raw mode.
	if opts.Input != nil && opts.Input != io.Reader(os.Stdin) {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil && opts.Output != io.Writer(os.Stdout) {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(newModel(lib, newStyles(opts.Colorize)), progOpts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run menu: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if len(m.fields) > 0 {
			return m.updateField(msg)
		}
		return m, nil
	}

	if key.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.screen {
	case mainScreen, listScreen:
		return m.updateMenu(key)
	case displayScreen:
		m.screen = listScreen
		return m, nil
	default:
		return m.updateForm(key)
	}
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m model) menuItems() []string {
	if m.screen == mainScreen {
		return mainItems
	}
	return listItems
}

func (m model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.menuItems()
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "enter":
		return m.choose(m.cursor)
	case "q", "esc":
		if m.screen == mainScreen {
			return m.quit()
		}
		return m.toMain(""), nil
	default:
		s := key.String()
		if len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(items) {
			return m.choose(int(s[0] - '1'))
		}
	}
	return m, nil
}

func (m model) choose(index int) (tea.Model, tea.Cmd) {
	m.cursor = index
	if m.screen == mainScreen {
		switch index {
		case 0:
			return m.toList(library.Watched, ""), nil
		case 1:
			return m.toList(library.ToWatch, ""), nil
		case 2:
			return m.openForm(searchScreen, titleField())
		default:
			return m.quit()
		}
	}

	switch index {
	case 0:
		return m.openForm(addScreen, titleField(), descriptionField(), durationField())
	case 1:
		return m.openForm(removeScreen, titleField())
	case 2:
		m.screen = displayScreen
		m.status = ""
		return m, nil
	default:
		return m.toMain(""), nil
	}
}

func (m model) toMain(status string) model {
	m.screen = mainScreen
	m.cursor = 0
	m.fields = nil
	m.status = status
	return m
}

func (m model) toList(list library.List, status string) model {
	m.screen = listScreen
	m.list = list
	m.cursor = 0
	m.fields = nil
	m.status = status
	return m
}

func (m model) openForm(s screen, fields ...field) (tea.Model, tea.Cmd) {
	m.screen = s
	m.fields = fields
	m.focus = 0
	m.status = ""
	return m, m.fields[0].input.Focus()
}

func (m model) updateForm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		if m.screen == searchScreen {
			return m.toMain(""), nil
		}
		return m.toList(m.list, ""), nil
	case tea.KeyEnter:
		f := &m.fields[m.focus]
		if !f.check() {
			return m, nil
		}
		if m.focus < len(m.fields)-1 {
			f.input.Blur()
			m.focus++
			return m, m.fields[m.focus].input.Focus()
		}
		return m.submit(), nil
	}
	return m.updateField(key)
}

func (m model) updateField(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m model) submit() model {
	values := make([]string, len(m.fields))
	for i, f := range m.fields {
		values[i] = movie.NormalizeText(f.input.Value())
	}

	switch m.screen {
	case addScreen:
		minutes, err := movie.ParseDuration(values[2])
		if err != nil {
			return m.toList(m.list, m.styles.errText.Render(err.Error()))
		}
		err = m.lib.Add(m.list, values[0], values[1], minutes)
		return m.toList(m.list, m.persistStatus("Movie successfully added!", err))
	case removeScreen:
		_, err := m.lib.Remove(m.list, values[0])
		if errors.Is(err, catalog.ErrNotFound) {
			return m.toList(m.list, m.styles.errText.Render("Movie not found!"))
		}
		return m.toList(m.list, m.persistStatus("Movie successfully removed!", err))
	default:
		return m.toMain(m.renderSearch(values[0]))
	}
}

// persistStatus reports success, adding a warning when the list stayed in
// memory but could not be written.
func (m model) persistStatus(message string, err error) string {
	status := m.styles.success.Render(message)
	if err != nil {
		status += "\n" + m.styles.errText.Render("Warning: "+err.Error())
	}
	return status
}

func (m model) renderSearch(title string) string {
	match, ok := m.lib.Search(title)
	if !ok {
		return m.styles.errText.Render("Movie not found in either list.")
	}
	var b strings.Builder
	b.WriteString(m.styles.list(match.List).Render(fmt.Sprintf("Found in %s list:", match.List)))
	b.WriteString("\n")
	b.WriteString(m.renderRecord(match.List, match.Record))
	return b.String()
}
