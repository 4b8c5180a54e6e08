// tui/app.go
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yackko/userlist/internal/fetch"
	"github.com/yackko/userlist/internal/listctl"
	"github.com/yackko/userlist/types"
)

// Screen lines above the table. The table header sits on tableTop.
const (
	controlsLine = 1
	filterLine   = 2
	tableTop     = 4
	// title, controls, filter, blank, table header (2), blank, status; the
	// help footer is measured separately
	chromeLines = 8
)

// usersLoadedMsg carries the result of the startup fetch.
type usersLoadedMsg struct {
	users []types.User
	err   error
}

// frame is what the controller's change notifications write into. Model is
// copied by value on every Update, so it holds a pointer to this.
type frame struct {
	rows   []types.User
	status string
}

// Model is the Bubble Tea model of the user list screen.
type Model struct {
	ctl    *listctl.Controller
	src    fetch.Source
	ctx    context.Context
	cancel context.CancelFunc

	frame       *frame
	unsubscribe func()

	filter    textinput.Model
	filtering bool
	spinner   spinner.Model
	help      help.Model
	keys      keyMap

	loading bool
	cursor  int
	offset  int
	width   int
	height  int
}

// NewModel wires a model to ctl. The first Init starts loading from src; the
// fetch is canceled when the model quits or ctx ends.
func NewModel(ctx context.Context, ctl *listctl.Controller, src fetch.Source) Model {
	ctx, cancel := context.WithCancel(ctx)

	ti := textinput.New()
	ti.Placeholder = "Search by country"
	ti.Prompt = "Country: "
	ti.PromptStyle = BlurredStyle
	ti.CharLimit = 64
	ti.SetValue(ctl.CountryFilter())

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = FocusedStyle

	fr := &frame{rows: ctl.View()}
	unsubscribe := ctl.Subscribe(func(ch listctl.Change) {
		fr.rows = ctl.View()
		fr.status = ch.Detail
	})

	return Model{
		ctl:         ctl,
		src:         src,
		ctx:         ctx,
		cancel:      cancel,
		frame:       fr,
		unsubscribe: unsubscribe,
		filter:      ti,
		spinner:     s,
		help:        help.New(),
		keys:        defaultKeyMap(),
		loading:     src != nil,
	}
}

// Init starts the spinner and the single startup fetch.
func (m Model) Init() tea.Cmd {
	if m.src == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m Model) load() tea.Cmd {
	ctx, src := m.ctx, m.src
	return func() tea.Msg {
		users, err := src.Fetch(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	m.unsubscribe()
	return m, tea.Quit
}

// Update handles messages on the UI loop. Every controller mutation happens
// here.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		m.loading = false
		// failures only reach the log; the table stays empty
		_ = m.ctl.Apply(msg.users, msg.err)
		m.clamp()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.clamp()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc", "enter":
		m.blurFilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if v := m.filter.Value(); v != m.ctl.CountryFilter() {
		m.ctl.SetCountryFilter(v)
		m.clamp()
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := max(1, m.tableHeight())
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		m.cursor--
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.frame.rows) - 1
	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= page
	case key.Matches(msg, m.keys.PageDown):
		m.cursor += page
	case key.Matches(msg, m.keys.Delete):
		m.listView().DeleteAt(m.cursor)
	case key.Matches(msg, m.keys.Colors):
		m.ctl.ToggleColors()
	case key.Matches(msg, m.keys.CountrySort):
		m.ctl.ToggleSortByCountry()
	case key.Matches(msg, m.keys.SortName):
		m.ctl.SetSort(types.SortName)
	case key.Matches(msg, m.keys.SortLast):
		m.ctl.SetSort(types.SortLast)
	case key.Matches(msg, m.keys.SortCountry):
		m.ctl.SetSort(types.SortCountry)
	case key.Matches(msg, m.keys.Reset):
		m.ctl.Reset()
	case key.Matches(msg, m.keys.Filter):
		cmd := m.focusFilter()
		return m, cmd
	case key.Matches(msg, m.keys.ClearFilter):
		if m.ctl.CountryFilter() != "" {
			m.filter.SetValue("")
			m.ctl.SetCountryFilter("")
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.clamp()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.cursor--
		m.clamp()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.cursor++
		m.clamp()
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch {
	case msg.Y == controlsLine:
		if b, ok := m.buttonAt(msg.X); ok {
			b.press()
		}
	case msg.Y == filterLine:
		cmd := m.focusFilter()
		return m, cmd
	case msg.Y >= tableTop:
		if m.filtering {
			m.blurFilter()
		}
		hit := m.listView().Click(msg.X, msg.Y-tableTop)
		if hit.Kind == HitRow {
			m.cursor = hit.Row
		}
	}
	m.clamp()
	return m, nil
}

func (m *Model) focusFilter() tea.Cmd {
	m.filtering = true
	m.filter.PromptStyle = FocusedStyle
	return m.filter.Focus()
}

func (m *Model) blurFilter() {
	m.filtering = false
	m.filter.PromptStyle = BlurredStyle
	m.filter.Blur()
}

// tableHeight is the number of rows that fit under the chrome and the help
// footer, which grows when the full help is shown; 0 before the first resize.
func (m Model) tableHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(1, m.height-chromeLines-lipgloss.Height(m.help.View(m.keys)))
}

// clamp keeps the cursor on a row and the row inside the viewport.
func (m *Model) clamp() {
	n := len(m.frame.rows)
	m.cursor = max(0, min(m.cursor, n-1))
	h := m.tableHeight()
	if h == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	m.offset = max(0, min(m.offset, n-h))
}

func (m Model) listView() ListView {
	empty := "No users."
	switch {
	case m.loading:
		empty = ""
	case m.ctl.Len() > 0:
		empty = "No users match this filter."
	}
	return ListView{
		Users:      m.frame.rows,
		ShowColors: m.ctl.ShowColors(),
		Cursor:     m.cursor,
		Offset:     m.offset,
		Height:     m.tableHeight(),
		Empty:      empty,
		OnSort:     m.ctl.SetSort,
		OnDelete:   m.ctl.DeleteUser,
	}
}

type button struct {
	label  string
	active bool
	press  func()
}

func (m Model) buttons() []button {
	colors := "Color rows"
	if m.ctl.ShowColors() {
		colors = "Plain rows"
	}
	country := "Sort by country"
	if m.ctl.Sort() == types.SortCountry {
		country = "Don't sort by country"
	}
	return []button{
		{label: colors, active: m.ctl.ShowColors(), press: m.ctl.ToggleColors},
		{label: country, active: m.ctl.Sort() == types.SortCountry, press: m.ctl.ToggleSortByCountry},
		{label: "Restore deleted users", press: m.ctl.Reset},
	}
}

func (b button) render() string {
	if b.active {
		return ButtonActiveStyle.Render(b.label)
	}
	return ButtonStyle.Render(b.label)
}

// buttonAt returns the control drawn at column x of the controls line.
func (m Model) buttonAt(x int) (button, bool) {
	start := 0
	for _, b := range m.buttons() {
		w := lipgloss.Width(b.render())
		if x >= start && x < start+w {
			return b, true
		}
		start += w + 1
	}
	return button{}, false
}

func (m Model) View() string {
	var b strings.Builder

	title := TitleStyle.Render("User list")
	count := fmt.Sprintf(" %d users", m.ctl.Total())
	if shown := len(m.frame.rows); shown != m.ctl.Total() {
		count = fmt.Sprintf(" %d/%d users", shown, m.ctl.Total())
	}
	b.WriteString(title + CountStyle.Render(count) + "\n")

	rendered := make([]string, 0, 3)
	for _, btn := range m.buttons() {
		rendered = append(rendered, btn.render())
	}
	b.WriteString(strings.Join(rendered, " ") + "\n")
	b.WriteString(m.filter.View() + "\n\n")

	b.WriteString(m.listView().View() + "\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading users…")
	} else {
		b.WriteString(StatusStyle.Render(m.frame.status))
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

// Run starts the full-screen program and blocks until the user quits.
func Run(ctx context.Context, ctl *listctl.Controller, src fetch.Source) error {
	p := tea.NewProgram(NewModel(ctx, ctl, src),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
