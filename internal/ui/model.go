package ui

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"multipick/internal/config"
	"multipick/internal/domain"
	"multipick/internal/eventbus"
	"multipick/internal/selection"
	"multipick/internal/ui/views"
)

const (
	headerRows   = 2 // title and status
	minListWidth = 20
)

// layout holds the screen regions of one frame
type layout struct {
	list    selection.Rect
	details selection.Rect
	footer  string
}

// Model is the picker UI. It draws the directory listing every frame and
// feeds each item to the selection controller, once per input message and
// once per View.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	width    int
	height   int
	help     help.Model
	keys     keyMap
	renderer *views.Renderer

	dir      string
	items    domain.ItemList
	scans    int  // started minus completed scans; forwarded events may arrive in any order
	loaded   bool // a listing has arrived
	offset   int  // index of the first visible item

	selector *selection.Controller
	host     *listHost
	panes    *paneTracker
	color    selection.Color

	pointer  selection.Point // last known pointer position
	pressing bool            // left button held since a press in the list

	status     string
	statusKind views.StatusKind
	accepted   bool
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	panes := newPaneTracker()

	var focus selection.FocusProvider = selection.WindowFocus{Window: paneList, Tracker: panes}
	if cfg.Selection.Focus == config.FocusPanel {
		focus = selection.PanelFocus{}
	}

	return &Model{
		bus:      bus,
		config:   cfg,
		width:    80,
		height:   24,
		help:     help.New(),
		keys:     newKeyMap(),
		renderer: views.NewRenderer(cfg.UI.ShowDetails),
		dir:      cfg.Source.Dir,
		selector: selection.NewController(),
		host:     &listHost{FocusProvider: focus},
		panes:    panes,
		color:    cfg.SelectionColor(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("multipick")
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampOffset()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.FocusMsg:
		m.panes.terminalFocused = true

	case tea.BlurMsg:
		m.panes.terminalFocused = false
		// The drag can't be followed once the terminal loses focus
		if m.pressing {
			m.pressing = false
			m.runInputFrame(selection.Event{Kind: selection.EventDragExit, Pointer: m.pointer})
		}

	case EventMsg:
		m.handleEvent(msg.Event)

	case pagerMsg:
		if msg.err != nil {
			slog.Error("ui: pager failed", "err", msg.err)
			m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err), views.StatusError)
		}
	}
	return m, nil
}

// View implements tea.Model. Drawing the list is the paint frame of the selection controller.
func (m *Model) View() string {
	l := m.layout()

	list := m.paintList(l.list)
	details := m.renderer.RenderDetails(m.selectedNames(), m.panes.FocusedWindow() == paneDetails, l.details.W, l.details.H)

	return strings.Join([]string{
		m.renderer.RenderHeader(m.dir, m.scanning(), m.width),
		m.renderer.RenderStatus(m.statusLine(), m.statusKind, m.width),
		lipgloss.JoinHorizontal(lipgloss.Top, list, details),
		l.footer,
	}, "\n")
}

// SelectedPaths returns the paths of the selected items in list order
func (m *Model) SelectedPaths() []string {
	return m.items.Paths(m.selector.SelectedIndexes())
}

// Result returns the selected paths if the user accepted, nil otherwise
func (m *Model) Result() []string {
	if !m.accepted {
		return nil
	}
	return m.SelectedPaths()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Accept):
		m.accepted = true
		return tea.Quit
	case key.Matches(msg, m.keys.SwitchPane):
		m.panes.toggle()
	case key.Matches(msg, m.keys.Rescan):
		m.setStatus("Rescanning…", views.StatusInfo)
		m.bus.Publish(eventbus.ScanRequestedEvent{Dir: m.dir})
	case key.Matches(msg, m.keys.View):
		paths := m.SelectedPaths()
		if len(paths) == 0 {
			m.setStatus("Nothing selected", views.StatusInfo)
			return nil
		}
		return viewSelection(m.dir, paths)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.clampOffset()
	}
	return nil
}

// handleMouse turns a mouse message into an input frame
func (m *Model) handleMouse(msg tea.MouseMsg) {
	m.pointer = selection.Point{X: msg.X, Y: msg.Y}
	ev := selection.Event{
		Kind:     selection.EventOther,
		Pointer:  m.pointer,
		Range:    msg.Shift,
		Additive: msg.Ctrl || msg.Alt, // many terminals keep ctrl+click for themselves
	}
	l := m.layout()

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll(1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		switch {
		case l.list.Contains(m.pointer):
			ev.Kind = selection.EventPointerDown
			m.pressing = true
			m.panes.active = paneList
		case l.details.Contains(m.pointer):
			// The details pane takes the click
			ev.Kind = selection.EventUsed
			m.panes.active = paneDetails
		}
	case msg.Action == tea.MouseActionRelease:
		ev.Kind = selection.EventPointerUp
		m.pressing = false
	}

	m.runInputFrame(ev)
}

// runInputFrame feeds ev to every item and announces selection changes
func (m *Model) runInputFrame(ev selection.Event) {
	before := m.selector.SelectedIndexes()

	m.host.panel = m.layout().list
	m.host.redraw = false
	m.selector.Store().Bind(m.items)
	for i := range m.items {
		m.selector.SetStateColor(m.host, m.items, i, ev, m.color)
	}

	if !m.host.redraw {
		return
	}
	after := m.selector.SelectedIndexes()
	if slices.Equal(before, after) {
		return
	}

	paths := m.items.Paths(after)
	slog.Debug("ui: selection changed", "event", ev.Kind.String(), "selected", len(after))
	m.setStatus(fmt.Sprintf("%d selected", len(after)), views.StatusInfo)
	m.bus.Publish(eventbus.SelectionChangedEvent{Indexes: after, Paths: paths})
}

// paintList draws the visible items into the list pane and reports their bounds
func (m *Model) paintList(panel selection.Rect) string {
	paint := selection.Event{Kind: selection.EventPaint, Pointer: m.pointer}
	items := m.renderer.Items()

	m.selector.Store().Bind(m.items)
	m.host.beginPaint(panel)
	defer m.host.endPaint()

	rows := make([]string, 0, panel.H)
	y := panel.Y
	bottom := panel.Y + panel.H
	for i, item := range m.items {
		if i < m.offset || y >= bottom {
			// Off-screen items get an empty rect so a stale one can't catch clicks
			m.host.lastRect = selection.Rect{}
			m.selector.SetStateColor(m.host, m.items, i, paint, m.color)
			continue
		}

		block := items.RenderItem(item, panel.W, false, nil)
		h := lipgloss.Height(block)
		if y+h > bottom {
			h = bottom - y
		}
		m.host.lastRect = selection.Rect{X: panel.X, Y: y, W: panel.W, H: h}
		selected := m.selector.SetStateColor(m.host, m.items, i, paint, m.color)

		var bg lipgloss.TerminalColor
		if c, ok := m.host.overlayAt(y); ok {
			bg = views.Overlay(c, m.config.UI.Background)
		}
		if selected || bg != nil {
			block = items.RenderItem(item, panel.W, selected, bg)
		}

		rows = append(rows, strings.Split(block, "\n")[:h]...)
		y += h
	}

	if len(m.items) == 0 {
		rows = append(rows, m.renderer.RenderEmpty(m.scanning() || !m.loaded, panel.W))
	}
	for len(rows) < panel.H {
		rows = append(rows, m.renderer.RenderBlankRow(panel.W))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) handleEvent(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.ScanStartedEvent:
		m.scans++
	case eventbus.ScanCompletedEvent:
		m.scans--
	case eventbus.ItemsLoadedEvent:
		m.loaded = true
		m.dir = ev.Dir
		m.setItems(ev.Items)
	case eventbus.ErrorEvent:
		m.setStatus(fmt.Sprintf("%s: %v", ev.Message, ev.Err), views.StatusError)
	}
}

// setItems installs a new listing. An unchanged listing keeps the current
// slice, and with it the selection.
func (m *Model) setItems(items domain.ItemList) {
	if sameEntries(m.items, items) {
		copy(m.items, items)
	} else {
		m.items = items
	}
	m.selector.Store().Bind(m.items)
	m.clampOffset()
	m.setStatus(fmt.Sprintf("%d entries", len(items)), views.StatusSuccess)
}

func sameEntries(a, b domain.ItemList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Path != b[i].Path || a[i].IsDir != b[i].IsDir {
			return false
		}
	}
	return true
}

func (m *Model) layout() layout {
	footer := m.help.View(m.keys)

	listH := m.height - headerRows - lipgloss.Height(footer)
	if listH < 1 {
		listH = 1
	}
	listW := int(float64(m.width) * m.config.UI.ListRatio)
	if listW < minListWidth {
		listW = min(m.width, minListWidth)
	}

	return layout{
		list:    selection.Rect{X: 0, Y: headerRows, W: listW, H: listH},
		details: selection.Rect{X: listW, Y: headerRows, W: m.width - listW, H: listH},
		footer:  footer,
	}
}

// visibleItems returns how many items fit in the list pane
func (m *Model) visibleItems() int {
	perItem := 1
	if m.config.UI.ShowDetails {
		perItem = 2
	}
	return max(1, m.layout().list.H/perItem)
}

func (m *Model) scroll(delta int) {
	m.offset += delta
	m.clampOffset()
}

func (m *Model) clampOffset() {
	maxOffset := max(0, len(m.items)-m.visibleItems())
	m.offset = min(max(m.offset, 0), maxOffset)
}

func (m *Model) selectedNames() []string {
	indexes := m.selector.SelectedIndexes()
	names := make([]string, 0, len(indexes))
	for _, i := range indexes {
		if i < len(m.items) {
			names = append(names, m.items[i].Name)
		}
	}
	return names
}

// scanning reports whether a scan is still outstanding
func (m *Model) scanning() bool {
	return m.scans != 0
}

func (m *Model) setStatus(msg string, kind views.StatusKind) {
	m.status = msg
	m.statusKind = kind
}

func (m *Model) statusLine() string {
	if m.status != "" {
		return m.status
	}
	return fmt.Sprintf("%d entries", len(m.items))
}
