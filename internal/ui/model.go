package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"pkt.systems/pslog"

	"swipepager/internal/config"
	"swipepager/internal/domain"
	"swipepager/internal/eventbus"
	"swipepager/internal/pager"
	"swipepager/internal/ui/views"
)

// Rows taken by the title bar above the strip and by the status and help
// lines below it.
const (
	headerRows = 1
	footerRows = 2
)

// frameLoop tracks the animation tick loop. A new loop bumps gen so ticks
// still queued from an older one are ignored.
type frameLoop struct {
	gen    uint64
	active bool
}

// surface records what the pager asks of the terminal
type surface struct {
	dirty   bool
	scrolls int
}

func (s *surface) ScrollTo(x, y int) { s.scrolls++ }
func (s *surface) Invalidate()       { s.dirty = true }

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger pslog.Logger

	styles *views.Styles
	keys   keyMap
	help   help.Model

	width  int
	height int

	panels  []*Panel
	pager   *pager.Container
	surface *surface
	frames  frameLoop
	frameDt time.Duration
	clock   func() time.Time

	pressed     bool // left button held inside a pointer session
	inPagerMode bool // ov owns the terminal
	ready       bool
	status      string
	statusErr   bool
	changeSeq   uint64

	program  *tea.Program
	pagerOps *PagerOps
}

// NewModel creates a new UI model showing pages. The page restored from the
// config (or startPage when it is not negative) is selected before the
// first layout.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, pages []domain.Page, startPage int) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		bus:     bus,
		config:  cfg,
		logger:  pslog.Ctx(ctx).With("component", "ui"),
		styles:  views.NewStyles(),
		keys:    newKeyMap(),
		help:    help.New(),
		surface: &surface{},
		frameDt: time.Duration(cfg.Pager.FrameMs) * time.Millisecond,
		clock:   time.Now,
	}

	m.pager = pager.New(m.surface,
		pager.WithEdgeOffsetDp(cfg.Pager.EdgeOffsetDp),
		pager.WithDensity(cfg.Pager.Density),
		pager.WithFlingThreshold(cfg.Pager.FlingThreshold),
		pager.WithSettleDuration(time.Duration(cfg.Pager.SettleMs)*time.Millisecond),
		pager.WithClock(func() time.Time { return m.clock() }),
		pager.WithLogger(pslog.Ctx(ctx)),
		pager.WithPageChangeHandler(m.pageChanged),
	)

	children := make([]pager.Child, 0, len(pages))
	for _, p := range pages {
		panel := NewPanel(p, m.styles)
		m.panels = append(m.panels, panel)
		children = append(children, panel)
	}
	m.pager.SetChildren(children)

	switch {
	case startPage >= 0:
		m.pager.SetCurrentPage(startPage)
	case cfg.UISettings.RememberPage:
		m.pager.SetCurrentPage(cfg.UISettings.LastPage)
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pagerOps = NewPagerOps(p)
}

// Pager exposes the paging container
func (m *Model) Pager() *pager.Container { return m.pager }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("swipepager")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		if !m.ready {
			m.ready = true
			m.publish(eventbus.AppReadyEvent{Pages: m.pager.PageCount()})
		}
		return m, m.afterPager()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.FocusMsg:
		m.pager.SetFocused(true)
		return m, nil

	case tea.BlurMsg:
		m.pager.SetFocused(false)
		return m, nil

	case frameMsg:
		return m, m.handleFrame(msg)

	case EventMsg:
		if ev, ok := msg.Event.(eventbus.ErrorEvent); ok {
			m.setError(ev.Message)
		}
		return m, nil

	case pagerExitMsg:
		if msg.err != nil {
			m.logger.With("err", msg.err).Warn("reader failed", "what", msg.what)
			m.setError(fmt.Sprintf("Failed to open %s", msg.what))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.pager.Detach()
		return tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.pager.ScrollToPage(m.pager.CurrentPage() - 1)
	case key.Matches(msg, m.keys.Next):
		m.pager.ScrollToPage(m.pager.CurrentPage() + 1)
	case key.Matches(msg, m.keys.First):
		m.pager.ScrollToPage(0)
	case key.Matches(msg, m.keys.Last):
		m.pager.ScrollToPage(m.pager.PageCount() - 1)
	case key.Matches(msg, m.keys.Up):
		if p := m.currentPanel(); p != nil {
			p.ScrollBy(-1)
		}
	case key.Matches(msg, m.keys.Down):
		if p := m.currentPanel(); p != nil {
			p.ScrollBy(1)
		}
	case key.Matches(msg, m.keys.Open):
		if p := m.currentPanel(); p != nil {
			return m.openPage(m.pager.CurrentPage(), p.Page())
		}
	case key.Matches(msg, m.keys.Help):
		return m.openHelp()
	}
	return m.afterPager()
}

// handleMouse turns terminal mouse reports into pointer events. Wheel
// reports scroll the current page and never reach the pager.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if p := m.currentPanel(); p != nil {
			p.ScrollBy(-3)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if p := m.currentPanel(); p != nil {
			p.ScrollBy(3)
		}
		return nil
	}

	ev := pager.PointerEvent{X: msg.X, Y: msg.Y - headerRows, At: m.clock()}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.inStrip(msg.Y) {
			return nil
		}
		ev.Action = pager.ActionDown
		m.pressed = true
	case tea.MouseActionMotion:
		if !m.pressed {
			return nil
		}
		ev.Action = pager.ActionMove
	case tea.MouseActionRelease:
		if !m.pressed {
			return nil
		}
		ev.Action = pager.ActionUp
		m.pressed = false
	default:
		return nil
	}

	m.pager.DispatchPointer(ev)
	return m.afterPager()
}

// handleFrame advances the transition and keeps ticking while it runs
func (m *Model) handleFrame(msg frameMsg) tea.Cmd {
	if msg.gen != m.frames.gen || !m.frames.active {
		return nil
	}
	m.surface.dirty = false
	m.pager.ComputeScroll(m.clock())
	if m.pager.Animating() || m.surface.dirty {
		return m.tick(msg.gen)
	}
	m.frames.active = false
	return nil
}

// afterPager starts the frame loop when the pager asked for a redraw
func (m *Model) afterPager() tea.Cmd {
	if !m.surface.dirty && !m.pager.Animating() {
		return nil
	}
	m.surface.dirty = false
	if m.frames.active {
		return nil
	}
	m.frames.active = true
	m.frames.gen++
	return m.tick(m.frames.gen)
}

func (m *Model) tick(gen uint64) tea.Cmd {
	return tea.Tick(m.frameDt, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// relayout measures and lays out the strip for the current window
func (m *Model) relayout() {
	w, h := m.width, m.stripHeight()
	m.pager.Measure(pager.ExactSpec(w), pager.ExactSpec(h))
	m.pager.Layout(pager.Rect{Top: headerRows, Right: w, Bottom: headerRows + h})
	m.logger.Debug("strip laid out", "width", w, "height", h, "pages", m.pager.PageCount())
}

func (m *Model) stripHeight() int {
	return max(m.height-headerRows-footerRows, 0)
}

func (m *Model) inStrip(y int) bool {
	return y >= headerRows && y < headerRows+m.stripHeight()
}

// visiblePanels returns the panels that take part in paging, in order
func (m *Model) visiblePanels() []*Panel {
	out := make([]*Panel, 0, len(m.panels))
	for _, p := range m.panels {
		if p.Visible() {
			out = append(out, p)
		}
	}
	return out
}

func (m *Model) currentPanel() *Panel {
	visible := m.visiblePanels()
	i := m.pager.CurrentPage()
	if i < 0 || i >= len(visible) {
		return nil
	}
	return visible[i]
}

func (m *Model) pageChanged(from, to int) {
	m.publish(eventbus.PageChangedEvent{From: from, To: to})
	if from != to && m.config.UISettings.RememberPage {
		m.changeSeq++
		m.publish(eventbus.ConfigChangedEvent{LastPage: to, Seq: m.changeSeq})
	}
	m.status = ""
	m.statusErr = false
}

func (m *Model) publish(ev eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(ev)
	}
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m *Model) openPage(index int, page domain.Page) tea.Cmd {
	if m.program == nil {
		return nil
	}
	m.publish(eventbus.PageOpenedEvent{Index: index, Title: page.Title})
	return m.runReader(page.Title, func() error { return m.pagerOps.ShowPage(page) })
}

func (m *Model) openHelp() tea.Cmd {
	if m.program == nil {
		return nil
	}
	return m.runReader("help", m.pagerOps.ShowHelp)
}

// runReader pauses rendering while ov owns the terminal
func (m *Model) runReader(what string, show func() error) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := show()
		m.program.Send(resumeRenderingMsg{})
		return pagerExitMsg{what: what, err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderStrip())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) renderHeader() string {
	title := m.styles.Title.Render("swipepager")
	if p := m.currentPanel(); p != nil {
		title += " " + m.styles.Dim.Render(p.Page().Title)
	}
	if !m.config.UISettings.ShowIndicator {
		return title
	}
	dots := views.Indicator(m.styles, m.pager.PageCount(), m.pager.CurrentPage())
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(dots)
	if gap < 1 {
		return title
	}
	return title + strings.Repeat(" ", gap) + dots
}

func (m *Model) renderStrip() string {
	visible := m.visiblePanels()
	blocks := make([]string, 0, len(visible))
	for _, p := range visible {
		blocks = append(blocks, p.View())
	}
	return views.Strip(blocks, m.pager.ScrollX(), m.width, m.stripHeight())
}

func (m *Model) renderStatus() string {
	if m.status != "" {
		if m.statusErr {
			return m.styles.StatusError.Render(m.status)
		}
		return m.styles.Status.Render(m.status)
	}

	count := m.pager.PageCount()
	if count == 0 {
		return m.styles.Status.Render("no pages")
	}
	s := fmt.Sprintf("page %d/%d  offset %d", m.pager.CurrentPage()+1, count, m.pager.ScrollX())
	if p := m.currentPanel(); p != nil && p.YOffset() > 0 {
		s += fmt.Sprintf("  line %d", p.YOffset()+1)
	}
	if m.pager.Dragging() {
		return m.styles.Status.Render(s) + " " + m.styles.DraggingMark.Render("dragging")
	}
	return m.styles.Status.Render(s)
}
