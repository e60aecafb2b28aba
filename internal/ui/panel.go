package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"swipepager/internal/domain"
	"swipepager/internal/pager"
	"swipepager/internal/ui/views"
)

// Panel is one page of the strip. Its body scrolls vertically in a
// viewport, either with the wheel or by dragging up and down; horizontal
// drags are taken over by the pager.
type Panel struct {
	page   domain.Page
	styles *views.Styles
	vp     viewport.Model

	width, height int
	bounds        pager.Rect

	dragging bool
	lastY    int
}

// NewPanel creates a panel showing page
func NewPanel(page domain.Page, styles *views.Styles) *Panel {
	p := &Panel{page: page, styles: styles, vp: viewport.New(0, 0)}
	p.vp.SetContent(page.Body)
	return p
}

// Page returns the page shown by the panel
func (p *Panel) Page() domain.Page { return p.page }

// Measure takes whatever the pager offers; a wrapping spec gets the
// body's natural size plus the frame.
func (p *Panel) Measure(w, h pager.MeasureSpec) {
	natW := lipgloss.Width(p.page.Body) + 2
	natH := lipgloss.Height(p.page.Body) + 3
	p.width, p.height = w.Resolve(natW), h.Resolve(natH)
}

func (p *Panel) MeasuredSize() (int, int) { return p.width, p.height }

// Layout sizes the viewport to the inside of the frame, below the title.
func (p *Panel) Layout(r pager.Rect) {
	p.bounds = r
	p.vp.Width = max(r.Width()-2, 0)
	p.vp.Height = max(r.Height()-3, 0)
	p.vp.SetYOffset(p.vp.YOffset)
}

func (p *Panel) Visible() bool { return !p.page.Hidden }

// HandlePointer accepts every sequence and scrolls the body by the
// vertical travel of each move.
func (p *Panel) HandlePointer(ev pager.PointerEvent) bool {
	switch ev.Action {
	case pager.ActionDown:
		p.dragging = true
		p.lastY = ev.Y
	case pager.ActionMove:
		if p.dragging {
			p.ScrollBy(p.lastY - ev.Y)
			p.lastY = ev.Y
		}
	case pager.ActionUp, pager.ActionCancel:
		p.dragging = false
	}
	return true
}

// ScrollBy scrolls the body by n lines, down for positive n
func (p *Panel) ScrollBy(n int) {
	if n != 0 {
		p.vp.SetYOffset(p.vp.YOffset + n)
	}
}

// YOffset returns the body's vertical scroll position
func (p *Panel) YOffset() int { return p.vp.YOffset }

// View renders the framed panel at its laid-out size
func (p *Panel) View() string {
	w, h := p.bounds.Width(), p.bounds.Height()
	if w < 2 || h < 2 {
		return lipgloss.NewStyle().Width(max(w, 0)).Height(max(h, 0)).Render("")
	}

	title := p.styles.PanelTitle.MaxWidth(w - 2).Render(p.page.Title)
	body := p.styles.PanelBody.Render(p.vp.View())
	inner := title
	if p.vp.Height > 0 {
		inner = lipgloss.JoinVertical(lipgloss.Left, title, body)
	}
	return p.styles.Panel.
		Width(w - 2).
		Height(h - 2).
		MaxHeight(h).
		Render(inner)
}
