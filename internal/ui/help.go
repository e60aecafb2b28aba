package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"swipepager/internal/domain"
)

// RenderHelpContent renders the help text handed to the reader
func RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	row := func(k, d string) string {
		return fmt.Sprintf("  %-12s %s\n", keyStyle.Render(k), descStyle.Render(d))
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("swipepager help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(row("drag ←/→", "Swipe between pages"))
	help.WriteString(row("drag ↑/↓", "Scroll the page under the pointer"))
	help.WriteString(row("wheel", "Scroll the current page"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Keyboard"))
	help.WriteString("\n")
	help.WriteString(row("←/→, h/l", "Previous/next page"))
	help.WriteString(row("home/end", "First/last page"))
	help.WriteString(row("↑/↓, j/k", "Scroll the current page"))
	help.WriteString(row("enter", "Open the current page full screen"))
	help.WriteString(row("?", "Show this help"))
	help.WriteString(row("q", "Quit"))

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  A slow release settles on the nearest page; a quick flick always moves one page."))
	help.WriteString("\n")
	return help.String()
}

// PagerOps hands the terminal to ov for full-screen reading
type PagerOps struct {
	program *tea.Program
	// run replaces the ov session in tests
	run func(title string, r io.Reader) error
}

// NewPagerOps creates pager operations bound to program
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{program: program, run: runOviewer}
}

// ShowHelp shows the help text in the reader
func (o *PagerOps) ShowHelp() error {
	return o.show("help", strings.NewReader(RenderHelpContent()))
}

// ShowPage shows a page's body in the reader
func (o *PagerOps) ShowPage(page domain.Page) error {
	return o.show(page.Title, strings.NewReader(page.Body))
}

func (o *PagerOps) show(title string, r io.Reader) error {
	if o.program == nil {
		return errors.New("program not set")
	}

	if err := o.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("release terminal: %w", err)
	}
	defer func() {
		// give ov time to leave the alternate screen before we take it back
		time.Sleep(100 * time.Millisecond)
		_ = o.program.RestoreTerminal()
	}()

	if err := o.run(title, r); err != nil {
		return fmt.Errorf("show %s: %w", title, err)
	}
	return nil
}

func runOviewer(_ string, r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
