package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"swipepager/internal/config"
	"swipepager/internal/discovery"
	"swipepager/internal/domain"
	"swipepager/internal/eventbus"
	"swipepager/internal/ui"
)

type rootFlags struct {
	configPath string
	edgeOffset float64
	density    float64
	page       int
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	root := &cobra.Command{
		Use:   "swipepager [file|dir...]",
		Short: "Swipe through pages of text with the mouse",
		Long: "swipepager lays pages out side by side and pages between them with mouse swipes.\n" +
			"Files given as arguments become pages, directories contribute the text files below\n" +
			"them; otherwise pages come from the config file.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	root.Flags().StringVarP(&f.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	root.Flags().Float64Var(&f.edgeOffset, "edge-offset", 0, "boundary bounce distance in dp")
	root.Flags().Float64Var(&f.density, "density", 0, "terminal cells per dp")
	root.Flags().IntVarP(&f.page, "page", "p", -1, "page to start on (default: last page seen)")
	return root
}

func run(cmd *cobra.Command, args []string, f rootFlags) error {
	ctx := cmd.Context()
	logger := pslog.Ctx(ctx)

	bus := eventbus.New(ctx)
	defer bus.Close()

	cs := config.NewConfigService(f.configPath, bus)
	cfg, err := cs.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	recorder := newLastPageRecorder(cs, *cfg)

	if cmd.Flags().Changed("edge-offset") {
		cfg.Pager.EdgeOffsetDp = f.edgeOffset
	}
	if cmd.Flags().Changed("density") && f.density > 0 {
		cfg.Pager.Density = f.density
	}

	// before discovery, which publishes scan failures
	errs := subscribeErrors(bus, logger)

	files, err := expandArgs(ctx, discovery.NewDiscoveryService(ctx, bus), args)
	if err != nil {
		return err
	}
	pages, err := loadPages(cfg, cs.Path(), files)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		// the remembered page belongs to the configured deck
		cfg.UISettings.RememberPage = false
	}
	logger.Info("pages loaded", "pages", len(pages), "config", cs.Path())

	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		ev, ok := e.(eventbus.ConfigChangedEvent)
		if !ok || !cfg.UISettings.RememberPage {
			return
		}
		if err := recorder.Record(ev); err != nil {
			bus.Publish(eventbus.ErrorEvent{Message: "Failed to save last page", Err: err})
		}
	})
	bus.Subscribe(eventbus.EventPageChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.PageChangedEvent); ok {
			logger.Debug("page changed", "from", ev.From, "to", ev.To)
		}
	})
	bus.Subscribe(eventbus.EventPageOpened, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.PageOpenedEvent); ok {
			logger.Info("page opened", "index", ev.Index, "title", ev.Title)
		}
	})
	if os.Getenv("SWIPEPAGER_E2E_TEST") != "" {
		bus.Subscribe(eventbus.EventAppReady, func(eventbus.DomainEvent) {
			fmt.Fprint(os.Stdout, "__READY__")
		})
	}

	model := ui.NewModel(ctx, bus, cfg, pages, f.page)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)
	errs.attach(p)

	logger.Info("starting ui")
	_, err = p.Run()
	errs.attach(nil)

	if cfg.UISettings.RememberPage {
		if ferr := recorder.Flush(model.Pager().CurrentPage()); ferr != nil {
			logger.With("err", ferr).Error("failed to save last page")
		}
	}

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			logger.Info("ui stopped by signal")
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("ui exited normally")
	return nil
}

// errorReporter logs every ErrorEvent and forwards it to the UI while a
// program is attached.
type errorReporter struct {
	logger  pslog.Logger
	mu      sync.Mutex
	program *tea.Program
}

func subscribeErrors(bus eventbus.EventBus, logger pslog.Logger) *errorReporter {
	r := &errorReporter{logger: logger}
	bus.Subscribe(eventbus.EventError, r.handle)
	return r
}

func (r *errorReporter) attach(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.program = p
}

func (r *errorReporter) handle(e eventbus.DomainEvent) {
	if ev, ok := e.(eventbus.ErrorEvent); ok {
		r.logger.With("err", ev.Err).Error(ev.Message)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.program != nil {
		r.program.Send(ui.EventMsg{Event: e})
	}
}

// expandArgs replaces directory arguments with the page files found below them
func expandArgs(ctx context.Context, ds discovery.DiscoveryService, args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := ds.Scan(ctx, arg)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no pages found in %s", arg)
		}
		files = append(files, found...)
	}
	return files, nil
}

// loadPages picks the deck: files on the command line, then pages from the
// config, then the built-in introduction.
func loadPages(cfg *config.Config, configPath string, args []string) ([]domain.Page, error) {
	if len(args) > 0 {
		pages, err := config.PagesFromFiles(args)
		if err != nil {
			return nil, fmt.Errorf("load pages: %w", err)
		}
		return pages, nil
	}
	if len(cfg.Pages) > 0 {
		pages, err := config.LoadPages(cfg.Pages, filepath.Dir(configPath))
		if err != nil {
			return nil, fmt.Errorf("load pages from config: %w", err)
		}
		return pages, nil
	}
	return introPages(), nil
}

func introPages() []domain.Page {
	return []domain.Page{
		{Title: "Welcome", Body: "Drag left or right with the mouse to change pages.\n\n" +
			"A quick flick always moves exactly one page. A slow drag settles\n" +
			"on whichever page is closest when you let go."},
		{Title: "Scrolling", Body: "Drag up or down, use the wheel, or press j/k to scroll\n" +
			"inside a page. Vertical drags stay with the page; mostly\n" +
			"horizontal drags are taken over by the pager."},
		{Title: "Edges", Body: "Try swiping past the first or the last page: the strip\n" +
			"stops a little short of the boundary instead of snapping flush."},
		{Title: "Your pages", Body: "Pass files on the command line, or list pages in the config:\n\n" +
			"  [[pages]]\n  title = \"notes\"\n  file = \"notes.md\"\n\n" +
			"Press enter to read the current page full screen, ? for help."},
	}
}
