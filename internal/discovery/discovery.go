package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"pkt.systems/pslog"

	"swipepager/internal/eventbus"
)

// MaxDepth is the directory level, counting the root as 0, at which the
// scan stops descending
const MaxDepth = 3

// pageExts are the file types that become pages
var pageExts = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".rst":      true,
	".org":      true,
	".adoc":     true,
}

var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"target":       true,
	"build":        true,
	"dist":         true,
	"__pycache__":  true,
}

// DiscoveryService finds page files below a directory
type DiscoveryService interface {
	Scan(ctx context.Context, root string) ([]string, error)
}

type discoveryService struct {
	bus    eventbus.EventBus
	logger pslog.Logger
}

// NewDiscoveryService creates a new discovery service; bus may be nil
func NewDiscoveryService(ctx context.Context, bus eventbus.EventBus) DiscoveryService {
	return &discoveryService{
		bus:    bus,
		logger: pslog.Ctx(ctx).With("component", "discovery"),
	}
}

// Scan returns the page files below root in lexical path order. Hidden
// and build directories are skipped; unreadable entries are logged and
// skipped.
func (ds *discoveryService) Scan(ctx context.Context, root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			if path == root {
				return err
			}
			ds.logger.With("err", err).Warn("skipping unreadable path", "path", path)
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			rel, _ := filepath.Rel(root, path)
			if strings.Count(rel, string(filepath.Separator))+1 >= MaxDepth ||
				strings.HasPrefix(name, ".") || skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") || !pageExts[strings.ToLower(filepath.Ext(name))] {
			return nil
		}
		found = append(found, path)
		return nil
	})

	if err != nil {
		if !errors.Is(err, context.Canceled) && ds.bus != nil {
			ds.bus.Publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("Failed to scan %s", root),
				Err:     err,
			})
		}
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.Strings(found)
	ds.logger.Debug("scan finished", "root", root, "pages", len(found))
	return found, nil
}
