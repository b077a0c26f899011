package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/extcat/internal/catalog"
	"github.com/wexinc/extcat/internal/logging"
)

// RunOptions configures Run.
type RunOptions struct {
	Options

	// Watch reloads the catalog when its file changes.
	Watch    bool
	Debounce time.Duration

	Logger *logging.Logger
}

// Run starts the browser over cat and blocks until it exits or ctx is done.
func Run(ctx context.Context, cat *catalog.Catalog, opts RunOptions) error {
	if cat == nil {
		cat = catalog.New(nil)
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNoop()
	}
	if opts.CatalogPath == "" {
		opts.CatalogPath = cat.Path
	}

	model := New(cat, opts.Options)
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.Watch && opts.CatalogPath != "" {
		if err := watchCatalog(ctx, opts, log, p.Send); err != nil {
			log.Warn("catalog watch disabled", "path", opts.CatalogPath, "error", err)
		}
	}

	exited := make(chan struct{})
	defer close(exited)
	go func() {
		select {
		case <-ctx.Done():
			p.Send(QuitMsg{Reason: context.Cause(ctx).Error()})
		case <-exited:
		}
	}()

	log.Info("browser started", "extensions", cat.Len(), "watch", opts.Watch)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// watchCatalog starts a watcher on the catalog file and forwards reloads
// and reload failures to the browser through send.
func watchCatalog(ctx context.Context, opts RunOptions, log *logging.Logger, send func(tea.Msg)) error {
	w := catalog.NewWatcher(opts.CatalogPath, opts.Debounce, func(c *catalog.Catalog) {
		send(CatalogReloadedMsg{Catalog: c})
	}).WithLogger(log).OnError(func(err error) {
		send(ErrorMsg{Error: "catalog reload failed, showing the previous catalog: " + err.Error()})
	})
	return w.Start(ctx)
}
