package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/raven-themes/raven/internal/config"
	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/log"
	"github.com/raven-themes/raven/internal/paths"
	"github.com/raven-themes/raven/internal/remote"
	"github.com/raven-themes/raven/internal/store"
	"github.com/raven-themes/raven/internal/ui"
	"github.com/raven-themes/raven/internal/ui/style"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	Layout paths.Layout

	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Style options
	StyleEnabled bool

	// Server overrides from flags; zero values defer to config.
	Host    string
	Timeout time.Duration
}

// DefaultOptions returns the options for the current user's layout.
func DefaultOptions() (Options, error) {
	layout, err := paths.Default()
	if err != nil {
		return Options{}, err
	}
	return Options{Layout: layout, StyleEnabled: true}, nil
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	if err := opts.Layout.Ensure(); err != nil {
		return nil, fmt.Errorf("prepare %s: %w", opts.Layout.Root, err)
	}

	cfg := config.NewProvider(opts.Layout.ConfigFile())
	settings, err := cfg.GetAll()
	if err != nil {
		return nil, err
	}

	logger := newLogger(opts.Layout, settings)
	log.SetDefault(asFileLogger(logger))

	style.Init(opts.StyleEnabled, settings)

	themeStore, err := store.New(opts.Layout.DBFile(), opts.Layout.SessionFile())
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	client, err := remote.New(remote.Config{
		BaseURL:   firstNonEmpty(opts.Host, settings["host"]),
		Timeout:   timeout(opts.Timeout, settings["timeout_sec"]),
		UserAgent: "raven/" + Version,
		Logger:    logger,
	})
	if err != nil {
		_ = themeStore.Close()
		_ = logger.Close()
		return nil, err
	}

	logger.Debug("app: root=%s host=%s", opts.Layout.Root, client.BaseURL())

	return &domain.Application{
		ThemesDir: opts.Layout.ThemesDir(),
		Config:    cfg,
		Logger:    logger,
		Output:    NewWriter(opts, cfg),
		Styler:    style.NewStyler(),
		Store:     themeStore,
		Remote:    client,
	}, nil
}

// NewWriter builds the output writer for opts. Help output uses it before
// the rest of the application exists.
func NewWriter(opts Options, cfg domain.ConfigProvider) *ui.Writer {
	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	if cfg != nil {
		writerOpts = append(writerOpts, ui.WithConfigGetter(cfg.Get))
	}
	return ui.NewWriter(writerOpts...)
}

func newLogger(layout paths.Layout, settings map[string]string) domain.Logger {
	if settings["enable_log"] != "true" {
		return log.NopLogger{}
	}
	l, err := log.New(layout.LogFile(), log.ParseLevel(settings["log_level"]))
	if err != nil {
		return log.NopLogger{}
	}
	return l
}

func asFileLogger(l domain.Logger) *log.Logger {
	if fl, ok := l.(*log.Logger); ok {
		return fl
	}
	return nil
}

func timeout(override time.Duration, configured string) time.Duration {
	if override > 0 {
		return override
	}
	if n, err := strconv.Atoi(configured); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app == nil {
		return nil
	}
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.Store != nil {
		_ = app.Store.Close()
	}
	log.SetDefault(nil)
	return nil
}
