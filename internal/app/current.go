package app

import (
	"fmt"
	"sync"

	"github.com/raven-themes/raven/internal/config"
	"github.com/raven-themes/raven/internal/domain"
)

var (
	mu         sync.Mutex
	configured *Options
	current    *domain.Application
)

// Configure sets the options used by Current. It must be called before the
// first Current call to take effect.
func Configure(opts Options) {
	mu.Lock()
	defer mu.Unlock()
	o := opts
	configured = &o
}

// Current returns the process-wide application, building it on first use.
// Commands that never touch the network or the store, such as help and
// version, never build it.
func Current() (*domain.Application, error) {
	mu.Lock()
	defer mu.Unlock()

	if current != nil {
		return current, nil
	}

	opts, err := options()
	if err != nil {
		return nil, err
	}

	a, err := New(opts)
	if err != nil {
		return nil, err
	}
	current = a
	return current, nil
}

// Config returns the config file of the configured layout without building
// the rest of the application.
func Config() (*config.Provider, error) {
	mu.Lock()
	defer mu.Unlock()

	opts, err := options()
	if err != nil {
		return nil, err
	}
	if err := opts.Layout.Ensure(); err != nil {
		return nil, fmt.Errorf("prepare %s: %w", opts.Layout.Root, err)
	}
	return config.NewProvider(opts.Layout.ConfigFile()), nil
}

// Server returns the theme server commands would talk to: --host, then
// the host config key, then its default. Nothing is created on disk.
func Server() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	opts, err := options()
	if err != nil {
		return "", err
	}
	host, _ := config.NewProvider(opts.Layout.ConfigFile()).Get("host")
	return firstNonEmpty(opts.Host, host), nil
}

// LogFile returns the log file of the configured layout.
func LogFile() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	opts, err := options()
	if err != nil {
		return "", err
	}
	return opts.Layout.LogFile(), nil
}

func options() (Options, error) {
	if configured != nil {
		return *configured, nil
	}
	return DefaultOptions()
}

// Shutdown closes the process-wide application if it was built.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		return nil
	}
	err := Close(current)
	current = nil
	return err
}
