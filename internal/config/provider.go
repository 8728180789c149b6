package config

import (
	"os"

	"github.com/raven-themes/raven/internal/domain"
)

// Provider is the config file at a fixed path with environment overrides
// applied on read. It implements domain.ConfigProvider.
type Provider struct {
	path      string
	lookupEnv func(string) (string, bool)
}

// NewProvider creates a provider backed by the file at path.
func NewProvider(path string) *Provider {
	return &Provider{path: path, lookupEnv: os.LookupEnv}
}

// Path returns the backing config file.
func (p *Provider) Path() string {
	return p.path
}

// Overridden returns the environment variable currently overriding key.
func (p *Provider) Overridden(key string) (string, bool) {
	k, ok := domain.GetConfigKey(key)
	if !ok || k.Env == "" {
		return "", false
	}
	if value, ok := p.lookupEnv(k.Env); ok && value != "" {
		return k.Env, true
	}
	return "", false
}

func (p *Provider) Get(key string) (string, bool) {
	if env, ok := p.Overridden(key); ok {
		value, _ := p.lookupEnv(env)
		return value, true
	}
	return Get(p.path, key)
}

func (p *Provider) GetAll() (map[string]string, error) {
	all, err := GetAll(p.path)
	if err != nil {
		return nil, err
	}
	for key := range all {
		if env, ok := p.Overridden(key); ok {
			all[key], _ = p.lookupEnv(env)
		}
	}
	return all, nil
}

func (p *Provider) Set(key, value string) error {
	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}
		lines, _ = Set(lines, key, value)
		return WriteLines(p.path, lines)
	})
}

func (p *Provider) Unset(key string) error {
	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}
		lines, _ = Unset(lines, key)
		return WriteLines(p.path, lines)
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
