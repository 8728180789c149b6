package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name        string
		configLines []string
		key         string
		wantValue   string
		wantFound   bool
	}{
		{
			name:        "key exists in config file",
			configLines: []string{"timeout_sec=90"},
			key:         "timeout_sec",
			wantValue:   "90",
			wantFound:   true,
		},
		{
			name:        "default when file lacks key",
			configLines: []string{"log_level=debug"},
			key:         "host",
			wantValue:   "https://demenses.net",
			wantFound:   true,
		},
		{
			name:        "custom key in config",
			configLines: []string{"custom_key=custom_value"},
			key:         "custom_key",
			wantValue:   "custom_value",
			wantFound:   true,
		},
		{
			name:        "key not in config or defaults",
			configLines: []string{"log_level=debug"},
			key:         "nonexistent_key",
		},
		{
			name:        "broken file falls back to defaults",
			configLines: []string{"not a pair"},
			key:         "enable_log",
			wantValue:   "true",
			wantFound:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := configPath(t)
			writeConfig(t, path, tt.configLines...)

			gotValue, gotFound := Get(path, tt.key)
			require.Equal(t, tt.wantFound, gotFound)
			require.Equal(t, tt.wantValue, gotValue)
		})
	}
}

func TestGetAll(t *testing.T) {
	path := configPath(t)
	writeConfig(t, path, "timeout_sec=5", "custom=value")

	all, err := GetAll(path)
	require.NoError(t, err)
	require.Equal(t, "5", all["timeout_sec"])
	require.Equal(t, "value", all["custom"])
	require.Equal(t, "https://demenses.net", all["host"])
	require.Equal(t, "info", all["log_level"])
}

func TestGetAll_DefaultsOnParseError(t *testing.T) {
	path := configPath(t)
	writeConfig(t, path, "=broken")

	all, err := GetAll(path)
	require.NoError(t, err)
	require.Equal(t, Defaults(), all)
}

func fakeEnv(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestProvider_EnvOverrides(t *testing.T) {
	path := configPath(t)
	writeConfig(t, path, "host=http://from-file", "log_level=warn", "pager=more")

	p := NewProvider(path)
	p.lookupEnv = fakeEnv(map[string]string{
		"RAVEN_HOST":        "http://from-env",
		"RAVEN_TIMEOUT_SEC": "",
		"PAGER":             "ignored",
	})

	host, ok := p.Get("host")
	require.True(t, ok)
	require.Equal(t, "http://from-env", host)

	env, overridden := p.Overridden("host")
	require.True(t, overridden)
	require.Equal(t, "RAVEN_HOST", env)

	// empty variables do not override
	timeout, ok := p.Get("timeout_sec")
	require.True(t, ok)
	require.Equal(t, "30", timeout)

	// keys without an Env binding read the file
	pager, _ := p.Get("pager")
	require.Equal(t, "more", pager)
	_, overridden = p.Overridden("pager")
	require.False(t, overridden)

	all, err := p.GetAll()
	require.NoError(t, err)
	require.Equal(t, "http://from-env", all["host"])
	require.Equal(t, "warn", all["log_level"])
}

func TestProvider_SetUnset(t *testing.T) {
	path := configPath(t)
	p := NewProvider(path)
	p.lookupEnv = fakeEnv(nil)
	require.Equal(t, path, p.Path())

	require.NoError(t, p.Set("timeout_sec", "12"))
	require.NoError(t, p.Set("pager", "less -R"))

	value, ok := p.Get("timeout_sec")
	require.True(t, ok)
	require.Equal(t, "12", value)
	value, _ = p.Get("pager")
	require.Equal(t, "less -R", value)

	require.NoError(t, p.Unset("timeout_sec"))
	value, _ = p.Get("timeout_sec")
	require.Equal(t, "30", value)

	_, err := os.Stat(path + ".lock")
	require.True(t, os.IsNotExist(err))
}
