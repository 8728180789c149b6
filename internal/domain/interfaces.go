package domain

import (
	"context"
	"io"
)

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)

	// Close flushes and closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
	Accent(text string) string
}

// SessionStore persists the single local user session.
type SessionStore interface {
	// LoadSession returns the stored session.
	LoadSession() (UserInfo, error)

	// SaveSession replaces the stored session atomically.
	SaveSession(info UserInfo) error

	// ClearSession removes the stored session.
	ClearSession() error
}

// MetadataStore persists per-theme local metadata.
type MetadataStore interface {
	// LoadThemeMetadata returns the stored metadata or defaults.
	LoadThemeMetadata(name string) (ThemeMetadata, error)

	// SaveThemeMetadata inserts or replaces the metadata of a theme.
	SaveThemeMetadata(name string, meta ThemeMetadata) error

	// ListThemeMetadata returns every stored record keyed by theme name.
	ListThemeMetadata() (map[string]ThemeMetadata, error)

	// DeleteThemeMetadata removes the record of a theme if present.
	DeleteThemeMetadata(name string) error
}

// ThemeStore is the local state owned by the client.
type ThemeStore interface {
	SessionStore
	MetadataStore

	// Close releases the underlying resources.
	Close() error
}

// ThemeService is the remote theme server.
type ThemeService interface {
	CreateUser(ctx context.Context, name, pass string) error
	Login(ctx context.Context, name, pass string) (UserInfo, error)
	DeleteUser(ctx context.Context, user UserInfo, pass string) error
	UploadTheme(ctx context.Context, token, name, archivePath string) (UploadResult, error)
	DownloadTheme(ctx context.Context, name string) (*ThemeDownload, error)
	PublishMetadata(ctx context.Context, token, name string, kind MetadataKind, value string) error
	UnpublishTheme(ctx context.Context, token, name string) error
	GetMetadata(ctx context.Context, name string) (RemoteMetadata, error)
}

// UploadResult tells whether an upload created or replaced a theme.
type UploadResult int

const (
	UploadCreated UploadResult = iota
	UploadUpdated
)

// ThemeDownload is an archive stream returned by the server.
// The caller must close Body.
type ThemeDownload struct {
	Body    io.ReadCloser
	Flagged bool
}

// Application represents the main application context with all dependencies.
type Application struct {
	ThemesDir string
	Config    ConfigProvider
	Logger    Logger
	Output    OutputWriter
	Styler    Styler
	Store     ThemeStore
	Remote    ThemeService
}
