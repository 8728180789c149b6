package domain

import (
	"fmt"
	"strings"
)

// DefaultScreenshot marks a theme that has no screenshot URL yet.
const DefaultScreenshot = "none"

// UserInfo is the locally persisted session of the logged-in user.
// The login endpoint returns exactly this JSON document.
type UserInfo struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Valid reports whether both fields are present.
func (u UserInfo) Valid() bool {
	return u.Name != "" && u.Token != ""
}

// ThemeMetadata is what the client remembers locally about a theme.
type ThemeMetadata struct {
	Screenshot  string
	Description string
}

// DefaultThemeMetadata returns the metadata of a theme nothing is known about.
func DefaultThemeMetadata() ThemeMetadata {
	return ThemeMetadata{Screenshot: DefaultScreenshot}
}

// HasScreenshot reports whether a real screenshot URL is set.
func (m ThemeMetadata) HasScreenshot() bool {
	return m.Screenshot != "" && m.Screenshot != DefaultScreenshot
}

// Merge overlays the non-empty fields of remote onto m.
func (m ThemeMetadata) Merge(remote RemoteMetadata) ThemeMetadata {
	if remote.Screenshot != "" {
		m.Screenshot = remote.Screenshot
	}
	if remote.Description != "" {
		m.Description = remote.Description
	}
	return m
}

// RemoteMetadata is the metadata document served for a published theme.
type RemoteMetadata struct {
	Screenshot  string `json:"screen"`
	Description string `json:"description"`
}

// MetadataKind names a metadata field that can be published.
type MetadataKind string

const (
	MetadataScreenshot  MetadataKind = "screen"
	MetadataDescription MetadataKind = "description"
)

// MetadataKinds lists the kinds accepted by the server.
var MetadataKinds = []MetadataKind{MetadataScreenshot, MetadataDescription}

// ParseMetadataKind validates a user-supplied kind. "screenshot" is accepted
// as an alias for "screen".
func ParseMetadataKind(s string) (MetadataKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "screen", "screenshot":
		return MetadataScreenshot, nil
	case "description":
		return MetadataDescription, nil
	}
	return "", fmt.Errorf("invalid metadata kind %q", s)
}

// Apply sets the field of m selected by kind.
func (k MetadataKind) Apply(m ThemeMetadata, value string) ThemeMetadata {
	switch k {
	case MetadataScreenshot:
		m.Screenshot = value
	case MetadataDescription:
		m.Description = value
	}
	return m
}

// HookFiles are theme files the window manager executes when a theme loads.
var HookFiles = []string{"script", "lemonbar"}
