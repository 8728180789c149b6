package remote

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// Request describes one call relative to the server base URL. Segments are
// escaped individually, so a theme name can never add path components.
type Request struct {
	Method      string
	Segments    []string
	Query       url.Values
	Body        io.Reader
	ContentType string
}

// URL validates r against base and returns the encoded target.
func (r Request) URL(base *url.URL) (string, error) {
	if err := validateBase(base); err != nil {
		return "", err
	}
	if r.Method == "" {
		return "", errors.New("request: empty method")
	}
	if len(r.Segments) == 0 {
		return "", errors.New("request: empty path")
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(base.String(), "/"))
	for _, seg := range r.Segments {
		if seg == "" || seg == "." || seg == ".." {
			return "", fmt.Errorf("request: invalid path segment %q", seg)
		}
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}

	if len(r.Query) > 0 {
		b.WriteByte('?')
		b.WriteString(r.Query.Encode())
	}

	return b.String(), nil
}

// ParseBaseURL parses and validates a server base URL.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid host %q: %w", raw, err)
	}
	if err := validateBase(u); err != nil {
		return nil, err
	}
	return u, nil
}

func validateBase(u *url.URL) error {
	if u == nil {
		return errors.New("invalid host: empty")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid host %q: scheme must be http or https", u.String())
	}
	if u.Host == "" {
		return fmt.Errorf("invalid host %q: missing host name", u.String())
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("invalid host %q: query and fragment are not allowed", u.String())
	}
	return nil
}
