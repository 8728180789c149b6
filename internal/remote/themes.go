package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/raven-themes/raven/internal/domain"
)

// UploadField is the multipart field carrying the theme archive.
const UploadField = "fileupload"

var errMissingFields = errors.New("missing name or token")

// UploadTheme sends the archive at archivePath as theme name. A 201 means
// the theme is new; any other 2xx replaced an existing one.
func (c *Client) UploadTheme(ctx context.Context, token, name, archivePath string) (domain.UploadResult, error) {
	body, contentType, err := multipartArchive(archivePath)
	if err != nil {
		return 0, fmt.Errorf("prepare upload: %w", err)
	}

	code, err := c.exec(ctx, OpUploadTheme, Request{
		Method:      http.MethodPost,
		Segments:    []string{"themes", "upload"},
		Query:       url.Values{"name": {name}, "token": {token}},
		Body:        body,
		ContentType: contentType,
	})
	if err != nil {
		return 0, err
	}
	if code == http.StatusCreated {
		return domain.UploadCreated, nil
	}
	return domain.UploadUpdated, nil
}

func multipartArchive(archivePath string) (*bytes.Buffer, string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(UploadField, filepath.Base(archivePath))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

// DownloadTheme opens the archive stream of theme name. Flagged is set when
// the server answers 208 Already Reported.
func (c *Client) DownloadTheme(ctx context.Context, name string) (*domain.ThemeDownload, error) {
	resp, err := c.do(ctx, OpDownloadTheme, Request{
		Method:   http.MethodGet,
		Segments: []string{"themes", "repo", name},
	})
	if err != nil {
		return nil, err
	}

	return &domain.ThemeDownload{
		Body:    &transportBody{op: OpDownloadTheme, rc: resp.Body},
		Flagged: resp.StatusCode == http.StatusAlreadyReported,
	}, nil
}

// PublishMetadata sets one metadata field of a published theme.
func (c *Client) PublishMetadata(ctx context.Context, token, name string, kind domain.MetadataKind, value string) error {
	_, err := c.exec(ctx, OpPublishMetadata, Request{
		Method:   http.MethodPost,
		Segments: []string{"themes", "meta", name},
		Query:    url.Values{"typem": {string(kind)}, "value": {value}, "token": {token}},
	})
	return err
}

// UnpublishTheme removes a theme from the server.
func (c *Client) UnpublishTheme(ctx context.Context, token, name string) error {
	_, err := c.exec(ctx, OpUnpublishTheme, Request{
		Method:   http.MethodPost,
		Segments: []string{"themes", "delete", name},
		Query:    url.Values{"token": {token}},
	})
	return err
}

// GetMetadata fetches the published metadata of theme name.
func (c *Client) GetMetadata(ctx context.Context, name string) (domain.RemoteMetadata, error) {
	var meta domain.RemoteMetadata
	err := c.fetchJSON(ctx, OpGetMetadata, Request{
		Method:   http.MethodGet,
		Segments: []string{"themes", "info", name},
	}, &meta)
	if err != nil {
		return domain.RemoteMetadata{}, err
	}
	return meta, nil
}
