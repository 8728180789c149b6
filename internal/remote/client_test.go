package remote

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/raven-themes/raven/internal/domain"
)

type recorded struct {
	method string
	path   string
	raw    string
	query  map[string]string
	header http.Header
	form   map[string]string
}

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.raw = r.URL.EscapedPath()
		rec.header = r.Header.Clone()
		rec.query = map[string]string{}
		for k := range r.URL.Query() {
			rec.query[k] = r.URL.Query().Get(k)
		}
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			rec.form = map[string]string{}
			for field, files := range r.MultipartForm.File {
				f, err := files[0].Open()
				require.NoError(t, err)
				content, err := io.ReadAll(f)
				require.NoError(t, err)
				_ = f.Close()
				rec.form[field] = files[0].Filename + ":" + string(content)
			}
		}
		handler(w, r)
	}))
	t.Cleanup(ts.Close)

	c, err := New(Config{BaseURL: ts.URL, UserAgent: "raven/test", Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c, rec
}

func status(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		_, _ = io.WriteString(w, body)
	}
}

func writeArchive(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "nord.tar")
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

var user = domain.UserInfo{Name: "ada", Token: "tok"}

// invoke runs op against c and returns its error.
func invoke(t *testing.T, c *Client, op Operation) error {
	t.Helper()
	ctx := context.Background()
	switch op {
	case OpCreateUser:
		return c.CreateUser(ctx, "ada", "pw")
	case OpLogin:
		_, err := c.Login(ctx, "ada", "pw")
		return err
	case OpDeleteUser:
		return c.DeleteUser(ctx, user, "pw")
	case OpUploadTheme:
		_, err := c.UploadTheme(ctx, "tok", "nord", writeArchive(t, "tar"))
		return err
	case OpDownloadTheme:
		d, err := c.DownloadTheme(ctx, "nord")
		if d != nil {
			_ = d.Body.Close()
		}
		return err
	case OpPublishMetadata:
		return c.PublishMetadata(ctx, "tok", "nord", domain.MetadataDescription, "x")
	case OpUnpublishTheme:
		return c.UnpublishTheme(ctx, "tok", "nord")
	case OpGetMetadata:
		_, err := c.GetMetadata(ctx, "nord")
		return err
	}
	t.Fatalf("unknown operation %s", op)
	return nil
}

func TestStatusMapping_Completeness(t *testing.T) {
	expected := map[Operation]map[int]Kind{
		OpCreateUser:      {403: KindNameTaken, 413: KindTooLong},
		OpLogin:           {403: KindBadCredentials},
		OpDeleteUser:      {403: KindForbidden, 401: KindUnauthorized, 404: KindNotFound},
		OpUploadTheme:     {403: KindForbidden},
		OpDownloadTheme:   {404: KindNotFound},
		OpPublishMetadata: {404: KindNotFound, 403: KindForbidden, 412: KindInvalidMetadata, 413: KindTooLong},
		OpUnpublishTheme:  {404: KindNotFound, 403: KindForbidden, 401: KindUnauthorized},
		OpGetMetadata:     {404: KindNotFound},
	}
	require.Len(t, expected, len(Operations))

	for _, op := range Operations {
		table := Outcomes(op)
		require.Len(t, table, len(expected[op]), "table of %s", op)

		codes := map[int]Kind{500: KindServer, 418: KindServer, 409: KindServer, 302: KindServer}
		for code, kind := range expected[op] {
			codes[code] = kind
			require.Equal(t, kind, table[code].Kind, "%s %d", op, code)
			require.NotEmpty(t, table[code].Message)
		}

		for code, kind := range codes {
			t.Run(string(op)+"/"+http.StatusText(code), func(t *testing.T) {
				c, _ := testClient(t, status(code, ""))
				if code == 302 {
					c.httpClient = &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
						return http.ErrUseLastResponse
					}}
				}

				err := invoke(t, c, op)
				se, ok := AsStatus(err)
				require.True(t, ok, "want StatusError, got %v", err)
				require.Equal(t, op, se.Op)
				require.Equal(t, code, se.Code)
				require.Equal(t, kind, se.Kind)
				require.True(t, IsKind(err, kind))
				if kind == KindServer {
					require.Contains(t, err.Error(), "Code")
				}
			})
		}
	}
}

func TestClassify(t *testing.T) {
	require.NoError(t, classify(OpLogin, 200))
	require.NoError(t, classify(OpDownloadTheme, 208))
	require.NoError(t, classify(OpUploadTheme, 201))

	err := classify(OpLogin, 503)
	require.EqualError(t, err, "server error. Code 503")
}

func TestCreateUser_Request(t *testing.T) {
	c, rec := testClient(t, status(http.StatusOK, ""))

	require.NoError(t, c.CreateUser(context.Background(), "ada lovelace", "p&ss=1"))
	require.Equal(t, http.MethodPost, rec.method)
	require.Equal(t, "/themes/user/create", rec.path)
	require.Equal(t, map[string]string{"name": "ada lovelace", "pass": "p&ss=1"}, rec.query)
	require.Equal(t, "raven/test", rec.header.Get("User-Agent"))
	require.Len(t, rec.header.Get("X-Request-ID"), 36)
}

func TestLogin(t *testing.T) {
	c, rec := testClient(t, status(http.StatusOK, `{"name":"ada","token":"abc"}`))

	info, err := c.Login(context.Background(), "ada", "pw")
	require.NoError(t, err)
	require.Equal(t, domain.UserInfo{Name: "ada", Token: "abc"}, info)
	require.Equal(t, http.MethodGet, rec.method)
	require.Equal(t, "/themes/user/login", rec.path)
	require.Equal(t, map[string]string{"name": "ada", "pass": "pw"}, rec.query)
}

func TestLogin_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>"},
		{name: "missing token", body: `{"name":"ada"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testClient(t, status(http.StatusOK, tt.body))

			_, err := c.Login(context.Background(), "ada", "pw")
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			require.Equal(t, OpLogin, de.Op)
		})
	}
}

func TestDeleteUser_Request(t *testing.T) {
	c, rec := testClient(t, status(http.StatusOK, ""))

	require.NoError(t, c.DeleteUser(context.Background(), user, "pw"))
	require.Equal(t, http.MethodPost, rec.method)
	require.Equal(t, "/themes/users/delete/ada", rec.path)
	require.Equal(t, map[string]string{"token": "tok", "pass": "pw"}, rec.query)
}

func TestUploadTheme(t *testing.T) {
	tests := []struct {
		name string
		code int
		want domain.UploadResult
	}{
		{name: "created", code: http.StatusCreated, want: domain.UploadCreated},
		{name: "updated", code: http.StatusOK, want: domain.UploadUpdated},
		{name: "accepted counts as updated", code: http.StatusAccepted, want: domain.UploadUpdated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := testClient(t, status(tt.code, ""))

			got, err := c.UploadTheme(context.Background(), "tok", "nord", writeArchive(t, "tar-bytes"))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, "/themes/upload", rec.path)
			require.Equal(t, map[string]string{"name": "nord", "token": "tok"}, rec.query)
			require.Equal(t, map[string]string{UploadField: "nord.tar:tar-bytes"}, rec.form)
		})
	}
}

func TestUploadTheme_MissingArchive(t *testing.T) {
	c, rec := testClient(t, status(http.StatusCreated, ""))

	_, err := c.UploadTheme(context.Background(), "tok", "nord", filepath.Join(t.TempDir(), "nope.tar"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Empty(t, rec.method, "no request may be sent")
}

func TestDownloadTheme(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		flagged bool
	}{
		{name: "clean", code: http.StatusOK},
		{name: "flagged", code: http.StatusAlreadyReported, flagged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := testClient(t, status(tt.code, "archive-bytes"))

			d, err := c.DownloadTheme(context.Background(), "nord")
			require.NoError(t, err)
			defer func() { _ = d.Body.Close() }()

			require.Equal(t, tt.flagged, d.Flagged)
			content, err := io.ReadAll(d.Body)
			require.NoError(t, err)
			require.Equal(t, "archive-bytes", string(content))
			require.Equal(t, http.MethodGet, rec.method)
			require.Equal(t, "/themes/repo/nord", rec.path)
		})
	}
}

func TestDownloadTheme_BodyReadFailure(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "100")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "short")
	})

	d, err := c.DownloadTheme(context.Background(), "nord")
	require.NoError(t, err)
	defer func() { _ = d.Body.Close() }()

	_, err = io.ReadAll(d.Body)
	require.True(t, IsTransport(err), "got %v", err)
}

func TestFetchJSON_TruncatedBody(t *testing.T) {
	truncated := func(partial string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Content-Length", "100")
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, partial)
		}
	}

	tests := []struct {
		name string
		call func(c *Client) error
		body string
	}{
		{
			name: "login",
			call: func(c *Client) error {
				_, err := c.Login(context.Background(), "ada", "pw")
				return err
			},
			body: `{"name":"ada","tok`,
		},
		{
			name: "metadata",
			call: func(c *Client) error {
				_, err := c.GetMetadata(context.Background(), "nord")
				return err
			},
			body: `{"screen":"https://i.exa`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testClient(t, truncated(tt.body))

			err := tt.call(c)
			require.True(t, IsTransport(err), "got %v", err)
			var de *DecodeError
			require.False(t, errors.As(err, &de))
		})
	}
}

func TestPublishMetadata_Request(t *testing.T) {
	c, rec := testClient(t, status(http.StatusOK, ""))

	err := c.PublishMetadata(context.Background(), "tok", "nord", domain.MetadataScreenshot, "https://i.example/a b.png")
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, rec.method)
	require.Equal(t, "/themes/meta/nord", rec.path)
	require.Equal(t, map[string]string{
		"typem": "screen",
		"value": "https://i.example/a b.png",
		"token": "tok",
	}, rec.query)
}

func TestUnpublishTheme_Request(t *testing.T) {
	c, rec := testClient(t, status(http.StatusOK, ""))

	require.NoError(t, c.UnpublishTheme(context.Background(), "tok", "nord"))
	require.Equal(t, http.MethodPost, rec.method)
	require.Equal(t, "/themes/delete/nord", rec.path)
	require.Equal(t, map[string]string{"token": "tok"}, rec.query)
}

func TestGetMetadata(t *testing.T) {
	c, rec := testClient(t, status(http.StatusOK, `{"screen":"https://i.example/n.png","description":"cold"}`))

	meta, err := c.GetMetadata(context.Background(), "nord")
	require.NoError(t, err)
	require.Equal(t, domain.RemoteMetadata{Screenshot: "https://i.example/n.png", Description: "cold"}, meta)
	require.Equal(t, "/themes/info/nord", rec.path)
}

func TestThemeNameIsOneSegment(t *testing.T) {
	c, rec := testClient(t, status(http.StatusOK, `{}`))

	_, err := c.GetMetadata(context.Background(), "a/b?c")
	require.NoError(t, err)
	require.Equal(t, "/themes/info/a%2Fb%3Fc", rec.raw)
	require.Empty(t, rec.query)
}

func TestTransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()

	c, err := New(Config{BaseURL: base})
	require.NoError(t, err)

	err = c.CreateUser(context.Background(), "ada", "pw")
	var te *TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, OpCreateUser, te.Op)
	require.True(t, IsTransport(err))
	_, isStatus := AsStatus(err)
	require.False(t, isStatus)
}

func TestTransportError_Canceled(t *testing.T) {
	c, _ := testClient(t, status(http.StatusOK, ""))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.UnpublishTheme(ctx, "tok", "nord")
	require.True(t, IsTransport(err))
	require.True(t, errors.Is(err, context.Canceled))
}

func TestNew_InvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"", "demenses.net", "ftp://demenses.net", "https://", "https://h/?x=1"} {
		t.Run(raw, func(t *testing.T) {
			_, err := New(Config{BaseURL: raw})
			require.Error(t, err)
		})
	}
}
