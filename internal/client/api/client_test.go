package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konarr/konarr-go/internal/common"
	"github.com/konarr/konarr-go/internal/logging"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/api", 5*time.Second, logging.Nop{})
	require.NoError(t, err)
	return c
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("/api", time.Second, logging.Nop{})
	require.Error(t, err)
}

func TestClient_Get_DecodesPayload(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		io.WriteString(w, `{"data": [{"id": 1}], "total": 1, "count": 1, "pages": 1}`)
	}))

	var out struct {
		Data  []struct{ ID int }
		Total int
	}
	err := c.Get(context.Background(), "/projects", url.Values{"page": {"2"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Data, 1)
	assert.Equal(t, 1, out.Data[0].ID)
}

func TestClient_Post_SendsJSONBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name": "web", "type": "container"}`, string(body))
		io.WriteString(w, `{"id": 5, "name": "web"}`)
	}))

	var out struct{ ID int }
	err := c.Post(context.Background(), "/projects",
		map[string]string{"name": "web", "type": "container"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 5, out.ID)
}

func TestClient_ErrorEnvelopeSurfacesAsAPIError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message": "unauthorized", "status": 401}`)
	}))

	err := c.Get(context.Background(), "/projects", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "unauthorized", apiErr.Message)
}

func TestClient_NetworkFailureWrapsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing is listening anymore

	c, err := New(srv.URL+"/api", time.Second, logging.Nop{})
	require.NoError(t, err)

	err = c.Get(context.Background(), "/projects", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNetwork))
}

func TestClient_Upload_DefaultsContentType(t *testing.T) {
	var gotType string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "raw-bytes", string(body))
		io.WriteString(w, `{"id": 3, "status": "Processing"}`)
	}))

	var out struct{ Status string }
	err := c.Upload(context.Background(), "/snapshots/3/bom", "", strings.NewReader("raw-bytes"), &out)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", gotType)
	assert.Equal(t, "Processing", out.Status)
}

func TestClient_SessionCookiePersists(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
			io.WriteString(w, `{"status": "success"}`)
		default:
			cookie, err := r.Cookie("session")
			if err != nil || cookie.Value != "abc" {
				w.WriteHeader(http.StatusUnauthorized)
				io.WriteString(w, `{"message": "unauthorized", "status": 401}`)
				return
			}
			io.WriteString(w, `{"version": "1.0.0"}`)
		}
	}))

	require.NoError(t, c.Post(context.Background(), "/auth/login", map[string]string{"username": "u"}, nil))

	var info struct{ Version string }
	require.NoError(t, c.Get(context.Background(), "/", nil, &info))
	assert.Equal(t, "1.0.0", info.Version)
}
