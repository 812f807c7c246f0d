package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor/pkg/adapters/httpapi"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/dialog"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/router"
)

type eventResponse struct {
	Handled       bool                      `json:"handled"`
	CorrelationID string                    `json:"correlation_id"`
	Replies       []httpapi.OutboundMessage `json:"replies"`
}

func newTestHandler(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()

	leaf := dialog.Named("help", nil,
		dialog.WithGreeting(domain.NewText("how can I help?")),
		dialog.WithInside(dialog.OnAny(nil)),
	)
	root := dialog.NamedMenu("home", nil,
		[][]*dialog.Node{{leaf}},
		dialog.WithGreeting(domain.NewText("welcome")),
	)

	store := memory.NewStore()
	replies := httpapi.NewReplyBuffer()
	r := router.New(root, replies,
		router.WithEntry(dialog.OnText("/start", nil)),
		router.WithBackTrigger("back"),
		router.WithSnapshotStore(store),
	)
	server := httpapi.NewServer(r, replies, httpapi.WithSnapshots(store))
	return server.Handler(), store
}

func postEvent(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_PostEvent(t *testing.T) {
	h, _ := newTestHandler(t)

	t.Run("handled event returns the buffered replies", func(t *testing.T) {
		rec := postEvent(t, h, `{"user_id":"u1","text":"/start"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp eventResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Handled)
		assert.NotEmpty(t, resp.CorrelationID)
		require.Len(t, resp.Replies, 1)
		assert.Equal(t, "welcome", resp.Replies[0].Text)
		assert.Equal(t, [][]string{{"help"}}, resp.Replies[0].Keyboard)
	})

	t.Run("unmatched event is reported unhandled", func(t *testing.T) {
		rec := postEvent(t, h, `{"user_id":"stranger","text":"hello"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp eventResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Handled)
		assert.Empty(t, resp.Replies)
	})

	t.Run("unknown envelope fields are ignored", func(t *testing.T) {
		rec := postEvent(t, h, `{"user_id":"u2","text":"/start","update_id":42,"chat":{"type":"private"}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp eventResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Handled)
	})

	t.Run("missing user_id is rejected", func(t *testing.T) {
		rec := postEvent(t, h, `{"text":"/start"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid body is rejected", func(t *testing.T) {
		rec := postEvent(t, h, `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Sessions(t *testing.T) {
	h, _ := newTestHandler(t)
	postEvent(t, h, `{"user_id":"u1","text":"/start"}`)

	t.Run("get one", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/sessions/u1", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var snap domain.SessionSnapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
		assert.Equal(t, "u1", snap.UserID)
		assert.True(t, snap.Entered)
		assert.Equal(t, "home", snap.NodeName)
	})

	t.Run("unknown user is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/sessions/ghost", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var snaps []domain.SessionSnapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snaps))
		assert.Len(t, snaps, 1)
	})
}

func TestServer_Healthz(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
