package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzotomasdiez/contrarian/internal/conversation"
	"github.com/lorenzotomasdiez/contrarian/internal/store"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	st, err := store.New(store.TypeMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	manager := conversation.NewManager(st, zerolog.Nop())
	return New(manager, zerolog.Nop(), opts...)
}

func postChat(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatStartsConversation(t *testing.T) {
	router := newTestServer(t).Router()

	w := postChat(t, router, `{"message":"AI will transform society"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ConversationID)
	assert.NotEmpty(t, resp.Reply)
	assert.Len(t, resp.Transcript, 2)
	assert.Equal(t, "user", resp.Transcript[0].Role)
	assert.Equal(t, "bot", resp.Transcript[1].Role)
}

func TestChatContinuesConversation(t *testing.T) {
	router := newTestServer(t).Router()

	w := postChat(t, router, `{"message":"AI will transform society"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var first chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	body := fmt.Sprintf(`{"conversation_id":%q,"message":"I still disagree"}`, first.ConversationID)
	w = postChat(t, router, body)
	require.Equal(t, http.StatusOK, w.Code)

	var second chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, first.ConversationID, second.ConversationID)
	assert.Len(t, second.Transcript, 4)
}

func TestChatValidationError(t *testing.T) {
	router := newTestServer(t).Router()

	for name, body := range map[string]string{
		"empty message": `{"message":""}`,
		"malformed":     `{"message":`,
	} {
		w := postChat(t, router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
		assert.Contains(t, w.Body.String(), "validation_error", name)
		assert.Contains(t, w.Body.String(), "trace_id", name)
	}
}

func TestChatUnknownConversation(t *testing.T) {
	router := newTestServer(t).Router()

	w := postChat(t, router, `{"conversation_id":"no-such-id","message":"hello"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestChatRequestIDEchoed(t *testing.T) {
	router := newTestServer(t).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hello there"}`))
	req.Header.Set("X-Request-ID", "trace-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get("X-Request-ID"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
}

func TestChatDeterministicReplies(t *testing.T) {
	run := func() string {
		router := newTestServer(t).Router()
		w := postChat(t, router, `{"message":"coffee vs tea"}`)
		require.Equal(t, http.StatusOK, w.Code)
		var resp chatResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Reply
	}
	assert.Equal(t, run(), run())
}

func TestHealthz(t *testing.T) {
	router := newTestServer(t).Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestReadyzWithoutRedis(t *testing.T) {
	router := newTestServer(t).Router()

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadyzDegradedOnRedisFailure(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	router := newTestServer(t, WithRedisProbe(client)).Router()

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	mr.Close()
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestServer(t, WithMetrics(NewMetrics())).Router()

	postChat(t, router, `{"message":"AI will transform society"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "contrarian_http_requests_total")
	assert.Contains(t, w.Body.String(), "contrarian_turns_total")
}

func TestTimeoutMiddleware(t *testing.T) {
	srv := newTestServer(t, WithRequestTimeout(10*time.Millisecond))
	router := srv.Router()
	router.GET("/slow", func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
		case <-time.After(time.Second):
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/slow", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "timeout")
}
