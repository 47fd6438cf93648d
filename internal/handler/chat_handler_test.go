package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uema-profitec/sigep-api/internal/llm"
	"github.com/uema-profitec/sigep-api/internal/service"
	"github.com/uema-profitec/sigep-api/internal/store"
	"github.com/uema-profitec/sigep-api/pkg/response"
)

type scriptedGenerator struct {
	resp *llm.Response
	err  error
}

func (g *scriptedGenerator) Generate(context.Context, llm.Request) (*llm.Response, error) {
	return g.resp, g.err
}

func newChatHandler(t *testing.T, gen *scriptedGenerator, configured bool) *ChatHandler {
	t.Helper()
	st := store.New()
	chat := service.NewChatService(st, gen, configured, nil, nil)
	return NewChatHandler(chat, nil)
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/chat/messages", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Send(c)
	return rec
}

func TestChatSendMalformedBody(t *testing.T) {
	h := newChatHandler(t, &scriptedGenerator{}, true)

	rec := postChat(t, h, "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatSendNotConfigured(t *testing.T) {
	h := newChatHandler(t, &scriptedGenerator{}, false)

	rec := postChat(t, h, `{"text":"oi"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestChatSendNavigation(t *testing.T) {
	gen := &scriptedGenerator{resp: &llm.Response{FunctionCalls: []llm.FunctionCall{
		{Name: "navigateTo", Args: map[string]any{"page": "reports"}},
	}}}
	h := newChatHandler(t, gen, true)

	rec := postChat(t, h, `{"text":"abra os relatórios"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	payload, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"navigate_to":"reports"`)
}

func TestChatTranscriptIncludesGreeting(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newChatHandler(t, &scriptedGenerator{}, true)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/chat/messages", nil)
	h.Transcript(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), service.GreetingText)
}
