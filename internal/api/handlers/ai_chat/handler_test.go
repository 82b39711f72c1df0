package ai_chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarriera/CPA-BookingService/internal/integrations/openrouter"
)

type fakeChat struct {
	reply string
	err   error
	seen  []openrouter.Message
}

func (f *fakeChat) ChatCompletion(_ context.Context, messages []openrouter.Message) (string, error) {
	f.seen = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai-chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	chat := &fakeChat{reply: "Puedes agendar una cita esta semana."}
	h := NewHandler(chat, nopLogger{})

	rec := doRequest(h, `{"messages":[{"role":"assistant","content":"hola"}],"userMessage":"quiero ayuda"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Puedes agendar una cita esta semana.", resp.Response)
	assert.True(t, resp.ShowBooking)
	assert.False(t, resp.ShowContact)
	assert.Equal(t, "llama-3.3-70b", resp.Model)
	assert.False(t, resp.Error)

	// system prompt, one history message, the new user message
	require.Len(t, chat.seen, 3)
	assert.Equal(t, "system", chat.seen[0].Role)
	assert.Equal(t, "assistant", chat.seen[1].Role)
	assert.Equal(t, "quiero ayuda", chat.seen[2].Content)
}

func TestHandleTrimsHistory(t *testing.T) {
	chat := &fakeChat{reply: "ok"}
	h := NewHandler(chat, nopLogger{})

	var history []string
	for i := 0; i < 15; i++ {
		history = append(history, `{"role":"user","content":"msg"}`)
	}
	body := `{"messages":[` + strings.Join(history, ",") + `],"userMessage":"hola"}`

	rec := doRequest(h, body)
	require.Equal(t, http.StatusOK, rec.Code)

	// system + last 10 of history + new message
	assert.Len(t, chat.seen, 12)
}

func TestHandleMissingMessage(t *testing.T) {
	h := NewHandler(&fakeChat{}, nopLogger{})
	rec := doRequest(h, `{"messages":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleFallbackOnFailure(t *testing.T) {
	chat := &fakeChat{err: errors.New("upstream down")}
	h := NewHandler(chat, nopLogger{})

	rec := doRequest(h, `{"messages":[],"userMessage":"hola"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
	assert.True(t, resp.ShowContact)
	assert.Contains(t, fallbackResponses, resp.Response)
	assert.Empty(t, resp.Model)
}
