package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pisarev203/tg-shop/internal/notify"
)

func TestTelegram_Send(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tg := notify.NewTelegram("test-token", "12345", notify.WithBaseURL(srv.URL))

	err := tg.Send(context.Background(), "hello operator")
	assert.NoError(t, err)
	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "12345", gotBody["chat_id"])
	assert.Equal(t, "hello operator", gotBody["text"])
	assert.Equal(t, "HTML", gotBody["parse_mode"])
	assert.Equal(t, true, gotBody["disable_web_page_preview"])
}

func TestTelegram_Send_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false,"description":"Bad Request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	tg := notify.NewTelegram("test-token", "12345", notify.WithBaseURL(srv.URL))

	err := tg.Send(context.Background(), "hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestTelegram_Send_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	tg := notify.NewTelegram("test-token", "12345", notify.WithBaseURL(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, tg.Send(ctx, "hello"))
}

func TestNop_Send(t *testing.T) {
	assert.NoError(t, notify.Nop{}.Send(context.Background(), "anything"))
}
