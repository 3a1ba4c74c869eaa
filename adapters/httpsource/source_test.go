package httpsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	msgsearch "github.com/coregx/msgsearch"
)

const messagesPayload = `{
	"total": 2,
	"items": [
		{
			"id": "m-1",
			"user_id": "u-1",
			"user_name": "Sophia Al-Farsi",
			"timestamp": "2025-05-05T07:47:20.159073+00:00",
			"message": "Please book a private jet to Paris for this Friday."
		},
		{
			"id": "m-2",
			"user_id": "u-2",
			"user_name": "Armand Dupont",
			"timestamp": "2025-05-06T10:02:11.000000+00:00",
			"message": "I met an art collector in Paris last week."
		}
	]
}`

func TestSource_FetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(messagesPayload))
	}))
	defer srv.Close()

	source := New(srv.URL)
	messages, err := source.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, messages, 2)
	assert.Equal(t, "m-1", messages[0].ID)
	assert.Equal(t, "Sophia Al-Farsi", messages[0].UserName)
	assert.Equal(t, "m-2", messages[1].ID)
}

func TestSource_FetchAll_FollowsRedirect(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(messagesPayload))
	}))
	defer target.Close()

	redirecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL+"/messages", http.StatusTemporaryRedirect)
	}))
	defer redirecting.Close()

	source := New(redirecting.URL)
	messages, err := source.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestSource_FetchAll_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	source := New(srv.URL)
	_, err := source.FetchAll(context.Background())
	require.Error(t, err)

	var msErr *msgsearch.Error
	require.ErrorAs(t, err, &msErr)
	assert.Equal(t, msgsearch.ErrCodeSource, msErr.Code)
}

func TestSource_FetchAll_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"wrong shape", `{"messages": []}`},
		{"wrong item type", `{"total": 1, "items": [{"id": 42}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			source := New(srv.URL)
			_, err := source.FetchAll(context.Background())
			require.Error(t, err)

			var msErr *msgsearch.Error
			require.ErrorAs(t, err, &msErr)
			assert.Equal(t, msgsearch.ErrCodeSource, msErr.Code)
		})
	}
}

func TestSource_FetchAll_ContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	source := New(srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := source.FetchAll(ctx)
	require.Error(t, err)
}

func TestSource_WithPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/messages", r.URL.Path)
		w.Write([]byte(messagesPayload))
	}))
	defer srv.Close()

	source := New(srv.URL, WithPath("/api/v2/messages"))
	_, err := source.FetchAll(context.Background())
	require.NoError(t, err)
}
