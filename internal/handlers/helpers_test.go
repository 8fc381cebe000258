package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-todo-boards/internal/jwt"
	"github.com/stretchr/testify/require"
)

// newRequest builds a request whose body is body marshaled to JSON, or
// body itself when it is a string.
func newRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var bodyBytes []byte
	switch v := body.(type) {
	case nil:
	case string:
		bodyBytes = []byte(v)
	default:
		var err error
		bodyBytes, err = json.Marshal(v)
		require.NoError(t, err)
	}
	return httptest.NewRequest(method, target, bytes.NewReader(bodyBytes))
}

// asUser attaches the claims the auth middleware would have set.
func asUser(r *http.Request, userID int64) *http.Request {
	ctx := jwt.WithClaims(r.Context(), &jwt.Claims{UserID: userID, Email: "user@example.com"})
	return r.WithContext(ctx)
}

// withParams attaches chi URL parameters given as key, value pairs.
func withParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
