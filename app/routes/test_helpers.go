package routes

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"blogbox/app/repositories"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds a router over a throwaway store.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	store, err := repositories.OpenStore("")
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	return SetupRoutes(store.DB(), []byte("test-secret"))
}

// doRequest performs a JSON request against the router and returns the
// recorded response.
func doRequest(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, req)
	return rw
}

// decodeBody unmarshals a recorded JSON response into out.
func decodeBody(t *testing.T, rw *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), out))
}
