package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogbox/app/middleware"
	"blogbox/app/models"
	"blogbox/app/repositories"
	"blogbox/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostController(t *testing.T) *PostController {
	t.Helper()
	store, err := repositories.OpenStore("")
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	postRepo := repositories.NewBadgerPostRepository(store.DB())
	return NewPostController(services.NewPostService(postRepo))
}

// asUser attaches an authenticated user id the way the Authenticate
// middleware would.
func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.UserIDKey, userID))
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestPostControllerCreate(t *testing.T) {
	pc := newTestPostController(t)

	t.Run("creates for the acting user", func(t *testing.T) {
		req := asUser(httptest.NewRequest("POST", "/api/posts", jsonBody(t, map[string]interface{}{
			"title":  "Learning Redux",
			"author": "not-me",
			"tags":   []string{"redux"},
		})), "user-1")
		rw := httptest.NewRecorder()
		pc.Create(rw, req)

		assert.Equal(t, http.StatusCreated, rw.Code)
		var post models.Post
		require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &post))
		assert.Equal(t, "user-1", post.Author)
		assert.NotEmpty(t, post.ID)
	})

	t.Run("rejects a missing title", func(t *testing.T) {
		req := asUser(httptest.NewRequest("POST", "/api/posts", jsonBody(t, map[string]interface{}{
			"contents": "no title",
		})), "user-1")
		rw := httptest.NewRecorder()
		pc.Create(rw, req)

		assert.Equal(t, http.StatusBadRequest, rw.Code)
		assert.Contains(t, rw.Body.String(), "title")
	})

	t.Run("rejects an unauthenticated request", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/posts", jsonBody(t, map[string]interface{}{"title": "x"}))
		rw := httptest.NewRecorder()
		pc.Create(rw, req)

		assert.Equal(t, http.StatusUnauthorized, rw.Code)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		req := asUser(httptest.NewRequest("POST", "/api/posts", bytes.NewReader([]byte("{"))), "user-1")
		rw := httptest.NewRecorder()
		pc.Create(rw, req)

		assert.Equal(t, http.StatusBadRequest, rw.Code)
	})
}

func TestPostControllerShowEditDelete(t *testing.T) {
	pc := newTestPostController(t)

	// Seed one post through the controller.
	req := asUser(httptest.NewRequest("POST", "/api/posts", jsonBody(t, map[string]interface{}{
		"title":    "Learn React Hooks",
		"contents": "original",
		"tags":     []string{"react"},
	})), "user-1")
	rw := httptest.NewRecorder()
	pc.Create(rw, req)
	require.Equal(t, http.StatusCreated, rw.Code)
	var created models.Post
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &created))

	t.Run("show", func(t *testing.T) {
		req := mux.SetURLVars(httptest.NewRequest("GET", "/api/posts/"+created.ID, nil), map[string]string{"id": created.ID})
		rw := httptest.NewRecorder()
		pc.Show(rw, req)

		assert.Equal(t, http.StatusOK, rw.Code)
		assert.Contains(t, rw.Body.String(), "Learn React Hooks")
	})

	t.Run("show unknown id", func(t *testing.T) {
		req := mux.SetURLVars(httptest.NewRequest("GET", "/api/posts/none", nil), map[string]string{"id": "none"})
		rw := httptest.NewRecorder()
		pc.Show(rw, req)

		assert.Equal(t, http.StatusNotFound, rw.Code)
	})

	t.Run("edit by owner", func(t *testing.T) {
		req := asUser(mux.SetURLVars(
			httptest.NewRequest("PATCH", "/api/posts/"+created.ID, jsonBody(t, map[string]string{"contents": "patched"})),
			map[string]string{"id": created.ID}), "user-1")
		rw := httptest.NewRecorder()
		pc.Edit(rw, req)

		assert.Equal(t, http.StatusOK, rw.Code)
		var post models.Post
		require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &post))
		assert.Equal(t, "patched", post.Contents)
		assert.Equal(t, "Learn React Hooks", post.Title)
	})

	t.Run("edit by another user looks like not found", func(t *testing.T) {
		req := asUser(mux.SetURLVars(
			httptest.NewRequest("PATCH", "/api/posts/"+created.ID, jsonBody(t, map[string]string{"contents": "mine now"})),
			map[string]string{"id": created.ID}), "user-2")
		rw := httptest.NewRecorder()
		pc.Edit(rw, req)

		assert.Equal(t, http.StatusNotFound, rw.Code)
	})

	t.Run("delete by another user looks like not found", func(t *testing.T) {
		req := asUser(mux.SetURLVars(
			httptest.NewRequest("DELETE", "/api/posts/"+created.ID, nil),
			map[string]string{"id": created.ID}), "user-2")
		rw := httptest.NewRecorder()
		pc.Delete(rw, req)

		assert.Equal(t, http.StatusNotFound, rw.Code)
	})

	t.Run("delete by owner", func(t *testing.T) {
		req := asUser(mux.SetURLVars(
			httptest.NewRequest("DELETE", "/api/posts/"+created.ID, nil),
			map[string]string{"id": created.ID}), "user-1")
		rw := httptest.NewRecorder()
		pc.Delete(rw, req)

		assert.Equal(t, http.StatusNoContent, rw.Code)
	})
}

func TestPostControllerIndex(t *testing.T) {
	pc := newTestPostController(t)

	titles := []string{"Learning Redux", "Learn React Hooks", "Full-Stack React Projects"}
	for _, title := range titles {
		req := asUser(httptest.NewRequest("POST", "/api/posts", jsonBody(t, map[string]interface{}{
			"title": title,
			"tags":  []string{"react"},
		})), "user-1")
		rw := httptest.NewRecorder()
		pc.Create(rw, req)
		require.Equal(t, http.StatusCreated, rw.Code)
	}

	t.Run("lists everything", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/posts", nil)
		rw := httptest.NewRecorder()
		pc.Index(rw, req)

		assert.Equal(t, http.StatusOK, rw.Code)
		var posts []*models.Post
		require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &posts))
		assert.Len(t, posts, 3)
	})

	t.Run("ascending sort order", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/posts?sortBy=createdAt&sortOrder=ascending", nil)
		rw := httptest.NewRecorder()
		pc.Index(rw, req)

		var posts []*models.Post
		require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &posts))
		require.Len(t, posts, 3)
		assert.Equal(t, "Learning Redux", posts[0].Title)
	})

	t.Run("empty tag filter result is a JSON array", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/posts?tag=golang", nil)
		rw := httptest.NewRecorder()
		pc.Index(rw, req)

		assert.Equal(t, http.StatusOK, rw.Code)
		assert.JSONEq(t, "[]", rw.Body.String())
	})
}
