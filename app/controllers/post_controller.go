package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogbox/app/middleware"
	"blogbox/app/models"
	"blogbox/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles listing posts, optionally filtered by author or tag and
// ordered by the sortBy/sortOrder query parameters.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var posts []*models.Post
	var err error
	switch {
	case query.Get("author") != "":
		posts, err = pc.postService.ListPostsByAuthor(query.Get("author"))
	case query.Get("tag") != "":
		posts, err = pc.postService.ListPostsByTag(query.Get("tag"))
	default:
		opts := &services.ListOptions{
			SortBy:    query.Get("sortBy"),
			SortOrder: query.Get("sortOrder"),
		}
		posts, err = pc.postService.ListAllPosts(opts)
	}
	if err != nil {
		sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if posts == nil {
		posts = []*models.Post{}
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles fetching a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := pc.postService.GetPostByID(id)
	if err != nil {
		sendError(w, "Failed to fetch post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if post == nil {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post for the authenticated user
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		sendError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	var input services.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CreatePost(userID, input)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		sendError(w, "Failed to create post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusCreated, post)
}

// Edit handles partially updating a post owned by the authenticated user
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		sendError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}
	id := mux.Vars(r)["id"]

	var patch models.PostPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.UpdatePost(userID, id, &patch)
	if err != nil {
		sendError(w, "Failed to update post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if post == nil {
		// Missing post and foreign post are indistinguishable here.
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post owned by the authenticated user
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		sendError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}
	id := mux.Vars(r)["id"]

	result, err := pc.postService.DeletePost(userID, id)
	if err != nil {
		sendError(w, "Failed to delete post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
