package services

import (
	"errors"

	"blogbox/app/models"
	"blogbox/app/repositories"
)

// ErrMissingUserID reports a call that omitted the acting user id entirely.
// This is a caller-contract violation, not a domain error.
var ErrMissingUserID = errors.New("missing acting user id")

// Sort orders accepted by ListOptions.
const (
	SortOrderAscending  = "ascending"
	SortOrderDescending = "descending"
)

// ListOptions control the ordering of post listings. The zero value means
// createdAt descending.
type ListOptions struct {
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// CreatePostInput carries the fields a caller submits for a new post. Any
// author value in the payload is ignored; ownership is established by the
// caller's identity.
type CreatePostInput struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Contents string   `json:"contents"`
	Tags     []string `json:"tags"`
}

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost creates a new post owned by userID.
func (s *PostService) CreatePost(userID string, input CreatePostInput) (*models.Post, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	post := &models.Post{
		Title:    input.Title,
		Author:   userID,
		Contents: input.Contents,
		Tags:     input.Tags,
	}
	if err := s.postRepo.Insert(post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListAllPosts returns every post, ordered per opts.
func (s *PostService) ListAllPosts(opts *ListOptions) ([]*models.Post, error) {
	return s.postRepo.Find(repositories.PostFilter{}, sortSpec(opts))
}

// ListPostsByAuthor returns the posts whose author equals authorID.
func (s *PostService) ListPostsByAuthor(authorID string) ([]*models.Post, error) {
	return s.postRepo.Find(repositories.PostFilter{Author: authorID}, sortSpec(nil))
}

// ListPostsByTag returns the posts carrying the tag.
func (s *PostService) ListPostsByTag(tag string) ([]*models.Post, error) {
	return s.postRepo.Find(repositories.PostFilter{Tag: tag}, sortSpec(nil))
}

// GetPostByID returns the full post, or nil for an id with no match.
func (s *PostService) GetPostByID(id string) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost applies the patch if the post exists and userID is its author.
// A missing post and a foreign post both return nil without error; the
// ownership mismatch is observable only through the unchanged document.
func (s *PostService) UpdatePost(userID, id string, patch *models.PostPatch) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if post.Author != userID {
		return nil, nil
	}
	return s.postRepo.UpdateByID(id, patch)
}

// DeletePost deletes the post if it exists and userID is its author. Every
// mismatch reports through the count, never an error.
func (s *PostService) DeletePost(userID, id string) (repositories.DeleteResult, error) {
	post, err := s.postRepo.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return repositories.DeleteResult{}, nil
	}
	if err != nil {
		return repositories.DeleteResult{}, err
	}
	if post.Author != userID {
		return repositories.DeleteResult{}, nil
	}
	return s.postRepo.DeleteByID(id)
}

// sortSpec maps caller-facing list options onto the record store's sort spec.
func sortSpec(opts *ListOptions) repositories.PostSort {
	spec := repositories.PostSort{Field: repositories.SortByCreatedAt}
	if opts == nil {
		return spec
	}
	if opts.SortBy == repositories.SortByUpdatedAt {
		spec.Field = repositories.SortByUpdatedAt
	}
	spec.Ascending = opts.SortOrder == SortOrderAscending
	return spec
}
