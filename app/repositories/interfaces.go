package repositories

import "blogbox/app/models"

// Sort fields accepted by PostRepository.Find. Anything else falls back to
// SortByCreatedAt.
const (
	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"
)

// PostFilter narrows a post query. The zero value matches every post.
type PostFilter struct {
	Author string
	Tag    string
}

// PostSort orders a post query. The zero value sorts by creation time
// descending, which is the store's default ordering.
type PostSort struct {
	Field     string
	Ascending bool
}

// DeleteResult reports how many documents a delete removed.
type DeleteResult struct {
	DeletedCount int `json:"deletedCount"`
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Insert(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Insert(post *models.Post) error
	FindByID(id string) (*models.Post, error)
	Find(filter PostFilter, sort PostSort) ([]*models.Post, error)
	UpdateByID(id string, patch *models.PostPatch) (*models.Post, error)
	DeleteByID(id string) (DeleteResult, error)
}
