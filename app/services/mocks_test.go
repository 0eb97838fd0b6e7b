package services

import (
	"sort"
	"time"

	"blogbox/app/models"
	"blogbox/app/repositories"
)

// In-memory repositories mirroring the Badger-backed behavior: validation on
// insert, username uniqueness, insertion-order stable sorting.

type mockUserRepo struct {
	byID   map[string]*models.User
	byName map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:   make(map[string]*models.User),
		byName: make(map[string]*models.User),
	}
}

func (m *mockUserRepo) Insert(user *models.User) error {
	user.BeforeCreate()
	if err := user.Validate(); err != nil {
		return err
	}
	if _, exists := m.byName[user.Username]; exists {
		return &models.DuplicateKeyError{Field: "username", Value: user.Username}
	}
	m.byID[user.ID] = user
	m.byName[user.Username] = user
	return nil
}

func (m *mockUserRepo) FindByID(id string) (*models.User, error) {
	user, exists := m.byID[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) FindByUsername(username string) (*models.User, error) {
	user, exists := m.byName[username]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

type mockPostRepo struct {
	posts []*models.Post
	byID  map[string]*models.Post
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{byID: make(map[string]*models.Post)}
}

func (m *mockPostRepo) Insert(post *models.Post) error {
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return err
	}
	m.posts = append(m.posts, post)
	m.byID[post.ID] = post
	return nil
}

func (m *mockPostRepo) FindByID(id string) (*models.Post, error) {
	post, exists := m.byID[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *mockPostRepo) Find(filter repositories.PostFilter, spec repositories.PostSort) ([]*models.Post, error) {
	var posts []*models.Post
	for _, post := range m.posts {
		if filter.Author != "" && post.Author != filter.Author {
			continue
		}
		if filter.Tag != "" && !post.HasTag(filter.Tag) {
			continue
		}
		posts = append(posts, post)
	}

	keyOf := func(p *models.Post) time.Time {
		if spec.Field == repositories.SortByUpdatedAt {
			return p.UpdatedAt
		}
		return p.CreatedAt
	}
	sort.SliceStable(posts, func(i, j int) bool {
		if spec.Ascending {
			return keyOf(posts[i]).Before(keyOf(posts[j]))
		}
		return keyOf(posts[i]).After(keyOf(posts[j]))
	})
	return posts, nil
}

func (m *mockPostRepo) UpdateByID(id string, patch *models.PostPatch) (*models.Post, error) {
	post, exists := m.byID[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	post.Apply(patch)
	now := time.Now()
	if !now.After(post.UpdatedAt) {
		now = post.UpdatedAt.Add(time.Nanosecond)
	}
	post.UpdatedAt = now
	return post, nil
}

func (m *mockPostRepo) DeleteByID(id string) (repositories.DeleteResult, error) {
	if _, exists := m.byID[id]; !exists {
		return repositories.DeleteResult{}, nil
	}
	delete(m.byID, id)
	for i, post := range m.posts {
		if post.ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			break
		}
	}
	return repositories.DeleteResult{DeletedCount: 1}, nil
}
