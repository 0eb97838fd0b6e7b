package repositories

import (
	"sort"
	"time"

	"blogbox/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Insert stores a new post under the next insertion-counter key and indexes
// it by id.
func (r *BadgerPostRepository) Insert(post *models.Post) error {
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		seq, err := nextSeq(txn, PostSeqKey)
		if err != nil {
			return err
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}

		key := postKey(seq)
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(postIDKey(post.ID), key)
	})
}

// FindByID retrieves a post by ID
func (r *BadgerPostRepository) FindByID(id string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		key, err := resolvePostKey(txn, id)
		if err != nil {
			return err
		}

		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Find retrieves every post matching the filter, ordered by the sort spec.
// Badger has no secondary indexes, so this is a prefix scan with an in-memory
// sort; iteration order is insertion order, which a stable sort preserves for
// ties.
func (r *BadgerPostRepository) Find(filter PostFilter, postSort PostSort) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			if filter.Author != "" && post.Author != filter.Author {
				continue
			}
			if filter.Tag != "" && !post.HasTag(filter.Tag) {
				continue
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortPosts(posts, postSort)
	return posts, nil
}

// UpdateByID applies the patch to the stored post and advances its updatedAt
// strictly past the previous value. Returns ErrNotFound for an unknown id.
func (r *BadgerPostRepository) UpdateByID(id string, patch *models.PostPatch) (*models.Post, error) {
	var post models.Post

	err := r.db.Update(func(txn *badger.Txn) error {
		key, err := resolvePostKey(txn, id)
		if err != nil {
			return err
		}

		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		err = item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
		if err != nil {
			return err
		}

		post.Apply(patch)
		now := time.Now()
		if !now.After(post.UpdatedAt) {
			now = post.UpdatedAt.Add(time.Nanosecond)
		}
		post.UpdatedAt = now

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteByID removes a post and its id index. A missing post is reported
// through the count, not an error.
func (r *BadgerPostRepository) DeleteByID(id string) (DeleteResult, error) {
	deleted := 0

	err := r.db.Update(func(txn *badger.Txn) error {
		key, err := resolvePostKey(txn, id)
		if err == ErrNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		if err := txn.Delete(key); err != nil {
			return err
		}
		if err := txn.Delete(postIDKey(id)); err != nil {
			return err
		}
		deleted = 1
		return nil
	})

	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{DeletedCount: deleted}, nil
}

// resolvePostKey looks up the primary key for a post id through the index.
func resolvePostKey(txn *badger.Txn, id string) ([]byte, error) {
	item, err := txn.Get(postIDKey(id))
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

// sortPosts orders posts in place on createdAt or updatedAt with the stable
// tie-break being insertion order.
func sortPosts(posts []*models.Post, spec PostSort) {
	keyOf := func(p *models.Post) time.Time {
		if spec.Field == SortByUpdatedAt {
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
}
