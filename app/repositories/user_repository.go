package repositories

import (
	"blogbox/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Insert stores a new user. The username must be unique across the store;
// a collision fails with *models.DuplicateKeyError.
func (r *BadgerUserRepository) Insert(user *models.User) error {
	user.BeforeCreate()
	if err := user.Validate(); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		// The username index doubles as the uniqueness constraint.
		_, err := txn.Get(usernameKey(user.Username))
		if err == nil {
			return &models.DuplicateKeyError{Field: "username", Value: user.Username}
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}
		if err := txn.Set(userKey(user.ID), data); err != nil {
			return err
		}
		return txn.Set(usernameKey(user.Username), []byte(user.ID))
	})
}

// FindByID retrieves a user by ID
func (r *BadgerUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername retrieves a user through the username index
func (r *BadgerUserRepository) FindByUsername(username string) (*models.User, error) {
	var id string

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}
