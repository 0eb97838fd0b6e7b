package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix     = "post:"
	PostIDKeyPrefix   = "post-id:"
	UserKeyPrefix     = "user:"
	UsernameKeyPrefix = "username:"

	// Sequence key for the post insertion counter
	PostSeqKey = "seq:post"
)

// nextSeq gets the next value of the insertion counter stored at seqKey.
// Posts are keyed by this counter so that prefix iteration yields them in
// insertion order.
func nextSeq(txn *badger.Txn, seqKey string) (uint64, error) {
	var seq uint64
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		seq = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			for _, b := range val {
				seq = seq<<8 | uint64(b)
			}
			return nil
		})
		if err != nil {
			return 0, err
		}
		seq++
	}

	// Store new counter value
	buf := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		buf[i] = byte(seq >> (8 * (7 - i)))
	}
	if err := txn.Set([]byte(seqKey), buf); err != nil {
		return 0, err
	}

	return seq, nil
}

// postKey builds the primary key for a post. The zero-padded counter keeps
// byte order equal to insertion order.
func postKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", PostKeyPrefix, seq))
}

// postIDKey builds the index key mapping a post id to its primary key.
func postIDKey(id string) []byte {
	return []byte(PostIDKeyPrefix + id)
}

// userKey builds the primary key for a user.
func userKey(id string) []byte {
	return []byte(UserKeyPrefix + id)
}

// usernameKey builds the uniqueness index key for a username.
func usernameKey(username string) []byte {
	return []byte(UsernameKeyPrefix + username)
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
