package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrDuplicateID is returned by Add when a record with the same id exists.
	ErrDuplicateID = errors.New("user with this id already exists")
	// ErrUserNotFound is returned by Delete and Update when no record matches.
	ErrUserNotFound = errors.New("user not found")
)

// User is a single record of the collection.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Age   int64  `json:"age"`
	Gmail string `json:"gmail"`
}

// Store persists the whole user collection as one document.
//
// Implementations hold no state between calls: every Load reads the backing
// storage again and every Save replaces it entirely. Callers doing a
// load/mutate/save cycle are not isolated from each other, so the last
// writer wins.
type Store interface {
	// Load returns all users in stored order. Missing storage is created
	// holding an empty collection. Content that cannot be decoded is
	// treated as an empty collection and is not reported as an error.
	Load(ctx context.Context) ([]User, error)
	// Save replaces the stored collection with users.
	Save(ctx context.Context, users []User) error
}

// emptyCollection is the encoded form of a collection with no users.
var emptyCollection = []byte("[]")

// encode renders users the way they are kept on disk: a JSON array indented
// by two spaces.
func encode(users []User) ([]byte, error) {
	if users == nil {
		users = []User{}
	}
	return json.MarshalIndent(users, "", "  ")
}

// decode parses a stored collection. Content that is not a JSON array
// yields an empty collection. Elements are decoded one by one so a single
// odd value cannot discard the rest: numbers are coerced with ParseInt,
// missing or mistyped fields take their zero value, and elements that are
// not objects are skipped.
func decode(data []byte) []User {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return []User{}
	}

	users := make([]User, 0, len(raw))
	for _, elem := range raw {
		var fields map[string]interface{}
		dec := json.NewDecoder(bytes.NewReader(elem))
		dec.UseNumber()
		if err := dec.Decode(&fields); err != nil || fields == nil {
			continue
		}
		users = append(users, User{
			ID:    intField(fields["id"]),
			Name:  stringField(fields["name"]),
			Age:   intField(fields["age"]),
			Gmail: stringField(fields["gmail"]),
		})
	}
	return users
}

func intField(v interface{}) int64 {
	var s string
	switch v := v.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = v
	default:
		return 0
	}
	n, _ := ParseInt(s)
	return n
}

func stringField(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
