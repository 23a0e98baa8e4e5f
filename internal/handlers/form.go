package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/alfagnish/userbook/internal/store"
)

// UserForm is the set of fields submitted by the add, update and delete
// forms.
type UserForm struct {
	values url.Values
}

// ParseUserForm reads the whole request body, at most limit bytes, and
// decodes it as url-encoded form data. The Content-Type header is not
// consulted.
func ParseUserForm(w http.ResponseWriter, r *http.Request, limit int64) (UserForm, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		return UserForm{}, fmt.Errorf("read body: %w", err)
	}
	// ParseQuery keeps every pair it could decode alongside the first
	// error; malformed pairs are simply dropped.
	values, _ := url.ParseQuery(string(body))
	return UserForm{values: values}, nil
}

// NewUserForm wraps already decoded values.
func NewUserForm(values url.Values) UserForm {
	return UserForm{values: values}
}

// ID returns the submitted id. The second result is false when the field is
// absent or not a number; a blank value is 0.
func (f UserForm) ID() (int64, bool) {
	if !f.values.Has("id") {
		return 0, false
	}
	return store.ParseInt(f.values.Get("id"))
}

// Name returns the submitted name.
func (f UserForm) Name() string { return f.values.Get("name") }

// Age returns the submitted age, or 0 when it is missing or not a number.
func (f UserForm) Age() int64 { return f.number("age") }

// Gmail returns the submitted address. Its format is not checked.
func (f UserForm) Gmail() string { return f.values.Get("gmail") }

// User assembles a record from the submitted fields. An absent or
// unparsable id becomes 0.
func (f UserForm) User() store.User {
	id, _ := f.ID()
	return store.User{
		ID:    id,
		Name:  f.Name(),
		Age:   f.Age(),
		Gmail: f.Gmail(),
	}
}

func (f UserForm) number(key string) int64 {
	n, _ := store.ParseInt(f.values.Get(key))
	return n
}
