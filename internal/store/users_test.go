package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Run("distinct ids are appended in order", func(t *testing.T) {
		var users []User
		var err error
		for i := int64(1); i <= 5; i++ {
			users, err = Add(users, User{ID: i, Name: "u", Age: i * 10, Gmail: "u@x.com"})
			require.NoError(t, err)
		}
		require.Len(t, users, 5)
		for i, u := range users {
			assert.Equal(t, int64(i+1), u.ID)
			assert.Equal(t, int64(i+1)*10, u.Age)
		}
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		users := []User{{ID: 1, Name: "Alice"}}
		got, err := Add(users, User{ID: 1, Name: "Mallory"})
		assert.ErrorIs(t, err, ErrDuplicateID)
		assert.Equal(t, []User{{ID: 1, Name: "Alice"}}, got)
	})

	t.Run("input backing array is not shared", func(t *testing.T) {
		users := make([]User, 1, 4)
		users[0] = User{ID: 1}
		a, err := Add(users, User{ID: 2})
		require.NoError(t, err)
		b, err := Add(users, User{ID: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(2), a[1].ID)
		assert.Equal(t, int64(3), b[1].ID)
	})
}

func TestDelete(t *testing.T) {
	users := []User{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}, {ID: 3, Name: "Carol"}}

	got, err := Delete(users, 2)
	require.NoError(t, err)
	assert.Equal(t, []User{{ID: 1, Name: "Alice"}, {ID: 3, Name: "Carol"}}, got)
	assert.Len(t, users, 3, "input must not be modified")

	got, err = Delete(users, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, users, got)

	_, err = Delete(nil, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdate(t *testing.T) {
	users := []User{{ID: 1, Name: "Alice", Age: 30, Gmail: "a@x.com"}, {ID: 2, Name: "Bob", Age: 40, Gmail: "b@x.com"}}

	got, err := Update(users, User{ID: 2, Name: "Robert", Age: 41, Gmail: "r@x.com"})
	require.NoError(t, err)
	assert.Equal(t, User{ID: 2, Name: "Robert", Age: 41, Gmail: "r@x.com"}, got[1])
	assert.Equal(t, users[0], got[0])
	assert.Equal(t, "Bob", users[1].Name, "input must not be modified")

	got, err = Update(users, User{ID: 9, Name: "Nobody"})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, users, got)
}

func TestEncode(t *testing.T) {
	data, err := encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = encode([]User{{ID: 1, Name: "Alice", Age: 30, Gmail: "a@x.com"}})
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"id\": 1,\n    \"name\": \"Alice\",\n    \"age\": 30,\n    \"gmail\": \"a@x.com\"\n  }\n]", string(data))
}

func TestDecode(t *testing.T) {
	assert.Equal(t, []User{}, decode([]byte("not json")))
	assert.Equal(t, []User{}, decode([]byte("null")))
	assert.Equal(t, []User{}, decode([]byte(`{"id":1}`)))
	assert.Equal(t, []User{{ID: 7, Name: "Zed"}}, decode([]byte(`[{"id":7,"name":"Zed"}]`)))
}

func TestDecodeKeepsRecordsWithOddValues(t *testing.T) {
	data := []byte(`[
  {"id": 1, "name": "Alice", "age": 30, "gmail": "a@x.com"},
  {"id": 2, "name": "Bob", "age": 30.5, "gmail": "b@x.com"},
  {"id": 3, "name": "Carol", "age": null},
  {"id": "4", "name": "Dan", "age": "41", "gmail": 5},
  null,
  "stray"
]`)

	assert.Equal(t, []User{
		{ID: 1, Name: "Alice", Age: 30, Gmail: "a@x.com"},
		{ID: 2, Name: "Bob", Age: 30, Gmail: "b@x.com"},
		{ID: 3, Name: "Carol"},
		{ID: 4, Name: "Dan", Age: 41, Gmail: "5"},
	}, decode(data))
}
