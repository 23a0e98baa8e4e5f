package store

// Add appends u to users unless a record with the same id is present. The
// input slice is left untouched.
func Add(users []User, u User) ([]User, error) {
	for _, existing := range users {
		if existing.ID == u.ID {
			return users, ErrDuplicateID
		}
	}
	return append(users[:len(users):len(users)], u), nil
}

// Delete returns users without any record whose id matches. The input slice
// is left untouched.
func Delete(users []User, id int64) ([]User, error) {
	out := make([]User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	if len(out) == len(users) {
		return users, ErrUserNotFound
	}
	return out, nil
}

// Update replaces every field of the first record whose id matches u.ID.
// The input slice is left untouched.
func Update(users []User, u User) ([]User, error) {
	for i, existing := range users {
		if existing.ID != u.ID {
			continue
		}
		out := make([]User, len(users))
		copy(out, users)
		out[i] = u
		return out, nil
	}
	return users, ErrUserNotFound
}
