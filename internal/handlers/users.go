package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/alfagnish/userbook/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// UsersHandler provides the add, delete and update mutations. Each request
// loads the collection, changes it and writes it back.
type UsersHandler struct {
	store   store.Store
	maxBody int64
	log     logrus.FieldLogger
}

// NewUsersHandler creates a new UsersHandler. Request bodies larger than
// maxBody bytes are rejected.
func NewUsersHandler(st store.Store, maxBody int64, log logrus.FieldLogger) *UsersHandler {
	return &UsersHandler{store: st, maxBody: maxBody, log: log}
}

// Routes registers mutation routes on the given chi router.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Post("/add", h.AddUser)
	r.Post("/delete", h.DeleteUser)
	r.Post("/update", h.UpdateUser)
}

// AddUser creates a user unless the id is already taken.
func (h *UsersHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(users []store.User, form UserForm) ([]store.User, error) {
		return store.Add(users, form.User())
	})
}

// DeleteUser removes the user with the submitted id. A missing or
// non-numeric id matches nothing.
func (h *UsersHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(users []store.User, form UserForm) ([]store.User, error) {
		id, ok := form.ID()
		if !ok {
			return users, store.ErrUserNotFound
		}
		return store.Delete(users, id)
	})
}

// UpdateUser replaces every field of the user with the submitted id. A
// missing or non-numeric id matches nothing.
func (h *UsersHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(users []store.User, form UserForm) ([]store.User, error) {
		if _, ok := form.ID(); !ok {
			return users, store.ErrUserNotFound
		}
		return store.Update(users, form.User())
	})
}

type mutation func(users []store.User, form UserForm) ([]store.User, error)

// mutate runs one load/change/save cycle and writes the response.
func (h *UsersHandler) mutate(w http.ResponseWriter, r *http.Request, change mutation) {
	form, err := ParseUserForm(w, r, h.maxBody)
	if err != nil {
		h.log.WithError(err).WithField("path", r.URL.Path).Warn("reject body")
		writeText(w, http.StatusBadRequest, "Error reading request body")
		return
	}

	// The cycle runs to completion even if the client goes away.
	ctx := context.WithoutCancel(r.Context())

	users, err := h.store.Load(ctx)
	if err != nil {
		h.log.WithError(err).Error("load users")
		writeText(w, http.StatusInternalServerError, "Error loading users")
		return
	}

	users, err = change(users, form)
	switch {
	case errors.Is(err, store.ErrDuplicateID):
		writeHTML(w, http.StatusBadRequest, msgDuplicateID)
		return
	case errors.Is(err, store.ErrUserNotFound):
		writeHTML(w, http.StatusBadRequest, msgNotFound)
		return
	case err != nil:
		h.log.WithError(err).Error("change users")
		writeText(w, http.StatusInternalServerError, "Error changing users")
		return
	}

	if err := h.store.Save(ctx, users); err != nil {
		h.log.WithError(err).Error("save users")
		writeText(w, http.StatusInternalServerError, "Error saving users")
		return
	}

	h.log.WithFields(logrus.Fields{"path": r.URL.Path, "count": len(users)}).Debug("users changed")
	redirectHome(w)
}
