package handlers

import (
	"io/fs"
	"net/http"

	"github.com/alfagnish/userbook/internal/assets"
	"github.com/alfagnish/userbook/internal/render"
	"github.com/alfagnish/userbook/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// PagesHandler serves the stylesheet, the static forms and the rendered
// listing page.
type PagesHandler struct {
	assets fs.FS
	store  store.Store
	log    logrus.FieldLogger
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(fsys fs.FS, st store.Store, log logrus.FieldLogger) *PagesHandler {
	return &PagesHandler{assets: fsys, store: st, log: log}
}

// Routes registers page routes on the given chi router.
func (h *PagesHandler) Routes(r chi.Router) {
	r.Get("/style.css", h.Stylesheet)
	r.Get("/add", h.staticPage(assets.AddPage))
	r.Get("/delete", h.staticPage(assets.DeletePage))
	r.Get("/update", h.staticPage(assets.UpdatePage))
	r.Get("/", h.Home)
	r.Get("/home", h.Home)
}

// Stylesheet serves style.css.
func (h *PagesHandler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(h.assets, assets.Stylesheet)
	if err != nil {
		h.log.WithError(err).WithField("asset", assets.Stylesheet).Error("read asset")
		writeText(w, http.StatusInternalServerError, "Error loading CSS file")
		return
	}
	write(w, http.StatusOK, "text/css; charset=utf-8", data)
}

// staticPage returns a handler serving one of the form pages unmodified.
func (h *PagesHandler) staticPage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(h.assets, name)
		if err != nil {
			h.log.WithError(err).WithField("asset", name).Error("read asset")
			writeText(w, http.StatusInternalServerError, "Error loading page")
			return
		}
		writeHTML(w, http.StatusOK, string(data))
	}
}

// Home renders the listing page with the current collection.
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.Load(r.Context())
	if err != nil {
		h.log.WithError(err).Error("load users")
		writeText(w, http.StatusInternalServerError, "Error loading users")
		return
	}

	page, err := fs.ReadFile(h.assets, assets.Index)
	if err != nil {
		h.log.WithError(err).WithField("asset", assets.Index).Error("read asset")
		writeText(w, http.StatusInternalServerError, "Error loading home page")
		return
	}

	html, err := render.Home(string(page), users)
	if err != nil {
		h.log.WithError(err).Error("render home page")
		writeText(w, http.StatusInternalServerError, "Error rendering home page")
		return
	}
	writeHTML(w, http.StatusOK, html)
}
