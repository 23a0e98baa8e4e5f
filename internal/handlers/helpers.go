package handlers

import (
	"net/http"
)

// Response bodies shared by the handlers.
const (
	msgDuplicateID = `<h1>Error: User with this ID already exists.</h1><a href="/">Home</a>`
	msgNotFound    = `<h1>Error: User not found.</h1><a href="/">Home</a>`
	msgNoRoute     = `<h1>404 Not Found</h1>`
)

// writeHTML writes body as an HTML response with the given status code.
func writeHTML(w http.ResponseWriter, status int, body string) {
	write(w, status, "text/html; charset=utf-8", []byte(body))
}

// writeText writes body as a plain-text response. Used for server-side
// failures.
func writeText(w http.ResponseWriter, status int, body string) {
	write(w, status, "text/plain; charset=utf-8", []byte(body))
}

func write(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	w.Write(body)
}

// redirectHome sends the client back to the listing page after a mutation.
func redirectHome(w http.ResponseWriter) {
	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusFound)
}

// NotFound answers every request that no route matches, including known
// paths requested with the wrong method.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusNotFound, msgNoRoute)
}
