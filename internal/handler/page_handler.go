package handlers

import (
	"net/http"
)

func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "about.html", PageData{})
}

// PostPage is the bare post template with no post bound.
func (h *Handlers) PostPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "post.html", PageData{})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		writeJSON(w, map[string]string{"status": "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
