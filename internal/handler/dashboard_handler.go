package handlers

import (
	"net/http"
)

// Dashboard is the only guarded controller. A valid session shows it
// directly; otherwise a POST with matching admin credentials signs the
// session in. Everything else gets the login form.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.AuthService.CurrentUser(r); ok {
		h.showDashboard(w, r)
		return
	}

	if r.Method == http.MethodPost {
		username := r.FormValue("username")
		password := r.FormValue("password")

		if h.AuthService.Authenticate(username, password) {
			if err := h.AuthService.SignIn(w, r, username); err != nil {
				writeError(w, err.Error(), http.StatusInternalServerError)
				return
			}
			h.showDashboard(w, r)
			return
		}
	}

	h.render(w, r, "login.html", PageData{})
}

func (h *Handlers) showDashboard(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostRepo.GetAll(r.Context())
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "dashboard.html", PageData{Posts: posts})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.SignOut(w, r); err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
