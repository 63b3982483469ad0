package handlers

import (
	"net/http"

	"cleanblog/internal/repository"
)

// Contact renders the contact form and, on POST, stores the submission and
// notifies the site owner by mail. A mail transport failure is not swallowed:
// it surfaces as a request-level error.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			writeError(w, "Failed to parse form", http.StatusBadRequest)
			return
		}

		form := struct {
			Name    string `validate:"required"`
			Email   string `validate:"required"`
			Phone   string `validate:"required"`
			Message string `validate:"required"`
		}{
			Name:    r.FormValue("name"),
			Email:   r.FormValue("email"),
			Phone:   r.FormValue("phone"),
			Message: r.FormValue("message"),
		}

		if err := h.Validate.Struct(form); err != nil {
			writeError(w, "All contact fields are required", http.StatusBadRequest)
			return
		}

		req := repository.CreateContactRequest{
			Name:     form.Name,
			Email:    form.Email,
			PhoneNum: form.Phone,
			Msg:      form.Message,
		}

		_, err := h.ContactService.SubmitContact(r.Context(), req)
		if err != nil {
			writeError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		h.addFlash(w, r, "success", "Mail has been sent successfully on behalf of you ...")
	}

	h.render(w, r, "contact.html", PageData{})
}
