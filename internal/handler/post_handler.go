package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"cleanblog/internal/repository"
	"cleanblog/internal/service"

	"github.com/gorilla/mux"
)

// Home renders the paginated post list. An absent or malformed page
// parameter resolves to page 1.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostRepo.GetAll(r.Context())
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := service.Paginate(posts, r.URL.Query().Get("page"), h.Cfg.LimitOfPosts)

	h.render(w, r, "index.html", PageData{Page: page})
}

// PostBySlug shows a single post. Duplicate slugs resolve to the first match
// in store order; a missing slug is a hard 404.
func (h *Handlers) PostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.PostRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeError(w, "Post not found", http.StatusNotFound)
		} else {
			writeError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	h.render(w, r, "post.html", PageData{Post: post})
}

// formFile extracts the uploaded image from the request, if any. A missing
// file is not an error; the storage layer degrades it to the placeholder.
func (h *Handlers) formFile(r *http.Request) (string, io.Reader, func()) {
	file, header, err := r.FormFile("image_url")
	if err != nil {
		return "", nil, func() {}
	}
	return header.Filename, file, func() { file.Close() }
}

func (h *Handlers) AddPost(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
			writeError(w, "Failed to parse form", http.StatusBadRequest)
			return
		}

		form := struct {
			Title   string `validate:"required"`
			Content string `validate:"required"`
			Slug    string `validate:"required"`
		}{
			Title:   r.FormValue("title"),
			Content: r.FormValue("content"),
			Slug:    r.FormValue("slug"),
		}

		if err := h.Validate.Struct(form); err != nil {
			writeError(w, "Title, content and slug are required", http.StatusBadRequest)
			return
		}

		fileName, file, closeFile := h.formFile(r)
		defer closeFile()

		req := repository.CreatePostRequest{
			Title:    form.Title,
			Content:  form.Content,
			Slug:     form.Slug,
			FileName: fileName,
		}

		_, err := h.PostService.CreatePost(r.Context(), req, file)
		if err != nil {
			writeError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		h.addFlash(w, r, "success", "Post has been added successfully")
	}

	h.render(w, r, "add_post.html", PageData{})
}

func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if r.Method == http.MethodPost {
		if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
			writeError(w, "Failed to parse form", http.StatusBadRequest)
			return
		}

		form := struct {
			Title   string `validate:"required"`
			Content string `validate:"required"`
			Slug    string `validate:"required"`
		}{
			Title:   r.FormValue("title"),
			Content: r.FormValue("content"),
			Slug:    r.FormValue("slug"),
		}

		if err := h.Validate.Struct(form); err != nil {
			writeError(w, "Title, content and slug are required", http.StatusBadRequest)
			return
		}

		fileName, file, closeFile := h.formFile(r)
		defer closeFile()

		req := repository.UpdatePostRequest{
			PostID:   postID,
			Title:    form.Title,
			Content:  form.Content,
			Slug:     form.Slug,
			FileName: fileName,
		}

		_, err := h.PostService.UpdatePost(r.Context(), req, file)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				writeError(w, "Post not found", http.StatusNotFound)
			} else {
				writeError(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		posts, err := h.PostRepo.GetAll(r.Context())
		if err != nil {
			writeError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		h.addFlash(w, r, "warning", "Post has been edited successfully")
		h.render(w, r, "dashboard.html", PageData{Posts: posts})
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeError(w, "Post not found", http.StatusNotFound)
		} else {
			writeError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	h.render(w, r, "edit_post.html", PageData{Post: post})
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeError(w, "Post not found", http.StatusNotFound)
		} else {
			writeError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	posts, err := h.PostRepo.GetAll(r.Context())
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.addFlash(w, r, "danger", "Post has been removed successfully")
	h.render(w, r, "dashboard.html", PageData{Posts: posts})
}
