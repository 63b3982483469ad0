package handlers

import (
	"encoding/gob"
	"log"
	"net/http"

	"cleanblog/internal/config"
	"cleanblog/internal/database"
	"cleanblog/internal/models"
	"cleanblog/internal/render"
	"cleanblog/internal/repository"
	"cleanblog/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
)

func init() {
	// flashes are stored in the session cookie as gob values
	gob.Register(models.Flash{})
}

type Handlers struct {
	PostService    service.PostService
	PostRepo       repository.PostRepository
	ContactService service.ContactService
	AuthService    service.AuthService
	DB             *database.DB
	Cfg            *config.Config
	Renderer       render.Renderer
	Store          sessions.Store
	Validate       *validator.Validate
}

// PageData is the fixed binding set passed to every template.
type PageData struct {
	Flashes  []models.Flash
	Page     service.Page
	Posts    []models.Post
	Post     *models.Post
	LoggedIn bool
}

func NewHandlers(repo *repository.Repository, services *service.Service, cfg *config.Config, renderer render.Renderer, store sessions.Store, db *database.DB) *Handlers {
	return &Handlers{
		PostService:    services.Post,
		PostRepo:       repo.Post,
		ContactService: services.Contact,
		AuthService:    services.Auth,
		DB:             db,
		Cfg:            cfg,
		Renderer:       renderer,
		Store:          store,
		Validate:       validator.New(),
	}
}

// render pops pending flashes into the binding and executes the named
// template.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, name string, data PageData) {
	data.Flashes = h.popFlashes(w, r)
	_, data.LoggedIn = h.AuthService.CurrentUser(r)

	if err := h.Renderer.Render(w, name, data); err != nil {
		log.Printf("failed to render %s: %v", name, err)
	}
}

func (h *Handlers) addFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	session, _ := h.Store.Get(r, service.SessionName)
	session.AddFlash(models.Flash{Category: category, Message: message})
	if err := session.Save(r, w); err != nil {
		log.Printf("failed to save flash: %v", err)
	}
}

// popFlashes returns pending flashes and discards them. Flashes added
// earlier in the same request are included, so a flash set by a POST handler
// shows up on the page it renders.
func (h *Handlers) popFlashes(w http.ResponseWriter, r *http.Request) []models.Flash {
	session, _ := h.Store.Get(r, service.SessionName)

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}

	flashes := make([]models.Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(models.Flash); ok {
			flashes = append(flashes, flash)
		}
	}

	if err := session.Save(r, w); err != nil {
		log.Printf("failed to clear flashes: %v", err)
	}

	return flashes
}
