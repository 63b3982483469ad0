package main

import (
	"fmt"
	"log"
	"net/http"

	"cleanblog/cmd/app"
	"cleanblog/internal/config"
	handlers "cleanblog/internal/handler"
	"cleanblog/internal/middleware"
	"cleanblog/internal/render"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD is not set")
	}

	db, repo, services, store := app.App(cfg)
	defer db.CloseDB()

	renderer, err := render.New("templates")
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	handler := handlers.NewHandlers(repo, services, cfg, renderer, store, db)

	r := mux.NewRouter()

	// setting up routes
	r.HandleFunc("/", handler.Home).Methods(http.MethodGet)
	r.HandleFunc("/about", handler.About).Methods(http.MethodGet)
	r.HandleFunc("/contact", handler.Contact).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/post", handler.PostPage).Methods(http.MethodGet)
	r.HandleFunc("/post/{slug}", handler.PostBySlug).Methods(http.MethodGet)
	r.HandleFunc("/add-post", handler.AddPost).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/edit-post/{id}", handler.EditPost).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/delete-post/{id}", handler.DeletePost).Methods(http.MethodGet)
	r.HandleFunc("/dashboard", handler.Dashboard).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/logout", handler.Logout).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// uploaded images and theme assets
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	handlerChain := middleware.Chain(
		r,
		middleware.RecoverMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
