package app

import (
	"log"

	"cleanblog/internal/config"
	"cleanblog/internal/database"
	"cleanblog/internal/mailer"
	"cleanblog/internal/repository"
	"cleanblog/internal/service"
	"cleanblog/internal/storage"

	"github.com/gorilla/sessions"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, sessions.Store) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// signed cookie session store
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	// upload sink on local disk
	diskStorage := storage.NewDiskStorage(cfg.UploadBaseURI)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, diskStorage, mailer.New(cfg), store)

	return db, repo, services, store
}
