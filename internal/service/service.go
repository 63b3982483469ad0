package service

import (
	"cleanblog/internal/config"
	"cleanblog/internal/mailer"
	"cleanblog/internal/repository"
	"cleanblog/internal/storage"

	"github.com/gorilla/sessions"
)

type Service struct {
	Post    PostService
	Contact ContactService
	Auth    AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, mailer mailer.Mailer, store sessions.Store) *Service {
	return &Service{
		Post:    NewPostService(rep.Post, storage),
		Contact: NewContactService(rep.Contact, mailer),
		Auth:    NewAuthService(cfg, store),
	}
}
