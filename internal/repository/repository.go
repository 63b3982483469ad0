package repository

import (
	"context"

	"cleanblog/internal/models"

	"github.com/jmoiron/sqlx"
)

type PostRepository interface {
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, postID int) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int) error
}

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
}

type Repository struct {
	Post    PostRepository
	Contact ContactRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post:    NewPostRepository(db),
		Contact: NewContactRepository(db),
	}
}
