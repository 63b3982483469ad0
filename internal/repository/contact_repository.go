package repository

import (
	"context"
	"fmt"
	"time"

	"cleanblog/internal/models"

	"github.com/jmoiron/sqlx"
)

// ContactRepositoryImpl is append-only: contact records are never read,
// updated or deleted by the application.
type ContactRepositoryImpl struct {
	db *sqlx.DB
}

type CreateContactRequest struct {
	Name     string `json:"name"`
	PhoneNum string `json:"phone_num"`
	Email    string `json:"email"`
	Msg      string `json:"msg"`
}

func NewContactRepository(db *sqlx.DB) *ContactRepositoryImpl {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (name, phone_num, email, msg, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING contact_id
	`

	if contact.Date.IsZero() {
		contact.Date = time.Now()
	}

	err := r.db.GetContext(ctx, &contact.ContactID, query,
		contact.Name, contact.PhoneNum, contact.Email, contact.Msg, contact.Date)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	return nil
}
