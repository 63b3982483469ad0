package service

import (
	"context"
	"time"

	"cleanblog/internal/mailer"
	"cleanblog/internal/models"
	"cleanblog/internal/repository"
)

type ContactService interface {
	SubmitContact(ctx context.Context, req repository.CreateContactRequest) (*models.Contact, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	mailer      mailer.Mailer
}

func NewContactService(contactRepo repository.ContactRepository, mailer mailer.Mailer) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		mailer:      mailer,
	}
}

// SubmitContact stores the submission and sends exactly one notification
// mail. The record is committed before the send, so a transport failure
// leaves the row in place and surfaces the error to the caller.
func (s *contactService) SubmitContact(ctx context.Context, req repository.CreateContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:     req.Name,
		PhoneNum: req.PhoneNum,
		Email:    req.Email,
		Msg:      req.Msg,
		Date:     time.Now(),
	}

	err := s.contactRepo.Create(ctx, contact)
	if err != nil {
		return nil, err
	}

	err = s.mailer.Notify(contact.Name, contact.Email, contact.Msg+" "+contact.PhoneNum)
	if err != nil {
		return nil, err
	}

	return contact, nil
}
