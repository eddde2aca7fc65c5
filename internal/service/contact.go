package service

import (
	"context"
	"log/slog"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/api"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
)

// ContactService exposes public contact intake behind the result envelope.
type ContactService struct {
	contact api.Contact
	logger  *slog.Logger
}

// NewContactService constructs ContactService.
func NewContactService(contact api.Contact, logger *slog.Logger) *ContactService {
	return &ContactService{contact: contact, logger: logger}
}

func contactMessage(error) string {
	return "No pudimos enviar tu mensaje, intentá de nuevo"
}

func (s *ContactService) SendContact(ctx context.Context, form model.ContactForm) Result[string] {
	return capture(s.logger, "contact.send", contactMessage, func() (string, error) {
		return s.contact.SendContact(ctx, form)
	})
}

func (s *ContactService) SendWholesale(ctx context.Context, form model.WholesaleForm) Result[string] {
	return capture(s.logger, "contact.wholesale", contactMessage, func() (string, error) {
		return s.contact.SendWholesale(ctx, form)
	})
}
