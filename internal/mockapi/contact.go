package mockapi

import (
	"context"
	"log/slog"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
)

// SendContact pretends to deliver a contact-page message. Nothing is sent;
// the payload is only logged.
func (a *contactAPI) SendContact(ctx context.Context, form model.ContactForm) (string, error) {
	if err := a.backend.pause(ctx); err != nil {
		return "", err
	}
	a.backend.logger.Info("contact form received",
		slog.String("name", form.Name),
		slog.String("email", form.Email),
		slog.String("subject", form.Subject),
	)
	return "Tu mensaje ha sido enviado. Te responderemos pronto.", nil
}

// SendWholesale pretends to deliver a wholesale inquiry.
func (a *contactAPI) SendWholesale(ctx context.Context, form model.WholesaleForm) (string, error) {
	if err := a.backend.pause(ctx); err != nil {
		return "", err
	}
	a.backend.logger.Info("wholesale inquiry received",
		slog.String("name", form.Name),
		slog.String("business", form.Business),
		slog.String("email", form.Email),
	)
	return "Tu solicitud ha sido recibida. Nos pondremos en contacto contigo.", nil
}
