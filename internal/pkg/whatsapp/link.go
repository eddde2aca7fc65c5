// Package whatsapp builds pre-filled WhatsApp deep links used to notify
// customers about their orders. Links are built, never sent.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/SanTaClouse/verduleria-luna/internal/domain/model"
)

const (
	baseURL = "https://wa.me/"

	// CountryCode is prefixed to every normalized phone number.
	CountryCode = "54"
)

var amounts = message.NewPrinter(language.Spanish)

// Link builds a deep link for the given phone with an optional pre-filled
// message. Non-digit characters are stripped from the phone before the
// country code is prepended.
func Link(phone, msg string) string {
	link := baseURL + CountryCode + digitsOnly(phone)
	if msg == "" {
		return link
	}
	return link + "?text=" + url.QueryEscape(msg)
}

// OrderCreatedMessage is the confirmation sent right after registering an
// order, with totals formatted using Spanish thousands separators.
func OrderCreatedMessage(o model.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s! 🌿\n\n", o.Customer.Name)
	b.WriteString("Tu pedido ha sido registrado:\n\n")
	fmt.Fprintf(&b, "📦 *Detalle:*\n%s\n\n", o.Description)
	fmt.Fprintf(&b, "💰 *Total:* $%s\n", formatAmount(o.Price))
	if o.AmountPaid > 0 {
		fmt.Fprintf(&b, "✅ *Abonado:* $%s\n", formatAmount(o.AmountPaid))
		fmt.Fprintf(&b, "⏳ *Pendiente:* $%s\n", formatAmount(o.Price-o.AmountPaid))
	}
	fmt.Fprintf(&b, "\n📅 *Fecha:* %s\n\n", o.Date)
	b.WriteString("¡Gracias por tu compra! 🙌")
	return b.String()
}

// OrderReadyMessage is the short notice used by the stand-alone link
// endpoint.
func OrderReadyMessage(orderID int64) string {
	return fmt.Sprintf("Hola! Tu pedido #%d está listo.", orderID)
}

func formatAmount(v float64) string {
	return amounts.Sprintf("%.0f", v)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
