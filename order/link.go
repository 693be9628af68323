package order

import (
	"fmt"
	"net/url"
)

const (
	// Constantes de despliegue: el contacto del negocio no es entrada
	// del usuario.
	DefaultBaseURL   = "https://wa.me"
	DefaultContactID = "5491112345678"
)

// LinkBuilder arma el link saliente hacia el servicio de mensajería.
type LinkBuilder struct {
	baseURL   string
	contactID string
}

func NewLinkBuilder(baseURL, contactID string) LinkBuilder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if contactID == "" {
		contactID = DefaultContactID
	}
	return LinkBuilder{baseURL: baseURL, contactID: contactID}
}

// OrderLink devuelve <base>/<contacto>?text=<mensaje percent-encoded>.
func (b LinkBuilder) OrderLink(msg string) string {
	q := url.Values{"text": []string{msg}}
	return fmt.Sprintf("%s/%s?%s", b.baseURL, b.contactID, q.Encode())
}
