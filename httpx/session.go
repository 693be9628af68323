package httpx

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionHeader identifica la sesión de compra. El cliente lo repite en
// cada request; si falta, el servidor genera uno nuevo y lo devuelve en
// la respuesta para que el cliente lo adopte.
const SessionHeader = "X-Session-ID"

type sessionKey struct{}

// WithSession resuelve el session ID del request y lo deja en el
// contexto y en el header de respuesta.
func WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(SessionHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(SessionHeader, id)

		ctx := context.WithValue(r.Context(), sessionKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(sessionKey{}).(string)
	return id
}
