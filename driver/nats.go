package driver

import (
	"time"

	"github.com/nats-io/nats.go"
)

// ConnectNATS builds the event bus connection. Reconnection is left to
// the client so a broker hiccup never takes the storefront down.
func ConnectNATS(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("distribuidora-leo"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}
