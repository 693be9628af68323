package models

import (
	"encoding/json"
	"time"

	"github.com/Ubarrionuevo/distribuidora-leo/models/enum"
)

type Event struct {
	ID         string          `json:"id"`
	Type       enum.EventType  `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}
