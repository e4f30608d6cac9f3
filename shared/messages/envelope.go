// Package messages holds the JSON wire format spoken with the pond server.
package messages

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates the payload carried by an Envelope.
type Kind string

// Inbound kinds
const (
	KindYouJoined          Kind = "you_joined"
	KindOtherPlayerJoined  Kind = "other_player_joined"
	KindOtherPlayerMoved   Kind = "other_player_moved"
	KindOtherPlayerQuacked Kind = "other_player_quacked"
	KindCrackersMoved      Kind = "crackers_moved"
)

// Outbound kinds
const (
	KindMove  Kind = "move"
	KindQuack Kind = "quack"
)

// Envelope is one message on the wire. Data is decoded lazily by the
// translation layer according to Type.
type Envelope struct {
	Type Kind            `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewEnvelope wraps an outbound payload.
func NewEnvelope(kind Kind, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", kind, err)
	}
	return Envelope{Type: kind, Data: data}, nil
}
