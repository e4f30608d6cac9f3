package systems

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
	"github.com/yohamta/donburi/ecs"
)

// Fallback is written into every string field of a payload that failed to
// decode, so the resulting entity is easy to spot on screen.
const Fallback = "error"

// NewEventTranslationSystem returns the system that turns everything the
// transport received since the last tick into typed events. It must run
// before any system reading the inbound queues.
func NewEventTranslationSystem(drain func() []messages.Envelope) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		q := GetOrCreateEventQueue(e)
		q.ResetInbound()
		for _, env := range drain() {
			TranslateEnvelope(env, q)
		}
	}
}

// TranslateEnvelope decodes env and appends the resulting events to q.
// A payload that fails to decode is logged and replaced by a fallback value
// that is routed exactly like real data.
func TranslateEnvelope(env messages.Envelope, q *components.EventQueueData) {
	switch env.Type {
	case messages.KindYouJoined:
		msg := decode(env, fallbackYouJoined)
		q.YouJoined = append(q.YouJoined, msg)
		// The roster and the cracker go through the same paths as their
		// steady-state messages.
		for _, p := range msg.OtherPlayers {
			q.OtherPlayerJoined = append(q.OtherPlayerJoined, components.JoinEvent{OtherPlayerJoined: p, FromRoster: true})
		}
		q.CrackersMoved = append(q.CrackersMoved, messages.CrackersMoved{
			X:      msg.CrackerX,
			Y:      msg.CrackerY,
			Points: msg.CrackerPoints,
		})
	case messages.KindOtherPlayerJoined:
		q.OtherPlayerJoined = append(q.OtherPlayerJoined, components.JoinEvent{
			OtherPlayerJoined: decode(env, fallbackOtherPlayerJoined),
		})
	case messages.KindOtherPlayerMoved:
		q.OtherPlayerMoved = append(q.OtherPlayerMoved, decode(env, fallbackOtherPlayerMoved))
	case messages.KindOtherPlayerQuacked:
		q.OtherPlayerQuacked = append(q.OtherPlayerQuacked, decode(env, fallbackOtherPlayerQuacked))
	case messages.KindCrackersMoved:
		q.CrackersMoved = append(q.CrackersMoved, decode(env, fallbackCrackersMoved))
	default:
		log.Printf("[translate] dropping message of unknown type %q", env.Type)
	}
}

func decode[T any](env messages.Envelope, fallback func() T) T {
	var v T
	err := checkPayload(env.Type, env.Data)
	if err == nil {
		err = json.Unmarshal(env.Data, &v)
	}
	if err != nil {
		log.Printf("[translate] failed to parse %s: %v (raw %q)", env.Type, err, string(env.Data))
		return fallback()
	}
	return v
}

// requiredKeys lists the fields every inbound payload must carry. A missing
// key is a parse failure, not a zero value.
var requiredKeys = map[messages.Kind][]string{
	messages.KindYouJoined: {
		"player_id", "name", "color", "x", "y",
		"cracker_x", "cracker_y", "cracker_points", "player_points", "other_players",
	},
	messages.KindOtherPlayerJoined:  {"player_id", "name", "color", "x", "y"},
	messages.KindOtherPlayerMoved:   {"player_id", "x", "y"},
	messages.KindOtherPlayerQuacked: {"player_id"},
	messages.KindCrackersMoved:      {"x", "y", "points"},
}

// checkPayload rejects payloads that are not a JSON object or that lack a
// required key. Roster entries of you_joined are checked too.
func checkPayload(kind messages.Kind, data json.RawMessage) error {
	if err := checkObject(kind, data); err != nil {
		return err
	}
	if kind != messages.KindYouJoined {
		return nil
	}

	var fields struct {
		OtherPlayers []json.RawMessage `json:"other_players"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("other_players: %w", err)
	}
	for i, entry := range fields.OtherPlayers {
		if err := checkObject(messages.KindOtherPlayerJoined, entry); err != nil {
			return fmt.Errorf("other_players[%d]: %w", i, err)
		}
	}
	return nil
}

func checkObject(kind messages.Kind, data json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("payload is null")
	}
	for _, key := range requiredKeys[kind] {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("missing field %q", key)
		}
	}
	return nil
}

func fallbackYouJoined() messages.YouJoined {
	return messages.YouJoined{Name: Fallback, Color: Fallback}
}

func fallbackOtherPlayerJoined() messages.OtherPlayerJoined {
	return messages.OtherPlayerJoined{Name: Fallback, Color: Fallback}
}

func fallbackOtherPlayerMoved() messages.OtherPlayerMoved {
	return messages.OtherPlayerMoved{}
}

func fallbackOtherPlayerQuacked() messages.OtherPlayerQuacked {
	return messages.OtherPlayerQuacked{}
}

func fallbackCrackersMoved() messages.CrackersMoved {
	return messages.CrackersMoved{}
}

// GetOrCreateEventQueue returns the singleton event queue, creating it if needed.
func GetOrCreateEventQueue(e *ecs.ECS) *components.EventQueueData {
	entry, ok := components.EventQueue.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.EventQueue))
	}
	return components.EventQueue.Get(entry)
}
