package systems

import (
	"encoding/json"
	"testing"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
)

func envelope(t *testing.T, kind messages.Kind, payload any) messages.Envelope {
	t.Helper()
	env, err := messages.NewEnvelope(kind, payload)
	if err != nil {
		t.Fatalf("NewEnvelope: %v", err)
	}
	return env
}

func TestTranslateYouJoinedFansOutRoster(t *testing.T) {
	q := &components.EventQueueData{}
	TranslateEnvelope(envelope(t, messages.KindYouJoined, messages.YouJoined{
		PlayerID: 7,
		Name:     "Mallory",
		Color:    "green",
		OtherPlayers: []messages.OtherPlayerJoined{
			{PlayerID: 1, Name: "a"},
			{PlayerID: 2, Name: "b"},
			{PlayerID: 3, Name: "c"},
		},
	}), q)

	if len(q.YouJoined) != 1 {
		t.Fatalf("got %d you_joined events, want 1", len(q.YouJoined))
	}
	if q.YouJoined[0].PlayerID != 7 || q.YouJoined[0].Name != "Mallory" {
		t.Fatalf("you_joined = %+v", q.YouJoined[0])
	}
	if len(q.OtherPlayerJoined) != 3 {
		t.Fatalf("got %d other_player_joined events, want 3", len(q.OtherPlayerJoined))
	}
	for i, want := range []messages.PlayerID{1, 2, 3} {
		if got := q.OtherPlayerJoined[i].PlayerID; got != want {
			t.Errorf("roster[%d] = %d, want %d", i, got, want)
		}
		if !q.OtherPlayerJoined[i].FromRoster {
			t.Errorf("roster[%d] not marked as roster", i)
		}
	}
}

func TestTranslateYouJoinedQueuesCrackerMove(t *testing.T) {
	q := &components.EventQueueData{}
	TranslateEnvelope(envelope(t, messages.KindYouJoined, messages.YouJoined{
		PlayerID: 7, CrackerX: 30, CrackerY: -40, CrackerPoints: 5,
	}), q)

	want := messages.CrackersMoved{X: 30, Y: -40, Points: 5}
	if len(q.CrackersMoved) != 1 || q.CrackersMoved[0] != want {
		t.Fatalf("crackers_moved = %+v, want [%+v]", q.CrackersMoved, want)
	}
}

func TestTranslateStandaloneJoinIsNotRoster(t *testing.T) {
	q := &components.EventQueueData{}
	TranslateEnvelope(envelope(t, messages.KindOtherPlayerJoined, messages.OtherPlayerJoined{PlayerID: 2, Name: "b"}), q)
	if len(q.OtherPlayerJoined) != 1 || q.OtherPlayerJoined[0].FromRoster {
		t.Fatalf("events = %+v", q.OtherPlayerJoined)
	}
}

func TestTranslateMalformedPayloadUsesFallback(t *testing.T) {
	payloads := map[string]json.RawMessage{
		"truncated": json.RawMessage(`{"player_id": "seven"`),
		"null":      json.RawMessage(`null`),
		"empty":     json.RawMessage(`{}`),
		"array":     json.RawMessage(`[1, 2]`),
	}

	cases := []struct {
		kind  messages.Kind
		check func(t *testing.T, q *components.EventQueueData)
	}{
		{messages.KindYouJoined, func(t *testing.T, q *components.EventQueueData) {
			if len(q.YouJoined) != 1 {
				t.Fatalf("got %d events", len(q.YouJoined))
			}
			got := q.YouJoined[0]
			if got.PlayerID != 0 || got.Name != Fallback || got.Color != Fallback || got.X != 0 || got.Y != 0 {
				t.Fatalf("fallback = %+v", got)
			}
			if len(q.OtherPlayerJoined) != 0 {
				t.Fatalf("fallback roster produced %d joins", len(q.OtherPlayerJoined))
			}
		}},
		{messages.KindOtherPlayerJoined, func(t *testing.T, q *components.EventQueueData) {
			if len(q.OtherPlayerJoined) != 1 || q.OtherPlayerJoined[0].Name != Fallback {
				t.Fatalf("events = %+v", q.OtherPlayerJoined)
			}
		}},
		{messages.KindOtherPlayerMoved, func(t *testing.T, q *components.EventQueueData) {
			if len(q.OtherPlayerMoved) != 1 || q.OtherPlayerMoved[0] != (messages.OtherPlayerMoved{}) {
				t.Fatalf("events = %+v", q.OtherPlayerMoved)
			}
		}},
		{messages.KindOtherPlayerQuacked, func(t *testing.T, q *components.EventQueueData) {
			if len(q.OtherPlayerQuacked) != 1 {
				t.Fatalf("events = %+v", q.OtherPlayerQuacked)
			}
		}},
		{messages.KindCrackersMoved, func(t *testing.T, q *components.EventQueueData) {
			if len(q.CrackersMoved) != 1 || q.CrackersMoved[0] != (messages.CrackersMoved{}) {
				t.Fatalf("events = %+v", q.CrackersMoved)
			}
		}},
	}

	for _, c := range cases {
		for name, data := range payloads {
			t.Run(string(c.kind)+"/"+name, func(t *testing.T) {
				q := &components.EventQueueData{}
				TranslateEnvelope(messages.Envelope{Type: c.kind, Data: data}, q)
				c.check(t, q)
			})
		}
	}
}

func TestTranslateMissingFieldUsesFallback(t *testing.T) {
	q := &components.EventQueueData{}
	TranslateEnvelope(messages.Envelope{
		Type: messages.KindOtherPlayerJoined,
		Data: json.RawMessage(`{"player_id": 4, "x": 1, "y": 2, "color": "blue"}`),
	}, q)
	if len(q.OtherPlayerJoined) != 1 {
		t.Fatalf("got %d events, want the fallback", len(q.OtherPlayerJoined))
	}
	if got := q.OtherPlayerJoined[0]; got.Name != Fallback || got.Color != Fallback || got.PlayerID != 0 {
		t.Fatalf("event = %+v, want the fallback", got)
	}
}

func TestTranslateBadRosterEntryUsesFallback(t *testing.T) {
	q := &components.EventQueueData{}
	TranslateEnvelope(messages.Envelope{
		Type: messages.KindYouJoined,
		Data: json.RawMessage(`{"player_id": 7, "name": "Mallory", "color": "green", "x": 0, "y": 0,
			"cracker_x": 0, "cracker_y": 0, "cracker_points": 1, "player_points": 0,
			"other_players": [{"player_id": 1, "name": "a", "color": "red", "x": 0, "y": 0}, null]}`),
	}, q)
	if len(q.YouJoined) != 1 || q.YouJoined[0].Name != Fallback {
		t.Fatalf("you_joined = %+v, want the fallback", q.YouJoined)
	}
	if len(q.OtherPlayerJoined) != 0 {
		t.Fatalf("fallback roster produced %d joins", len(q.OtherPlayerJoined))
	}
}

func TestTranslateNullRosterIsEmpty(t *testing.T) {
	q := &components.EventQueueData{}
	TranslateEnvelope(envelope(t, messages.KindYouJoined, messages.YouJoined{PlayerID: 7, Name: "Mallory"}), q)
	if len(q.YouJoined) != 1 || q.YouJoined[0].Name != "Mallory" {
		t.Fatalf("you_joined = %+v", q.YouJoined)
	}
}

func TestTranslateMissingDataUsesFallback(t *testing.T) {
	q := &components.EventQueueData{}
	TranslateEnvelope(messages.Envelope{Type: messages.KindCrackersMoved}, q)
	if len(q.CrackersMoved) != 1 {
		t.Fatalf("got %d events, want the fallback", len(q.CrackersMoved))
	}
}

func TestTranslateUnknownKindIsDropped(t *testing.T) {
	q := &components.EventQueueData{}
	TranslateEnvelope(messages.Envelope{Type: "duck_dance", Data: json.RawMessage(`{}`)}, q)

	if len(q.YouJoined)+len(q.OtherPlayerJoined)+len(q.OtherPlayerMoved)+len(q.OtherPlayerQuacked)+len(q.CrackersMoved) != 0 {
		t.Fatalf("unknown kind produced events: %+v", q)
	}
}

func TestEventTranslationSystemResetsEachTick(t *testing.T) {
	e := newTestECS(t)
	pending := []messages.Envelope{
		envelope(t, messages.KindOtherPlayerMoved, messages.OtherPlayerMoved{PlayerID: 3, X: 1, Y: 2}),
		envelope(t, messages.KindOtherPlayerQuacked, messages.OtherPlayerQuacked{PlayerID: 3}),
	}
	drain := func() []messages.Envelope {
		out := pending
		pending = nil
		return out
	}
	sys := NewEventTranslationSystem(drain)

	sys(e)
	q := GetOrCreateEventQueue(e)
	if len(q.OtherPlayerMoved) != 1 || len(q.OtherPlayerQuacked) != 1 {
		t.Fatalf("first tick: %d moves, %d quacks", len(q.OtherPlayerMoved), len(q.OtherPlayerQuacked))
	}
	if got := q.OtherPlayerMoved[0]; got.PlayerID != 3 || got.X != 1 || got.Y != 2 {
		t.Fatalf("move = %+v", got)
	}

	sys(e)
	if len(q.OtherPlayerMoved) != 0 || len(q.OtherPlayerQuacked) != 0 {
		t.Fatal("events from the previous tick were not cleared")
	}
}

func TestEventTranslationKeepsOutboundQueues(t *testing.T) {
	e := newTestECS(t)
	q := GetOrCreateEventQueue(e)
	q.MoveRequests = append(q.MoveRequests, messages.MoveRequest{Dx: 1})

	NewEventTranslationSystem(func() []messages.Envelope { return nil })(e)

	if len(q.MoveRequests) != 1 {
		t.Fatal("inbound reset touched the outbound queue")
	}
}
