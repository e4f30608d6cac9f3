package components

import (
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
	"github.com/yohamta/donburi"
)

// EventQueueData is a singleton with one typed queue per message kind.
// Inbound queues are refilled from the network once per tick before any
// consumer runs; outbound queues are flushed to the transport at the end of
// the tick.
type EventQueueData struct {
	YouJoined          []messages.YouJoined
	OtherPlayerJoined  []JoinEvent
	OtherPlayerMoved   []messages.OtherPlayerMoved
	OtherPlayerQuacked []messages.OtherPlayerQuacked
	CrackersMoved      []messages.CrackersMoved

	MoveRequests  []messages.MoveRequest
	QuackRequests []messages.QuackRequest
}

// JoinEvent is a queued other_player_joined. FromRoster marks entries that
// were unpacked from a you_joined roster rather than sent on their own.
type JoinEvent struct {
	messages.OtherPlayerJoined
	FromRoster bool
}

// ResetInbound empties the inbound queues, keeping their backing arrays.
func (q *EventQueueData) ResetInbound() {
	q.YouJoined = q.YouJoined[:0]
	q.OtherPlayerJoined = q.OtherPlayerJoined[:0]
	q.OtherPlayerMoved = q.OtherPlayerMoved[:0]
	q.OtherPlayerQuacked = q.OtherPlayerQuacked[:0]
	q.CrackersMoved = q.CrackersMoved[:0]
}

// ResetOutbound empties the outbound queues.
func (q *EventQueueData) ResetOutbound() {
	q.MoveRequests = q.MoveRequests[:0]
	q.QuackRequests = q.QuackRequests[:0]
}

var EventQueue = donburi.NewComponentType[EventQueueData]()
