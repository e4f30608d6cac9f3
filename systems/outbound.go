package systems

import (
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
	"github.com/yohamta/donburi/ecs"
)

// Outbox takes the requests queued during a tick.
type Outbox interface {
	SendMove(messages.MoveRequest)
	SendQuack()
}

// NewOutboundSystem hands this tick's requests to out and empties the queues.
// It runs after every system that queues requests.
func NewOutboundSystem(out Outbox) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		q := GetOrCreateEventQueue(e)
		for _, mv := range q.MoveRequests {
			out.SendMove(mv)
		}
		for range q.QuackRequests {
			out.SendQuack()
		}
		q.ResetOutbound()
	}
}
