package systems

import (
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// PlayerRegistry maps server player ids to entities. The local duck is kept
// apart from the remote ones so a roster entry carrying our own id can never
// shadow it.
type PlayerRegistry struct {
	world    donburi.World
	local    donburi.Entity
	localID  esync.NetworkId
	hasLocal bool
	others   map[esync.NetworkId]donburi.Entity
}

func NewPlayerRegistry(world donburi.World) *PlayerRegistry {
	return &PlayerRegistry{
		world:  world,
		others: make(map[esync.NetworkId]donburi.Entity),
	}
}

// Local returns the local duck, if one has joined and is still alive.
func (r *PlayerRegistry) Local() (*donburi.Entry, bool) {
	if !r.hasLocal || !r.world.Valid(r.local) {
		return nil, false
	}
	return r.world.Entry(r.local), true
}

// LocalID returns the server id of the local duck.
func (r *PlayerRegistry) LocalID() (esync.NetworkId, bool) {
	return r.localID, r.hasLocal
}

func (r *PlayerRegistry) SetLocal(id esync.NetworkId, entry *donburi.Entry) {
	r.local = entry.Entity()
	r.localID = id
	r.hasLocal = true
}

// ClearLocal removes the local duck from the world and the registry.
func (r *PlayerRegistry) ClearLocal() {
	if r.hasLocal && r.world.Valid(r.local) {
		r.world.Remove(r.local)
	}
	r.hasLocal = false
}

// Other returns the remote duck with id. Stale entries are pruned.
func (r *PlayerRegistry) Other(id esync.NetworkId) (*donburi.Entry, bool) {
	ent, ok := r.others[id]
	if !ok {
		return nil, false
	}
	if !r.world.Valid(ent) {
		delete(r.others, id)
		return nil, false
	}
	return r.world.Entry(ent), true
}

func (r *PlayerRegistry) AddOther(id esync.NetworkId, entry *donburi.Entry) {
	r.others[id] = entry.Entity()
}

// RemoveOther despawns the remote duck with id.
func (r *PlayerRegistry) RemoveOther(id esync.NetworkId) {
	if ent, ok := r.others[id]; ok {
		if r.world.Valid(ent) {
			r.world.Remove(ent)
		}
		delete(r.others, id)
	}
}

func (r *PlayerRegistry) OtherCount() int {
	return len(r.others)
}

// Reset despawns every registered duck.
func (r *PlayerRegistry) Reset() {
	r.ClearLocal()
	for id := range r.others {
		r.RemoveOther(id)
	}
}
