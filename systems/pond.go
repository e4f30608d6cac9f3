package systems

import (
	"io/fs"
	"log"

	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/pond"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// LoadPond reads the configured map, if any. Failures are logged and the
// configured bounds are kept.
func LoadPond(fsys fs.FS) *pond.Pond {
	if cfg.PondMapPath == "" {
		return nil
	}
	p, err := pond.Load(fsys, cfg.PondMapPath)
	if err != nil {
		log.Printf("[pond] %v; using default bounds", err)
		return nil
	}
	return p
}

// SpawnPond applies the map bounds and spawns its reeds. It must run before
// the collision space is created.
func SpawnPond(e *ecs.ECS, p *pond.Pond) {
	if p == nil {
		return
	}
	if p.HasBounds {
		cfg.World = cfg.WorldConfig{
			MinX: p.Bounds.MinX,
			MinY: p.Bounds.MinY,
			MaxX: p.Bounds.MaxX,
			MaxY: p.Bounds.MaxY,
		}
	}
	for _, r := range p.Reeds {
		factory.CreateReed(e, r)
	}
	log.Printf("[pond] %d reeds, bounds %+v", len(p.Reeds), cfg.World)
}
