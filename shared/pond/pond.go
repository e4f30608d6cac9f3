// Package pond reads the optional Tiled map that decorates the pond and may
// override the world bounds. It has no dependencies on ebitengine or donburi.
package pond

import (
	"fmt"
	"io/fs"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from the map
const (
	BoundsGroup = "Bounds"
	ReedsGroup  = "Reeds"
)

// Pond is a parsed map in world space (Y-up, origin at the map centre).
type Pond struct {
	Bounds    gamemath.Rect
	HasBounds bool
	Reeds     []gamemath.Rect

	// Map size in pixels
	Width, Height int
}

// Load parses the TMX file at tmxPath within fsys.
func Load(fsys fs.FS, tmxPath string) (*Pond, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	p := &Pond{
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case BoundsGroup:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			p.Bounds = p.toWorld(o.X, o.Y, o.Width, o.Height)
			p.HasBounds = true
		case ReedsGroup:
			for _, o := range og.Objects {
				p.Reeds = append(p.Reeds, p.toWorld(o.X, o.Y, o.Width, o.Height))
			}
		}
	}

	return p, nil
}

// toWorld converts a Tiled rectangle (top-left origin, Y-down) to world space.
func (p *Pond) toWorld(x, y, w, h float64) gamemath.Rect {
	left := x - float64(p.Width)/2
	top := float64(p.Height)/2 - y
	return gamemath.Rect{
		MinX: left,
		MinY: top - h,
		MaxX: left + w,
		MaxY: top,
	}
}
