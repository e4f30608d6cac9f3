package pond

import (
	"testing"
	"testing/fstest"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/gamemath"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="20" tileheight="20" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="Bounds">
  <object id="1" x="20" y="20" width="160" height="120"/>
 </objectgroup>
 <objectgroup id="2" name="Reeds">
  <object id="2" x="0" y="0" width="40" height="20"/>
  <object id="3" x="160" y="180" width="40" height="20"/>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/pond.tmx": &fstest.MapFile{Data: []byte(testMap)},
	}

	p, err := Load(fsys, "maps/pond.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if p.Width != 200 || p.Height != 200 {
		t.Fatalf("size = %dx%d, want 200x200", p.Width, p.Height)
	}
	if !p.HasBounds {
		t.Fatal("expected bounds")
	}
	wantBounds := gamemath.Rect{MinX: -80, MinY: -40, MaxX: 80, MaxY: 80}
	if p.Bounds != wantBounds {
		t.Fatalf("bounds = %+v, want %+v", p.Bounds, wantBounds)
	}

	if len(p.Reeds) != 2 {
		t.Fatalf("got %d reeds, want 2", len(p.Reeds))
	}
	wantReed := gamemath.Rect{MinX: -100, MinY: 80, MaxX: -60, MaxY: 100}
	if p.Reeds[0] != wantReed {
		t.Errorf("reed[0] = %+v, want %+v", p.Reeds[0], wantReed)
	}
	wantReed = gamemath.Rect{MinX: 60, MinY: -100, MaxX: 100, MaxY: -80}
	if p.Reeds[1] != wantReed {
		t.Errorf("reed[1] = %+v, want %+v", p.Reeds[1], wantReed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Fatal("expected error for missing map")
	}
}
