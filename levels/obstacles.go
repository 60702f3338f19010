package levels

import (
	"log"

	"github.com/milk9111/platformcore/common"
	"github.com/milk9111/platformcore/physics"
)

const (
	tileEmpty  = 0
	tileHazard = 2
)

// Obstacles builds the static geometry for the level: merged solid tiles,
// individual hazard tiles, hand-placed solids and four walls just outside
// the stage.
func (l *Level) Obstacles() []physics.Obstacle {
	if l == nil || l.Width <= 0 || l.Height <= 0 {
		return nil
	}
	var out []physics.Obstacle
	for idx, layer := range l.Layers {
		if !l.hasPhysics(idx) {
			continue
		}
		if len(layer) != l.Width*l.Height {
			log.Printf("levels: layer %d has %d tiles, want %d", idx, len(layer), l.Width*l.Height)
			continue
		}
		out = append(out, l.mergeLayer(layer)...)
	}
	out = append(out, l.solids()...)
	out = append(out, l.walls()...)
	return out
}

// mergeLayer greedily expands each unprocessed solid tile into the widest,
// then tallest, rectangle of solid tiles so the level needs fewer boxes.
func (l *Level) mergeLayer(layer []int) []physics.Obstacle {
	const ts = float64(common.TileSize)
	var out []physics.Obstacle
	processed := make([]bool, len(layer))
	solid := func(i int) bool {
		return !processed[i] && layer[i] != tileEmpty && layer[i] != tileHazard
	}

	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			idx := y*l.Width + x
			if processed[idx] {
				continue
			}
			switch layer[idx] {
			case tileEmpty:
				processed[idx] = true
				continue
			case tileHazard:
				processed[idx] = true
				out = append(out, physics.Obstacle{
					Bounds: physics.NewBox(float64(x)*ts, float64(y)*ts, ts, ts),
					Kind:   physics.KindHazard,
				})
				continue
			}

			w := 1
			for x+w < l.Width && solid(y*l.Width+x+w) {
				w++
			}

			h := 1
		heightLoop:
			for y+h < l.Height {
				for xi := x; xi < x+w; xi++ {
					if !solid((y+h)*l.Width + xi) {
						break heightLoop
					}
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*l.Width+xx] = true
				}
			}
			out = append(out, physics.Obstacle{
				Bounds: physics.NewBox(float64(x)*ts, float64(y)*ts, float64(w)*ts, float64(h)*ts),
				Kind:   physics.KindSolid,
			})
		}
	}
	return out
}

// solids validates the hand-placed rectangles; malformed entries are skipped.
func (l *Level) solids() []physics.Obstacle {
	var out []physics.Obstacle
	for i, s := range l.Solids {
		box := physics.NewBox(s.X, s.Y, s.W, s.H)
		if !box.Valid() || box.Degenerate() {
			log.Printf("levels: skipping malformed solid %d: %+v", i, s)
			continue
		}
		var kind physics.Kind
		switch s.Kind {
		case "", "solid":
			kind = physics.KindSolid
		case "hazard":
			kind = physics.KindHazard
		default:
			log.Printf("levels: skipping solid %d with unknown kind %q", i, s.Kind)
			continue
		}
		out = append(out, physics.Obstacle{Bounds: box, Kind: kind})
	}
	return out
}

func (l *Level) walls() []physics.Obstacle {
	const t = float64(common.TileSize)
	w, h := l.StageSize()
	return []physics.Obstacle{
		{Bounds: physics.NewBox(-t, -t, w+2*t, t)}, // top
		{Bounds: physics.NewBox(-t, h, w+2*t, t)},  // bottom
		{Bounds: physics.NewBox(-t, 0, t, h)},      // left
		{Bounds: physics.NewBox(w, 0, t, h)},       // right
	}
}
