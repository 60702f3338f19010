package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformcore/common"
)

//go:embed *.json
var LevelsFS embed.FS

const DefaultLevel = "intro"

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is a tile map stored as JSON.
type Level struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	// Layers holds row-major tile arrays of length Width*Height.
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`

	// player spawn in tile coordinates
	SpawnX int `json:"spawn_x,omitempty"`
	SpawnY int `json:"spawn_y,omitempty"`

	// Solids are extra rectangles in world units, placed by hand.
	Solids []Solid `json:"solids,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

type Solid struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
	Kind string  `json:"kind,omitempty"`
}

// Load reads a level from the embedded levels. The .json suffix is optional.
func Load(name string) (*Level, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(name), "levels/")
	if !strings.HasSuffix(clean, ".json") {
		clean += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return Parse(data)
}

// LoadFile reads a level from disk.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidLevel, lvl.Width, lvl.Height)
	}
	return &lvl, nil
}

// StageSize returns the level extent in world units.
func (l *Level) StageSize() (float64, float64) {
	return float64(l.Width * common.TileSize), float64(l.Height * common.TileSize)
}

// Spawn returns the spawn point in world units.
func (l *Level) Spawn() cp.Vector {
	return cp.Vector{X: float64(l.SpawnX * common.TileSize), Y: float64(l.SpawnY * common.TileSize)}
}

func (l *Level) hasPhysics(layer int) bool {
	return layer < len(l.LayerMeta) && l.LayerMeta[layer].Physics
}
