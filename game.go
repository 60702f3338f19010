package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformcore/camera"
	"github.com/milk9111/platformcore/config"
	"github.com/milk9111/platformcore/levels"
	"github.com/milk9111/platformcore/physics"
	"github.com/milk9111/platformcore/render"
	"github.com/milk9111/platformcore/sim"
	"golang.org/x/image/colornames"
)

const (
	runSpeed  = 220.0
	jumpSpeed = 460.0
)

// Hero is the controllable body.
type Hero struct {
	physics.Body
}

type Game struct {
	world   *sim.World
	level   *levels.Level
	hero    *Hero
	watcher *config.Watcher

	tuning config.Tuning

	debug            bool
	screenW, screenH int
}

func NewGame(levelName, tuningFile string, screenW, screenH int, debug bool) (*Game, error) {
	if levelName == "" {
		levelName = levels.DefaultLevel
	}
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, fmt.Errorf("game: load level: %w", err)
	}
	tuning, err := config.LoadTuning(tuningFile)
	if err != nil {
		return nil, fmt.Errorf("game: load tuning: %w", err)
	}

	stageW, stageH := lvl.StageSize()
	cam := camera.New(float64(screenW), float64(screenH), stageW, stageH, tuning.CameraOptions()...)
	engine := physics.NewEngine(tuning.Constants())

	hero := &Hero{Body: physics.Body{Position: lvl.Spawn(), Size: physics.Size{W: 24, H: 30}}}
	world := sim.NewWorld(engine, cam, lvl.Obstacles())
	world.AddBody(hero)
	cam.Follow(hero)
	cam.CenterOn(hero)

	g := &Game{
		world:   world,
		level:   lvl,
		hero:    hero,
		tuning:  tuning,
		debug:   debug,
		screenW: screenW,
		screenH: screenH,
	}

	if w, err := config.WatchTuning(tuningFile); err == nil {
		g.watcher = w
	} else {
		log.Printf("game: tuning hot reload disabled: %v", err)
	}
	return g, nil
}

func (g *Game) Close() error {
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.reloadTuning()
	g.handleInput()

	dt := time.Second / time.Duration(ebiten.TPS())
	g.world.Tick(dt)

	for _, evt := range g.world.Events().Drain() {
		if evt.Kind == sim.CollisionEventHitHazard && evt.Body == &g.hero.Body {
			g.respawn()
		}
	}
	return nil
}

// handleInput maps keys straight onto the hero's velocity. Friction takes
// over when no direction is held.
func (g *Game) handleInput() {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	switch {
	case left && !right:
		g.hero.Velocity.X = -runSpeed
	case right && !left:
		g.hero.Velocity.X = runSpeed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.hero.OnGround {
		g.hero.Velocity.Y = -jumpSpeed
		g.hero.OnGround = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
}

func (g *Game) respawn() {
	cam := g.world.Camera
	cam.StartShake(g.tuning.Camera.Shake())
	g.hero.Position = g.level.Spawn()
	g.hero.Velocity = cp.Vector{}
	g.hero.OnGround = false
	cam.CenterOn(g.hero)
}

func (g *Game) reloadTuning() {
	if err := g.watcher.Err(); err != nil {
		log.Printf("game: reload tuning: %v", err)
	}
	tuning, ok := g.watcher.Poll()
	if !ok {
		return
	}
	g.tuning = tuning
	tuning.Apply(g.world.Engine, g.world.Camera)
	log.Printf("game: reloaded tuning")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	cam := g.world.Camera
	render.DrawObstacles(screen, cam, g.world.Obstacles)
	render.DrawBodies(screen, cam, g.world.Bodies())
	if g.debug {
		render.DrawDeadZone(screen, cam)
		render.DrawDebugText(screen, g.world, &g.hero.Body)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
