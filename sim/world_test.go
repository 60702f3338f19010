package sim

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformcore/camera"
	"github.com/milk9111/platformcore/physics"
)

const tick = 16 * time.Millisecond

type recorder struct {
	name string
	log  *[]string
}

func (r recorder) Update(_ *World, _ time.Duration) {
	*r.log = append(*r.log, r.name)
}

func noGravity() *physics.Engine {
	return physics.NewEngine(physics.Constants{Gravity: 0, TerminalVelocity: 1000, Friction: 1, AirResistance: 1})
}

func countKind(events []CollisionEvent, kind CollisionEventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestSchedulerOrder(t *testing.T) {
	var order []string
	s := NewScheduler(recorder{"a", &order}, nil)
	s.Add(recorder{"b", &order})
	s.Add(nil)

	w := NewWorld(nil, nil, nil)
	w.SetScheduler(s)
	w.Tick(tick)
	w.Tick(tick)

	want := []string{"a", "b", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if w.Ticks() != 2 {
		t.Fatalf("expected 2 ticks, got %d", w.Ticks())
	}
}

func TestDefaultPipelineOrder(t *testing.T) {
	w := NewWorld(nil, nil, nil)
	systems := w.scheduler.Systems()
	if len(systems) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(systems))
	}
	if _, ok := systems[0].(*IntegrationSystem); !ok {
		t.Fatalf("first system should integrate, got %T", systems[0])
	}
	if _, ok := systems[1].(*CollisionSystem); !ok {
		t.Fatalf("second system should resolve collisions, got %T", systems[1])
	}
	if _, ok := systems[2].(*CameraSystem); !ok {
		t.Fatalf("third system should update the camera, got %T", systems[2])
	}
}

func TestLanding(t *testing.T) {
	floor := physics.Obstacle{Bounds: physics.NewBox(0, 200, 1000, 40)}
	w := NewWorld(physics.NewEngine(physics.DefaultConstants()), nil, []physics.Obstacle{floor})
	body := &physics.Body{Position: cp.Vector{X: 100, Y: 100}, Size: physics.Size{W: 32, H: 32}}
	w.AddBody(body)

	grounded := 0
	for i := 0; i < 120; i++ {
		w.Tick(tick)
		events := w.Events().Drain()
		grounded += countKind(events, CollisionEventGrounded)
		if n := countKind(events, CollisionEventCeiling); n != 0 {
			t.Fatalf("tick %d: unexpected ceiling events", i)
		}
	}

	if grounded != 1 {
		t.Fatalf("expected exactly one grounded event, got %d", grounded)
	}
	if !body.OnGround || body.Velocity.Y != 0 {
		t.Fatalf("expected resting body, got %+v", body)
	}
	if math.Abs(body.Position.Y-168) > 1e-6 {
		t.Fatalf("expected body resting at y=168, got %v", body.Position.Y)
	}
	if physics.Overlaps(body.Box(), floor.Box()) {
		t.Fatalf("body left overlapping the floor")
	}
}

func TestWallContact(t *testing.T) {
	wall := physics.Obstacle{Bounds: physics.NewBox(200, 0, 20, 200)}
	w := NewWorld(noGravity(), nil, []physics.Obstacle{wall})
	body := &physics.Body{Position: cp.Vector{X: 160, Y: 100}, Velocity: cp.Vector{X: 600}, Size: physics.Size{W: 32, H: 32}}
	w.AddBody(body)

	var events []CollisionEvent
	for i := 0; i < 3 && len(events) == 0; i++ {
		w.Tick(tick)
		events = w.Events().Drain()
	}
	if countKind(events, CollisionEventWall) != 1 {
		t.Fatalf("expected a wall event, got %+v", events)
	}
	if events[0].Direction != physics.DirLeft || events[0].Obstacle != wall {
		t.Fatalf("unexpected wall event %+v", events[0])
	}
	if body.Velocity.X != 0 || body.Position.X != 168 {
		t.Fatalf("expected body stopped at x=168, got %+v", body)
	}
}

func TestHazardContact(t *testing.T) {
	hazard := physics.Obstacle{Bounds: physics.NewBox(100, 100, 32, 32), Kind: physics.KindHazard}
	w := NewWorld(noGravity(), nil, []physics.Obstacle{hazard})
	body := &physics.Body{Position: cp.Vector{X: 110, Y: 110}, Size: physics.Size{W: 10, H: 10}}
	w.AddBody(body)

	w.Tick(tick)
	events := w.Events().Drain()
	if len(events) != 1 || events[0].Kind != CollisionEventHitHazard || events[0].Body != body {
		t.Fatalf("expected one hazard event, got %+v", events)
	}
	if body.Position != (cp.Vector{X: 110, Y: 110}) {
		t.Fatalf("hazards must not push bodies, got %v", body.Position)
	}
}

func TestUndrainedEventsFlushed(t *testing.T) {
	hazard := physics.Obstacle{Bounds: physics.NewBox(0, 0, 50, 50), Kind: physics.KindHazard}
	w := NewWorld(noGravity(), nil, []physics.Obstacle{hazard})
	w.AddBody(&physics.Body{Position: cp.Vector{X: 10, Y: 10}, Size: physics.Size{W: 5, H: 5}})

	w.Tick(tick)
	w.Tick(tick)
	if n := w.Events().Len(); n != 1 {
		t.Fatalf("expected only the latest tick's event, got %d", n)
	}
}

func TestBodies(t *testing.T) {
	w := NewWorld(nil, nil, nil)
	a := &physics.Body{}
	b := &physics.Body{}
	w.AddBody(a)
	w.AddBody(b)
	w.AddBody(nil)
	if len(w.Bodies()) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(w.Bodies()))
	}
	if !w.RemoveBody(a) {
		t.Fatalf("expected removal")
	}
	if w.RemoveBody(a) {
		t.Fatalf("second removal should fail")
	}
	if len(w.Bodies()) != 1 || w.Bodies()[0] != physics.Mover(b) {
		t.Fatalf("unexpected bodies %+v", w.Bodies())
	}
}

func TestCameraFollowsCorrectedPosition(t *testing.T) {
	floor := physics.Obstacle{Bounds: physics.NewBox(0, 300, 4000, 40)}
	cam := camera.New(320, 240, 4000, 480, camera.WithSmoothing(1), camera.WithDeadZone(0, 0))
	w := NewWorld(physics.NewEngine(physics.DefaultConstants()), cam, []physics.Obstacle{floor})
	body := &physics.Body{Position: cp.Vector{X: 1000, Y: 200}, Size: physics.Size{W: 32, H: 32}}
	w.AddBody(body)
	cam.Follow(body)

	for i := 0; i < 200; i++ {
		w.Tick(tick)
	}
	if !body.OnGround {
		t.Fatalf("expected body on the floor")
	}
	// smoothing 1 on X snaps the camera onto the corrected position.
	got := cam.BasePosition()
	if got.X != body.Position.X-160 {
		t.Fatalf("expected camera x=%v, got %v", body.Position.X-160, got.X)
	}
	if math.Abs(got.Y-(body.Position.Y-120)) > 1 {
		t.Fatalf("expected camera near y=%v, got %v", body.Position.Y-120, got.Y)
	}
}
