package world

import (
	stdmath "math"
	"testing"

	"github.com/automoto/coinchase/components"
	cfg "github.com/automoto/coinchase/config"
	"github.com/yohamta/donburi"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newTestWorld(t *testing.T, rng components.RandomSource) *World {
	t.Helper()
	return New(cfg.Default(), rng)
}

func playerObject(w *World) *components.ObjectData {
	return components.Object.Get(w.Player())
}

func movePlayer(w *World, x, y float64) {
	obj := playerObject(w)
	obj.X, obj.Y = x, y
	obj.Update()
}

func moveCoin(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X, obj.Y = x, y
	obj.Update()
}

func popupCount(w *World) int {
	n := 0
	components.Popup.Each(w.ECS().World, func(*donburi.Entry) { n++ })
	return n
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(t, fixedRand(0.5))

	obj := playerObject(w)
	if obj.X != 400 || obj.Y != 300 || obj.W != 32 || obj.H != 32 {
		t.Errorf("player box = (%v, %v, %v, %v), want (400, 300, 32, 32)", obj.X, obj.Y, obj.W, obj.H)
	}
	player := components.Player.Get(w.Player())
	if player.CurrentFacing != cfg.DirectionDown || player.PreviousFacing != cfg.DirectionDown {
		t.Errorf("initial facing = %v/%v, want down/down", player.PreviousFacing, player.CurrentFacing)
	}
	if f := components.Animated.Get(w.Player()).Frame(); f != 7 {
		t.Errorf("initial frame = %d, want 7", f)
	}
	if len(w.Coins()) != 0 || w.TotalElapsed() != 0 || w.NextSpawnAt() != 0 {
		t.Errorf("new world has coins=%d total=%v next=%v", len(w.Coins()), w.TotalElapsed(), w.NextSpawnAt())
	}
}

func TestFirstUpdateSpawnsAndGoesIdle(t *testing.T) {
	w := newTestWorld(t, fixedRand(0))
	w.Update(0)

	if len(w.Coins()) != 1 {
		t.Fatalf("coins after first update = %d, want 1", len(w.Coins()))
	}
	anim := components.Animated.Get(w.Player()).Animation
	if anim.First != 0 || anim.Last != 2 {
		t.Errorf("animation after first still update = [%d, %d], want idle [0, 2]", anim.First, anim.Last)
	}
}

func TestSpawnCoinDeterministic(t *testing.T) {
	w := newTestWorld(t, fixedRand(0))
	w.Update(250)

	coins := w.Coins()
	if len(coins) != 1 {
		t.Fatalf("coins = %d, want 1", len(coins))
	}
	obj := components.Object.Get(coins[0])
	if obj.X != 0 || obj.Y != 0 {
		t.Errorf("coin at (%v, %v), want (0, 0)", obj.X, obj.Y)
	}
	if w.NextSpawnAt() != 1250 {
		t.Errorf("NextSpawnAt() = %v, want 1250", w.NextSpawnAt())
	}
	if components.Coin.Get(coins[0]).Collected {
		t.Error("new coin is already collected")
	}
}

func TestSpawnCoinRandomOrder(t *testing.T) {
	rng := &seqRand{vals: []float64{0.5, 0.25, 0.75}}
	w := newTestWorld(t, rng)

	coin := w.SpawnCoin()
	obj := components.Object.Get(coin)
	if obj.X != 384 || obj.Y != 142 {
		t.Errorf("coin at (%v, %v), want (384, 142)", obj.X, obj.Y)
	}
	if w.NextSpawnAt() != 2500 {
		t.Errorf("NextSpawnAt() = %v, want 2500", w.NextSpawnAt())
	}
}

func TestSpawnCoinStaysInsideCanvas(t *testing.T) {
	w := newTestWorld(t, fixedRand(0.999999))
	obj := components.Object.Get(w.SpawnCoin())
	if obj.X < 0 || obj.X+obj.W > 800 || obj.Y < 0 || obj.Y+obj.H > 600 {
		t.Errorf("coin box (%v, %v, %v, %v) leaves the canvas", obj.X, obj.Y, obj.W, obj.H)
	}
}

func TestSpawnCap(t *testing.T) {
	w := newTestWorld(t, fixedRand(0))
	w.Update(0)
	for i := 0; i < 4; i++ {
		w.Update(1000)
	}
	if len(w.Coins()) != 5 {
		t.Fatalf("coins = %d, want 5", len(w.Coins()))
	}
	if w.NextSpawnAt() != 5000 {
		t.Fatalf("NextSpawnAt() = %v, want 5000", w.NextSpawnAt())
	}

	for i := 0; i < 3; i++ {
		w.Update(1000)
		if len(w.Coins()) != 5 {
			t.Fatalf("coins = %d after update at the cap, want 5", len(w.Coins()))
		}
	}
	if w.NextSpawnAt() != 5000 {
		t.Errorf("NextSpawnAt() moved to %v while capped", w.NextSpawnAt())
	}
}

func TestCollisionIdempotentAndPruned(t *testing.T) {
	w := newTestWorld(t, fixedRand(0))
	w.Update(0)
	coin := w.Coins()[0]

	movePlayer(w, 10, 10)
	if n := w.CheckCollisions(); n != 1 {
		t.Fatalf("first CheckCollisions() = %d, want 1", n)
	}
	if n := w.CheckCollisions(); n != 0 {
		t.Errorf("second CheckCollisions() = %d, want 0", n)
	}
	if !components.Coin.Get(coin).Collected || w.Collected() != 1 {
		t.Errorf("collected=%v counter=%d, want true/1", components.Coin.Get(coin).Collected, w.Collected())
	}
	if len(w.Coins()) != 1 {
		t.Errorf("collected coin pruned before the next update")
	}

	w.Update(16)
	if len(w.Coins()) != 0 {
		t.Errorf("coins after update = %d, want 0", len(w.Coins()))
	}
	if coin.Valid() {
		t.Error("collected coin entity still exists")
	}
	if w.Collected() != 1 {
		t.Errorf("Collected() = %d, want 1", w.Collected())
	}
}

func TestEdgeContactIsNotAPickup(t *testing.T) {
	w := newTestWorld(t, fixedRand(0))
	w.Update(0)

	movePlayer(w, 32, 0)
	if n := w.CheckCollisions(); n != 0 {
		t.Errorf("CheckCollisions() with touching edges = %d, want 0", n)
	}
	movePlayer(w, 31, 31)
	if n := w.CheckCollisions(); n != 1 {
		t.Errorf("CheckCollisions() with 1px overlap = %d, want 1", n)
	}
}

func TestSubPixelOverlapAcrossCells(t *testing.T) {
	w := newTestWorld(t, fixedRand(0))
	w.Update(0)

	movePlayer(w, 0.5, 0)
	moveCoin(w.Coins()[0], 32.2, 23.8)
	if n := w.CheckCollisions(); n != 1 {
		t.Errorf("CheckCollisions() with a sub-pixel overlap = %d, want 1", n)
	}
}

func TestWorldDrawOrder(t *testing.T) {
	var got []string
	for _, r := range renderers {
		if r.layer == cfg.LayerWorld {
			got = append(got, r.name)
		}
	}
	want := []string{"background", "coins", "popups", "player"}
	if len(got) != len(want) {
		t.Fatalf("world layer renderers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("renderer %d = %q, want %q", i, got[i], want[i])
		}
	}
	if cfg.LayerHUD <= cfg.LayerWorld {
		t.Errorf("HUD layer %d is not above world layer %d", cfg.LayerHUD, cfg.LayerWorld)
	}
}

func TestPickupDuringUpdate(t *testing.T) {
	w := newTestWorld(t, fixedRand(0))
	w.Update(0)

	movePlayer(w, 20, 20)
	w.Update(1)
	if w.Collected() != 1 {
		t.Fatalf("Collected() = %d, want 1", w.Collected())
	}
	if popupCount(w) != 1 {
		t.Fatalf("popups = %d, want 1", popupCount(w))
	}

	w.Update(300)
	if popupCount(w) != 1 {
		t.Errorf("popup removed before its duration")
	}
	w.Update(400)
	if popupCount(w) != 0 {
		t.Errorf("popups = %d after duration, want 0", popupCount(w))
	}
}

func TestPlayerMovesAndClamps(t *testing.T) {
	w := newTestWorld(t, fixedRand(0.5))

	movePlayer(w, 798, 300)
	w.AddKey(cfg.DirectionRight)
	w.Update(16)
	obj := playerObject(w)
	if obj.X != 768 || obj.Y != 300 {
		t.Errorf("player at (%v, %v), want (768, 300)", obj.X, obj.Y)
	}

	w.DelKey(cfg.DirectionRight)
	w.AddKey(cfg.DirectionUp)
	w.Update(100)
	if obj.Y != 250 {
		t.Errorf("player y = %v after 100ms up, want 250", obj.Y)
	}
}

func TestFirstDownPressKeepsStandingFrame(t *testing.T) {
	w := newTestWorld(t, fixedRand(0.5))
	w.AddKey(cfg.DirectionDown)
	w.Update(0)

	// Facing starts as down, so there is no facing change to react to
	anim := components.Animated.Get(w.Player()).Animation
	if anim.First != 7 || anim.Last != 7 {
		t.Errorf("animation = [%d, %d], want standing frame [7, 7]", anim.First, anim.Last)
	}
}

func TestWalkCycleWrapsInOneTick(t *testing.T) {
	w := newTestWorld(t, fixedRand(0.5))
	w.Update(0)
	w.AddKey(cfg.DirectionDown)
	w.Update(0)

	anim := components.Animated.Get(w.Player()).Animation
	if anim.First != 40 {
		t.Fatalf("walking down plays from %d, want 40", anim.First)
	}
	w.Update(2050)
	if anim.Frame() != 40 || anim.Elapsed() != 50 {
		t.Errorf("after 2050ms frame=%d elapsed=%v, want 40/50", anim.Frame(), anim.Elapsed())
	}
}

func TestAddDelKeyIdempotent(t *testing.T) {
	w := newTestWorld(t, fixedRand(0.5))
	player := components.Player.Get(w.Player())

	w.AddKey(cfg.DirectionLeft)
	w.AddKey(cfg.DirectionLeft)
	w.AddKey(cfg.DirectionIdle)
	w.AddKey(cfg.Direction(42))
	if player.Keys.Len() != 1 {
		t.Fatalf("held keys = %d, want 1", player.Keys.Len())
	}
	w.DelKey(cfg.DirectionLeft)
	if player.Keys.Len() != 0 {
		t.Errorf("held keys after one release = %d, want 0", player.Keys.Len())
	}
	w.DelKey(cfg.DirectionLeft)
	w.DelKey(cfg.DirectionUp)

	w.AddKey(cfg.DirectionUp)
	w.AddKey(cfg.DirectionDown)
	w.Update(10)
	if v := player.Velocity; v.X != 0 || v.Y != 0 {
		t.Errorf("opposite keys velocity = %v, want zero", v)
	}
}

func TestDiagonalSpeed(t *testing.T) {
	w := newTestWorld(t, fixedRand(0.5))
	w.AddKey(cfg.DirectionUp)
	w.AddKey(cfg.DirectionRight)
	w.Update(0)

	v := components.Player.Get(w.Player()).Velocity
	if got := v.Magnitude(); stdmath.Abs(got-0.5) > 1e-9 {
		t.Errorf("diagonal speed = %v, want 0.5", got)
	}
}

func TestUpdateNegativeDeltaPanics(t *testing.T) {
	w := newTestWorld(t, fixedRand(0.5))
	defer func() {
		if recover() == nil {
			t.Error("Update(-1) did not panic")
		}
	}()
	w.Update(-1)
}

func TestTotalElapsedAccumulates(t *testing.T) {
	w := newTestWorld(t, fixedRand(0.5))
	for _, dt := range []float64{16, 17, 0, 33.5} {
		w.Update(dt)
	}
	if w.TotalElapsed() != 66.5 {
		t.Errorf("TotalElapsed() = %v, want 66.5", w.TotalElapsed())
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	w := newTestWorld(t, fixedRand(0))
	w.Update(0)
	w.AddKey(cfg.DirectionLeft)

	if !w.TogglePause() || !w.Paused() {
		t.Fatal("TogglePause() did not pause")
	}
	x := playerObject(w).X
	w.Update(5000)
	if w.TotalElapsed() != 0 || playerObject(w).X != x || len(w.Coins()) != 1 {
		t.Errorf("paused update changed the world: total=%v x=%v coins=%d",
			w.TotalElapsed(), playerObject(w).X, len(w.Coins()))
	}

	if w.TogglePause() {
		t.Fatal("second TogglePause() did not resume")
	}
	w.Update(100)
	if w.TotalElapsed() != 100 || playerObject(w).X != x-50 {
		t.Errorf("after resume total=%v x=%v, want 100 and %v", w.TotalElapsed(), playerObject(w).X, x-50)
	}
}
