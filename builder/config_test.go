// Package builder contains unit tests for the configuration primitives
// (builderConfig and Option) to ensure correct application and override behavior.
package builder

import (
	"math"
	"math/rand"
	"testing"
)

// TestDefaults verifies the deterministic baseline configuration.
func TestDefaults(t *testing.T) {
	t.Parallel() // allow this test to run in parallel

	// 1. The default RNG must exist and be seeded deterministically:
	//    two fresh configs produce the same first draw.
	cfgA := newBuilderConfig()
	cfgB := newBuilderConfig()
	if cfgA.rng == nil {
		t.Fatal("default rng is nil")
	}
	if a, b := cfgA.rng.Float64(), cfgB.rng.Float64(); a != b {
		t.Errorf("default rng not deterministic: %v vs %v", a, b)
	}

	// 2. The default weight range is [0.1, 10).
	if cfgA.minWeight != 0.1 || cfgA.maxWeight != 10.0 {
		t.Errorf("default weight range = [%v, %v); want [0.1, 10)", cfgA.minWeight, cfgA.maxWeight)
	}
}

// TestSeedOptions verifies WithSeed and WithSeedLabel reproducibility and
// that distinct numeric seeds actually change the stream.
func TestSeedOptions(t *testing.T) {
	t.Parallel()

	// 1. Same seed → same stream.
	s1 := newBuilderConfig(WithSeed(99))
	s2 := newBuilderConfig(WithSeed(99))
	if a, b := s1.rng.Float64(), s2.rng.Float64(); a != b {
		t.Errorf("WithSeed(99) not reproducible: %v vs %v", a, b)
	}

	// 2. Different seeds → different first draws (math/rand is frozen, so
	//    this comparison is stable).
	d1 := newBuilderConfig(WithSeed(1))
	d2 := newBuilderConfig(WithSeed(2))
	if a, b := d1.rng.Float64(), d2.rng.Float64(); a == b {
		t.Errorf("seeds 1 and 2 produced the same first draw %v", a)
	}

	// 3. Same label → same stream.
	l1 := newBuilderConfig(WithSeedLabel("dense-1k-smoke"))
	l2 := newBuilderConfig(WithSeedLabel("dense-1k-smoke"))
	if a, b := l1.rng.Float64(), l2.rng.Float64(); a != b {
		t.Errorf("WithSeedLabel not reproducible: %v vs %v", a, b)
	}

	// 4. An explicit RNG is used as-is.
	r := rand.New(rand.NewSource(7))
	want := rand.New(rand.NewSource(7)).Float64()
	cfg := newBuilderConfig(WithRand(r))
	if got := cfg.rng.Float64(); got != want {
		t.Errorf("WithRand draw = %v; want %v", got, want)
	}
}

// TestWithRandNilPanics ensures the option constructor fails fast.
func TestWithRandNilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("WithRand(nil) did not panic")
		}
	}()
	WithRand(nil)
}

// TestWithWeightRange verifies application and the panic guards.
func TestWithWeightRange(t *testing.T) {
	t.Parallel()

	// 1. A valid range is stored verbatim.
	cfg := newBuilderConfig(WithWeightRange(2.5, 4.0))
	if cfg.minWeight != 2.5 || cfg.maxWeight != 4.0 {
		t.Errorf("range = [%v, %v); want [2.5, 4)", cfg.minWeight, cfg.maxWeight)
	}

	// 2. A degenerate range pins the weight exactly.
	pinned := newBuilderConfig(WithWeightRange(3.0, 3.0))
	for i := 0; i < 16; i++ {
		if w := pinned.weight(); w != 3.0 {
			t.Fatalf("pinned draw #%d = %v; want 3", i, w)
		}
	}

	// 3. Invalid bounds panic in the option constructor.
	for name, fn := range map[string]func(){
		"negative lo":  func() { WithWeightRange(-1, 2) },
		"hi below lo":  func() { WithWeightRange(5, 4) },
		"infinite hi":  func() { WithWeightRange(0, math.Inf(1)) },
		"NaN lo bound": func() { WithWeightRange(math.NaN(), 1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: no panic", name)
				}
			}()
			fn()
		}()
	}
}

// TestWeightDrawStaysInRange samples the generator and checks the half-open
// interval contract.
func TestWeightDrawStaysInRange(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSeed(42), WithWeightRange(0.5, 2.0))
	for i := 0; i < 1000; i++ {
		w := cfg.weight()
		if w < 0.5 || w >= 2.0 {
			t.Fatalf("draw #%d = %v outside [0.5, 2.0)", i, w)
		}
	}
}
