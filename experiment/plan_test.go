package experiment_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Xavierblaze6/sssp-algorithm/experiment"
)

func TestParsePlan_Defaults(t *testing.T) {
	t.Parallel()

	p, err := experiment.ParsePlan([]byte(`
scenarios:
  - name: quick
    sizes: [16, 32]
`))
	require.NoError(t, err)

	require.Equal(t, "experiment", p.Name)
	require.Equal(t, 1, p.Parallelism)
	require.Len(t, p.Scenarios, 1)

	sc := p.Scenarios[0]
	require.Equal(t, "quick", sc.Name)
	require.Equal(t, experiment.ShapeSparse, sc.Shape)
	require.Equal(t, int64(42), sc.Seed)
	require.Equal(t, 1, sc.Repetitions)
	require.Equal(t, 30*time.Second, sc.Timeout.Std())
	require.Equal(t, 5.0, sc.AvgDegree)
}

func TestParsePlan_FullScenario(t *testing.T) {
	t.Parallel()

	p, err := experiment.ParsePlan([]byte(`
name: nightly
parallelism: 3
scenarios:
  - name: layers
    shape: layered
    sizes: [64, 128]
    width: 8
    fanout: 3
    seed_label: nightly-fixtures
    repetitions: 2
    timeout: 250ms
  - name: dense-sweep
    shape: dense
    sizes: [50]
    probability: 0.4
    seed: 7
`))
	require.NoError(t, err)

	require.Equal(t, "nightly", p.Name)
	require.Equal(t, 3, p.Parallelism)

	layers := p.Scenarios[0]
	require.Equal(t, experiment.ShapeLayered, layers.Shape)
	require.Equal(t, 8, layers.Width)
	require.Equal(t, 3, layers.Fanout)
	require.Equal(t, "nightly-fixtures", layers.SeedLabel)
	require.Equal(t, 250*time.Millisecond, layers.Timeout.Std())

	dense := p.Scenarios[1]
	require.Equal(t, 0.4, dense.Probability)
	require.Equal(t, int64(7), dense.Seed)
}

func TestParsePlan_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		yaml string
	}{
		{name: "broken yaml", yaml: "scenarios: ["},
		{name: "no scenarios", yaml: "name: empty\n"},
		{name: "unnamed scenario", yaml: "scenarios:\n  - sizes: [10]\n"},
		{name: "no sizes", yaml: "scenarios:\n  - name: s\n"},
		{name: "zero size", yaml: "scenarios:\n  - name: s\n    sizes: [0]\n"},
		{name: "unknown shape", yaml: "scenarios:\n  - name: s\n    shape: torus\n    sizes: [10]\n"},
		{name: "negative repetitions", yaml: "scenarios:\n  - name: s\n    sizes: [10]\n    repetitions: -1\n"},
		{name: "bad duration", yaml: "scenarios:\n  - name: s\n    sizes: [10]\n    timeout: ten seconds\n"},
		{name: "negative parallelism", yaml: "parallelism: -2\nscenarios:\n  - name: s\n    sizes: [10]\n"},
		{name: "probability above one", yaml: "scenarios:\n  - name: s\n    shape: dense\n    sizes: [10]\n    probability: 1.5\n"},
		{name: "negative avg degree", yaml: "scenarios:\n  - name: s\n    shape: sparse\n    sizes: [10]\n    avg_degree: -1\n"},
		{name: "layered size not divisible", yaml: "scenarios:\n  - name: s\n    shape: layered\n    sizes: [10]\n    width: 4\n"},
		{name: "duplicate names", yaml: "scenarios:\n  - name: s\n    sizes: [10]\n  - name: s\n    sizes: [20]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := experiment.ParsePlan([]byte(tc.yaml))
			require.ErrorIs(t, err, experiment.ErrBadPlan, "yaml:\n%s", tc.yaml)
		})
	}
}

func TestLoadPlan(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - name: s\n    sizes: [10]\n"), 0o644))

	p, err := experiment.LoadPlan(path)
	require.NoError(t, err)
	require.Equal(t, "s", p.Scenarios[0].Name)

	_, err = experiment.LoadPlan(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate_NilPlan(t *testing.T) {
	t.Parallel()

	var p *experiment.Plan
	require.ErrorIs(t, p.Validate(), experiment.ErrBadPlan)
}
