package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/localnerve/storefront-studio/internal/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastSimulator(dir string) *Simulator {
	s := NewSimulator(dir, time.Millisecond, nil)
	s.Clock = func() time.Time { return time.Date(2026, 1, 2, 9, 41, 5, 0, time.UTC) }
	return s
}

func TestLines(t *testing.T) {
	lines := Lines(storefront.NewDefault("u"))
	assert.Equal(t, []string{
		"Initializing Linkora Build Engine...",
		"Validating Project Integrity...",
		"Theme: Indigo Dream",
		"Financial Gateways: STRIPE, CASH",
		"SKU Count: 1",
		"Compiling Relational Data Maps...",
		"Deployment Bundle Ready.",
	}, lines)

	doc := storefront.NewDefault("u")
	doc.Theme.Primary = "#abcdef"
	assert.Equal(t, "Theme: Custom", Lines(doc)[2])
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "premium_store_config.json", FileName("Premium Store"))
	assert.Equal(t, "my_big_shop_config.json", FileName("My  Big\tSHOP"))
	assert.Equal(t, "shoes_bags_config.json", FileName("Shoes/Bags"))
	assert.Equal(t, "_escaped_config.json", FileName("../escaped"))
	assert.Equal(t, "_windows_config.json", FileName(`..\windows`))
	assert.Equal(t, "hidden_config.json", FileName(".hidden"))
}

func TestRunKeepsArtifactInOutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	for _, name := range []string{"../escaped", "Shoes/Bags", "/abs/path"} {
		doc := storefront.NewDefault("u")
		doc.Name = name

		artifact, err := fastSimulator(dir).Run(context.Background(), doc, nil)
		require.NoError(t, err, name)
		assert.Equal(t, dir, filepath.Dir(artifact.Path), name)
		_, err = os.Stat(artifact.Path)
		require.NoError(t, err, name)
	}
	_, err := os.Stat(filepath.Join(filepath.Dir(dir), "escaped_config.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunEmitsStepsAndArtifact(t *testing.T) {
	dir := t.TempDir()
	sim := fastSimulator(dir)
	doc := storefront.NewDefault("user-1")

	var steps []Step
	artifact, err := sim.Run(context.Background(), doc, func(s Step) { steps = append(steps, s) })
	require.NoError(t, err)

	require.Len(t, steps, 8)
	prev := 0
	for i, s := range steps[:7] {
		assert.Equal(t, i, s.Index)
		assert.True(t, strings.HasPrefix(s.Line, "[09:41:05] "), s.Line)
		assert.LessOrEqual(t, s.Progress-prev, DefaultIncrement)
		assert.False(t, s.Done)
		prev = s.Progress
	}
	last := steps[7]
	assert.True(t, last.Done)
	assert.Equal(t, 100, last.Progress)

	assert.Equal(t, "premium_store_config.json", artifact.FileName)
	assert.Equal(t, filepath.Join(dir, artifact.FileName), artifact.Path)
	onDisk, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	assert.Equal(t, artifact.Data, onDisk)

	parsed, degraded := storefront.Unmarshal(artifact.Data, "other")
	assert.Empty(t, degraded)
	assert.Equal(t, doc.Clone(), parsed)
}

func TestRunUsesStartSnapshot(t *testing.T) {
	sim := fastSimulator("")
	doc := storefront.NewDefault("u")
	want := doc.Clone()

	artifact, err := sim.Run(context.Background(), doc, func(s Step) {
		if s.Index == 2 {
			doc.Name = "Changed Mid Build"
			doc.Collections[0].Products[0].Name = "mutated"
		}
	})
	require.NoError(t, err)
	assert.Empty(t, artifact.Path)

	parsed, _ := storefront.Unmarshal(artifact.Data, "u")
	assert.Equal(t, want, parsed)
}

func TestRunCancelled(t *testing.T) {
	sim := NewSimulator("", time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := sim.Run(ctx, storefront.NewDefault("u"), nil)
		done <- err
	}()
	require.Eventually(t, sim.Running, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("run did not stop after cancel")
	}
	assert.False(t, sim.Running())
}

func TestSecondRunIsRejected(t *testing.T) {
	sim := NewSimulator("", time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _, _ = sim.Run(ctx, storefront.NewDefault("u"), nil) }()
	require.Eventually(t, sim.Running, time.Second, time.Millisecond)

	_, err := sim.Run(context.Background(), storefront.NewDefault("u"), nil)
	assert.ErrorIs(t, err, ErrBuildInProgress)
}
