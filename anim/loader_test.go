package anim_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/spritecore/anim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const heroClips = `
clips:
  - name: walk
    frames: [0, 1, 2, 3]
    fps: 10
  - name: die
    frames: [8, 9, 10]
    fps: 4
    loop: false
  - name: blink
    frames: [4, 5]
    delay: 0.25
  - name: pose
    frames: [6]
`

func TestParseTable(t *testing.T) {
	table, err := anim.ParseTable([]byte(heroClips))
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	walk, ok := table.Lookup("walk")
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, walk.Frames())
	assert.Equal(t, 0.1, walk.Delay())
	assert.True(t, walk.Looped())

	die, _ := table.Lookup("die")
	assert.Equal(t, 0.25, die.Delay())
	assert.False(t, die.Looped())

	blink, _ := table.Lookup("blink")
	assert.Equal(t, 0.25, blink.Delay())
	assert.True(t, blink.Looped())

	pose, _ := table.Lookup("pose")
	assert.Equal(t, 0.0, pose.Delay())
	assert.True(t, pose.Looped())
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{
			name: "missing name",
			yaml: "clips:\n  - frames: [0]\n    fps: 10\n",
			err:  anim.ErrMissingName,
		},
		{
			name: "zero fps",
			yaml: "clips:\n  - name: a\n    frames: [0]\n    fps: 0\n",
			err:  anim.ErrInvalidFramerate,
		},
		{
			name: "negative fps",
			yaml: "clips:\n  - name: a\n    frames: [0]\n    fps: -2\n",
			err:  anim.ErrInvalidFramerate,
		},
		{
			name: "negative delay",
			yaml: "clips:\n  - name: a\n    frames: [0]\n    delay: -0.1\n",
			err:  anim.ErrNegativeDelay,
		},
		{
			name: "fps and delay",
			yaml: "clips:\n  - name: a\n    frames: [0]\n    fps: 10\n    delay: 0.1\n",
			err:  anim.ErrConflictingTiming,
		},
		{
			name: "negative frame",
			yaml: "clips:\n  - name: a\n    frames: [0, -1]\n",
			err:  anim.ErrNegativeFrame,
		},
		{
			name: "duplicate",
			yaml: "clips:\n  - name: a\n    frames: [0]\n  - name: a\n    frames: [1]\n",
			err:  anim.ErrDuplicateClip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := anim.ParseTable([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := anim.ParseTable([]byte("clips: [this is: not valid"))
		assert.Error(t, err)
	})
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.yaml")
	require.NoError(t, os.WriteFile(path, []byte(heroClips), 0o644))

	table, err := anim.LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())

	_, err = anim.LoadTable(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTableReload(t *testing.T) {
	table, err := anim.ParseTable([]byte(heroClips))
	require.NoError(t, err)

	walk, _ := table.Lookup("walk")
	walkId := walk.Id()
	walkFrames := walk.Frames()
	player := anim.NewPlayer(walk)

	const tuned = `
clips:
  - name: walk
    frames: [0, 1, 2, 3]
    fps: 20
    loop: false
  - name: blink
    frames: [4, 5, 5]
    delay: 0.5
  - name: jump
    frames: [11, 12]
    fps: 8
`
	result, err := table.Reload([]byte(tuned))
	require.NoError(t, err)

	assert.Equal(t, []string{"walk", "blink"}, result.Updated)
	assert.Equal(t, []string{"jump"}, result.Added)
	assert.Equal(t, []string{"die", "pose"}, result.Missing)
	assert.Equal(t, 5, table.Len())

	// edited in place
	same, _ := table.Lookup("walk")
	assert.Same(t, walk, same)
	assert.Equal(t, walkId, walk.Id())
	assert.Equal(t, 0.05, walk.Delay())
	assert.False(t, walk.Looped())
	assert.Equal(t, walkFrames, walk.Frames())
	assert.True(t, anim.NewClipWithLoop("walk", walkFrames, 20, false).Equal(walk),
		"unchanged frames keep their backing slice")

	blink, _ := table.Lookup("blink")
	assert.Equal(t, []int{4, 5, 5}, blink.Frames())

	// the player sharing walk sees the new delay
	player.Advance(0.05)
	assert.Equal(t, 1, player.Cursor())
}

func TestTableReloadInvalidLeavesTable(t *testing.T) {
	table, err := anim.ParseTable([]byte(heroClips))
	require.NoError(t, err)

	_, err = table.Reload([]byte("clips:\n  - name: walk\n    frames: [0]\n    fps: 0\n"))
	assert.ErrorIs(t, err, anim.ErrInvalidFramerate)

	walk, _ := table.Lookup("walk")
	assert.Equal(t, 0.1, walk.Delay())
	assert.Equal(t, 4, table.Len())
}

func TestTableReloadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.yaml")
	require.NoError(t, os.WriteFile(path, []byte(heroClips), 0o644))

	table, err := anim.LoadTable(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("clips:\n  - name: walk\n    frames: [0, 1]\n    fps: 5\n"), 0o644))
	result, err := table.ReloadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"walk"}, result.Updated)

	walk, _ := table.Lookup("walk")
	assert.Equal(t, 0.2, walk.Delay())

	_, err = table.ReloadFile(filepath.Join(dir, "gone.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
