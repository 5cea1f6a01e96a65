package config

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffIdentical(t *testing.T) {
	diff, err := Diff(DefaultConfig(), DefaultConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, diff)
	assert.False(t, Changed(diff))
}

func TestDiffChangedField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Readline.Prompt = "rl> "

	diff, err := Diff(DefaultConfig(), cfg)
	require.NoError(t, err)
	assert.True(t, Changed(diff))

	var deleted, inserted []string
	for _, d := range diff {
		switch d.Op {
		case diffmatchpatch.DiffDelete:
			deleted = append(deleted, d.Text)
		case diffmatchpatch.DiffInsert:
			inserted = append(inserted, d.Text)
		}
	}
	require.Len(t, deleted, 1)
	require.Len(t, inserted, 1)
	assert.Contains(t, deleted[0], "prompt:")
	assert.Contains(t, inserted[0], "rl> ")
}
