package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeronymous/words2num"
	"github.com/Jeronymous/words2num/denorm"
	"github.com/Jeronymous/words2num/tokenizer"
)

func TestFirstDivergence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b     string
		pos      int
		got, want byte
	}{
		{"abc", "abc", 3, 0, 0},
		{"abc", "abd", 2, 'd', 'c'},
		{"abc", "ab", 2, 0, 'c'},
		{"ab", "abc", 2, 'c', 0},
		{"", "", 0, 0, 0},
	}

	for _, tt := range cases {
		pos, got, want := firstDivergence(tt.a, tt.b)
		assert.Equal(t, tt.pos, pos, "%q vs %q", tt.a, tt.b)
		assert.Equal(t, tt.got, got, "%q vs %q", tt.a, tt.b)
		assert.Equal(t, tt.want, want, "%q vs %q", tt.a, tt.b)
	}
}

func TestComputeMedian(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0, computeMedian(nil), 0)
	assert.InDelta(t, 2, computeMedian([]float64{3, 1, 2}), 0)
	assert.InDelta(t, 2.5, computeMedian([]float64{4, 1, 3, 2}), 0)
}

func TestProcessChunk(t *testing.T) {
	t.Parallel()

	reg, err := words2num.Registry()
	require.NoError(t, err)
	e, err := reg.Resolve("fr")
	require.NoError(t, err)
	r := denorm.New(e)

	fs := &fileState{path: "t.txt", tokenCounts: make(map[tokenizer.TokenType]int)}
	fs.processChunk([]byte("il y a deux cent cinquante personnes.\nmille, cent\n"), r)

	assert.Equal(t, 3, fs.spans)
	assert.False(t, fs.reconFailed)
	assert.False(t, fs.spanFailed)
	assert.False(t, fs.idempotentFails)
	assert.Positive(t, fs.tokenCounts[tokenizer.Word])
}

func TestFlagDensityOutliers(t *testing.T) {
	t.Parallel()

	stats := &Stats{
		densities: []fileDensity{
			{path: "a", density: 1},
			{path: "b", density: 1},
			{path: "c", density: 1.2},
			{path: "d", density: 10},
		},
	}
	flagDensityOutliers(stats)
	assert.Equal(t, 1, stats.densityOutliers)
}
