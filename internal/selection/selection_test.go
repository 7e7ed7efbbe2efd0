package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleBounded_FillsThenSignalsLimit(t *testing.T) {
	got, err := ToggleBounded([]string{}, "professor", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"professor"}, got)

	got, err = ToggleBounded(got, "expert", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"professor", "expert"}, got)

	got, err = ToggleBounded(got, "academic-env", 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSelectionLimit))
	assert.Equal(t, []string{"professor", "expert"}, got)
}

func TestToggleBounded(t *testing.T) {
	tests := []struct {
		name     string
		current  []string
		value    string
		max      int
		expected []string
		limit    bool
	}{
		{
			name:     "add to nil",
			current:  nil,
			value:    "financial",
			max:      2,
			expected: []string{"financial"},
		},
		{
			name:     "remove present keeps order",
			current:  []string{"a", "b"},
			value:    "a",
			max:      2,
			expected: []string{"b"},
		},
		{
			name:     "remove present when full",
			current:  []string{"a", "b"},
			value:    "b",
			max:      2,
			expected: []string{"a"},
		},
		{
			name:     "remove last leaves empty",
			current:  []string{"a"},
			value:    "a",
			max:      2,
			expected: []string{},
		},
		{
			name:     "third distinct value",
			current:  []string{"a", "b"},
			value:    "c",
			max:      2,
			expected: []string{"a", "b"},
			limit:    true,
		},
		{
			name:     "zero max",
			current:  nil,
			value:    "a",
			max:      0,
			expected: nil,
			limit:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToggleBounded(tt.current, tt.value, tt.max)
			if tt.limit {
				assert.ErrorIs(t, err, ErrSelectionLimit)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, len(got), max(tt.max, len(tt.current)))
		})
	}
}

func TestToggleBounded_DoesNotMutateInput(t *testing.T) {
	current := make([]string, 2, 4)
	current[0], current[1] = "a", "b"

	_, err := ToggleBounded(current, "a", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, current)

	added, err := ToggleBounded(current, "c", 3)
	require.NoError(t, err)
	added[0] = "z"
	assert.Equal(t, []string{"a", "b"}, current)
}

func TestToggleBounded_NeverDuplicates(t *testing.T) {
	seq := []string{}
	for _, v := range []string{"a", "b", "a", "a", "c", "b", "c", "c"} {
		seq, _ = ToggleBounded(seq, v, 2)
		seen := map[string]bool{}
		for _, s := range seq {
			assert.False(t, seen[s], "duplicate %q in %v", s, seq)
			seen[s] = true
		}
		assert.LessOrEqual(t, len(seq), 2)
	}
}

func TestReorderRanked(t *testing.T) {
	tests := []struct {
		name     string
		current  []string
		item     string
		rank     int
		expected []string
	}{
		{
			name:     "insert ahead of existing",
			current:  []string{"financial"},
			item:     "intellectual",
			rank:     1,
			expected: []string{"intellectual", "financial"},
		},
		{
			name:     "append to empty",
			current:  nil,
			item:     "growth",
			rank:     3,
			expected: []string{"growth"},
		},
		{
			name:     "rank past end clamps to tail",
			current:  []string{"a", "b"},
			item:     "c",
			rank:     5,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "move down",
			current:  []string{"a", "b", "c", "d"},
			item:     "a",
			rank:     3,
			expected: []string{"b", "c", "a", "d"},
		},
		{
			name:     "move up",
			current:  []string{"a", "b", "c", "d"},
			item:     "d",
			rank:     2,
			expected: []string{"a", "d", "b", "c"},
		},
		{
			name:     "same rank is a no-op",
			current:  []string{"a", "b", "c"},
			item:     "b",
			rank:     2,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "zero rank removes",
			current:  []string{"a", "b", "c"},
			item:     "b",
			rank:     0,
			expected: []string{"a", "c"},
		},
		{
			name:     "rank above universe removes",
			current:  []string{"a", "b", "c"},
			item:     "a",
			rank:     6,
			expected: []string{"b", "c"},
		},
		{
			name:     "negative rank on absent item",
			current:  []string{"a"},
			item:     "b",
			rank:     -1,
			expected: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReorderRanked(tt.current, tt.item, tt.rank, 5)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReorderRanked_RemoveThenReinsert(t *testing.T) {
	seq := []string{"financial", "intellectual", "balance", "growth", "location"}

	seq = ReorderRanked(seq, "balance", 0, 5)
	assert.Equal(t, []string{"financial", "intellectual", "growth", "location"}, seq)
	assert.Equal(t, 0, RankOf(seq, "balance"))
	assert.Equal(t, 3, RankOf(seq, "growth"))

	seq = ReorderRanked(seq, "balance", 2, 5)
	assert.Equal(t, []string{"financial", "balance", "intellectual", "growth", "location"}, seq)
	assert.Equal(t, 2, RankOf(seq, "balance"))
	assert.Equal(t, 3, RankOf(seq, "intellectual"))

	seq = ReorderRanked(seq, "location", 1, 5)
	assert.Equal(t, []string{"location", "financial", "balance", "intellectual", "growth"}, seq)
	assert.Len(t, seq, 5)
}

func TestReorderRanked_ClampsToUniverse(t *testing.T) {
	got := ReorderRanked([]string{"a", "b", "c"}, "d", 1, 3)
	assert.Equal(t, []string{"d", "a", "b"}, got)
}

func TestReorderRanked_DoesNotMutateInput(t *testing.T) {
	current := []string{"a", "b", "c"}
	_ = ReorderRanked(current, "c", 1, 5)
	assert.Equal(t, []string{"a", "b", "c"}, current)
}

func TestParseRank(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{"1", 1},
		{" 4 ", 4},
		{"", 0},
		{"abc", 0},
		{"-2", 0},
		{"2.5", 0},
		{"9", 9},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRank(tt.raw))
		})
	}
}

func TestRankOf(t *testing.T) {
	seq := []string{"x", "y"}
	assert.Equal(t, 1, RankOf(seq, "x"))
	assert.Equal(t, 2, RankOf(seq, "y"))
	assert.Equal(t, 0, RankOf(seq, "z"))
	assert.Equal(t, 0, RankOf(nil, "z"))
}
