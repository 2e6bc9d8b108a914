package slice

import (
	"testing"

	"github.com/banshee-data/floorplan/internal/geometry"
	"github.com/banshee-data/floorplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandFilterImplementsExtractor(t *testing.T) {
	t.Parallel()

	var ex Extractor = NewBandFilter(1.5, 0.25)
	in := testutil.BoxPoints(5, 3, 7, 1.4, 1.6, 2.0)

	got, err := ex.ExtractSlice(in)
	require.NoError(t, err)
	want, err := Extract(in, Query{Height: 1.5, Tolerance: 0.25})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Len(t, got, 2)
}

func TestBandFilterEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := NewBandFilter(1.5, 0.1).ExtractSlice(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	pts := geometry.PointSet{
		{Y: 0}, {Y: 0.5}, // below
		{Y: 1.0}, {Y: 0.9}, {Y: 1.2}, // in band
		{Y: 1.25}, {Y: 3}, // above (1.25 is the open edge)
	}
	st := Summarize(pts, Query{Height: 1, Tolerance: 0.25})
	assert.Equal(t, BandStats{Processed: 7, InBand: 3, Below: 2, Above: 2}, st)

	got, err := Extract(pts, Query{Height: 1, Tolerance: 0.25})
	require.NoError(t, err)
	assert.Len(t, got, st.InBand)
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, BandStats{}, Summarize(nil, DefaultQuery()))
}
