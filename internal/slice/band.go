package slice

import "github.com/banshee-data/floorplan/internal/geometry"

// Extractor derives a horizontal slice from a point cloud.
type Extractor interface {
	// ExtractSlice returns the subset of points belonging to the slice.
	ExtractSlice(points geometry.PointSet) (geometry.PointSet, error)
}

// BandFilter is an Extractor bound to a fixed Query.
type BandFilter struct {
	Query Query
}

// NewBandFilter constructs a filter selecting heights within tolerance of height.
func NewBandFilter(height, tolerance float64) BandFilter {
	return BandFilter{Query: Query{Height: height, Tolerance: tolerance}}
}

// ExtractSlice applies Extract with the filter's query.
func (f BandFilter) ExtractSlice(points geometry.PointSet) (geometry.PointSet, error) {
	return Extract(points, f.Query)
}

// BandStats counts where points fall relative to a band. Points exactly on a
// band edge count as below or above, never in band.
type BandStats struct {
	Processed int
	InBand    int
	Below     int
	Above     int
}

// Summarize classifies every point of points against q without allocating
// a result set. It is intended for logging and tuning the tolerance.
func Summarize(points geometry.PointSet, q Query) BandStats {
	var st BandStats
	for _, p := range points {
		st.Processed++
		switch {
		case q.Contains(p):
			st.InBand++
		case p.Y < q.Height:
			st.Below++
		default:
			st.Above++
		}
	}
	return st
}
