// Package monitoring carries the floorplan diagnostic log: stage sizes,
// slice band statistics and output paths.
package monitoring

import "log"

// Logf receives every diagnostic line the renderers and the floorplan command
// emit. It writes through log.Printf until SetLogger swaps it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger installs f as the diagnostic sink; nil silences diagnostics,
// which tests use to keep renderer output quiet.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Warnf reports a condition that stops a stage from producing output but is
// not an error, such as an empty slice. It routes through Logf.
func Warnf(format string, v ...interface{}) {
	Logf("warning: "+format, v...)
}
