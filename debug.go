//go:build dynavecdebug

package dynavec

// debugFailFast double-reports allocation failures through the fail
// handler so development builds fail loudly on conditions production code
// recovers from by checking the returned error.
const debugFailFast = true
