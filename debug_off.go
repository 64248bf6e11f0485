//go:build !dynavecdebug

package dynavec

const debugFailFast = false
