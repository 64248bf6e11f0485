// Package testutil provides helpers shared by dynavec tests: a seeded
// thread-safe RNG and allocator fakes for failure injection and call
// counting.
package testutil
