// Package conv provides overflow-checked integer conversions and
// arithmetic for byte-size calculations.
package conv
