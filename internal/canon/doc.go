// Package canon implements canonical identifier text.
//
// A Text holds the NFC form of its input as UTF-8, followed by a single
// NUL byte so the same storage can be handed to native code as a C string.
// Lengths are limited to what fits a 32-bit field. Two spellings that are
// canonically equivalent under Unicode (for example U+212B, U+00C5 and
// "A"+U+030A) produce byte-identical Text values.
//
// Values are immutable once built; every accessor returns a view that must
// not be modified.
package canon
