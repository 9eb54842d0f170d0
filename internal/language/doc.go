// Package language holds the ISO 639-2 code table and every conversion
// derived from it.
//
// The table is keyed by the three-letter bibliographic code ("ger", "fre",
// "chi") and carries the alternate terminology code, the ISO 639-1
// two-letter code, and English and French names. It is built once at package
// initialization and never mutated, so every function here is safe for
// concurrent use without locking.
//
// Lookup and TwoLetterCodeFrom are exact-key accessors with no input
// normalization. The lenient helpers (ToISO2, ToISO3, DisplayName,
// NormalizeList) trim and lowercase user input and also accept two-letter
// codes, alternate codes and English name words.
package language
