// Package textutil provides text normalization helpers for name matching.
//
// Fold reduces a string to a comparison key: diacritics are removed after
// canonical decomposition and the result is Unicode case folded, so
// "Aléoute", "ALEOUTE" and "aleoute" compare equal. Keys are only meant for
// comparison and are never shown to users.
package textutil
