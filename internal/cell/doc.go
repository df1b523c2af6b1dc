// Package cell defines the vocabulary every other gridbelt package works in:
// the value a cell may carry and the fixed structural type that decides how
// the cell behaves during a tick.
//
// Both are closed tagged variants. Callers dispatch on Kind with exhaustive
// switches rather than through interfaces, since the set of variants is
// fixed by the language.
package cell
