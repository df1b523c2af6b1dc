package cell

import (
	"fmt"
	"strconv"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	// Empty marks a slot that can hold a value but currently does not.
	Empty ValueKind = iota
	// CannotHold marks cells whose structural type never carries a value.
	CannotHold
	// Halt is the marker that stops the run once a Print processor consumes it.
	Halt
	// Integer is a 32-bit signed integer.
	Integer
	// Character is a Unicode code point.
	Character
)

func (k ValueKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case CannotHold:
		return "cannot-hold"
	case Halt:
		return "halt"
	case Integer:
		return "integer"
	case Character:
		return "character"
	}
	return fmt.Sprintf("ValueKind(%d)", uint8(k))
}

// Value is the content of a cell slot. N carries the integer for Integer
// values and the code point for Character values; it is zero otherwise.
type Value struct {
	Kind ValueKind
	N    int32
}

// Int returns an Integer value.
func Int(n int32) Value { return Value{Kind: Integer, N: n} }

// Char returns a Character value.
func Char(r rune) Value { return Value{Kind: Character, N: r} }

// HaltValue returns the Halt marker.
func HaltValue() Value { return Value{Kind: Halt} }

// EmptyValue returns an empty slot.
func EmptyValue() Value { return Value{Kind: Empty} }

// Blocked returns the CannotHold marker.
func Blocked() Value { return Value{Kind: CannotHold} }

// IsEmpty reports whether the slot is free to receive a value.
func (v Value) IsEmpty() bool { return v.Kind == Empty }

// IsReal reports whether v is a value that can move across the grid.
func (v Value) IsReal() bool {
	return v.Kind == Halt || v.Kind == Integer || v.Kind == Character
}

// Numeric returns the operand an operator sees for v. Characters coerce to
// their code point. ok is false for every other kind.
func (v Value) Numeric() (n int32, ok bool) {
	switch v.Kind {
	case Integer, Character:
		return v.N, true
	}
	return 0, false
}

// Text returns what a Print processor emits for v. Halt and the non-values
// emit nothing.
func (v Value) Text() string {
	switch v.Kind {
	case Integer:
		return strconv.FormatInt(int64(v.N), 10)
	case Character:
		return string(rune(v.N))
	}
	return ""
}

func (v Value) String() string {
	switch v.Kind {
	case Integer:
		return "int(" + strconv.FormatInt(int64(v.N), 10) + ")"
	case Character:
		return "char(" + strconv.QuoteRune(rune(v.N)) + ")"
	}
	return v.Kind.String()
}
