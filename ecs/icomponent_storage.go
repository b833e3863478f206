package ecs

// iComponentStorage is a type-erased dense column holding one component type
// for every row of an archetype.
type iComponentStorage interface {
	// Append adds a value (T or *T) as a new row and returns the row, or -1 if the value has the wrong type.
	Append(item any) int
	AppendZero() int
	// AppendFrom copies row of src, which must hold the same type, into a new row.
	AppendFrom(src iComponentStorage, row int) int
	// Delete removes row by moving the last row into its place.
	Delete(row int)
	// Get returns a pointer (*T) to the value at row.
	Get(row int) any
	// Clone returns a copy of the value at row boxed as T.
	Clone(row int) any
	Set(row int, item any) bool
	Len() int
	Grow(n int)
}
