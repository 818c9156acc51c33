package model

import "fmt"

// Dimensions of the storage wall: three shelves, each divided into
// fifteen compartments. Every position outside this range is invalid.
const (
    ShelfCount       = 3  // number of shelves in the grid
    CompartmentCount = 15 // compartments per shelf
)

// Position addresses a single compartment in the storage grid. It is a
// plain value: construction never fails, and callers are expected to
// check IsValid before the grid is touched. Equality is structural, so
// positions can be compared with == or Equal.
//
// Fields:
//  Shelf       – zero-based shelf index (0..2).
//  Compartment – zero-based compartment index on the shelf (0..14).
type Position struct {
    Shelf       int // shelf index, outermost grid dimension
    Compartment int // compartment index within the shelf
}

// NewPosition builds a Position from a shelf and compartment index.
func NewPosition(shelf, compartment int) Position {
    return Position{Shelf: shelf, Compartment: compartment}
}

// IsValid reports whether the position addresses an existing compartment.
func (p Position) IsValid() bool {
    return p.Shelf >= 0 && p.Shelf < ShelfCount &&
        p.Compartment >= 0 && p.Compartment < CompartmentCount
}

// Equal reports structural equality of two positions.
func (p Position) Equal(other Position) bool {
    return p.Shelf == other.Shelf && p.Compartment == other.Compartment
}

// String renders the position the way the inventory reports do.
func (p Position) String() string {
    return fmt.Sprintf("Shelf: %d, Compartment: %d", p.Shelf, p.Compartment)
}
