// Package inventory implements the storage engine of the library: the
// shelf grid, the checked-out ledger and the operations that move items
// between them. The sentinel values below let callers such as the HTTP
// handlers and the console distinguish between failure kinds. For
// example, ErrSlotOccupied indicates that an add (or a guarded checkin)
// targeted a compartment that already holds an item, while
// ErrNotCheckedOut signals that a checkin named an identity with no
// ledger entry.
package inventory

import "errors"

// ErrInvalidPosition is returned when a position lies outside the grid.
// Handlers should translate this into an HTTP 400 response.
var ErrInvalidPosition = errors.New("position is out of valid range")

// ErrSlotOccupied is returned when an operation needs an empty
// compartment but finds it holding an item: an add aimed at an occupied
// slot, or a checkin whose original compartment was refilled while the
// item was out. Handlers should translate this into an HTTP 409
// response.
var ErrSlotOccupied = errors.New("compartment is not empty")

// ErrEmptySlot is returned when a swap references a compartment with
// nothing in it. Handlers should translate this into an HTTP 409
// response.
var ErrEmptySlot = errors.New("compartment is empty")

// ErrItemNotFound is returned when a checkout scan finds no
// grid-resident item with the requested identity. Handlers should
// translate this into an HTTP 404 response.
var ErrItemNotFound = errors.New("item not found")

// ErrNotCheckedOut is returned when a checkin names an identity that is
// absent from the ledger. Handlers should translate this into an HTTP
// 404 response.
var ErrNotCheckedOut = errors.New("item is not checked out")
