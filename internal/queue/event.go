// Package queue defines message payloads exchanged over the message broker.
package queue

import "github.com/google/uuid"

// Actions a circulation event can describe.
const (
    ActionCheckedOut = "CHECKED_OUT" // item left the grid for a custodian
    ActionCheckedIn  = "CHECKED_IN"  // item returned to its original compartment
)

// CirculationEvent is published after an item successfully moves between
// the storage grid and the checked-out ledger.  It carries enough
// information for downstream consumers to log, notify, or feed
// analytics without querying the service.
type CirculationEvent struct {
    EventID      string `json:"event_id"`
    Action       string `json:"action"`
    ItemID       string `json:"item_id"`
    ItemKind     string `json:"item_kind"`
    ItemName     string `json:"item_name"`
    CheckedOutBy string `json:"checked_out_by,omitempty"`
    DueDate      string `json:"due_date,omitempty"`
    Shelf        int    `json:"shelf"`
    Compartment  int    `json:"compartment"`
    OccurredAt   string `json:"occurred_at"`
}

// NewEventID generates a new UUID v7 for event IDs.
func NewEventID() string {
    id, err := uuid.NewV7()
    if err != nil {
        // Fallback to UUID v4 if v7 generation fails
        return uuid.New().String()
    }
    return id.String()
}
