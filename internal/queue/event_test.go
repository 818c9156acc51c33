package queue

import (
    "testing"

    "github.com/google/uuid"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestNewEventID_ParseableAndUnique(t *testing.T) {
    first := NewEventID()
    second := NewEventID()

    _, err := uuid.Parse(first)
    require.NoError(t, err)
    assert.NotEqual(t, first, second)
}

func TestFormatLogLine_CheckedOut(t *testing.T) {
    ev := CirculationEvent{
        EventID:      "ev-1",
        Action:       ActionCheckedOut,
        ItemID:       "1000",
        ItemKind:     "BOOK",
        ItemName:     "Dune",
        CheckedOutBy: "Avery",
        DueDate:      "2026-01-14",
        Shelf:        1,
        Compartment:  3,
        OccurredAt:   "2025-12-15T10:30:00Z",
    }

    want := "[2025-12-15T10:30:00Z] Item checked out | event_id=ev-1 | item_id=1000 | kind=BOOK | name=\"Dune\" | by=\"Avery\" | due=2026-01-14 | shelf=1 | compartment=3\n"
    assert.Equal(t, want, formatLogLine(ev))
}

func TestFormatLogLine_CheckedInOmitsLoanFields(t *testing.T) {
    ev := CirculationEvent{
        EventID:     "ev-2",
        Action:      ActionCheckedIn,
        ItemID:      "1000",
        ItemKind:    "BOOK",
        ItemName:    "Dune",
        Shelf:       1,
        Compartment: 3,
        OccurredAt:  "2026-01-02T08:00:00Z",
    }

    line := formatLogLine(ev)
    want := "[2026-01-02T08:00:00Z] Item checked in | event_id=ev-2 | item_id=1000 | kind=BOOK | name=\"Dune\" | shelf=1 | compartment=3\n"
    assert.Equal(t, want, line)
    assert.NotContains(t, line, "by=")
    assert.NotContains(t, line, "due=")
}
