// Package handler exposes the HTTP handlers of the inventory service.
// Handlers bind request DTOs declared next to their endpoints, call into
// the storage engine and translate its sentinel errors into HTTP
// statuses. Responses never expose engine-owned values; items are
// reshaped into view structs before serialization.
package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/library-inventory/internal/config"
    "github.com/iliyamo/library-inventory/internal/inventory"
    "github.com/iliyamo/library-inventory/internal/model"
    "github.com/iliyamo/library-inventory/internal/queue"
    queue_publisher "github.com/iliyamo/library-inventory/internal/service"
)

// InventoryHandler bundles the storage engine, the identity allocator
// and the event switches behind the API endpoints.
type InventoryHandler struct {
    Inventory *inventory.Inventory // the in-memory grid and ledger
    IDs       *IDAllocator         // mints item identities for new items
    Events    config.EventsConfig  // gates circulation event publishing
}

// NewInventoryHandler constructs an InventoryHandler and panics if a
// dependency is nil.
func NewInventoryHandler(inv *inventory.Inventory, ids *IDAllocator, events config.EventsConfig) *InventoryHandler {
    if inv == nil || ids == nil {
        panic("nil dependency passed to NewInventoryHandler")
    }
    return &InventoryHandler{
        Inventory: inv,
        IDs:       ids,
        Events:    events,
    }
}

// writeInventoryError translates an engine sentinel into the matching
// HTTP response: invalid position 400, occupied or empty compartment
// 409, unknown or not-checked-out identity 404. Anything unrecognized
// becomes a 500 without leaking detail.
func writeInventoryError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, inventory.ErrInvalidPosition):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    case errors.Is(err, inventory.ErrSlotOccupied), errors.Is(err, inventory.ErrEmptySlot):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
    case errors.Is(err, inventory.ErrItemNotFound), errors.Is(err, inventory.ErrNotCheckedOut):
        return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
    }
}

// itemName extracts the shared catalogue name from any variant.
func itemName(it model.Item) string {
    switch v := it.(type) {
    case *model.Book:
        return v.Name
    case *model.Magazine:
        return v.Name
    case *model.Movie:
        return v.Name
    default:
        return ""
    }
}

// publishCirculation emits a circulation event in the background when
// event publishing is enabled. Delivery is best effort: the publisher
// logs failures and the request that triggered the event never waits on
// the broker.
func (h *InventoryHandler) publishCirculation(action, itemID string, rec model.CheckoutRecord) {
    if !h.Events.Enabled || rec.Item == nil {
        return
    }
    ev := queue.CirculationEvent{
        EventID:      queue.NewEventID(),
        Action:       action,
        ItemID:       itemID,
        ItemKind:     rec.Item.Kind(),
        ItemName:     itemName(rec.Item),
        CheckedOutBy: rec.CheckedOutBy,
        DueDate:      rec.DueDate,
        Shelf:        rec.OriginalPosition.Shelf,
        Compartment:  rec.OriginalPosition.Compartment,
        OccurredAt:   time.Now().UTC().Format(time.RFC3339),
    }
    if action == queue.ActionCheckedIn {
        ev.CheckedOutBy = ""
        ev.DueDate = ""
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = queue_publisher.PublishCirculation(ctx, ev)
    }()
}
