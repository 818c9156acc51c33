// This file defines the circulation endpoints: checking an item out to
// a custodian, returning it to its original compartment and listing the
// current ledger.
package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/library-inventory/internal/inventory"
    "github.com/iliyamo/library-inventory/internal/queue"
)

// positionView is the JSON shape of a grid coordinate.
type positionView struct {
    Shelf       int `json:"shelf"`
    Compartment int `json:"compartment"`
}

// checkoutView is the JSON shape of a ledger entry.
type checkoutView struct {
    ItemID           string       `json:"item_id"`
    CheckedOutBy     string       `json:"checked_out_by"`
    DueDate          string       `json:"due_date"`
    OriginalPosition positionView `json:"original_position"`
    Item             itemView     `json:"item"`
}

// Checkout handles POST /v1/items/:id/checkout. The engine scans the
// grid for the identity, moves the item into the ledger and stamps a
// due date thirty days out. A 404 means the identity is not on the
// grid, including when it is already checked out.
func (h *InventoryHandler) Checkout(c echo.Context) error {
    itemID, err := itemIDParam(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
    }
    var body struct {
        CheckedOutBy string `json:"checked_out_by"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    by := strings.TrimSpace(body.CheckedOutBy)
    if by == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "checked_out_by is required"})
    }

    item, err := h.Inventory.CheckoutItem(itemID, by)
    if err != nil {
        return writeInventoryError(c, err)
    }
    rec, _ := h.Inventory.CheckedOutRecord(itemID)
    h.publishCirculation(queue.ActionCheckedOut, itemID, rec)

    return c.JSON(http.StatusOK, checkoutView{
        ItemID:       itemID,
        CheckedOutBy: by,
        DueDate:      rec.DueDate,
        OriginalPosition: positionView{
            Shelf:       rec.OriginalPosition.Shelf,
            Compartment: rec.OriginalPosition.Compartment,
        },
        Item: itemViewOf(item),
    })
}

// Checkin handles POST /v1/items/:id/checkin. Only the identity is
// needed; the ledger remembers where the item came from. A 409 means
// the original compartment was refilled while the item was out, and the
// ledger entry stays in place so the return can be retried later.
func (h *InventoryHandler) Checkin(c echo.Context) error {
    itemID, err := itemIDParam(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
    }
    rec, ok := h.Inventory.CheckedOutRecord(itemID)
    if !ok {
        return writeInventoryError(c, inventory.ErrNotCheckedOut)
    }
    if err := h.Inventory.CheckinItem(itemID); err != nil {
        return writeInventoryError(c, err)
    }
    h.publishCirculation(queue.ActionCheckedIn, itemID, rec)

    return c.JSON(http.StatusOK, echo.Map{
        "item_id": itemID,
        "returned_to": positionView{
            Shelf:       rec.OriginalPosition.Shelf,
            Compartment: rec.OriginalPosition.Compartment,
        },
        "item": itemViewOf(rec.Item),
    })
}

// ListCheckouts handles GET /v1/checkouts and returns the ledger in
// ascending key order, the same order the text report uses.
func (h *InventoryHandler) ListCheckouts(c echo.Context) error {
    entries := h.Inventory.CheckedOut()
    items := make([]checkoutView, 0, len(entries))
    for _, e := range entries {
        items = append(items, checkoutView{
            ItemID:       e.ItemID,
            CheckedOutBy: e.Record.CheckedOutBy,
            DueDate:      e.Record.DueDate,
            OriginalPosition: positionView{
                Shelf:       e.Record.OriginalPosition.Shelf,
                Compartment: e.Record.OriginalPosition.Compartment,
            },
            Item: itemViewOf(e.Record.Item),
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}
