// This file serves the two plain text reports. Their layout is part of
// the service contract: clients diff and archive these, so the handlers
// pass the engine's rendering through byte for byte.
package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// StorageReport handles GET /v1/reports/storage and returns the textual
// listing of every occupied compartment in row-major order.
func (h *InventoryHandler) StorageReport(c echo.Context) error {
    return c.String(http.StatusOK, h.Inventory.RenderStorage())
}

// CheckoutsReport handles GET /v1/reports/checkouts and returns the
// textual listing of the ledger in ascending key order.
func (h *InventoryHandler) CheckoutsReport(c echo.Context) error {
    return c.String(http.StatusOK, h.Inventory.RenderCheckedOut())
}
