// This file defines the compartment endpoints: probing a single slot
// and swapping the contents of two occupied slots.
package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/library-inventory/internal/model"
)

// SlotStatus handles GET /v1/slots/:shelf/:compartment and reports
// whether the addressed compartment is empty. Coordinates outside the
// grid yield a 400.
func (h *InventoryHandler) SlotStatus(c echo.Context) error {
    shelf, err := strconv.Atoi(c.Param("shelf"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shelf"})
    }
    compartment, err := strconv.Atoi(c.Param("compartment"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid compartment"})
    }

    empty, err := h.Inventory.IsCompartmentEmpty(model.NewPosition(shelf, compartment))
    if err != nil {
        return writeInventoryError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{
        "shelf":       shelf,
        "compartment": compartment,
        "empty":       empty,
    })
}

// SwapSlots handles POST /v1/slots/swap. Both compartments must be
// inside the grid and occupied; on success their contents trade places.
func (h *InventoryHandler) SwapSlots(c echo.Context) error {
    var body struct {
        From *positionView `json:"from"`
        To   *positionView `json:"to"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.From == nil || body.To == nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "from and to positions are required"})
    }

    from := model.NewPosition(body.From.Shelf, body.From.Compartment)
    to := model.NewPosition(body.To.Shelf, body.To.Compartment)
    if err := h.Inventory.SwapItems(from, to); err != nil {
        return writeInventoryError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{
        "from": positionView{Shelf: from.Shelf, Compartment: from.Compartment},
        "to":   positionView{Shelf: to.Shelf, Compartment: to.Compartment},
    })
}
