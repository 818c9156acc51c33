// This file defines the item endpoints: adding an item to the grid,
// listing the stored items and asking whether an identity is currently
// checked out.
package handler

import (
    "errors"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/library-inventory/internal/model"
)

// itemView is the JSON shape of a catalogue item. Shared fields are
// always present; variant fields are omitted when they do not apply to
// the item's type.
type itemView struct {
    ID            int      `json:"id"`
    Type          string   `json:"type"`
    Name          string   `json:"name"`
    Description   string   `json:"description"`
    Title         string   `json:"title,omitempty"`
    Author        string   `json:"author,omitempty"`
    CopyrightDate string   `json:"copyright_date,omitempty"`
    Edition       string   `json:"edition,omitempty"`
    Director      string   `json:"director,omitempty"`
    MainActors    []string `json:"main_actors,omitempty"`
}

// storedItemView pairs an item with the compartment holding it.
type storedItemView struct {
    Shelf       int      `json:"shelf"`
    Compartment int      `json:"compartment"`
    Item        itemView `json:"item"`
}

// itemViewOf reshapes a variant into its JSON view.
func itemViewOf(it model.Item) itemView {
    switch v := it.(type) {
    case *model.Book:
        return itemView{
            ID:            v.ID,
            Type:          v.Kind(),
            Name:          v.Name,
            Description:   v.Description,
            Title:         v.Title,
            Author:        v.Author,
            CopyrightDate: v.CopyrightDate,
        }
    case *model.Magazine:
        return itemView{
            ID:          v.ID,
            Type:        v.Kind(),
            Name:        v.Name,
            Description: v.Description,
            Edition:     v.Edition,
            Title:       v.Title,
        }
    case *model.Movie:
        return itemView{
            ID:          v.ID,
            Type:        v.Kind(),
            Name:        v.Name,
            Description: v.Description,
            Title:       v.Title,
            Director:    v.Director,
            MainActors:  v.MainActors,
        }
    default:
        return itemView{}
    }
}

// itemIDParam parses the :id route parameter into the canonical decimal
// identity string used as ledger key.
func itemIDParam(c echo.Context) (string, error) {
    n, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
    if err != nil {
        return "", errors.New("invalid item id")
    }
    return strconv.Itoa(n), nil
}

// CreateItem handles POST /v1/items. The body carries a type tag, the
// shared fields, the fields of that type and the target compartment.
// The item's identity is minted here; clients never supply IDs. When
// the add fails the consumed identity stays burned, so numbering never
// rewinds.
func (h *InventoryHandler) CreateItem(c echo.Context) error {
    var body struct {
        Type          string   `json:"type"`
        Name          string   `json:"name"`
        Description   string   `json:"description"`
        Shelf         *int     `json:"shelf"`
        Compartment   *int     `json:"compartment"`
        Title         string   `json:"title"`
        Author        string   `json:"author"`
        CopyrightDate string   `json:"copyright_date"`
        Edition       string   `json:"edition"`
        Director      string   `json:"director"`
        MainActors    []string `json:"main_actors"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.Shelf == nil || body.Compartment == nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "shelf and compartment are required"})
    }

    // Resolve the variant before minting an identity so a bad type tag
    // does not consume one.
    var build func(id int) model.Item
    switch strings.ToUpper(strings.TrimSpace(body.Type)) {
    case model.KindBook:
        build = func(id int) model.Item {
            return &model.Book{
                ID:            id,
                Name:          body.Name,
                Description:   body.Description,
                Title:         body.Title,
                Author:        body.Author,
                CopyrightDate: body.CopyrightDate,
            }
        }
    case model.KindMagazine:
        build = func(id int) model.Item {
            return &model.Magazine{
                ID:          id,
                Name:        body.Name,
                Description: body.Description,
                Edition:     body.Edition,
                Title:       body.Title,
            }
        }
    case model.KindMovie:
        build = func(id int) model.Item {
            return &model.Movie{
                ID:          id,
                Name:        body.Name,
                Description: body.Description,
                Title:       body.Title,
                Director:    body.Director,
                MainActors:  body.MainActors,
            }
        }
    default:
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "type must be BOOK, MAGAZINE or MOVIE"})
    }

    item := build(h.IDs.Next())
    pos := model.NewPosition(*body.Shelf, *body.Compartment)
    if err := h.Inventory.AddItem(pos, item); err != nil {
        return writeInventoryError(c, err)
    }
    return c.JSON(http.StatusCreated, echo.Map{
        "item":        itemViewOf(item),
        "shelf":       pos.Shelf,
        "compartment": pos.Compartment,
    })
}

// ListItems handles GET /v1/items and returns every stored item with
// its position, in row-major grid order.
func (h *InventoryHandler) ListItems(c echo.Context) error {
    stored := h.Inventory.StoredItems()
    items := make([]storedItemView, 0, len(stored))
    for _, s := range stored {
        items = append(items, storedItemView{
            Shelf:       s.Position.Shelf,
            Compartment: s.Position.Compartment,
            Item:        itemViewOf(s.Item),
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// ItemStatus handles GET /v1/items/:id/status and reports whether the
// identity currently sits in the checked-out ledger.
func (h *InventoryHandler) ItemStatus(c echo.Context) error {
    itemID, err := itemIDParam(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "item_id":     itemID,
        "checked_out": h.Inventory.IsItemCheckedOut(itemID),
    })
}
