package handler

import (
    "fmt"
    "net/http"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/library-inventory/internal/model"
)

// createItemResponse mirrors the body CreateItem writes on success.
type createItemResponse struct {
    Item        itemView `json:"item"`
    Shelf       int      `json:"shelf"`
    Compartment int      `json:"compartment"`
}

func TestCreateItemStoresBook(t *testing.T) {
    h := newTestHandler(t)
    c, rec := newContext(t, http.MethodPost, "/v1/items", `{
        "type": "BOOK",
        "name": "The Go Programming Language",
        "description": "Reference",
        "title": "The Go Programming Language",
        "author": "Donovan and Kernighan",
        "copyright_date": "2015",
        "shelf": 0,
        "compartment": 3
    }`)

    require.NoError(t, h.CreateItem(c))
    require.Equal(t, http.StatusCreated, rec.Code)

    var got createItemResponse
    decodeJSON(t, rec, &got)
    assert.Equal(t, FirstItemID, got.Item.ID)
    assert.Equal(t, model.KindBook, got.Item.Type)
    assert.Equal(t, "Donovan and Kernighan", got.Item.Author)
    assert.Equal(t, "2015", got.Item.CopyrightDate)
    assert.Equal(t, 0, got.Shelf)
    assert.Equal(t, 3, got.Compartment)

    empty, err := h.Inventory.IsCompartmentEmpty(model.NewPosition(0, 3))
    require.NoError(t, err)
    assert.False(t, empty)
}

func TestCreateItemStoresMovieWithActors(t *testing.T) {
    h := newTestHandler(t)
    c, rec := newContext(t, http.MethodPost, "/v1/items", `{
        "type": "MOVIE",
        "name": "Heat",
        "description": "Crime drama",
        "title": "Heat",
        "director": "Michael Mann",
        "main_actors": ["Al Pacino", "Robert De Niro"],
        "shelf": 2,
        "compartment": 14
    }`)

    require.NoError(t, h.CreateItem(c))
    require.Equal(t, http.StatusCreated, rec.Code)

    var got createItemResponse
    decodeJSON(t, rec, &got)
    assert.Equal(t, model.KindMovie, got.Item.Type)
    assert.Equal(t, "Michael Mann", got.Item.Director)
    assert.Equal(t, []string{"Al Pacino", "Robert De Niro"}, got.Item.MainActors)
}

func TestCreateItemNormalizesTypeTag(t *testing.T) {
    h := newTestHandler(t)
    c, rec := newContext(t, http.MethodPost, "/v1/items", `{
        "type": "  magazine ",
        "name": "Linux Journal",
        "description": "Monthly",
        "edition": "2024-06",
        "title": "Containers Revisited",
        "shelf": 1,
        "compartment": 0
    }`)

    require.NoError(t, h.CreateItem(c))
    require.Equal(t, http.StatusCreated, rec.Code)

    var got createItemResponse
    decodeJSON(t, rec, &got)
    assert.Equal(t, model.KindMagazine, got.Item.Type)
    assert.Equal(t, "2024-06", got.Item.Edition)
}

func TestCreateItemMintsSequentialIdentities(t *testing.T) {
    h := newTestHandler(t)

    first := postItem(t, h, 0, 0)
    second := postItem(t, h, 0, 1)
    assert.Equal(t, FirstItemID, first.Item.ID)
    assert.Equal(t, FirstItemID+1, second.Item.ID)
}

func TestCreateItemBurnsIdentityOnFailedAdd(t *testing.T) {
    h := newTestHandler(t)

    first := postItem(t, h, 0, 0)
    require.Equal(t, FirstItemID, first.Item.ID)

    // Same compartment again: the add fails with a conflict and the
    // identity it consumed is gone for good.
    c, rec := newContext(t, http.MethodPost, "/v1/items", itemBody(0, 0))
    require.NoError(t, h.CreateItem(c))
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Equal(t, "compartment is not empty", errorMessage(t, rec))

    third := postItem(t, h, 0, 1)
    assert.Equal(t, FirstItemID+2, third.Item.ID)
}

func TestCreateItemRejectsUnknownType(t *testing.T) {
    h := newTestHandler(t)
    c, rec := newContext(t, http.MethodPost, "/v1/items", `{
        "type": "CASSETTE",
        "name": "Mixtape",
        "description": "Side A",
        "shelf": 0,
        "compartment": 0
    }`)

    require.NoError(t, h.CreateItem(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "type must be BOOK, MAGAZINE or MOVIE", errorMessage(t, rec))

    // A rejected type tag must not consume an identity.
    got := postItem(t, h, 0, 0)
    assert.Equal(t, FirstItemID, got.Item.ID)
}

func TestCreateItemRequiresPosition(t *testing.T) {
    h := newTestHandler(t)
    c, rec := newContext(t, http.MethodPost, "/v1/items", `{
        "type": "BOOK",
        "name": "No Position",
        "description": "Missing coordinates"
    }`)

    require.NoError(t, h.CreateItem(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "shelf and compartment are required", errorMessage(t, rec))
}

func TestCreateItemRejectsOutOfRangePosition(t *testing.T) {
    h := newTestHandler(t)
    c, rec := newContext(t, http.MethodPost, "/v1/items", itemBody(3, 0))

    require.NoError(t, h.CreateItem(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "position is out of valid range", errorMessage(t, rec))
}

func TestCreateItemRejectsMalformedBody(t *testing.T) {
    h := newTestHandler(t)
    c, rec := newContext(t, http.MethodPost, "/v1/items", `{"type": "BOOK",`)

    require.NoError(t, h.CreateItem(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "invalid request body", errorMessage(t, rec))
}

func TestListItemsReturnsRowMajorOrder(t *testing.T) {
    h := newTestHandler(t)
    seedBook(t, h, 2000, model.NewPosition(1, 2))
    seedBook(t, h, 2001, model.NewPosition(0, 5))

    c, rec := newContext(t, http.MethodGet, "/v1/items", "")
    require.NoError(t, h.ListItems(c))
    require.Equal(t, http.StatusOK, rec.Code)

    var got struct {
        Items []storedItemView `json:"items"`
    }
    decodeJSON(t, rec, &got)
    require.Len(t, got.Items, 2)
    assert.Equal(t, 0, got.Items[0].Shelf)
    assert.Equal(t, 5, got.Items[0].Compartment)
    assert.Equal(t, 2001, got.Items[0].Item.ID)
    assert.Equal(t, 1, got.Items[1].Shelf)
    assert.Equal(t, 2, got.Items[1].Compartment)
}

func TestListItemsEmptyGridIsEmptyArray(t *testing.T) {
    h := newTestHandler(t)
    c, rec := newContext(t, http.MethodGet, "/v1/items", "")

    require.NoError(t, h.ListItems(c))
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestItemStatusReflectsLedger(t *testing.T) {
    h := newTestHandler(t)
    seedBook(t, h, 1000, model.NewPosition(0, 0))

    c, rec := newContext(t, http.MethodGet, "/v1/items/1000/status", "")
    c.SetParamNames("id")
    c.SetParamValues("1000")
    require.NoError(t, h.ItemStatus(c))

    var got struct {
        ItemID     string `json:"item_id"`
        CheckedOut bool   `json:"checked_out"`
    }
    decodeJSON(t, rec, &got)
    assert.Equal(t, "1000", got.ItemID)
    assert.False(t, got.CheckedOut)

    _, err := h.Inventory.CheckoutItem("1000", "Dana")
    require.NoError(t, err)

    c, rec = newContext(t, http.MethodGet, "/v1/items/1000/status", "")
    c.SetParamNames("id")
    c.SetParamValues("1000")
    require.NoError(t, h.ItemStatus(c))
    decodeJSON(t, rec, &got)
    assert.True(t, got.CheckedOut)
}

func TestItemStatusNormalizesIdentity(t *testing.T) {
    h := newTestHandler(t)
    c, rec := newContext(t, http.MethodGet, "/v1/items/0099/status", "")
    c.SetParamNames("id")
    c.SetParamValues("0099")

    require.NoError(t, h.ItemStatus(c))
    var got struct {
        ItemID string `json:"item_id"`
    }
    decodeJSON(t, rec, &got)
    assert.Equal(t, "99", got.ItemID)
}

func TestItemStatusRejectsNonNumericIdentity(t *testing.T) {
    h := newTestHandler(t)
    c, rec := newContext(t, http.MethodGet, "/v1/items/abc/status", "")
    c.SetParamNames("id")
    c.SetParamValues("abc")

    require.NoError(t, h.ItemStatus(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "invalid item id", errorMessage(t, rec))
}

// itemBody returns a minimal valid book payload targeting a compartment.
func itemBody(shelf, compartment int) string {
    return fmt.Sprintf(`{
        "type": "BOOK",
        "name": "Filler",
        "description": "Test fixture",
        "shelf": %d,
        "compartment": %d
    }`, shelf, compartment)
}

// postItem creates a book through the handler and decodes the response.
func postItem(t *testing.T, h *InventoryHandler, shelf, compartment int) createItemResponse {
    t.Helper()
    c, rec := newContext(t, http.MethodPost, "/v1/items", itemBody(shelf, compartment))
    require.NoError(t, h.CreateItem(c))
    require.Equal(t, http.StatusCreated, rec.Code)
    var got createItemResponse
    decodeJSON(t, rec, &got)
    return got
}
