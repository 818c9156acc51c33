package inventory

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/library-inventory/internal/model"
)

func TestRenderStorage_EmptyGrid(t *testing.T) {
    inv := NewWithClock(fixedClock())

    want := "=== Items in Storage ===\n" +
        "No items in storage.\n"
    assert.Equal(t, want, inv.RenderStorage())
}

func TestRenderStorage_ListsOccupiedCompartmentsRowMajor(t *testing.T) {
    inv := NewWithClock(fixedClock())

    // Inserted against row-major order on purpose; the report must
    // still walk shelf 0 before shelf 1.
    require.NoError(t, inv.AddItem(model.NewPosition(1, 0), &model.Magazine{
        ID:          1001,
        Name:        "National Geographic",
        Description: "Monthly science magazine",
        Edition:     "June 2024",
        Title:       "Secrets of the Deep",
    }))
    require.NoError(t, inv.AddItem(model.NewPosition(0, 3), &model.Book{
        ID:            1000,
        Name:          "Dune",
        Description:   "Desert planet epic",
        Title:         "Dune",
        Author:        "Frank Herbert",
        CopyrightDate: "1965",
    }))

    want := "=== Items in Storage ===\n" +
        "Shelf: 0, Compartment: 3\n" +
        "ID: 1000\n" +
        "Name: Dune\n" +
        "Description: Desert planet epic\n" +
        "Title: Dune\n" +
        "Author: Frank Herbert\n" +
        "Copyright Date: 1965\n" +
        "\n" +
        "Shelf: 1, Compartment: 0\n" +
        "ID: 1001\n" +
        "Name: National Geographic\n" +
        "Description: Monthly science magazine\n" +
        "Edition: June 2024\n" +
        "Title: Secrets of the Deep\n" +
        "\n"
    assert.Equal(t, want, inv.RenderStorage())
}

func TestRenderCheckedOut_EmptyLedger(t *testing.T) {
    inv := NewWithClock(fixedClock())

    want := "=== Checked Out Items ===\n" +
        "No items are currently checked out.\n"
    assert.Equal(t, want, inv.RenderCheckedOut())
}

func TestRenderCheckedOut_ListsLedgerEntries(t *testing.T) {
    inv := NewWithClock(fixedClock())
    require.NoError(t, inv.AddItem(model.NewPosition(0, 3), &model.Book{
        ID:            1000,
        Name:          "Dune",
        Description:   "Desert planet epic",
        Title:         "Dune",
        Author:        "Frank Herbert",
        CopyrightDate: "1965",
    }))
    _, err := inv.CheckoutItem("1000", "Avery")
    require.NoError(t, err)

    want := "=== Checked Out Items ===\n" +
        "Item ID: 1000\n" +
        "ID: 1000\n" +
        "Name: Dune\n" +
        "Description: Desert planet epic\n" +
        "Title: Dune\n" +
        "Author: Frank Herbert\n" +
        "Copyright Date: 1965\n" +
        "\n" +
        "Checked out by: Avery\n" +
        "Due date: 2026-01-14\n" +
        "Original position - Shelf: 0, Compartment: 3\n" +
        "------------------------\n"
    assert.Equal(t, want, inv.RenderCheckedOut())
}

func TestRenderCheckedOut_MovieActorsOnOwnLines(t *testing.T) {
    inv := NewWithClock(fixedClock())
    require.NoError(t, inv.AddItem(model.NewPosition(2, 9), &model.Movie{
        ID:          1002,
        Name:        "Alien",
        Description: "Horror in space",
        Title:       "Alien",
        Director:    "Ridley Scott",
        MainActors:  []string{"Sigourney Weaver", "Tom Skerritt"},
    }))
    _, err := inv.CheckoutItem("1002", "Blake")
    require.NoError(t, err)

    want := "=== Checked Out Items ===\n" +
        "Item ID: 1002\n" +
        "ID: 1002\n" +
        "Name: Alien\n" +
        "Description: Horror in space\n" +
        "Title: Alien\n" +
        "Director: Ridley Scott\n" +
        "Main Actors: \n" +
        "Sigourney Weaver\n" +
        "Tom Skerritt\n" +
        "\n" +
        "Checked out by: Blake\n" +
        "Due date: 2026-01-14\n" +
        "Original position - Shelf: 2, Compartment: 9\n" +
        "------------------------\n"
    assert.Equal(t, want, inv.RenderCheckedOut())
}
