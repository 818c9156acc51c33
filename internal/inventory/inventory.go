package inventory

import (
    "fmt"
    "sort"
    "strconv"
    "strings"
    "sync"
    "time"

    "github.com/iliyamo/library-inventory/internal/model"
    "github.com/iliyamo/library-inventory/internal/utils"
)

// LoanPeriodDays is the length of a loan in calendar days.  The due
// date recorded at checkout is the checkout date plus this many days,
// carried across month and year boundaries.
const LoanPeriodDays = 30

// StoredItem pairs a grid-resident item with the compartment it
// occupies.  Listings return entries in row-major order: shelf by
// shelf, and within a shelf compartment by compartment.
//
// Fields:
//  Position – compartment holding the item.
//  Item     – copy of the stored item.
type StoredItem struct {
    Position model.Position // compartment holding the item
    Item     model.Item     // detached copy, safe for callers to keep
}

// CheckoutEntry pairs a ledger key with its checkout record.  Listings
// return entries sorted by key, so "1000" precedes "999"; the text
// report prints them in the same order.
//
// Fields:
//  ItemID – ledger key, the decimal form of the item identity.
//  Record – custodian, due date, original position and the item.
type CheckoutEntry struct {
    ItemID string               // decimal item identity
    Record model.CheckoutRecord // snapshot with a detached item copy
}

// Inventory is the in-memory storage engine.  It owns a fixed grid of
// compartments and a ledger of checked-out items, and it upholds a
// single invariant across every operation: an item lives either in
// exactly one compartment or in exactly one ledger entry, never both
// and never twice.  Operations either complete fully or leave both
// structures untouched.
//
// All methods are safe for concurrent use.  A single mutex guards the
// grid and the ledger together so that no caller can observe an item
// mid-move.  Items handed out by accessors are detached copies; the
// engine never shares its own instances with callers.
type Inventory struct {
    mu         sync.Mutex // guards shelves and checkedOut as one unit
    shelves    [model.ShelfCount][model.CompartmentCount]model.Item
    checkedOut map[string]model.CheckoutRecord // ledger keyed by decimal item identity
    now        func() time.Time                // clock used to stamp due dates
}

// New returns an empty inventory that stamps due dates from the wall
// clock.
func New() *Inventory { return NewWithClock(time.Now) }

// NewWithClock returns an empty inventory whose due dates derive from
// the supplied clock.  Tests inject a fixed clock to pin checkout
// dates.
func NewWithClock(now func() time.Time) *Inventory {
    if now == nil {
        panic("nil clock passed to NewWithClock")
    }
    return &Inventory{
        checkedOut: make(map[string]model.CheckoutRecord),
        now:        now,
    }
}

// stringID converts a numeric item identity into the decimal string
// used as the ledger key.
func stringID(id int) string { return strconv.Itoa(id) }

// IsCompartmentEmpty reports whether the compartment at pos holds no
// item.  It returns ErrInvalidPosition when pos lies outside the grid.
func (inv *Inventory) IsCompartmentEmpty(pos model.Position) (bool, error) {
    if !pos.IsValid() {
        return false, ErrInvalidPosition
    }
    inv.mu.Lock()
    defer inv.mu.Unlock()
    return inv.shelves[pos.Shelf][pos.Compartment] == nil, nil
}

// IsItemCheckedOut reports whether the ledger currently holds an entry
// for the given identity.
func (inv *Inventory) IsItemCheckedOut(itemID string) bool {
    inv.mu.Lock()
    defer inv.mu.Unlock()
    _, ok := inv.checkedOut[itemID]
    return ok
}

// AddItem places a copy of item into the compartment at pos.  The
// engine stores its own copy, so later mutation of the caller's value
// does not reach the grid.  It returns ErrInvalidPosition when pos
// lies outside the grid and ErrSlotOccupied when the compartment
// already holds an item; in both cases nothing is stored.
//
// Identity uniqueness is the caller's contract: the engine does not
// scan for duplicate identities on insert.  Callers that mint IDs
// through a single allocator get uniqueness for free.
func (inv *Inventory) AddItem(pos model.Position, item model.Item) error {
    if item == nil {
        panic("nil item passed to AddItem")
    }
    if !pos.IsValid() {
        return ErrInvalidPosition
    }
    inv.mu.Lock()
    defer inv.mu.Unlock()
    if inv.shelves[pos.Shelf][pos.Compartment] != nil {
        return ErrSlotOccupied
    }
    inv.shelves[pos.Shelf][pos.Compartment] = item.Clone()
    return nil
}

// CheckoutItem scans the grid in row-major order for the item whose
// decimal identity equals itemID, moves it into the ledger under a new
// checkout record and returns a copy of the item.  The record captures
// the custodian, a due date LoanPeriodDays from now and the
// compartment the item came from, so a later checkin can restore it.
//
// Only the grid is scanned.  An identity that exists solely in the
// ledger is reported as ErrItemNotFound, not as already checked out;
// callers that want to distinguish the two can consult
// IsItemCheckedOut first.
func (inv *Inventory) CheckoutItem(itemID, checkedOutBy string) (model.Item, error) {
    inv.mu.Lock()
    defer inv.mu.Unlock()
    for shelf := 0; shelf < model.ShelfCount; shelf++ {
        for compartment := 0; compartment < model.CompartmentCount; compartment++ {
            item := inv.shelves[shelf][compartment]
            if item == nil || stringID(item.ItemID()) != itemID {
                continue
            }
            inv.checkedOut[itemID] = model.CheckoutRecord{
                CheckedOutBy:     checkedOutBy,
                DueDate:          utils.DueDate(inv.now(), LoanPeriodDays),
                OriginalPosition: model.NewPosition(shelf, compartment),
                Item:             item,
            }
            inv.shelves[shelf][compartment] = nil
            return item.Clone(), nil
        }
    }
    return nil, ErrItemNotFound
}

// CheckinItem returns the item with the given identity from the ledger
// to the compartment it was checked out from.  It returns
// ErrNotCheckedOut when the ledger has no entry for itemID, and
// ErrSlotOccupied when the original compartment has been refilled in
// the meantime; in the occupied case the ledger entry is kept intact,
// so the checkin can be retried once the compartment is cleared.
func (inv *Inventory) CheckinItem(itemID string) error {
    inv.mu.Lock()
    defer inv.mu.Unlock()
    record, ok := inv.checkedOut[itemID]
    if !ok {
        return ErrNotCheckedOut
    }
    pos := record.OriginalPosition
    if inv.shelves[pos.Shelf][pos.Compartment] != nil {
        return ErrSlotOccupied
    }
    inv.shelves[pos.Shelf][pos.Compartment] = record.Item
    delete(inv.checkedOut, itemID)
    return nil
}

// SwapItems exchanges the contents of two occupied compartments.  It
// returns ErrInvalidPosition when either position lies outside the
// grid and ErrEmptySlot when either compartment holds nothing; in both
// cases the grid is left untouched.  Swapping a compartment with
// itself is allowed and is a no-op.
func (inv *Inventory) SwapItems(first, second model.Position) error {
    if !first.IsValid() || !second.IsValid() {
        return ErrInvalidPosition
    }
    inv.mu.Lock()
    defer inv.mu.Unlock()
    a := inv.shelves[first.Shelf][first.Compartment]
    b := inv.shelves[second.Shelf][second.Compartment]
    if a == nil || b == nil {
        return ErrEmptySlot
    }
    inv.shelves[first.Shelf][first.Compartment] = b
    inv.shelves[second.Shelf][second.Compartment] = a
    return nil
}

// CheckedOutRecord returns a snapshot of the ledger entry for itemID.
// The second return value reports whether an entry exists.  The
// snapshot carries a detached copy of the item.
func (inv *Inventory) CheckedOutRecord(itemID string) (model.CheckoutRecord, bool) {
    inv.mu.Lock()
    defer inv.mu.Unlock()
    record, ok := inv.checkedOut[itemID]
    if !ok {
        return model.CheckoutRecord{}, false
    }
    record.Item = record.Item.Clone()
    return record, true
}

// StoredItems lists every occupied compartment in row-major order.
// Each entry carries a detached copy of the item, so callers may hold
// the slice without pinning engine state.
func (inv *Inventory) StoredItems() []StoredItem {
    inv.mu.Lock()
    defer inv.mu.Unlock()
    items := make([]StoredItem, 0)
    for shelf := 0; shelf < model.ShelfCount; shelf++ {
        for compartment := 0; compartment < model.CompartmentCount; compartment++ {
            item := inv.shelves[shelf][compartment]
            if item == nil {
                continue
            }
            items = append(items, StoredItem{
                Position: model.NewPosition(shelf, compartment),
                Item:     item.Clone(),
            })
        }
    }
    return items
}

// CheckedOut lists every ledger entry sorted by key.  Each entry
// carries a detached copy of the item.
func (inv *Inventory) CheckedOut() []CheckoutEntry {
    inv.mu.Lock()
    defer inv.mu.Unlock()
    entries := make([]CheckoutEntry, 0, len(inv.checkedOut))
    for _, id := range inv.sortedCheckedOutIDs() {
        record := inv.checkedOut[id]
        record.Item = record.Item.Clone()
        entries = append(entries, CheckoutEntry{ItemID: id, Record: record})
    }
    return entries
}

// sortedCheckedOutIDs returns the ledger keys in sorted order.  The
// caller must hold the mutex.
func (inv *Inventory) sortedCheckedOutIDs() []string {
    ids := make([]string, 0, len(inv.checkedOut))
    for id := range inv.checkedOut {
        ids = append(ids, id)
    }
    sort.Strings(ids)
    return ids
}

// RenderStorage builds the storage report: a header, then one block
// per occupied compartment in row-major order giving the position and
// the item's own rendering.  When the grid is empty the header is
// followed by a single notice line.
func (inv *Inventory) RenderStorage() string {
    inv.mu.Lock()
    defer inv.mu.Unlock()
    var b strings.Builder
    b.WriteString("=== Items in Storage ===\n")
    found := false
    for shelf := 0; shelf < model.ShelfCount; shelf++ {
        for compartment := 0; compartment < model.CompartmentCount; compartment++ {
            item := inv.shelves[shelf][compartment]
            if item == nil {
                continue
            }
            found = true
            fmt.Fprintf(&b, "Shelf: %d, Compartment: %d\n", shelf, compartment)
            b.WriteString(item.Render())
            b.WriteString("\n")
        }
    }
    if !found {
        b.WriteString("No items in storage.\n")
    }
    return b.String()
}

// RenderCheckedOut builds the checked-out report: a header, then one
// block per ledger entry in sorted key order giving the identity, the
// item's rendering, the custodian, the due date and the original
// position, each block closed by a separator line.  When the ledger is
// empty the header is followed by a single notice line.
func (inv *Inventory) RenderCheckedOut() string {
    inv.mu.Lock()
    defer inv.mu.Unlock()
    var b strings.Builder
    b.WriteString("=== Checked Out Items ===\n")
    if len(inv.checkedOut) == 0 {
        b.WriteString("No items are currently checked out.\n")
        return b.String()
    }
    for _, id := range inv.sortedCheckedOutIDs() {
        record := inv.checkedOut[id]
        fmt.Fprintf(&b, "Item ID: %s\n", id)
        b.WriteString(record.Item.Render())
        b.WriteString("\n")
        fmt.Fprintf(&b, "Checked out by: %s\n", record.CheckedOutBy)
        fmt.Fprintf(&b, "Due date: %s\n", record.DueDate)
        fmt.Fprintf(&b, "Original position - Shelf: %d, Compartment: %d\n",
            record.OriginalPosition.Shelf, record.OriginalPosition.Compartment)
        b.WriteString("------------------------\n")
    }
    return b.String()
}
