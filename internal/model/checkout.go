package model

// CheckoutRecord bundles everything the library tracks about an item
// while it is out of the building. The record owns the item for as long
// as it exists; the compartment the item came from stays empty and is
// remembered so a checkin can put the item back where it belongs.
//
// Fields:
//  CheckedOutBy     – free-text name of the person holding the item.
//  DueDate          – return deadline in YYYY-MM-DD form, derived at
//                     checkout time.
//  OriginalPosition – the compartment the item occupied before checkout.
//  Item             – the item itself, exclusively owned by this record.
type CheckoutRecord struct {
    CheckedOutBy     string   // custodian name, not validated
    DueDate          string   // derived due date, YYYY-MM-DD
    OriginalPosition Position // compartment to restore the item to
    Item             Item     // the checked-out item
}
