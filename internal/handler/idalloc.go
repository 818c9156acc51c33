package handler

import "sync"

// FirstItemID is the identity assigned to the first item added through
// the API or the console. Numbering continues upward from here for the
// life of the process.
const FirstItemID = 1000

// IDAllocator mints integer item identities. Identities are handed out
// once and never reclaimed: an identity consumed by an add that later
// fails stays burned, which keeps every identity ever exposed to a
// client unambiguous.
type IDAllocator struct {
    mu   sync.Mutex
    next int
}

// NewIDAllocator returns an allocator starting at FirstItemID.
func NewIDAllocator() *IDAllocator {
    return &IDAllocator{next: FirstItemID}
}

// Next returns the next identity and advances the counter.
func (a *IDAllocator) Next() int {
    a.mu.Lock()
    defer a.mu.Unlock()
    id := a.next
    a.next++
    return id
}
