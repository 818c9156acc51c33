package model

import (
    "fmt"
    "strings"
)

// Variant kinds for catalogue items. The set is closed: the storage
// engine only ever sees Books, Magazines and Movies.
const (
    KindBook     = "BOOK"
    KindMagazine = "MAGAZINE"
    KindMovie    = "MOVIE"
)

// Item is the capability surface the storage engine consumes. Every
// catalogue entry exposes a stable integer identity and a renderable
// multi-line description; everything else on a variant is opaque payload
// that must survive storage and retrieval unchanged. Clone returns a
// deep copy so the grid can take exclusive ownership of what it stores
// without aliasing the caller's value.
//
// The unexported marker keeps the variant set closed to this package, so
// the engine never has to recover a concrete type it did not store.
type Item interface {
    // ItemID returns the unique integer identity of the item.
    ItemID() int
    // Kind returns the variant tag (KindBook, KindMagazine or KindMovie).
    Kind() string
    // Render returns the human-readable description, one field per line,
    // shared fields first and variant fields after.
    Render() string
    // Clone returns an independent deep copy of the item.
    Clone() Item

    isCatalogueItem()
}

// renderShared formats the fields every catalogue item carries.
func renderShared(id int, name, description string) string {
    return fmt.Sprintf("ID: %d\nName: %s\nDescription: %s\n", id, name, description)
}

// Book is a catalogue entry for a bound volume.
//
// Fields:
//  ID            – unique integer identity.
//  Name          – shared catalogue name.
//  Description   – shared free-text description.
//  Title         – title of the book.
//  Author        – author of the book.
//  CopyrightDate – copyright date as entered, free text.
type Book struct {
    ID            int    // shared identity
    Name          string // shared catalogue name
    Description   string // shared description
    Title         string // book title
    Author        string // book author
    CopyrightDate string // copyright date, free text
}

func (b *Book) ItemID() int  { return b.ID }
func (b *Book) Kind() string { return KindBook }

// Render lists the shared fields followed by the book-specific ones.
func (b *Book) Render() string {
    return renderShared(b.ID, b.Name, b.Description) +
        fmt.Sprintf("Title: %s\nAuthor: %s\nCopyright Date: %s\n", b.Title, b.Author, b.CopyrightDate)
}

// Clone returns an independent copy of the book.
func (b *Book) Clone() Item {
    cp := *b
    return &cp
}

func (b *Book) isCatalogueItem() {}

// Magazine is a catalogue entry for a periodical issue.
//
// Fields:
//  ID          – unique integer identity.
//  Name        – shared catalogue name.
//  Description – shared free-text description.
//  Edition     – edition identifier of the issue.
//  Title       – title of the main article.
type Magazine struct {
    ID          int    // shared identity
    Name        string // shared catalogue name
    Description string // shared description
    Edition     string // edition identifier
    Title       string // title of the main article
}

func (m *Magazine) ItemID() int  { return m.ID }
func (m *Magazine) Kind() string { return KindMagazine }

// Render lists the shared fields followed by the magazine-specific ones.
func (m *Magazine) Render() string {
    return renderShared(m.ID, m.Name, m.Description) +
        fmt.Sprintf("Edition: %s\nTitle: %s\n", m.Edition, m.Title)
}

// Clone returns an independent copy of the magazine.
func (m *Magazine) Clone() Item {
    cp := *m
    return &cp
}

func (m *Magazine) isCatalogueItem() {}

// Movie is a catalogue entry for a film.
//
// Fields:
//  ID          – unique integer identity.
//  Name        – shared catalogue name.
//  Description – shared free-text description.
//  Title       – film title.
//  Director    – film director.
//  MainActors  – main cast, one entry per actor.
type Movie struct {
    ID          int      // shared identity
    Name        string   // shared catalogue name
    Description string   // shared description
    Title       string   // film title
    Director    string   // film director
    MainActors  []string // main cast
}

func (m *Movie) ItemID() int  { return m.ID }
func (m *Movie) Kind() string { return KindMovie }

// Render lists the shared fields, the movie fields, and then the main
// actors one per line.
func (m *Movie) Render() string {
    var b strings.Builder
    b.WriteString(renderShared(m.ID, m.Name, m.Description))
    fmt.Fprintf(&b, "Title: %s\nDirector: %s\nMain Actors: \n", m.Title, m.Director)
    for _, actor := range m.MainActors {
        b.WriteString(actor)
        b.WriteString("\n")
    }
    return b.String()
}

// Clone returns an independent copy of the movie, including its own copy
// of the actor list.
func (m *Movie) Clone() Item {
    cp := *m
    cp.MainActors = append([]string(nil), m.MainActors...)
    return &cp
}

func (m *Movie) isCatalogueItem() {}
