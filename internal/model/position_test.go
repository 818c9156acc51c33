package model

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestPosition_IsValid(t *testing.T) {
    tests := []struct {
        name        string
        shelf       int
        compartment int
        want        bool
    }{
        {"origin", 0, 0, true},
        {"last shelf last compartment", 2, 14, true},
        {"middle of the grid", 1, 7, true},
        {"negative shelf", -1, 0, false},
        {"negative compartment", 0, -1, false},
        {"shelf past the wall", 3, 0, false},
        {"compartment past the shelf", 0, 15, false},
        {"both out of range", 3, 15, false},
        {"far out of range", 100, 100, false},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            pos := NewPosition(tt.shelf, tt.compartment)
            assert.Equal(t, tt.want, pos.IsValid())
        })
    }
}

func TestPosition_NewPositionKeepsIndices(t *testing.T) {
    pos := NewPosition(2, 9)
    assert.Equal(t, 2, pos.Shelf)
    assert.Equal(t, 9, pos.Compartment)
}

func TestPosition_Equal(t *testing.T) {
    assert.True(t, NewPosition(1, 4).Equal(NewPosition(1, 4)))
    assert.False(t, NewPosition(1, 4).Equal(NewPosition(4, 1)))
    assert.False(t, NewPosition(0, 0).Equal(NewPosition(0, 1)))
}

func TestPosition_String(t *testing.T) {
    assert.Equal(t, "Shelf: 1, Compartment: 12", NewPosition(1, 12).String())
}
