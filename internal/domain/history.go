package domain

import (
    "errors"
    "fmt"
)

// ErrMoveOutOfRange is returned by JumpTo for an index outside the history.
var ErrMoveOutOfRange = errors.New("move out of range")

// Controller owns the move history of one game and the index of the
// snapshot currently displayed. The zero value is not usable; call New.
type Controller struct {
    history    []Board
    coords     []Coord // coords[m-1] was played to reach history[m]
    current    int
    last       Coord
    descending bool
}

// New returns a controller holding only the empty board, X to move.
func New() *Controller {
    return &Controller{history: []Board{{}}}
}

// Play discards any snapshots after the current one, appends next, and makes
// it current. Legality is the caller's concern; see Click.
func (c *Controller) Play(next Board, at Coord) {
    c.history = append(c.history[:c.current+1:c.current+1], next)
    c.coords = append(c.coords[:c.current:c.current], at)
    c.current = len(c.history) - 1
    c.last = at
}

// JumpTo makes history[move] the displayed snapshot. History is untouched.
func (c *Controller) JumpTo(move int) error {
    if move < 0 || move >= len(c.history) {
        return fmt.Errorf("jump to %d of %d: %w", move, len(c.history), ErrMoveOutOfRange)
    }
    c.current = move
    return nil
}

// ToggleSortOrder flips the display order of the move list.
func (c *Controller) ToggleSortOrder() { c.descending = !c.descending }

// Click plays the current player's mark at index and reports whether a move
// was made. Clicks on occupied cells, on a decided board, or outside the
// board are ignored.
func (c *Controller) Click(index int) bool {
    if index < 0 || index >= len(Board{}) {
        return false
    }
    cur := c.Current()
    if cur[index] != Empty {
        return false
    }
    if _, won := EvaluateWinner(cur); won {
        return false
    }
    next := cur
    next[index] = c.Turn()
    c.Play(next, CoordOf(index))
    return true
}

// Current returns the displayed snapshot.
func (c *Controller) Current() Board { return c.history[c.current] }

// CurrentMove returns the index of the displayed snapshot.
func (c *Controller) CurrentMove() int { return c.current }

// Len returns the number of snapshots, including the empty board.
func (c *Controller) Len() int { return len(c.history) }

// Snapshot returns history[move].
func (c *Controller) Snapshot(move int) (Board, error) {
    if move < 0 || move >= len(c.history) {
        return Board{}, fmt.Errorf("snapshot %d of %d: %w", move, len(c.history), ErrMoveOutOfRange)
    }
    return c.history[move], nil
}

// CoordAt returns the coordinate played to reach history[move]. Move 0 has
// no coordinate.
func (c *Controller) CoordAt(move int) (Coord, bool) {
    if move < 1 || move > len(c.coords) {
        return Coord{}, false
    }
    return c.coords[move-1], true
}

// LastCoord returns the coordinate of the most recent Play.
func (c *Controller) LastCoord() Coord { return c.last }

// XIsNext reports whether X moves from the displayed snapshot.
func (c *Controller) XIsNext() bool { return c.current%2 == 0 }

// Turn returns the mark to be played next.
func (c *Controller) Turn() Cell {
    if c.XIsNext() {
        return X
    }
    return O
}

// Descending reports whether the move list is shown newest first.
func (c *Controller) Descending() bool { return c.descending }

// Clone returns a deep copy that shares no storage with c.
func (c *Controller) Clone() *Controller {
    cp := *c
    cp.history = append([]Board(nil), c.history...)
    cp.coords = append([]Coord(nil), c.coords...)
    return &cp
}
