package domain

// Cell represents a board cell state.
type Cell uint8

const (
    Empty Cell = iota
    X
    O
)

// String returns the mark shown for the cell, or "" when empty.
func (c Cell) String() string {
    switch c {
    case X:
        return "X"
    case O:
        return "O"
    default:
        return ""
    }
}

// Board is a fixed 3x3 board stored row-major. It is a value type, so every
// copy is an independent snapshot.
type Board [9]Cell

// Full reports whether no empty cell remains.
func (b Board) Full() bool {
    for _, c := range b {
        if c == Empty {
            return false
        }
    }
    return true
}

// Count returns how many cells hold the given mark.
func (b Board) Count(side Cell) int {
    n := 0
    for _, c := range b {
        if c == side {
            n++
        }
    }
    return n
}

// Coord is a 1-based board position.
type Coord struct {
    Row int
    Col int
}

// CoordOf converts a cell index 0..8 to its 1-based row and column.
func CoordOf(index int) Coord {
    return Coord{Row: index/3 + 1, Col: index%3 + 1}
}

// Lines lists every winning triple in scan order: rows top-to-bottom,
// columns left-to-right, then the two diagonals.
var Lines = [8][3]int{
    // rows
    {0, 1, 2}, {3, 4, 5}, {6, 7, 8},
    // cols
    {0, 3, 6}, {1, 4, 7}, {2, 5, 8},
    // diags
    {0, 4, 8}, {2, 4, 6},
}

// Win describes a completed line.
type Win struct {
    Side  Cell
    Cells [3]int
}

// Has reports whether index is one of the winning cells.
func (w Win) Has(index int) bool {
    for _, i := range w.Cells {
        if i == index {
            return true
        }
    }
    return false
}

// EvaluateWinner returns the first completed line in Lines order.
func EvaluateWinner(b Board) (Win, bool) {
    for _, ln := range Lines {
        a := b[ln[0]]
        if a != Empty && a == b[ln[1]] && a == b[ln[2]] {
            return Win{Side: a, Cells: ln}, true
        }
    }
    return Win{}, false
}

// Outcome is the state of a single game position.
type Outcome uint8

const (
    InProgress Outcome = iota
    Won
    Draw
)

func (o Outcome) String() string {
    switch o {
    case Won:
        return "won"
    case Draw:
        return "draw"
    default:
        return "in progress"
    }
}

// OutcomeOf derives the game state of a snapshot.
func OutcomeOf(b Board) Outcome {
    if _, ok := EvaluateWinner(b); ok {
        return Won
    }
    if b.Full() {
        return Draw
    }
    return InProgress
}

// Status returns the status line shown above the board.
func Status(b Board, xIsNext bool) string {
    if w, ok := EvaluateWinner(b); ok {
        return "Winner: " + w.Side.String()
    }
    if b.Full() {
        return "It's a draw."
    }
    if xIsNext {
        return "Next player: X"
    }
    return "Next player: O"
}
