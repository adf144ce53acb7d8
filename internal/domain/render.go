package domain

import "fmt"

// CellView is one square of the rendered board.
type CellView struct {
    Index   int
    Coord   Coord
    Mark    string
    Winning bool
    // Playable is false when a click on the cell would be ignored.
    Playable bool
}

// MoveView is one entry of the rendered move list.
type MoveView struct {
    Move    int
    Label   string
    Current bool
}

// View is everything a surface needs to draw one game.
type View struct {
    Status      string
    Outcome     Outcome
    Rows        [3][3]CellView
    Moves       []MoveView
    Descending  bool
    Turn        string
    CurrentMove int
}

// Render builds the view of c. It reads c and never modifies it.
func Render(c *Controller) View {
    b := c.Current()
    win, won := EvaluateWinner(b)
    v := View{
        Status:      Status(b, c.XIsNext()),
        Outcome:     OutcomeOf(b),
        Moves:       MoveList(c),
        Descending:  c.Descending(),
        Turn:        c.Turn().String(),
        CurrentMove: c.CurrentMove(),
    }
    for i, cell := range b {
        v.Rows[i/3][i%3] = CellView{
            Index:    i,
            Coord:    CoordOf(i),
            Mark:     cell.String(),
            Winning:  won && win.Has(i),
            Playable: !won && cell == Empty,
        }
    }
    return v
}

// MoveList labels every history entry, reversed when the controller is in
// descending order.
func MoveList(c *Controller) []MoveView {
    n := c.Len()
    moves := make([]MoveView, n)
    for m := 0; m < n; m++ {
        moves[m] = MoveView{Move: m, Label: moveLabel(c, m), Current: m == c.CurrentMove()}
    }
    if c.Descending() {
        for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
            moves[i], moves[j] = moves[j], moves[i]
        }
    }
    return moves
}

func moveLabel(c *Controller, m int) string {
    switch {
    case m == 0:
        return "Go to game start"
    case m == c.Len()-1:
        at := c.LastCoord()
        return fmt.Sprintf("You are at move #%d (%d,%d)", m, at.Row, at.Col)
    default:
        at, _ := c.CoordAt(m)
        return fmt.Sprintf("Go to move #%d (%d,%d)", m, at.Row, at.Col)
    }
}
