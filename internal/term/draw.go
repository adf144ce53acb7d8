package term

import (
    "fmt"
    "strconv"
    "strings"

    "github.com/muesli/termenv"

    "github.com/jaminalder/tictactoe-history/internal/domain"
)

var (
    winColor  = "#50FA7B"
    xColor    = "#8BE9FD"
    oColor    = "#FF79C6"
    dimColor  = "#6272A4"
    headColor = "#F1FA8C"
)

// Draw renders v as text styled for o's color profile. Empty cells show
// their 1-9 key.
func Draw(o *termenv.Output, v domain.View) string {
    var sb strings.Builder
    sb.WriteString(o.String(v.Status).Foreground(o.Color(headColor)).Bold().String())
    sb.WriteString("\n\n")
    for r, row := range v.Rows {
        for c, cell := range row {
            sb.WriteString(" ")
            sb.WriteString(drawCell(o, cell))
            if c < 2 {
                sb.WriteString(" |")
            }
        }
        sb.WriteString("\n")
        if r < 2 {
            sb.WriteString("---+---+---\n")
        }
    }
    sb.WriteString("\n")
    for _, m := range v.Moves {
        marker := "  "
        if m.Current {
            marker = "> "
        }
        line := fmt.Sprintf("%s%2d. %s", marker, m.Move, m.Label)
        if m.Current {
            line = o.String(line).Bold().String()
        }
        sb.WriteString(line)
        sb.WriteString("\n")
    }
    return sb.String()
}

func drawCell(o *termenv.Output, cell domain.CellView) string {
    if cell.Mark == "" {
        return o.String(strconv.Itoa(cell.Index + 1)).Foreground(o.Color(dimColor)).String()
    }
    st := o.String(cell.Mark)
    switch {
    case cell.Winning:
        st = st.Foreground(o.Color(winColor)).Bold().Underline()
    case cell.Mark == "X":
        st = st.Foreground(o.Color(xColor))
    default:
        st = st.Foreground(o.Color(oColor))
    }
    return st.String()
}
