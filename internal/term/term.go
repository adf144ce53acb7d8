// Package term is a line-oriented terminal frontend for a single game.
package term

import (
    "bufio"
    "fmt"
    "io"
    "strconv"
    "strings"

    "github.com/muesli/termenv"

    "github.com/jaminalder/tictactoe-history/internal/domain"
)

const help = "commands: 1-9 play a cell, j N jump to move N, s sort moves, r restart, q quit"

// Session plays one game against a reader and a writer.
type Session struct {
    game *domain.Controller
    out  *termenv.Output
    in   *bufio.Scanner
}

// NewSession prepares a session. With color false the board is plain ASCII.
func NewSession(in io.Reader, out io.Writer, color bool) *Session {
    profile := termenv.Ascii
    if color {
        profile = termenv.TrueColor
    }
    return &Session{
        game: domain.New(),
        out:  termenv.NewOutput(out, termenv.WithProfile(profile)),
        in:   bufio.NewScanner(in),
    }
}

// Game returns the controller driven by the session.
func (s *Session) Game() *domain.Controller { return s.game }

// Run reads commands until q or end of input.
func (s *Session) Run() error {
    s.draw()
    for {
        fmt.Fprint(s.out, "> ")
        if !s.in.Scan() {
            fmt.Fprintln(s.out)
            return s.in.Err()
        }
        quit, msg := s.exec(strings.TrimSpace(s.in.Text()))
        if quit {
            return nil
        }
        if msg != "" {
            fmt.Fprintln(s.out, msg)
            continue
        }
        s.draw()
    }
}

// exec applies one command. msg is shown instead of redrawing the board.
func (s *Session) exec(line string) (quit bool, msg string) {
    fields := strings.Fields(line)
    if len(fields) == 0 {
        return false, help
    }
    switch fields[0] {
    case "q", "quit":
        return true, ""
    case "s", "sort":
        s.game.ToggleSortOrder()
    case "r", "restart":
        s.game = domain.New()
    case "j", "jump":
        if len(fields) != 2 {
            return false, "usage: j N"
        }
        n, err := strconv.Atoi(fields[1])
        if err != nil {
            return false, "usage: j N"
        }
        if err := s.game.JumpTo(n); err != nil {
            return false, fmt.Sprintf("no move #%d", n)
        }
    case "h", "help", "?":
        return false, help
    default:
        n, err := strconv.Atoi(fields[0])
        if err != nil || n < 1 || n > 9 {
            return false, help
        }
        // Ignored clicks just redraw, like clicking an occupied square.
        s.game.Click(n - 1)
    }
    return false, ""
}

func (s *Session) draw() {
    io.WriteString(s.out, Draw(s.out, domain.Render(s.game)))
}
