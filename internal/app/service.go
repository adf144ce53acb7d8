package app

import (
    "errors"
    "fmt"
    "sync"
    "time"

    "github.com/google/uuid"
    "go.uber.org/zap"

    "github.com/jaminalder/tictactoe-history/internal/domain"
)

// Errors exposed by the service layer.
var (
    ErrNotFound = errors.New("game not found")
)

// GameState is the in-memory state tracked per game.
type GameState struct {
    ID      string
    Game    *domain.Controller
    Created time.Time
    Updated time.Time
}

// View renders the game.
func (gs GameState) View() domain.View { return domain.Render(gs.Game) }

func (gs *GameState) snapshot() *GameState {
    cp := *gs
    cp.Game = gs.Game.Clone()
    return &cp
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.SugaredLogger) Option {
    return func(s *Service) {
        if l != nil {
            s.log = l
        }
    }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
    return func(s *Service) {
        if now != nil {
            s.now = now
        }
    }
}

// Service holds one controller per game session. Every method is safe for
// concurrent use and returns copies, never the stored state.
type Service struct {
    mu    sync.Mutex
    games map[string]*GameState
    log   *zap.SugaredLogger
    now   func() time.Time
}

// NewService creates an empty service.
func NewService(opts ...Option) *Service {
    s := &Service{
        games: make(map[string]*GameState),
        log:   zap.NewNop().Sugar(),
        now:   time.Now,
    }
    for _, opt := range opts {
        opt(s)
    }
    return s
}

// CreateGame creates and registers a new game.
func (s *Service) CreateGame() (*GameState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    id := uuid.NewString()
    now := s.now()
    gs := &GameState{ID: id, Game: domain.New(), Created: now, Updated: now}
    s.games[id] = gs
    s.log.Debugw("game created", "game", id, "games", len(s.games))
    return gs.snapshot(), nil
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return nil, false
    }
    return gs.snapshot(), true
}

// Click plays the current player's mark at cell index. played is false when
// the click was ignored; that is not an error.
func (s *Service) Click(id string, index int) (gs *GameState, played bool, err error) {
    err = s.update(id, func(g *domain.Controller) error {
        played = g.Click(index)
        return nil
    }, &gs)
    if err == nil && played {
        s.log.Debugw("move played", "game", id, "cell", index, "move", gs.Game.CurrentMove(),
            "outcome", domain.OutcomeOf(gs.Game.Current()).String())
    }
    return gs, played, err
}

// JumpTo displays the snapshot at move.
func (s *Service) JumpTo(id string, move int) (*GameState, error) {
    var gs *GameState
    err := s.update(id, func(g *domain.Controller) error { return g.JumpTo(move) }, &gs)
    return gs, err
}

// ToggleSortOrder flips the move list order.
func (s *Service) ToggleSortOrder(id string) (*GameState, error) {
    var gs *GameState
    err := s.update(id, func(g *domain.Controller) error {
        g.ToggleSortOrder()
        return nil
    }, &gs)
    return gs, err
}

// Restart replaces the game's history with a fresh board.
func (s *Service) Restart(id string) (*GameState, error) {
    var gs *GameState
    err := s.update(id, func(g *domain.Controller) error {
        *g = *domain.New()
        return nil
    }, &gs)
    if err == nil {
        s.log.Debugw("game restarted", "game", id)
    }
    return gs, err
}

// update applies fn under the lock. On success out receives a copy of the
// updated state; on failure the stored state is left as fn left it, which
// for every domain operation means unchanged.
func (s *Service) update(id string, fn func(*domain.Controller) error, out **GameState) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return fmt.Errorf("game %s: %w", id, ErrNotFound)
    }
    if err := fn(gs.Game); err != nil {
        return fmt.Errorf("game %s: %w", id, err)
    }
    gs.Updated = s.now()
    *out = gs.snapshot()
    return nil
}

// Sweep removes games not updated within ttl of now and returns how many
// were removed.
func (s *Service) Sweep(ttl time.Duration) int {
    s.mu.Lock()
    defer s.mu.Unlock()
    cutoff := s.now().Add(-ttl)
    n := 0
    for id, gs := range s.games {
        if gs.Updated.Before(cutoff) {
            delete(s.games, id)
            n++
        }
    }
    if n > 0 {
        s.log.Infow("expired games removed", "removed", n, "remaining", len(s.games))
    }
    return n
}

// Len returns the number of live games.
func (s *Service) Len() int {
    s.mu.Lock()
    defer s.mu.Unlock()
    return len(s.games)
}
