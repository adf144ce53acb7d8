package app

import (
    "context"
    "errors"
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/jaminalder/tictactoe-history/internal/domain"
)

type fakeClock struct {
    mu sync.Mutex
    t  time.Time
}

func (c *fakeClock) Now() time.Time {
    c.mu.Lock()
    defer c.mu.Unlock()
    return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
    c.mu.Lock()
    c.t = c.t.Add(d)
    c.mu.Unlock()
}

func TestCreateAndGet(t *testing.T) {
    s := NewService()
    gs, err := s.CreateGame()
    if err != nil {
        t.Fatalf("CreateGame error: %v", err)
    }
    if gs.ID == "" {
        t.Fatalf("expected non-empty game ID")
    }
    if gs.Game.Turn() != domain.X {
        t.Fatalf("expected initial turn X")
    }
    if gs.Created.IsZero() || gs.Updated.IsZero() {
        t.Fatalf("expected timestamps to be set")
    }
    got, ok := s.Get(gs.ID)
    if !ok || got.ID != gs.ID {
        t.Fatalf("Get should find created game")
    }
    if _, ok := s.Get("missing"); ok {
        t.Fatalf("Get should not find unknown game")
    }
}

func TestClickPlaysAndIgnores(t *testing.T) {
    s := NewService()
    gs, _ := s.CreateGame()

    st, played, err := s.Click(gs.ID, 4)
    require.NoError(t, err)
    require.True(t, played)
    assert.Equal(t, domain.X, st.Game.Current()[4])
    assert.Equal(t, domain.O, st.Game.Turn())

    st, played, err = s.Click(gs.ID, 4)
    require.NoError(t, err)
    assert.False(t, played, "occupied cell must be ignored")
    assert.Equal(t, 2, st.Game.Len())

    _, _, err = s.Click("missing", 0)
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestReturnedStateIsACopy(t *testing.T) {
    s := NewService()
    gs, _ := s.CreateGame()
    _, _, err := s.Click(gs.ID, 0)
    require.NoError(t, err)

    got, _ := s.Get(gs.ID)
    got.Game.Click(8)

    again, _ := s.Get(gs.ID)
    assert.Equal(t, 2, again.Game.Len())
    assert.Equal(t, domain.Empty, again.Game.Current()[8])
}

func TestJumpSortRestart(t *testing.T) {
    s := NewService()
    gs, _ := s.CreateGame()
    for _, i := range []int{0, 1, 2} {
        _, _, err := s.Click(gs.ID, i)
        require.NoError(t, err)
    }

    st, err := s.JumpTo(gs.ID, 1)
    require.NoError(t, err)
    assert.Equal(t, 1, st.Game.CurrentMove())

    _, err = s.JumpTo(gs.ID, 10)
    assert.ErrorIs(t, err, domain.ErrMoveOutOfRange)
    st, _ = s.Get(gs.ID)
    assert.Equal(t, 1, st.Game.CurrentMove(), "failed jump must not move")

    st, err = s.ToggleSortOrder(gs.ID)
    require.NoError(t, err)
    assert.True(t, st.Game.Descending())
    assert.Equal(t, 3, st.View().Moves[0].Move)

    st, err = s.Restart(gs.ID)
    require.NoError(t, err)
    assert.Equal(t, 1, st.Game.Len())
    assert.False(t, st.Game.Descending())

    _, err = s.ToggleSortOrder("missing")
    assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSweepRemovesIdleGames(t *testing.T) {
    clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
    s := NewService(WithClock(clock.Now))
    idle, _ := s.CreateGame()
    busy, _ := s.CreateGame()

    clock.Advance(20 * time.Minute)
    _, _, err := s.Click(busy.ID, 0)
    require.NoError(t, err)
    clock.Advance(15 * time.Minute)

    assert.Equal(t, 1, s.Sweep(30*time.Minute))
    _, ok := s.Get(idle.ID)
    assert.False(t, ok)
    _, ok = s.Get(busy.ID)
    assert.True(t, ok)
    assert.Equal(t, 1, s.Len())
}

func TestRunSweeperStopsWithContext(t *testing.T) {
    clock := &fakeClock{t: time.Now()}
    s := NewService(WithClock(clock.Now))
    _, _ = s.CreateGame()
    clock.Advance(time.Hour)

    ctx, cancel := context.WithCancel(context.Background())
    done := make(chan struct{})
    go func() {
        s.RunSweeper(ctx, 5*time.Millisecond, time.Minute)
        close(done)
    }()

    require.Eventually(t, func() bool { return s.Len() == 0 }, 2*time.Second, 5*time.Millisecond)
    cancel()
    select {
    case <-done:
    case <-time.After(2 * time.Second):
        t.Fatalf("sweeper did not stop after cancel")
    }
}

func TestConcurrentClicks(t *testing.T) {
    s := NewService()
    gs, _ := s.CreateGame()

    var wg sync.WaitGroup
    for i := 0; i < 9; i++ {
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            _, _, _ = s.Click(gs.ID, i)
        }(i)
    }
    wg.Wait()

    st, _ := s.Get(gs.ID)
    b := st.Game.Current()
    xs, os := b.Count(domain.X), b.Count(domain.O)
    assert.Equal(t, st.Game.CurrentMove(), xs+os)
    assert.True(t, xs == os || xs == os+1)
}
