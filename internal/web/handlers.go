package web

import (
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/go-chi/chi/v5"
    "go.uber.org/zap"

    "github.com/jaminalder/tictactoe-history/internal/app"
    "github.com/jaminalder/tictactoe-history/internal/domain"
)

type handlers struct {
    svc *app.Service
    tpl *templates
    log *zap.SugaredLogger
    ttl time.Duration
}

func (h *handlers) write(w http.ResponseWriter, status int, body []byte, err error) {
    if err != nil {
        h.log.Errorw("render failed", "error", err)
        http.Error(w, "internal error", http.StatusInternalServerError)
        return
    }
    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    w.WriteHeader(status)
    _, _ = w.Write(body)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
    if id := rememberedGame(r); id != "" {
        if _, ok := h.svc.Get(id); ok {
            http.Redirect(w, r, "/game/"+id, http.StatusSeeOther)
            return
        }
    }
    body, err := renderTemplate(h.tpl.index, "base", nil)
    h.write(w, http.StatusOK, body, err)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
    gs, err := h.svc.CreateGame()
    if err != nil {
        http.Error(w, "failed to create", http.StatusInternalServerError)
        return
    }
    rememberGame(w, gs.ID, h.ttl)
    http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
    gs, ok := h.svc.Get(chi.URLParam(r, "id"))
    if !ok {
        http.NotFound(w, r)
        return
    }
    rememberGame(w, gs.ID, h.ttl)
    body, err := renderTemplate(h.tpl.game, "base", newGameData(*gs))
    h.write(w, http.StatusOK, body, err)
}

func (h *handlers) click(w http.ResponseWriter, r *http.Request) {
    index, err := strconv.Atoi(chi.URLParam(r, "index"))
    if err != nil || index < 0 || index > 8 {
        http.Error(w, "invalid cell", http.StatusBadRequest)
        return
    }
    gs, _, err := h.svc.Click(chi.URLParam(r, "id"), index)
    h.respond(w, r, gs, err)
}

func (h *handlers) jump(w http.ResponseWriter, r *http.Request) {
    move, err := strconv.Atoi(chi.URLParam(r, "move"))
    if err != nil {
        http.Error(w, "invalid move", http.StatusBadRequest)
        return
    }
    gs, err := h.svc.JumpTo(chi.URLParam(r, "id"), move)
    h.respond(w, r, gs, err)
}

func (h *handlers) sort(w http.ResponseWriter, r *http.Request) {
    gs, err := h.svc.ToggleSortOrder(chi.URLParam(r, "id"))
    h.respond(w, r, gs, err)
}

func (h *handlers) restart(w http.ResponseWriter, r *http.Request) {
    gs, err := h.svc.Restart(chi.URLParam(r, "id"))
    h.respond(w, r, gs, err)
}

// respond sends the game fragment to htmx and redirects plain form posts
// back to the game page.
func (h *handlers) respond(w http.ResponseWriter, r *http.Request, gs *app.GameState, err error) {
    switch {
    case errors.Is(err, app.ErrNotFound):
        http.NotFound(w, r)
        return
    case errors.Is(err, domain.ErrMoveOutOfRange):
        http.Error(w, "move out of range", http.StatusBadRequest)
        return
    case err != nil:
        h.log.Errorw("game update failed", "error", err)
        http.Error(w, "internal error", http.StatusInternalServerError)
        return
    }
    if r.Header.Get("HX-Request") != "true" {
        http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
        return
    }
    body, rerr := renderTemplate(h.tpl.frag, "", newGameData(*gs))
    h.write(w, http.StatusOK, body, rerr)
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "text/plain; charset=utf-8")
    _, _ = w.Write([]byte("ok\n"))
}
