package web

import (
    "bytes"
    "fmt"
    "html/template"
    "net/http"
    "time"

    "github.com/jaminalder/tictactoe-history/internal/app"
    "github.com/jaminalder/tictactoe-history/internal/domain"
)

type templates struct {
    index *template.Template
    game  *template.Template
    frag  *template.Template
}

func funcs() template.FuncMap {
    return template.FuncMap{
        "cellClass": func(c domain.CellView) string {
            if c.Winning {
                return "square win"
            }
            return "square"
        },
    }
}

func loadTemplates() *templates {
    base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Tic-Tac-Toe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<style>
.board-row{display:flex}
.square{width:3em;height:3em;font-size:1.5em;font-weight:bold}
.square.win{background:#ffd54f}
.game{display:flex;gap:2em}
.moves .current button{font-weight:bold}
</style>
</head><body>{{template "content" .}}</body></html>`))
    template.Must(base.New("game").Parse(gameTemplate))
    index := template.Must(base.Clone())
    template.Must(index.New("content").Parse(`<h1>Tic-Tac-Toe</h1><form action="/game" method="post"><button>New game</button></form>`))
    page := template.Must(base.Clone())
    template.Must(page.New("content").Parse(`{{template "game" .}}`))
    // Standalone game template used for htmx fragment responses
    frag := template.Must(template.New("game_only").Funcs(funcs()).Parse(gameTemplate))
    return &templates{index: index, game: page, frag: frag}
}

func renderTemplate(t *template.Template, name string, data any) ([]byte, error) {
    var buf bytes.Buffer
    var err error
    if name == "" {
        err = t.Execute(&buf, data)
    } else {
        err = t.ExecuteTemplate(&buf, name, data)
    }
    if err != nil {
        return nil, fmt.Errorf("render %s: %w", t.Name(), err)
    }
    return buf.Bytes(), nil
}

// gameData is what gameTemplate renders.
type gameData struct {
    ID   string
    View domain.View
}

func newGameData(gs app.GameState) gameData {
    return gameData{ID: gs.ID, View: gs.View()}
}

const gameTemplate = `
<div id="game" class="game">
  <div class="game-board">
    <div class="status">{{.View.Status}}</div>
    {{range .View.Rows}}
    <div class="board-row">
      {{range .}}
      <form hx-post="/game/{{$.ID}}/cells/{{.Index}}" hx-target="#game" hx-swap="outerHTML" action="/game/{{$.ID}}/cells/{{.Index}}" method="post">
        <button type="submit" class="{{cellClass .}}" title="({{.Coord.Row}},{{.Coord.Col}})">{{.Mark}}</button>
      </form>
      {{end}}
    </div>
    {{end}}
  </div>
  <div class="game-info">
    <form hx-post="/game/{{.ID}}/sort" hx-target="#game" hx-swap="outerHTML" action="/game/{{.ID}}/sort" method="post">
      <button type="submit">Sort Moves</button>
    </form>
    <ul class="moves">
      {{range .View.Moves}}
      <li{{if .Current}} class="current"{{end}}>
        <form hx-post="/game/{{$.ID}}/moves/{{.Move}}" hx-target="#game" hx-swap="outerHTML" action="/game/{{$.ID}}/moves/{{.Move}}" method="post">
          <button type="submit">{{.Label}}</button>
        </form>
      </li>
      {{end}}
    </ul>
    <form hx-post="/game/{{.ID}}/restart" hx-target="#game" hx-swap="outerHTML" action="/game/{{.ID}}/restart" method="post">
      <button type="submit">Restart</button>
    </form>
  </div>
</div>
`

const gameCookie = "game_id"

// rememberGame stores the game ID so "/" can resume it.
func rememberGame(w http.ResponseWriter, id string, ttl time.Duration) {
    http.SetCookie(w, &http.Cookie{
        Name:     gameCookie,
        Value:    id,
        Path:     "/",
        MaxAge:   int(ttl / time.Second),
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
    })
}

func rememberedGame(r *http.Request) string {
    if c, err := r.Cookie(gameCookie); err == nil {
        return c.Value
    }
    return ""
}
