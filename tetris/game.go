package tetris

import "reflect"

// Landing describes what happened when a piece stopped falling.
type Landing struct {
	// Piece is the piece as it landed.
	Piece Piece
	// Distance is the number of rows a hard drop travelled.
	Distance int
	// Rows are the cleared row indexes before the collapse, bottom first.
	Rows []int
	// Points awarded for the cleared rows.
	Points int
	// GameOver is set when the landing, or the spawn that followed it, ended
	// the round.
	GameOver bool
}

// Cleared returns the number of rows the landing removed.
func (l *Landing) Cleared() int {
	return len(l.Rows)
}

// Game is the grid/piece kernel of a single round. It is synchronous and not
// safe for concurrent use; the caller serializes every operation.
type Game struct {
	cfg       Config
	grid      *Grid
	piece     Piece
	active    bool
	moving    bool
	state     State
	queue     []Kind
	score     *ScoreKeeper
	listeners []Listener
	spawned   int
}

// NewGame validates cfg and returns a game in StateEmpty. Call Start to
// begin a round.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	score := &ScoreKeeper{}
	return &Game{
		cfg:       cfg,
		grid:      NewGrid(cfg.Cols, cfg.Rows, cfg.HiddenRows),
		state:     StateEmpty,
		score:     score,
		listeners: []Listener{score},
	}, nil
}

// AddListener subscribes l to game notifications.
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

// RemoveListener unsubscribes a listener previously passed to AddListener and
// reports whether it was found. Listeners are matched by identity, so only
// comparable listeners (pointers, typically) can be removed.
func (g *Game) RemoveListener(l Listener) bool {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return false
	}
	for i, existing := range g.listeners {
		if existing == l {
			g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Config returns the configuration the game runs with.
func (g *Game) Config() Config { return g.cfg }

// Grid returns the live grid. Editing it between operations is allowed (puzzle
// setups, tests); use Clone for scratch work.
func (g *Game) Grid() *Grid { return g.grid }

// State returns the current phase of the round.
func (g *Game) State() State { return g.state }

// Score returns the points scored this round.
func (g *Game) Score() int { return g.score.Score() }

// Lines returns the rows cleared this round.
func (g *Game) Lines() int { return g.score.Lines() }

// Spawned returns how many pieces have entered the grid this round.
func (g *Game) Spawned() int { return g.spawned }

// Moving reports whether a two-phase descent is in progress.
func (g *Game) Moving() bool { return g.moving }

// Piece returns a copy of the active piece, if any.
func (g *Game) Piece() (Piece, bool) {
	if !g.active {
		return Piece{}, false
	}
	p := g.piece
	p.Shape = p.Shape.Clone()
	return p, true
}

// Preview returns the queued kinds, next first.
func (g *Game) Preview() []Kind {
	out := make([]Kind, len(g.queue))
	copy(out, g.queue)
	return out
}

// Start clears the grid, the queue and the score, and spawns the first piece.
func (g *Game) Start() {
	g.reset()
	g.spawn()
}

// Stop clears the grid, the queue and the score and leaves the game empty.
func (g *Game) Stop() {
	g.reset()
}

// Resize changes the visible dimensions and stops the round. Hidden rows are
// kept.
func (g *Game) Resize(cols, rows int) error {
	if err := validateSize(cols, rows); err != nil {
		return err
	}
	g.cfg.Cols = cols
	g.cfg.Rows = rows
	g.grid = NewGrid(cols, rows, g.cfg.HiddenRows)
	g.reset()
	return nil
}

// Spawn brings in the next piece after a deferred landing. It returns false
// if no spawn is pending or the spawn position is blocked, which ends the
// round.
func (g *Game) Spawn() bool {
	if g.state != StateLanded && g.state != StateLineClear {
		return false
	}
	return g.spawn()
}

// Move shifts the piece one column. While a descent is in motion the target
// column must also be free one row lower. A rejected move changes nothing.
func (g *Game) Move(dir Direction) bool {
	if !g.active || (dir != Left && dir != Right) {
		g.notifyInvalidMove()
		return false
	}

	p := g.piece
	x := p.X + int(dir)
	if g.grid.Intersects(p.Shape, x, p.Y) || (g.moving && g.grid.Intersects(p.Shape, x, p.Y+1)) {
		g.notifyInvalidMove()
		return false
	}

	g.piece.X = x
	for _, l := range g.listeners {
		l.OnMove(dir)
	}
	return true
}

// Rotate turns the piece a quarter in place. A rotation that would collide is
// rejected and changes nothing.
func (g *Game) Rotate(dir Direction) bool {
	if !g.active || (dir != Left && dir != Right) {
		g.notifyInvalidMove()
		return false
	}

	rotated := g.piece.rotated(dir)
	if g.grid.Intersects(rotated.Shape, rotated.X, rotated.Y) {
		g.notifyInvalidMove()
		return false
	}

	g.piece = rotated
	for _, l := range g.listeners {
		l.OnRotate(dir)
	}
	return true
}

// BeginDescent starts moving the piece one row down. If the row below is
// blocked the piece lands instead and the landing is returned. Calling it
// again before CompleteDescent is a no-op that reports true.
func (g *Game) BeginDescent() (bool, *Landing) {
	if !g.active {
		return false, nil
	}
	if g.moving {
		return true, nil
	}

	p := g.piece
	if g.grid.Intersects(p.Shape, p.X, p.Y+1) {
		return false, g.land(0)
	}

	g.moving = true
	return true, nil
}

// CompleteDescent finishes a descent started with BeginDescent. The target
// row is checked again since the piece may have rotated meanwhile; if it is
// now blocked the piece stays put and the next descent will land it.
func (g *Game) CompleteDescent() bool {
	if !g.active || !g.moving {
		return false
	}
	g.moving = false

	p := g.piece
	if g.grid.Intersects(p.Shape, p.X, p.Y+1) {
		return false
	}
	g.piece.Y++
	return true
}

// Descend moves the piece one row down, or lands it when the row below is
// blocked.
func (g *Game) Descend() (bool, *Landing) {
	ok, landing := g.BeginDescent()
	if !ok {
		return false, landing
	}
	return g.CompleteDescent(), nil
}

// HardDrop moves the piece to its lowest legal row and lands it. It returns
// nil when there is no active piece.
func (g *Game) HardDrop() *Landing {
	if !g.active {
		return nil
	}
	g.moving = false

	y := g.DropPosition()
	distance := y - g.piece.Y
	g.piece.Y = y
	return g.land(distance)
}

// DropPosition returns the row a hard drop would land the piece on, or -1
// when there is no active piece.
func (g *Game) DropPosition() int {
	if !g.active {
		return -1
	}
	p := g.piece
	y := p.Y
	for !g.grid.Intersects(p.Shape, p.X, y+1) {
		y++
	}
	return y
}

func (g *Game) reset() {
	g.grid.Reset()
	g.queue = g.queue[:0]
	g.score.Reset()
	g.active = false
	g.moving = false
	g.spawned = 0
	g.state = StateEmpty
}

func (g *Game) fillQueue() {
	for len(g.queue) <= g.cfg.Previews {
		g.queue = append(g.queue, g.cfg.Randomizer.Next())
	}
}

func (g *Game) spawn() bool {
	g.fillQueue()
	kind := g.queue[0]
	g.queue = append(g.queue[:0], g.queue[1:]...)

	shape := kind.Shape()
	p := Piece{
		Kind:  kind,
		Shape: shape,
		X:     (g.grid.Cols() - shape.Size()) / 2,
		Y:     0,
		Color: kind.Color(),
	}

	if g.grid.Intersects(p.Shape, p.X, p.Y) {
		g.gameOver()
		return false
	}

	g.piece = p
	g.active = true
	g.moving = false
	g.state = StateFalling
	g.spawned++

	for _, l := range g.listeners {
		l.OnSpawn(p)
	}
	return true
}

// land merges the piece and clears completed rows. A piece that never left
// the spawn row ends the round without merging.
func (g *Game) land(distance int) *Landing {
	p := g.piece
	landing := &Landing{Piece: p, Distance: distance}

	g.active = false
	g.moving = false

	if p.Y == 0 {
		landing.GameOver = true
		g.gameOver()
		return landing
	}

	g.grid.Merge(p)
	landing.Rows = g.grid.ClearRows(p.Y, p.Bottom())
	landing.Points = Award(len(landing.Rows))

	if n := len(landing.Rows); n > 0 {
		g.state = StateLineClear
		for _, l := range g.listeners {
			l.OnRowsEliminated(n)
		}
	} else {
		g.state = StateLanded
	}

	for _, l := range g.listeners {
		l.OnDropped()
	}

	if !g.cfg.DeferSpawn && !g.spawn() {
		landing.GameOver = true
	}
	return landing
}

func (g *Game) gameOver() {
	g.active = false
	g.moving = false
	g.queue = g.queue[:0]
	g.state = StateGameOver
	for _, l := range g.listeners {
		l.OnGameOver()
	}
}

func (g *Game) notifyInvalidMove() {
	for _, l := range g.listeners {
		l.OnInvalidMove()
	}
}
