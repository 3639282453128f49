// Package engine implements the Christmas Jeopardy turn and steal rules.
//
// The package is dependency-free and fully synchronous: every operation is a
// discrete call on GameState, and time only moves when the caller delivers
// Tick. Presentation concerns live entirely outside this package — after each
// call the service layer inspects Phase and LastResolution and decides what
// to display.
package engine

// MaxTeams bounds the team registry.
const MaxTeams = 10

// PointValues are the board's point buckets, lowest to highest.
var PointValues = [5]int{200, 400, 600, 800, 1000}

// GameState holds the complete, self-contained state of one game session:
// the question pool, the team roster, the question timer, and the turn/steal
// phase machine that ties them together.
type GameState struct {
	Rules  Rules
	Pool   Pool
	Roster Roster
	Timer  Timer

	Phase Phase

	// Active is the question currently in play. It stays readable after the
	// question resolves (HasActive false) so the answer can still be shown.
	Active    Question
	HasActive bool

	// Stealer is the team attempting the current steal, -1 outside one.
	Stealer int

	stealQueue []int
	stealPos   int

	// Answered counts fully resolved questions for the session.
	Answered int

	// Last summarizes the most recent resolution for the caller.
	Last LastResolution
}

// NewGame builds a session over a cloned question set. The seed drives
// uniform-random draws when several questions share a board cell.
func NewGame(seed uint64, rules Rules, source []Category, teamNames []string) GameState {
	return GameState{
		Rules:   rules,
		Pool:    NewPool(source, seed),
		Roster:  NewRoster(teamNames, rules.StartingCoins),
		Phase:   PhaseAwaitingSelection,
		Stealer: -1,
	}
}

// IsGameOver reports whether the configured question total has been reached.
func (g *GameState) IsGameOver() bool { return g.Phase == PhaseGameOver }

// CurrentTeam returns the index of the team whose turn it is.
func (g *GameState) CurrentTeam() int { return g.Roster.Current }

// Winners returns the final top score and the teams that reached it.
func (g *GameState) Winners() (int, []string) { return g.Roster.Winners() }

// Reset forces the session back to a fresh board: full pool, zeroed scores,
// restored coin stakes, first team to pick. It is allowed from any phase and
// discards any live question or steal round.
func (g *GameState) Reset() {
	g.Pool.Reset()
	for i := range g.Roster.Teams {
		g.Roster.Teams[i].Score = 0
		g.Roster.Teams[i].Coins = g.Rules.StartingCoins
	}
	g.Roster.Current = 0
	g.Timer = Timer{}
	g.Active = Question{}
	g.HasActive = false
	g.Stealer = -1
	g.stealQueue = nil
	g.stealPos = 0
	g.Answered = 0
	g.Last = LastResolution{}
	g.Phase = PhaseAwaitingSelection
}
