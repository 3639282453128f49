package game

import (
	"github.com/SAMIC97/Christmas-Jeopardy/engine"
)

// BoardState is the full display-facing snapshot of a session. It is sent to
// every newly connected board client and broadcast whenever a cell retires,
// so a display can always be rebuilt from the latest one alone.
type BoardState struct {
	Phase       string          `json:"phase"`
	Categories  []BoardCategory `json:"categories"`
	Teams       []BoardTeam     `json:"teams"`
	CurrentTeam int             `json:"currentTeam"`
	Answered    int             `json:"answered"`
	Total       int             `json:"total"`
	GameOver    bool            `json:"gameOver"`
}

// BoardCategory is one column of the board with its per-value cell counts.
type BoardCategory struct {
	Name  string      `json:"name"`
	Cells []BoardCell `json:"cells"`
}

// BoardCell reports how many questions remain behind one point value. A cell
// with zero remaining renders as used.
type BoardCell struct {
	Points    int `json:"points"`
	Remaining int `json:"remaining"`
}

// BoardTeam is one team's public standing.
type BoardTeam struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Coins int    `json:"coins"`
}

// buildBoardState snapshots the engine for the display.
// Assumes lock is held by caller.
func (g *TriviaGame) buildBoardState() *BoardState {
	st := &BoardState{
		Phase:       g.Engine.Phase.String(),
		CurrentTeam: g.Engine.CurrentTeam(),
		Answered:    g.Engine.Answered,
		Total:       g.Engine.Rules.TotalQuestions,
		GameOver:    g.Engine.IsGameOver(),
	}
	for _, name := range g.Engine.Pool.CategoryNames() {
		cat := BoardCategory{Name: name}
		for _, points := range engine.PointValues {
			cat.Cells = append(cat.Cells, BoardCell{
				Points:    points,
				Remaining: g.Engine.Pool.Remaining(name, points),
			})
		}
		st.Categories = append(st.Categories, cat)
	}
	for _, team := range g.Engine.Roster.Teams {
		st.Teams = append(st.Teams, BoardTeam{
			Name:  team.Name,
			Score: team.Score,
			Coins: team.Coins,
		})
	}
	return st
}

// Snapshot returns the current board state for a freshly connected client.
func (g *TriviaGame) Snapshot() *BoardState {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.buildBoardState()
}
