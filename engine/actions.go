package engine

import (
	"fmt"
	"strings"
)

// SelectQuestion draws the cell's question, arms the timer, and opens the
// answer window. Valid only while the board is awaiting a selection.
func (g *GameState) SelectQuestion(category string, points int) error {
	if g.Phase != PhaseAwaitingSelection {
		return fmt.Errorf("cannot select a question in phase %s", g.Phase)
	}
	q, ok := g.Pool.Draw(category, points)
	if !ok {
		return fmt.Errorf("no question left for %q at %d points", category, points)
	}
	g.Active = q
	g.HasActive = true
	g.Stealer = -1
	g.Last = LastResolution{}
	g.Timer.Start(g.Rules.SecondsFor(points))
	g.Phase = PhaseQuestionActive
	return nil
}

// SubmitAnswer resolves the live question against the submitted choice text.
// The comparison is case-insensitive; the timer is stopped first so a late
// expiry can never fire for this run.
func (g *GameState) SubmitAnswer(text string) error {
	if g.Phase != PhaseQuestionActive {
		return fmt.Errorf("no question is accepting answers in phase %s", g.Phase)
	}
	g.Timer.Cancel()
	g.resolve(text, false)
	return nil
}

// Tick advances the question timer by dt seconds. A run that crosses zero
// resolves the question as an unanswered miss; Tick reports whether that
// happened on this call.
func (g *GameState) Tick(dt float64) bool {
	if g.Phase != PhaseQuestionActive {
		return false
	}
	if !g.Timer.Tick(dt) {
		return false
	}
	g.resolve("", true)
	return true
}

// resolve applies the answer outcome. An expiry supplies the empty string,
// which never matches a correct answer.
func (g *GameState) resolve(text string, timedOut bool) {
	res := LastResolution{
		Outcome:     OutcomeIncorrect,
		WasSteal:    g.Active.Stolen,
		ScoringTeam: -1,
	}
	if timedOut {
		res.Outcome = OutcomeTimeout
	}

	correct := !timedOut && text != "" && strings.EqualFold(text, g.Active.Answer)

	switch {
	case correct:
		res.Outcome = OutcomeCorrect
		scoring := g.Roster.Current
		if g.Active.Stolen {
			scoring = g.Stealer
		}
		g.Roster.Award(scoring, g.Active.Points)
		res.ScoringTeam = scoring
		res.Points = g.Active.Points
		// Only a live turn earns a coin; stealing teams never do.
		if !g.Active.Stolen {
			res.CoinGranted = g.Roster.GrantCoin(scoring, g.Rules.MaxCoins)
		}
		g.Active.Stolen = false
		g.finishQuestion(&res)

	case g.Active.Stolen:
		// A failed steal ends the question; show everyone the answer.
		g.Active.Stolen = false
		res.RevealAnswer = true
		g.finishQuestion(&res)

	default:
		// First miss: snapshot which teams can afford the steal.
		g.buildStealQueue()
		if len(g.stealQueue) == 0 {
			res.StealSkipped = true
			g.finishQuestion(&res)
		} else {
			res.StealStarted = true
			g.Phase = PhaseStealPending
		}
	}

	g.Last = res
}

// finishQuestion closes out a fully resolved question: counter up, steal
// bookkeeping cleared, turn rotated from the team that had the live turn,
// and the session ended once the configured total is reached.
func (g *GameState) finishQuestion(res *LastResolution) {
	g.HasActive = false
	g.Stealer = -1
	g.stealQueue = nil
	g.stealPos = 0
	g.Answered++
	res.QuestionDone = true

	g.Roster.AdvanceTurn()

	if g.Answered >= g.Rules.TotalQuestions {
		g.Phase = PhaseGameOver
		res.GameOver = true
	} else {
		g.Phase = PhaseAwaitingSelection
	}
}
