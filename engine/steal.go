package engine

import "fmt"

// buildStealQueue snapshots which teams may buy the live question, in turn
// order starting immediately after the current team and wrapping around.
// Affordability is checked once here: a team below the price is never
// offered, even if it could earn coins before its place in the queue came up.
func (g *GameState) buildStealQueue() {
	cost := CoinCost(g.Active.Points)
	n := g.Roster.Len()
	g.stealQueue = g.stealQueue[:0]
	g.stealPos = 0
	for i := 1; i < n; i++ {
		team := (g.Roster.Current + i) % n
		if g.Roster.Teams[team].Coins >= cost {
			g.stealQueue = append(g.stealQueue, team)
		}
	}
}

// BeginStealOffers presents the first offer of the queued steal round. It is
// the explicit resume step the caller invokes after its interstitial; the
// engine does not mutate anything while the round is pending.
func (g *GameState) BeginStealOffers() error {
	if g.Phase != PhaseStealPending {
		return fmt.Errorf("no steal round to begin in phase %s", g.Phase)
	}
	g.Phase = PhaseStealOffer
	return nil
}

// CurrentOffer returns the offer on the table while a candidate is deciding.
func (g *GameState) CurrentOffer() (StealOffer, bool) {
	if g.Phase != PhaseStealOffer || g.stealPos >= len(g.stealQueue) {
		return StealOffer{}, false
	}
	return StealOffer{
		Team: g.stealQueue[g.stealPos],
		Cost: CoinCost(g.Active.Points),
	}, true
}

// DeclineSteal passes the offer to the next queued team, or ends the steal
// round when the queue is exhausted.
func (g *GameState) DeclineSteal() error {
	if g.Phase != PhaseStealOffer {
		return fmt.Errorf("no steal offer to decline in phase %s", g.Phase)
	}
	g.advanceOffer()
	return nil
}

// AcceptSteal charges the offered team and reopens the question for it on
// the short steal clock. Affordability was checked when the queue was built,
// but the charge is re-verified; an offer that can no longer be paid for
// fails closed and is treated as a decline. The bool reports whether the
// steal actually went through.
func (g *GameState) AcceptSteal() (bool, error) {
	offer, ok := g.CurrentOffer()
	if !ok {
		return false, fmt.Errorf("no steal offer to accept in phase %s", g.Phase)
	}
	if !g.Roster.SpendCoins(offer.Team, offer.Cost) {
		g.advanceOffer()
		return false, nil
	}
	g.Active.Stolen = true
	g.Stealer = offer.Team
	g.Timer.Start(g.Rules.StealSeconds)
	g.Phase = PhaseQuestionActive
	return true, nil
}

// advanceOffer moves to the next queued candidate, closing the round when
// none remain.
func (g *GameState) advanceOffer() {
	g.stealPos++
	if g.stealPos >= len(g.stealQueue) {
		g.endStealRound()
	}
}

// endStealRound closes an unclaimed steal round: nobody is charged, the
// stolen flag is cleared if set, and the turn rotates from the team that
// missed the question.
func (g *GameState) endStealRound() {
	res := LastResolution{
		Outcome:     g.Last.Outcome,
		ScoringTeam: -1,
	}
	g.Active.Stolen = false
	g.finishQuestion(&res)
	g.Last = res
}
