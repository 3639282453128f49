package engine

import "testing"

// missQuestion drives the current team through a wrong answer on the given
// cell.
func missQuestion(t *testing.T, g *GameState, category string, points int) {
	t.Helper()
	if err := g.SelectQuestion(category, points); err != nil {
		t.Fatalf("SelectQuestion: %v", err)
	}
	if err := g.SubmitAnswer("rojo"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
}

// TestStealDeclineThenAccept is scenario C: three teams, team 0 misses a
// 600-point question, team 1 declines, team 2 pays 3 coins and answers
// correctly.
func TestStealDeclineThenAccept(t *testing.T) {
	g := newTestGame(t, 3, 10)
	g.Roster.Teams[2].Coins = 5

	missQuestion(t, &g, "Navidad", 600)

	if g.Phase != PhaseStealPending || !g.Last.StealStarted {
		t.Fatalf("phase = %s, StealStarted = %v", g.Phase, g.Last.StealStarted)
	}
	if err := g.BeginStealOffers(); err != nil {
		t.Fatalf("BeginStealOffers: %v", err)
	}

	offer, ok := g.CurrentOffer()
	if !ok || offer.Team != 1 || offer.Cost != 3 {
		t.Fatalf("first offer = %+v (ok=%v), want team 1 cost 3", offer, ok)
	}
	if err := g.DeclineSteal(); err != nil {
		t.Fatalf("DeclineSteal: %v", err)
	}

	offer, ok = g.CurrentOffer()
	if !ok || offer.Team != 2 {
		t.Fatalf("second offer = %+v (ok=%v), want team 2", offer, ok)
	}
	charged, err := g.AcceptSteal()
	if err != nil || !charged {
		t.Fatalf("AcceptSteal = (%v, %v)", charged, err)
	}
	if g.Roster.Teams[2].Coins != 2 {
		t.Errorf("stealer coins = %d, want 2", g.Roster.Teams[2].Coins)
	}
	if g.Phase != PhaseQuestionActive || g.Timer.Duration != g.Rules.StealSeconds {
		t.Errorf("phase=%s timer=%v, want live question on the steal clock", g.Phase, g.Timer.Duration)
	}

	if err := g.SubmitAnswer("verde"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if g.Roster.Teams[2].Score != 600 {
		t.Errorf("stealer score = %d, want 600", g.Roster.Teams[2].Score)
	}
	if g.Roster.Teams[2].Coins != 2 {
		t.Errorf("stealer coins = %d, want 2 (no coin for a stolen answer)", g.Roster.Teams[2].Coins)
	}
	if !g.Last.WasSteal || g.Last.CoinGranted || g.Last.ScoringTeam != 2 {
		t.Errorf("resolution = %+v", g.Last)
	}
	// Rotation runs from the team that originally held the turn, not the
	// stealer.
	if g.CurrentTeam() != 1 {
		t.Errorf("current team = %d, want 1", g.CurrentTeam())
	}
	if g.Answered != 1 {
		t.Errorf("answered = %d, want 1", g.Answered)
	}
}

// TestStealSkippedNoCandidates is scenario B: nobody can afford the question,
// so the miss resolves immediately and nobody is charged.
func TestStealSkippedNoCandidates(t *testing.T) {
	g := newTestGame(t, 2, 10)
	g.Roster.Teams[1].Coins = 0

	missQuestion(t, &g, "Navidad", 400)

	if !g.Last.StealSkipped || g.Last.StealStarted {
		t.Fatalf("resolution = %+v, want skipped steal", g.Last)
	}
	if g.Phase != PhaseAwaitingSelection {
		t.Errorf("phase = %s, want awaiting_selection", g.Phase)
	}
	if g.CurrentTeam() != 1 {
		t.Errorf("current team = %d, want 1", g.CurrentTeam())
	}
	if g.Roster.Teams[0].Coins != 3 || g.Roster.Teams[1].Coins != 0 {
		t.Errorf("coins = %d/%d, want untouched 3/0",
			g.Roster.Teams[0].Coins, g.Roster.Teams[1].Coins)
	}
	if g.Answered != 1 {
		t.Errorf("answered = %d, want 1", g.Answered)
	}
}

// TestStealQueueOrderWraps: with four teams and team 2 missing, candidates
// are offered in seating order 3, 0, 1.
func TestStealQueueOrderWraps(t *testing.T) {
	g := newTestGame(t, 4, 10)
	g.Roster.Current = 2

	missQuestion(t, &g, "Navidad", 200)
	if err := g.BeginStealOffers(); err != nil {
		t.Fatalf("BeginStealOffers: %v", err)
	}

	var order []int
	for {
		offer, ok := g.CurrentOffer()
		if !ok {
			break
		}
		order = append(order, offer.Team)
		g.DeclineSteal()
	}
	want := []int{3, 0, 1}
	if len(order) != len(want) {
		t.Fatalf("offer order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("offer order = %v, want %v", order, want)
		}
	}

	// Everyone declined: turn rotates from the misser, team 2.
	if g.CurrentTeam() != 3 {
		t.Errorf("current team = %d, want 3", g.CurrentTeam())
	}
	if g.Phase != PhaseAwaitingSelection {
		t.Errorf("phase = %s, want awaiting_selection", g.Phase)
	}
}

// TestStealQueueSnapshotsAffordability: eligibility is fixed when the queue
// is built, so a team under the price never appears in it.
func TestStealQueueSnapshotsAffordability(t *testing.T) {
	g := newTestGame(t, 3, 10)
	g.Roster.Teams[1].Coins = 2 // cost of a 600 cell is 3

	missQuestion(t, &g, "Navidad", 600)
	g.BeginStealOffers()

	offer, ok := g.CurrentOffer()
	if !ok || offer.Team != 2 {
		t.Fatalf("offer = %+v (ok=%v), want team 2 only", offer, ok)
	}
	g.DeclineSteal()
	if _, ok := g.CurrentOffer(); ok {
		t.Error("queue held more than the one affordable team")
	}
}

// TestAcceptStealFailsClosed: a balance drained between the queue snapshot
// and the accept is treated as a decline, never a negative balance.
func TestAcceptStealFailsClosed(t *testing.T) {
	g := newTestGame(t, 2, 10)

	missQuestion(t, &g, "Navidad", 600)
	g.BeginStealOffers()

	g.Roster.Teams[1].Coins = 0
	charged, err := g.AcceptSteal()
	if err != nil {
		t.Fatalf("AcceptSteal: %v", err)
	}
	if charged {
		t.Error("AcceptSteal charged an empty balance")
	}
	if g.Roster.Teams[1].Coins != 0 {
		t.Errorf("coins = %d, want 0", g.Roster.Teams[1].Coins)
	}
	// The lone candidate is spent, so the round closes.
	if g.Phase != PhaseAwaitingSelection {
		t.Errorf("phase = %s, want awaiting_selection", g.Phase)
	}
}

// TestFailedStealRevealsAnswer: a stealer who misses does not open a second
// steal round; the answer is revealed and the question retires.
func TestFailedStealRevealsAnswer(t *testing.T) {
	g := newTestGame(t, 3, 10)

	missQuestion(t, &g, "Navidad", 200)
	g.BeginStealOffers()
	if charged, err := g.AcceptSteal(); err != nil || !charged {
		t.Fatalf("AcceptSteal = (%v, %v)", charged, err)
	}

	if err := g.SubmitAnswer("blanco"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if !g.Last.RevealAnswer || !g.Last.WasSteal {
		t.Errorf("resolution = %+v, want revealed failed steal", g.Last)
	}
	if g.Last.StealStarted {
		t.Error("failed steal opened another steal round")
	}
	if g.Phase != PhaseAwaitingSelection {
		t.Errorf("phase = %s, want awaiting_selection", g.Phase)
	}
	// The coin stays spent, win or lose.
	if g.Roster.Teams[1].Coins != 2 {
		t.Errorf("stealer coins = %d, want 2", g.Roster.Teams[1].Coins)
	}
	if g.Roster.Teams[1].Score != 0 {
		t.Errorf("stealer score = %d, want 0", g.Roster.Teams[1].Score)
	}
}

// TestStealTimeoutCountsAsMiss: the steal clock running out behaves like a
// wrong answer from the stealer.
func TestStealTimeoutCountsAsMiss(t *testing.T) {
	g := newTestGame(t, 2, 10)

	missQuestion(t, &g, "Navidad", 200)
	g.BeginStealOffers()
	if charged, err := g.AcceptSteal(); err != nil || !charged {
		t.Fatalf("AcceptSteal = (%v, %v)", charged, err)
	}

	resolved := 0
	for i := 0; i < 100; i++ {
		if g.Tick(0.1) {
			resolved++
		}
	}
	if resolved != 1 {
		t.Fatalf("expiry resolved %d times, want exactly 1", resolved)
	}
	if g.Last.Outcome != OutcomeTimeout || !g.Last.WasSteal || !g.Last.RevealAnswer {
		t.Errorf("resolution = %+v", g.Last)
	}
	if g.Phase != PhaseAwaitingSelection {
		t.Errorf("phase = %s, want awaiting_selection", g.Phase)
	}
}

func TestBeginStealOffersGuard(t *testing.T) {
	g := newTestGame(t, 2, 10)
	if err := g.BeginStealOffers(); err == nil {
		t.Error("BeginStealOffers succeeded outside a pending round")
	}
	if err := g.DeclineSteal(); err == nil {
		t.Error("DeclineSteal succeeded with no offer")
	}
	if _, err := g.AcceptSteal(); err == nil {
		t.Error("AcceptSteal succeeded with no offer")
	}
}
