package engine

// Phase identifies where the turn/steal machine currently sits.
type Phase uint8

const (
	// PhaseAwaitingSelection — board visible, waiting for a category pick.
	PhaseAwaitingSelection Phase = iota
	// PhaseQuestionActive — timer running, answers accepted.
	PhaseQuestionActive
	// PhaseStealPending — a steal round is queued; waiting for the caller's
	// resume step (BeginStealOffers) after its interstitial.
	PhaseStealPending
	// PhaseStealOffer — one candidate team is deciding whether to buy in.
	PhaseStealOffer
	// PhaseGameOver — question total reached; only Reset mutates state now.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingSelection:
		return "awaiting_selection"
	case PhaseQuestionActive:
		return "question_active"
	case PhaseStealPending:
		return "steal_pending"
	case PhaseStealOffer:
		return "steal_offer"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Outcome classifies how an answer attempt ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeTimeout
)

// LastResolution is a fully observable summary of the most recent answer
// resolution, written by the engine and read by the presentation layer.
type LastResolution struct {
	Outcome Outcome

	// WasSteal marks that the attempt that just resolved was a steal attempt.
	WasSteal bool

	// ScoringTeam is the team awarded points, -1 when nobody scored.
	ScoringTeam int
	Points      int

	// CoinGranted marks that the scoring team also earned a coin.
	CoinGranted bool

	// RevealAnswer asks the display to highlight the correct choice.
	RevealAnswer bool

	// StealStarted marks that the miss opened a steal round (PhaseStealPending).
	StealStarted bool

	// StealSkipped marks a first miss where no team could afford the price.
	StealSkipped bool

	// QuestionDone marks a full resolution: the counter advanced and the
	// turn rotated.
	QuestionDone bool

	// GameOver marks that this resolution ended the session.
	GameOver bool
}

// StealOffer identifies the team currently offered a steal and its price.
type StealOffer struct {
	Team int
	Cost int
}
