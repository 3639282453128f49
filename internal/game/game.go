// Package game hosts a live Christmas Jeopardy session: it wraps the engine
// state machine with locking, wall-clock presentation delays, and the event
// stream the board display consumes.
package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/SAMIC97/Christmas-Jeopardy/engine"
)

// stealMessageDelay is how long the steal interstitial stays on screen before
// the first offer is presented.
const stealMessageDelay = 3 * time.Second

// Command is an inbound message from a controller client.
type Command struct {
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
	Points   int    `json:"points,omitempty"`
	Answer   string `json:"answer,omitempty"`
	Teams    int    `json:"teams,omitempty"` // new_game only; 0 keeps the roster
}

// Inbound command types accepted by HandleCommand.
const (
	CmdCategorySelected = "category_selected"
	CmdAnswerChosen     = "answer_chosen"
	CmdStealAccepted    = "steal_accepted"
	CmdStealDeclined    = "steal_declined"
	CmdNewGame          = "new_game"
)

// Config collects everything needed to open a session.
type Config struct {
	Rules      engine.Rules
	Categories []engine.Category
	TeamNames  []string // Optional explicit names; padded with defaults.
	TeamCount  int
	Seed       uint64
	Clock      clockwork.Clock // Defaults to the real clock.
}

// TriviaGame represents one running session of the game.
type TriviaGame struct {
	ID uuid.UUID

	// Engine holds the authoritative game state. All access goes through Mu.
	Engine engine.GameState
	Mu     sync.Mutex

	// BroadcastFn sends an event to every connected display client.
	BroadcastFn func(ev GameEvent)

	// rules and source are kept so a new-game request with a different team
	// count can rebuild the session from scratch.
	rules  engine.Rules
	source []engine.Category

	clock clockwork.Clock
	log   *logrus.Entry

	// generation invalidates scheduled callbacks from superseded state: a
	// reset bumps it, so a steal interstitial timer that fires afterwards
	// finds a stale generation and does nothing.
	generation int
}

// NewTriviaGame validates the configuration and opens a fresh session.
func NewTriviaGame(cfg Config) (*TriviaGame, error) {
	if cfg.TeamCount < 2 || cfg.TeamCount > engine.MaxTeams {
		return nil, fmt.Errorf("team count must be between 2 and %d, got %d", engine.MaxTeams, cfg.TeamCount)
	}
	if len(cfg.Categories) == 0 {
		return nil, fmt.Errorf("no question categories configured")
	}

	names := make([]string, cfg.TeamCount)
	for i := range names {
		if i < len(cfg.TeamNames) && cfg.TeamNames[i] != "" {
			names[i] = cfg.TeamNames[i]
		} else {
			names[i] = fmt.Sprintf("Equipo %d", i+1)
		}
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(clk.Now().UnixNano())
	}

	id, _ := uuid.NewRandom()
	g := &TriviaGame{
		ID:     id,
		Engine: engine.NewGame(seed, cfg.Rules, cfg.Categories, names),
		rules:  cfg.Rules,
		source: cfg.Categories,
		clock:  clk,
		log:    logrus.WithField("game", id.String()),
	}
	return g, nil
}

// HandleCommand routes an inbound controller command.
func (g *TriviaGame) HandleCommand(cmd Command) {
	switch cmd.Type {
	case CmdCategorySelected:
		g.SelectCategory(cmd.Category, cmd.Points)
	case CmdAnswerChosen:
		g.ChooseAnswer(cmd.Answer)
	case CmdStealAccepted:
		g.AcceptSteal()
	case CmdStealDeclined:
		g.DeclineSteal()
	case CmdNewGame:
		g.NewGame(cmd.Teams)
	default:
		g.log.Warnf("unknown command type %q", cmd.Type)
		g.Mu.Lock()
		g.fireError(fmt.Sprintf("unknown command %q", cmd.Type))
		g.Mu.Unlock()
	}
}

// SelectCategory opens the chosen cell's question on the answer clock.
func (g *TriviaGame) SelectCategory(category string, points int) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if err := g.Engine.SelectQuestion(category, points); err != nil {
		g.log.WithError(err).Debug("question selection rejected")
		g.fireError(err.Error())
		return
	}
	g.log.WithFields(logrus.Fields{"category": category, "points": points}).Info("question selected")

	g.fireSound(SoundClick)
	g.fireShowQuestion(false)
	g.fireSound(SoundTickStart)
}

// ChooseAnswer resolves the live question against the picked choice.
func (g *TriviaGame) ChooseAnswer(answer string) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if err := g.Engine.SubmitAnswer(answer); err != nil {
		g.fireError(err.Error())
		return
	}
	g.handleResolution()
}

// Tick advances the live question clock by dt seconds. The server drives it
// from a wall-clock ticker; tests call it directly.
func (g *TriviaGame) Tick(dt float64) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Engine.Phase != engine.PhaseQuestionActive {
		return
	}
	expired := g.Engine.Tick(dt)
	g.fireEvent(GameEvent{
		Type:    EventTimerProgress,
		Payload: map[string]interface{}{"progress": g.Engine.Timer.Progress()},
	})
	if expired {
		g.handleResolution()
	}
}

// AcceptSteal charges the offered team and reopens the question for it.
func (g *TriviaGame) AcceptSteal() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	offer, _ := g.Engine.CurrentOffer()
	charged, err := g.Engine.AcceptSteal()
	if err != nil {
		g.fireError(err.Error())
		return
	}
	if !charged {
		// The offer could no longer be paid for; it counts as a decline.
		g.log.WithField("team", offer.Team).Warn("steal accept failed, balance too low")
		g.afterOfferAdvance()
		return
	}

	g.log.WithFields(logrus.Fields{"team": offer.Team, "cost": offer.Cost}).Info("steal accepted")
	g.fireCoinUpdate(offer.Team)
	g.fireSound(SoundClick)
	g.fireShowQuestion(true)
	g.fireSound(SoundTickStart)
}

// DeclineSteal passes the live offer to the next queued team.
func (g *TriviaGame) DeclineSteal() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if err := g.Engine.DeclineSteal(); err != nil {
		g.fireError(err.Error())
		return
	}
	g.afterOfferAdvance()
}

// NewGame discards the session in flight and starts over on a full board.
// A positive teamCount rebuilds the roster at that size with default names;
// zero keeps the current teams. An out-of-range count is rejected with a
// user-visible message and no state change.
func (g *TriviaGame) NewGame(teamCount int) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	switch {
	case teamCount == 0:
		g.generation++
		g.Engine.Reset()

	case teamCount < 2 || teamCount > engine.MaxTeams:
		g.fireError(fmt.Sprintf("team count must be between 2 and %d", engine.MaxTeams))
		return

	default:
		names := make([]string, teamCount)
		for i := range names {
			names[i] = fmt.Sprintf("Equipo %d", i+1)
		}
		g.generation++
		g.Engine = engine.NewGame(uint64(g.clock.Now().UnixNano()), g.rules, g.source, names)
	}
	g.log.Info("session reset")

	g.fireEvent(GameEvent{Type: EventBoardUpdate, State: g.buildBoardState()})
	g.fireTurnChanged()
}

// handleResolution turns the engine's latest resolution into display events.
// Assumes lock is held by caller.
func (g *TriviaGame) handleResolution() {
	res := g.Engine.Last

	g.fireSound(SoundTickStop)
	if res.Outcome == engine.OutcomeTimeout {
		g.fireEvent(GameEvent{Type: EventTimeoutFlash})
	}

	switch {
	case res.Outcome == engine.OutcomeCorrect:
		g.fireSound(SoundCorrect)
		g.fireHighlightCorrect()
		g.fireEvent(GameEvent{
			Type: EventScoreUpdate,
			Team: g.eventTeam(res.ScoringTeam),
			Payload: map[string]interface{}{
				"score":  g.Engine.Roster.Teams[res.ScoringTeam].Score,
				"points": res.Points,
			},
		})
		if res.CoinGranted {
			g.fireCoinUpdate(res.ScoringTeam)
		}

	case res.StealStarted:
		g.fireSound(SoundWrong)
		g.fireStealInterstitial()

	default:
		g.fireSound(SoundWrong)
		if res.RevealAnswer {
			g.fireHighlightCorrect()
		}
	}

	if res.QuestionDone {
		g.fireQuestionDone(res)
	}
}

// fireStealInterstitial shows the steal banner and schedules the first offer
// after the on-screen delay. The generation guard drops the callback if the
// session was reset in the meantime.
// Assumes lock is held by caller.
func (g *TriviaGame) fireStealInterstitial() {
	g.fireEvent(GameEvent{
		Type:    EventStealMessage,
		Payload: map[string]interface{}{"cost": engine.CoinCost(g.Engine.Active.Points)},
	})
	g.fireSound(SoundStealLaugh)

	gen := g.generation
	g.clock.AfterFunc(stealMessageDelay, func() {
		g.Mu.Lock()
		defer g.Mu.Unlock()
		if g.generation != gen {
			return
		}
		g.beginStealOffers()
	})
}

// beginStealOffers moves the pending steal round to its first offer.
// Assumes lock is held by caller.
func (g *TriviaGame) beginStealOffers() {
	if err := g.Engine.BeginStealOffers(); err != nil {
		g.log.WithError(err).Debug("steal round no longer pending")
		return
	}
	g.fireStealPrompt()
}

// afterOfferAdvance emits whatever follows a declined or failed offer: the
// next prompt, or the close-out events if the queue is spent.
// Assumes lock is held by caller.
func (g *TriviaGame) afterOfferAdvance() {
	if g.Engine.Phase == engine.PhaseStealOffer {
		g.fireStealPrompt()
		return
	}
	// Queue exhausted: the engine already retired the question.
	res := g.Engine.Last
	if res.RevealAnswer {
		g.fireHighlightCorrect()
	}
	if res.QuestionDone {
		g.fireQuestionDone(res)
	}
}

// fireQuestionDone broadcasts the board refresh and either the next turn or
// the final standings.
// Assumes lock is held by caller.
func (g *TriviaGame) fireQuestionDone(res engine.LastResolution) {
	g.fireEvent(GameEvent{Type: EventBoardUpdate, State: g.buildBoardState()})

	if !res.GameOver {
		g.fireTurnChanged()
		return
	}

	score, winners := g.Engine.Winners()
	g.log.WithFields(logrus.Fields{"score": score, "winners": winners}).Info("game over")
	g.fireEvent(GameEvent{
		Type: EventShowWinner,
		Payload: map[string]interface{}{
			"score":   score,
			"winners": winners,
			"tie":     len(winners) > 1,
		},
	})
	g.fireEvent(GameEvent{Type: EventGameOver})
}

// fireShowQuestion publishes the live question. On a steal the short clock
// applies and the answering team is the stealer.
// Assumes lock is held by caller.
func (g *TriviaGame) fireShowQuestion(isSteal bool) {
	team := g.Engine.CurrentTeam()
	if isSteal {
		team = g.Engine.Stealer
	}
	g.fireEvent(GameEvent{
		Type: EventShowQuestion,
		Team: g.eventTeam(team),
		Question: &EventQuestion{
			Category: g.Engine.Active.Category,
			Points:   g.Engine.Active.Points,
			Text:     g.Engine.Active.Text,
			Choices:  g.Engine.Active.Choices,
			Seconds:  g.Engine.Timer.Duration,
			IsSteal:  isSteal,
		},
	})
}

// fireStealPrompt announces the offer currently on the table.
// Assumes lock is held by caller.
func (g *TriviaGame) fireStealPrompt() {
	offer, ok := g.Engine.CurrentOffer()
	if !ok {
		return
	}
	g.fireEvent(GameEvent{
		Type:    EventStealPrompt,
		Team:    g.eventTeam(offer.Team),
		Payload: map[string]interface{}{"cost": offer.Cost},
	})
}

// fireHighlightCorrect reveals the right choice after a resolution.
// Assumes lock is held by caller.
func (g *TriviaGame) fireHighlightCorrect() {
	g.fireEvent(GameEvent{
		Type:    EventHighlightCorrect,
		Payload: map[string]interface{}{"answer": g.Engine.Active.Answer},
	})
}

// fireCoinUpdate publishes a team's current coin balance.
// Assumes lock is held by caller.
func (g *TriviaGame) fireCoinUpdate(team int) {
	g.fireEvent(GameEvent{
		Type:    EventCoinUpdate,
		Team:    g.eventTeam(team),
		Payload: map[string]interface{}{"coins": g.Engine.Roster.Teams[team].Coins},
	})
}

// fireTurnChanged announces whose turn it is to pick.
// Assumes lock is held by caller.
func (g *TriviaGame) fireTurnChanged() {
	g.fireEvent(GameEvent{Type: EventTurnChanged, Team: g.eventTeam(g.Engine.CurrentTeam())})
}

// fireSound fires a named sound cue on the display.
// Assumes lock is held by caller.
func (g *TriviaGame) fireSound(name string) {
	g.fireEvent(GameEvent{Type: EventPlaySound, Sound: name})
}

// fireError reports a rejected command to the display.
// Assumes lock is held by caller.
func (g *TriviaGame) fireError(message string) {
	g.fireEvent(GameEvent{
		Type:    EventErrorMessage,
		Payload: map[string]interface{}{"message": message},
	})
}

// eventTeam builds the team reference for an event payload.
// Assumes lock is held by caller.
func (g *TriviaGame) eventTeam(index int) *EventTeam {
	if index < 0 || index >= g.Engine.Roster.Len() {
		return nil
	}
	return &EventTeam{Index: index, Name: g.Engine.Roster.Teams[index].Name}
}

// fireEvent broadcasts an event via the BroadcastFn callback.
// Assumes lock is held by caller.
func (g *TriviaGame) fireEvent(ev GameEvent) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	} else {
		g.log.Warnf("BroadcastFn is nil, dropping event type %s", ev.Type)
	}
}
