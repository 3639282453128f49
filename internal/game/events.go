package game

// GameEventType represents the type of a game-related event broadcast via WebSockets.
type GameEventType string

// Constants defining the various GameEvent types pushed to the board display.
const (
	EventShowQuestion     GameEventType = "show_question"     // A question is live: text, choices, clock.
	EventTimerProgress    GameEventType = "timer_progress"    // Remaining fraction of the answer clock.
	EventHighlightCorrect GameEventType = "highlight_correct" // Reveal which choice was right.
	EventTimeoutFlash     GameEventType = "timeout_flash"     // The clock ran out; flash the board.
	EventStealMessage     GameEventType = "steal_message"     // Interstitial before steal offers begin.
	EventStealPrompt      GameEventType = "steal_prompt"      // A team is being offered the steal.
	EventScoreUpdate      GameEventType = "score_update"      // One team's score changed.
	EventCoinUpdate       GameEventType = "coin_update"       // One team's coin balance changed.
	EventTurnChanged      GameEventType = "turn_changed"      // The picking turn moved to another team.
	EventBoardUpdate      GameEventType = "board_update"      // Full board snapshot (cells, scores, phase).
	EventPlaySound        GameEventType = "play_sound"        // Fire a named sound cue on the display.
	EventShowWinner       GameEventType = "show_winner"       // Final standings banner.
	EventGameOver         GameEventType = "game_over"         // Session finished; board frozen.
	EventErrorMessage     GameEventType = "error_message"     // A command was rejected.
)

// Sound cue identifiers carried by EventPlaySound.
const (
	SoundClick      = "click"
	SoundCorrect    = "correct"
	SoundWrong      = "wrong"
	SoundStealLaugh = "steal_laugh"
	SoundTickStart  = "tick_start"
	SoundTickStop   = "tick_stop"
)

// EventTeam identifies a team within a GameEvent payload.
type EventTeam struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// EventQuestion carries a live question to the display. The correct answer is
// never included; it travels only in EventHighlightCorrect after resolution.
type EventQuestion struct {
	Category string   `json:"category"`
	Points   int      `json:"points"`
	Text     string   `json:"text"`
	Choices  []string `json:"choices"`
	Seconds  float64  `json:"seconds"`
	IsSteal  bool     `json:"isSteal"`
}

// GameEvent is the standard structure for broadcasting game state changes.
type GameEvent struct {
	Type     GameEventType  `json:"type"`
	Team     *EventTeam     `json:"team,omitempty"`     // The team the event concerns.
	Question *EventQuestion `json:"question,omitempty"` // Live question, for show_question.
	Sound    string         `json:"sound,omitempty"`    // Cue name, for play_sound.

	Payload map[string]interface{} `json:"payload,omitempty"` // Additional event-specific data.

	State *BoardState `json:"state,omitempty"` // Full snapshot for board_update.
}
