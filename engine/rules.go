package engine

// Rules holds the configurable game settings. All of them are tunable per
// session; DefaultRules carries the standard values.
type Rules struct {
	TotalQuestions int // questions answered before the game ends
	MaxCoins       int // coin balance cap per team
	StartingCoins  int // initial coin stake per team

	// Budgets maps a question's point value to its answer time in seconds.
	// Unmapped values fall back to DefaultSeconds.
	Budgets        map[int]float64
	DefaultSeconds float64

	// StealSeconds is the fixed, shorter budget for a steal attempt.
	StealSeconds float64
}

// DefaultRules returns the standard game settings.
func DefaultRules() Rules {
	return Rules{
		TotalQuestions: 30,
		MaxCoins:       5,
		StartingCoins:  3,
		Budgets: map[int]float64{
			200:  10,
			400:  20,
			600:  30,
			800:  40,
			1000: 50,
		},
		DefaultSeconds: 20,
		StealSeconds:   5,
	}
}

// SecondsFor returns the answer-time budget for a question of the given value.
func (r *Rules) SecondsFor(points int) float64 {
	if s, ok := r.Budgets[points]; ok {
		return s
	}
	return r.DefaultSeconds
}

// coinCostDivisor prices a steal at one coin per 200 points.
const coinCostDivisor = 200

// CoinCost returns the steal price for a question of the given value:
// 200⇒1, 400⇒2, 600⇒3, 800⇒4, 1000⇒5.
func CoinCost(points int) int { return points / coinCostDivisor }
