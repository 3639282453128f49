package engine

// Team is one competing team's mutable tally. Scores only ever grow; the
// coin balance stays within [0, Rules.MaxCoins].
type Team struct {
	Name  string
	Score int
	Coins int
}

// Roster is the ordered team registry. Turn order is creation order and
// never changes; Current is the index of the team whose turn it is.
type Roster struct {
	Teams   []Team
	Current int
}

// NewRoster creates teams in the given order, each with the starting stake.
func NewRoster(names []string, startingCoins int) Roster {
	teams := make([]Team, len(names))
	for i, name := range names {
		teams[i] = Team{Name: name, Coins: startingCoins}
	}
	return Roster{Teams: teams}
}

// Len returns the number of teams.
func (r *Roster) Len() int { return len(r.Teams) }

// AdvanceTurn rotates to the next team and returns its index.
func (r *Roster) AdvanceTurn() int {
	r.Current = (r.Current + 1) % len(r.Teams)
	return r.Current
}

// Award adds points to a team's score.
func (r *Roster) Award(team, points int) {
	r.Teams[team].Score += points
}

// GrantCoin adds one coin to a team, capped at max. Returns false when the
// team is already at the cap.
func (r *Roster) GrantCoin(team, max int) bool {
	if r.Teams[team].Coins >= max {
		return false
	}
	r.Teams[team].Coins++
	return true
}

// SpendCoins deducts cost from a team's balance iff the balance covers it.
// On failure nothing is mutated.
func (r *Roster) SpendCoins(team, cost int) bool {
	if r.Teams[team].Coins < cost {
		return false
	}
	r.Teams[team].Coins -= cost
	return true
}

// Winners returns the maximum score and the names of every team that
// reached it, in roster order.
func (r *Roster) Winners() (int, []string) {
	if len(r.Teams) == 0 {
		return 0, nil
	}
	top := r.Teams[0].Score
	for i := range r.Teams {
		if r.Teams[i].Score > top {
			top = r.Teams[i].Score
		}
	}
	var names []string
	for i := range r.Teams {
		if r.Teams[i].Score == top {
			names = append(names, r.Teams[i].Name)
		}
	}
	return top, names
}
