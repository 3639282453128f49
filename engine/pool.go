package engine

// Question is one drawable board question. Text and choices never change
// after load; Stolen is the only mutable bit, marking the single steal
// attempt allowed on this instance. Category is stamped from the owning
// column when the pool is built.
type Question struct {
	Text     string
	Choices  []string
	Answer   string
	Category string
	Points   int
	Stolen   bool
}

// Category groups the remaining questions under one board column.
type Category struct {
	Name      string
	Questions []Question
}

// Pool holds the drawable questions for one session. Draws remove the
// returned question so nothing repeats; Reset restores the original
// snapshot without touching the data source.
type Pool struct {
	categories []Category
	source     []Category
	rng        uint64
}

// NewPool clones the source set twice: one live copy to draw from and one
// immutable snapshot for Reset.
func NewPool(source []Category, seed uint64) Pool {
	p := Pool{
		categories: cloneCategories(source),
		source:     cloneCategories(source),
		rng:        seed,
	}
	if p.rng == 0 {
		p.rng = 1 // xorshift can't start at 0
	}
	return p
}

// xorshift64 — same inline generator the deal/shuffle path uses everywhere.
func (p *Pool) nextRand() uint64 {
	x := p.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	p.rng = x
	return x
}

func (p *Pool) randN(n uint64) uint64 {
	return p.nextRand() % n
}

// Draw removes and returns a question matching the category and point value.
// When several match, one is chosen uniformly at random. The second return
// is false when the cell is exhausted or the category is unknown.
func (p *Pool) Draw(category string, points int) (Question, bool) {
	for ci := range p.categories {
		if p.categories[ci].Name != category {
			continue
		}
		qs := p.categories[ci].Questions
		matches := make([]int, 0, len(qs))
		for i := range qs {
			if qs[i].Points == points {
				matches = append(matches, i)
			}
		}
		if len(matches) == 0 {
			return Question{}, false
		}
		pick := matches[p.randN(uint64(len(matches)))]
		q := qs[pick]
		p.categories[ci].Questions = append(qs[:pick], qs[pick+1:]...)
		return q, true
	}
	return Question{}, false
}

// Reset restores the pool to its full original contents. Idempotent.
func (p *Pool) Reset() {
	p.categories = cloneCategories(p.source)
}

// Remaining reports how many questions are left in one board cell.
func (p *Pool) Remaining(category string, points int) int {
	for ci := range p.categories {
		if p.categories[ci].Name != category {
			continue
		}
		count := 0
		for i := range p.categories[ci].Questions {
			if p.categories[ci].Questions[i].Points == points {
				count++
			}
		}
		return count
	}
	return 0
}

// CategoryNames returns the category names in board order.
func (p *Pool) CategoryNames() []string {
	names := make([]string, len(p.categories))
	for i := range p.categories {
		names[i] = p.categories[i].Name
	}
	return names
}

// Size returns the total number of undrawn questions.
func (p *Pool) Size() int {
	total := 0
	for ci := range p.categories {
		total += len(p.categories[ci].Questions)
	}
	return total
}

func cloneCategories(src []Category) []Category {
	out := make([]Category, len(src))
	for i := range src {
		out[i].Name = src[i].Name
		out[i].Questions = make([]Question, len(src[i].Questions))
		for j := range src[i].Questions {
			q := src[i].Questions[j]
			q.Choices = append([]string(nil), q.Choices...)
			q.Category = src[i].Name
			q.Stolen = false
			out[i].Questions[j] = q
		}
	}
	return out
}
