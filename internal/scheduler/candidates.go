package scheduler

import (
	"math/rand"
	"time"

	"github.com/Venkatesh961/TimeTable-Generator/pkg/model"
)

// CandidateGenerator proposes placement candidates for one session instance.
// The default is bounded randomized search; a systematic backtracking
// strategy can be substituted without touching the constraint checks.
type CandidateGenerator interface {
	// RandomSlot picks a day and a starting slot such that a session of the
	// given duration stays within the grid.
	RandomSlot(duration int) (day, start int)
	// ShuffledDays returns the working days in a random order, used by lab
	// placement which enumerates starts per day instead of guessing.
	ShuffledDays() []int
}

type randomCandidates struct {
	rng *rand.Rand
}

// NewCandidateGenerator returns the randomized generator. A zero seed derives
// one from the clock; any other value reproduces a run exactly.
func NewCandidateGenerator(seed int64) CandidateGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomCandidates{rng: rand.New(rand.NewSource(seed))}
}

func (c *randomCandidates) RandomSlot(duration int) (int, int) {
	day := c.rng.Intn(model.NumberOfDays)
	start := c.rng.Intn(model.SlotsPerDay - duration + 1)
	return day, start
}

func (c *randomCandidates) ShuffledDays() []int {
	days := make([]int, model.NumberOfDays)
	for i := range days {
		days[i] = i
	}
	c.rng.Shuffle(len(days), func(i, j int) {
		days[i], days[j] = days[j], days[i]
	})
	return days
}
