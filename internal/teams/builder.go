// Package teams partitions a name list into randomly composed teams and
// exports the result as CSV.
package teams

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/Iron-Ham/hrkit/internal/errors"
	"github.com/samber/lo"
)

// MinSize is the smallest allowed team size.
const MinSize = 2

// Team is one group of a partition. IDs start at 1.
type Team struct {
	ID      int
	Members []string
}

// Partition is the ordered list of teams produced by one Build.
type Partition []Team

// Members returns every member in team order.
func (p Partition) Members() []string {
	return lo.FlatMap(p, func(t Team, _ int) []string { return t.Members })
}

// Len returns the total number of members.
func (p Partition) Len() int {
	return lo.SumBy(p, func(t Team) int { return len(t.Members) })
}

// Build shuffles a copy of names uniformly and cuts it into consecutive
// teams of size; the last team may be smaller. Sizes above len(names)
// clamp to len(names), giving one team. An empty list yields an empty
// partition.
func Build(names []string, size int, rng *rand.Rand) (Partition, error) {
	if size < MinSize {
		return nil, errors.NewValidationError(fmt.Sprintf("team size must be at least %d", MinSize)).
			WithField("size").WithValue(size).WithCause(errors.ErrInvalidTeamSize)
	}
	if len(names) == 0 {
		return Partition{}, nil
	}
	if size > len(names) {
		size = len(names)
	}

	shuffled := slices.Clone(names)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	chunks := lo.Chunk(shuffled, size)
	partition := make(Partition, 0, len(chunks))
	for i, members := range chunks {
		partition = append(partition, Team{ID: i + 1, Members: members})
	}
	return partition, nil
}

// ClampSize bounds a requested size to the range the team size control
// offers for n names: [MinSize, max(MinSize, n)].
func ClampSize(size, n int) int {
	return min(max(size, MinSize), max(MinSize, n))
}

// TeamCount returns how many teams Build produces for n names of the given size.
func TeamCount(n, size int) int {
	if n == 0 || size < MinSize {
		return 0
	}
	size = min(size, n)
	return (n + size - 1) / size
}
