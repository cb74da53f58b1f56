// Package roster owns the session's mutable name state: the current name
// list and the history of draw winners. Callers never share its slices;
// every accessor returns a copy.
package roster

import (
	"fmt"
	"slices"

	"github.com/Iron-Ham/hrkit/internal/errors"
	"github.com/Iron-Ham/hrkit/internal/ingest"
)

// RemovalPolicy decides which entries leave the list when a winner is committed.
type RemovalPolicy int

const (
	// RemoveFirst removes only the first entry equal to the winner.
	RemoveFirst RemovalPolicy = iota
	// RemoveAll removes every entry equal to the winner.
	RemoveAll
)

// String returns the config spelling of the policy.
func (p RemovalPolicy) String() string {
	switch p {
	case RemoveFirst:
		return "first"
	case RemoveAll:
		return "all"
	default:
		return fmt.Sprintf("RemovalPolicy(%d)", int(p))
	}
}

// ParseRemovalPolicy maps "first" and "all" to a policy.
func ParseRemovalPolicy(s string) (RemovalPolicy, error) {
	switch s {
	case "first", "":
		return RemoveFirst, nil
	case "all":
		return RemoveAll, nil
	default:
		return RemoveFirst, errors.NewValidationError("unknown removal policy").WithField("draw.removal").WithValue(s)
	}
}

// Roster holds the name list and draw history. It is not safe for
// concurrent use; the TUI mutates it only from its update loop.
type Roster struct {
	names   []string
	history []string
	policy  RemovalPolicy
}

// New creates a Roster seeded with names.
func New(names []string, policy RemovalPolicy) *Roster {
	return &Roster{
		names:  slices.Clone(names),
		policy: policy,
	}
}

// Names returns a copy of the current list.
func (r *Roster) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of names in the list.
func (r *Roster) Len() int {
	return len(r.names)
}

// Empty reports whether the list has no names.
func (r *Roster) Empty() bool {
	return len(r.names) == 0
}

// Replace swaps in a new list. History is kept.
func (r *Roster) Replace(names []string) {
	r.names = slices.Clone(names)
}

// Duplicates returns the names that currently occur more than once.
func (r *Roster) Duplicates() []string {
	return ingest.Duplicates(r.names)
}

// RemoveDuplicates keeps only first occurrences and returns how many entries were dropped.
func (r *Roster) RemoveDuplicates() int {
	before := len(r.names)
	r.names = ingest.RemoveDuplicates(r.names)
	return before - len(r.names)
}

// CommitWinner records name as the newest winner and returns how many
// entries left the list. Unless allowRepeat is set, the name also leaves the
// list according to the removal policy. A winner that was removed from the
// list while its draw was spinning is still recorded; nothing is removed.
func (r *Roster) CommitWinner(name string, allowRepeat bool) int {
	r.history = slices.Insert(r.history, 0, name)
	if allowRepeat {
		return 0
	}

	idx := slices.Index(r.names, name)
	if idx < 0 {
		return 0
	}
	before := len(r.names)
	switch r.policy {
	case RemoveAll:
		r.names = slices.DeleteFunc(r.names, func(n string) bool { return n == name })
	default:
		r.names = slices.Delete(r.names, idx, idx+1)
	}
	return before - len(r.names)
}

// History returns the winners, newest first.
func (r *Roster) History() []string {
	return slices.Clone(r.history)
}

// Policy returns the removal policy.
func (r *Roster) Policy() RemovalPolicy {
	return r.policy
}
