// Package seed writes the fixture data set into a document store.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/hetulpatel/athletemon/internal/docstore"
	"github.com/hetulpatel/athletemon/internal/fixtures"
	"github.com/hetulpatel/athletemon/internal/logging"
)

// Runner performs one seeding pass. Writes are issued one at a time and the
// first failure ends the run; nothing already written is undone.
type Runner struct {
	Store docstore.Store
	Rand  fixtures.Source
	Now   func() time.Time
}

// Summary counts the documents written by a run, per kind.
type Summary struct {
	Users    int
	Stats    int
	Groups   int
	Tips     int
	Feedback int
	Writes   []docstore.Write
}

// Total returns the number of documents written.
func (s *Summary) Total() int {
	return len(s.Writes)
}

// NewRunner returns a Runner using the wall clock.
func NewRunner(store docstore.Store, rng fixtures.Source) *Runner {
	return &Runner{Store: store, Rand: rng, Now: time.Now}
}

// Run writes users (with stats for athletes), the group, tips and feedback, in
// that order. The returned Summary is valid up to the failing write.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if r.Store == nil {
		return nil, fmt.Errorf("seed runner has no store")
	}
	if r.Rand == nil {
		return nil, fmt.Errorf("seed runner has no random source")
	}
	if r.Now == nil {
		r.Now = time.Now
	}
	sum := &Summary{}

	for _, user := range fixtures.Users(r.Now()) {
		if err := r.set(ctx, sum, fixtures.CollectionUsers, user.ID, user); err != nil {
			return sum, fmt.Errorf("write user %s: %w", user.ID, err)
		}
		sum.Users++

		if !user.IsAthlete() {
			continue
		}
		for _, stat := range fixtures.AthleteStats(r.Rand, r.Now) {
			if err := r.add(ctx, sum, fixtures.StatsPath(user.ID), stat); err != nil {
				return sum, fmt.Errorf("add stat for %s: %w", user.ID, err)
			}
			sum.Stats++
		}
	}

	group := fixtures.Group(r.Now())
	if err := r.set(ctx, sum, fixtures.CollectionGroups, group.ID, group); err != nil {
		return sum, fmt.Errorf("write group %s: %w", group.ID, err)
	}
	sum.Groups++

	for _, tip := range fixtures.Tips() {
		if err := r.set(ctx, sum, fixtures.CollectionTips, tip.ID, tip); err != nil {
			return sum, fmt.Errorf("write tip %s: %w", tip.ID, err)
		}
		sum.Tips++
	}

	feedback := fixtures.Feedback(r.Now())
	if err := r.add(ctx, sum, fixtures.CollectionPerformanceFeedback, feedback); err != nil {
		return sum, fmt.Errorf("add feedback for %s: %w", feedback.AthleteID, err)
	}
	sum.Feedback++

	return sum, nil
}

func (r *Runner) set(ctx context.Context, sum *Summary, collection, id string, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.Store.Set(ctx, collection, id, doc); err != nil {
		return err
	}
	logging.Debugf("[seed] set %s/%s", collection, id)
	sum.Writes = append(sum.Writes, docstore.Write{Collection: collection, ID: id, Op: docstore.OpSet, At: r.Now()})
	return nil
}

func (r *Runner) add(ctx context.Context, sum *Summary, collection string, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id, err := r.Store.Add(ctx, collection, doc)
	if err != nil {
		return err
	}
	logging.Debugf("[seed] add %s/%s", collection, id)
	sum.Writes = append(sum.Writes, docstore.Write{Collection: collection, ID: id, Op: docstore.OpAdd, At: r.Now()})
	return nil
}
