package sink

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Record is one caught error as stored by a Journal.
type Record[E any] struct {
	ID       uuid.UUID
	CaughtAt time.Time
	Err      E
}

// Journal stamps every appended error with a fresh id and the UTC time.
// The zero value reads the wall clock.
type Journal[E any] struct {
	records []Record[E]
	now     func() time.Time
}

// NewJournal returns a Journal reading time from now.
// A nil now means time.Now.
func NewJournal[E any](now func() time.Time) *Journal[E] {
	return &Journal[E]{now: now}
}

func (j *Journal[E]) Append(err E) {
	now := time.Now
	if j.now != nil {
		now = j.now
	}
	j.records = append(j.records, Record[E]{
		ID:       uuid.New(),
		CaughtAt: now().UTC(),
		Err:      err,
	})
}

func (j *Journal[E]) Records() []Record[E] {
	return slices.Clone(j.records)
}

func (j *Journal[E]) Len() int {
	return len(j.records)
}
