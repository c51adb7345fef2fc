package domain

import "context"

// MaxEntries bounds the trail: once exceeded, the oldest entries are
// silently evicted.
const MaxEntries = 100

// Recorder is the append-only audit trail, newest first. Entries are never
// updated or deleted; only successful mutations are recorded.
type Recorder interface {
	Record(ctx context.Context, action Action, entity Entity, entityID, details string)
	List() []Entry
}
