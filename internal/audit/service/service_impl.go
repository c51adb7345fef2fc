package service

import (
	"context"
	"math/rand"
	"sync"

	"github.com/abiramijewels/aurum/internal/actorctx"
	auditdomain "github.com/abiramijewels/aurum/internal/audit/domain"
	"github.com/abiramijewels/aurum/internal/clock"
	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	Clock clock.Clock
}

// Recorder keeps the trail in process memory with bounded retention. The
// trail belongs to the application, not the store, so nothing is persisted.
type Recorder struct {
	log   *zap.Logger
	clock clock.Clock

	mu      sync.Mutex
	entropy *rand.Rand
	entries []auditdomain.Entry
}

func NewRecorder(p Params) auditdomain.Recorder {
	return &Recorder{
		log:     p.Log.Named("audit.recorder"),
		clock:   p.Clock,
		entropy: rand.New(rand.NewSource(p.Clock.Now().UnixNano())),
	}
}

// Record prepends one entry and truncates the trail to MaxEntries. Actions
// without an acting user on the context are dropped: only attributed,
// successful mutations belong in the trail.
func (r *Recorder) Record(ctx context.Context, action auditdomain.Action, entity auditdomain.Entity, entityID, details string) {
	actor, ok := actorctx.ActorFromContext(ctx)
	if !ok {
		r.log.Warn("audit entry dropped: no actor on context",
			zap.String("action", string(action)),
			zap.String("entity_id", entityID),
		)
		return
	}

	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	entry := auditdomain.Entry{
		ID:        ulid.MustNew(ulid.Timestamp(now), r.entropy).String(),
		Timestamp: now,
		UserEmail: actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Details:   details,
	}

	r.entries = append([]auditdomain.Entry{entry}, r.entries...)
	if len(r.entries) > auditdomain.MaxEntries {
		r.entries = r.entries[:auditdomain.MaxEntries]
	}
}

// List returns a copy of the trail, newest first.
func (r *Recorder) List() []auditdomain.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]auditdomain.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
