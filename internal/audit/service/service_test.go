package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/abiramijewels/aurum/internal/actorctx"
	auditdomain "github.com/abiramijewels/aurum/internal/audit/domain"
	"github.com/abiramijewels/aurum/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRecorder(t *testing.T) (auditdomain.Recorder, *clock.FakeClock) {
	t.Helper()
	fake := clock.NewFakeClock(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC))
	return NewRecorder(Params{Log: zap.NewNop(), Clock: fake}), fake
}

func actorContext(email string) context.Context {
	return actorctx.WithActor(context.Background(), email)
}

func TestRecordNewestFirst(t *testing.T) {
	rec, fake := newTestRecorder(t)
	ctx := actorContext("admin@example.com")

	rec.Record(ctx, auditdomain.ActionCreate, auditdomain.EntityProduct, "g1", "Created: first")
	fake.Advance(time.Minute)
	rec.Record(ctx, auditdomain.ActionUpdate, auditdomain.EntityProduct, "g1", "Updated: first")

	entries := rec.List()
	require.Len(t, entries, 2)
	assert.Equal(t, auditdomain.ActionUpdate, entries[0].Action)
	assert.Equal(t, auditdomain.ActionCreate, entries[1].Action)
	assert.Equal(t, "admin@example.com", entries[0].UserEmail)
	assert.True(t, entries[0].Timestamp.After(entries[1].Timestamp))
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestRecordCapEvictsOldest(t *testing.T) {
	rec, fake := newTestRecorder(t)
	ctx := actorContext("admin@example.com")

	for i := 0; i < auditdomain.MaxEntries+1; i++ {
		rec.Record(ctx, auditdomain.ActionUpdate, auditdomain.EntityProduct, fmt.Sprintf("p%d", i), "update")
		fake.Advance(time.Second)
	}

	entries := rec.List()
	require.Len(t, entries, auditdomain.MaxEntries)

	// Newest entry is the 101st; the very first record fell off the end.
	assert.Equal(t, fmt.Sprintf("p%d", auditdomain.MaxEntries), entries[0].EntityID)
	assert.Equal(t, "p1", entries[len(entries)-1].EntityID)
}

func TestRecordWithoutActorIsDropped(t *testing.T) {
	rec, _ := newTestRecorder(t)

	rec.Record(context.Background(), auditdomain.ActionCreate, auditdomain.EntityProduct, "g1", "Created: ghost")

	assert.Empty(t, rec.List())
}

func TestListReturnsCopy(t *testing.T) {
	rec, _ := newTestRecorder(t)
	ctx := actorContext("admin@example.com")

	rec.Record(ctx, auditdomain.ActionCreate, auditdomain.EntityProduct, "g1", "Created: first")

	entries := rec.List()
	entries[0].Details = "tampered"

	assert.Equal(t, "Created: first", rec.List()[0].Details)
}
