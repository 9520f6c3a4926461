//go:build unit
// +build unit

package chunkstore

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testMeta(uploadID string, total int) media.ChunkMeta {
	return media.ChunkMeta{
		UploadID:    uploadID,
		Purpose:     media.PurposeComplaintAttachment,
		FileName:    "evidence.pdf",
		ContentType: "application/pdf",
		TotalChunks: total,
	}
}

func newTestTracker(t *testing.T) (*Tracker, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)}
	return NewTracker(time.Minute, testutil.SetupTestLogger(t), WithClock(clock.Now)), clock
}

func TestTracker_OutOfOrderAssembly(t *testing.T) {
	tracker, _ := newTestTracker(t)
	meta := testMeta("u1", 3)
	chunks := [][]byte{[]byte("alpha-"), []byte("beta-"), []byte("gamma")}

	for _, index := range []int{2, 0} {
		progress, err := tracker.Put(meta, index, chunks[index], 0)
		require.NoError(t, err)
		assert.False(t, progress.Complete)
	}

	progress, err := tracker.Put(meta, 1, chunks[1], 0)
	require.NoError(t, err)
	assert.True(t, progress.Complete)
	assert.Equal(t, 3, progress.Received)
	assert.Equal(t, int64(16), progress.Bytes)

	assembled, err := tracker.Take("u1")
	require.NoError(t, err)
	assert.Equal(t, []byte("alpha-beta-gamma"), assembled.Data)
	assert.Equal(t, meta, assembled.Meta)
	assert.Equal(t, 0, tracker.Len())

	_, err = tracker.Take("u1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestTracker_DuplicateChunkIsIdempotent(t *testing.T) {
	tracker, _ := newTestTracker(t)
	meta := testMeta("u2", 2)

	_, err := tracker.Put(meta, 0, []byte("first"), 0)
	require.NoError(t, err)

	progress, err := tracker.Put(meta, 0, []byte("again"), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Received)
	assert.Equal(t, int64(5), progress.Bytes)
	assert.False(t, progress.Complete)

	progress, err = tracker.Put(meta, 1, []byte("!"), 0)
	require.NoError(t, err)
	assert.True(t, progress.Complete)

	// a resend after completion does not report completion a second time
	progress, err = tracker.Put(meta, 1, []byte("?"), 0)
	require.NoError(t, err)
	assert.False(t, progress.Complete)

	assembled, err := tracker.Take("u2")
	require.NoError(t, err)
	assert.Equal(t, []byte("again?"), assembled.Data)
}

func TestTracker_Put_Rejects(t *testing.T) {
	tracker, _ := newTestTracker(t)
	meta := testMeta("u3", 2)
	_, err := tracker.Put(meta, 0, []byte("12345"), 8)
	require.NoError(t, err)

	mismatched := meta
	mismatched.FileName = "other.pdf"
	otherTotal := meta
	otherTotal.TotalChunks = 3

	tests := []struct {
		name  string
		meta  media.ChunkMeta
		index int
		data  []byte
	}{
		{"metadata mismatch", mismatched, 1, []byte("x")},
		{"total chunks mismatch", otherTotal, 1, []byte("x")},
		{"index out of range", meta, 2, []byte("x")},
		{"negative index", meta, -1, []byte("x")},
		{"empty chunk", meta, 1, nil},
		{"exceeds max size", meta, 1, []byte("6789")},
		{"missing upload id", testMeta("", 2), 0, []byte("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tracker.Put(tt.meta, tt.index, tt.data, 8)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}

	progress, err := tracker.Status("u3")
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Received)
	assert.Equal(t, int64(5), progress.Bytes)
}

func TestTracker_TakeIncomplete(t *testing.T) {
	tracker, _ := newTestTracker(t)
	_, err := tracker.Put(testMeta("u4", 2), 0, []byte("half"), 0)
	require.NoError(t, err)

	_, err = tracker.Take("u4")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, 1, tracker.Len())
}

func TestTracker_Abort(t *testing.T) {
	tracker, _ := newTestTracker(t)
	_, err := tracker.Put(testMeta("u5", 2), 0, []byte("data"), 0)
	require.NoError(t, err)

	require.NoError(t, tracker.Abort("u5"))
	_, err = tracker.Status("u5")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, tracker.Abort("u5"), apperr.ErrNotFound)
}

func TestTracker_SweepEvictsOnlyStaleEntries(t *testing.T) {
	tracker, clock := newTestTracker(t)

	_, err := tracker.Put(testMeta("stale", 2), 0, []byte("old"), 0)
	require.NoError(t, err)

	clock.Advance(45 * time.Second)
	_, err = tracker.Put(testMeta("fresh", 2), 0, []byte("new"), 0)
	require.NoError(t, err)

	clock.Advance(30 * time.Second)
	assert.Equal(t, 1, tracker.Sweep())

	_, err = tracker.Status("stale")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = tracker.Status("fresh")
	assert.NoError(t, err)

	clock.Advance(2 * time.Minute)
	assert.Equal(t, 1, tracker.Sweep())
	assert.Equal(t, 0, tracker.Len())
}

func TestTracker_ConcurrentPutsForOneUpload(t *testing.T) {
	tracker, _ := newTestTracker(t)
	const total = 64
	meta := testMeta("busy", total)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		completes int
	)
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			progress, err := tracker.Put(meta, index, []byte{byte(index)}, 0)
			assert.NoError(t, err)
			if err == nil && progress.Complete {
				mu.Lock()
				completes++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, completes)

	assembled, err := tracker.Take("busy")
	require.NoError(t, err)
	expected := make([]byte, total)
	for i := range expected {
		expected[i] = byte(i)
	}
	assert.True(t, bytes.Equal(expected, assembled.Data))
}

func TestTracker_RunStopsOnCancel(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		tracker.Run(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
