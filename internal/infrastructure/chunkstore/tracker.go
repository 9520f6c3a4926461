// Package chunkstore keeps in-flight chunked uploads in memory until every
// chunk has arrived.
package chunkstore

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"
)

// DefaultTTL is how long an idle upload survives before Sweep evicts it
const DefaultTTL = 30 * time.Minute

type entry struct {
	mu       sync.Mutex
	meta     media.ChunkMeta
	slots    [][]byte
	received int
	bytes    int64
	// removed is set under mu once the entry left the map; holders must start over.
	removed bool

	lastAccess atomic.Int64
}

func (e *entry) progress(complete bool) *media.ChunkProgress {
	return &media.ChunkProgress{
		UploadID: e.meta.UploadID,
		Purpose:  e.meta.Purpose,
		Received: e.received,
		Total:    e.meta.TotalChunks,
		Bytes:    e.bytes,
		Complete: complete,
	}
}

// Tracker is a media.ChunkStore. Lock order is Tracker.mu before entry.mu.
type Tracker struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time
	logger  logger.Logger
}

// Option configures a Tracker
type Option func(*Tracker)

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// NewTracker creates an empty tracker; a non-positive ttl means DefaultTTL
func NewTracker(ttl time.Duration, logger logger.Logger, opts ...Option) *Tracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	t := &Tracker{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ media.ChunkStore = (*Tracker)(nil)

func (t *Tracker) touch(e *entry) {
	e.lastAccess.Store(t.now().UnixNano())
}

// lockEntry returns the locked entry for uploadID, creating it from meta when meta is non-nil
func (t *Tracker) lockEntry(uploadID string, meta *media.ChunkMeta) (*entry, error) {
	for {
		t.mu.Lock()
		e, ok := t.entries[uploadID]
		if !ok {
			if meta == nil {
				t.mu.Unlock()
				return nil, apperr.NotFound("chunked upload", uploadID)
			}
			e = &entry{meta: *meta, slots: make([][]byte, meta.TotalChunks)}
			t.touch(e)
			t.entries[uploadID] = e
		}
		t.mu.Unlock()

		e.mu.Lock()
		if !e.removed {
			return e, nil
		}
		e.mu.Unlock()
	}
}

// Put stores data in slot index; a repeated index replaces the slot without counting twice
func (t *Tracker) Put(meta media.ChunkMeta, index int, data []byte, maxBytes int64) (*media.ChunkProgress, error) {
	if meta.UploadID == "" {
		return nil, apperr.Validation("upload_id is required")
	}
	if meta.TotalChunks < 1 || meta.TotalChunks > media.MaxParts {
		return nil, apperr.Validation(fmt.Sprintf("total_chunks must be between 1 and %d", media.MaxParts))
	}
	if index < 0 || index >= meta.TotalChunks {
		return nil, apperr.Validation(fmt.Sprintf("chunk_index %d is outside [0,%d)", index, meta.TotalChunks))
	}
	if len(data) == 0 {
		return nil, apperr.Validation("chunk is empty")
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, apperr.Validation("upload exceeds the maximum size")
	}

	e, err := t.lockEntry(meta.UploadID, &meta)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()
	t.touch(e)

	if e.meta != meta {
		return nil, apperr.Validation("chunk metadata does not match the first chunk")
	}

	previous := int64(len(e.slots[index]))
	total := e.bytes - previous + int64(len(data))
	if maxBytes > 0 && total > maxBytes {
		return nil, apperr.Validation("upload exceeds the maximum size")
	}

	wasComplete := e.received == e.meta.TotalChunks
	if e.slots[index] == nil {
		e.received++
	}
	e.slots[index] = bytes.Clone(data)
	e.bytes = total

	complete := !wasComplete && e.received == e.meta.TotalChunks
	return e.progress(complete), nil
}

// Status reports progress without changing the upload
func (t *Tracker) Status(uploadID string) (*media.ChunkProgress, error) {
	e, err := t.lockEntry(uploadID, nil)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()
	t.touch(e)

	return e.progress(e.received == e.meta.TotalChunks), nil
}

// detach removes the locked entry from the map. Caller holds t.mu and e.mu.
func (t *Tracker) detach(uploadID string, e *entry) {
	delete(t.entries, uploadID)
	e.removed = true
}

// Take removes a complete upload and merges its slots in index order
func (t *Tracker) Take(uploadID string) (*media.AssembledUpload, error) {
	t.mu.Lock()
	e, ok := t.entries[uploadID]
	if !ok {
		t.mu.Unlock()
		return nil, apperr.NotFound("chunked upload", uploadID)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.received != e.meta.TotalChunks {
		t.mu.Unlock()
		return nil, apperr.Validation(fmt.Sprintf("upload incomplete: %d of %d chunks", e.received, e.meta.TotalChunks))
	}
	t.detach(uploadID, e)
	t.mu.Unlock()

	merged := make([]byte, 0, e.bytes)
	for _, slot := range e.slots {
		merged = append(merged, slot...)
	}
	e.slots = nil

	return &media.AssembledUpload{Meta: e.meta, Data: merged}, nil
}

// Abort drops an upload and its buffered chunks
func (t *Tracker) Abort(uploadID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[uploadID]
	if !ok {
		return apperr.NotFound("chunked upload", uploadID)
	}
	e.mu.Lock()
	t.detach(uploadID, e)
	e.slots = nil
	e.mu.Unlock()

	t.logger.Info("chunked upload aborted", "upload_id", uploadID)
	return nil
}

// Len returns the number of in-flight uploads
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Sweep evicts uploads idle for longer than the TTL and returns how many it removed
func (t *Tracker) Sweep() int {
	cutoff := t.now().Add(-t.ttl).UnixNano()

	t.mu.Lock()
	defer t.mu.Unlock()

	evicted := 0
	for id, e := range t.entries {
		if e.lastAccess.Load() >= cutoff {
			continue
		}
		e.mu.Lock()
		if e.lastAccess.Load() < cutoff {
			t.detach(id, e)
			e.slots = nil
			evicted++
		}
		e.mu.Unlock()
	}
	return evicted
}

// Run sweeps every interval until ctx is cancelled
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := t.Sweep(); n > 0 {
				t.logger.Info("evicted stale chunked uploads", "count", n)
			}
		}
	}
}
