package scoring

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flushRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *flushRecorder) flush(edition, id, comment string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, edition+"#"+id+"#"+comment)
	return nil
}

func (r *flushRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestDebouncerCoalescesRapidEdits(t *testing.T) {
	rec := &flushRecorder{}
	d := newCommentDebouncer(20*time.Millisecond, rec.flush)

	d.save("ed", "appl1", "v1")
	d.save("ed", "appl1", "v2")
	d.save("ed", "appl1", "v3")

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"ed#appl1#v3"}, rec.snapshot())
}

func TestDebouncerKeysPerApplicant(t *testing.T) {
	rec := &flushRecorder{}
	d := newCommentDebouncer(20*time.Millisecond, rec.flush)

	d.save("ed", "appl1", "one")
	d.save("ed", "appl2", "two")

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)
	assert.ElementsMatch(t, []string{"ed#appl1#one", "ed#appl2#two"}, rec.snapshot())
}

func TestDebouncerFlushAllFiresImmediately(t *testing.T) {
	rec := &flushRecorder{}
	d := newCommentDebouncer(time.Hour, rec.flush)

	d.save("ed", "appl1", "draft")
	d.flushAll()

	assert.Equal(t, []string{"ed#appl1#draft"}, rec.snapshot())

	// already flushed; the stopped timer must not fire again
	time.Sleep(30 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1)
}
