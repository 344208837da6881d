package scoring

import (
	"log/slog"
	"sync"
	"time"
)

// Comment writes wait for the input to be quiet this long before hitting
// the store.
const commentQuietInterval = 500 * time.Millisecond

// commentDebouncer coalesces rapid comment edits per applicant into one
// store write. Each new value restarts that applicant's quiet timer; only
// the latest value is ever flushed.
type commentDebouncer struct {
	mu      sync.Mutex
	quiet   time.Duration
	pending map[string]*pendingComment
	flush   func(edition, id, comment string) error
}

type pendingComment struct {
	edition string
	id      string
	comment string
	timer   *time.Timer
}

func newCommentDebouncer(quiet time.Duration, flush func(edition, id, comment string) error) *commentDebouncer {
	return &commentDebouncer{
		quiet:   quiet,
		pending: map[string]*pendingComment{},
		flush:   flush,
	}
}

func (d *commentDebouncer) save(edition, id, comment string) {
	key := edition + "#" + id

	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pending[key]; ok {
		p.comment = comment
		p.timer.Reset(d.quiet)
		return
	}

	p := &pendingComment{edition: edition, id: id, comment: comment}
	p.timer = time.AfterFunc(d.quiet, func() {
		d.fire(key)
	})
	d.pending[key] = p
}

func (d *commentDebouncer) fire(key string) {
	d.mu.Lock()
	p, ok := d.pending[key]
	if ok {
		delete(d.pending, key)
	}
	d.mu.Unlock()
	if !ok {
		return
	}

	if err := d.flush(p.edition, p.id, p.comment); err != nil {
		slog.Error("failed to save grading comment",
			"edition", p.edition, "applicant_id", p.id, "error", err)
	}
}

func (d *commentDebouncer) flushAll() {
	d.mu.Lock()
	keys := make([]string, 0, len(d.pending))
	for key, p := range d.pending {
		p.timer.Stop()
		keys = append(keys, key)
	}
	d.mu.Unlock()

	for _, key := range keys {
		d.fire(key)
	}
}
