package applicant

import (
	"context"
	"log/slog"
	"sync"
)

// Update is broadcast to live listeners whenever grading or admission
// mutates an applicant.
type Update struct {
	Edition     string  `json:"edition"`
	ApplicantID string  `json:"applicant_id"`
	TotalScore  float64 `json:"total_score"`
	TotalZScore float64 `json:"total_z_score"`
	Status      Status  `json:"status"`
	UpdatedBy   string  `json:"updated_by"`
}

// UpdateBus fans applicant updates out to subscribed listeners. Listeners
// that fall behind get the stale buffered update replaced, never a blocked
// publisher.
type UpdateBus struct {
	mu        sync.Mutex
	listeners []chan *Update
}

func NewUpdateBus() *UpdateBus {
	return &UpdateBus{}
}

func (b *UpdateBus) Publish(update *Update) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, listener := range b.listeners {
		select {
		case <-listener:
			// dropped the stale buffered update
		default:
		}

		select {
		case listener <- update:
		default:
			slog.Error("failed to send update to listener", "update", update)
		}
	}
}

// Subscribe registers a listener that lives until ctx is done.
func (b *UpdateBus) Subscribe(ctx context.Context) (<-chan *Update, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan *Update, 1)
	b.listeners = append(b.listeners, ch)

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, listener := range b.listeners {
			if listener == ch {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				break
			}
		}
		close(ch)
	}()

	return ch, nil
}
