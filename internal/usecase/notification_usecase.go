package usecase

import (
	"sync"
	"time"

	"app/internal/domain/model"
)

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// カート等から通知を出すためのUIポート。
// テストではモックに差し替えて、描画無しでロジックを検証できる。
type NotificationPort interface {
	Notify(message string, kind model.NotificationKind) model.Notification
}

// Notifier は一時トーストのキュー。
// 上限は設けず、TTLを過ぎたものを読み出し時に落とす。
type Notifier struct {
	mu    sync.Mutex
	idGen IDGenerator
	clock Clock
	ttl   time.Duration
	queue []model.Notification
}

func NewNotifier(idGen IDGenerator, clock Clock, ttl time.Duration) *Notifier {
	return &Notifier{
		idGen: idGen,
		clock: clock,
		ttl:   ttl,
	}
}

// 通知を積む。TTL経過で自動的に消える。
func (n *Notifier) Notify(message string, kind model.NotificationKind) model.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.clock.Now()
	nt := model.Notification{
		ID:        n.idGen.NewID(),
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(n.ttl),
	}

	n.queue = append(n.queue, nt)
	return nt
}

// 現在表示中の通知を返す。期限切れはここで間引く。
func (n *Notifier) Active() []model.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.clock.Now()
	alive := n.queue[:0]
	for _, nt := range n.queue {
		if nt.ExpiresAt.After(now) {
			alive = append(alive, nt)
		}
	}
	n.queue = alive

	out := make([]model.Notification, len(alive))
	copy(out, alive)
	return out
}
