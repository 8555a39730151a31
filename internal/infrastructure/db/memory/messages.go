package memory

import (
	"context"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

type messageStore struct {
	s *Store
}

func (r *messageStore) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	created := *m
	created.ID = newID()
	r.s.messages = append(r.s.messages, created)
	return &created, nil
}

// ListBetween returns the thread in insertion order, which is creation order
// since messages are append-only.
func (r *messageStore) ListBetween(_ context.Context, userA, userB string) ([]domain.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var thread []domain.Message
	for _, m := range r.s.messages {
		if (m.SenderID == userA && m.ReceiverID == userB) || (m.SenderID == userB && m.ReceiverID == userA) {
			thread = append(thread, m)
		}
	}
	return thread, nil
}

func (r *messageStore) MarkRead(_ context.Context, senderID, receiverID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.messages {
		m := &r.s.messages[i]
		if m.SenderID == senderID && m.ReceiverID == receiverID && !m.Read {
			m.Read = true
		}
	}
	return nil
}

func (r *messageStore) ListByUser(_ context.Context, userID string) ([]domain.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var msgs []domain.Message
	for _, m := range r.s.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			msgs = append(msgs, m)
		}
	}
	return msgs, nil
}

func (r *messageStore) CountUnread(_ context.Context, receiverID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, m := range r.s.messages {
		if m.ReceiverID == receiverID && !m.Read {
			n++
		}
	}
	return n, nil
}
