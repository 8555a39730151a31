package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// MessageService implements the message log. Write authorization uses the
// fixed role-pair table; the contact resolver is the discovery surface and is
// deliberately not consulted here, so an admin can always reach any employee
// or client even before a project links them.
type MessageService struct {
	messages ports.MessageRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewMessageService(messages ports.MessageRepository, users ports.UserRepository, log zerolog.Logger) *MessageService {
	return &MessageService{messages: messages, users: users, log: log}
}

func (s *MessageService) Send(ctx context.Context, actor ports.Actor, in ports.SendMessageInput) (*domain.Message, error) {
	receiver, err := s.users.FindByID(ctx, in.ReceiverID)
	if err != nil {
		return nil, err
	}
	if receiver.ID == actor.ID || !domain.CanMessage(actor.Role, receiver.Role) {
		return nil, domain.ErrForbidden
	}

	msg := &domain.Message{
		SenderID:   actor.ID,
		ReceiverID: receiver.ID,
		Content:    in.Content,
		Attachment: in.Attachment,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.messages.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Str("sender_id", actor.ID).Str("receiver_id", receiver.ID).Msg("message sent")
	return created, nil
}

// Thread returns the conversation with the counterpart oldest first and, as a
// side effect, marks the counterpart's messages to the caller as read. The
// returned slice reflects the state before the flags flip, matching what the
// caller is about to render.
func (s *MessageService) Thread(ctx context.Context, actor ports.Actor, counterpartID string) ([]domain.Message, error) {
	if _, err := s.users.FindByID(ctx, counterpartID); err != nil {
		return nil, err
	}

	thread, err := s.messages.ListBetween(ctx, actor.ID, counterpartID)
	if err != nil {
		return nil, err
	}

	if err := s.messages.MarkRead(ctx, counterpartID, actor.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", actor.ID).Msg("failed to mark thread read")
	}
	return thread, nil
}

// Conversations groups the caller's messages by counterpart, keeping the most
// recent message per counterpart (later writes win timestamp ties) and the
// count of their unread messages. Counterparts whose account was deleted keep
// their id and render without profile details.
func (s *MessageService) Conversations(ctx context.Context, actor ports.Actor) ([]ports.Conversation, error) {
	msgs, err := s.messages.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	last := make(map[string]domain.Message)
	unread := make(map[string]int)
	for _, m := range msgs {
		other := m.SenderID
		if other == actor.ID {
			other = m.ReceiverID
		}
		if prev, ok := last[other]; !ok || !m.CreatedAt.Before(prev.CreatedAt) {
			last[other] = m
		}
		if m.ReceiverID == actor.ID && !m.Read {
			unread[other]++
		}
	}

	ids := make([]string, 0, len(last))
	for id := range last {
		ids = append(ids, id)
	}
	counterparts, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[string]domain.User, len(counterparts))
	for _, u := range counterparts {
		usersByID[u.ID] = u
	}

	conversations := make([]ports.Conversation, 0, len(last))
	for id, m := range last {
		user, ok := usersByID[id]
		if !ok {
			user = domain.User{ID: id}
		}
		conversations = append(conversations, ports.Conversation{
			User:        user,
			LastMessage: m,
			Unread:      unread[id],
		})
	}

	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.CreatedAt.After(conversations[j].LastMessage.CreatedAt)
	})
	return conversations, nil
}

func (s *MessageService) UnreadCount(ctx context.Context, actor ports.Actor) (int64, error) {
	return s.messages.CountUnread(ctx, actor.ID)
}
