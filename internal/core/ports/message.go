package ports

import (
	"context"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

// MessageRepository defines persistence for the message log.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	// ListBetween returns every message exchanged between the two users,
	// ordered by creation time ascending.
	ListBetween(ctx context.Context, userA, userB string) ([]domain.Message, error)
	// MarkRead flips the read flag on all unread messages from sender to
	// receiver.
	MarkRead(ctx context.Context, senderID, receiverID string) error
	// ListByUser returns every message the user sent or received.
	ListByUser(ctx context.Context, userID string) ([]domain.Message, error)
	CountUnread(ctx context.Context, receiverID string) (int64, error)
}

// SendMessageInput carries a new message. Attachment is an opaque reference
// to an already-uploaded file; the API stores it verbatim.
type SendMessageInput struct {
	ReceiverID string
	Content    string
	Attachment string
}

// Conversation is the derived per-counterpart view: the other user, the most
// recent message exchanged with them, and how many of their messages remain
// unread. It is computed on demand and never stored.
type Conversation struct {
	User        domain.User    `json:"user"`
	LastMessage domain.Message `json:"last_message"`
	Unread      int            `json:"unread"`
}

// MessageService implements the message log.
type MessageService interface {
	// Send stores a message after checking the fixed role-pair rule: the six
	// cross-role pairs are permitted, same-role and self never are.
	Send(ctx context.Context, actor Actor, in SendMessageInput) (*domain.Message, error)
	// Thread returns the full conversation with the counterpart, oldest
	// first, and marks the counterpart's messages to the caller as read.
	Thread(ctx context.Context, actor Actor, counterpartID string) ([]domain.Message, error)
	Conversations(ctx context.Context, actor Actor) ([]Conversation, error)
	UnreadCount(ctx context.Context, actor Actor) (int64, error)
}

// ContactService resolves, per caller, the set of users they may open a
// conversation with. The result is derived from identity and project state on
// every call; it is deliberately never cached because assignments change
// independently.
type ContactService interface {
	Contacts(ctx context.Context, actor Actor) ([]domain.User, error)
}
