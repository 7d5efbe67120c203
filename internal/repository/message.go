package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parttimepro/internal/domain"
	errs "parttimepro/pkg/errors"
	"parttimepro/pkg/logger"
)

// MessageRepository is the single source of truth for message content and
// read flags. Messages are append-only: nothing here updates a body or
// deletes a row, and the read flag only ever moves from false to true.
type MessageRepository interface {
	// Append stores a new message. The body must be non-empty after
	// trimming and sender and receiver must differ; violations are
	// rejected before anything is written.
	Append(ctx context.Context, senderID, receiverID uuid.UUID, body string, now time.Time) (*domain.Message, error)

	// Thread returns every message between the two users, oldest first.
	// Ties on sent_at are broken by id so concurrent sends keep a stable
	// order. The pair is unordered: Thread(a, b) == Thread(b, a).
	Thread(ctx context.Context, userA, userB uuid.UUID) ([]*domain.Message, error)

	// UnreadFrom counts messages sent by sender to receiver that the
	// receiver has not read yet.
	UnreadFrom(ctx context.Context, senderID, receiverID uuid.UUID) (int, error)

	// MarkReadFrom flips every unread message from sender to receiver to
	// read and reports how many rows changed. Idempotent.
	MarkReadFrom(ctx context.Context, senderID, receiverID uuid.UUID) (int64, error)

	// DistinctCounterparts lists every user the given user has exchanged
	// at least one message with, in no particular order.
	DistinctCounterparts(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// LastMessageBetween returns the most recent message of the thread,
	// or nil without error when the thread is empty.
	LastMessageBetween(ctx context.Context, userA, userB uuid.UUID) (*domain.Message, error)
}

type messageRepository struct {
	db  *pgxpool.Pool
	log logger.Logger
}

func NewMessageRepository(db *pgxpool.Pool, log logger.Logger) MessageRepository {
	return &messageRepository{db: db, log: log}
}

func (r *messageRepository) Append(ctx context.Context, senderID, receiverID uuid.UUID, body string, now time.Time) (*domain.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errs.ErrEmptyMessage
	}
	if senderID == receiverID {
		return nil, errs.ErrSelfConversation
	}

	query := `
		INSERT INTO messages (sender_id, receiver_id, body, sent_at, is_read)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id, sent_at
	`

	message := &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		IsRead:     false,
	}

	err := r.db.QueryRow(ctx, query, senderID, receiverID, body, now).
		Scan(&message.ID, &message.SentAt)
	if err != nil {
		r.log.Error("Failed to append message", "error", err, "sender_id", senderID)
		return nil, fmt.Errorf("%w: append message: %v", errs.ErrStorage, err)
	}

	return message, nil
}

func (r *messageRepository) Thread(ctx context.Context, userA, userB uuid.UUID) ([]*domain.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, body, sent_at, is_read
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY sent_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, userA, userB)
	if err != nil {
		r.log.Error("Failed to load thread", "error", err)
		return nil, fmt.Errorf("%w: load thread: %v", errs.ErrStorage, err)
	}
	defer rows.Close()

	messages := []*domain.Message{}
	for rows.Next() {
		message := &domain.Message{}
		err := rows.Scan(
			&message.ID, &message.SenderID, &message.ReceiverID,
			&message.Body, &message.SentAt, &message.IsRead,
		)
		if err != nil {
			r.log.Error("Failed to scan message", "error", err)
			return nil, fmt.Errorf("%w: scan message: %v", errs.ErrStorage, err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read thread rows: %v", errs.ErrStorage, err)
	}

	return messages, nil
}

func (r *messageRepository) UnreadFrom(ctx context.Context, senderID, receiverID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM messages
		WHERE sender_id = $1 AND receiver_id = $2 AND is_read = false
	`

	var count int
	if err := r.db.QueryRow(ctx, query, senderID, receiverID).Scan(&count); err != nil {
		r.log.Error("Failed to count unread messages", "error", err)
		return 0, fmt.Errorf("%w: count unread: %v", errs.ErrStorage, err)
	}

	return count, nil
}

func (r *messageRepository) MarkReadFrom(ctx context.Context, senderID, receiverID uuid.UUID) (int64, error) {
	query := `
		UPDATE messages
		SET is_read = true
		WHERE sender_id = $1 AND receiver_id = $2 AND is_read = false
	`

	tag, err := r.db.Exec(ctx, query, senderID, receiverID)
	if err != nil {
		r.log.Error("Failed to mark messages read", "error", err)
		return 0, fmt.Errorf("%w: mark read: %v", errs.ErrStorage, err)
	}

	return tag.RowsAffected(), nil
}

func (r *messageRepository) DistinctCounterparts(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END
		FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list counterparts", "error", err)
		return nil, fmt.Errorf("%w: list counterparts: %v", errs.ErrStorage, err)
	}
	defer rows.Close()

	counterparts := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			r.log.Error("Failed to scan counterpart", "error", err)
			return nil, fmt.Errorf("%w: scan counterpart: %v", errs.ErrStorage, err)
		}
		counterparts = append(counterparts, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read counterpart rows: %v", errs.ErrStorage, err)
	}

	return counterparts, nil
}

func (r *messageRepository) LastMessageBetween(ctx context.Context, userA, userB uuid.UUID) (*domain.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, body, sent_at, is_read
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY sent_at DESC, id DESC
		LIMIT 1
	`

	message := &domain.Message{}
	err := r.db.QueryRow(ctx, query, userA, userB).Scan(
		&message.ID, &message.SenderID, &message.ReceiverID,
		&message.Body, &message.SentAt, &message.IsRead,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("Failed to load last message", "error", err)
		return nil, fmt.Errorf("%w: last message: %v", errs.ErrStorage, err)
	}

	return message, nil
}
