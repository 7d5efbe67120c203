package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"parttimepro/internal/domain"
	"parttimepro/internal/repository"
	errs "parttimepro/pkg/errors"
	"parttimepro/pkg/logger"
)

// MessageService orchestrates one mailbox interaction: list conversations,
// open one (which marks incoming messages read), send a message. The viewer
// identity and role come from the authenticated request and are threaded in
// explicitly rather than read from ambient session state.
type MessageService interface {
	ListConversations(ctx context.Context, viewerID uuid.UUID, viewerRole string) ([]*domain.ConversationSummary, error)
	OpenConversation(ctx context.Context, viewerID uuid.UUID, viewerRole string, counterpartID uuid.UUID) (*domain.ConversationView, error)
	SendMessage(ctx context.Context, viewerID uuid.UUID, viewerRole string, counterpartID uuid.UUID, body string) (*domain.Message, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	log         logger.Logger
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, profileRepo repository.ProfileRepository, log logger.Logger) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		log:         log,
	}
}

// ListConversations derives the viewer's conversation list from the message
// store on every call. Summaries are never cached, so the unread badge
// always matches the stored read flags.
func (s *messageService) ListConversations(ctx context.Context, viewerID uuid.UUID, viewerRole string) ([]*domain.ConversationSummary, error) {
	counterparts, err := s.messageRepo.DistinctCounterparts(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	wantRole := domain.ComplementaryRole(viewerRole)

	summaries := []*domain.ConversationSummary{}
	for _, counterpartID := range counterparts {
		counterpart, err := s.userRepo.GetByID(ctx, counterpartID)
		if err != nil {
			if errors.Is(err, errs.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		if counterpart.Role != wantRole {
			continue
		}

		last, err := s.messageRepo.LastMessageBetween(ctx, viewerID, counterpartID)
		if err != nil {
			return nil, err
		}
		if last == nil {
			continue
		}

		unread, err := s.messageRepo.UnreadFrom(ctx, counterpartID, viewerID)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, &domain.ConversationSummary{
			CounterpartID:   counterpartID,
			CounterpartName: s.displayName(ctx, counterpartID),
			LastMessageBody: last.Body,
			LastMessageAt:   last.SentAt,
			UnreadCount:     unread,
		})
	}

	// Most recently active first; equal timestamps fall back to the
	// counterpart id so the order is deterministic.
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].LastMessageAt.Equal(summaries[j].LastMessageAt) {
			return summaries[i].LastMessageAt.After(summaries[j].LastMessageAt)
		}
		return strings.Compare(summaries[i].CounterpartID.String(), summaries[j].CounterpartID.String()) < 0
	})

	return summaries, nil
}

// OpenConversation marks the counterpart's messages read, then returns the
// full thread with the counterpart's profile. The mark and the fetch are
// separate statements: a message arriving between them simply stays unread
// until the viewer's next refresh.
func (s *messageService) OpenConversation(ctx context.Context, viewerID uuid.UUID, viewerRole string, counterpartID uuid.UUID) (*domain.ConversationView, error) {
	if err := s.resolveCounterpart(ctx, viewerRole, counterpartID); err != nil {
		return nil, err
	}

	if err := s.markConversationRead(ctx, viewerID, counterpartID); err != nil {
		// A failed read-mark is never fatal to opening the thread; the
		// unread badge stays stale until the next refresh.
		s.log.Warn("Failed to mark conversation read", "error", err,
			"viewer_id", viewerID, "counterpart_id", counterpartID)
	}

	messages, err := s.messageRepo.Thread(ctx, viewerID, counterpartID)
	if err != nil {
		return nil, err
	}

	counterpart, err := s.profileRepo.GetSummary(ctx, counterpartID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrCounterpartNotFound
		}
		// Display metadata must not block the thread.
		s.log.Warn("Failed to load counterpart profile", "error", err, "counterpart_id", counterpartID)
		counterpart = &domain.ProfileSummary{
			UserID:      counterpartID,
			DisplayName: domain.DisplayNamePlaceholder,
		}
	}

	return &domain.ConversationView{
		Counterpart: counterpart,
		Messages:    messages,
	}, nil
}

func (s *messageService) SendMessage(ctx context.Context, viewerID uuid.UUID, viewerRole string, counterpartID uuid.UUID, body string) (*domain.Message, error) {
	if viewerID == counterpartID {
		return nil, errs.ErrSelfConversation
	}
	if err := s.resolveCounterpart(ctx, viewerRole, counterpartID); err != nil {
		return nil, err
	}

	message, err := s.messageRepo.Append(ctx, viewerID, counterpartID, body, time.Now())
	if err != nil {
		return nil, err
	}

	s.log.Info("Message sent", "message_id", message.ID,
		"sender_id", viewerID, "receiver_id", counterpartID)
	return message, nil
}

// markConversationRead flips every unread message from counterpart to viewer
// to read. Read flags only move forward; there is no un-read transition.
func (s *messageService) markConversationRead(ctx context.Context, viewerID, counterpartID uuid.UUID) error {
	if viewerID == counterpartID {
		return errs.ErrSelfConversation
	}

	affected, err := s.messageRepo.MarkReadFrom(ctx, counterpartID, viewerID)
	if err != nil {
		return err
	}
	if affected > 0 {
		s.log.Debug("Marked messages read", "count", affected,
			"viewer_id", viewerID, "counterpart_id", counterpartID)
	}

	return nil
}

// resolveCounterpart checks the counterpart exists and carries the role
// complementary to the viewer's. Conversations are strictly job seeker to
// employer; anything else reads as an unavailable conversation.
func (s *messageService) resolveCounterpart(ctx context.Context, viewerRole string, counterpartID uuid.UUID) error {
	counterpart, err := s.userRepo.GetByID(ctx, counterpartID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return errs.ErrCounterpartNotFound
		}
		return err
	}

	if counterpart.Role != domain.ComplementaryRole(viewerRole) {
		return errs.ErrCounterpartNotFound
	}

	return nil
}

func (s *messageService) displayName(ctx context.Context, userID uuid.UUID) string {
	summary, err := s.profileRepo.GetSummary(ctx, userID)
	if err != nil {
		s.log.Warn("Failed to resolve display name", "error", err, "user_id", userID)
		return domain.DisplayNamePlaceholder
	}
	return summary.DisplayName
}
