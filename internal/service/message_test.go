package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"parttimepro/internal/domain"
	errs "parttimepro/pkg/errors"
	"parttimepro/pkg/logger"
)

// fakeMessageRepo keeps messages in memory with the same contract as the
// PostgreSQL repository: append-only, trimmed non-empty bodies, stable
// (sent_at, id) ordering.
type fakeMessageRepo struct {
	nextID   int64
	messages []*domain.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{nextID: 1}
}

func (r *fakeMessageRepo) Append(_ context.Context, senderID, receiverID uuid.UUID, body string, now time.Time) (*domain.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errs.ErrEmptyMessage
	}
	if senderID == receiverID {
		return nil, errs.ErrSelfConversation
	}

	message := &domain.Message{
		ID:         r.nextID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		SentAt:     now,
		IsRead:     false,
	}
	r.nextID++
	r.messages = append(r.messages, message)
	return message, nil
}

func samePair(m *domain.Message, a, b uuid.UUID) bool {
	return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
}

func (r *fakeMessageRepo) Thread(_ context.Context, userA, userB uuid.UUID) ([]*domain.Message, error) {
	thread := []*domain.Message{}
	for _, m := range r.messages {
		if samePair(m, userA, userB) {
			thread = append(thread, m)
		}
	}
	sort.Slice(thread, func(i, j int) bool {
		if !thread[i].SentAt.Equal(thread[j].SentAt) {
			return thread[i].SentAt.Before(thread[j].SentAt)
		}
		return thread[i].ID < thread[j].ID
	})
	return thread, nil
}

func (r *fakeMessageRepo) UnreadFrom(_ context.Context, senderID, receiverID uuid.UUID) (int, error) {
	count := 0
	for _, m := range r.messages {
		if m.SenderID == senderID && m.ReceiverID == receiverID && !m.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeMessageRepo) MarkReadFrom(_ context.Context, senderID, receiverID uuid.UUID) (int64, error) {
	var affected int64
	for _, m := range r.messages {
		if m.SenderID == senderID && m.ReceiverID == receiverID && !m.IsRead {
			m.IsRead = true
			affected++
		}
	}
	return affected, nil
}

func (r *fakeMessageRepo) DistinctCounterparts(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	seen := map[uuid.UUID]bool{}
	counterparts := []uuid.UUID{}
	for _, m := range r.messages {
		var other uuid.UUID
		switch userID {
		case m.SenderID:
			other = m.ReceiverID
		case m.ReceiverID:
			other = m.SenderID
		default:
			continue
		}
		if !seen[other] {
			seen[other] = true
			counterparts = append(counterparts, other)
		}
	}
	return counterparts, nil
}

func (r *fakeMessageRepo) LastMessageBetween(ctx context.Context, userA, userB uuid.UUID) (*domain.Message, error) {
	thread, _ := r.Thread(ctx, userA, userB)
	if len(thread) == 0 {
		return nil, nil
	}
	return thread[len(thread)-1], nil
}

// flakyMessageRepo injects failures into selected operations while the rest
// pass through to the in-memory repo.
type flakyMessageRepo struct {
	*fakeMessageRepo
	appendErr   error
	markReadErr error
}

func (r *flakyMessageRepo) Append(ctx context.Context, senderID, receiverID uuid.UUID, body string, now time.Time) (*domain.Message, error) {
	if r.appendErr != nil {
		return nil, r.appendErr
	}
	return r.fakeMessageRepo.Append(ctx, senderID, receiverID, body, now)
}

func (r *flakyMessageRepo) MarkReadFrom(ctx context.Context, senderID, receiverID uuid.UUID) (int64, error) {
	if r.markReadErr != nil {
		return 0, r.markReadErr
	}
	return r.fakeMessageRepo.MarkReadFrom(ctx, senderID, receiverID)
}

type fakeUserRepo struct {
	users    map[uuid.UUID]*domain.User
	sessions map[string]*domain.UserSession
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{
		users:    map[uuid.UUID]*domain.User{},
		sessions: map[string]*domain.UserSession{},
	}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email && u.Role == user.Role {
			return errs.ErrUserAlreadyExists
		}
	}
	// Store a copy: callers sanitize their struct after Create returns and
	// that must not reach the stored record.
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email, role string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.Role == role {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) CreateSession(_ context.Context, session *domain.UserSession) error {
	r.sessions[session.RefreshTokenHash] = session
	return nil
}

func (r *fakeUserRepo) GetSessionByTokenHash(_ context.Context, tokenHash string) (*domain.UserSession, error) {
	session, ok := r.sessions[tokenHash]
	if !ok || session.RevokedAt != nil || time.Now().After(session.ExpiresAt) {
		return nil, errs.ErrNotFound
	}
	return session, nil
}

func (r *fakeUserRepo) RevokeSession(_ context.Context, sessionID uuid.UUID, reason string) error {
	for _, s := range r.sessions {
		if s.ID == sessionID {
			now := time.Now()
			s.RevokedAt = &now
			s.RevokedReason = &reason
		}
	}
	return nil
}

type fakeProfileRepo struct {
	names     map[uuid.UUID]string
	roles     map[uuid.UUID]string
	employers map[uuid.UUID]*domain.EmployerProfile
	seekers   map[uuid.UUID]*domain.JobSeekerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		names:     map[uuid.UUID]string{},
		roles:     map[uuid.UUID]string{},
		employers: map[uuid.UUID]*domain.EmployerProfile{},
		seekers:   map[uuid.UUID]*domain.JobSeekerProfile{},
	}
}

func (r *fakeProfileRepo) GetEmployerProfile(_ context.Context, userID uuid.UUID) (*domain.EmployerProfile, error) {
	profile, ok := r.employers[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) UpsertEmployerProfile(_ context.Context, profile *domain.EmployerProfile, _ string) error {
	copied := *profile
	r.employers[profile.UserID] = &copied
	r.names[profile.UserID] = profile.CompanyName
	return nil
}

func (r *fakeProfileRepo) GetJobSeekerProfile(_ context.Context, userID uuid.UUID) (*domain.JobSeekerProfile, error) {
	profile, ok := r.seekers[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) UpsertJobSeekerProfile(_ context.Context, profile *domain.JobSeekerProfile, _ string) error {
	copied := *profile
	r.seekers[profile.UserID] = &copied
	r.names[profile.UserID] = profile.FullName
	return nil
}

func (r *fakeProfileRepo) UpdateEmployerLogo(_ context.Context, userID uuid.UUID, logoPath string) error {
	profile, ok := r.employers[userID]
	if !ok {
		return errs.ErrNotFound
	}
	profile.LogoPath = &logoPath
	return nil
}

func (r *fakeProfileRepo) UpdateJobSeekerPicture(_ context.Context, userID uuid.UUID, picturePath string) error {
	profile, ok := r.seekers[userID]
	if !ok {
		return errs.ErrNotFound
	}
	profile.ProfilePicture = &picturePath
	return nil
}

func (r *fakeProfileRepo) GetSummary(_ context.Context, userID uuid.UUID) (*domain.ProfileSummary, error) {
	role, ok := r.roles[userID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	name := r.names[userID]
	if name == "" {
		name = domain.DisplayNamePlaceholder
	}
	return &domain.ProfileSummary{
		UserID:      userID,
		Role:        role,
		DisplayName: name,
	}, nil
}

type messagingFixture struct {
	messages *fakeMessageRepo
	users    *fakeUserRepo
	profiles *fakeProfileRepo
	svc      MessageService
}

func newMessagingFixture(users ...*domain.User) *messagingFixture {
	f := &messagingFixture{
		messages: newFakeMessageRepo(),
		users:    newFakeUserRepo(users...),
		profiles: newFakeProfileRepo(),
	}
	for _, u := range users {
		f.profiles.roles[u.ID] = u.Role
	}
	f.svc = NewMessageService(f.messages, f.users, f.profiles, logger.New("error"))
	return f
}

func newUser(role string) *domain.User {
	return &domain.User{
		ID:       uuid.New(),
		Email:    uuid.New().String() + "@example.com",
		Role:     role,
		IsActive: true,
	}
}

func Test_SendMessage_AppearsLastInThread(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employer := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employer)
	ctx := context.Background()

	_, err := f.svc.SendMessage(ctx, seeker.ID, seeker.Role, employer.ID, "Hello")
	req.NoError(err)
	sent, err := f.svc.SendMessage(ctx, seeker.ID, seeker.Role, employer.ID, "Are you hiring?")
	req.NoError(err)

	view, err := f.svc.OpenConversation(ctx, employer.ID, employer.Role, seeker.ID)
	req.NoError(err)
	req.Len(view.Messages, 2)
	req.Equal(sent.ID, view.Messages[1].ID)
	req.Equal("Are you hiring?", view.Messages[1].Body)
}

func Test_SendMessage_EmptyBody_Rejected(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employer := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employer)
	ctx := context.Background()

	_, err := f.svc.SendMessage(ctx, seeker.ID, seeker.Role, employer.ID, "   \n\t ")
	req.ErrorIs(err, errs.ErrEmptyMessage)
	req.Empty(f.messages.messages)
}

func Test_SendMessage_ToSelf_Rejected(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	f := newMessagingFixture(seeker)
	ctx := context.Background()

	_, err := f.svc.SendMessage(ctx, seeker.ID, seeker.Role, seeker.ID, "hi me")
	req.ErrorIs(err, errs.ErrSelfConversation)
	req.Empty(f.messages.messages)
}

func Test_SendMessage_BodyTrimmed(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employer := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employer)

	sent, err := f.svc.SendMessage(context.Background(), seeker.ID, seeker.Role, employer.ID, "  hello there  ")
	req.NoError(err)
	req.Equal("hello there", sent.Body)
	req.False(sent.IsRead)
}

func Test_SendMessage_CounterpartMissing_NotFound(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	f := newMessagingFixture(seeker)

	_, err := f.svc.SendMessage(context.Background(), seeker.ID, seeker.Role, uuid.New(), "hello")
	req.ErrorIs(err, errs.ErrCounterpartNotFound)
}

func Test_SendMessage_SameRoleCounterpart_NotFound(t *testing.T) {
	req := require.New(t)
	seekerA := newUser(domain.RoleJobSeeker)
	seekerB := newUser(domain.RoleJobSeeker)
	f := newMessagingFixture(seekerA, seekerB)

	_, err := f.svc.SendMessage(context.Background(), seekerA.ID, seekerA.Role, seekerB.ID, "psst")
	req.ErrorIs(err, errs.ErrCounterpartNotFound)
	req.Empty(f.messages.messages)
}

func Test_Thread_SymmetricBetweenParticipants(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employer := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employer)
	ctx := context.Background()

	_, err := f.svc.SendMessage(ctx, seeker.ID, seeker.Role, employer.ID, "Hello")
	req.NoError(err)
	_, err = f.svc.SendMessage(ctx, employer.ID, employer.Role, seeker.ID, "Hi back")
	req.NoError(err)

	seekerView, err := f.svc.OpenConversation(ctx, seeker.ID, seeker.Role, employer.ID)
	req.NoError(err)
	employerView, err := f.svc.OpenConversation(ctx, employer.ID, employer.Role, seeker.ID)
	req.NoError(err)

	req.Len(seekerView.Messages, 2)
	req.Len(employerView.Messages, 2)
	for i := range seekerView.Messages {
		req.Equal(seekerView.Messages[i].ID, employerView.Messages[i].ID)
	}
}

func Test_ListConversations_EmptyWithoutMessages(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employer := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employer)
	ctx := context.Background()

	seekerList, err := f.svc.ListConversations(ctx, seeker.ID, seeker.Role)
	req.NoError(err)
	req.Empty(seekerList)

	employerList, err := f.svc.ListConversations(ctx, employer.ID, employer.Role)
	req.NoError(err)
	req.Empty(employerList)
}

func Test_ListConversations_SortedByLastMessageDesc(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employerA := newUser(domain.RoleEmployer)
	employerB := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employerA, employerB)
	ctx := context.Background()

	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	_, err := f.messages.Append(ctx, seeker.ID, employerA.ID, "first", t0)
	req.NoError(err)
	_, err = f.messages.Append(ctx, seeker.ID, employerB.ID, "second", t0.Add(time.Hour))
	req.NoError(err)

	list, err := f.svc.ListConversations(ctx, seeker.ID, seeker.Role)
	req.NoError(err)
	req.Len(list, 2)
	req.Equal(employerB.ID, list[0].CounterpartID)
	req.Equal(employerA.ID, list[1].CounterpartID)
}

func Test_ListConversations_TieBrokenByCounterpartID(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employerA := newUser(domain.RoleEmployer)
	employerB := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employerA, employerB)
	ctx := context.Background()

	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	_, err := f.messages.Append(ctx, seeker.ID, employerA.ID, "one", at)
	req.NoError(err)
	_, err = f.messages.Append(ctx, seeker.ID, employerB.ID, "two", at)
	req.NoError(err)

	list, err := f.svc.ListConversations(ctx, seeker.ID, seeker.Role)
	req.NoError(err)
	req.Len(list, 2)
	req.True(strings.Compare(list[0].CounterpartID.String(), list[1].CounterpartID.String()) < 0)
}

func Test_ListConversations_ExcludesSameRoleCounterparts(t *testing.T) {
	req := require.New(t)
	employerA := newUser(domain.RoleEmployer)
	employerB := newUser(domain.RoleEmployer)
	seeker := newUser(domain.RoleJobSeeker)
	f := newMessagingFixture(employerA, employerB, seeker)
	ctx := context.Background()

	// A stray employer-to-employer row must never surface in the list.
	now := time.Now()
	_, err := f.messages.Append(ctx, employerB.ID, employerA.ID, "hello fellow employer", now)
	req.NoError(err)
	_, err = f.messages.Append(ctx, seeker.ID, employerA.ID, "application", now.Add(time.Minute))
	req.NoError(err)

	list, err := f.svc.ListConversations(ctx, employerA.ID, employerA.Role)
	req.NoError(err)
	req.Len(list, 1)
	req.Equal(seeker.ID, list[0].CounterpartID)
}

func Test_ConversationFlow_UnreadBadgeLifecycle(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employer := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employer)
	f.profiles.names[employer.ID] = "Acme Staffing"
	ctx := context.Background()

	t1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err := f.messages.Append(ctx, seeker.ID, employer.ID, "Hello", t1)
	req.NoError(err)
	_, err = f.messages.Append(ctx, employer.ID, seeker.ID, "Hi back", t1.Add(time.Minute))
	req.NoError(err)

	list, err := f.svc.ListConversations(ctx, seeker.ID, seeker.Role)
	req.NoError(err)
	req.Len(list, 1)
	req.Equal("Acme Staffing", list[0].CounterpartName)
	req.Equal("Hi back", list[0].LastMessageBody)
	req.Equal(1, list[0].UnreadCount)

	// Opening the conversation flips the employer's messages to read.
	_, err = f.svc.OpenConversation(ctx, seeker.ID, seeker.Role, employer.ID)
	req.NoError(err)

	list, err = f.svc.ListConversations(ctx, seeker.ID, seeker.Role)
	req.NoError(err)
	req.Len(list, 1)
	req.Equal(0, list[0].UnreadCount)
}

func Test_MarkReadFrom_Idempotent(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employer := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employer)
	ctx := context.Background()

	_, err := f.messages.Append(ctx, employer.ID, seeker.ID, "ping", time.Now())
	req.NoError(err)
	_, err = f.messages.Append(ctx, employer.ID, seeker.ID, "pong", time.Now())
	req.NoError(err)

	affected, err := f.messages.MarkReadFrom(ctx, employer.ID, seeker.ID)
	req.NoError(err)
	req.EqualValues(2, affected)

	affected, err = f.messages.MarkReadFrom(ctx, employer.ID, seeker.ID)
	req.NoError(err)
	req.EqualValues(0, affected)

	unread, err := f.messages.UnreadFrom(ctx, employer.ID, seeker.ID)
	req.NoError(err)
	req.Equal(0, unread)
}

func Test_OpenConversation_MissingCounterpart_NoReadStateMutation(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employer := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employer)
	ctx := context.Background()

	_, err := f.messages.Append(ctx, employer.ID, seeker.ID, "still unread", time.Now())
	req.NoError(err)

	_, err = f.svc.OpenConversation(ctx, seeker.ID, seeker.Role, uuid.New())
	req.ErrorIs(err, errs.ErrCounterpartNotFound)

	unread, err := f.messages.UnreadFrom(ctx, employer.ID, seeker.ID)
	req.NoError(err)
	req.Equal(1, unread)
}

func Test_OpenConversation_SenderReadFlagsUntouched(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employer := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employer)
	ctx := context.Background()

	_, err := f.messages.Append(ctx, seeker.ID, employer.ID, "my own message", time.Now())
	req.NoError(err)

	// The seeker opening the conversation must not mark their own
	// outgoing message read; only the employer can do that.
	_, err = f.svc.OpenConversation(ctx, seeker.ID, seeker.Role, employer.ID)
	req.NoError(err)

	unread, err := f.messages.UnreadFrom(ctx, seeker.ID, employer.ID)
	req.NoError(err)
	req.Equal(1, unread)
}

func Test_OpenConversation_ProfileMissing_UsesPlaceholder(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employer := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employer)
	ctx := context.Background()

	_, err := f.messages.Append(ctx, employer.ID, seeker.ID, "hi", time.Now())
	req.NoError(err)

	view, err := f.svc.OpenConversation(ctx, seeker.ID, seeker.Role, employer.ID)
	req.NoError(err)
	req.Equal(domain.DisplayNamePlaceholder, view.Counterpart.DisplayName)

	list, err := f.svc.ListConversations(ctx, seeker.ID, seeker.Role)
	req.NoError(err)
	req.Len(list, 1)
	req.Equal(domain.DisplayNamePlaceholder, list[0].CounterpartName)
}

func Test_OpenConversation_ReadMarkFailure_StillReturnsThread(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employer := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employer)
	ctx := context.Background()

	_, err := f.messages.Append(ctx, employer.ID, seeker.ID, "hi", time.Now())
	req.NoError(err)

	flaky := &flakyMessageRepo{
		fakeMessageRepo: f.messages,
		markReadErr:     fmt.Errorf("%w: mark read: connection reset", errs.ErrStorage),
	}
	svc := NewMessageService(flaky, f.users, f.profiles, logger.New("error"))

	// A failed read-mark must not block opening the conversation; the
	// unread badge just stays stale until the next refresh.
	view, err := svc.OpenConversation(ctx, seeker.ID, seeker.Role, employer.ID)
	req.NoError(err)
	req.Len(view.Messages, 1)

	unread, err := f.messages.UnreadFrom(ctx, employer.ID, seeker.ID)
	req.NoError(err)
	req.Equal(1, unread)

	list, err := svc.ListConversations(ctx, seeker.ID, seeker.Role)
	req.NoError(err)
	req.Len(list, 1)
	req.Equal(1, list[0].UnreadCount)
}

func Test_SendMessage_StorageFailure_Propagates(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employer := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employer)

	flaky := &flakyMessageRepo{
		fakeMessageRepo: f.messages,
		appendErr:       fmt.Errorf("%w: append message: connection refused", errs.ErrStorage),
	}
	svc := NewMessageService(flaky, f.users, f.profiles, logger.New("error"))

	_, err := svc.SendMessage(context.Background(), seeker.ID, seeker.Role, employer.ID, "hello")
	req.ErrorIs(err, errs.ErrStorage)
	req.Empty(f.messages.messages)
}

func Test_Thread_StableOrderOnEqualTimestamps(t *testing.T) {
	req := require.New(t)
	seeker := newUser(domain.RoleJobSeeker)
	employer := newUser(domain.RoleEmployer)
	f := newMessagingFixture(seeker, employer)
	ctx := context.Background()

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	first, err := f.messages.Append(ctx, seeker.ID, employer.ID, "first", at)
	req.NoError(err)
	second, err := f.messages.Append(ctx, employer.ID, seeker.ID, "second", at)
	req.NoError(err)

	thread, err := f.messages.Thread(ctx, employer.ID, seeker.ID)
	req.NoError(err)
	req.Len(thread, 2)
	req.Equal(first.ID, thread[0].ID)
	req.Equal(second.ID, thread[1].ID)
}
