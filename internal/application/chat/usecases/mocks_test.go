package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/nhadat/marketplace/internal/application/chat/dto"
	"github.com/nhadat/marketplace/internal/domain/chat"
	"github.com/nhadat/marketplace/internal/domain/property"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type mockChatRepository struct {
	CreateFunc             func(ctx context.Context, c *chat.Chat) error
	GetByIDFunc            func(ctx context.Context, id uint) (*chat.Chat, error)
	GetBySIDFunc           func(ctx context.Context, sid string) (*chat.Chat, error)
	FindByParticipantsFunc func(ctx context.Context, propertyID, sellerID, buyerID uint) (*chat.Chat, error)
	ListForUserFunc        func(ctx context.Context, userID uint) ([]*chat.Chat, error)
	UpdateLastMessageFunc  func(ctx context.Context, chatID uint, content string, at time.Time) error
}

func (m *mockChatRepository) Create(ctx context.Context, c *chat.Chat) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockChatRepository) GetByID(ctx context.Context, id uint) (*chat.Chat, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("chat not found")
}

func (m *mockChatRepository) GetBySID(ctx context.Context, sid string) (*chat.Chat, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, errors.NewNotFoundError("chat not found")
}

func (m *mockChatRepository) FindByParticipants(ctx context.Context, propertyID, sellerID, buyerID uint) (*chat.Chat, error) {
	if m.FindByParticipantsFunc != nil {
		return m.FindByParticipantsFunc(ctx, propertyID, sellerID, buyerID)
	}
	return nil, nil
}

func (m *mockChatRepository) ListForUser(ctx context.Context, userID uint) ([]*chat.Chat, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockChatRepository) UpdateLastMessage(ctx context.Context, chatID uint, content string, at time.Time) error {
	if m.UpdateLastMessageFunc != nil {
		return m.UpdateLastMessageFunc(ctx, chatID, content, at)
	}
	return nil
}

// memoryMessages keeps messages in insertion order and applies the same read
// rules as the SQL repository.
type memoryMessages struct {
	mu   sync.Mutex
	next uint
	rows []*chat.Message
}

func (s *memoryMessages) Create(ctx context.Context, msg *chat.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	if err := msg.SetID(s.next); err != nil {
		return err
	}
	s.rows = append(s.rows, msg)
	return nil
}

func (s *memoryMessages) ListRecent(ctx context.Context, chatID uint, limit int) ([]*chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*chat.Message
	for _, m := range s.rows {
		if m.ChatID() == chatID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (s *memoryMessages) MarkReadForViewer(ctx context.Context, chatID, viewerID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, m := range s.rows {
		if m.ChatID() == chatID && m.SenderID() != viewerID && !m.IsRead() {
			m.MarkRead()
			n++
		}
	}
	return n, nil
}

func (s *memoryMessages) CountUnread(ctx context.Context, chatIDs []uint, viewerID uint) (map[uint]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := map[uint]bool{}
	for _, id := range chatIDs {
		wanted[id] = true
	}
	out := map[uint]int64{}
	for _, m := range s.rows {
		if wanted[m.ChatID()] && m.SenderID() != viewerID && !m.IsRead() {
			out[m.ChatID()]++
		}
	}
	return out, nil
}

type stubUsers struct {
	byID map[uint]*user.User
}

func (s *stubUsers) Create(ctx context.Context, u *user.User) error { return nil }

func (s *stubUsers) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (s *stubUsers) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := s.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *stubUsers) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	return nil, errors.NewNotFoundError("user not found")
}

func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (s *stubUsers) Update(ctx context.Context, u *user.User) error { return nil }

func (s *stubUsers) UpdateIdentity(ctx context.Context, u *user.User) error { return nil }

func (s *stubUsers) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (s *stubUsers) Count(ctx context.Context) (int64, error) { return 0, nil }

type stubProperties struct {
	listing *property.Property
}

func (s *stubProperties) Create(ctx context.Context, p *property.Property) error { return nil }

func (s *stubProperties) GetByID(ctx context.Context, id uint) (*property.Property, error) {
	if s.listing != nil && s.listing.ID() == id {
		return s.listing, nil
	}
	return nil, errors.NewNotFoundError("property not found")
}

func (s *stubProperties) GetBySID(ctx context.Context, sid string) (*property.Property, error) {
	if s.listing != nil && s.listing.SID() == sid {
		return s.listing, nil
	}
	return nil, errors.NewNotFoundError("property not found")
}

func (s *stubProperties) Update(ctx context.Context, p *property.Property) error { return nil }

func (s *stubProperties) Delete(ctx context.Context, id uint) error { return nil }

func (s *stubProperties) List(ctx context.Context, filter property.ListFilter) ([]*property.Property, int64, error) {
	return nil, 0, nil
}

func (s *stubProperties) ListByOwner(ctx context.Context, ownerID uint) ([]*property.Property, error) {
	return nil, nil
}

func (s *stubProperties) Count(ctx context.Context, status *vo.PropertyStatus) (int64, error) {
	return 0, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	recipients []uint
	messages   []*dto.MessageResponse
}

func (p *recordingPublisher) PublishMessage(recipients []uint, msg *dto.MessageResponse) {
	p.recipients = recipients
	p.messages = append(p.messages, msg)
}

func newTestLogger() logger.Interface {
	return logger.NewNopLogger()
}
