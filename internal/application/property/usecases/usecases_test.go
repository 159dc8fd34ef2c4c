package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhadat/marketplace/internal/domain/property"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/errors"
)

const ownerID uint = 10

func validDetails() property.Details {
	return property.Details{
		Title:       "Nhà phố Quận 3",
		Description: "Nhà 3 tầng, hẻm xe hơi, gần chợ và trường học",
		Price:       8.5,
		PriceUnit:   vo.PriceUnitBillion,
		Location:    "Quận 3, TP.HCM",
		Area:        72,
	}
}

func storedListing(t *testing.T, status vo.PropertyStatus) *property.Property {
	t.Helper()
	d := validDetails()
	d.Normalize()
	var approvedAt *time.Time
	var reason *string
	if status == vo.PropertyStatusApproved {
		now := time.Now()
		approvedAt = &now
	}
	if status == vo.PropertyStatusRejected {
		r := "Thiếu ảnh"
		reason = &r
	}
	p, err := property.ReconstructProperty(property.ReconstructParams{
		ID:              5,
		SID:             "prop_abc",
		OwnerID:         ownerID,
		Details:         d,
		Status:          string(status),
		ApprovedAt:      approvedAt,
		RejectionReason: reason,
		Version:         1,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	})
	require.NoError(t, err)
	return p
}

func testOwner(t *testing.T) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(user.ReconstructParams{
		ID: ownerID, SID: "usr_owner", Email: "owner@example.com", Name: "Chủ nhà", Role: "user", Status: "active",
	})
	require.NoError(t, err)
	return u
}

func repoWith(p *property.Property) *mockPropertyRepository {
	return &mockPropertyRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*property.Property, error) {
			if sid != p.SID() {
				return nil, errors.NewNotFoundError("property not found")
			}
			return p, nil
		},
	}
}

func TestCreatePropertyUseCase_Success(t *testing.T) {
	tx := &passthroughTx{}
	consumed := 0
	ledger := &mockLedger{
		ConsumeOneCreditFunc: func(ctx context.Context, userID uint) (user.CreditSource, error) {
			consumed++
			assert.Equal(t, ownerID, userID)
			return user.CreditSourceFree, nil
		},
	}
	var saved *property.Property
	repo := &mockPropertyRepository{
		CreateFunc: func(ctx context.Context, p *property.Property) error {
			saved = p
			return p.SetID(42)
		},
	}

	resp, err := NewCreatePropertyUseCase(tx, ledger, repo, newTestLogger()).Execute(context.Background(), CreatePropertyCommand{
		OwnerID: ownerID,
		Details: validDetails(),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, consumed)
	require.NotNil(t, saved)
	assert.Equal(t, vo.PropertyStatusPending.String(), resp.Status)
	assert.Equal(t, "8.500.000.000 ₫", resp.PriceLabel)
	assert.Equal(t, saved.SID(), resp.ID)
}

func TestCreatePropertyUseCase_Failures(t *testing.T) {
	tests := []struct {
		name       string
		details    property.Details
		consumeErr error
		wantErr    func(error) bool
		wantLedger bool
	}{
		{
			name:       "insufficient credits persists nothing",
			details:    validDetails(),
			consumeErr: errors.NewInsufficientCreditsError(),
			wantErr:    errors.IsInsufficientCreditsError,
			wantLedger: true,
		},
		{
			name:       "locked account",
			details:    validDetails(),
			consumeErr: errors.NewForbiddenError("Account locked"),
			wantErr:    errors.IsForbiddenError,
			wantLedger: true,
		},
		{
			name: "invalid payload consumes nothing",
			details: func() property.Details {
				d := validDetails()
				d.Title = "abc"
				return d
			}(),
			wantErr: errors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledgerCalled := false
			ledger := &mockLedger{
				ConsumeOneCreditFunc: func(ctx context.Context, userID uint) (user.CreditSource, error) {
					ledgerCalled = true
					return "", tt.consumeErr
				},
			}
			repo := &mockPropertyRepository{
				CreateFunc: func(ctx context.Context, p *property.Property) error {
					t.Fatal("property must not be persisted")
					return nil
				},
			}

			_, err := NewCreatePropertyUseCase(&passthroughTx{}, ledger, repo, newTestLogger()).Execute(context.Background(), CreatePropertyCommand{
				OwnerID: ownerID,
				Details: tt.details,
			})

			require.Error(t, err)
			assert.True(t, tt.wantErr(err), "unexpected error %v", err)
			assert.Equal(t, tt.wantLedger, ledgerCalled)
		})
	}
}

func TestUpdatePropertyUseCase_EditResetsModeration(t *testing.T) {
	for _, status := range []vo.PropertyStatus{vo.PropertyStatusApproved, vo.PropertyStatusRejected, vo.PropertyStatusPending} {
		t.Run(string(status), func(t *testing.T) {
			listing := storedListing(t, status)
			repo := repoWith(listing)
			updated := false
			repo.UpdateFunc = func(ctx context.Context, p *property.Property) error {
				updated = true
				return nil
			}

			newPrice := 9.0
			resp, err := NewUpdatePropertyUseCase(repo, nil, newTestLogger()).Execute(context.Background(), UpdatePropertyCommand{
				PropertySID: "prop_abc",
				CallerID:    ownerID,
				CallerRole:  authorization.RoleUser,
				Patch:       PropertyPatch{Price: &newPrice},
			})

			require.NoError(t, err)
			assert.True(t, updated)
			assert.Equal(t, vo.PropertyStatusPending.String(), resp.Status)
			assert.Nil(t, resp.ApprovedAt)
			assert.Nil(t, resp.RejectionReason)
			assert.Equal(t, 9.0, resp.Price)
			assert.Equal(t, validDetails().Title, resp.Title)
		})
	}
}

func TestUpdatePropertyUseCase_RemovesReplacedImages(t *testing.T) {
	withPhotos := func(t *testing.T) *property.Property {
		listing := storedListing(t, vo.PropertyStatusApproved)
		d := listing.Details()
		d.Images = []string{"/uploads/properties/front.jpg", "/uploads/properties/yard.jpg"}
		p, err := property.ReconstructProperty(property.ReconstructParams{
			ID: listing.ID(), SID: listing.SID(), OwnerID: ownerID, Details: d,
			Status: string(vo.PropertyStatusApproved), Version: 1,
			CreatedAt: time.Now(), UpdatedAt: time.Now(),
		})
		require.NoError(t, err)
		return p
	}
	cmd := UpdatePropertyCommand{
		PropertySID: "prop_abc",
		CallerID:    ownerID,
		CallerRole:  authorization.RoleUser,
		Patch:       PropertyPatch{Images: []string{"/uploads/properties/yard.jpg", "/uploads/properties/kitchen.jpg"}},
	}

	t.Run("dropped photos are removed after save", func(t *testing.T) {
		remover := &recordingRemover{}
		resp, err := NewUpdatePropertyUseCase(repoWith(withPhotos(t)), remover, newTestLogger()).Execute(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, cmd.Patch.Images, resp.Images)
		assert.Equal(t, []string{"/uploads/properties/front.jpg"}, remover.removed)
	})

	t.Run("photos kept when the patch has none", func(t *testing.T) {
		remover := &recordingRemover{}
		title := "Tiêu đề mới cho tin"
		_, err := NewUpdatePropertyUseCase(repoWith(withPhotos(t)), remover, newTestLogger()).Execute(context.Background(), UpdatePropertyCommand{
			PropertySID: "prop_abc", CallerID: ownerID, CallerRole: authorization.RoleUser,
			Patch: PropertyPatch{Title: &title},
		})
		require.NoError(t, err)
		assert.Empty(t, remover.removed)
	})

	t.Run("failed save removes nothing", func(t *testing.T) {
		remover := &recordingRemover{}
		repo := repoWith(withPhotos(t))
		repo.UpdateFunc = func(ctx context.Context, p *property.Property) error {
			return errors.NewConflictError("Property was modified by another request, reload and try again")
		}
		_, err := NewUpdatePropertyUseCase(repo, remover, newTestLogger()).Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.Empty(t, remover.removed)
	})
}

func TestUpdatePropertyUseCase_Guards(t *testing.T) {
	title := "Tiêu đề mới cho tin"
	tests := []struct {
		name     string
		status   vo.PropertyStatus
		callerID uint
		role     authorization.UserRole
		wantErr  func(error) bool
	}{
		{name: "admin edits any listing", status: vo.PropertyStatusApproved, callerID: 99, role: authorization.RoleAdmin},
		{name: "staff is not the owner", status: vo.PropertyStatusApproved, callerID: 99, role: authorization.RoleStaff, wantErr: errors.IsForbiddenError},
		{name: "stranger", status: vo.PropertyStatusApproved, callerID: 99, role: authorization.RoleUser, wantErr: errors.IsForbiddenError},
		{name: "sold listing cannot be edited", status: vo.PropertyStatusSold, callerID: ownerID, role: authorization.RoleUser, wantErr: errors.IsConflictError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repoWith(storedListing(t, tt.status))
			_, err := NewUpdatePropertyUseCase(repo, nil, newTestLogger()).Execute(context.Background(), UpdatePropertyCommand{
				PropertySID: "prop_abc",
				CallerID:    tt.callerID,
				CallerRole:  tt.role,
				Patch:       PropertyPatch{Title: &title},
			})
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.True(t, tt.wantErr(err), "unexpected error %v", err)
		})
	}
}

func TestModeratePropertyUseCase(t *testing.T) {
	tests := []struct {
		name       string
		from       vo.PropertyStatus
		status     string
		reason     string
		wantStatus string
		wantReason string
		wantErr    func(error) bool
	}{
		{name: "approve pending", from: vo.PropertyStatusPending, status: "approved", wantStatus: "approved"},
		{name: "reject with reason", from: vo.PropertyStatusPending, status: "rejected", reason: "Thiếu ảnh", wantStatus: "rejected", wantReason: "Thiếu ảnh"},
		{name: "reject uses default reason", from: vo.PropertyStatusApproved, status: "rejected", wantStatus: "rejected", wantReason: constants.DefaultRejectionReason},
		{name: "invalid target", from: vo.PropertyStatusPending, status: "sold", wantErr: errors.IsValidationError},
		{name: "rejected needs an edit first", from: vo.PropertyStatusRejected, status: "approved", wantErr: errors.IsConflictError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repoWith(storedListing(t, tt.from))
			users := &mockUserRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return testOwner(t), nil
				},
			}
			notifier := newMockNotifier(nil)

			resp, err := NewModeratePropertyUseCase(repo, users, notifier, newTestLogger()).Execute(context.Background(), ModeratePropertyCommand{
				PropertySID: "prop_abc",
				Status:      tt.status,
				Reason:      tt.reason,
				ModeratorID: 1,
			})

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.Status)
			if tt.wantReason != "" {
				require.NotNil(t, resp.RejectionReason)
				assert.Equal(t, tt.wantReason, *resp.RejectionReason)
				assert.Nil(t, resp.ApprovedAt)
			} else {
				assert.Nil(t, resp.RejectionReason)
				assert.NotNil(t, resp.ApprovedAt)
			}

			notice, ok := notifier.wait()
			require.True(t, ok, "owner was not notified")
			assert.Equal(t, "owner@example.com", notice.To)
			assert.Equal(t, tt.wantStatus, string(notice.Status))
			assert.False(t, notice.DecidedAt.IsZero())
		})
	}
}

func TestModeratePropertyUseCase_NotifierFailureDoesNotBlock(t *testing.T) {
	repo := repoWith(storedListing(t, vo.PropertyStatusPending))
	users := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testOwner(t), nil
		},
	}
	notifier := newMockNotifier(stderrors.New("smtp down"))

	resp, err := NewModeratePropertyUseCase(repo, users, notifier, newTestLogger()).Execute(context.Background(), ModeratePropertyCommand{
		PropertySID: "prop_abc",
		Status:      "approved",
	})

	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	_, ok := notifier.wait()
	assert.True(t, ok)
}

func TestPropertyWrites_ConcurrentChangeIsConflict(t *testing.T) {
	conflicting := func(listing *property.Property) *mockPropertyRepository {
		repo := repoWith(listing)
		repo.UpdateFunc = func(ctx context.Context, p *property.Property) error {
			return errors.NewConflictError("Property was modified by another request, reload and try again")
		}
		return repo
	}
	title := "Tiêu đề mới cho tin"

	t.Run("edit", func(t *testing.T) {
		_, err := NewUpdatePropertyUseCase(conflicting(storedListing(t, vo.PropertyStatusApproved)), nil, newTestLogger()).
			Execute(context.Background(), UpdatePropertyCommand{
				PropertySID: "prop_abc", CallerID: ownerID, CallerRole: authorization.RoleUser,
				Patch: PropertyPatch{Title: &title},
			})
		assert.True(t, errors.IsConflictError(err), "unexpected error %v", err)
	})

	t.Run("mark sold", func(t *testing.T) {
		_, err := NewMarkSoldUseCase(conflicting(storedListing(t, vo.PropertyStatusApproved)), newTestLogger()).
			Execute(context.Background(), MarkSoldCommand{PropertySID: "prop_abc", CallerID: ownerID, CallerRole: authorization.RoleUser})
		assert.True(t, errors.IsConflictError(err), "unexpected error %v", err)
	})

	t.Run("moderation sends no notice", func(t *testing.T) {
		notifier := newMockNotifier(nil)
		_, err := NewModeratePropertyUseCase(conflicting(storedListing(t, vo.PropertyStatusPending)), &mockUserRepository{}, notifier, newTestLogger()).
			Execute(context.Background(), ModeratePropertyCommand{PropertySID: "prop_abc", Status: "approved"})
		assert.True(t, errors.IsConflictError(err), "unexpected error %v", err)
		assert.Empty(t, notifier.sent)
	})
}

func TestDeletePropertyUseCase(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		repo := repoWith(storedListing(t, vo.PropertyStatusApproved))
		var deleted uint
		repo.DeleteFunc = func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		}

		err := NewDeletePropertyUseCase(repo, newTestLogger()).Execute(context.Background(), DeletePropertyCommand{
			PropertySID: "prop_abc", CallerID: ownerID, CallerRole: authorization.RoleUser,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(5), deleted)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		repo := repoWith(storedListing(t, vo.PropertyStatusApproved))
		repo.DeleteFunc = func(ctx context.Context, id uint) error {
			t.Fatal("must not delete")
			return nil
		}

		err := NewDeletePropertyUseCase(repo, newTestLogger()).Execute(context.Background(), DeletePropertyCommand{
			PropertySID: "prop_abc", CallerID: 3, CallerRole: authorization.RoleStaff,
		})
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("missing listing", func(t *testing.T) {
		repo := repoWith(storedListing(t, vo.PropertyStatusApproved))
		err := NewDeletePropertyUseCase(repo, newTestLogger()).Execute(context.Background(), DeletePropertyCommand{
			PropertySID: "prop_missing", CallerID: ownerID, CallerRole: authorization.RoleUser,
		})
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestMarkSoldUseCase(t *testing.T) {
	resp, err := NewMarkSoldUseCase(repoWith(storedListing(t, vo.PropertyStatusApproved)), newTestLogger()).Execute(context.Background(), MarkSoldCommand{
		PropertySID: "prop_abc", CallerID: ownerID, CallerRole: authorization.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, "sold", resp.Status)

	_, err = NewMarkSoldUseCase(repoWith(storedListing(t, vo.PropertyStatusPending)), newTestLogger()).Execute(context.Background(), MarkSoldCommand{
		PropertySID: "prop_abc", CallerID: ownerID, CallerRole: authorization.RoleUser,
	})
	assert.True(t, errors.IsConflictError(err))
}

func TestListPropertiesUseCase_Visibility(t *testing.T) {
	tests := []struct {
		name       string
		role       authorization.UserRole
		status     string
		wantStatus vo.PropertyStatus
		wantErr    func(error) bool
	}{
		{name: "anonymous defaults to approved", role: "", wantStatus: vo.PropertyStatusApproved},
		{name: "user may ask for approved", role: authorization.RoleUser, status: "approved", wantStatus: vo.PropertyStatusApproved},
		{name: "user may not ask for pending", role: authorization.RoleUser, status: "pending", wantErr: errors.IsForbiddenError},
		{name: "staff without filter sees approved", role: authorization.RoleStaff, wantStatus: vo.PropertyStatusApproved},
		{name: "staff filters pending", role: authorization.RoleStaff, status: "pending", wantStatus: vo.PropertyStatusPending},
		{name: "admin filters rejected", role: authorization.RoleAdmin, status: "rejected", wantStatus: vo.PropertyStatusRejected},
		{name: "unknown status", role: authorization.RoleAdmin, status: "draft", wantErr: errors.IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got property.ListFilter
			repo := &mockPropertyRepository{
				ListFunc: func(ctx context.Context, filter property.ListFilter) ([]*property.Property, int64, error) {
					got = filter
					return []*property.Property{storedListing(t, vo.PropertyStatusApproved)}, 1, nil
				},
			}
			users := &mockUserRepository{
				GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
					assert.Equal(t, []uint{ownerID}, ids)
					return []*user.User{testOwner(t)}, nil
				},
			}

			result, err := NewListPropertiesUseCase(repo, users, newTestLogger()).Execute(context.Background(), ListPropertiesQuery{
				CallerRole: tt.role,
				Status:     tt.status,
			})

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, constants.DefaultPage, result.Page)
			assert.Equal(t, constants.DefaultPageSize, result.PageSize)
			require.Len(t, result.Items, 1)
			require.NotNil(t, result.Items[0].Owner)
			assert.Equal(t, "usr_owner", result.Items[0].Owner.ID)
		})
	}
}

func TestListPropertiesUseCase_FilterValidation(t *testing.T) {
	lo, hi := 5.0, 1.0
	uc := NewListPropertiesUseCase(&mockPropertyRepository{}, &mockUserRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), ListPropertiesQuery{MinPrice: &lo, MaxPrice: &hi})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListPropertiesQuery{ListingType: "lease"})
	assert.True(t, errors.IsValidationError(err))

	result, err := uc.Execute(context.Background(), ListPropertiesQuery{PropertyType: "villa", PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, constants.MaxPageSize, result.PageSize)
	assert.Empty(t, result.Items)
}

func TestGetPropertyUseCase(t *testing.T) {
	users := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testOwner(t), nil
		},
	}

	t.Run("approved listing is public", func(t *testing.T) {
		resp, err := NewGetPropertyUseCase(repoWith(storedListing(t, vo.PropertyStatusApproved)), users, stubRenderer{}, newTestLogger()).
			Execute(context.Background(), GetPropertyQuery{PropertySID: "prop_abc"})
		require.NoError(t, err)
		assert.Equal(t, "Chủ nhà", resp.Owner.Name)
		assert.Contains(t, resp.DescriptionHTML, "<p>")
	})

	t.Run("pending listing hidden from strangers", func(t *testing.T) {
		_, err := NewGetPropertyUseCase(repoWith(storedListing(t, vo.PropertyStatusPending)), users, stubRenderer{}, newTestLogger()).
			Execute(context.Background(), GetPropertyQuery{PropertySID: "prop_abc", CallerID: 77, CallerRole: authorization.RoleUser})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("pending listing visible to owner and staff", func(t *testing.T) {
		uc := NewGetPropertyUseCase(repoWith(storedListing(t, vo.PropertyStatusPending)), users, stubRenderer{}, newTestLogger())
		_, err := uc.Execute(context.Background(), GetPropertyQuery{PropertySID: "prop_abc", CallerID: ownerID, CallerRole: authorization.RoleUser})
		require.NoError(t, err)
		_, err = uc.Execute(context.Background(), GetPropertyQuery{PropertySID: "prop_abc", CallerID: 2, CallerRole: authorization.RoleStaff})
		require.NoError(t, err)
	})
}

func TestListMyPropertiesUseCase(t *testing.T) {
	repo := &mockPropertyRepository{
		ListByOwnerFunc: func(ctx context.Context, id uint) ([]*property.Property, error) {
			assert.Equal(t, ownerID, id)
			return []*property.Property{storedListing(t, vo.PropertyStatusRejected)}, nil
		},
	}

	items, err := NewListMyPropertiesUseCase(repo, newTestLogger()).Execute(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "rejected", items[0].Status)
}
