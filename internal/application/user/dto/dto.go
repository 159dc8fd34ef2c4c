package dto

import (
	"time"

	"github.com/nhadat/marketplace/internal/domain/user"
)

// UserResponse is the caller's own profile, including credit balances.
type UserResponse struct {
	ID                    string    `json:"id"`
	Email                 string    `json:"email"`
	Name                  string    `json:"name"`
	Avatar                string    `json:"avatar,omitempty"`
	Phone                 string    `json:"phone,omitempty"`
	Role                  string    `json:"role"`
	Status                string    `json:"status"`
	FreeListingsRemaining int       `json:"free_listings_remaining"`
	PaidListingsRemaining int       `json:"paid_listings_remaining"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// UserSummary is the public view of a user embedded in listings and chats.
type UserSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:                    u.SID(),
		Email:                 u.Email().String(),
		Name:                  u.Name(),
		Avatar:                u.Avatar(),
		Phone:                 u.Phone(),
		Role:                  u.Role().String(),
		Status:                u.Status().String(),
		FreeListingsRemaining: u.FreeListingsRemaining(),
		PaidListingsRemaining: u.PaidListingsRemaining(),
		CreatedAt:             u.CreatedAt(),
		UpdatedAt:             u.UpdatedAt(),
	}
}

func ToUserResponses(users []*user.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

func ToUserSummary(u *user.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:     u.SID(),
		Name:   u.Name(),
		Email:  u.Email().String(),
		Avatar: u.Avatar(),
		Phone:  u.Phone(),
	}
}

// SummariesByID indexes users by internal ID for joining onto listings and chats.
func SummariesByID(users []*user.User) map[uint]*UserSummary {
	out := make(map[uint]*UserSummary, len(users))
	for _, u := range users {
		out[u.ID()] = ToUserSummary(u)
	}
	return out
}
