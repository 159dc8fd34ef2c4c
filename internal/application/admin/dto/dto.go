package dto

import (
	userdto "github.com/nhadat/marketplace/internal/application/user/dto"
)

// StatsResponse is the admin dashboard snapshot.
type StatsResponse struct {
	TotalUsers        int64 `json:"total_users"`
	TotalProperties   int64 `json:"total_properties"`
	PendingProperties int64 `json:"pending_properties"`
}

type ListUsersResult struct {
	Items    []*userdto.UserResponse `json:"items"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}
