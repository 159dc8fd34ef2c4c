package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/shared/errors"
)

// APIResponse is the envelope every JSON endpoint answers with.
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse is the data payload of paginated endpoints.
type ListResponse struct {
	Items      any   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, APIResponse{Success: true, Data: data, Message: message})
}

// CreatedResponse answers 201 with an optional message.
func CreatedResponse(c *gin.Context, data any, message ...string) {
	msg := "Created"
	if len(message) > 0 {
		msg = message[0]
	}
	SuccessResponse(c, http.StatusCreated, msg, data)
}

func ListSuccessResponse(c *gin.Context, items any, total int64, page, pageSize int) {
	SuccessResponse(c, http.StatusOK, "", ListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(total, pageSize),
	})
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorResponseWithError maps an AppError to its status and envelope.
// Anything else is reported as a bare 500 so internal details never reach
// the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		c.JSON(http.StatusInternalServerError, APIResponse{
			Error: &ErrorInfo{
				Type:    string(errors.ErrorTypeInternal),
				Message: "Internal server error occurred",
			},
		})
		return
	}

	c.JSON(appErr.Code, APIResponse{
		Error: &ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}
