package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/application/admin/usecases"
	"github.com/nhadat/marketplace/internal/shared/id"
	"github.com/nhadat/marketplace/internal/shared/logger"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

type AdminHandler struct {
	statsUC      getStatsUseCase
	listUsersUC  listUsersUseCase
	toggleLockUC toggleUserLockUseCase
	logger       logger.Interface
}

func NewAdminHandler(
	statsUC getStatsUseCase,
	listUsersUC listUsersUseCase,
	toggleLockUC toggleUserLockUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		statsUC:      statsUC,
		listUsersUC:  listUsersUC,
		toggleLockUC: toggleLockUC,
		logger:       logger,
	}
}

// Stats returns the dashboard counters
// @Summary Dashboard statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.StatsResponse}
// @Router /api/admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers pages through accounts
// @Summary List users
// @Tags Admin
// @Produce json
// @Param role query string false "user|staff|admin"
// @Param status query string false "active|locked"
// @Param search query string false "Name or email"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Role:     c.Query("role"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ToggleUserLock flips an account between active and locked
// @Summary Lock or unlock a user
// @Tags Admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse{data=userdto.UserResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/users/{id}/toggle [patch]
func (h *AdminHandler) ToggleUserLock(c *gin.Context) {
	adminID, _, ok := requireCaller(c)
	if !ok {
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixUser, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleLockUC.Execute(c.Request.Context(), usecases.ToggleUserLockCommand{
		UserSID: sid,
		AdminID: adminID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("user lock toggled", "target_sid", sid, "admin_id", adminID, "status", result.Status)
	utils.SuccessResponse(c, http.StatusOK, "User status updated", result)
}
