package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/application/order/dto"
	"github.com/nhadat/marketplace/internal/application/order/usecases"
	"github.com/nhadat/marketplace/internal/shared/id"
	"github.com/nhadat/marketplace/internal/shared/logger"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

// OrderHandler serves the package catalog, purchases and the back-office
// settlement queue.
type OrderHandler struct {
	listPackagesUC listPackagesUseCase
	createOrderUC  createOrderUseCase
	listMineUC     listMyOrdersUseCase
	listOrdersUC   listOrdersUseCase
	markPaidUC     markPaidUseCase
	logger         logger.Interface
}

func NewOrderHandler(
	listPackagesUC listPackagesUseCase,
	createOrderUC createOrderUseCase,
	listMineUC listMyOrdersUseCase,
	listOrdersUC listOrdersUseCase,
	markPaidUC markPaidUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		listPackagesUC: listPackagesUC,
		createOrderUC:  createOrderUC,
		listMineUC:     listMineUC,
		listOrdersUC:   listOrdersUC,
		markPaidUC:     markPaidUC,
		logger:         logger,
	}
}

// ListPackages returns the active catalog
// @Summary List packages
// @Tags Packages
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.PackageResponse}
// @Router /api/packages [get]
func (h *OrderHandler) ListPackages(c *gin.Context) {
	result, err := h.listPackagesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create places a pending order for a package
// @Summary Create order
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Package slug"
// @Success 201 {object} utils.APIResponse{data=dto.OrderResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, _, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	result, err := h.createOrderUC.Execute(c.Request.Context(), usecases.CreateOrderCommand{
		UserID:      userID,
		PackageSlug: req.PackageSlug,
		Notes:       req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Order created, waiting for payment confirmation")
}

// ListMine returns the caller's orders
// @Summary My orders
// @Tags Orders
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.OrderResponse}
// @Router /api/orders/me [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, _, ok := requireCaller(c)
	if !ok {
		return
	}

	result, err := h.listMineUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List is the staff order queue
// @Summary List orders
// @Tags Admin
// @Produce json
// @Param status query string false "pending|paid|cancelled"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /api/admin/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	result, err := h.listOrdersUC.Execute(c.Request.Context(), usecases.ListOrdersQuery{
		Status:   c.Query("status"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// MarkPaid settles an order and grants its credits. Repeating the call
// returns the already settled order.
// @Summary Mark order paid
// @Tags Admin
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} utils.APIResponse{data=dto.OrderResponse}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/admin/orders/{id}/mark-paid [post]
func (h *OrderHandler) MarkPaid(c *gin.Context) {
	staffID, _, ok := requireCaller(c)
	if !ok {
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixOrder, "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markPaidUC.Execute(c.Request.Context(), usecases.MarkPaidCommand{
		OrderSID: sid,
		StaffID:  staffID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order marked as paid", result)
}
