package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/application/property/usecases"
	"github.com/nhadat/marketplace/internal/domain/property"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/id"
	"github.com/nhadat/marketplace/internal/shared/logger"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

const imagesField = "images"

type PropertyHandler struct {
	createUC   createPropertyUseCase
	updateUC   updatePropertyUseCase
	deleteUC   deletePropertyUseCase
	moderateUC moderatePropertyUseCase
	markSoldUC markSoldUseCase
	listUC     listPropertiesUseCase
	listMineUC listMyPropertiesUseCase
	getUC      getPropertyUseCase
	images     imageStore
	maxFiles   int
	logger     logger.Interface
}

func NewPropertyHandler(
	createUC createPropertyUseCase,
	updateUC updatePropertyUseCase,
	deleteUC deletePropertyUseCase,
	moderateUC moderatePropertyUseCase,
	markSoldUC markSoldUseCase,
	listUC listPropertiesUseCase,
	listMineUC listMyPropertiesUseCase,
	getUC getPropertyUseCase,
	images imageStore,
	maxFiles int,
	logger logger.Interface,
) *PropertyHandler {
	return &PropertyHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		moderateUC: moderateUC,
		markSoldUC: markSoldUC,
		listUC:     listUC,
		listMineUC: listMineUC,
		getUC:      getUC,
		images:     images,
		maxFiles:   maxFiles,
		logger:     logger,
	}
}

// PropertyRequest is accepted both as JSON and as multipart form fields.
// Photos arrive either as uploaded files in the "images" part or, for JSON
// bodies, as already stored URLs.
type PropertyRequest struct {
	Title        *string  `json:"title" form:"title"`
	Description  *string  `json:"description" form:"description"`
	Price        *float64 `json:"price" form:"price"`
	PriceUnit    *string  `json:"price_unit" form:"price_unit"`
	ListingType  *string  `json:"listing_type" form:"listing_type"`
	Location     *string  `json:"location" form:"location"`
	PropertyType *string  `json:"property_type" form:"property_type"`
	Area         *float64 `json:"area" form:"area"`
	Bedrooms     *int     `json:"bedrooms" form:"bedrooms" binding:"omitempty,gte=0"`
	Bathrooms    *int     `json:"bathrooms" form:"bathrooms" binding:"omitempty,gte=0"`
	Floors       *int     `json:"floors" form:"floors" binding:"omitempty,gte=0"`
	Images       []string `json:"images" form:"-"`
	Amenities    []string `json:"amenities" form:"amenities"`
	Facing       *string  `json:"facing" form:"facing"`
	Legal        *string  `json:"legal" form:"legal"`
}

func (r PropertyRequest) toPatch() usecases.PropertyPatch {
	return usecases.PropertyPatch{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		PriceUnit:    r.PriceUnit,
		ListingType:  r.ListingType,
		Location:     r.Location,
		PropertyType: r.PropertyType,
		Area:         r.Area,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		Floors:       r.Floors,
		Images:       r.Images,
		Amenities:    r.Amenities,
		Facing:       r.Facing,
		Legal:        r.Legal,
	}
}

type ModerateRequest struct {
	Reason string `json:"reason"`
}

// Create posts a new listing and consumes one credit
// @Summary Create listing
// @Tags Properties
// @Accept json,mpfd
// @Produce json
// @Param images formData file false "Up to 5 photos"
// @Success 201 {object} utils.APIResponse{data=dto.PropertyResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	userID, _, ok := requireCaller(c)
	if !ok {
		return
	}

	req, uploaded, ok := h.bindPropertyRequest(c)
	if !ok {
		return
	}

	details := req.toPatch().ApplyTo(property.Details{})
	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePropertyCommand{
		OwnerID: userID,
		Details: details,
	})
	if err != nil {
		h.discardUploads(uploaded)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Property created and waiting for review")
}

// Update edits a listing and sends it back to moderation
// @Summary Update listing
// @Tags Properties
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} utils.APIResponse{data=dto.PropertyResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/properties/{id} [patch]
func (h *PropertyHandler) Update(c *gin.Context) {
	userID, role, ok := requireCaller(c)
	if !ok {
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProperty, "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req, uploaded, ok := h.bindPropertyRequest(c)
	if !ok {
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdatePropertyCommand{
		PropertySID: sid,
		CallerID:    userID,
		CallerRole:  role,
		Patch:       req.toPatch(),
	})
	if err != nil {
		h.discardUploads(uploaded)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Property updated and waiting for review", result)
}

// Delete removes a listing
// @Summary Delete listing
// @Tags Properties
// @Param id path string true "Property ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	userID, role, ok := requireCaller(c)
	if !ok {
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProperty, "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteUC.Execute(c.Request.Context(), usecases.DeletePropertyCommand{
		PropertySID: sid,
		CallerID:    userID,
		CallerRole:  role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Approve publishes a listing
// @Summary Approve listing
// @Tags Moderation
// @Param id path string true "Property ID"
// @Success 200 {object} utils.APIResponse{data=dto.PropertyResponse}
// @Router /api/properties/{id}/approve [post]
func (h *PropertyHandler) Approve(c *gin.Context) {
	h.moderate(c, vo.PropertyStatusApproved)
}

// Reject sends a listing back to its owner with a reason
// @Summary Reject listing
// @Tags Moderation
// @Param id path string true "Property ID"
// @Param request body ModerateRequest false "Rejection reason"
// @Success 200 {object} utils.APIResponse{data=dto.PropertyResponse}
// @Router /api/properties/{id}/reject [post]
func (h *PropertyHandler) Reject(c *gin.Context) {
	h.moderate(c, vo.PropertyStatusRejected)
}

func (h *PropertyHandler) moderate(c *gin.Context, status vo.PropertyStatus) {
	userID, _, ok := requireCaller(c)
	if !ok {
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProperty, "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ModerateRequest
	if c.Request.ContentLength > 0 {
		if !bindJSON(c, &req, h.logger) {
			return
		}
	}

	result, err := h.moderateUC.Execute(c.Request.Context(), usecases.ModeratePropertyCommand{
		PropertySID: sid,
		Status:      string(status),
		Reason:      req.Reason,
		ModeratorID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Property "+string(status), result)
}

// MarkSold closes an approved listing
// @Summary Mark listing sold
// @Tags Properties
// @Param id path string true "Property ID"
// @Success 200 {object} utils.APIResponse{data=dto.PropertyResponse}
// @Failure 409 {object} utils.APIResponse
// @Router /api/properties/{id}/sold [post]
func (h *PropertyHandler) MarkSold(c *gin.Context) {
	userID, role, ok := requireCaller(c)
	if !ok {
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProperty, "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markSoldUC.Execute(c.Request.Context(), usecases.MarkSoldCommand{
		PropertySID: sid,
		CallerID:    userID,
		CallerRole:  role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Property marked as sold", result)
}

// List searches listings
// @Summary Search listings
// @Tags Properties
// @Produce json
// @Param status query string false "pending|approved|rejected|sold (staff only except approved)"
// @Param location query string false "Location substring"
// @Param property_type query string false "Property type (alias propertyType)"
// @Param listing_type query string false "sell|rent (alias listingType)"
// @Param min_price query number false "Minimum price (alias minPrice)"
// @Param max_price query number false "Maximum price (alias maxPrice)"
// @Param q query string false "Free text"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	_, role := callerFromContext(c)

	minPrice, err := parseOptionalFloat(c, "min_price", "minPrice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	maxPrice, err := parseOptionalFloat(c, "max_price", "maxPrice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListPropertiesQuery{
		CallerRole:   role,
		Status:       c.Query("status"),
		Location:     c.Query("location"),
		PropertyType: queryWithAlias(c, "property_type", "propertyType"),
		ListingType:  queryWithAlias(c, "listing_type", "listingType"),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		Query:        c.Query("q"),
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListMine returns the caller's own listings in every status
// @Summary My listings
// @Tags Properties
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.PropertyResponse}
// @Router /api/properties/me [get]
func (h *PropertyHandler) ListMine(c *gin.Context) {
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

// Get returns a listing detail
// @Summary Listing detail
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} utils.APIResponse{data=dto.PropertyResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /api/properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProperty, "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := callerFromContext(c)
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetPropertyQuery{
		PropertySID: sid,
		CallerID:    userID,
		CallerRole:  role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// bindPropertyRequest reads a JSON or multipart body. Uploaded photos are
// stored first and replace any URLs sent alongside them; the stored URLs are
// returned so a failed command can remove them again.
func (h *PropertyHandler) bindPropertyRequest(c *gin.Context) (PropertyRequest, []string, bool) {
	var req PropertyRequest

	if !strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		if c.Request.ContentLength == 0 {
			return req, nil, true
		}
		return req, nil, bindJSON(c, &req, h.logger)
	}

	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid property form", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return req, nil, false
	}

	var files []*multipart.FileHeader
	if form := c.Request.MultipartForm; form != nil {
		files = form.File[imagesField]
	}
	if len(files) == 0 {
		return req, nil, true
	}
	if h.maxFiles > 0 && len(files) > h.maxFiles {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(
			fmt.Sprintf("At most %d images can be uploaded", h.maxFiles),
		))
		return req, nil, false
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := h.saveUpload(c, fh)
		if err != nil {
			h.discardUploads(urls)
			utils.ErrorResponseWithError(c, err)
			return req, nil, false
		}
		urls = append(urls, url)
	}

	req.Images = urls
	return req, urls, true
}

func (h *PropertyHandler) saveUpload(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", errors.NewBadRequestError("Unreadable upload", fh.Filename)
	}
	defer f.Close()

	return h.images.Save(c.Request.Context(), fh.Filename, f)
}

func (h *PropertyHandler) discardUploads(urls []string) {
	for _, u := range urls {
		if err := h.images.Remove(u); err != nil {
			h.logger.Warnw("failed to remove orphaned upload", "url", u, "error", err)
		}
	}
}

// queryWithAlias reads a filter by its snake_case name, falling back to the
// camelCase spelling.
func queryWithAlias(c *gin.Context, key, alias string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return c.Query(alias)
}

func parseOptionalFloat(c *gin.Context, key, alias string) (*float64, error) {
	raw := queryWithAlias(c, key, alias)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, errors.NewValidationError("Invalid filters", key+" must be a non-negative number")
	}
	return &v, nil
}
