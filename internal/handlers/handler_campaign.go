package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/transparify/transparify_backend/internal/apperrors"
	portssvc "github.com/transparify/transparify_backend/internal/core/ports/services"
	"github.com/transparify/transparify_backend/internal/dto"
	"github.com/transparify/transparify_backend/internal/middleware"
)

// campaignHandler handles HTTP requests related to fundraising campaigns.
type campaignHandler struct {
	campaignService portssvc.CampaignSvcFacade
}

func newCampaignHandler(campaignService portssvc.CampaignSvcFacade) *campaignHandler {
	return &campaignHandler{campaignService: campaignService}
}

// createCampaign godoc
// @Summary Create a campaign
// @Description Creates a new fundraising campaign in draft status. Admin only.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param campaign body dto.CreateCampaignRequest true "Campaign details"
// @Success 201 {object} dto.CampaignResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /campaigns [post]
func (h *campaignHandler) createCampaign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	campaign, err := h.campaignService.CreateCampaign(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A campaign with this ID already exists"})
		} else {
			logger.Error("Failed to create campaign", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create campaign"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCampaignResponse(campaign))
}

// listCampaigns godoc
// @Summary List campaigns
// @Description Retrieves a newest-first paginated list of campaigns.
// @Tags campaigns
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Cursor for the next page"
// @Success 200 {object} dto.ListCampaignsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /campaigns [get]
func (h *campaignHandler) listCampaigns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCampaignsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	resp, err := h.campaignService.ListCampaigns(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list campaigns", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list campaigns"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getCampaign godoc
// @Summary Get a campaign
// @Description Retrieves a single campaign by ID, including its collected amount.
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} dto.CampaignResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /campaigns/{id} [get]
func (h *campaignHandler) getCampaign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	campaignID := c.Param("id")

	campaign, err := h.campaignService.GetCampaignByID(c.Request.Context(), campaignID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Campaign not found"})
		} else {
			logger.Error("Failed to get campaign", slog.String("error", err.Error()), slog.String("campaign_id", campaignID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get campaign"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}

// updateCampaign godoc
// @Summary Update a campaign
// @Description Updates campaign details or status. The collected amount cannot be edited. Admin only.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param campaign body dto.UpdateCampaignRequest true "Fields to update"
// @Success 200 {object} dto.CampaignResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /campaigns/{id} [put]
func (h *campaignHandler) updateCampaign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	campaignID := c.Param("id")

	var req dto.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	campaign, err := h.campaignService.UpdateCampaign(c.Request.Context(), campaignID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Campaign not found"})
		} else {
			logger.Error("Failed to update campaign", slog.String("error", err.Error()), slog.String("campaign_id", campaignID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update campaign"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}

// donateToCampaign godoc
// @Summary Donate to a campaign
// @Description Records a financial or in-kind donation against a published campaign.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param donation body dto.DonateToCampaignRequest true "Donation details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /campaigns/{id}/donate [post]
func (h *campaignHandler) donateToCampaign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	campaignID := c.Param("id")

	var req dto.DonateToCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.campaignService.DonateToCampaign(c.Request.Context(), campaignID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Campaign not found"})
		} else {
			logger.Error("Failed to record donation", slog.String("error", err.Error()), slog.String("campaign_id", campaignID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record donation"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// registerPublicCampaignRoutes registers the unauthenticated campaign reads.
func registerPublicCampaignRoutes(group *gin.RouterGroup, campaignService portssvc.CampaignSvcFacade) {
	h := newCampaignHandler(campaignService)

	campaigns := group.Group("/campaigns")
	{
		campaigns.GET("", h.listCampaigns)
		campaigns.GET("/:id", h.getCampaign)
	}
}

// registerCampaignRoutes registers the authenticated campaign writes.
func registerCampaignRoutes(group *gin.RouterGroup, campaignService portssvc.CampaignSvcFacade) {
	h := newCampaignHandler(campaignService)

	campaigns := group.Group("/campaigns")
	{
		campaigns.POST("", middleware.RequireAdmin(), h.createCampaign)
		campaigns.PUT("/:id", middleware.RequireAdmin(), h.updateCampaign)
		campaigns.POST("/:id/donate", h.donateToCampaign)
	}
}
