package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/transparify/transparify_backend/internal/core/ports/services"
	"github.com/transparify/transparify_backend/internal/middleware"
)

// transparencyHandler serves aggregated donation statistics.
type transparencyHandler struct {
	transparencyService portssvc.TransparencySvcFacade
}

func newTransparencyHandler(transparencyService portssvc.TransparencySvcFacade) *transparencyHandler {
	return &transparencyHandler{transparencyService: transparencyService}
}

// getPublicTransparency godoc
// @Summary Public transparency snapshot
// @Description Aggregated donation statistics and a recent donation feed. Donor contact details are never included.
// @Tags transparency
// @Produce json
// @Success 200 {object} dto.PublicTransparencyResponse
// @Failure 500 {object} ErrorResponse
// @Router /transparency/public [get]
func (h *transparencyHandler) getPublicTransparency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.transparencyService.GetPublicTransparency(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build transparency snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load transparency data"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getDonationOverview godoc
// @Summary Donation overview
// @Description Combined financial and in-kind donation totals with recent activity. Admin only.
// @Tags donations
// @Produce json
// @Success 200 {object} dto.DonationOverviewResponse
// @Failure 500 {object} ErrorResponse
// @Router /donations/overview [get]
func (h *transparencyHandler) getDonationOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.transparencyService.GetDonationOverview(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build donation overview", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load donation overview"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getMyDonations godoc
// @Summary My donation history
// @Description Donation history for the authenticated user, matched by the email on their account.
// @Tags donations
// @Produce json
// @Success 200 {object} dto.MyDonationsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /donations/me [get]
func (h *transparencyHandler) getMyDonations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	donorEmail, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.transparencyService.GetMyDonations(c.Request.Context(), donorEmail)
	if err != nil {
		logger.Error("Failed to build donor history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load donation history"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// registerTransparencyRoutes registers the authenticated donation views.
func registerTransparencyRoutes(group *gin.RouterGroup, transparencyService portssvc.TransparencySvcFacade) {
	h := newTransparencyHandler(transparencyService)

	donations := group.Group("/donations")
	{
		donations.GET("/overview", middleware.RequireAdmin(), h.getDonationOverview)
		donations.GET("/me", h.getMyDonations)
	}
}

// registerPublicTransparencyRoutes registers the unauthenticated snapshot.
func registerPublicTransparencyRoutes(group *gin.RouterGroup, transparencyService portssvc.TransparencySvcFacade) {
	h := newTransparencyHandler(transparencyService)

	group.GET("/transparency/public", h.getPublicTransparency)
}
