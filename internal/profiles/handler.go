package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"discovery-backend/internal/insights"
	"discovery-backend/internal/shared/server/middleware"
	"discovery-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile and insight routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/profile", h.saveProfile)
	rg.GET("/profile", h.getProfile)
	rg.GET("/insights", h.getInsights)
	rg.POST("/insights/preview", h.previewInsights)
}

func (h *Handler) saveProfile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var body insights.Profile
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec, err := h.Svc.Save(c.Request.Context(), userID, &body)
	if err != nil {
		h.writeError(c, err, "failed to save profile")
		return
	}
	c.Set("profileId", rec.ID)
	respond.JSON(c, http.StatusOK, rec)
}

func (h *Handler) getProfile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rec, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "failed to fetch profile")
		return
	}
	respond.JSON(c, http.StatusOK, rec)
}

func (h *Handler) getInsights(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	result, cached, err := h.Svc.Insights(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "failed to compute insights")
		return
	}
	c.Set("insightsCached", cached)
	respond.JSON(c, http.StatusOK, gin.H{
		"insights": result,
		"cached":   cached,
	})
}

func (h *Handler) previewInsights(c *gin.Context) {
	var body insights.Profile
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Preview(c.Request.Context(), &body)
	if err != nil {
		h.writeError(c, err, "failed to compute insights")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"insights": result})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var invalid *insights.InvalidProfileError
	switch {
	case errors.As(err, &invalid):
		respond.Error(c, http.StatusBadRequest, "validation_error", invalid.Error(), gin.H{
			"field":  invalid.Field,
			"reason": invalid.Reason,
		})
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "no discovery profile yet", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
