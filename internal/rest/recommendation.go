package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"playNext/business/recommend"
	"playNext/domain"
	"playNext/pkg/logger"
	"playNext/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type RecommendationService interface {
	ForPlayer(ctx context.Context, username string, useAchievements bool) ([]domain.Recommendation, error)
	ForPicks(ctx context.Context, picks []domain.RankedPick) ([]domain.Recommendation, error)
}

type RecommendationHandler struct {
	service   RecommendationService
	validator *validator.Validate
	timeout   time.Duration
}

func NewRecommendationHandler(service RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		service:   service,
		validator: validator.New(),
		// the player path fans out to the ownership and achievement
		// providers, so it gets more headroom than a DB-only handler
		timeout: 30 * time.Second,
	}
}

type RecommendQuery struct {
	Username        string `query:"username" validate:"required"`
	UseAchievements bool   `query:"use_achievements"`
}

type PicksRequest struct {
	Picks []PickItem `json:"picks" validate:"required,min=1,dive"`
}

type PickItem struct {
	AppID uint64 `json:"app_id" validate:"required"`
	Rank  int    `json:"rank" validate:"required,min=1"`
}

// ForPlayer handles GET /recommendations?username=&use_achievements=
func (h *RecommendationHandler) ForPlayer(c echo.Context) error {
	timer := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(timer).Seconds())
	}()
	metrics.RecommendRequests.Inc()

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "username is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.ForPlayer(ctx, q.Username, q.UseAchievements)
	if err != nil {
		logger.Error("failed to build recommendations", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// ForPicks handles POST /recommendations/picks
func (h *RecommendationHandler) ForPicks(c echo.Context) error {
	timer := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(timer).Seconds())
	}()
	metrics.RecommendRequests.Inc()

	var req PicksRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "at least one pick with a positive rank is required"})
	}

	picks := make([]domain.RankedPick, 0, len(req.Picks))
	for _, p := range req.Picks {
		picks = append(picks, domain.RankedPick{
			AppID: p.AppID,
			Rank:  p.Rank,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.ForPicks(ctx, picks)
	if err != nil {
		logger.Error("failed to build recommendations from picks", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, recommend.ErrNoPicks):
		return http.StatusBadRequest
	case errors.Is(err, recommend.ErrNoGamesFound), errors.Is(err, recommend.ErrUserResolution):
		return http.StatusNotFound
	case errors.Is(err, recommend.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
