package rest

import (
	"context"
	"net/http"
	"time"

	"playNext/domain"
	"playNext/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	Catalog(ctx context.Context) ([]domain.GameSummary, error)
}

type GameHandler struct {
	service CatalogService
	timeout time.Duration
}

func NewGameHandler(service CatalogService) *GameHandler {
	return &GameHandler{
		service: service,
		timeout: 10 * time.Second,
	}
}

// List handles GET /games
func (h *GameHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	games, err := h.service.Catalog(ctx)
	if err != nil {
		logger.Error("failed to list games", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(games))
}
