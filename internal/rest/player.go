package rest

import (
	"context"
	"net/http"
	"time"

	"playNext/domain"
	"playNext/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type PlayerService interface {
	PlayerData(ctx context.Context, username string) (domain.PlayerSummary, error)
}

type PlayerHandler struct {
	service   PlayerService
	validator *validator.Validate
	timeout   time.Duration
}

func NewPlayerHandler(service PlayerService) *PlayerHandler {
	return &PlayerHandler{
		service:   service,
		validator: validator.New(),
		timeout:   15 * time.Second,
	}
}

type PlayerQuery struct {
	Username string `query:"username" validate:"required"`
}

// Get handles GET /player-data?username=
func (h *PlayerHandler) Get(c echo.Context) error {
	var q PlayerQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "username is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summary, err := h.service.PlayerData(ctx, q.Username)
	if err != nil {
		logger.Error("failed to fetch player data", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}
