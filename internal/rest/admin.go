package rest

import (
	"context"
	"net/http"
	"time"

	"playNext/business/ingest"
	"playNext/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type IngestService interface {
	Run(ctx context.Context) (ingest.Result, error)
}

type AdminHandler struct {
	ingestService IngestService
	timeout       time.Duration
}

func NewAdminHandler(ingestService IngestService) *AdminHandler {
	return &AdminHandler{
		ingestService: ingestService,
		timeout:       60 * time.Second,
	}
}

// ReloadCatalog handles POST /admin/catalog/reload
func (h *AdminHandler) ReloadCatalog(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.ingestService.Run(ctx)
	if err != nil {
		logger.Error("catalog reload failed", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
