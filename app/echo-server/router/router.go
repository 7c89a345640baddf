package router

import (
	"playNext/internal/middleware"
	"playNext/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")

	reco.GET("", handler.ForPlayer)
	reco.POST("/picks", handler.ForPicks)
}

func SetupGameRoutes(api *echo.Group, handler *rest.GameHandler) {
	games := api.Group("/games")

	games.GET("", handler.List)
}

func SetupPlayerRoutes(api *echo.Group, handler *rest.PlayerHandler) {
	api.GET("/player-data", handler.Get)
}

func SetupAdminRoutes(api *echo.Group, handler *rest.AdminHandler) {
	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.POST("/catalog/reload", handler.ReloadCatalog)
}
