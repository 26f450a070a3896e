package router

import (
	"autoOpsAI/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupInsightsRoutes(api *echo.Group, handler *rest.InsightsHandler, authRequired echo.MiddlewareFunc) {
	insights := api.Group("/insights")
	insights.GET("", handler.GetInsights)
	insights.POST("/refresh", handler.Refresh, authRequired)

	api.GET("/metrics/system", handler.GetSystemMetrics)
}

func SetupActionsRoutes(api *echo.Group, handler *rest.ActionsHandler, authRequired echo.MiddlewareFunc) {
	actions := api.Group("/actions")
	actions.GET("", handler.GetActions)
	actions.POST("/:id/execute", handler.Execute, authRequired)
	actions.POST("/:id/reject", handler.Reject, authRequired)
	actions.POST("/:id/rollback", handler.Rollback, authRequired)
}

func SetOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc) {
	orders := api.Group("/orders")
	orders.POST("", handler.CreateOrder, authRequired)
	orders.GET("", handler.GetAllOrders)
}

func SetupLeadsRoutes(api *echo.Group, handler *rest.LeadsHandler) {
	api.POST("/leads/score", handler.Score)
}

func SetupAnalysisRoutes(api *echo.Group, handler *rest.AnalysisHandler, authRequired echo.MiddlewareFunc) {
	analysis := api.Group("/analysis")
	analysis.POST("", handler.Store, authRequired)
	analysis.GET("/latest", handler.Latest)
}

func SetupAdminRoutes(api *echo.Group, handler *rest.IntelligenceAdminHandler, authRequired, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/intelligence", authRequired, adminOnly)
	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpdateConfig)
}

func SetupWorkflowsRoutes(api *echo.Group, handler *rest.WorkflowsHandler, authRequired echo.MiddlewareFunc) {
	workflows := api.Group("/workflows")
	workflows.GET("", handler.GetWorkflows)
	workflows.GET("/stats", handler.GetStats)
	workflows.POST("", handler.Create, authRequired)
	workflows.PATCH("/:id", handler.Toggle, authRequired)
}
