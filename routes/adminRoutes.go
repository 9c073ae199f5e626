package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/thesuplementos/loja-api/controllers"
	"github.com/thesuplementos/loja-api/middlewares"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/orders", controllers.GetOrders)
		admin.GET("/orders/undelivered", controllers.GetUndeliveredOrders)
		admin.GET("/orders/stats", controllers.GetSalesStats)
		admin.GET("/users/:userId/orders", controllers.GetOrderByCustomerId)
		admin.PATCH("/orders/:orderId", controllers.UpdateOrderStatus)
		admin.POST("/orders/:orderId/advance", controllers.AdvanceOrderStatus)
		admin.DELETE("/orders/:orderId", controllers.DeleteOrder)

		admin.GET("/banners", controllers.GetBanners)
		admin.POST("/banners", controllers.CreateBanner)
		admin.PUT("/banners/:id", controllers.UpdateBanner)
		admin.DELETE("/banners/:id", controllers.DeleteBanner)
		admin.POST("/banners/:id/move/:direction", controllers.MoveBanner)
		admin.POST("/banners/:id/image", controllers.UploadBannerImage)
	}
}
