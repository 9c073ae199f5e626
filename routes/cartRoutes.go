package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/thesuplementos/loja-api/controllers"
	"github.com/thesuplementos/loja-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.OptionalAuth())
	{
		cart.GET("", controllers.GetCartState)
		cart.DELETE("", controllers.ClearCart)
		cart.POST("/items", controllers.AddCartItem)
		cart.PATCH("/items/:id", controllers.UpdateCartItemQuantity)
		cart.DELETE("/items/:id", controllers.RemoveCartItem)
		cart.PATCH("/drawer", controllers.SetCartDrawer)
		cart.GET("/checkout-link", controllers.GetCheckoutLink)
		cart.POST("/checkout", controllers.Checkout)
		cart.GET("/last-order", controllers.GetLastOrder)
		cart.POST("/last-order/load", controllers.LoadLastOrder)
		cart.GET("/favorites", controllers.GetFavorites)
		cart.POST("/favorites", controllers.SaveFavorite)
		cart.POST("/favorites/:id/load", controllers.LoadFavorite)
		cart.DELETE("/favorites/:id", controllers.DeleteFavorite)
	}
}
