package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/thesuplementos/loja-api/controllers"
)

func CatalogRoutes(server *gin.Engine) {
	catalog := server.Group("/catalog")
	{
		catalog.GET("/site", controllers.GetSiteInfo)
		catalog.GET("/products", controllers.GetProducts)
		catalog.GET("/products/:id", controllers.GetProduct)
		catalog.GET("/combos", controllers.GetCombos)
		catalog.GET("/combos/:id", controllers.GetCombo)
		catalog.GET("/categories", controllers.GetCategories)
		catalog.GET("/testimonials", controllers.GetTestimonials)
	}
	server.GET("/banners", controllers.GetActiveBanners)
}
