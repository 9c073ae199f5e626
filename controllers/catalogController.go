package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thesuplementos/loja-api/catalog"
)

// The storefront catalog is static; these handlers just serve the process
// constants plus the per-item WhatsApp inquiry links.

func GetProducts(ctx *gin.Context) {
	category := ctx.Query("category")

	products := catalog.Products
	if category != "" {
		filtered := make([]catalog.Product, 0, len(products))
		for _, product := range products {
			if string(product.Category) == category {
				filtered = append(filtered, product)
			}
		}
		products = filtered
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products})
}

func GetProduct(ctx *gin.Context) {
	product, ok := catalog.FindProduct(ctx.Param("id"))
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"product":      product,
		"whatsappLink": catalog.WhatsAppLink(catalog.ProductMessage(product)),
	})
}

func GetCombos(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"combos": catalog.Combos})
}

func GetCombo(ctx *gin.Context) {
	combo, ok := catalog.FindCombo(ctx.Param("id"))
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, "Combo not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"combo":        combo,
		"whatsappLink": catalog.WhatsAppLink(catalog.ComboMessage(combo)),
	})
}

func GetCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"categories": catalog.Categories})
}

func GetTestimonials(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"testimonials": catalog.Testimonials})
}

func GetSiteInfo(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"name":         catalog.StoreName,
		"instagramUrl": catalog.InstagramURL,
		"whatsappLink": catalog.WhatsAppLink(catalog.WhatsAppGreeting),
	})
}
