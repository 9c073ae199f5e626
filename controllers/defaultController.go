package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Bem-vindo a API da THE's Suplementos.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- GET "/auth/me" - Current user and admin flag

CATALOG
- GET "/catalog/site" - Store info and WhatsApp greeting link
- GET "/catalog/products" - List products (optional ?category=)
- GET "/catalog/products/{id}" - Product with WhatsApp inquiry link
- GET "/catalog/combos" - List combos
- GET "/catalog/combos/{id}" - Combo with WhatsApp inquiry link
- GET "/catalog/categories" - List categories
- GET "/catalog/testimonials" - List testimonials
- GET "/banners" - Active carousel banners

CART
- GET "/cart" - Current cart state
- POST "/cart/items" - Add a product or combo
- PATCH "/cart/items/{id}" - Set item quantity
- DELETE "/cart/items/{id}" - Remove item
- DELETE "/cart" - Clear cart
- PATCH "/cart/drawer" - Open/close the cart drawer
- GET "/cart/checkout-link" - WhatsApp checkout link
- POST "/cart/checkout" - Submit order and get the WhatsApp link
- GET "/cart/last-order" - Items of the latest order
- POST "/cart/last-order/load" - Replace cart with the latest order
- GET "/cart/favorites" - Saved favorite orders
- POST "/cart/favorites" - Save current cart as favorite
- POST "/cart/favorites/{id}/load" - Replace cart with a favorite
- DELETE "/cart/favorites/{id}" - Delete a favorite

ADMIN
- GET "/admin/orders" - Order board (?search=&date=&sort=)
- GET "/admin/orders/undelivered" - Undelivered order count
- GET "/admin/orders/stats" - Sales analytics series
- PATCH "/admin/orders/{orderId}" - Set order status
- POST "/admin/orders/{orderId}/advance" - Advance order status
- DELETE "/admin/orders/{orderId}" - Delete order
- GET "/admin/banners" - All banners
- POST "/admin/banners" - Create banner
- PUT "/admin/banners/{id}" - Update banner
- DELETE "/admin/banners/{id}" - Delete banner
- POST "/admin/banners/{id}/move/{direction}" - Swap with neighbour
- POST "/admin/banners/{id}/image" - Upload banner image`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
