package controllers

import (
	"net/http"
	"path/filepath"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thesuplementos/loja-api/cart"
	"github.com/thesuplementos/loja-api/catalog"
	"github.com/thesuplementos/loja-api/initializers"
	"github.com/thesuplementos/loja-api/utils"
)

const cartCookieName = "cart_session"

// One cart container per browsing session, keyed by an opaque cookie token.
// Carts live for the process lifetime; the database stays the system of
// record for anything that must survive.
var (
	cartMu    sync.Mutex
	cartStore *cart.GormStore
	carts     = make(map[string]*cart.Cart)
)

func getCartStore() *cart.GormStore {
	if cartStore == nil {
		cartStore = cart.NewGormStore(initializers.DB)
	}
	return cartStore
}

// sessionCart resolves the caller's cart, creating the session when needed,
// and re-syncs identity-keyed state whenever the authenticated user changed.
func sessionCart(ctx *gin.Context) *cart.Cart {
	token, err := ctx.Cookie(cartCookieName)
	if err != nil || token == "" {
		token = uuid.NewString()
		ctx.SetCookie(cartCookieName, token, 60*60*24*30, "/", "", false, true)
	}

	c, exists := carts[token]
	if !exists {
		store := getCartStore()
		c = cart.New(store, store, utils.ErrorLogger)
		carts[token] = c
	}

	userID, ok := currentUserID(ctx)
	switch {
	case !ok && c.UserID() != nil:
		c.SetUser(ctx.Request.Context(), nil)
		c.SetCustomerCity(nil)
	case ok && (c.UserID() == nil || *c.UserID() != userID):
		c.SetUser(ctx.Request.Context(), &userID)
		c.SetCustomerCity(currentUserCity(ctx))
	}

	return c
}

func cartView(c *cart.Cart) gin.H {
	return gin.H{
		"items":      c.Items(),
		"totalItems": c.TotalItems(),
		"totalPrice": c.TotalPrice(),
		"isOpen":     c.IsOpen(),
	}
}

func GetCartState(ctx *gin.Context) {
	cartMu.Lock()
	defer cartMu.Unlock()
	sendJSONResponse(ctx, http.StatusOK, cartView(sessionCart(ctx)))
}

// AddCartItem adds one unit of a product or combo. The catalog is the price
// authority; the client only names what it wants.
func AddCartItem(ctx *gin.Context) {
	var body struct {
		ID   string `json:"id" binding:"required"`
		Type string `json:"type" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	item, ok := catalogItem(body.ID, body.Type)
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, "Item not found in catalog")
		return
	}

	cartMu.Lock()
	defer cartMu.Unlock()
	c := sessionCart(ctx)
	c.AddItem(item)
	sendJSONResponse(ctx, http.StatusOK, cartView(c))
}

func catalogItem(id, itemType string) (cart.Item, bool) {
	if itemType == "combo" {
		combo, ok := catalog.FindCombo(id)
		if !ok {
			return cart.Item{}, false
		}
		return cart.Item{ID: combo.ID, Name: combo.Name, Price: combo.ComboPrice, Type: "combo"}, true
	}
	product, ok := catalog.FindProduct(id)
	if !ok {
		return cart.Item{}, false
	}
	return cart.Item{ID: product.ID, Name: product.Name, Brand: product.Brand, Price: product.Price, Type: "product"}, true
}

func RemoveCartItem(ctx *gin.Context) {
	cartMu.Lock()
	defer cartMu.Unlock()
	c := sessionCart(ctx)
	c.RemoveItem(ctx.Param("id"))
	sendJSONResponse(ctx, http.StatusOK, cartView(c))
}

func UpdateCartItemQuantity(ctx *gin.Context) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cartMu.Lock()
	defer cartMu.Unlock()
	c := sessionCart(ctx)
	c.UpdateQuantity(ctx.Param("id"), body.Quantity)
	sendJSONResponse(ctx, http.StatusOK, cartView(c))
}

func ClearCart(ctx *gin.Context) {
	cartMu.Lock()
	defer cartMu.Unlock()
	c := sessionCart(ctx)
	c.Clear()
	sendJSONResponse(ctx, http.StatusOK, cartView(c))
}

func SetCartDrawer(ctx *gin.Context) {
	var body struct {
		Open bool `json:"open"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cartMu.Lock()
	defer cartMu.Unlock()
	c := sessionCart(ctx)
	c.SetOpen(body.Open)
	sendJSONResponse(ctx, http.StatusOK, cartView(c))
}

func GetCheckoutLink(ctx *gin.Context) {
	cartMu.Lock()
	defer cartMu.Unlock()
	c := sessionCart(ctx)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"link": c.CheckoutLink()})
}

// Checkout submits the order and hands back the WhatsApp link. The link is
// returned even when persistence failed; a backend hiccup must never block
// the conversion path.
func Checkout(ctx *gin.Context) {
	cartMu.Lock()
	c := sessionCart(ctx)
	link, order := c.SendOrder(ctx.Request.Context())
	cartMu.Unlock()

	if order != nil {
		go notifyOrderCreated(order.ID, order.Total, order.CustomerCity, order.Items)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"link": link})
}

// notifyOrderCreated pings the store team about a persisted order. Both
// channels are best effort.
func notifyOrderCreated(orderID uint, total float64, city *string, rawItems []byte) {
	cityName := ""
	if city != nil {
		cityName = *city
	}

	itemLines, itemCount := orderItemLines(rawItems)

	if err := utils.NotifyNewOrder(orderID, total, cityName, itemCount); err != nil {
		utils.ErrorLogger.WithError(err).Error("order webhook failed")
	}

	emailData := utils.OrderEmailData{
		OrderID:      orderID,
		Total:        catalog.FormatPrice(total),
		CustomerCity: cityName,
		ItemLines:    itemLines,
	}
	templatePath := filepath.Join("templates", "order_notification.html")
	if err := utils.SendOrderNotificationEmail(emailData, templatePath); err != nil {
		utils.ErrorLogger.WithError(err).Error("order notification email failed")
	}
}

func GetLastOrder(ctx *gin.Context) {
	cartMu.Lock()
	defer cartMu.Unlock()
	c := sessionCart(ctx)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"lastOrder": c.LastOrder()})
}

// LoadLastOrder overwrites the cart with the last order. The client confirms
// with the user before calling this when the cart is non-empty.
func LoadLastOrder(ctx *gin.Context) {
	cartMu.Lock()
	defer cartMu.Unlock()
	c := sessionCart(ctx)
	if !c.LoadLastOrder() {
		sendErrorResponse(ctx, http.StatusNotFound, "Nenhum pedido anterior encontrado")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cartView(c))
}

func GetFavorites(ctx *gin.Context) {
	cartMu.Lock()
	defer cartMu.Unlock()
	c := sessionCart(ctx)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"favorites": c.Favorites()})
}

func SaveFavorite(ctx *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cartMu.Lock()
	defer cartMu.Unlock()
	c := sessionCart(ctx)
	if err := c.SaveFavorite(ctx.Request.Context(), body.Name); err != nil {
		status := http.StatusBadRequest
		if err == cart.ErrNotAuthenticated {
			status = http.StatusUnauthorized
		}
		sendErrorResponse(ctx, status, err.Error())
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"favorites": c.Favorites()})
}

func LoadFavorite(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	cartMu.Lock()
	defer cartMu.Unlock()
	c := sessionCart(ctx)
	for _, fav := range c.Favorites() {
		if fav.ID == id {
			c.LoadFavorite(fav)
			sendJSONResponse(ctx, http.StatusOK, cartView(c))
			return
		}
	}
	sendErrorResponse(ctx, http.StatusNotFound, "Pedido favorito nao encontrado")
}

func DeleteFavorite(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	cartMu.Lock()
	defer cartMu.Unlock()
	c := sessionCart(ctx)
	c.DeleteFavorite(ctx.Request.Context(), id)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"favorites": c.Favorites()})
}
