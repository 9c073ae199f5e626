// Package cart holds the shopping cart, last-order and favorite-order state
// for one browsing session. Remote reads and writes go through the injected
// stores; the database remains the system of record.
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/thesuplementos/loja-api/catalog"
	"github.com/thesuplementos/loja-api/models"
)

// EmptyCheckoutLink is returned by CheckoutLink when the cart has no items.
const EmptyCheckoutLink = "#"

var (
	ErrNotAuthenticated = errors.New("faca login para salvar seu pedido favorito")
	ErrEmptyCart        = errors.New("seu carrinho esta vazio")
)

// Item is a cart line. At most one line exists per id; adding the same id
// again increments its quantity.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Type     string  `json:"type"`
}

// Favorite is a saved order template as exposed to callers, items decoded.
type Favorite struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderStore persists and reads back orders.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	LatestOrderByUser(ctx context.Context, userID uint) (*models.Order, error)
}

// FavoriteStore persists favorite order templates.
type FavoriteStore interface {
	InsertFavorite(ctx context.Context, fav *models.FavoriteOrder) error
	FavoritesByUser(ctx context.Context, userID uint) ([]models.FavoriteOrder, error)
	DeleteFavorite(ctx context.Context, id uint) error
}

// Cart is the session state container. It is built explicitly and handed the
// collaborators it needs; it performs no locking of its own and expects to be
// driven from a single goroutine at a time.
type Cart struct {
	orders    OrderStore
	favorites FavoriteStore
	log       *logrus.Logger

	items     []Item
	isOpen    bool
	userID    *uint
	city      *string
	lastOrder []Item
	favs      []Favorite

	// OnDeleteError lets the caller re-sync after an optimistic favorite
	// deletion whose remote delete failed. Optional.
	OnDeleteError func(id uint, err error)
}

func New(orders OrderStore, favorites FavoriteStore, log *logrus.Logger) *Cart {
	if log == nil {
		log = logrus.New()
	}
	return &Cart{orders: orders, favorites: favorites, log: log}
}

// Items returns a copy of the current cart lines.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) IsOpen() bool      { return c.isOpen }
func (c *Cart) SetOpen(open bool) { c.isOpen = open }

// AddItem appends a line with quantity 1, or bumps the quantity when a line
// with the same id already exists. The incoming quantity is ignored.
func (c *Cart) AddItem(item Item) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.items = append(c.items, item)
}

// RemoveItem drops the line with the given id. Unknown ids are a no-op.
func (c *Cart) RemoveItem(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the line.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// CheckoutLink builds the WhatsApp handoff link for the current cart. It is
// pure: calling it never changes state and it always returns the same link
// for the same cart contents.
func (c *Cart) CheckoutLink() string {
	if len(c.items) == 0 {
		return EmptyCheckoutLink
	}
	message := catalog.CheckoutMessage(c.snapshot(), c.TotalPrice())
	return catalog.WhatsAppLink(message)
}

// SendOrder submits the current cart as a pending order and returns the
// checkout link. A persistence failure is logged and swallowed so the
// messaging handoff is never blocked; the saved order is returned when the
// row actually landed, which callers use to gate notifications.
func (c *Cart) SendOrder(ctx context.Context) (link string, saved *models.Order) {
	if len(c.items) == 0 {
		return EmptyCheckoutLink, nil
	}

	order := models.Order{
		UserID:       c.userID,
		Total:        c.TotalPrice(),
		CustomerCity: c.city,
		Status:       models.StatusPending,
	}
	link = c.CheckoutLink()

	if err := order.SetItems(c.snapshot()); err != nil {
		c.log.WithError(err).Error("nao foi possivel serializar os itens do pedido")
		return link, nil
	}
	if err := c.orders.CreateOrder(ctx, &order); err != nil {
		c.log.WithError(err).Error("falha ao registrar pedido, seguindo com o checkout")
		return link, nil
	}
	return link, &order
}

// SetUser records the current identity and refreshes the identity-keyed
// state. A nil user clears the last order and favorites.
func (c *Cart) SetUser(ctx context.Context, userID *uint) {
	c.userID = userID
	c.FetchLastOrder(ctx)
	c.FetchFavorites(ctx)
}

func (c *Cart) UserID() *uint { return c.userID }

// SetCustomerCity records the city attached to submitted orders.
func (c *Cart) SetCustomerCity(city *string) { c.city = city }

// LastOrder returns the most recent order's items, or nil when none exist.
func (c *Cart) LastOrder() []Item {
	if c.lastOrder == nil {
		return nil
	}
	out := make([]Item, len(c.lastOrder))
	copy(out, c.lastOrder)
	return out
}

// FetchLastOrder reloads the latest order for the current user. Any failure,
// including no rows, resolves to a nil last order rather than an error.
func (c *Cart) FetchLastOrder(ctx context.Context) {
	if c.userID == nil {
		c.lastOrder = nil
		return
	}
	order, err := c.orders.LatestOrderByUser(ctx, *c.userID)
	if err != nil || order == nil {
		if err != nil {
			c.log.WithError(err).Info("sem ultimo pedido para o usuario")
		}
		c.lastOrder = nil
		return
	}
	wire, err := order.ItemList()
	if err != nil {
		c.log.WithError(err).Error("itens do ultimo pedido ilegiveis")
		c.lastOrder = nil
		return
	}
	c.lastOrder = itemsFromWire(wire)
}

// LoadLastOrder replaces the cart with the last order's items and opens the
// drawer. Confirming the overwrite of a non-empty cart is the caller's job.
func (c *Cart) LoadLastOrder() bool {
	if len(c.lastOrder) == 0 {
		return false
	}
	c.items = make([]Item, len(c.lastOrder))
	copy(c.items, c.lastOrder)
	c.isOpen = true
	return true
}

// Favorites returns the cached favorite templates, newest first.
func (c *Cart) Favorites() []Favorite {
	out := make([]Favorite, len(c.favs))
	copy(out, c.favs)
	return out
}

// SaveFavorite snapshots the current cart under the given name and refreshes
// the favorites list. It validates identity and cart contents up front.
func (c *Cart) SaveFavorite(ctx context.Context, name string) error {
	if c.userID == nil {
		return ErrNotAuthenticated
	}
	if len(c.items) == 0 {
		return ErrEmptyCart
	}
	if name == "" {
		name = models.DefaultFavoriteName
	}

	fav := models.FavoriteOrder{UserID: *c.userID, Name: name}
	if err := fav.SetItems(favoriteWire(c.items)); err != nil {
		return err
	}
	if err := c.favorites.InsertFavorite(ctx, &fav); err != nil {
		return err
	}
	c.FetchFavorites(ctx)
	return nil
}

// LoadFavorite replaces the cart with the favorite's items and opens the
// drawer. Same overwrite semantics as LoadLastOrder.
func (c *Cart) LoadFavorite(fav Favorite) {
	c.items = make([]Item, len(fav.Items))
	copy(c.items, fav.Items)
	c.isOpen = true
}

// DeleteFavorite removes the template locally first, then issues the remote
// delete. The local removal is not rolled back on failure; OnDeleteError
// gives the caller a chance to re-sync.
func (c *Cart) DeleteFavorite(ctx context.Context, id uint) {
	for i := range c.favs {
		if c.favs[i].ID == id {
			c.favs = append(c.favs[:i], c.favs[i+1:]...)
			break
		}
	}
	if err := c.favorites.DeleteFavorite(ctx, id); err != nil {
		c.log.WithError(err).Error("falha ao excluir pedido favorito")
		if c.OnDeleteError != nil {
			c.OnDeleteError(id, err)
		}
	}
}

// FetchFavorites reloads the favorites list for the current user. No user or
// any store failure resolves to an empty list.
func (c *Cart) FetchFavorites(ctx context.Context) {
	if c.userID == nil {
		c.favs = nil
		return
	}
	rows, err := c.favorites.FavoritesByUser(ctx, *c.userID)
	if err != nil {
		c.log.WithError(err).Error("falha ao buscar pedidos favoritos")
		c.favs = nil
		return
	}
	favs := make([]Favorite, 0, len(rows))
	for i := range rows {
		wire, err := rows[i].ItemList()
		if err != nil {
			c.log.WithError(err).Error("itens do favorito ilegiveis, ignorando registro")
			continue
		}
		favs = append(favs, Favorite{
			ID:        rows[i].ID,
			Name:      rows[i].Name,
			Items:     favoriteItems(wire),
			CreatedAt: rows[i].CreatedAt,
		})
	}
	c.favs = favs
}

// snapshot strips line ids into the historical order wire shape.
func (c *Cart) snapshot() []models.OrderItem {
	items := make([]models.OrderItem, len(c.items))
	for i, item := range c.items {
		items[i] = models.OrderItem{
			Name:     item.Name,
			Brand:    item.Brand,
			Price:    item.Price,
			Quantity: item.Quantity,
			Type:     item.Type,
		}
	}
	return items
}

func favoriteWire(items []Item) []models.FavoriteItem {
	wire := make([]models.FavoriteItem, len(items))
	for i, item := range items {
		wire[i] = models.FavoriteItem{
			ID:       item.ID,
			Name:     item.Name,
			Brand:    item.Brand,
			Price:    item.Price,
			Quantity: item.Quantity,
			Type:     item.Type,
		}
	}
	return wire
}

func favoriteItems(wire []models.FavoriteItem) []Item {
	items := make([]Item, len(wire))
	for i, w := range wire {
		items[i] = Item{
			ID:       w.ID,
			Name:     w.Name,
			Brand:    w.Brand,
			Price:    w.Price,
			Quantity: w.Quantity,
			Type:     w.Type,
		}
	}
	return items
}

// itemsFromWire rebuilds cart lines from persisted order items. The order
// wire shape carries no id, so lines get positional ids that still satisfy
// the one-line-per-id invariant.
func itemsFromWire(wire []models.OrderItem) []Item {
	items := make([]Item, len(wire))
	for i, w := range wire {
		items[i] = Item{
			ID:       fmt.Sprintf("last-%d", i+1),
			Name:     w.Name,
			Brand:    w.Brand,
			Price:    w.Price,
			Quantity: w.Quantity,
			Type:     w.Type,
		}
	}
	return items
}
