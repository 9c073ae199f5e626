package cart

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesuplementos/loja-api/models"
)

type fakeStore struct {
	orders      []models.Order
	favorites   []models.FavoriteOrder
	nextID      uint
	createErr   error
	latestErr   error
	insertErr   error
	listErr     error
	deleteErr   error
	deletedIDs  []uint
	insertCalls int
}

func (s *fakeStore) CreateOrder(_ context.Context, order *models.Order) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	order.ID = s.nextID
	s.orders = append(s.orders, *order)
	return nil
}

func (s *fakeStore) LatestOrderByUser(_ context.Context, userID uint) (*models.Order, error) {
	if s.latestErr != nil {
		return nil, s.latestErr
	}
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].UserID != nil && *s.orders[i].UserID == userID {
			order := s.orders[i]
			return &order, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) InsertFavorite(_ context.Context, fav *models.FavoriteOrder) error {
	s.insertCalls++
	if s.insertErr != nil {
		return s.insertErr
	}
	s.nextID++
	fav.ID = s.nextID
	s.favorites = append(s.favorites, *fav)
	return nil
}

func (s *fakeStore) FavoritesByUser(_ context.Context, userID uint) ([]models.FavoriteOrder, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []models.FavoriteOrder
	for i := len(s.favorites) - 1; i >= 0; i-- {
		if s.favorites[i].UserID == userID {
			out = append(out, s.favorites[i])
		}
	}
	return out, nil
}

func (s *fakeStore) DeleteFavorite(_ context.Context, id uint) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedIDs = append(s.deletedIDs, id)
	for i := range s.favorites {
		if s.favorites[i].ID == id {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			break
		}
	}
	return nil
}

func newTestCart() (*Cart, *fakeStore) {
	store := &fakeStore{}
	return New(store, store, nil), store
}

func whey() Item {
	return Item{ID: "1", Name: "Whey Protein Concentrado 900g", Brand: "Growth", Price: 119.90, Type: "product"}
}

func creatina() Item {
	return Item{ID: "2", Name: "Creatina Monohidratada 300g", Brand: "Growth", Price: 89.90, Type: "product"}
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	c, _ := newTestCart()

	c.AddItem(whey())
	c.AddItem(whey())
	c.AddItem(creatina())

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 3, c.TotalItems())
}

func TestAddItemIgnoresIncomingQuantity(t *testing.T) {
	c, _ := newTestCart()

	item := whey()
	item.Quantity = 99
	c.AddItem(item)

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestTotals(t *testing.T) {
	c, _ := newTestCart()

	c.AddItem(whey())
	c.AddItem(whey())

	assert.Equal(t, 2, c.TotalItems())
	assert.InDelta(t, 239.80, c.TotalPrice(), 0.001)

	c.UpdateQuantity("1", 0)
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.TotalItems())
	assert.Zero(t, c.TotalPrice())
}

func TestUpdateQuantityNonPositiveRemoves(t *testing.T) {
	for _, quantity := range []int{0, -1, -10} {
		c, _ := newTestCart()
		c.AddItem(whey())

		c.UpdateQuantity("1", quantity)

		assert.Empty(t, c.Items())
	}
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	c, _ := newTestCart()
	c.AddItem(whey())

	c.UpdateQuantity("1", 5)
	assert.Equal(t, 5, c.Items()[0].Quantity)

	// unknown ids are a no-op
	c.UpdateQuantity("missing", 3)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 5, c.Items()[0].Quantity)
}

func TestRemoveItemUnknownIDIsNoop(t *testing.T) {
	c, _ := newTestCart()
	c.AddItem(whey())

	c.RemoveItem("missing")

	assert.Len(t, c.Items(), 1)
}

func TestClear(t *testing.T) {
	c, _ := newTestCart()
	c.AddItem(whey())
	c.AddItem(creatina())

	c.Clear()

	assert.Empty(t, c.Items())
}

func TestCheckoutLinkEmptyCart(t *testing.T) {
	c, _ := newTestCart()
	assert.Equal(t, EmptyCheckoutLink, c.CheckoutLink())
}

func TestCheckoutLinkContents(t *testing.T) {
	c, _ := newTestCart()
	c.AddItem(whey())
	c.AddItem(whey())
	c.AddItem(creatina())

	link := c.CheckoutLink()
	require.True(t, strings.HasPrefix(link, "https://wa.me/"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	message := parsed.Query().Get("text")

	assert.Contains(t, message, "1. *Whey Protein Concentrado 900g* (Growth)")
	assert.Contains(t, message, "Qtd: 2 x R$ 119,90 = R$ 239,80")
	assert.Contains(t, message, "2. *Creatina Monohidratada 300g*")
	assert.Contains(t, message, "*Total: R$ 329,70*")

	// pure: repeated calls yield the same link and leave the cart untouched
	assert.Equal(t, link, c.CheckoutLink())
	assert.Equal(t, 3, c.TotalItems())
}

func TestSendOrderEmptyCart(t *testing.T) {
	c, store := newTestCart()

	link, order := c.SendOrder(context.Background())

	assert.Equal(t, EmptyCheckoutLink, link)
	assert.Nil(t, order)
	assert.Empty(t, store.orders)
}

func TestSendOrderPersistsSnapshot(t *testing.T) {
	c, store := newTestCart()
	userID := uint(7)
	city := "Teresina"
	c.SetUser(context.Background(), &userID)
	c.SetCustomerCity(&city)
	c.AddItem(whey())
	c.AddItem(whey())

	link, order := c.SendOrder(context.Background())

	require.NotNil(t, order)
	assert.NotEqual(t, EmptyCheckoutLink, link)
	require.Len(t, store.orders, 1)

	saved := store.orders[0]
	assert.Equal(t, models.StatusPending, saved.Status)
	require.NotNil(t, saved.UserID)
	assert.Equal(t, uint(7), *saved.UserID)
	require.NotNil(t, saved.CustomerCity)
	assert.Equal(t, "Teresina", *saved.CustomerCity)
	assert.InDelta(t, 239.80, saved.Total, 0.001)

	items, err := saved.ItemList()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Whey Protein Concentrado 900g", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)

	// the wire shape must not leak cart line ids
	assert.NotContains(t, string(saved.Items), `"id"`)

	// cart is not cleared by submission
	assert.Equal(t, 2, c.TotalItems())
}

func TestSendOrderGuest(t *testing.T) {
	c, store := newTestCart()
	c.AddItem(creatina())

	_, order := c.SendOrder(context.Background())

	require.NotNil(t, order)
	require.Len(t, store.orders, 1)
	assert.Nil(t, store.orders[0].UserID)
}

func TestSendOrderSwallowsPersistenceFailure(t *testing.T) {
	c, store := newTestCart()
	store.createErr = errors.New("connection refused")
	c.AddItem(whey())

	link, order := c.SendOrder(context.Background())

	assert.Nil(t, order)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/"), "handoff link must survive a failed insert")
}

func TestFetchLastOrderNoUser(t *testing.T) {
	c, _ := newTestCart()

	c.FetchLastOrder(context.Background())

	assert.Nil(t, c.LastOrder())
	assert.False(t, c.LoadLastOrder())
}

func TestFetchLastOrderErrorResolvesToNil(t *testing.T) {
	c, store := newTestCart()
	userID := uint(3)
	store.latestErr = errors.New("timeout")

	c.SetUser(context.Background(), &userID)

	assert.Nil(t, c.LastOrder())
}

func TestLastOrderRoundTrip(t *testing.T) {
	c, _ := newTestCart()
	userID := uint(3)
	c.SetUser(context.Background(), &userID)
	c.AddItem(whey())
	c.AddItem(whey())
	c.AddItem(creatina())
	_, order := c.SendOrder(context.Background())
	require.NotNil(t, order)

	c.Clear()
	c.AddItem(Item{ID: "9", Name: "BCAA 2:1:1 120caps", Price: 49.90, Type: "product"})
	c.FetchLastOrder(context.Background())
	require.True(t, c.LoadLastOrder())

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Whey Protein Concentrado 900g", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Creatina Monohidratada 300g", items[1].Name)
	assert.True(t, c.IsOpen(), "loading the last order opens the drawer")
}

func TestSetUserNilClearsIdentityState(t *testing.T) {
	c, _ := newTestCart()
	userID := uint(3)
	c.SetUser(context.Background(), &userID)
	c.AddItem(whey())
	_, _ = c.SendOrder(context.Background())
	require.NoError(t, c.SaveFavorite(context.Background(), "Treino"))

	c.SetUser(context.Background(), nil)

	assert.Nil(t, c.LastOrder())
	assert.Empty(t, c.Favorites())
}

func TestSaveFavoriteRequiresUser(t *testing.T) {
	c, store := newTestCart()
	c.AddItem(whey())

	err := c.SaveFavorite(context.Background(), "Treino")

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, store.insertCalls, "no remote insert may happen for guests")
}

func TestSaveFavoriteRequiresItems(t *testing.T) {
	c, store := newTestCart()
	userID := uint(3)
	c.SetUser(context.Background(), &userID)

	err := c.SaveFavorite(context.Background(), "Treino")

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, store.insertCalls)
}

func TestSaveFavoriteDefaultsName(t *testing.T) {
	c, store := newTestCart()
	userID := uint(3)
	c.SetUser(context.Background(), &userID)
	c.AddItem(whey())

	require.NoError(t, c.SaveFavorite(context.Background(), ""))

	require.Len(t, store.favorites, 1)
	assert.Equal(t, models.DefaultFavoriteName, store.favorites[0].Name)

	favs := c.Favorites()
	require.Len(t, favs, 1)
	assert.Equal(t, models.DefaultFavoriteName, favs[0].Name)
}

func TestSaveFavoriteKeepsItemIDs(t *testing.T) {
	c, store := newTestCart()
	userID := uint(3)
	c.SetUser(context.Background(), &userID)
	c.AddItem(whey())
	c.AddItem(whey())

	require.NoError(t, c.SaveFavorite(context.Background(), "Treino"))

	items, err := store.favorites[0].ItemList()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestLoadFavoriteOverwritesCart(t *testing.T) {
	c, _ := newTestCart()
	userID := uint(3)
	c.SetUser(context.Background(), &userID)
	c.AddItem(whey())
	c.AddItem(whey())
	require.NoError(t, c.SaveFavorite(context.Background(), "Treino"))
	fav := c.Favorites()[0]

	c.Clear()
	c.AddItem(creatina())
	c.LoadFavorite(fav)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "Whey Protein Concentrado 900g", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, c.IsOpen())
}

func TestDeleteFavoriteOptimistic(t *testing.T) {
	c, store := newTestCart()
	userID := uint(3)
	c.SetUser(context.Background(), &userID)
	c.AddItem(whey())
	require.NoError(t, c.SaveFavorite(context.Background(), "Treino"))
	favID := c.Favorites()[0].ID

	store.deleteErr = errors.New("boom")
	var reported uint
	c.OnDeleteError = func(id uint, err error) { reported = id }

	c.DeleteFavorite(context.Background(), favID)

	assert.Empty(t, c.Favorites(), "local removal happens even when the remote delete fails")
	assert.Equal(t, favID, reported)
}

func TestFetchFavoritesNewestFirst(t *testing.T) {
	c, _ := newTestCart()
	userID := uint(3)
	c.SetUser(context.Background(), &userID)
	c.AddItem(whey())
	require.NoError(t, c.SaveFavorite(context.Background(), "Primeiro"))
	require.NoError(t, c.SaveFavorite(context.Background(), "Segundo"))

	favs := c.Favorites()
	require.Len(t, favs, 2)
	assert.Equal(t, "Segundo", favs[0].Name)
	assert.Equal(t, "Primeiro", favs[1].Name)
}

func TestFetchFavoritesErrorResolvesToEmpty(t *testing.T) {
	c, store := newTestCart()
	userID := uint(3)
	store.listErr = errors.New("timeout")

	c.SetUser(context.Background(), &userID)

	assert.Empty(t, c.Favorites())
}
