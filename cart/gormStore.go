package cart

import (
	"context"
	"errors"

	"github.com/thesuplementos/loja-api/models"
	"gorm.io/gorm"
)

// GormStore implements OrderStore and FavoriteStore over the application
// database.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.DB.WithContext(ctx).Create(order).Error
}

// LatestOrderByUser returns the user's most recent order, or nil when the
// user has none.
func (s *GormStore) LatestOrderByUser(ctx context.Context, userID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (s *GormStore) InsertFavorite(ctx context.Context, fav *models.FavoriteOrder) error {
	return s.DB.WithContext(ctx).Create(fav).Error
}

func (s *GormStore) FavoritesByUser(ctx context.Context, userID uint) ([]models.FavoriteOrder, error) {
	var favs []models.FavoriteOrder
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&favs).Error
	if err != nil {
		return nil, err
	}
	return favs, nil
}

func (s *GormStore) DeleteFavorite(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Delete(&models.FavoriteOrder{}, id).Error
}
