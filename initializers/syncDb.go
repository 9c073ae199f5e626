package initializers

import (
	"log"

	"github.com/thesuplementos/loja-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.AdminUser{}, &models.Order{}, &models.FavoriteOrder{}, &models.Banner{})
	log.Println("Database synced successfully.")
}
