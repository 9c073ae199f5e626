package initializers

import (
	"encoding/json"
	"log"

	"github.com/thesuplementos/loja-api/catalog"
	"github.com/thesuplementos/loja-api/models"
	"gorm.io/datatypes"
)

// SeedBanners loads the static banner set into an empty banners table so the
// carousel has content before any admin edits.
func SeedBanners() {
	var count int64
	if err := DB.Model(&models.Banner{}).Count(&count).Error; err != nil {
		log.Println("Banner seed skipped:", err)
		return
	}
	if count > 0 {
		return
	}

	for i, fb := range catalog.FallbackBanners {
		tags, err := json.Marshal(fb.Tags)
		if err != nil {
			log.Println("Banner seed skipped:", err)
			return
		}
		highlight := fb.Highlight
		banner := models.Banner{
			Title:     fb.Title,
			Subtitle:  fb.Subtitle,
			CTA:       fb.CTA,
			CTALink:   fb.CTALink,
			BgColor:   fb.BgColor,
			TextColor: fb.TextColor,
			Highlight: &highlight,
			Tags:      datatypes.JSON(tags),
			SortOrder: i,
			Active:    true,
		}
		if err := DB.Create(&banner).Error; err != nil {
			log.Println("Banner seed failed:", err)
			return
		}
	}
	log.Println("Seeded default banners.")
}
