package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/thesuplementos/loja-api/initializers"
	"github.com/thesuplementos/loja-api/models"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// GetActiveBanners is the public carousel feed: active banners in sort order.
func GetActiveBanners(ctx *gin.Context) {
	var banners []models.Banner
	result := initializers.DB.
		Where("active = ?", true).
		Order("sort_order asc").
		Find(&banners)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, msgFailedToFetchBanners, result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"banners": banners})
}

// GetBanners is the admin listing, inactive rows included.
func GetBanners(ctx *gin.Context) {
	var banners []models.Banner
	if result := initializers.DB.Order("sort_order asc").Find(&banners); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, msgFailedToFetchBanners, result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"banners": banners})
}

// CreateBanner appends a banner at the end of the carousel.
func CreateBanner(ctx *gin.Context) {
	var banner models.Banner
	if err := ctx.ShouldBindJSON(&banner); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var maxOrder int
	row := initializers.DB.Model(&models.Banner{}).Select("COALESCE(MAX(sort_order), -1)").Row()
	if err := row.Scan(&maxOrder); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create banner", err)
		return
	}
	banner.SortOrder = maxOrder + 1

	if err := initializers.DB.Create(&banner).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create banner", err)
		return
	}

	ctx.JSON(http.StatusCreated, banner)
}

func UpdateBanner(ctx *gin.Context) {
	bannerID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	var banner models.Banner
	if err := initializers.DB.First(&banner, bannerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Banner not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch banner", err)
		}
		return
	}

	var update models.Banner
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// sort_order is only ever changed through the move endpoint
	update.ID = banner.ID
	update.SortOrder = banner.SortOrder
	update.CreatedAt = banner.CreatedAt

	if err := initializers.DB.Save(&update).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update banner", err)
		return
	}

	ctx.JSON(http.StatusOK, update)
}

func DeleteBanner(ctx *gin.Context) {
	bannerID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	if result := initializers.DB.Delete(&models.Banner{}, bannerID); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete banner", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Banner deleted successfully."})
}

// MoveBanner swaps sort_order with the adjacent banner in the given
// direction ("up" or "down"). Exactly two rows change; the list is never
// reindexed, so existing sort_order values stay compatible with concurrent
// editors.
func MoveBanner(ctx *gin.Context) {
	bannerID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	direction := ctx.Param("direction")
	if direction != "up" && direction != "down" {
		respondWithError(ctx, http.StatusBadRequest, "Direction must be up or down", nil)
		return
	}

	var banners []models.Banner
	if result := initializers.DB.Order("sort_order asc").Find(&banners); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, msgFailedToFetchBanners, result.Error)
		return
	}

	idx := -1
	for i := range banners {
		if banners[i].ID == bannerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		respondWithError(ctx, http.StatusNotFound, "Banner not found", nil)
		return
	}

	swapIdx := idx - 1
	if direction == "down" {
		swapIdx = idx + 1
	}
	if swapIdx < 0 || swapIdx >= len(banners) {
		ctx.JSON(http.StatusOK, gin.H{"message": "Banner is already at the edge."})
		return
	}

	a, b := banners[idx], banners[swapIdx]
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Banner{}).Where("id = ?", a.ID).Update("sort_order", b.SortOrder).Error; err != nil {
			return err
		}
		return tx.Model(&models.Banner{}).Where("id = ?", b.ID).Update("sort_order", a.SortOrder).Error
	})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to reorder banners", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Banner order updated."})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadBannerImage stores a banner image in S3 and saves its public URL on
// the banner record.
func UploadBannerImage(ctx *gin.Context) {
	bannerID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	var banner models.Banner
	if err := initializers.DB.First(&banner, bannerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Banner not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate banner", err)
		}
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Unable to read uploaded file", err)
		return
	}
	defer f.Close()

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "thesuplementos"
	}

	// Unique filename to prevent overwrites
	uniqueFilename := fmt.Sprintf("banners/%d-%s-%s", bannerID, time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(uniqueFilename),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	if err := initializers.DB.Model(&banner).Update("image_url", result.Location).Error; err != nil {
		log.Printf("Image uploaded but not saved to banner %d: %v", bannerID, err)
	}

	ctx.JSON(http.StatusOK, gin.H{"url": result.Location})
}
