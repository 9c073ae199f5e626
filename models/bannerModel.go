package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Banner struct {
	gorm.Model
	Title     string         `json:"title" binding:"required"`
	Subtitle  string         `json:"subtitle" binding:"required"`
	CTA       string         `json:"cta"`
	CTALink   string         `json:"ctaLink"`
	BgColor   string         `json:"bgColor"`
	TextColor string         `json:"textColor"`
	Highlight *string        `json:"highlight"`
	Tags      datatypes.JSON `json:"tags"`
	SortOrder int            `json:"sortOrder"`
	Active    bool           `json:"active"`
	ImageURL  *string        `json:"imageUrl"`
}
