package models

import (
	"github.com/shopspring/decimal"
)

type ProductType string
type ProductCategory string

const (
	// Machinery the filter fits
	TypeSpecial      ProductType = "special"      // Special machinery (excavators, loaders)
	TypeAgricultural ProductType = "agricultural" // Tractors, harvesters
	TypeTrucks       ProductType = "trucks"
	TypeUniversal    ProductType = "universal"

	// Filter categories
	CategoryAir       ProductCategory = "air"
	CategoryCabin     ProductCategory = "cabin"
	CategoryFuel      ProductCategory = "fuel"
	CategoryOil       ProductCategory = "oil"
	CategoryHydraulic ProductCategory = "hydraulic"
)

type Product struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"size:50;unique;not null" json:"name"`
	Article       string          `gorm:"size:10;not null" json:"article"`
	FullMarking   string          `gorm:"size:100" json:"full_marking"`
	Type          ProductType     `gorm:"type:VARCHAR(20);not null;index" json:"type"`
	Category      ProductCategory `gorm:"type:VARCHAR(20);not null;index" json:"category"`
	BrandID       *uint           `gorm:"index" json:"brand_id"`
	Brand         *CarBrand       `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description   string          `gorm:"size:1000" json:"description"`
	InStock       bool            `gorm:"default:false" json:"in_stock"`
	Featured      bool            `gorm:"default:false" json:"featured"`
	PhotoFilename string          `gorm:"size:128" json:"photo_filename"`
}
