package database

import "storefront/internal/models"

var defaultCatalog = []models.Product{
	{Name: "Oak Dining Table", Description: "Solid oak table seating six", Price: 72000, Category: "furniture", ImageURL: "/images/oak-dining-table.jpg", Featured: true, Available: true},
	{Name: "Walnut Bookshelf", Description: "Five-shelf walnut bookcase", Price: 48500, Category: "furniture", ImageURL: "/images/walnut-bookshelf.jpg", Available: true},
	{Name: "Linen Sofa", Description: "Three-seat sofa in natural linen", Price: 129000, Category: "furniture", ImageURL: "/images/linen-sofa.jpg", Featured: true, Available: true},
	{Name: "Ceramic Table Lamp", Description: "Hand-glazed ceramic base with linen shade", Price: 15500, Category: "lighting", ImageURL: "/images/ceramic-lamp.jpg", Available: true},
	{Name: "Brass Floor Lamp", Description: "Adjustable arm, antique brass finish", Price: 32000, Category: "lighting", ImageURL: "/images/brass-floor-lamp.jpg", Featured: true, Available: true},
	{Name: "Wool Area Rug", Description: "Hand-woven wool rug, 200x300", Price: 67000, Category: "textiles", ImageURL: "/images/wool-rug.jpg", Available: true},
	{Name: "Velvet Cushion Set", Description: "Set of four velvet cushions", Price: 9800, Category: "textiles", ImageURL: "/images/velvet-cushions.jpg", Available: true},
	{Name: "Marble Side Table", Description: "Carrara marble top on steel frame", Price: 54000, Category: "furniture", ImageURL: "/images/marble-side-table.jpg", Available: false},
}

// Seed inserts the default catalog when the products table is empty.
// Products are otherwise immutable at runtime.
func (d *Database) Seed() error {
	var count int64
	if err := d.DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return d.DB.Create(&defaultCatalog).Error
}
