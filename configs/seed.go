package configs

import (
	"log"

	"parrilla-backend/entity"

	"gorm.io/gorm"
)

// SeedBranding creates the singleton settings row if it does not exist.
func SeedBranding(db *gorm.DB) error {
	branding := entity.DefaultBranding()
	return db.FirstOrCreate(&branding, entity.Branding{ID: entity.BrandingID}).Error
}

// SeedMenu loads the starter catalog on an empty store only; once staff
// have edited the menu it is never re-seeded.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{
			ID: "b1", Name: "Burger Suprema", Price: 12.50, Category: "Hamburguesas",
			Description: "Angus 200g, queso brie, cebolla caramelizada y rúcula.",
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=400&h=300",
		},
		{
			ID: "c1", Name: "Baby Back Ribs", Price: 18.00, Category: "Carnes",
			Description: "Costillas de cerdo bañadas en salsa BBQ artesanal con cocción lenta.",
			Image:       "https://images.unsplash.com/photo-1544025162-d76694265947?auto=format&fit=crop&w=400&h=300",
		},
		{
			ID: "c2", Name: "Bife de Chorizo", Price: 22.00, Category: "Carnes",
			Description: "350g de corte premium a la parrilla con mantequilla de hierbas.",
			Image:       "https://images.unsplash.com/photo-1600891964599-f61ba0e24092?auto=format&fit=crop&w=400&h=300",
		},
		{
			ID: "p1", Name: "Papas Trufadas", Price: 6.50, Category: "Papas Fritas",
			Description: "Papas rústicas con aceite de trufa blanca y parmesano.",
			Image:       "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?auto=format&fit=crop&w=400&h=300",
		},
		{
			ID: "p2", Name: "Papas Criminales", Price: 8.50, Category: "Papas Fritas",
			Description: "Bañadas en cheddar fundido, bacon picado y cebollín.",
			Image:       "https://images.unsplash.com/photo-1585109649139-366815a0d713?auto=format&fit=crop&w=400&h=300",
		},
		{
			ID: "d1", Name: "Limonada de Coco", Price: 4.50, Category: "Bebidas",
			Description: "Refrescante mezcla de coco y limón natural.",
			Image:       "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?auto=format&fit=crop&w=400&h=300",
		},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}
	log.Printf("seeded %d menu items", len(items))
	return nil
}
