package db

import (
	"testing"

	"github.com/diewo77/bakery-app/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSeedIsIdempotent(t *testing.T) {
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Category{}, &models.Product{}, &models.Customer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := Seed(conn); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(conn); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	counts := map[string]int64{}
	for _, table := range []string{"categories", "products", "customers"} {
		var n int64
		if err := conn.Table(table).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		counts[table] = n
	}
	if counts["categories"] != 3 || counts["products"] != 5 || counts["customers"] != 3 {
		t.Fatalf("unexpected counts after double seed: %v", counts)
	}

	// Seeded products must reference existing categories.
	var orphaned int64
	conn.Model(&models.Product{}).
		Where("category_id NOT IN (?)", conn.Model(&models.Category{}).Select("id")).
		Count(&orphaned)
	if orphaned != 0 {
		t.Fatalf("%d seeded products reference missing categories", orphaned)
	}
}
