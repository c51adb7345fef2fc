package seed

import (
	"context"
	"time"

	authdomain "github.com/abiramijewels/aurum/internal/auth/domain"
	catalogdomain "github.com/abiramijewels/aurum/internal/catalog/domain"
	"github.com/abiramijewels/aurum/internal/clock"
	customersdomain "github.com/abiramijewels/aurum/internal/customers/domain"
	ordersdomain "github.com/abiramijewels/aurum/internal/orders/domain"
	settingsdomain "github.com/abiramijewels/aurum/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogdomain.Product{},
		&settingsdomain.Record{},
		&authdomain.User{},
		&authdomain.Session{},
		&ordersdomain.Order{},
		&customersdomain.Customer{},
	)
}

// Run migrates the schema and loads demo data into empty tables.
func Run(ctx context.Context, db *gorm.DB, log *zap.Logger, clk clock.Clock) error {
	log = log.Named("seed")

	if err := Migrate(db); err != nil {
		return err
	}

	if err := seedProducts(ctx, db, log, clk); err != nil {
		return err
	}
	if err := seedCustomers(ctx, db, log); err != nil {
		return err
	}
	return seedOrders(ctx, db, log)
}

func seedProducts(ctx context.Context, db *gorm.DB, log *zap.Logger, clk clock.Clock) error {
	var count int64
	if err := db.WithContext(ctx).Model(&catalogdomain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := clk.Now()
	products := demoProducts(now)
	if err := db.WithContext(ctx).Create(&products).Error; err != nil {
		return err
	}
	log.Info("seeded products", zap.Int("count", len(products)))
	return nil
}

func seedCustomers(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&customersdomain.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	customers := demoCustomers()
	if err := db.WithContext(ctx).Create(&customers).Error; err != nil {
		return err
	}
	log.Info("seeded customers", zap.Int("count", len(customers)))
	return nil
}

func seedOrders(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&ordersdomain.Order{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	orders := demoOrders()
	if err := db.WithContext(ctx).Create(&orders).Error; err != nil {
		return err
	}
	log.Info("seeded orders", zap.Int("count", len(orders)))
	return nil
}

func demoProducts(now time.Time) []catalogdomain.Product {
	return []catalogdomain.Product{
		{
			ID:       "g1",
			Name:     "Antique Gold Necklace",
			SKU:      strPtr("AJ-G-N-001"),
			Category: catalogdomain.CategoryGold,
			Description: "A stunning antique necklace crafted with intricate details, " +
				"perfect for weddings and special occasions. Made with pure 22K gold.",
			Images: datatypes.JSONSlice[string]{
				"https://picsum.photos/id/1071/800/800",
				"https://picsum.photos/id/1072/800/800",
				"https://picsum.photos/id/1073/800/800",
			},
			Price:         294386,
			Weight:        floatPtr(40.5),
			Purity:        purityPtr(catalogdomain.Purity22K),
			Stock:         intPtr(5),
			MakingCharges: floatPtr(15),
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:          "g2",
			Name:        "Royal Kemp Jhumkas",
			SKU:         strPtr("AJ-G-E-002"),
			Category:    catalogdomain.CategoryGold,
			Description: "Elegant 22K gold Jhumkas embedded with precious kemp stones, reflecting royal heritage.",
			Images: datatypes.JSONSlice[string]{
				"https://picsum.photos/id/219/800/800",
				"https://picsum.photos/id/220/800/800",
			},
			Price:         117291,
			Weight:        floatPtr(15.2),
			Purity:        purityPtr(catalogdomain.Purity22K),
			Stock:         intPtr(12),
			MakingCharges: floatPtr(18),
			CreatedAt:     now.Add(time.Second),
			UpdatedAt:     now.Add(time.Second),
		},
		{
			ID:            "g3",
			Name:          "24K Pure Gold Bar",
			SKU:           strPtr("AJ-G-B-003"),
			Category:      catalogdomain.CategoryGold,
			Description:   "A 10 gram bar of 24K pure gold, a perfect investment for the future.",
			Images:        datatypes.JSONSlice[string]{"https://picsum.photos/id/431/800/800"},
			Price:         60000,
			Weight:        floatPtr(10),
			Purity:        purityPtr(catalogdomain.Purity24K),
			Stock:         intPtr(50),
			MakingCharges: floatPtr(5),
			CreatedAt:     now.Add(2 * time.Second),
			UpdatedAt:     now.Add(2 * time.Second),
		},
		{
			ID:          "s1",
			Name:        "Sterling Silver Anklet",
			SKU:         strPtr("AJ-S-A-004"),
			Category:    catalogdomain.CategorySilver,
			Description: "A beautiful pair of 92.5 Sterling Silver anklets with delicate charms.",
			Images:      datatypes.JSONSlice[string]{"https://picsum.photos/id/435/800/800"},
			Price:       2500,
			Weight:      floatPtr(25),
			Purity:      purityPtr(catalogdomain.PuritySterling),
			Stock:       intPtr(25),
			CreatedAt:   now.Add(3 * time.Second),
			UpdatedAt:   now.Add(3 * time.Second),
		},
		{
			ID:          "s2",
			Name:        "Silver Pooja Thali Set",
			SKU:         strPtr("AJ-S-P-005"),
			Category:    catalogdomain.CategorySilver,
			Description: "An auspicious pooja thali set made from pure silver, ideal for festive rituals.",
			Images:      datatypes.JSONSlice[string]{"https://picsum.photos/id/567/800/800"},
			Price:       28000,
			Weight:      floatPtr(250),
			Purity:      purityPtr(catalogdomain.PuritySterling),
			Stock:       intPtr(8),
			CreatedAt:   now.Add(4 * time.Second),
			UpdatedAt:   now.Add(4 * time.Second),
		},
		{
			ID:          "c1",
			Name:        "Peacock Design Covering Haram",
			SKU:         strPtr("AJ-C-H-006"),
			Category:    catalogdomain.CategoryCovering,
			Description: "A grand gold-plated haram with an exquisite peacock design, perfect for cultural events.",
			Images:      datatypes.JSONSlice[string]{"https://picsum.photos/id/659/800/800"},
			Price:       5500,
			Weight:      floatPtr(100),
			Stock:       intPtr(15),
			CreatedAt:   now.Add(5 * time.Second),
			UpdatedAt:   now.Add(5 * time.Second),
		},
		{
			ID:            "g4",
			Name:          "Elegant Gold Bangle",
			SKU:           strPtr("AJ-G-BG-007"),
			Category:      catalogdomain.CategoryGold,
			Description:   "A classic 22K gold bangle, designed for daily wear and timeless elegance.",
			Images:        datatypes.JSONSlice[string]{"https://picsum.photos/id/305/800/800"},
			Price:         59139,
			Weight:        floatPtr(8.5),
			Purity:        purityPtr(catalogdomain.Purity22K),
			Stock:         intPtr(0),
			MakingCharges: floatPtr(12),
			CreatedAt:     now.Add(6 * time.Second),
			UpdatedAt:     now.Add(6 * time.Second),
		},
		{
			ID:          "s3",
			Name:        "Silver Toe Rings",
			SKU:         strPtr("AJ-S-TR-008"),
			Category:    catalogdomain.CategorySilver,
			Description: "A pair of adjustable silver toe rings with floral patterns.",
			Images:      datatypes.JSONSlice[string]{"https://picsum.photos/id/321/800/800"},
			Price:       800,
			Weight:      floatPtr(5),
			Purity:      purityPtr(catalogdomain.PuritySterling),
			Stock:       intPtr(40),
			CreatedAt:   now.Add(7 * time.Second),
			UpdatedAt:   now.Add(7 * time.Second),
		},
	}
}

func demoCustomers() []customersdomain.Customer {
	return []customersdomain.Customer{
		{ID: "c1", Name: "Priya Patel", Email: "priya.patel@example.com", JoinDate: date(2023, 5, 12), Phone: "9876543210", OrderCount: 3, TotalSpent: 150000},
		{ID: "c2", Name: "Rohan Sharma", Email: "rohan.sharma@example.com", JoinDate: date(2023, 8, 20), Phone: "8765432109", OrderCount: 1, TotalSpent: 59139},
		{ID: "c3", Name: "Anjali Gupta", Email: "anjali.gupta@example.com", JoinDate: date(2024, 1, 5), Phone: "7654321098", OrderCount: 5, TotalSpent: 350000},
		{ID: "c4", Name: "Vikram Singh", Email: "vikram.singh@example.com", JoinDate: date(2024, 2, 18), Phone: "6543210987", OrderCount: 2, TotalSpent: 30500},
	}
}

func demoOrders() []ordersdomain.Order {
	return []ordersdomain.Order{
		{
			ID: "ord1001", CustomerName: "Anjali Gupta", CustomerEmail: "anjali.gupta@example.com",
			Date: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), Total: 294386, Status: ordersdomain.StatusDelivered,
			Items: datatypes.JSONSlice[ordersdomain.Item]{{ProductID: "g1", Quantity: 1, Name: "Antique Gold Necklace"}},
		},
		{
			ID: "ord1002", CustomerName: "Priya Patel", CustomerEmail: "priya.patel@example.com",
			Date: time.Date(2024, 4, 1, 14, 0, 0, 0, time.UTC), Total: 117291, Status: ordersdomain.StatusShipped,
			Items: datatypes.JSONSlice[ordersdomain.Item]{{ProductID: "g2", Quantity: 1, Name: "Royal Kemp Jhumkas"}},
		},
		{
			ID: "ord1003", CustomerName: "Vikram Singh", CustomerEmail: "vikram.singh@example.com",
			Date: time.Date(2024, 4, 5, 9, 15, 0, 0, time.UTC), Total: 28000, Status: ordersdomain.StatusProcessing,
			Items: datatypes.JSONSlice[ordersdomain.Item]{{ProductID: "s2", Quantity: 1, Name: "Silver Pooja Thali Set"}},
		},
		{
			ID: "ord1004", CustomerName: "Rohan Sharma", CustomerEmail: "rohan.sharma@example.com",
			Date: time.Date(2024, 4, 10, 18, 45, 0, 0, time.UTC), Total: 59139, Status: ordersdomain.StatusPending,
			Items: datatypes.JSONSlice[ordersdomain.Item]{{ProductID: "g4", Quantity: 1, Name: "Elegant Gold Bangle"}},
		},
		{
			ID: "ord1005", CustomerName: "Anjali Gupta", CustomerEmail: "anjali.gupta@example.com",
			Date: time.Date(2024, 4, 11, 11, 0, 0, 0, time.UTC), Total: 3300, Status: ordersdomain.StatusDelivered,
			Items: datatypes.JSONSlice[ordersdomain.Item]{
				{ProductID: "s1", Quantity: 1, Name: "Sterling Silver Anklet"},
				{ProductID: "s3", Quantity: 1, Name: "Silver Toe Rings"},
			},
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func purityPtr(p catalogdomain.Purity) *catalogdomain.Purity { return &p }

func registerHooks(lc fx.Lifecycle, db *gorm.DB, log *zap.Logger, clk clock.Clock) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return Run(ctx, db, log, clk)
		},
	})
}

var Module = fx.Module("seed",
	fx.Invoke(registerHooks),
)
