package main

import (
	"log"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ariven/dermalens-v2/backend/config"
	"github.com/ariven/dermalens-v2/backend/internal/database"
	"github.com/ariven/dermalens-v2/backend/internal/models"
)

var catalog = []models.Product{
	{
		Name:           "Clarifying Serum",
		Brand:          "Paula's Choice",
		Category:       "serum",
		Description:    "Lightweight exfoliating serum for blemish-prone skin.",
		IngredientText: "water, salicylic acid, niacinamide, green tea extract",
		Price:          34.00,
	},
	{
		Name:           "Barrier Repair Cream",
		Brand:          "CeraVe",
		Category:       "moisturizer",
		Description:    "Ceramide-rich cream for dry and compromised skin.",
		IngredientText: "water, ceramide np, hyaluronic acid, glycerin, squalane",
		Price:          19.50,
	},
	{
		Name:           "Overnight Renewal Serum",
		Brand:          "The Ordinary",
		Category:       "serum",
		Description:    "Retinol treatment for fine lines and texture.",
		IngredientText: "squalane, retinol, jojoba oil",
		Price:          12.90,
	},
	{
		Name:           "Brightening Essence",
		Brand:          "COSRX",
		Category:       "essence",
		Description:    "Vitamin C essence for dullness and dark spots.",
		IngredientText: "water, vitamin c, niacinamide, licorice root extract",
		Price:          24.00,
	},
	{
		Name:           "Soothing Cica Toner",
		Brand:          "Purito",
		Category:       "toner",
		Description:    "Centella toner for redness-prone skin.",
		IngredientText: "water, centella asiatica, panthenol, allantoin",
		Price:          16.80,
	},
	{
		Name:           "Gentle Foaming Cleanser",
		Brand:          "La Roche-Posay",
		Category:       "cleanser",
		Description:    "Low-pH cleanser for daily use.",
		IngredientText: "water, glycerin, cocamidopropyl betaine, panthenol",
		Price:          15.00,
	},
	{
		Name:           "Azelaic Booster",
		Brand:          "Paula's Choice",
		Category:       "spot treatment",
		Description:    "Azelaic acid treatment for blemishes and post-acne marks.",
		IngredientText: "water, azelaic acid, salicylic acid, adenosine",
		Price:          38.00,
	},
	{
		Name:           "Snail Recovery Essence",
		Brand:          "COSRX",
		Category:       "essence",
		Description:    "Snail mucin essence for hydration and repair.",
		IngredientText: "snail secretion filtrate, betaine, panthenol",
		Price:          25.00,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	seeded := 0
	for _, product := range catalog {
		var count int64
		if err := db.Model(&models.Product{}).
			Where("name = ? AND brand = ?", product.Name, product.Brand).
			Count(&count).Error; err != nil {
			logger.Fatal("failed to check product", zap.String("name", product.Name), zap.Error(err))
		}
		if count > 0 {
			continue
		}

		product.ID = uuid.New()
		if err := db.Create(&product).Error; err != nil {
			logger.Fatal("failed to seed product", zap.String("name", product.Name), zap.Error(err))
		}
		seeded++
	}

	logger.Info("catalog seeded", zap.Int("created", seeded), zap.Int("total", len(catalog)))
}
