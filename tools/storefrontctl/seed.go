package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/YeshwantRaoB/organizon-web/common/logger"
	"github.com/YeshwantRaoB/organizon-web/database"
	"github.com/YeshwantRaoB/organizon-web/models"
	"github.com/YeshwantRaoB/organizon-web/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type seedCategory struct {
	key     string
	count   int
	display string
}

var seedCategories = []seedCategory{
	{"rice", 25, "Rice"},
	{"millets", 13, "Millets"},
	{"pulses", 28, "Pulses"},
	{"cereals", 34, "Cereals"},
	{"flours", 17, "Flours"},
	{"oilseeds", 5, "Oil Seeds"},
	{"spices", 18, "Spices & Herbs"},
	{"sweeteners", 10, "Sweeteners"},
	{"dryfruits", 5, "Dry Fruits"},
	{"coldpressed", 12, "Cold-Pressed Oils"},
	{"valueadded", 20, "Value-Added Products"},
}

var (
	adjectives = []string{"Heritage", "King", "Pure", "Rustic", "Natural", "Traditional", "Village", "Organic"}
	varieties  = map[string][]string{
		"rice":        {"Sona Masuri", "Basmati", "Red Rice", "Black Rice", "Jeera Samba", "Kalanamak", "Kolam"},
		"millets":     {"Ragi", "Foxtail", "Pearl", "Little", "Kodo"},
		"pulses":      {"Toor Dal", "Moong Dal", "Chana", "Urad", "Masoor"},
		"cereals":     {"Oats", "Barley", "Corn", "Sorghum"},
		"flours":      {"Wheat", "Ragi", "Bajra", "Rice"},
		"oilseeds":    {"Sesame", "Mustard", "Groundnut"},
		"spices":      {"Turmeric", "Coriander", "Cumin", "Black Pepper"},
		"sweeteners":  {"Jaggery"},
		"dryfruits":   {"Almonds"},
		"coldpressed": {"Sesame", "Mustard", "Groundnut"},
		"valueadded":  {"Instant Mix", "Granola", "Porridge", "Snacks", "Pickle"},
	}
	suffixes = map[string]string{
		"flours":      " Flour",
		"coldpressed": " Oil",
	}
)

// catalogueStore is the slice of the product repository seeding needs.
type catalogueStore interface {
	Create(ctx context.Context, product *models.Product) error
	DeleteAll(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

func newSeedCmd() *cobra.Command {
	var (
		clearFirst bool
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "seed-products",
		Short: "Insert the demo catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, db, err := connectMongo(ctx)
			if err != nil {
				return err
			}
			defer database.Close(client)

			_, err = seedProducts(ctx, repository.NewProductRepository(db), seedOptions{
				Clear: clearFirst,
				Seed:  seed,
				Now:   time.Now().UTC(),
			}, cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().BoolVar(&clearFirst, "clear", false, "delete every existing product first")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed for names, prices and stock")
	return cmd
}

type seedOptions struct {
	Clear bool
	Seed  int64
	Now   time.Time
}

// generateCatalogue builds the demo products. The same seed always yields
// the same catalogue.
func generateCatalogue(seed int64, now time.Time) []models.Product {
	rng := rand.New(rand.NewSource(seed))
	pick := func(xs []string) string { return xs[rng.Intn(len(xs))] }

	var out []models.Product
	for _, cat := range seedCategories {
		prefix := strings.ToUpper(cat.key)
		if len(prefix) > 6 {
			prefix = prefix[:6]
		}
		for i := 0; i < cat.count; i++ {
			base := pick(adjectives) + " " + pick(varieties[cat.key]) + suffixes[cat.key]
			price := float64(rng.Intn(400) + 50)
			mrp := math.Round(price * (1 + rng.Float64()*0.3))
			stock := rng.Intn(500)
			unit := "1 kg"
			if rng.Float64() > 0.6 {
				unit = "500 g"
			}
			out = append(out, models.Product{
				SKU:         fmt.Sprintf("%s-%03d", prefix, i+1),
				Name:        base + " - " + unit,
				Category:    cat.display,
				Subcategory: cat.key,
				Description: fmt.Sprintf("Farm-sourced %s produced organically. Pack size: %s.", base, unit),
				Price:       price,
				MRP:         &mrp,
				Stock:       stock,
				Unit:        unit,
				Images:      []string{models.DefaultImage},
				Tags:        []string{cat.key},
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
	}
	return out
}

func seedProducts(ctx context.Context, store catalogueStore, opts seedOptions, out io.Writer) (int, error) {
	if opts.Clear {
		n, err := store.DeleteAll(ctx)
		if err != nil {
			return 0, fmt.Errorf("clear products: %w", err)
		}
		fmt.Fprintf(out, "Cleared %d existing products\n", n)
	}

	// sku index first, so a rerun without --clear stops at the first duplicate
	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Log.Warn("Index creation failed", zap.Error(err))
	}

	inserted := 0
	for _, p := range generateCatalogue(opts.Seed, opts.Now) {
		p := p
		if err := store.Create(ctx, &p); err != nil {
			return inserted, fmt.Errorf("insert %s: %w", p.SKU, err)
		}
		inserted++
	}
	fmt.Fprintf(out, "Seed complete. Inserted %d products.\n", inserted)
	return inserted, nil
}
