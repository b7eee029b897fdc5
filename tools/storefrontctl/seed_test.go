package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/YeshwantRaoB/organizon-web/models"
	"github.com/YeshwantRaoB/organizon-web/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCatalogue struct {
	products []models.Product
	skus     map[string]bool
	cleared  bool
	indexed  bool
}

func newMemCatalogue() *memCatalogue { return &memCatalogue{skus: map[string]bool{}} }

func (m *memCatalogue) Create(_ context.Context, p *models.Product) error {
	if m.skus[p.SKU] {
		return repository.ErrDuplicateSKU
	}
	m.skus[p.SKU] = true
	m.products = append(m.products, *p)
	return nil
}

func (m *memCatalogue) DeleteAll(context.Context) (int64, error) {
	n := int64(len(m.products))
	m.products = nil
	m.skus = map[string]bool{}
	m.cleared = true
	return n, nil
}

func (m *memCatalogue) EnsureIndexes(context.Context) error {
	m.indexed = true
	return nil
}

var seedNow = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateCatalogue_Shape(t *testing.T) {
	products := generateCatalogue(42, seedNow)
	require.Len(t, products, 187)

	perCategory := map[string]int{}
	for _, p := range products {
		perCategory[p.Subcategory]++
		assert.GreaterOrEqual(t, p.Price, 50.0)
		assert.Less(t, p.Price, 450.0)
		require.NotNil(t, p.MRP)
		assert.GreaterOrEqual(t, *p.MRP, p.Price)
		assert.Contains(t, []string{"1 kg", "500 g"}, p.Unit)
		assert.True(t, strings.HasSuffix(p.Name, " - "+p.Unit))
		assert.Equal(t, []string{models.DefaultImage}, p.Images)
		assert.Equal(t, []string{p.Subcategory}, p.Tags)
	}
	for _, cat := range seedCategories {
		assert.Equal(t, cat.count, perCategory[cat.key], cat.key)
	}

	assert.Equal(t, "RICE-001", products[0].SKU)
	assert.Equal(t, "Rice", products[0].Category)
	assert.Equal(t, "RICE-025", products[24].SKU)
	assert.Equal(t, "MILLET-001", products[25].SKU)
	assert.Equal(t, "Spices & Herbs", findBySubcategory(products, "spices").Category)
	assert.Equal(t, "COLDPR-001", findBySubcategory(products, "coldpressed").SKU)
	assert.True(t, strings.Contains(findBySubcategory(products, "flours").Name, " Flour - "))
}

func TestGenerateCatalogue_Deterministic(t *testing.T) {
	a := generateCatalogue(7, seedNow)
	b := generateCatalogue(7, seedNow)
	assert.Equal(t, a, b)

	c := generateCatalogue(8, seedNow)
	assert.NotEqual(t, a, c)
}

func TestSeedProducts(t *testing.T) {
	store := newMemCatalogue()
	var out bytes.Buffer

	n, err := seedProducts(context.Background(), store, seedOptions{Seed: 1, Now: seedNow}, &out)
	require.NoError(t, err)
	assert.Equal(t, 187, n)
	assert.True(t, store.indexed)
	assert.False(t, store.cleared)
	assert.Contains(t, out.String(), "Inserted 187 products")

	// rerun without clearing stops at the first duplicate sku
	_, err = seedProducts(context.Background(), store, seedOptions{Seed: 1, Now: seedNow}, &out)
	require.ErrorIs(t, err, repository.ErrDuplicateSKU)

	out.Reset()
	n, err = seedProducts(context.Background(), store, seedOptions{Clear: true, Seed: 1, Now: seedNow}, &out)
	require.NoError(t, err)
	assert.Equal(t, 187, n)
	assert.True(t, store.cleared)
	assert.Contains(t, out.String(), "Cleared 187 existing products")
	assert.Len(t, store.products, 187)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"seed-products", "set-admin-claim"}, names)

	seed, _, err := root.Find([]string{"seed-products"})
	require.NoError(t, err)
	assert.NotNil(t, seed.Flags().Lookup("clear"))
}

func findBySubcategory(products []models.Product, key string) models.Product {
	for _, p := range products {
		if p.Subcategory == key {
			return p
		}
	}
	return models.Product{}
}
