package productrepo

import (
	"context"
	"testing"

	"github.com/storekit/whatsapp-replies-api/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByTerm(t *testing.T) {
	t.Parallel()
	tc := tests.SetupTestContainer(t)

	repo := NewRepository(tc.DB)
	ctx := context.Background()

	_, err := tc.DB.ExecContext(ctx, `
		INSERT INTO whatsapp_replies_api.products (name, model, sku, price, stock, category, description)
		VALUES
			('iPhone 12', 'A2172', 'IP12-64', 599.00, 3, 'Phones', '64GB, black'),
			('iPhone 12 Pro', 'A2341', 'IP12P-128', 899.00, 1, 'Phones', NULL),
			('Galaxy S21', 'SM-G991', 'GS21-128', 699.00, 5, 'Phones', NULL),
			('iPhone Case', 'CASE-IP', NULL, 19.90, 40, 'Accessories', '100% silicone'),
			('100% Cotton Sleeve', 'SLV-CTN', 'SLV-1', 9.90, 12, 'Accessories', NULL)`)
	require.NoError(t, err)

	t.Run("case-insensitive name match", func(t *testing.T) {
		matches, err := repo.FindByTerm(ctx, "iphone", 10)
		require.NoError(t, err)
		require.Len(t, matches, 3)
		for _, p := range matches {
			assert.Contains(t, []string{"iPhone 12", "iPhone 12 Pro", "iPhone Case"}, p.Name)
		}
	})

	t.Run("model match", func(t *testing.T) {
		matches, err := repo.FindByTerm(ctx, "a2172", 10)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "iPhone 12", matches[0].Name)
		assert.Equal(t, "A2172", matches[0].Model)
		assert.Equal(t, 599.00, matches[0].Price)
		assert.Equal(t, 3, matches[0].Stock)
		assert.Equal(t, "Phones", matches[0].Category)
		assert.Equal(t, "IP12-64", matches[0].SKU.String)
	})

	t.Run("sku match", func(t *testing.T) {
		matches, err := repo.FindByTerm(ctx, "gs21", 10)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Galaxy S21", matches[0].Name)
	})

	t.Run("null sku and description do not break scanning", func(t *testing.T) {
		matches, err := repo.FindByTerm(ctx, "galaxy", 10)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.False(t, matches[0].Description.Valid)
	})

	t.Run("limit caps the result set", func(t *testing.T) {
		matches, err := repo.FindByTerm(ctx, "iphone", 2)
		require.NoError(t, err)
		assert.Len(t, matches, 2)
	})

	t.Run("no match yields empty result, not an error", func(t *testing.T) {
		matches, err := repo.FindByTerm(ctx, "xyz-does-not-exist", 10)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("blank term yields empty result without querying", func(t *testing.T) {
		matches, err := repo.FindByTerm(ctx, "   ", 10)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("like wildcards in the term match literally", func(t *testing.T) {
		matches, err := repo.FindByTerm(ctx, "100%", 10)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "100% Cotton Sleeve", matches[0].Name)
	})

	t.Run("lone percent does not match everything", func(t *testing.T) {
		matches, err := repo.FindByTerm(ctx, "%", 10)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "100% Cotton Sleeve", matches[0].Name)
	})
}
