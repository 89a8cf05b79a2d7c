package product_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NadafMM/inventory-management-system-sub001/internal/application/product"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
	"github.com/NadafMM/inventory-management-system-sub001/pkg/logger"
)

type fixture struct {
	svc   *product.Service
	skus  *product.SkuService
	prods *memProductRepo
	cats  *memCategoryRepo
	skuDB *memSkuRepo
}

func newFixture() *fixture {
	prods := newMemProductRepo()
	cats := newMemCategoryRepo()
	skuDB := newMemSkuRepo()
	return &fixture{
		svc:   product.NewService(prods, cats, skuDB, logger.Nop()),
		skus:  product.NewSkuService(skuDB, prods, logger.Nop()),
		prods: prods,
		cats:  cats,
		skuDB: skuDB,
	}
}

func (f *fixture) seedCategory(t *testing.T, id string, active bool) *entity.Category {
	t.Helper()
	cat := &entity.Category{ID: id, Name: "Cat " + id, Path: "/" + id, IsActive: active}
	require.NoError(t, f.cats.Create(context.Background(), cat))
	return cat
}

func (f *fixture) seedProduct(t *testing.T, categoryID string) *entity.Product {
	t.Helper()
	p, err := f.svc.Create(context.Background(), product.CreateInput{
		CategoryID: categoryID,
		Name:       "Widget",
		Price:      decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	return p
}

// ── Products ──────────────────────────────────────────────────────────────

func TestProductCreate_RequiresEligibleCategory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.seedCategory(t, "cat-1", true)
	p := f.seedProduct(t, "cat-1")
	assert.True(t, p.IsActive)

	_, err := f.svc.Create(ctx, product.CreateInput{CategoryID: "nope", Name: "X", Price: decimal.Zero})
	assert.True(t, domain.IsNotFound(err), "unknown category")

	f.seedCategory(t, "cat-2", false)
	_, err = f.svc.Create(ctx, product.CreateInput{CategoryID: "cat-2", Name: "X", Price: decimal.Zero})
	var be *domain.BusinessError
	assert.ErrorAs(t, err, &be, "inactive category cannot receive products")

	_, err = f.svc.Create(ctx, product.CreateInput{CategoryID: "cat-1", Name: "  ", Price: decimal.Zero})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve, "blank name")

	_, err = f.svc.Create(ctx, product.CreateInput{CategoryID: "cat-1", Name: "X", Price: decimal.NewFromInt(-1)})
	assert.ErrorAs(t, err, &ve, "negative price")
}

func TestProductUpdate_MoveRevalidatesCategory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.seedCategory(t, "cat-1", true)
	f.seedCategory(t, "cat-2", false)
	p := f.seedProduct(t, "cat-1")

	inactive := "cat-2"
	_, err := f.svc.Update(ctx, p.ID, product.UpdateInput{CategoryID: &inactive})
	var be *domain.BusinessError
	require.ErrorAs(t, err, &be)

	f.seedCategory(t, "cat-3", true)
	target := "cat-3"
	updated, err := f.svc.Update(ctx, p.ID, product.UpdateInput{CategoryID: &target})
	require.NoError(t, err)
	assert.Equal(t, "cat-3", updated.CategoryID)
}

func TestProductDelete_BlockedWhileSkusExist(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.seedCategory(t, "cat-1", true)
	p := f.seedProduct(t, "cat-1")

	sku, err := f.skus.CreateSku(ctx, product.CreateSkuInput{
		ProductID: p.ID,
		SkuCode:   "W-1",
		Price:     decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	err = f.svc.Delete(ctx, p.ID)
	var be *domain.BusinessError
	require.ErrorAs(t, err, &be)

	require.NoError(t, f.skus.DeleteSku(ctx, sku.ID))
	require.NoError(t, f.svc.Delete(ctx, p.ID))

	got, err := f.svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted(), "soft-deleted products stay queryable by id")
}

// ── SKUs ──────────────────────────────────────────────────────────────────

func TestCreateSku_ValidatesInitialQuantities(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.seedCategory(t, "cat-1", true)
	p := f.seedProduct(t, "cat-1")

	sku, err := f.skus.CreateSku(ctx, product.CreateSkuInput{
		ProductID:        p.ID,
		SkuCode:          " W-1 ",
		Price:            decimal.NewFromInt(10),
		StockQuantity:    5,
		ReservedQuantity: 2,
		ReorderPoint:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, "W-1", sku.SkuCode, "code is trimmed")
	assert.Equal(t, 3, sku.AvailableQuantity())

	var ve *domain.ValidationError

	_, err = f.skus.CreateSku(ctx, product.CreateSkuInput{ProductID: p.ID, SkuCode: "W-2", StockQuantity: -1})
	assert.ErrorAs(t, err, &ve, "negative stock")

	_, err = f.skus.CreateSku(ctx, product.CreateSkuInput{ProductID: p.ID, SkuCode: "W-2", StockQuantity: 1, ReservedQuantity: 2})
	assert.ErrorAs(t, err, &ve, "reserved above stock")

	_, err = f.skus.CreateSku(ctx, product.CreateSkuInput{ProductID: p.ID, SkuCode: ""})
	assert.ErrorAs(t, err, &ve, "missing code")
}

func TestCreateSku_DuplicateCodeAndMissingProduct(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.seedCategory(t, "cat-1", true)
	p := f.seedProduct(t, "cat-1")

	_, err := f.skus.CreateSku(ctx, product.CreateSkuInput{ProductID: p.ID, SkuCode: "W-1"})
	require.NoError(t, err)

	_, err = f.skus.CreateSku(ctx, product.CreateSkuInput{ProductID: p.ID, SkuCode: "W-1"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "sku_code", ve.Field)

	_, err = f.skus.CreateSku(ctx, product.CreateSkuInput{ProductID: "nope", SkuCode: "W-2"})
	assert.True(t, domain.IsNotFound(err))
}

func TestDeleteSku_StockOnHandDoesNotBlock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.seedCategory(t, "cat-1", true)
	p := f.seedProduct(t, "cat-1")
	sku, err := f.skus.CreateSku(ctx, product.CreateSkuInput{
		ProductID:     p.ID,
		SkuCode:       "W-1",
		StockQuantity: 100,
	})
	require.NoError(t, err)

	require.NoError(t, f.skus.DeleteSku(ctx, sku.ID))
	assert.True(t, domain.IsNotFound(f.skus.DeleteSku(ctx, sku.ID)), "second delete is not found")
}

func TestListByProduct_ExcludesDeleted(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.seedCategory(t, "cat-1", true)
	p := f.seedProduct(t, "cat-1")
	a, err := f.skus.CreateSku(ctx, product.CreateSkuInput{ProductID: p.ID, SkuCode: "W-1"})
	require.NoError(t, err)
	_, err = f.skus.CreateSku(ctx, product.CreateSkuInput{ProductID: p.ID, SkuCode: "W-2"})
	require.NoError(t, err)

	require.NoError(t, f.skus.DeleteSku(ctx, a.ID))

	list, err := f.skus.ListByProduct(ctx, p.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "W-2", list[0].SkuCode)

	// A deleted SKU's code is free for reuse.
	_, err = f.skus.CreateSku(ctx, product.CreateSkuInput{ProductID: p.ID, SkuCode: "W-1"})
	assert.NoError(t, err)
}
