package product_test

import (
	"context"
	"testing"

	"stock-counter/feature/inventory/testutil"
	"stock-counter/feature/product"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_RegisterAndFind(t *testing.T) {
	db := testutil.NewDB(t)
	svc := product.NewService(db, zap.NewNop())
	ctx := context.Background()

	p, err := svc.Register(ctx, "7891000100103", "Leite Condensado")
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, 0, p.Stock)

	found, err := svc.FindByBarcode(ctx, "7891000100103")
	require.NoError(t, err)
	assert.Equal(t, "Leite Condensado", found.Name)
	assert.Equal(t, 0, found.Stock)

	_, err = svc.FindByBarcode(ctx, "0000000000000")
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestService_RegisterDuplicateKeepsOriginal(t *testing.T) {
	db := testutil.NewDB(t)
	svc := product.NewService(db, zap.NewNop())
	ctx := context.Background()

	testutil.SeedProduct(t, db, "123", "Arroz", 10)

	_, err := svc.Register(ctx, "123", "Feijao")
	assert.ErrorIs(t, err, product.ErrDuplicateBarcode)

	found, err := svc.FindByBarcode(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "Arroz", found.Name)
	assert.Equal(t, 10, found.Stock)
}

func TestService_List(t *testing.T) {
	db := testutil.NewDB(t)
	svc := product.NewService(db, zap.NewNop())

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)

	testutil.SeedProduct(t, db, "b", "Segundo", 0)
	testutil.SeedProduct(t, db, "a", "Primeiro", 4)

	products, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "b", products[0].Barcode)
	assert.Equal(t, "a", products[1].Barcode)
	assert.Equal(t, 4, products[1].Stock)
}

func TestService_RegisterDuplicate_MySQL(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	svc := product.NewService(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `Produtos`").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '123' for key 'codigo_barra'"})
	mock.ExpectRollback()

	_, err := svc.Register(context.Background(), "123", "Feijao")
	assert.ErrorIs(t, err, product.ErrDuplicateBarcode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_FindByBarcode_StoreError(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	svc := product.NewService(db, zap.NewNop())

	mock.ExpectQuery("SELECT \\* FROM `Produtos`").WillReturnError(sqlmock.ErrCancelled)

	_, err := svc.FindByBarcode(context.Background(), "123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, product.ErrNotFound)
	assert.ErrorIs(t, err, sqlmock.ErrCancelled)
}
