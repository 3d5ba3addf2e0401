package sql

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/odelgado/product-catalog/internal/model"
	"github.com/odelgado/product-catalog/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct() *model.Product {
	release := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return &model.Product{
		ID:           "card-01",
		Name:         "Credit Card Gold",
		Description:  "Premium credit card with rewards",
		Logo:         "https://cdn.example.com/gold.png",
		DateReleased: release,
		DateRevision: release.AddDate(1, 0, 0),
	}
}

func TestProductRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepository(db)
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		product := testProduct()

		mock.ExpectPrepare("INSERT INTO products").
			ExpectExec().
			WithArgs(product.ID, product.Name, product.Description, product.Logo, product.DateReleased, product.DateRevision).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(ctx, product)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate id yields a unique constraint error", func(t *testing.T) {
		product := testProduct()

		mock.ExpectPrepare("INSERT INTO products").
			ExpectExec().
			WithArgs(product.ID, product.Name, product.Description, product.Logo, product.DateReleased, product.DateRevision).
			WillReturnError(&pq.Error{Code: "23505", Detail: "Key (id)=(card-01) already exists."})

		err := repo.Create(ctx, product)
		require.Error(t, err)

		var uniqueErr *repository.UniqueConstraintError
		require.ErrorAs(t, err, &uniqueErr)
		assert.Contains(t, uniqueErr.Detail, "card-01")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepository(db)
	ctx := context.Background()

	t.Run("returns every product ordered by id", func(t *testing.T) {
		release := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "name", "description", "logo", "date_release", "date_revision"}).
			AddRow("card-01", "Credit Card Gold", "Premium credit card", "gold.png", release, release.AddDate(1, 0, 0)).
			AddRow("sav-01", "Savings Plus", "High yield savings", "savings.png", release, release.AddDate(1, 0, 0))

		mock.ExpectPrepare("SELECT id, name, description, logo, date_release, date_revision FROM products ORDER BY id ASC").
			ExpectQuery().
			WillReturnRows(rows)

		products, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "card-01", products[0].ID)
		assert.Equal(t, "sav-01", products[1].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table yields an empty list", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "description", "logo", "date_release", "date_revision"})

		mock.ExpectPrepare("SELECT id, name, description, logo, date_release, date_revision FROM products").
			ExpectQuery().
			WillReturnRows(rows)

		products, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepository(db)
	ctx := context.Background()

	t.Run("successful find", func(t *testing.T) {
		release := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "name", "description", "logo", "date_release", "date_revision"}).
			AddRow("card-01", "Credit Card Gold", "Premium credit card", "gold.png", release, release.AddDate(1, 0, 0))

		mock.ExpectPrepare("SELECT id, name, description, logo, date_release, date_revision FROM products WHERE id = \\$1").
			ExpectQuery().
			WithArgs("card-01").
			WillReturnRows(rows)

		product, err := repo.FindByID(ctx, "card-01")
		require.NoError(t, err)
		assert.Equal(t, "card-01", product.ID)
		assert.Equal(t, "Credit Card Gold", product.Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("product not found", func(t *testing.T) {
		mock.ExpectPrepare("SELECT id, name, description, logo, date_release, date_revision FROM products WHERE id = \\$1").
			ExpectQuery().
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		product, err := repo.FindByID(ctx, "missing")
		require.Error(t, err)
		assert.Nil(t, product)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepository(db)
	ctx := context.Background()

	t.Run("successful update", func(t *testing.T) {
		product := testProduct()

		mock.ExpectPrepare("UPDATE products SET").
			ExpectExec().
			WithArgs(product.Name, product.Description, product.Logo, product.DateReleased, product.DateRevision, "card-01").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, "card-01", product)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("product not found", func(t *testing.T) {
		product := testProduct()

		mock.ExpectPrepare("UPDATE products SET").
			ExpectExec().
			WithArgs(product.Name, product.Description, product.Logo, product.DateReleased, product.DateRevision, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, "missing", product)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_DeleteByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepository(db)
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		mock.ExpectPrepare("DELETE FROM products WHERE id").
			ExpectExec().
			WithArgs("card-01").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteByID(ctx, "card-01")
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("product not found", func(t *testing.T) {
		mock.ExpectPrepare("DELETE FROM products WHERE id").
			ExpectExec().
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_ExistsByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepository(db)
	ctx := context.Background()

	t.Run("existing id", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)

		mock.ExpectPrepare("SELECT EXISTS").
			ExpectQuery().
			WithArgs("card-01").
			WillReturnRows(rows)

		exists, err := repo.ExistsByID(ctx, "card-01")
		require.NoError(t, err)
		assert.True(t, exists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"exists"}).AddRow(false)

		mock.ExpectPrepare("SELECT EXISTS").
			ExpectQuery().
			WithArgs("missing").
			WillReturnRows(rows)

		exists, err := repo.ExistsByID(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, exists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
