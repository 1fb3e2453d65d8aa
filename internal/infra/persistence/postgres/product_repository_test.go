package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockProductRepository(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewProductRepository(gormDB), mock
}

func productRows(products ...*entity.Product) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "price", "description", "created_at", "updated_at"})
	for _, p := range products {
		rows.AddRow(p.ID.String(), p.Name, p.Price, p.Description, p.CreatedAt, p.UpdatedAt)
	}

	return rows
}

func TestProductRepository_ListPaginatesInStableOrder(t *testing.T) {
	t.Parallel()

	repo, mock := newMockProductRepository(t)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	catalogue := make([]*entity.Product, 0, 5)
	for i, name := range []string{"Café moulu", "Thé vert", "Chocolat noir", "Miel", "Confiture"} {
		catalogue = append(catalogue, &entity.Product{
			ID:        uuid.New(),
			Name:      name,
			Price:     float64(i+1) * 2.5,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	// A zero offset omits the OFFSET clause; the ordering clause must be
	// present on every page for consecutive pages to stay disjoint.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "produit" ORDER BY created_at, id LIMIT $1`)).
		WithArgs(2).
		WillReturnRows(productRows(catalogue[0], catalogue[1]))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at, id LIMIT $1 OFFSET $2`)).
		WithArgs(2, 2).
		WillReturnRows(productRows(catalogue[2], catalogue[3]))

	firstPage, err := repo.List(context.Background(), 0, 2)
	require.NoError(t, err)
	secondPage, err := repo.List(context.Background(), 2, 2)
	require.NoError(t, err)

	require.Len(t, firstPage, 2)
	require.Len(t, secondPage, 2)

	seen := make(map[uuid.UUID]bool)
	for i, p := range append(firstPage, secondPage...) {
		assert.False(t, seen[p.ID], "pages must be disjoint")
		seen[p.ID] = true
		assert.Equal(t, catalogue[i].ID, p.ID, "pages must follow creation order")
	}

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindByIDNotFound(t *testing.T) {
	t.Parallel()

	repo, mock := newMockProductRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "produit" WHERE id = $1`)).
		WillReturnRows(productRows())

	product, err := repo.FindByID(context.Background(), uuid.New())

	require.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.Nil(t, product)
	require.NoError(t, mock.ExpectationsWereMet())
}
