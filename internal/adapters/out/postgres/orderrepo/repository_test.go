package orderrepo_test

import (
	"testing"

	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDb, DriverName: "postgres"}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestAdd_RejectsPresetID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := orderrepo.NewGormOrderRepository(db, nil)

	entity := order.New(1, 9.5)
	id := int64(999)
	entity.ID = &id

	added, err := repo.Add(t.Context(), entity)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Nil(t, added)
	assert.NoError(t, mock.ExpectationsWereMet(), "no statement may reach the database")
}
