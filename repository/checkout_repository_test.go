package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/models"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestDecrementStockIfAvailable_Succeeds(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCheckoutRepository(gormDB)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "size_variants" SET "stock"=stock - $1 WHERE id = $2 AND stock >= $3`)).
		WithArgs(2, id, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := repo.DecrementStockIfAvailable(context.Background(), id, 2)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementStockIfAvailable_GuardRejects(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCheckoutRepository(gormDB)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "size_variants"`)).
		WithArgs(7, id, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Zero rows touched means the stock guard refused: no error, not reserved.
	ok, err := repo.DecrementStockIfAvailable(context.Background(), id, 7)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMarkCartItemOrdered(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCheckoutRepository(gormDB)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cart_items"`)).
		WithArgs(true, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.MarkCartItemOrdered(context.Background(), id)
	assert.NoError(t, err)
}

func TestMarkCartItemOrdered_VanishedLineAborts(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCheckoutRepository(gormDB)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cart_items"`)).
		WithArgs(true, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// A line deleted or flipped since the cart was read must surface as an
	// error so the enclosing transaction rolls back.
	err := repo.MarkCartItemOrdered(context.Background(), id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreatePaymentRecord(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCheckoutRepository(gormDB)

	record := &models.PaymentRecord{
		GatewayOrderID:   "order_123",
		GatewayPaymentID: "pay_456",
		GatewaySignature: "sig",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "payment_records"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	err := repo.CreatePaymentRecord(context.Background(), record)
	assert.NoError(t, err)
}

func TestGetSkuByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCheckoutRepository(gormDB)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "size_variants"`)).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{}))

	sku, err := repo.GetSkuByID(context.Background(), id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, sku)
}

func TestRunInTransaction_RollsBackOnError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCheckoutRepository(gormDB)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "size_variants"`)).
		WithArgs(1, id, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	abort := errors.New("later line failed")
	err := repo.RunInTransaction(context.Background(), func(tx repository.CheckoutRepository) error {
		ok, decErr := tx.DecrementStockIfAvailable(context.Background(), id, 1)
		assert.NoError(t, decErr)
		assert.True(t, ok)
		return abort
	})
	assert.ErrorIs(t, err, abort)
	assert.NoError(t, mock.ExpectationsWereMet())
}
