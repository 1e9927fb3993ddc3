package impl

import (
	"context"
	"strconv"
	"testing"
	"time"

	"checkout/internal/domain/cart"
	"checkout/internal/domain/checkout"
	"checkout/internal/domain/constants"
	"checkout/internal/domain/entity"
	domainerrors "checkout/internal/domain/errors"
	"checkout/internal/domain/repository"
	"checkout/internal/domain/service"
	mockRepo "checkout/internal/mocks/repository"
	mockSvc "checkout/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type submissionServiceFixtures struct {
	service   *submissionService
	sessions  repository.SessionStore
	txManager *mockRepo.MockTransactionManager
	fallback  *mockRepo.MockFallbackQueue
	ledger    *mockSvc.MockLedgerClient
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockCheckoutMetrics
}

func createTestSubmissionService(t *testing.T) submissionServiceFixtures {
	sessions := newSessionStore()
	txManager := mockRepo.NewMockTransactionManager(t)
	fallback := mockRepo.NewMockFallbackQueue(t)
	ledger := mockSvc.NewMockLedgerClient(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockCheckoutMetrics(t)

	service := NewSubmissionService(SubmissionServiceParams{
		Sessions:  sessions,
		TxManager: txManager,
		Fallback:  fallback,
		Ledger:    ledger,
		Publisher: publisher,
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	}).(*submissionService)
	service.now = func() time.Time { return fixedNow }

	return submissionServiceFixtures{
		service:   service,
		sessions:  sessions,
		txManager: txManager,
		fallback:  fallback,
		ledger:    ledger,
		publisher: publisher,
		metrics:   metrics,
	}
}

// expectStockUpdate expects exactly one stock mirror decrement followed by a snapshot save.
func (fx submissionServiceFixtures) expectStockUpdate(t *testing.T, decrements []entity.StockDecrement, levels []entity.StockLevel) {
	ids := make([]uuid.UUID, 0, len(decrements))
	for _, d := range decrements {
		ids = append(ids, d.ItemID)
	}

	expectExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		catalogRepo := mockRepo.NewMockCatalogRepository(t)
		factory.EXPECT().NewCatalogRepository().Return(catalogRepo)
		catalogRepo.EXPECT().DecrementStock(mock.Anything, decrements).Return(nil).Once()
		catalogRepo.EXPECT().ListStockLevels(mock.Anything, ids).Return(levels, nil).Once()
	})
	fx.fallback.EXPECT().SaveStockSnapshot(mock.Anything, levels).Return(nil).Once()
}

// discountedCartSession builds the 118.00 x2, 10% off, 5% loyalty checkout.
func discountedCartSession(t *testing.T, store repository.SessionStore) (*checkout.Session, entity.CatalogItem, entity.DiscountRule, entity.Customer) {
	t.Helper()

	session := openSession(t, store, uuid.New())
	item := catalogItem("118.00", 10)
	rule := percentRule(item, "10")
	addToCart(t, session, pricedAt(item, rule), 2)
	customer := storedCustomer()
	attachCustomer(t, session, customer, entity.LoyaltyDiscount{Eligible: true, Percentage: dec("5")})

	return session, item, rule, customer
}

func TestSubmissionService_Submit_TransportErrorQueuesLocally(t *testing.T) {
	fx := createTestSubmissionService(t)
	ctx := context.Background()
	session, item, rule, customer := discountedCartSession(t, fx.sessions)

	fx.ledger.EXPECT().
		SubmitTransaction(mock.Anything, mock.AnythingOfType("*entity.Transaction")).
		Return(nil, errors.New("dial tcp 10.0.0.5:443: connect: connection refused")).
		Once()

	var queued entity.Transaction
	fx.fallback.EXPECT().
		Append(mock.Anything, mock.AnythingOfType("entity.Transaction")).
		RunAndReturn(func(_ context.Context, tx entity.Transaction) (int64, error) {
			queued = tx

			return tx.LocalID, nil
		}).
		Once()

	fx.expectStockUpdate(t,
		[]entity.StockDecrement{{ItemID: item.ID, Quantity: 2}},
		[]entity.StockLevel{{ItemID: item.ID, Stock: 8}},
	)
	fx.metrics.EXPECT().SubmissionCompleted(constants.OutcomeQueuedLocally).Return().Once()

	var event *service.SaleRecordedEvent
	fx.publisher.EXPECT().
		PublishSaleRecorded(mock.Anything, mock.AnythingOfType("*service.SaleRecordedEvent")).
		RunAndReturn(func(_ context.Context, e *service.SaleRecordedEvent) error {
			event = e

			return nil
		})

	result, err := fx.service.Submit(ctx, session.OperatorID, session.ID, entity.PaymentMethodCash)

	require.NoError(t, err)
	queuedOutcome, ok := result.Outcome.(entity.QueuedLocally)
	require.True(t, ok)
	assert.Equal(t, fixedNow.UnixMilli(), queuedOutcome.LocalID)
	assert.Equal(t, "L"+strconv.FormatInt(fixedNow.UnixMilli(), 10), result.Outcome.Reference())

	assert.Empty(t, queued.ServerCode)
	assert.Equal(t, queuedOutcome.LocalID, queued.LocalID)
	assert.Empty(t, result.Transaction.ServerCode)

	tx := result.Transaction
	assert.Equal(t, session.OperatorID, tx.OperatorID)
	require.NotNil(t, tx.CustomerID)
	assert.Equal(t, customer.ID, *tx.CustomerID)
	assert.True(t, tx.Subtotal.Equal(dec("180")), tx.Subtotal.String())
	assert.True(t, tx.Tax.Equal(dec("30.78")), tx.Tax.String())
	assert.True(t, tx.Total.Equal(dec("201.78")), tx.Total.String())
	assert.True(t, tx.Discount.Equal(dec("32.60")), tx.Discount.String())
	assert.Equal(t, entity.PaymentMethodCash, tx.PaymentMethod)

	require.Len(t, tx.Lines, 1)
	line := tx.Lines[0]
	assert.Equal(t, item.ID, line.ItemID)
	require.NotNil(t, line.DiscountID)
	assert.Equal(t, rule.ID, *line.DiscountID)
	assert.True(t, line.UnitPrice.Equal(dec("118")))
	assert.True(t, line.UnitDiscount.Equal(dec("11.80")))
	assert.Equal(t, 2, line.Quantity)

	require.NotNil(t, event)
	assert.Equal(t, constants.OutcomeQueuedLocally, event.Outcome)
	assert.Equal(t, result.Outcome.Reference(), event.Reference)
	assert.Equal(t, customer.ID.String(), event.CustomerID)

	// The operator sees a completed checkout whose lines stay until dismissal.
	view := session.View()
	require.NotNil(t, view.Completed)
	assert.Len(t, view.Lines, 1)
}

func TestSubmissionService_Submit_Delivered(t *testing.T) {
	fx := createTestSubmissionService(t)
	session := openSession(t, fx.sessions, uuid.New())
	item := catalogItem("118.00", 5)
	addToCart(t, session, pricedAt(item), 2)
	submittedAt := fixedNow.Add(2 * time.Second)

	// The remote call must survive the caller going away.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx.ledger.EXPECT().
		SubmitTransaction(mock.Anything, mock.AnythingOfType("*entity.Transaction")).
		RunAndReturn(func(callCtx context.Context, tx *entity.Transaction) (*service.LedgerReceipt, error) {
			assert.NoError(t, callCtx.Err())
			assert.Nil(t, tx.CustomerID)
			assert.Nil(t, tx.Lines[0].DiscountID)
			assert.True(t, tx.Lines[0].UnitDiscount.IsZero())

			return &service.LedgerReceipt{Code: "V-000123", SubmittedAt: submittedAt}, nil
		}).
		Once()
	fx.expectStockUpdate(t,
		[]entity.StockDecrement{{ItemID: item.ID, Quantity: 2}},
		[]entity.StockLevel{{ItemID: item.ID, Stock: 3}},
	)
	fx.metrics.EXPECT().SubmissionCompleted(constants.OutcomeDelivered).Return().Once()
	fx.publisher.EXPECT().PublishSaleRecorded(mock.Anything, mock.Anything).Return(nil)

	result, err := fx.service.Submit(ctx, session.OperatorID, session.ID, entity.PaymentMethodCard)

	require.NoError(t, err)
	delivered, ok := result.Outcome.(entity.Delivered)
	require.True(t, ok)
	assert.Equal(t, "V-000123", delivered.ServerCode)
	assert.Equal(t, "V-000123", result.Transaction.ServerCode)
	assert.Equal(t, submittedAt, result.Transaction.CreatedAt)
	assert.Zero(t, result.Transaction.LocalID)
	assert.True(t, result.Totals.Total.Equal(dec("236")))
}

func TestSubmissionService_Submit_SecondSubmitRejected(t *testing.T) {
	fx := createTestSubmissionService(t)
	ctx := context.Background()
	session := openSession(t, fx.sessions, uuid.New())
	item := catalogItem("10.00", 5)
	addToCart(t, session, pricedAt(item), 1)

	fx.ledger.EXPECT().SubmitTransaction(mock.Anything, mock.Anything).
		Return(&service.LedgerReceipt{Code: "V-1", SubmittedAt: fixedNow}, nil).Once()
	fx.expectStockUpdate(t,
		[]entity.StockDecrement{{ItemID: item.ID, Quantity: 1}},
		[]entity.StockLevel{{ItemID: item.ID, Stock: 4}},
	)
	fx.metrics.EXPECT().SubmissionCompleted(constants.OutcomeDelivered).Return().Once()
	fx.publisher.EXPECT().PublishSaleRecorded(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := fx.service.Submit(ctx, session.OperatorID, session.ID, entity.PaymentMethodCash)
	require.NoError(t, err)

	_, err = fx.service.Submit(ctx, session.OperatorID, session.ID, entity.PaymentMethodCash)
	assert.True(t, errors.Is(err, domainerrors.ErrSubmissionInProgress))

	require.NoError(t, fx.service.Dismiss(ctx, session.OperatorID, session.ID))
	view := session.View()
	assert.Empty(t, view.Lines)
	assert.Nil(t, view.Completed)

	err = fx.service.Dismiss(ctx, session.OperatorID, session.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNothingToDismiss))
}

func TestSubmissionService_Submit_FallbackPersistFailure(t *testing.T) {
	fx := createTestSubmissionService(t)
	ctx := context.Background()
	session := openSession(t, fx.sessions, uuid.New())
	addToCart(t, session, pricedAt(catalogItem("10.00", 5)), 1)

	fx.ledger.EXPECT().SubmitTransaction(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
	fx.fallback.EXPECT().Append(mock.Anything, mock.Anything).Return(int64(0), errors.New("disk full")).Once()

	result, err := fx.service.Submit(ctx, session.OperatorID, session.ID, entity.PaymentMethodCash)

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrFallbackPersistFailed))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)

	// Nothing was recorded, so the cart can be edited and submitted again.
	assert.NoError(t, session.Mutate(func(*cart.Ledger) error { return nil }))
	assert.Nil(t, session.Completed())
}

func TestSubmissionService_Submit_StockMirrorFailureDoesNotFailSale(t *testing.T) {
	fx := createTestSubmissionService(t)
	ctx := context.Background()
	session := openSession(t, fx.sessions, uuid.New())
	item := catalogItem("10.00", 5)
	addToCart(t, session, pricedAt(item), 1)

	fx.ledger.EXPECT().SubmitTransaction(mock.Anything, mock.Anything).
		Return(&service.LedgerReceipt{Code: "V-2", SubmittedAt: fixedNow}, nil).Once()
	expectExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		catalogRepo := mockRepo.NewMockCatalogRepository(t)
		factory.EXPECT().NewCatalogRepository().Return(catalogRepo)
		catalogRepo.EXPECT().DecrementStock(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
	})
	fx.metrics.EXPECT().StockMirrorFailed().Return().Once()
	fx.metrics.EXPECT().SubmissionCompleted(constants.OutcomeDelivered).Return().Once()
	fx.publisher.EXPECT().PublishSaleRecorded(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := fx.service.Submit(ctx, session.OperatorID, session.ID, entity.PaymentMethodTransfer)

	require.NoError(t, err)
	assert.Equal(t, "V-2", result.Outcome.Reference())
}

func TestSubmissionService_Submit_PublishFailureDoesNotFailSale(t *testing.T) {
	fx := createTestSubmissionService(t)
	ctx := context.Background()
	session := openSession(t, fx.sessions, uuid.New())
	item := catalogItem("10.00", 5)
	addToCart(t, session, pricedAt(item), 1)

	fx.ledger.EXPECT().SubmitTransaction(mock.Anything, mock.Anything).
		Return(&service.LedgerReceipt{Code: "V-3", SubmittedAt: fixedNow}, nil).Once()
	fx.expectStockUpdate(t,
		[]entity.StockDecrement{{ItemID: item.ID, Quantity: 1}},
		[]entity.StockLevel{{ItemID: item.ID, Stock: 4}},
	)
	fx.metrics.EXPECT().SubmissionCompleted(constants.OutcomeDelivered).Return().Once()
	fx.metrics.EXPECT().EventPublishFailed().Return().Once()
	fx.publisher.EXPECT().PublishSaleRecorded(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	result, err := fx.service.Submit(ctx, session.OperatorID, session.ID, entity.PaymentMethodCash)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.NotNil(t, session.Completed())
}

func TestSubmissionService_Submit_Preconditions(t *testing.T) {
	fx := createTestSubmissionService(t)
	ctx := context.Background()

	empty := openSession(t, fx.sessions, uuid.New())
	_, err := fx.service.Submit(ctx, empty.OperatorID, empty.ID, entity.PaymentMethodCash)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))

	noOperator := openSession(t, fx.sessions, uuid.Nil)
	addToCart(t, noOperator, pricedAt(catalogItem("10.00", 5)), 1)
	_, err = fx.service.Submit(ctx, uuid.Nil, noOperator.ID, entity.PaymentMethodCash)
	assert.True(t, errors.Is(err, domainerrors.ErrNoOperator))

	_, err = fx.service.Submit(ctx, empty.OperatorID, empty.ID, entity.PaymentMethod("crypto"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentMethod))

	_, err = fx.service.Submit(ctx, empty.OperatorID, uuid.New(), entity.PaymentMethodCash)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}
