package impl

import (
	"context"
	"testing"
	"time"

	"checkout/internal/domain/entity"
	domainerrors "checkout/internal/domain/errors"
	"checkout/internal/domain/repository"
	mockRepo "checkout/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service   *cartService
	sessions  repository.SessionStore
	txManager *mockRepo.MockTransactionManager
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	sessions := newSessionStore()
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCartService(CartServiceParams{
		Sessions:  sessions,
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	}).(*cartService)
	service.now = func() time.Time { return fixedNow }

	return cartServiceFixtures{
		service:   service,
		sessions:  sessions,
		txManager: txManager,
	}
}

func TestCartService_SelectItem_AppliesBestDiscount(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	session := openSession(t, fx.sessions, uuid.New())
	item := catalogItem("118.00", 10)
	rule := percentRule(item, "10")

	expectExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		catalogRepo := mockRepo.NewMockCatalogRepository(t)
		ruleRepo := mockRepo.NewMockDiscountRuleRepository(t)
		factory.EXPECT().NewCatalogRepository().Return(catalogRepo)
		factory.EXPECT().NewDiscountRuleRepository().Return(ruleRepo)
		catalogRepo.EXPECT().FindItemByID(ctx, item.ID).Return(&item, nil)
		ruleRepo.EXPECT().FindActiveRules(ctx, fixedNow).Return([]entity.DiscountRule{rule}, nil)
	})

	view, err := fx.service.SelectItem(ctx, session.OperatorID, session.ID, item.ID)

	require.NoError(t, err)
	require.NotNil(t, view.Pending)
	assert.Equal(t, 1, view.Pending.Quantity)
	assert.True(t, view.Pending.Item.DiscountedUnitPrice.Equal(dec("106.20")))
	require.NotNil(t, view.Pending.Item.Rule)
	assert.Equal(t, rule.ID, view.Pending.Item.Rule.ID)
}

func TestCartService_SelectItem_NotFound(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	session := openSession(t, fx.sessions, uuid.New())
	itemID := uuid.New()

	expectExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		catalogRepo := mockRepo.NewMockCatalogRepository(t)
		factory.EXPECT().NewCatalogRepository().Return(catalogRepo)
		catalogRepo.EXPECT().FindItemByID(ctx, itemID).Return(nil, repository.ErrCatalogItemNotFound)
	})

	_, err := fx.service.SelectItem(ctx, session.OperatorID, session.ID, itemID)

	assert.True(t, errors.Is(err, domainerrors.ErrCatalogItemNotFound))
	assert.Nil(t, session.View().Pending)
}

func TestCartService_SelectItem_RulesFeedError(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	session := openSession(t, fx.sessions, uuid.New())
	item := catalogItem("5.00", 1)

	expectExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		catalogRepo := mockRepo.NewMockCatalogRepository(t)
		ruleRepo := mockRepo.NewMockDiscountRuleRepository(t)
		factory.EXPECT().NewCatalogRepository().Return(catalogRepo)
		factory.EXPECT().NewDiscountRuleRepository().Return(ruleRepo)
		catalogRepo.EXPECT().FindItemByID(ctx, item.ID).Return(&item, nil)
		ruleRepo.EXPECT().FindActiveRules(ctx, fixedNow).Return(nil, errors.New("db error"))
	})

	_, err := fx.service.SelectItem(ctx, session.OperatorID, session.ID, item.ID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load active discount rules")
}

func TestCartService_SelectItem_ForeignSession(t *testing.T) {
	fx := createTestCartService(t)
	session := openSession(t, fx.sessions, uuid.New())

	_, err := fx.service.SelectItem(context.Background(), uuid.New(), session.ID, uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrSessionForbidden))
}

func TestCartService_CommitSelection(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	session := openSession(t, fx.sessions, uuid.New())
	item := catalogItem("118.00", 3)
	addToCart(t, session, pricedAt(item), 2)

	// Select again without committing, then try to exceed stock.
	addSelection(t, session, pricedAt(item))

	_, err := fx.service.CommitSelection(ctx, session.OperatorID, session.ID, 2)

	var stockErr *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 1, stockErr.Remaining)

	view, err := fx.service.CommitSelection(ctx, session.OperatorID, session.ID, 1)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 3, view.Lines[0].Quantity)
	assert.True(t, view.Totals.Total.Equal(dec("354")))
}

func TestCartService_CommitWithoutSelection(t *testing.T) {
	fx := createTestCartService(t)
	session := openSession(t, fx.sessions, uuid.New())

	_, err := fx.service.CommitSelection(context.Background(), session.OperatorID, session.ID, 1)

	assert.True(t, errors.Is(err, domainerrors.ErrNoSelection))
}

func TestCartService_SetQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	session := openSession(t, fx.sessions, uuid.New())
	item := catalogItem("10.00", 4)
	addToCart(t, session, pricedAt(item), 1)

	view, err := fx.service.SetQuantity(ctx, session.OperatorID, session.ID, item.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, view.Lines[0].Quantity)

	_, err = fx.service.SetQuantity(ctx, session.OperatorID, session.ID, item.ID, 5)
	var stockErr *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 4, stockErr.Remaining)

	view, err = fx.service.SetQuantity(ctx, session.OperatorID, session.ID, item.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Lines[0].Quantity)

	_, err = fx.service.SetQuantity(ctx, session.OperatorID, session.ID, uuid.New(), 1)
	assert.True(t, errors.Is(err, domainerrors.ErrLineNotFound))
}

func TestCartService_RemoveAndClear(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	session := openSession(t, fx.sessions, uuid.New())
	first := catalogItem("10.00", 4)
	second := catalogItem("20.00", 4)
	addToCart(t, session, pricedAt(first), 1)
	addToCart(t, session, pricedAt(second), 1)

	view, err := fx.service.RemoveLine(ctx, session.OperatorID, session.ID, first.ID)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, second.ID, view.Lines[0].ID)

	for i := 0; i < 2; i++ {
		view, err = fx.service.ClearCart(ctx, session.OperatorID, session.ID)
		require.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.True(t, view.Totals.Total.IsZero())
	}
}

func TestCartService_LockedDuringSubmission(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	session := openSession(t, fx.sessions, uuid.New())
	item := catalogItem("10.00", 4)
	addToCart(t, session, pricedAt(item), 1)
	_, err := session.BeginSubmission()
	require.NoError(t, err)

	_, err = fx.service.RemoveLine(ctx, session.OperatorID, session.ID, item.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrCheckoutLocked))
	assert.Len(t, session.View().Lines, 1)
}
