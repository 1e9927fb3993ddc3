package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"checkout/internal/domain/cart"
	"checkout/internal/domain/checkout"
	"checkout/internal/domain/entity"
	"checkout/internal/domain/pricing"
	"checkout/internal/domain/repository"
	"checkout/internal/infra/persistence/memory"
	mockRepo "checkout/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectExecute makes the next Execute call run its callback against a fresh factory prepared by setup.
func expectExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

// openSession stores a fresh session for operatorID.
func openSession(t *testing.T, store repository.SessionStore, operatorID uuid.UUID) *checkout.Session {
	t.Helper()

	session := checkout.NewSession(operatorID, fixedNow)
	require.NoError(t, store.Save(context.Background(), session))

	return session
}

func newSessionStore() repository.SessionStore {
	return memory.NewSessionStore()
}

func catalogItem(price string, stock int) entity.CatalogItem {
	return entity.CatalogItem{
		ID:        uuid.New(),
		Name:      "Arroz Costeño 5kg",
		Code:      "7751234000011",
		Category:  "Abarrotes",
		Stock:     stock,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func percentRule(item entity.CatalogItem, value string) entity.DiscountRule {
	return entity.DiscountRule{
		ID:       uuid.New(),
		Name:     "Promo",
		Scope:    entity.DiscountScopeItem,
		ItemIDs:  []uuid.UUID{item.ID},
		Kind:     entity.DiscountKindPercentage,
		Value:    decimal.RequireFromString(value),
		StartsAt: fixedNow.Add(-time.Hour),
		EndsAt:   fixedNow.Add(time.Hour),
		Enabled:  true,
	}
}

// pricedAt prices item at fixedNow against rules.
func pricedAt(item entity.CatalogItem, rules ...entity.DiscountRule) entity.PricedItem {
	return pricing.ResolveDiscount(item, rules, fixedNow)
}

// addToCart puts an already priced item into the session's cart.
func addToCart(t *testing.T, session *checkout.Session, item entity.PricedItem, qty int) {
	t.Helper()

	require.NoError(t, session.Mutate(func(l *cart.Ledger) error {
		l.Select(item)

		return l.Commit(qty)
	}))
}

// addSelection makes item the session's pending selection.
func addSelection(t *testing.T, session *checkout.Session, item entity.PricedItem) {
	t.Helper()

	require.NoError(t, session.Mutate(func(l *cart.Ledger) error {
		l.Select(item)

		return nil
	}))
}

// attachCustomer confirms customer on the session with the given loyalty.
func attachCustomer(t *testing.T, session *checkout.Session, customer entity.Customer, loyalty entity.LoyaltyDiscount) {
	t.Helper()

	gen, err := session.BeginResolution(customer.NationalID)
	require.NoError(t, err)
	session.SettleResolution(func(r *checkout.Resolution) {
		r.Found(gen, entity.ExistingCustomer{Customer: customer})
	})
	require.True(t, session.AttachCustomer(gen, customer, loyalty))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
