package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "checkout/internal/delivery/context"
	"checkout/internal/domain/cart"
	"checkout/internal/domain/checkout"
	"checkout/internal/domain/entity"
	domainerrors "checkout/internal/domain/errors"
	"checkout/internal/domain/pricing"
	"checkout/internal/domain/repository"
	"checkout/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	sessions  repository.SessionStore
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Sessions  repository.SessionStore
	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		sessions:  params.Sessions,
		txManager: params.TxManager,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SelectItem prices a catalog item and makes it the pending selection.
func (srv *cartService) SelectItem(ctx context.Context, operatorID, sessionID, itemID uuid.UUID) (*checkout.View, error) {
	session, err := loadSession(ctx, srv.sessions, operatorID, sessionID)
	if err != nil {
		return nil, err
	}

	at := srv.now()
	var priced entity.PricedItem

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		item, err := repoFactory.NewCatalogRepository().FindItemByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, repository.ErrCatalogItemNotFound) {
				return errors.Wrap(domainerrors.ErrCatalogItemNotFound, "catalog item not found")
			}

			return errors.Wrap(err, "failed to find catalog item")
		}

		rules, err := repoFactory.NewDiscountRuleRepository().FindActiveRules(ctx, at)
		if err != nil {
			return errors.Wrap(err, "failed to load active discount rules")
		}

		priced = pricing.ResolveDiscount(*item, rules, at)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to select item")
	}

	err = session.Mutate(func(l *cart.Ledger) error {
		l.Select(priced)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Item selected",
		slog.Any("session_id", sessionID),
		slog.Any("item_id", itemID),
		slog.Any("discount_id", priced.DiscountID()),
	)

	return viewOf(session), nil
}

// CommitSelection adds the pending selection with the given quantity.
func (srv *cartService) CommitSelection(ctx context.Context, operatorID, sessionID uuid.UUID, quantity int) (*checkout.View, error) {
	session, err := loadSession(ctx, srv.sessions, operatorID, sessionID)
	if err != nil {
		return nil, err
	}

	err = session.Mutate(func(l *cart.Ledger) error {
		return l.Commit(quantity)
	})
	if err != nil {
		var stockErr *domainerrors.InsufficientStockError
		if errors.As(err, &stockErr) {
			srv.log(ctx).Info("Commit rejected for insufficient stock",
				slog.Any("session_id", sessionID),
				slog.String("item_id", stockErr.ItemID),
				slog.Int("remaining", stockErr.Remaining),
			)
		}

		return nil, err
	}

	return viewOf(session), nil
}

// SetQuantity replaces the quantity of a cart line. The ledger only clamps quantities, so the
// stock seen when the item was selected is checked here.
func (srv *cartService) SetQuantity(ctx context.Context, operatorID, sessionID, itemID uuid.UUID, quantity int) (*checkout.View, error) {
	session, err := loadSession(ctx, srv.sessions, operatorID, sessionID)
	if err != nil {
		return nil, err
	}

	err = session.Mutate(func(l *cart.Ledger) error {
		line, ok := l.Line(itemID)
		if !ok {
			return domainerrors.ErrLineNotFound
		}
		if quantity > line.StockSnapshot {
			return domainerrors.NewInsufficientStockError(itemID.String(), quantity, line.StockSnapshot)
		}
		l.SetQuantity(itemID, quantity)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return viewOf(session), nil
}

// RemoveLine deletes a cart line. Removing an absent line is not an error.
func (srv *cartService) RemoveLine(ctx context.Context, operatorID, sessionID, itemID uuid.UUID) (*checkout.View, error) {
	session, err := loadSession(ctx, srv.sessions, operatorID, sessionID)
	if err != nil {
		return nil, err
	}

	err = session.Mutate(func(l *cart.Ledger) error {
		l.Remove(itemID)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return viewOf(session), nil
}

// ClearCart empties the cart.
func (srv *cartService) ClearCart(ctx context.Context, operatorID, sessionID uuid.UUID) (*checkout.View, error) {
	session, err := loadSession(ctx, srv.sessions, operatorID, sessionID)
	if err != nil {
		return nil, err
	}

	err = session.Mutate(func(l *cart.Ledger) error {
		l.Clear()

		return nil
	})
	if err != nil {
		return nil, err
	}

	return viewOf(session), nil
}

func viewOf(session *checkout.Session) *checkout.View {
	view := session.View()

	return &view
}
