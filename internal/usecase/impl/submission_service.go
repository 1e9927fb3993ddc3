package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "checkout/internal/delivery/context"
	"checkout/internal/domain/checkout"
	"checkout/internal/domain/constants"
	"checkout/internal/domain/entity"
	domainerrors "checkout/internal/domain/errors"
	"checkout/internal/domain/repository"
	"checkout/internal/domain/service"
	"checkout/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type submissionService struct {
	sessions  repository.SessionStore
	txManager repository.TransactionManager
	fallback  repository.FallbackQueue
	ledger    service.LedgerClient
	publisher service.EventPublisher
	metrics   service.CheckoutMetrics
	logger    *slog.Logger
	now       func() time.Time
}

// SubmissionServiceParams holds dependencies for SubmissionService, injected by Fx.
type SubmissionServiceParams struct {
	fx.In

	Sessions  repository.SessionStore
	TxManager repository.TransactionManager
	Fallback  repository.FallbackQueue
	Ledger    service.LedgerClient
	Publisher service.EventPublisher
	Metrics   service.CheckoutMetrics
	Logger    *slog.Logger
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(params SubmissionServiceParams) usecase.SubmissionUsecase {
	return &submissionService{
		sessions:  params.Sessions,
		txManager: params.TxManager,
		fallback:  params.Fallback,
		ledger:    params.Ledger,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *submissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit records the session's cart as a sale.
//
// The remote ledger gets a single attempt. When it fails the sale is appended to the local
// fallback queue instead and the caller still sees a completed checkout. Either way the stock
// mirror is decremented once. The work runs on a context detached from ctx so that a caller
// going away cannot interrupt it.
func (srv *submissionService) Submit(ctx context.Context, operatorID, sessionID uuid.UUID, method entity.PaymentMethod) (*entity.SubmissionResult, error) {
	if !method.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}

	session, err := loadSession(ctx, srv.sessions, operatorID, sessionID)
	if err != nil {
		return nil, err
	}

	draft, err := session.BeginSubmission()
	if err != nil {
		return nil, err
	}

	runCtx := context.WithoutCancel(ctx)
	tx := buildTransaction(draft, method, srv.now())

	outcome, err := srv.deliver(runCtx, &tx)
	if err != nil {
		session.AbortSubmission()

		return nil, err
	}

	srv.applyStock(runCtx, draft.Lines)

	result := entity.SubmissionResult{
		Transaction: tx,
		Lines:       draft.Lines,
		Customer:    draft.Customer,
		Totals:      draft.Totals,
		Outcome:     outcome,
	}

	label := outcomeLabel(outcome)
	srv.metrics.SubmissionCompleted(label)
	srv.publish(runCtx, &result)
	session.FinishSubmission(result)

	srv.log(ctx).Info("Checkout completed",
		slog.Any("session_id", sessionID),
		slog.String("outcome", label),
		slog.String("reference", outcome.Reference()),
		slog.String("total", tx.Total.String()),
	)

	return &result, nil
}

// Dismiss acknowledges a completed checkout and clears the session for the next sale.
func (srv *submissionService) Dismiss(ctx context.Context, operatorID, sessionID uuid.UUID) error {
	session, err := loadSession(ctx, srv.sessions, operatorID, sessionID)
	if err != nil {
		return err
	}

	if err := session.Dismiss(); err != nil {
		return err
	}

	srv.log(ctx).Debug("Checkout dismissed", slog.Any("session_id", sessionID))

	return nil
}

// deliver submits tx remotely and falls back to the local queue. An error means the sale was
// recorded nowhere: the caller then leaves the stock mirror untouched and unlocks the session, so
// the operator can retry the same cart without the mirror counting the goods twice.
func (srv *submissionService) deliver(ctx context.Context, tx *entity.Transaction) (entity.SubmissionOutcome, error) {
	receipt, err := srv.ledger.SubmitTransaction(ctx, tx)
	if err == nil && receipt != nil {
		tx.ServerCode = receipt.Code
		if !receipt.SubmittedAt.IsZero() {
			tx.CreatedAt = receipt.SubmittedAt
		}

		return entity.Delivered{ServerCode: receipt.Code, SubmittedAt: tx.CreatedAt}, nil
	}
	if err == nil {
		err = errors.New("ledger returned no receipt")
	}

	srv.log(ctx).Warn("Remote ledger submission failed, queueing locally", slog.Any("error", err))

	tx.LocalID = tx.CreatedAt.UnixMilli()
	localID, err := srv.fallback.Append(ctx, *tx)
	if err != nil {
		srv.log(ctx).Error("Failed to queue transaction locally", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrFallbackPersistFailed, err.Error())
	}
	tx.LocalID = localID

	return entity.QueuedLocally{LocalID: localID, QueuedAt: tx.CreatedAt}, nil
}

// applyStock decrements the stock mirror by the sold quantities and persists the resulting levels
// next to the fallback queue. Failures are logged and counted; the sale stands.
func (srv *submissionService) applyStock(ctx context.Context, lines []entity.LineItem) {
	decrements := make([]entity.StockDecrement, 0, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		decrements = append(decrements, entity.StockDecrement{ItemID: line.ID, Quantity: line.Quantity})
		ids = append(ids, line.ID)
	}

	var levels []entity.StockLevel

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.NewCatalogRepository()

		if err := catalogRepo.DecrementStock(ctx, decrements); err != nil {
			return errors.Wrap(err, "failed to decrement stock")
		}

		found, err := catalogRepo.ListStockLevels(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to read stock levels")
		}
		levels = found

		return nil
	})
	if err != nil {
		srv.metrics.StockMirrorFailed()
		srv.log(ctx).Error("Failed to update stock mirror", slog.Any("error", err))

		return
	}

	if err := srv.fallback.SaveStockSnapshot(ctx, levels); err != nil {
		srv.log(ctx).Warn("Failed to persist stock snapshot", slog.Any("error", err))
	}
}

func (srv *submissionService) publish(ctx context.Context, result *entity.SubmissionResult) {
	tx := result.Transaction
	event := &service.SaleRecordedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Reference:  result.Outcome.Reference(),
		Outcome:    outcomeLabel(result.Outcome),
		OperatorID: tx.OperatorID.String(),
		Subtotal:   tx.Subtotal,
		Discount:   tx.Discount,
		Tax:        tx.Tax,
		Total:      tx.Total,
		Lines:      make([]service.SaleLine, 0, len(tx.Lines)),
		RecordedAt: tx.CreatedAt,
	}
	if tx.CustomerID != nil {
		event.CustomerID = tx.CustomerID.String()
	}
	for _, line := range tx.Lines {
		event.Lines = append(event.Lines, service.SaleLine{
			ItemID:   line.ItemID.String(),
			Quantity: line.Quantity,
			Price:    line.UnitPrice.Sub(line.UnitDiscount),
		})
	}

	if err := srv.publisher.PublishSaleRecorded(ctx, event); err != nil {
		srv.metrics.EventPublishFailed()
		srv.log(ctx).Warn("Failed to publish sale event", slog.String("reference", event.Reference), slog.Any("error", err))
	}
}

// buildTransaction turns a captured cart into the ledger payload. Unit prices are sent as listed,
// with the per-unit discount alongside.
func buildTransaction(draft checkout.Draft, method entity.PaymentMethod, now time.Time) entity.Transaction {
	tx := entity.Transaction{
		OperatorID:    draft.OperatorID,
		Lines:         make([]entity.TransactionLine, 0, len(draft.Lines)),
		Discount:      draft.Totals.DiscountTotal(),
		Subtotal:      draft.Totals.Subtotal,
		Tax:           draft.Totals.Tax,
		Total:         draft.Totals.Total,
		PaymentMethod: method,
		CreatedAt:     now,
	}
	if draft.Customer != nil {
		id := draft.Customer.ID
		tx.CustomerID = &id
	}

	for _, line := range draft.Lines {
		tx.Lines = append(tx.Lines, entity.TransactionLine{
			ItemID:       line.ID,
			Name:         line.Name,
			DiscountID:   line.DiscountID(),
			UnitDiscount: line.UnitDiscount(),
			UnitPrice:    line.UnitPrice,
			Quantity:     line.Quantity,
		})
	}

	return tx
}

func outcomeLabel(outcome entity.SubmissionOutcome) string {
	switch outcome.(type) {
	case entity.Delivered:
		return constants.OutcomeDelivered
	case entity.QueuedLocally:
		return constants.OutcomeQueuedLocally
	default:
		return "unknown"
	}
}
