package impl

import (
	"context"
	"log/slog"

	deliverycontext "checkout/internal/delivery/context"
	"checkout/internal/domain/checkout"
	"checkout/internal/domain/entity"
	domainerrors "checkout/internal/domain/errors"
	"checkout/internal/domain/repository"
	"checkout/internal/domain/service"
	"checkout/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	nationalIDLength = 8

	messageNotFound            = "not found"
	messageRegistryUnavailable = "national registry unavailable"
	messageRegistrationFailed  = "customer registration failed"
)

var maxLoyaltyPercentage = decimal.NewFromInt(100)

type customerService struct {
	sessions  repository.SessionStore
	txManager repository.TransactionManager
	registry  service.NationalRegistry
	loyalty   service.LoyaltyService
	metrics   service.CheckoutMetrics
	logger    *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	Sessions  repository.SessionStore
	TxManager repository.TransactionManager
	Registry  service.NationalRegistry
	Loyalty   service.LoyaltyService
	Metrics   service.CheckoutMetrics
	Logger    *slog.Logger
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		sessions:  params.Sessions,
		txManager: params.TxManager,
		registry:  params.Registry,
		loyalty:   params.Loyalty,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveCustomer looks nationalID up in the local store, then in the national registry.
// Not being found anywhere is a resolution outcome, not an error.
func (srv *customerService) ResolveCustomer(ctx context.Context, operatorID, sessionID uuid.UUID, nationalID string) (*checkout.ResolutionView, error) {
	if !isValidNationalID(nationalID) {
		return nil, domainerrors.ErrInvalidNationalID
	}

	session, err := loadSession(ctx, srv.sessions, operatorID, sessionID)
	if err != nil {
		return nil, err
	}

	generation, err := session.BeginResolution(nationalID)
	if err != nil {
		return nil, err
	}

	existing, err := srv.findLocal(ctx, nationalID)
	if err != nil {
		session.SettleResolution(func(r *checkout.Resolution) { r.Abort(generation) })
		srv.log(ctx).Error("Local customer lookup failed", slog.Any("session_id", sessionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve customer")
	}

	if existing != nil {
		session.SettleResolution(func(r *checkout.Resolution) {
			r.Found(generation, entity.ExistingCustomer{Customer: *existing})
		})

		return srv.resolved(ctx, session), nil
	}

	result, err := srv.registry.Lookup(ctx, nationalID)
	if err == nil && result == nil {
		err = errors.New("registry returned no result")
	}

	switch {
	case err != nil:
		srv.log(ctx).Warn("National registry lookup failed", slog.Any("session_id", sessionID), slog.Any("error", err))
		session.SettleResolution(func(r *checkout.Resolution) { r.Fail(generation, messageRegistryUnavailable) })
	case !result.Success:
		message := result.Message
		if message == "" {
			message = messageNotFound
		}
		session.SettleResolution(func(r *checkout.Resolution) { r.Fail(generation, message) })
	default:
		session.SettleResolution(func(r *checkout.Resolution) {
			r.Found(generation, entity.PendingRegistration{
				NationalID:  nationalID,
				Name:        result.Name,
				RegistryRaw: result.Raw,
			})
		})
	}

	return srv.resolved(ctx, session), nil
}

// ConfirmCustomer registers a registry match locally when needed and attaches the customer with
// its loyalty discount to the checkout.
func (srv *customerService) ConfirmCustomer(ctx context.Context, operatorID, sessionID uuid.UUID) (*usecase.ConfirmedCustomer, error) {
	session, err := loadSession(ctx, srv.sessions, operatorID, sessionID)
	if err != nil {
		return nil, err
	}

	match, generation, err := session.ConfirmableMatch()
	if err != nil {
		return nil, err
	}

	var customer entity.Customer
	switch m := match.(type) {
	case entity.ExistingCustomer:
		customer = m.Customer
	case entity.PendingRegistration:
		registered, err := srv.register(ctx, m)
		if err != nil {
			session.SettleResolution(func(r *checkout.Resolution) { r.RegistrationFailed(generation, messageRegistrationFailed) })
			srv.log(ctx).Error("Customer registration failed", slog.Any("session_id", sessionID), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrRegistrationFailed, err.Error())
		}
		customer = *registered
		srv.log(ctx).Info("Customer registered", slog.Any("customer_id", customer.ID))
	default:
		return nil, domainerrors.ErrResolutionNotConfirmable
	}

	loyalty := srv.lookupLoyalty(ctx, customer.ID)

	if !session.AttachCustomer(generation, customer, loyalty) {
		return nil, errors.Wrap(domainerrors.ErrResolutionNotConfirmable, "resolution was cancelled")
	}

	return &usecase.ConfirmedCustomer{Customer: customer, Loyalty: loyalty}, nil
}

// CancelCustomer abandons any lookup and detaches the customer.
func (srv *customerService) CancelCustomer(ctx context.Context, operatorID, sessionID uuid.UUID) error {
	session, err := loadSession(ctx, srv.sessions, operatorID, sessionID)
	if err != nil {
		return err
	}

	return session.DetachCustomer()
}

func (srv *customerService) findLocal(ctx context.Context, nationalID string) (*entity.Customer, error) {
	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCustomerRepository().FindByNationalID(ctx, nationalID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find customer")
		}
		customer = found

		return nil
	})

	return customer, err
}

// register stores a registry match. A concurrent registration of the same national id is
// resolved by reading the stored record back.
func (srv *customerService) register(ctx context.Context, pending entity.PendingRegistration) (*entity.Customer, error) {
	customer := &entity.Customer{
		NationalID: pending.NationalID,
		Name:       pending.Name,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		err := customerRepo.CreateCustomer(ctx, customer)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateCustomer) {
			return errors.Wrap(err, "failed to create customer")
		}

		existing, err := customerRepo.FindByNationalID(ctx, pending.NationalID)
		if err != nil {
			return errors.Wrap(err, "failed to find customer")
		}
		customer = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// lookupLoyalty degrades every failure to "not eligible".
func (srv *customerService) lookupLoyalty(ctx context.Context, customerID uuid.UUID) entity.LoyaltyDiscount {
	loyalty, err := srv.loyalty.Eligibility(ctx, customerID)
	if err != nil {
		srv.log(ctx).Warn("Loyalty lookup failed, continuing without loyalty discount",
			slog.Any("customer_id", customerID),
			slog.Any("error", err),
		)

		return entity.LoyaltyDiscount{}
	}
	if !loyalty.Eligible {
		return entity.LoyaltyDiscount{}
	}
	if loyalty.Percentage.IsNegative() || loyalty.Percentage.GreaterThan(maxLoyaltyPercentage) {
		srv.log(ctx).Warn("Loyalty percentage out of range, ignoring",
			slog.Any("customer_id", customerID),
			slog.String("percentage", loyalty.Percentage.String()),
		)

		return entity.LoyaltyDiscount{}
	}

	return loyalty
}

func (srv *customerService) resolved(ctx context.Context, session *checkout.Session) *checkout.ResolutionView {
	view := session.View().Resolution
	srv.metrics.ResolutionCompleted(string(view.State))
	srv.log(ctx).Debug("Customer resolution settled", slog.Any("session_id", session.ID), slog.String("state", string(view.State)))

	return &view
}

func isValidNationalID(nationalID string) bool {
	if len(nationalID) != nationalIDLength {
		return false
	}
	for i := 0; i < len(nationalID); i++ {
		if nationalID[i] < '0' || nationalID[i] > '9' {
			return false
		}
	}

	return true
}
