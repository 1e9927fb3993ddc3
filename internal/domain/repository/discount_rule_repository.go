package repository

import (
	"context"
	"time"

	"checkout/internal/domain/entity"
)

// DiscountRuleRepository is the feed of externally managed discount rules.
type DiscountRuleRepository interface {
	// FindActiveRules returns enabled rules whose window contains at, in a stable order.
	FindActiveRules(ctx context.Context, at time.Time) ([]entity.DiscountRule, error)
}
