package postgres

import (
	"context"
	"time"

	"checkout/internal/domain/entity"
	"checkout/internal/domain/repository"
	"checkout/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// discountRuleRepository implements the repository.DiscountRuleRepository interface.
type discountRuleRepository struct {
	db *gorm.DB
}

// NewDiscountRuleRepository is the constructor for discountRuleRepository.
func NewDiscountRuleRepository(db *gorm.DB) repository.DiscountRuleRepository {
	return &discountRuleRepository{
		db: db,
	}
}

// FindActiveRules returns enabled rules whose window contains at.
// Rules are ordered by creation so that ties resolve to the oldest rule.
func (repo *discountRuleRepository) FindActiveRules(ctx context.Context, at time.Time) ([]entity.DiscountRule, error) {
	var ruleModels []*model.DiscountRuleModel

	if err := repo.db.WithContext(ctx).
		Where("enabled = ?", true).
		Where("starts_at <= ? AND ends_at >= ?", at, at).
		Order("created_at ASC, id ASC").
		Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active discount rules")
	}

	rules := make([]entity.DiscountRule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rules = append(rules, toDiscountRuleDomain(ruleM))
	}

	return rules, nil
}

func toDiscountRuleDomain(data *model.DiscountRuleModel) entity.DiscountRule {
	return entity.DiscountRule{
		ID:         data.ID,
		Name:       data.Name,
		Scope:      entity.DiscountScope(data.Scope),
		ItemIDs:    []uuid.UUID(data.ItemIDs),
		Categories: []string(data.Categories),
		Kind:       entity.DiscountKind(data.Kind),
		Value:      data.Value,
		StartsAt:   data.StartsAt,
		EndsAt:     data.EndsAt,
		Enabled:    data.Enabled,
	}
}
