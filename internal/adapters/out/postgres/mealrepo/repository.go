package mealrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/meal"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMealRepository implements MealRepository using GORM.
type GormMealRepository struct {
	db *gorm.DB
}

// NewGormMealRepository creates a new GORM meal repository.
func NewGormMealRepository(db *gorm.DB) *GormMealRepository {
	return &GormMealRepository{
		db: db,
	}
}

// Add saves a new catalog entry to the database.
// Used for catalog provisioning; the ordering core itself never writes meals.
func (r *GormMealRepository) Add(ctx context.Context, aggregate *meal.Meal) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}

// Get retrieves the meal for the (area, mealID) pair.
// Returns an error unwrapping to errs.ErrObjectNotFound when the pair has no
// record, so callers can abort an order submission as a whole.
func (r *GormMealRepository) Get(ctx context.Context, area string, mealID string) (*meal.Meal, error) {
	if area == "" {
		return nil, errs.NewValueIsRequiredError("area")
	}
	if mealID == "" {
		return nil, errs.NewValueIsRequiredError("mealID")
	}

	var dto MealDTO
	if err := r.db.WithContext(ctx).First(&dto, "area = ? AND id = ?", area, mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("meal", mealID)
		}
		return nil, err
	}

	return toDomain(dto)
}
