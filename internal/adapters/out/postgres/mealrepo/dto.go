// Package mealrepo provides data transfer objects and mapping functions for the
// meal catalog. The catalog is read-only for the ordering core; write access
// exists only for provisioning and tests.
package mealrepo

import (
	"foodorder/internal/core/domain/model/meal"

	"github.com/shopspring/decimal"
)

// MealDTO represents the database structure for meal catalog records.
// The composite primary key mirrors the catalog partitioning: area is the
// partition, the meal id is unique within it.
type MealDTO struct {
	Area           string `gorm:"primaryKey"`
	ID             string `gorm:"primaryKey"`
	RestaurantName string
	Name           string
	Description    string
	PrepMinutes    int
	Price          decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for meal entities.
// Overrides GORM's default naming convention to use "meals".
func (MealDTO) TableName() string {
	return "meals"
}

// fromDomain converts a meal domain entity to its database representation.
func fromDomain(meal *meal.Meal) MealDTO {
	return MealDTO{
		Area:           meal.Area(),
		ID:             meal.ID(),
		RestaurantName: meal.RestaurantName(),
		Name:           meal.Name(),
		Description:    meal.Description(),
		PrepMinutes:    meal.PrepMinutes(),
		Price:          meal.Price(),
	}
}

// toDomain converts a database DTO to a meal domain entity,
// re-running the domain validation on the stored values.
func toDomain(dto MealDTO) (*meal.Meal, error) {
	return meal.NewMeal(
		dto.Area,
		dto.ID,
		dto.RestaurantName,
		dto.Name,
		dto.Description,
		dto.PrepMinutes,
		dto.Price,
	)
}
