package queries_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/mealrepo"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/meal"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetMealsByAreaQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetMealsByAreaQueryHandler
}

func (suite *GetMealsByAreaQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&mealrepo.MealDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetMealsByAreaQueryHandler(db)
}

func (suite *GetMealsByAreaQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetMealsByAreaQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE meals").Error
	suite.Require().NoError(err)
}

func (suite *GetMealsByAreaQueryHandlerTestSuite) TestHandle_EmptyCatalog_ReturnsEmptySlice() {
	query, err := queries.NewGetMealsByAreaQuery("downtown")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetMealsByAreaQueryHandlerTestSuite) TestHandle_WithMeals_ReturnsAreaMealsOrderedByID() {
	suite.saveMeal("downtown", "M2", "Luigi's", "Carbonara", "Egg and guanciale", 25, "12.50")
	suite.saveMeal("downtown", "M1", "Luigi's", "Margherita", "Tomato and mozzarella", 20, "9.90")
	suite.saveMeal("uptown", "M3", "Sakura", "Ramen", "Pork broth", 15, "11.00")

	query, err := queries.NewGetMealsByAreaQuery("downtown")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Only downtown meals, sorted by id
	suite.Equal("M1", result[0].ID)
	suite.Equal("Luigi's", result[0].RestaurantName)
	suite.Equal("Margherita", result[0].Name)
	suite.Equal("Tomato and mozzarella", result[0].Description)
	suite.Equal(20, result[0].PrepMinutes)
	suite.True(decimal.RequireFromString("9.90").Equal(result[0].Price))

	suite.Equal("M2", result[1].ID)
	suite.Equal("Carbonara", result[1].Name)
	suite.True(decimal.RequireFromString("12.50").Equal(result[1].Price))
}

func (suite *GetMealsByAreaQueryHandlerTestSuite) TestHandle_UnknownArea_ReturnsEmptySlice() {
	suite.saveMeal("downtown", "M1", "Luigi's", "Margherita", "", 20, "9.90")

	query, err := queries.NewGetMealsByAreaQuery("nowhere")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetMealsByAreaQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetMealsByAreaQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetMealsByAreaQuery constructor")
}

func (suite *GetMealsByAreaQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	for i := range 50 {
		suite.saveMeal("downtown", "M"+string(rune('A'+i%26))+string(rune('0'+i%10)),
			"Restaurant", "Meal", "", 10, "5.00")
	}

	query, err := queries.NewGetMealsByAreaQuery("downtown")
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetMealsByAreaQueryHandlerTestSuite) saveMeal(
	area, id, restaurant, name, description string, prepMinutes int, price string,
) {
	testMeal, err := meal.NewMeal(
		area, id, restaurant, name, description,
		prepMinutes, decimal.RequireFromString(price),
	)
	suite.Require().NoError(err)

	repo := mealrepo.NewGormMealRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), testMeal))
}

func TestGetMealsByAreaQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetMealsByAreaQueryHandlerTestSuite))
}
