package costrepo_test

import (
	"context"
	"testing"
	"time"

	"entregas/internal/adapters/out/postgres/costrepo"
	"entregas/internal/core/domain/model/cost"
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// CostRepositoryIntegrationTestSuite provides integration tests for
// CostRepository using PostgreSQL containers.
type CostRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *costrepo.GormCostRepository
	tracker    *MockAggregateTracker
}

func (suite *CostRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&costrepo.CostDTO{}))
}

func (suite *CostRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE costs").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = costrepo.NewGormCostRepository(suite.db, suite.tracker)
}

func (suite *CostRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CostRepositoryIntegrationTestSuite) createTestCost(day kernel.Date, description, amount string, category cost.Category) *cost.Cost {
	entry, err := cost.NewCost(
		kernel.NewUUID(), day, description,
		decimal.RequireFromString(amount), category, "nota na pasta",
	)
	suite.Require().NoError(err)
	return entry
}

func (suite *CostRepositoryIntegrationTestSuite) expectTracking() {
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
}

func (suite *CostRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTripsAggregate() {
	ctx := context.Background()
	suite.expectTracking()
	day, err := kernel.DateFromString("2024-06-01")
	suite.Require().NoError(err)

	entry := suite.createTestCost(day, "diesel posto br", "180.00", cost.CategoryDiesel)
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	restored, err := suite.repository.Get(ctx, entry.ID())

	suite.Require().NoError(err)
	suite.True(entry.ID().IsEqual(restored.ID()))
	suite.True(day.IsEqual(restored.Date()))
	suite.Equal("diesel posto br", restored.Description())
	suite.True(restored.Amount().Equal(decimal.RequireFromString("180.00")))
	suite.Equal(cost.CategoryDiesel, restored.Category())
	suite.Equal("nota na pasta", restored.Notes())
}

func (suite *CostRepositoryIntegrationTestSuite) TestGet_NotFound() {
	suite.expectTracking()

	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CostRepositoryIntegrationTestSuite) TestGetAllByDate_FiltersToTheDay() {
	ctx := context.Background()
	suite.expectTracking()
	day, err := kernel.DateFromString("2024-06-01")
	suite.Require().NoError(err)
	otherDay, err := kernel.DateFromString("2024-06-02")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createTestCost(day, "diesel", "120.00", cost.CategoryDiesel)))
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createTestCost(day, "almoco", "42.00", cost.CategoryAlimentacao)))
	suite.Require().NoError(suite.repository.Add(ctx,
		suite.createTestCost(otherDay, "pneu", "350.00", cost.CategoryPneu)))

	entries, err := suite.repository.GetAllByDate(ctx, day)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("diesel", entries[0].Description())
	suite.Equal("almoco", entries[1].Description())
}

func (suite *CostRepositoryIntegrationTestSuite) TestGetAllByDate_EmptyDay_ReturnsEmptySlice() {
	suite.expectTracking()
	day, err := kernel.DateFromString("2024-12-25")
	suite.Require().NoError(err)

	entries, err := suite.repository.GetAllByDate(context.Background(), day)

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func TestCostRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CostRepositoryIntegrationTestSuite))
}
