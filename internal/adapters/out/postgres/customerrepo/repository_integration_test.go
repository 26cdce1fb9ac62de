package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"entregas/internal/adapters/out/postgres/customerrepo"
	"entregas/internal/core/domain/model/customer"
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

// CustomerRepositoryIntegrationTestSuite provides integration tests for
// CustomerRepository using PostgreSQL containers.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}, &customerrepo.TransactionDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers, customer_transactions").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db, suite.tracker)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) createTestCustomer() *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Seu Joaquim", "11977776666", "Rua das Flores, 82")
	suite.Require().NoError(err)
	return c
}

func (suite *CustomerRepositoryIntegrationTestSuite) expectTracking() {
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTripsAggregate() {
	ctx := context.Background()
	suite.expectTracking()
	c := suite.createTestCustomer()

	suite.Require().NoError(suite.repository.Add(ctx, c))

	restored, err := suite.repository.Get(ctx, c.ID())

	suite.Require().NoError(err)
	suite.True(c.ID().IsEqual(restored.ID()))
	suite.Equal("Seu Joaquim", restored.Name())
	suite.Equal("11977776666", restored.Phone())
	suite.Equal("Rua das Flores, 82", restored.Address())
	suite.True(restored.Balance().IsZero())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NotFound() {
	suite.expectTracking()

	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_PersistsBalanceAfterTransactions() {
	ctx := context.Background()
	suite.expectTracking()
	c := suite.createTestCustomer()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	credit, err := customer.NewTransaction(
		kernel.NewUUID(), customer.TransactionCredit,
		decimal.RequireFromString("50.00"), "adiantamento",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(c.RecordTransaction(credit))

	debit, err := customer.NewTransaction(
		kernel.NewUUID(), customer.TransactionDebit,
		decimal.RequireFromString("20.00"), "entrega galao",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(c.RecordTransaction(debit))

	suite.Require().NoError(suite.repository.Update(ctx, c))

	restored, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(restored.Balance().Equal(decimal.RequireFromString("30.00")))
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_UnknownCustomer_NotFound() {
	suite.expectTracking()
	unknown := suite.createTestCustomer()

	err := suite.repository.Update(context.Background(), unknown)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestTransactions_AppendAndReadBackInOrder() {
	ctx := context.Background()
	suite.expectTracking()
	c := suite.createTestCustomer()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	first, err := customer.RestoreTransaction(
		kernel.NewUUID(), customer.TransactionCredit,
		decimal.RequireFromString("100.00"), "vale do mes",
		time.Now().Add(-time.Hour),
	)
	suite.Require().NoError(err)
	second, err := customer.RestoreTransaction(
		kernel.NewUUID(), customer.TransactionDebit,
		decimal.RequireFromString("35.00"), "duas aguas",
		time.Now(),
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AddTransaction(ctx, c.ID(), first))
	suite.Require().NoError(suite.repository.AddTransaction(ctx, c.ID(), second))

	entries, err := suite.repository.GetTransactions(ctx, c.ID())

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(customer.TransactionCredit, entries[0].Kind())
	suite.True(entries[0].Amount().Equal(decimal.RequireFromString("100.00")))
	suite.Equal("vale do mes", entries[0].Description())
	suite.Equal(customer.TransactionDebit, entries[1].Kind())
	suite.True(entries[1].SignedAmount().Equal(decimal.RequireFromString("-35.00")))
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetAll_SortedByName() {
	ctx := context.Background()
	suite.expectTracking()

	zilda, err := customer.NewCustomer(kernel.NewUUID(), "Zilda", "", "")
	suite.Require().NoError(err)
	ana, err := customer.NewCustomer(kernel.NewUUID(), "Ana", "", "")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, zilda))
	suite.Require().NoError(suite.repository.Add(ctx, ana))

	all, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("Ana", all[0].Name())
	suite.Equal("Zilda", all[1].Name())
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
