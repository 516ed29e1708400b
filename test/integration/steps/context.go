//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/daily-budget/backend/config"
	"github.com/daily-budget/backend/internal/infra/dependency"
	"github.com/daily-budget/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds the state of one scenario.
type testContext struct {
	uri          string
	headers      map[string]string
	client       *http.Client
	response     *response
	db           *mock.Db
	redis        *redis.Client
	timeMock     *mock.Time
	accessToken  string
	refreshToken string
	userID       uuid.UUID
	lastID       uuid.UUID
}

type response struct {
	status int
	body   any
}

var (
	serverInit sync.Once
	server     *httptest.Server
	suiteDB    *mock.Db
	suiteRedis *redis.Client
	suiteClock *mock.Time
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		suiteDB = mock.NewDb("daily_budget")
		suiteRedis = mock.NewRedis()
		suiteClock = mock.NewTime()
	})

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
		if suiteDB != nil {
			_ = suiteDB.Database.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)
	ctx.Step(`^today is "([^"]*)"$`, test.todayIs)

	// User setup steps
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Step(`^a user exists with email "([^"]*)" and month start day (\d+)$`, test.aUserExistsWithEmailAndMonthStartDay)
	ctx.Step(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Ledger setup steps
	ctx.Step(`^I have a budget of "([^"]*)" for (\d+)/(\d+)$`, test.iHaveABudgetOf)
	ctx.Step(`^I spent "([^"]*)" on "([^"]*)"$`, test.iSpentOn)

	// Header steps
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.db = suiteDB
	t.redis = suiteRedis
	t.timeMock = suiteClock
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.userID = uuid.Nil
	t.lastID = uuid.Nil

	t.timeMock.SetCurrentTime(time.Now())
	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(t.redis)
}

func (t *testContext) startServer() error {
	var startErr error
	serverInit.Do(func() {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Database.Driver = config.DriverSQLite
		cfg.JWT.Secret = testJWTSecret
		cfg.App.Timezone = "UTC"

		injector, err := dependency.NewInjector(cfg, t.db.Database, t.redis, t.timeMock)
		if err != nil {
			startErr = fmt.Errorf("failed to build injector: %w", err)
			return
		}
		server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})
	if startErr != nil {
		return startErr
	}
	if server == nil {
		return fmt.Errorf("test server is not running")
	}

	t.uri = server.URL
	return nil
}
