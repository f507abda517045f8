// Package testutil provides a base suite for service tests.
package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/speero/partsbilling/internal/config"
	"github.com/speero/partsbilling/internal/logger"
	"github.com/speero/partsbilling/internal/repository/inmemory"
	"github.com/speero/partsbilling/internal/sentry"
)

// BaseServiceTestSuite provides common setup for service tests: fresh
// in-memory repositories, a default config and a test logger per test.
type BaseServiceTestSuite struct {
	suite.Suite
	stores   *inmemory.Repositories
	cfg      *config.Configuration
	logger   *logger.Logger
	reporter *sentry.Reporter
	ctx      context.Context
}

// SetupTest initializes fresh dependencies before each test.
func (s *BaseServiceTestSuite) SetupTest() {
	s.cfg = config.GetDefaultConfig()
	s.stores = inmemory.NewRepositories()
	s.ctx = context.Background()

	log, err := logger.NewLogger(s.cfg)
	s.Require().NoError(err)
	s.logger = log

	reporter, err := sentry.NewReporter(s.cfg, log)
	s.Require().NoError(err)
	s.reporter = reporter
}

// TearDownTest cleans up after each test.
func (s *BaseServiceTestSuite) TearDownTest() {
	s.stores = nil
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() *inmemory.Repositories {
	return s.stores
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetReporter() *sentry.Reporter {
	return s.reporter
}
