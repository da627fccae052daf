package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/rafflemart/internal/catalog"
	"github.com/GlebRadaev/rafflemart/internal/config"
	"github.com/GlebRadaev/rafflemart/internal/ratelimit"
	"github.com/GlebRadaev/rafflemart/internal/repo"
	"github.com/GlebRadaev/rafflemart/pkg/clock"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
	clk *clock.FixedClock
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
	s.clk = clock.NewFixedClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_NoErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestNewRateLimitStore_Memory() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := newRateLimitStore(ctx, &config.Config{RateLimitBackend: config.RateLimitMemory}, s.clk)
	s.Require().NoError(err)
	s.IsType(&ratelimit.MemoryStore{}, store)
}

func (s *ApplicationSuite) TestNewRateLimitStore_Redis() {
	mr := miniredis.RunT(s.T())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := newRateLimitStore(ctx, &config.Config{
		RateLimitBackend: config.RateLimitRedis,
		RedisURL:         "redis://" + mr.Addr() + "/0",
	}, s.clk)
	s.Require().NoError(err)
	s.IsType(&ratelimit.RedisStore{}, store)

	res, err := store.Allow(ctx, "10.0.0.1", 5, time.Minute)
	s.Require().NoError(err)
	s.True(res.Allowed)
	s.Equal(4, res.Remaining)
}

func (s *ApplicationSuite) TestNewRateLimitStore_RedisErrors() {
	ctx := context.Background()

	_, err := newRateLimitStore(ctx, &config.Config{
		RateLimitBackend: config.RateLimitRedis,
		RedisURL:         "not a url",
	}, s.clk)
	s.ErrorContains(err, "parse redis url")

	mr := miniredis.RunT(s.T())
	addr := mr.Addr()
	mr.Close()

	_, err = newRateLimitStore(ctx, &config.Config{
		RateLimitBackend: config.RateLimitRedis,
		RedisURL:         "redis://" + addr + "/0",
	}, s.clk)
	s.ErrorContains(err, "ping redis")
}

func (s *ApplicationSuite) TestNewCatalog() {
	repos := &repo.Repositories{}

	s.IsType(&catalog.FileSource{}, newCatalog(&config.Config{CatalogFile: "catalog.yaml"}, repos))
	s.IsType(&catalog.DBSource{}, newCatalog(&config.Config{}, repos))
}

func (s *ApplicationSuite) TestNewPaymentClient() {
	client := newPaymentClient(&config.Config{
		PaymentAddress:    "http://localhost:8081",
		PaymentCurrency:   "usd",
		PaymentSessionTTL: 30 * time.Minute,
	}, s.clk)
	s.NotNil(client)
}

func (s *ApplicationSuite) TestStartDrawer_Disabled() {
	s.app.cfg = &config.Config{}
	s.app.startDrawer(context.Background())
	s.Nil(s.app.drawer)
}
