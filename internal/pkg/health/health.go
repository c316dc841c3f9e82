package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wheelshare/wheelshare/internal/pkg/database"
	natspkg "github.com/wheelshare/wheelshare/internal/pkg/nats"
)

// Checker verifies the health of a single dependency
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

// Check calls the wrapped function
func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// Status is the serialized health report for one dependency
type Status struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// Report is the overall health response
type Report struct {
	Service    string            `json:"service"`
	Version    string            `json:"version"`
	Healthy    bool              `json:"healthy"`
	Components map[string]Status `json:"components"`
	ServerTime time.Time         `json:"server_time"`
}

// Service aggregates dependency checkers
type Service struct {
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Check runs all registered checkers with a shared timeout
func (s *Service) Check(ctx context.Context) (bool, map[string]Status) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	healthy := true
	components := make(map[string]Status, len(s.checkers))
	for name, checker := range s.checkers {
		if err := checker.Check(ctx); err != nil {
			healthy = false
			components[name] = Status{Healthy: false, Error: err.Error()}
			continue
		}
		components[name] = Status{Healthy: true}
	}

	return healthy, components
}

// NewPostgresChecker verifies the PostgreSQL connection
func NewPostgresChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewRedisChecker verifies the Redis connection
func NewRedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewNATSChecker verifies the NATS connection
func NewNATSChecker(client *natspkg.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return context.DeadlineExceeded
		}
		return nil
	})
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	e.GET("/health", func(c echo.Context) error {
		healthy, components := svc.Check(c.Request().Context())

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}

		return c.JSON(status, Report{
			Service:    serviceName,
			Version:    version,
			Healthy:    healthy,
			Components: components,
			ServerTime: time.Now(),
		})
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
