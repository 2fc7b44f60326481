package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hrops/hr-admin-service/internal/api/http/handlers"
	"github.com/hrops/hr-admin-service/internal/config"
	"github.com/hrops/hr-admin-service/internal/domain"
	"github.com/hrops/hr-admin-service/internal/service"
	apperrors "github.com/hrops/hr-admin-service/pkg/util"
)

type errorEnvelope struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, body io.Reader) errorEnvelope {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

type listCapturingDepartmentRepository struct {
	listCtx context.Context
}

func (r *listCapturingDepartmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	return nil
}

func (r *listCapturingDepartmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	return nil
}

func (r *listCapturingDepartmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	return nil, pgx.ErrNoRows
}

func (r *listCapturingDepartmentRepository) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	return nil, pgx.ErrNoRows
}

func (r *listCapturingDepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	r.listCtx = ctx
	return nil, nil
}

func (r *listCapturingDepartmentRepository) SoftDelete(ctx context.Context, id string) error {
	return nil
}

type emptyUserRepository struct{}

func (emptyUserRepository) Create(ctx context.Context, user *domain.User) error { return nil }

func (emptyUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}

func (emptyUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}

func TestRequestTimeoutReachesRepository(t *testing.T) {
	repo := &listCapturingDepartmentRepository{}
	svc := service.NewDepartmentService(service.DepartmentDependencies{DepartmentRepo: repo}, nil)
	handler := handlers.NewDepartmentHandler(svc)

	app := fiber.New()
	app.Use(requestTimeoutMiddleware(5 * time.Second))
	app.Use(errorHandlingMiddleware(zap.NewNop(), nil, false))
	app.Get("/departments", handler.List)

	resp, err := app.Test(httptest.NewRequest("GET", "/departments", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, repo.listCtx)
	deadline, ok := repo.listCtx.Deadline()
	require.True(t, ok)
	assert.True(t, deadline.After(time.Now()))
}

func TestErrorHandlingMiddleware(t *testing.T) {
	newApp := func(development bool) *fiber.App {
		app := fiber.New()
		app.Use(errorHandlingMiddleware(zap.NewNop(), nil, development))
		return app
	}

	t.Run("unmatched route is not found, not internal", func(t *testing.T) {
		app := newApp(false)

		resp, err := app.Test(httptest.NewRequest("GET", "/no-such-route", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		env := decodeError(t, resp.Body)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})

	t.Run("method not allowed keeps its status", func(t *testing.T) {
		app := newApp(false)
		app.Get("/only-get", func(c *fiber.Ctx) error { return c.SendString("ok") })

		resp, err := app.Test(httptest.NewRequest("POST", "/only-get", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
		env := decodeError(t, resp.Body)
		assert.Equal(t, "METHOD_NOT_ALLOWED", env.Error.Code)
	})

	t.Run("taxonomy errors render with their status and details", func(t *testing.T) {
		app := newApp(false)
		app.Get("/conflict", func(c *fiber.Ctx) error {
			return apperrors.NewConflict("department name already exists", map[string]any{"name": "Engineering"})
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/conflict", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		env := decodeError(t, resp.Body)
		assert.Equal(t, "CONFLICT", env.Error.Code)
		assert.Equal(t, "Engineering", env.Error.Details["name"])
	})

	t.Run("panics become sanitized internal errors", func(t *testing.T) {
		app := newApp(false)
		app.Get("/boom", func(c *fiber.Ctx) error {
			panic("boom")
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		env := decodeError(t, resp.Body)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	})
}

func TestLoginValidationDetailsPerField(t *testing.T) {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "0123456789abcdef0123456789abcdef",
			JWTIssuer:             "hr-admin-api",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            10,
		},
	}
	handler := handlers.NewAuthHandler(service.NewAuthService(cfg, service.AuthDependencies{UserRepo: emptyUserRepository{}}))

	app := fiber.New()
	app.Use(errorHandlingMiddleware(zap.NewNop(), nil, false))
	app.Post("/login", handler.Login)

	t.Run("missing password reports only password", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"admin@example.com"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		env := decodeError(t, resp.Body)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "password")
		assert.NotContains(t, env.Error.Details, "email")
	})

	t.Run("missing email reports only email", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"password":"password123"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		env := decodeError(t, resp.Body)
		assert.Contains(t, env.Error.Details, "email")
		assert.NotContains(t, env.Error.Details, "password")
	})

	t.Run("both missing reports both", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/login", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		env := decodeError(t, resp.Body)
		assert.Contains(t, env.Error.Details, "email")
		assert.Contains(t, env.Error.Details, "password")
	})
}
