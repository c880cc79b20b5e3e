package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, expiresIn time.Duration, roles ...string) string {
	t.Helper()
	claims := domain.CatalogClaims{
		UserID: "curator-1",
		Email:  "curator@example.com",
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin",
		VerifyToken(testSecret),
		AuthorizeRole(domain.RoleAdmin),
		func(c *fiber.Ctx) error {
			return c.SendString(c.Locals(UserIDKey).(string))
		},
	)
	return app
}

func TestVerifyTokenAndAuthorizeRole(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing token", "", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", time.Hour, domain.RoleAdmin), fiber.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, testSecret, -time.Hour, domain.RoleAdmin), fiber.StatusUnauthorized},
		{"curator only", "Bearer " + signToken(t, testSecret, time.Hour, domain.RoleCurator), fiber.StatusForbidden},
		{"admin", "Bearer " + signToken(t, testSecret, time.Hour, domain.RoleCurator, domain.RoleAdmin), fiber.StatusOK},
	}

	app := newProtectedApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestVerifyToken_RejectsNonHMAC(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, domain.CatalogClaims{Roles: []string{domain.RoleAdmin}})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := newProtectedApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthorizeRole_WithoutToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", AuthorizeRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
