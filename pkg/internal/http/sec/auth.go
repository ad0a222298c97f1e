package sec

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/plumehq/plume/pkg/internal/models"
	"github.com/plumehq/plume/pkg/internal/services"
	"github.com/spf13/viper"
)

const CookieSession = "session"

type Claims struct {
	AccountID uint `json:"account_id"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(viper.GetString("security.jwt_secret"))
}

// GenerateToken mints a session token for an account. The authentication
// subsystem owns the login flow; this exists for it and for the test suites.
func GenerateToken(account models.Account) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AccountID: account.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
			Subject:   "session",
		},
	})

	return token.SignedString(jwtSecret())
}

func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return jwtSecret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return token.Claims.(*Claims), nil
}

// ContextLoader resolves the session token, if any, into an Account stored
// in the request locals. It never rejects: anonymous requests just pass
// through without a user.
func ContextLoader(c *fiber.Ctx) error {
	tokenStr := c.Cookies(CookieSession)
	if authHeader := c.Get(fiber.HeaderAuthorization); len(authHeader) > 0 {
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
			tokenStr = parts[1]
		}
	}
	if len(tokenStr) == 0 {
		return c.Next()
	}

	claims, err := ParseToken(tokenStr)
	if err != nil {
		return c.Next()
	}

	account, err := services.GetAccountWithID(claims.AccountID)
	if err != nil {
		return c.Next()
	}

	c.Locals("user", account)
	return c.Next()
}

func UserFromContext(c *fiber.Ctx) (models.Account, bool) {
	user, ok := c.Locals("user").(models.Account)
	return user, ok
}

// RedirectToLogin sends an unauthenticated request to the login page with a
// next parameter pointing back at the original path.
func RedirectToLogin(c *fiber.Ctx) error {
	return c.Redirect(fmt.Sprintf("/auth/login/?next=%s", c.Path()), fiber.StatusFound)
}

func EnsureAdmin(c *fiber.Ctx) error {
	user, ok := UserFromContext(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	if user.Type != models.AccountTypeAdmin {
		return fiber.NewError(fiber.StatusForbidden, "administrator access required")
	}
	return nil
}
