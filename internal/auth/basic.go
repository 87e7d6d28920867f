package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/campuskit/helpdesk-service/internal/config"
	"github.com/campuskit/helpdesk-service/pkg/util"
)

// BasicAuth enforces HTTP basic auth on the admin surface. The configured
// password may be a bcrypt hash (preferred) or a plaintext value for
// development setups.
type BasicAuth struct {
	username string
	password string
}

// NewBasicAuth constructs middleware from admin configuration.
func NewBasicAuth(cfg config.AdminConfig) *BasicAuth {
	return &BasicAuth{username: cfg.Username, password: cfg.Password}
}

// Handle validates the Authorization header for protected routes.
func (b *BasicAuth) Handle(c *fiber.Ctx) error {
	user, pass, ok := parseBasicAuth(c.Get(fiber.HeaderAuthorization))
	if !ok || !b.credentialsMatch(user, pass) {
		c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="admin"`)
		return util.NewUnauthorized("admin credentials required")
	}
	return c.Next()
}

func (b *BasicAuth) credentialsMatch(user, pass string) bool {
	if b.password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(b.username)) == 1
	if !userOK {
		return false
	}
	if strings.HasPrefix(b.password, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(b.password), []byte(pass)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(pass), []byte(b.password)) == 1
}

func parseBasicAuth(header string) (user, pass string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}
	user, pass, ok = strings.Cut(string(decoded), ":")
	return user, pass, ok
}
