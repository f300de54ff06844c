package session

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pointsclub/clubadmin/internal/config"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
)

const (
	claimOrganization = "org"
	defaultMaxAge     = 30 * 24 * time.Hour
)

// Manager signs and reads the active organization cookie. The cookie holds
// an HS256 token naming the organization and the user who selected it, so a
// cookie copied to another account is rejected.
type Manager struct {
	cfg config.SessionConfig
	now func() time.Time
}

func NewManager(cfg *config.Configuration) *Manager {
	sessionCfg := cfg.Session
	if sessionCfg.MaxAge <= 0 {
		sessionCfg.MaxAge = defaultMaxAge
	}
	return &Manager{cfg: sessionCfg, now: time.Now}
}

// Sign returns the cookie value selecting organizationID for userID
func (m *Manager) Sign(userID, organizationID string) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"sub":             userID,
		claimOrganization: organizationID,
		"iat":             now.Unix(),
		"exp":             now.Add(m.cfg.MaxAge).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to sign session").
			Mark(ierr.ErrSystem)
	}
	return token, nil
}

// Verify returns the organization id held by token if it is valid and was
// issued to userID
func (m *Manager) Verify(token, userID string) (string, error) {
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	claims := jwt.MapClaims{}
	_, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		return "", noActiveOrganization(ierr.WithError(err))
	}

	if sub, _ := claims["sub"].(string); sub != userID {
		return "", noActiveOrganization(ierr.NewError("session issued to another user"))
	}
	orgID, _ := claims[claimOrganization].(string)
	if orgID == "" {
		return "", noActiveOrganization(ierr.NewError("session has no organization"))
	}
	return orgID, nil
}

// SetActiveOrganization writes the cookie selecting organizationID
func (m *Manager) SetActiveOrganization(c *gin.Context, userID, organizationID string) error {
	token, err := m.Sign(userID, organizationID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cfg.CookieName, token, int(m.cfg.MaxAge.Seconds()), "/", m.cfg.Domain, m.cfg.Secure, true)
	return nil
}

// ActiveOrganization reads the organization selected by userID. A missing,
// expired or foreign cookie is a permission error.
func (m *Manager) ActiveOrganization(c *gin.Context, userID string) (string, error) {
	token, err := c.Cookie(m.cfg.CookieName)
	if err != nil {
		return "", noActiveOrganization(ierr.WithError(err))
	}
	if token == "" {
		return "", noActiveOrganization(ierr.NewError("empty active organization cookie"))
	}
	return m.Verify(token, userID)
}

// Clear removes the cookie
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cfg.CookieName, "", -1, "/", m.cfg.Domain, m.cfg.Secure, true)
}

func noActiveOrganization(b *ierr.ErrorBuilder) error {
	return b.WithHint("Select an organization first").
		Mark(ierr.ErrPermissionDenied)
}

// GenerateSecret returns a random hex secret suitable for session.secret
func GenerateSecret() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}
	return hex.EncodeToString(key)
}
