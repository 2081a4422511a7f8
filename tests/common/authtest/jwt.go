//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"booking-engine/internal/domain/actor"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role actor.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// NewActor returns a fresh identity with its bearer token.
func (h *JWTHelper) NewActor(t *testing.T, role actor.Role) (actor.Actor, string) {
	t.Helper()
	a := actor.Actor{ID: uuid.New(), Role: role}
	return a, h.GenerateToken(t, a.ID, role)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role actor.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
