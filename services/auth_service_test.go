package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/models"
)

func setupAuthTestService(t *testing.T) (InterfaceAuthService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ServiceAccount{}))
	return NewAuthService(&config.Config{JWTSecretKey: "test-secret"}, db), db
}

func TestAuthService(t *testing.T) {
	service, db := setupAuthTestService(t)

	t.Run("Token Roundtrip", func(t *testing.T) {
		token, err := service.GenerateToken("internal-backend")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ExtractClaims(token)
		require.NoError(t, err)
		assert.Equal(t, "internal-backend", claims.UID)
		assert.Equal(t, RoleInternalService, claims.Role)
	})

	t.Run("Tampered Token Is Rejected", func(t *testing.T) {
		token, err := service.GenerateToken("internal-backend")
		require.NoError(t, err)

		_, err = service.ExtractClaims(token + "x")
		assert.Error(t, err)

		_, err = service.ExtractClaims("not-a-token")
		assert.Error(t, err)
	})

	t.Run("Token From Another Secret Is Rejected", func(t *testing.T) {
		other := NewAuthService(&config.Config{JWTSecretKey: "other-secret"}, db)
		token, err := other.GenerateToken("internal-backend")
		require.NoError(t, err)

		_, err = service.ExtractClaims(token)
		assert.Error(t, err)
	})

	t.Run("Ensure And Verify API Key", func(t *testing.T) {
		require.NoError(t, service.EnsureServiceAccount("internal-backend", "s3cret-key"))

		// seeding again must not overwrite the stored hash
		require.NoError(t, service.EnsureServiceAccount("internal-backend", "different-key"))

		assert.NoError(t, service.VerifyAPIKey("internal-backend", "s3cret-key"))
		assert.ErrorIs(t, service.VerifyAPIKey("internal-backend", "different-key"), ErrAPIKeyMismatch)
	})

	t.Run("Unknown Account Is Rejected", func(t *testing.T) {
		err := service.VerifyAPIKey("ghost", "whatever")
		assert.ErrorIs(t, err, ErrAPIKeyMismatch)
	})

	t.Run("Empty Seed Arguments Are Ignored", func(t *testing.T) {
		require.NoError(t, service.EnsureServiceAccount("", "key"))
		require.NoError(t, service.EnsureServiceAccount("uid-only", ""))

		var count int64
		db.Model(&models.ServiceAccount{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})
}
