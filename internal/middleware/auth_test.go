package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"photostudio_backend/internal/auth"
	"photostudio_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (r *stubUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(ctx context.Context) ([]models.User, error) { return nil, nil }

func (r *stubUserRepo) SetApproved(ctx context.Context, id string, approved bool) error {
	return nil
}

func (r *stubUserRepo) CountSuperadmins(ctx context.Context) (int64, error) { return 0, nil }

func gatedTestRouter(t *testing.T, user *models.User) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	repo := &stubUserRepo{users: map[string]*models.User{user.ID: user}}

	token, err := tokens.IssueToken(user.ID, user.Email)
	require.NoError(t, err)

	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(AuthMiddleware(tokens, repo))
	admin.Use(EnsureApproved())
	admin.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetUserID(c))
	})
	return r, token
}

func adminRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestEnsureApproved_ApprovedUserPasses(t *testing.T) {
	user := &models.User{BaseModel: models.BaseModel{ID: "user-1"}, Email: "a@b.com", Approved: true}
	r, token := gatedTestRouter(t, user)

	w := adminRequest(r, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestEnsureApproved_UnapprovedUserBlocked(t *testing.T) {
	user := &models.User{BaseModel: models.BaseModel{ID: "user-2"}, Email: "a@b.com"}
	r, token := gatedTestRouter(t, user)

	w := adminRequest(r, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "pending approval")
}

func TestEnsureApproved_SuperadminBypassesFlag(t *testing.T) {
	user := &models.User{BaseModel: models.BaseModel{ID: "user-3"}, Email: "a@b.com", IsSuperadmin: true}
	r, token := gatedTestRouter(t, user)

	w := adminRequest(r, token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEnsureApproved_RevocationAppliesImmediately(t *testing.T) {
	user := &models.User{BaseModel: models.BaseModel{ID: "user-4"}, Email: "a@b.com", Approved: true}
	r, token := gatedTestRouter(t, user)

	require.Equal(t, http.StatusOK, adminRequest(r, token).Code)

	// Same still-valid token, freshly revoked approval.
	user.Approved = false
	assert.Equal(t, http.StatusUnauthorized, adminRequest(r, token).Code)
}

func TestAuthMiddleware_RejectsBadTokens(t *testing.T) {
	user := &models.User{BaseModel: models.BaseModel{ID: "user-5"}, Email: "a@b.com", Approved: true}
	r, _ := gatedTestRouter(t, user)

	assert.Equal(t, http.StatusUnauthorized, adminRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, adminRequest(r, "not-a-token").Code)

	otherTokens := auth.NewTokenManager("other-secret", time.Hour)
	forged, err := otherTokens.IssueToken(user.ID, user.Email)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, adminRequest(r, forged).Code)
}

func TestAuthMiddleware_UnknownUser(t *testing.T) {
	user := &models.User{BaseModel: models.BaseModel{ID: "user-6"}, Email: "a@b.com", Approved: true}
	r, _ := gatedTestRouter(t, user)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	ghost, err := tokens.IssueToken("deleted-user", "ghost@b.com")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, adminRequest(r, ghost).Code)
}
