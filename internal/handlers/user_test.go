package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/sayberrygames/studio-api/internal/config"
	"github.com/sayberrygames/studio-api/internal/middleware"
	"github.com/sayberrygames/studio-api/internal/models"
	"github.com/sayberrygames/studio-api/internal/services"
	"github.com/sayberrygames/studio-api/pkg/dto"
	"github.com/sayberrygames/studio-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *services.JWTService {
	return services.NewJWTService("test-secret-key", 15*time.Minute, 24*time.Hour)
}

func newTestConfig() *config.Config {
	return &config.Config{
		BootstrapAdminEmail: "sayberrygames@gmail.com",
		FrontendURL:         "http://localhost:3000",
	}
}

func generateTestToken(t *testing.T, jwtSvc *services.JWTService, userID uuid.UUID, email string) string {
	t.Helper()
	pair, err := jwtSvc.GenerateTokenPair(userID, email)
	require.NoError(t, err)
	return pair.AccessToken
}

func TestUserHandler_GetMe_Success(t *testing.T) {
	mockUserService := new(testutil.MockUserService)
	handler := NewUserHandler(newTestConfig(), mockUserService)
	jwtSvc := newTestJWTService()

	userID := uuid.New()
	email := "test@example.com"
	user := &models.User{
		ID:    userID,
		Email: email,
		Name:  "Test User",
		Role:  "member",
	}

	mockUserService.On("GetByID", mock.Anything, userID).Return(user, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Get("/users/me", handler.GetMe)

	token := generateTestToken(t, jwtSvc, userID, email)
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.UserResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, userID, response.ID)
	assert.Equal(t, "member", response.Role)
	assert.Equal(t, "member", response.EffectiveRole)
	assert.False(t, response.IsAdmin)
	assert.True(t, response.IsTeamMember)

	mockUserService.AssertExpectations(t)
}

func TestUserHandler_GetMe_BootstrapAdmin(t *testing.T) {
	mockUserService := new(testutil.MockUserService)
	handler := NewUserHandler(newTestConfig(), mockUserService)
	jwtSvc := newTestJWTService()

	userID := uuid.New()
	email := "sayberrygames@gmail.com"
	user := &models.User{
		ID:    userID,
		Email: email,
		Name:  "Studio",
		Role:  "user",
	}

	mockUserService.On("GetByID", mock.Anything, userID).Return(user, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Get("/users/me", handler.GetMe)

	token := generateTestToken(t, jwtSvc, userID, email)
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.UserResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "user", response.Role)
	assert.Equal(t, "admin", response.EffectiveRole)
	assert.True(t, response.IsAdmin)
}

func TestUserHandler_GetMe_NotAuthenticated(t *testing.T) {
	mockUserService := new(testutil.MockUserService)
	handler := NewUserHandler(newTestConfig(), mockUserService)
	jwtSvc := newTestJWTService()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Get("/users/me", handler.GetMe)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_List_RequiresAdmin(t *testing.T) {
	mockUserService := new(testutil.MockUserService)
	handler := NewUserHandler(newTestConfig(), mockUserService)
	jwtSvc := newTestJWTService()

	userID := uuid.New()
	email := "member@example.com"
	user := &models.User{ID: userID, Email: email, Name: "Member", Role: "member"}

	mockUserService.On("GetByID", mock.Anything, userID).Return(user, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Get("/users", handler.List)

	token := generateTestToken(t, jwtSvc, userID, email)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUserHandler_UpdateRole_Success(t *testing.T) {
	mockUserService := new(testutil.MockUserService)
	handler := NewUserHandler(newTestConfig(), mockUserService)
	jwtSvc := newTestJWTService()

	adminID := uuid.New()
	adminEmail := "admin@example.com"
	admin := &models.User{ID: adminID, Email: adminEmail, Name: "Admin", Role: "admin"}

	targetID := uuid.New()
	updated := &models.User{ID: targetID, Email: "target@example.com", Name: "Target", Role: "lead"}

	mockUserService.On("GetByID", mock.Anything, adminID).Return(admin, nil)
	mockUserService.On("UpdateRole", mock.Anything, targetID, "lead").Return(updated, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Patch("/users/:id/role", handler.UpdateRole)

	body, _ := json.Marshal(dto.UpdateUserRoleRequest{Role: "lead"})
	token := generateTestToken(t, jwtSvc, adminID, adminEmail)
	req := httptest.NewRequest(http.MethodPatch, "/users/"+targetID.String()+"/role", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.UserResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "lead", response.Role)

	mockUserService.AssertExpectations(t)
}

func TestUserHandler_UpdateRole_InvalidRole(t *testing.T) {
	mockUserService := new(testutil.MockUserService)
	handler := NewUserHandler(newTestConfig(), mockUserService)
	jwtSvc := newTestJWTService()

	adminID := uuid.New()
	adminEmail := "admin@example.com"
	admin := &models.User{ID: adminID, Email: adminEmail, Name: "Admin", Role: "admin"}

	targetID := uuid.New()

	mockUserService.On("GetByID", mock.Anything, adminID).Return(admin, nil)
	mockUserService.On("UpdateRole", mock.Anything, targetID, "superuser").Return(nil, services.ErrInvalidRole)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Patch("/users/:id/role", handler.UpdateRole)

	body, _ := json.Marshal(dto.UpdateUserRoleRequest{Role: "superuser"})
	token := generateTestToken(t, jwtSvc, adminID, adminEmail)
	req := httptest.NewRequest(http.MethodPatch, "/users/"+targetID.String()+"/role", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
