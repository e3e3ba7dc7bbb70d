package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"messenger-service/internal/mocks"
	"messenger-service/internal/models"
	"messenger-service/internal/repositories"
)

func setupUsersRouter(handler *UsersHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/users", handler.Directory)
	r.POST("/users", handler.Profile)
	return r
}

func TestDirectorySearch(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	router := setupUsersRouter(NewUsersHandler(userRepo))

	userRepo.On("Search", mock.Anything, "bo", 1).Return([]models.UserProfile{
		{ID: 2, Username: "bob", DisplayName: "Bob", Online: true},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/users?q=bo&user_id=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Users []models.UserProfile `json:"users"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "bob", resp.Users[0].Username)
	assert.True(t, resp.Users[0].Online)
	userRepo.AssertExpectations(t)
}

func TestDirectoryListAll(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	router := setupUsersRouter(NewUsersHandler(userRepo))

	userRepo.On("List", mock.Anything, 0).Return([]models.UserProfile{
		{ID: 2, Username: "bob", DisplayName: "Bob"},
		{ID: 3, Username: "carol", DisplayName: "Carol"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	userRepo.AssertExpectations(t)
}

func TestDirectoryEmptyResult(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	router := setupUsersRouter(NewUsersHandler(userRepo))

	userRepo.On("Search", mock.Anything, "zzz", 1).Return(([]models.UserProfile)(nil), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/users?q=zzz&user_id=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"users":[]`)
	userRepo.AssertExpectations(t)
}

func TestDirectoryRepoError(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	router := setupUsersRouter(NewUsersHandler(userRepo))

	userRepo.On("List", mock.Anything, 0).Return(([]models.UserProfile)(nil), assert.AnError).Once()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	userRepo.AssertExpectations(t)
}

func TestProfileSuccess(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	router := setupUsersRouter(NewUsersHandler(userRepo))

	lastSeen := time.Now().Add(-time.Minute)
	userRepo.On("GetByID", mock.Anything, 2).Return(models.UserProfile{
		ID: 2, Username: "bob", DisplayName: "Bob", Online: true, LastSeen: &lastSeen,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"user_id":2}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "last_seen")
	userRepo.AssertExpectations(t)
}

func TestProfileNotFound(t *testing.T) {
	userRepo := new(mocks.UserRepositoryMock)
	router := setupUsersRouter(NewUsersHandler(userRepo))

	userRepo.On("GetByID", mock.Anything, 99).Return(models.UserProfile{}, repositories.ErrUserNotFound).Once()

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"user_id":99}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	userRepo.AssertExpectations(t)
}

func TestProfileMissingID(t *testing.T) {
	router := setupUsersRouter(NewUsersHandler(new(mocks.UserRepositoryMock)))

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
