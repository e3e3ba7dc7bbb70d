package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"messenger-service/internal/models"
	"messenger-service/internal/repositories"
)

// UsersHandler serves the user directory.
type UsersHandler struct {
	userRepo repositories.UserRepository
}

// NewUsersHandler constructs a UsersHandler.
func NewUsersHandler(userRepo repositories.UserRepository) *UsersHandler {
	return &UsersHandler{userRepo: userRepo}
}

// Directory handles GET /users: substring search with ?q=, full listing
// without. The requesting user (?user_id=) is excluded from results.
func (h *UsersHandler) Directory(c *gin.Context) {
	// A missing or malformed user_id excludes nobody real (id 0 is never assigned).
	excludeID, _ := strconv.Atoi(c.Query("user_id"))
	query := strings.TrimSpace(c.Query("q"))

	var (
		users []models.UserProfile
		err   error
	)
	if query != "" {
		users, err = h.userRepo.Search(c.Request.Context(), query, excludeID)
	} else {
		users, err = h.userRepo.List(c.Request.Context(), excludeID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}
	if users == nil {
		users = []models.UserProfile{}
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Profile handles POST /users: fetch one user's full profile by id.
func (h *UsersHandler) Profile(c *gin.Context) {
	var req struct {
		UserID int `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	profile, err := h.userRepo.GetByID(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}
