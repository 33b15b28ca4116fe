package handler

import (
	"net/http"
	"time"

	"kanbanase/internal/apperr"
	"kanbanase/internal/model"
	"kanbanase/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type LoginResponse struct {
	UserID  *string `json:"userId"`
	Success bool    `json:"success"`
}

func userResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// Register creates a new user account.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationErrors(c, validationMessages(err))
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			// The duplicate-email body is a plain string, not JSON.
			c.String(http.StatusConflict, apperr.MessageOf(err))
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponse(user))
}

// Login verifies credentials and reports success plus the user id. An
// unknown email gets the same 401 as a wrong password.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationErrors(c, validationMessages(err))
		return
	}

	result, err := h.service.VerifyLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			c.JSON(http.StatusUnauthorized, LoginResponse{Success: false})
			return
		}
		respondError(c, err)
		return
	}

	resp := LoginResponse{Success: result.Success}
	status := http.StatusUnauthorized
	if result.Success {
		id := result.UserID.String()
		resp.UserID = &id
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]UserResponse, len(users))
	for i := range users {
		response[i] = userResponse(&users[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse(user))
}
