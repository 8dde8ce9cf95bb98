package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"couponscan/internal/models"
	"couponscan/internal/repositories/interfaces"
	"couponscan/internal/utils"
	"couponscan/internal/validators"
	"couponscan/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	users    interfaces.UserRepository
	secret   string
	tokenTTL time.Duration
	logger   *logger.Logger
}

func NewAuthHandler(users interfaces.UserRepository, secret string, tokenTTL time.Duration, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Login accepts either email or userName with a password
func (h *AuthHandler) Login(c *gin.Context) {
	var request models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request")
		return
	}
	if request.Password == "" || (request.Email == "" && request.UserName == "") {
		utils.BadRequestResponse(c, "Username and password are required")
		return
	}

	ctx := c.Request.Context()
	var (
		user *models.User
		err  error
	)
	if request.Email != "" {
		user, err = h.users.GetByEmail(ctx, request.Email)
	} else {
		user, err = h.users.GetByUserName(ctx, request.UserName)
	}
	if errors.Is(err, interfaces.ErrUserNotFound) {
		utils.NotFoundResponse(c, "User not found")
		return
	}
	if err != nil {
		h.logger.WithContext(ctx).WithError(err).Error("Failed to look up user")
		utils.InternalServerErrorResponse(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		h.logger.WithContext(ctx).LogSecurityEvent("bad_password", "low", map[string]interface{}{"user_id": user.ID})
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, _, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), string(user.Role), user.Email, h.secret, time.Now(), h.tokenTTL)
	if err != nil {
		h.logger.WithContext(ctx).WithError(err).Error("Failed to sign token")
		utils.InternalServerErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
		Status: string(user.Status),
		Token:  token,
	})
}

// Register creates a customer or business account
func (h *AuthHandler) Register(c *gin.Context) {
	var request models.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request")
		return
	}

	if errs := validators.ValidateRegistration(&request); len(errs) > 0 {
		utils.BadRequestResponse(c, errs.First())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	user := &models.User{
		Name:         request.Name,
		Email:        request.Email,
		PhoneNo:      request.PhoneNo,
		PasswordHash: string(hash),
		Role:         request.Role,
		Status:       request.Status,
	}

	ctx := c.Request.Context()
	if err := h.users.Create(ctx, user); err != nil {
		if errors.Is(err, interfaces.ErrDuplicateUser) {
			utils.ErrorResponse(c, http.StatusConflict, "User already exists")
			return
		}
		h.logger.WithContext(ctx).WithError(err).Error("Failed to create user")
		utils.InternalServerErrorResponse(c)
		return
	}

	h.logger.WithContext(ctx).LogSessionEvent(user.Email, "registered", map[string]interface{}{"user_id": user.ID})
	utils.MessageResponse(c, http.StatusOK, "User registered successfully")
}
