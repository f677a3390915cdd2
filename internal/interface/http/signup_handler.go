package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-signup/internal/application"
	"github.com/oksasatya/go-ddd-signup/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-signup/internal/domain/repository"
	"github.com/oksasatya/go-ddd-signup/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-signup/pkg/helpers"
	"github.com/oksasatya/go-ddd-signup/pkg/response"
	"github.com/oksasatya/go-ddd-signup/pkg/validation"
)

// SignupService is the application surface the signup handlers need.
type SignupService interface {
	Signup(ctx context.Context, req valueobject.UserSignupRequest) (entity.UserID, error)
	Verify(ctx context.Context, code string) (valueobject.Username, bool, error)
}

type SignupHandler struct {
	Svc    SignupService
	Logger *logrus.Logger
}

func NewSignupHandler(svc SignupService, logger *logrus.Logger) *SignupHandler {
	return &SignupHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Username string `json:"username" binding:"field"`
	Password string `json:"password" binding:"field"`
	Email    string `json:"email" binding:"field"`
}

type verifyRequest struct {
	Code string `json:"code" binding:"field"`
}

// Signup POST /api/signup
func (h *SignupHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	signup, err := valueobject.NewUserSignupRequest(req.Username, req.Password, req.Email)
	if err != nil {
		var verr *valueobject.ValidationError
		if errors.As(err, &verr) {
			response.Error[any](c, http.StatusBadRequest, verr.Error(), map[string]string{verr.Field: verr.Reason})
			return
		}
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil)
		return
	}

	id, err := h.Svc.Signup(c.Request.Context(), signup)
	if err != nil {
		status, msg := signupErrorResponse(err)
		if status == http.StatusInternalServerError && h.Logger != nil {
			helpers.LogError(h.Logger, "signup request failed", err, logrus.Fields{
				"request_id": c.GetString("request_id"),
				"ip":         clientIP(c),
				"step":       application.FailedStep(err),
			})
		}
		response.Error[any](c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user_id": id}, "signup successful, check your email to verify your account", nil)
}

// signupErrorResponse picks the user-facing status and message for a failed signup.
func signupErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, repo.ErrEmailAlreadyExists):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, repo.ErrUsernameAlreadyExists):
		return http.StatusConflict, "username already taken"
	default:
		return http.StatusInternalServerError, "signup failed, please try again later"
	}
}

// VerifyQuery GET /api/verify?code=...
func (h *SignupHandler) VerifyQuery(c *gin.Context) {
	h.verify(c, c.Query("code"))
}

// VerifyConfirm POST /api/verify {code}
func (h *SignupHandler) VerifyConfirm(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	h.verify(c, req.Code)
}

func (h *SignupHandler) verify(c *gin.Context, code string) {
	username, found, err := h.Svc.Verify(c.Request.Context(), code)
	if err != nil {
		if h.Logger != nil {
			helpers.LogError(h.Logger, "verify request failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		}
		response.Error[any](c, http.StatusInternalServerError, "verification failed, please try again later", nil)
		return
	}
	if !found {
		response.Error[any](c, http.StatusNotFound, "verification code not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"username": username.String(), "verified": true}, "email verified", nil)
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}
