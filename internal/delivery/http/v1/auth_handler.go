package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subahan00/job-portal/internal/delivery/http/response"
	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/pkg/apperror"
	"github.com/subahan00/job-portal/pkg/audit"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/signup", handler.Signup)
		auth.POST("/login", handler.Login)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
// @Summary      User Registration
// @Description  Register as an applicant or recruiter; the role-specific profile is created alongside the account.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      domain.SignupRequest  true  "Registration details"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req domain.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Signup(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	audit.Record(audit.Event{
		Event:     audit.EventSignup,
		Subject:   req.Email,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: c.GetString("RequestID"),
		Details:   map[string]interface{}{"role": req.Role},
	})

	response.Success(c, http.StatusCreated, "Signup successful", result)
}

// Login godoc
// @Summary      User Login
// @Description  Login with email and password; returns a bearer token and the account role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		audit.Record(audit.Event{
			Event:     audit.EventLoginFailed,
			Subject:   req.Email,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			RequestID: c.GetString("RequestID"),
		})
		c.Error(err)
		return
	}

	audit.Record(audit.Event{
		Event:     audit.EventLoginSuccess,
		Subject:   req.Email,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: c.GetString("RequestID"),
	})

	response.Success(c, http.StatusOK, "Login successful", result)
}
