package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subahan00/job-portal/internal/delivery/http/middleware"
	"github.com/subahan00/job-portal/internal/delivery/http/response"
	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/pkg/apperror"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	protected.GET("/user", handler.GetOwn)
	protected.PUT("/user", handler.UpdateOwn)
	protected.GET("/user/:id", handler.GetByID)
}

// GetOwn godoc
// @Summary      Own profile
// @Description  Returns the caller's role-specific profile.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/user [get]
func (h *ProfileHandler) GetOwn(c *gin.Context) {
	view, err := h.profileUC.GetOwn(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", view)
}

// GetByID godoc
// @Summary      Profile by user id
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/user/{id} [get]
func (h *ProfileHandler) GetByID(c *gin.Context) {
	view, err := h.profileUC.GetByUserID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", view)
}

// UpdateOwn godoc
// @Summary      Update own profile
// @Description  Patch semantics; absent fields are left untouched. The body shape depends on the caller's role.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/user [put]
func (h *ProfileHandler) UpdateOwn(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	switch principal.Role {
	case domain.RoleApplicant:
		var patch domain.ApplicantProfilePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
		if err := h.profileUC.UpdateApplicant(c.Request.Context(), principal.UserID, &patch); err != nil {
			c.Error(err)
			return
		}
	case domain.RoleRecruiter:
		var patch domain.RecruiterProfilePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
		if err := h.profileUC.UpdateRecruiter(c.Request.Context(), principal.UserID, &patch); err != nil {
			c.Error(err)
			return
		}
	default:
		c.Error(apperror.Forbidden("Unknown role"))
		return
	}

	response.Success(c, http.StatusOK, "User information updated successfully", nil)
}
