package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/httpresp"
	"github.com/alanfo18/stcd/internal/middleware"
	ucUser "github.com/alanfo18/stcd/internal/usecase/user"
)

type UserHandler struct {
	users *ucUser.Users
}

func NewUserHandler(users *ucUser.Users) *UserHandler {
	return &UserHandler{users: users}
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.users.Me(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_user")
		return
	}
	httpresp.OK(c, gin.H{"user": user})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_users")
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ChangeRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.ChangeRole(c.Request.Context(), middleware.Actor(c), id, req.Role)
	if err != nil {
		httperr.FromError(c, err, "failed_to_change_role")
		return
	}
	httpresp.OK(c, user)
}
