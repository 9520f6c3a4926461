package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/users"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for admin console account endpoints
type UserHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type userHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService) UserHandler {
	return &userHandler{userService: userService}
}

// List lists accounts, optionally filtered by role
func (handler *userHandler) List(ctx *gin.Context) {
	query := users.NewUserQuery()
	query.Params = pageParams(ctx)
	query.Role = ctx.Query("role")

	list, total, err := handler.userService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// GetByID returns an account by id
func (handler *userHandler) GetByID(ctx *gin.Context) {
	user, err := handler.userService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, user)
}

// Create creates an account
func (handler *userHandler) Create(ctx *gin.Context) {
	var input users.NewUser
	if !bindJSON(ctx, &input) {
		return
	}
	user, err := handler.userService.Create(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, user)
}

// Update applies a partial update to an account. Admins cannot demote or disable themselves.
func (handler *userHandler) Update(ctx *gin.Context) {
	var update users.UserUpdate
	if !bindJSON(ctx, &update) {
		return
	}

	id := ctx.Param("id")
	if self := currentUser(ctx); self != nil && self.ID == id {
		if (update.Role != nil && *update.Role != self.Role) || (update.IsActive != nil && !*update.IsActive) {
			respondError(ctx, apperr.Validation("you cannot change your own role or disable your own account"))
			return
		}
	}

	user, err := handler.userService.Update(ctx, id, &update)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, user)
}

// DeleteByID deletes an account other than the caller's own
func (handler *userHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if self := currentUser(ctx); self != nil && self.ID == id {
		respondError(ctx, apperr.Validation("you cannot delete your own account"))
		return
	}
	if err := handler.userService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
