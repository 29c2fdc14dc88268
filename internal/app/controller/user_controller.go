package controller

import (
	"errors"
	"net/http"

	"github.com/datanetra/msme-registry/internal/app/model"
	"github.com/datanetra/msme-registry/internal/app/service"
	apperrors "github.com/datanetra/msme-registry/internal/errors"
	"github.com/datanetra/msme-registry/internal/middleware"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

type AddUserRequest struct {
	FullName string `form:"full_name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Mobile   string `form:"mobile" binding:"required"`
	Role     string `form:"role" binding:"required"`
}

// ShowForm renders the user registration form.
// GET /add_user_form
func (ctrl *UserController) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "user_form.html", gin.H{
		"Roles": model.Roles(),
	})
}

// Add handles user registration.
// POST /add_user
func (ctrl *UserController) Add(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddUserRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Warn("Invalid add user request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "full_name, email, mobile and role are required")
		return
	}

	user, err := ctrl.userService.Register(req.FullName, req.Email, req.Mobile, model.UserRole(req.Role))
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			apperrors.Conflict(c, apperrors.UserEmailExists, "This email is already registered")
			return
		}
		log.Error("Failed to add user", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.ParseAndRespond(c, err, "add user")
		return
	}

	log.Info("User added", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})

	c.HTML(http.StatusCreated, "confirm.html", gin.H{
		"Message": "User Added",
	})
}

// List renders every user as an HTML table, newest first.
// GET /view_users
func (ctrl *UserController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	users, err := ctrl.userService.List()
	if err != nil {
		log.Error("Failed to list users", err)
		apperrors.ParseAndRespond(c, err, "list users")
		return
	}

	c.HTML(http.StatusOK, "users.html", gin.H{
		"Users": users,
	})
}
