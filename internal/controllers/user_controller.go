package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"userpanel/internal/flash"
	"userpanel/internal/logger"
	"userpanel/internal/models"
	"userpanel/internal/repository"
	"userpanel/internal/service"
)

type UserController struct {
	userService service.UserService
	flash       *flash.Store
	logger      *logger.Logger
}

func NewUserController(userService service.UserService, flashStore *flash.Store, log *logger.Logger) *UserController {
	return &UserController{
		userService: userService,
		flash:       flashStore,
		logger:      log,
	}
}

// Index handles GET / and GET /:id - renders the user listing and, when an id
// is present, prefills the form with that user for editing
func (uc *UserController) Index(c *gin.Context) {
	var editUser any
	if idParam := c.Param("id"); idParam != "" {
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			uc.renderError(c, http.StatusNotFound, "User not found")
			return
		}

		user, err := uc.userService.GetUser(id)
		if errors.Is(err, repository.ErrUserNotFound) {
			uc.renderError(c, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			uc.logger.Error("failed to load user for editing", "id", id, "error", err)
			uc.renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
			return
		}
		editUser = user
	}

	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}

	userPage, err := uc.userService.ListUsers(page)
	if err != nil {
		uc.logger.Error("failed to list users", "page", page, "error", err)
		uc.renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Users":     userPage.Users,
		"Meta":      userPage.Meta,
		"EditUser":  editUser,
		"Flash":     uc.flash.Consume(c),
		"FormError": "",
		"FormName":  "",
		"FormEmail": "",
	})
}

// Upsert handles POST /users and POST /users/:id - creates or updates a user
// keyed by email. Any id in the path is ignored.
func (uc *UserController) Upsert(c *gin.Context) {
	var req models.UpsertUserRequest
	if err := c.ShouldBind(&req); err != nil {
		userPage, listErr := uc.userService.ListUsers(1)
		if listErr != nil {
			uc.logger.Error("failed to list users", "error", listErr)
			uc.renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
			return
		}

		c.HTML(http.StatusUnprocessableEntity, "index.html", gin.H{
			"Users":     userPage.Users,
			"Meta":      userPage.Meta,
			"EditUser":  nil,
			"Flash":     "",
			"FormError": bindingErrorMessage(err),
			"FormName":  req.Name,
			"FormEmail": req.Email,
		})
		return
	}

	if _, err := uc.userService.UpsertUser(&req); err != nil {
		uc.logger.Error("failed to upsert user", "email", req.Email, "error", err)
		uc.renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	uc.flash.Add(c, "User inserted or updated successfully!")
	c.Redirect(http.StatusSeeOther, "/")
}

// Delete handles GET /user/delete/:id - removes a user by id
func (uc *UserController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		uc.renderError(c, http.StatusNotFound, "User not found")
		return
	}

	err = uc.userService.DeleteUser(id)
	if errors.Is(err, repository.ErrUserNotFound) {
		uc.renderError(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		uc.logger.Error("failed to delete user", "id", id, "error", err)
		uc.renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	uc.flash.Add(c, "User deleted successfully!")
	c.Redirect(http.StatusSeeOther, "/")
}

func (uc *UserController) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Status":     status,
		"StatusText": http.StatusText(status),
		"Message":    message,
	})
}

// bindingErrorMessage turns a form binding error into a message fit for
// inline display on the form
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Name":
				return "Name is required."
			case "Email":
				if fe.Tag() == "email" {
					return "Email must be a valid email address."
				}
				return "Email is required."
			}
		}
	}
	return "Invalid form submission."
}
