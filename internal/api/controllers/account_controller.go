package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dailydilli/internal/models/request_models"
	"dailydilli/internal/services"
	"dailydilli/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

func (a *AccountController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid sign up payload: "+err.Error())
		return
	}

	user, err := a.accountService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, user, "User registered successfully")
}

func (a *AccountController) SignIn(c *gin.Context) {
	var req request_models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid sign in payload: "+err.Error())
		return
	}

	session, err := a.accountService.SignIn(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Signed in successfully")
}

func (a *AccountController) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := a.accountService.GetUser(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

func (a *AccountController) ListUsers(c *gin.Context) {
	users, err := a.accountService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

func (a *AccountController) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	caller, ok := callerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	var req request_models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid update payload: "+err.Error())
		return
	}

	user, err := a.accountService.UpdateUser(c.Request.Context(), caller, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User updated successfully")
}

func (a *AccountController) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	caller, ok := callerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	if err := a.accountService.DeleteUser(c.Request.Context(), caller, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}
