package controllers

import (
	"net/http"

	"menuapi-backend/services"
	"menuapi-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Name, email, and password are required.")
		return
	}

	user, err := ac.Service.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		if services.Reason(err) == services.ReasonConflict {
			utils.RespondWithError(c, http.StatusConflict, "Email already in use.")
			return
		}
		respondWithServiceError(c, err, msgInternalFailure)
		return
	}

	// Password is never serialized
	c.JSON(http.StatusCreated, user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	user, token, err := ac.Service.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondWithServiceError(c, err, msgInvalidCreds)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}
