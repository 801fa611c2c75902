package controllers

import (
	"net/http"

	"github.com/merchstore/merchstore/app/services"
	"github.com/merchstore/merchstore/pkg/bind"
	"github.com/merchstore/merchstore/pkg/response"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthController serves authentication endpoints.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login handles POST /api/v1/auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.ValidationError(w, map[string]string{"body": err.Error()})
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusOK, token)
}
