package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upmkt/affiliates-api/internal/app/service/auth"
	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/pkg/response"
)

type AuthResponse struct {
	Token   string          `json:"token"`
	Profile *models.Profile `json:"profile"`
}

// @Summary      Sign Up
// @Description  Registers a new affiliate profile and returns a session token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body auth.SignupRequest true "Signup request"
// @Success      200  {object}  response.APIResponse[AuthResponse]
// @Router       /auth/signup [post]
func ApiSignup(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeValidation, "name, email and a password of at least 8 characters are required"))
			return
		}
		profile, token, err := svc.Signup(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(&AuthResponse{Token: token, Profile: profile}))
	}
}

// @Summary      Login
// @Description  Authenticates by email and password and returns a session token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[AuthResponse]
// @Router       /auth/login [post]
func ApiLogin(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		profile, token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(&AuthResponse{Token: token, Profile: profile}))
	}
}

func RegisterAuthRoutes(r gin.IRouter, svc *auth.Service) {
	r.POST("/auth/signup", ApiSignup(svc))
	r.POST("/auth/login", ApiLogin(svc))
}
