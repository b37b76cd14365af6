package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upmkt/affiliates-api/internal/app/service/profile"
	"github.com/upmkt/affiliates-api/pkg/response"
)

// @Summary      Get Own Profile
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  response.APIResponse[models.Profile]
// @Router       /api/v1/me [get]
func ApiGetProfile(svc *profile.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), currentUserID(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

// @Summary      Update Own Profile
// @Description  Updates contact, PIX and social fields. Email and role are immutable here.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        request body profile.UpdateRequest true "Profile fields"
// @Success      200  {object}  response.APIResponse[models.Profile]
// @Router       /api/v1/me [put]
func ApiUpdateProfile(svc *profile.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req profile.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		p, err := svc.Update(c.Request.Context(), currentUserID(c), &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(p))
	}
}

// @Summary      Upload Avatar
// @Description  Accepts a multipart image and stores it, returning the public URL.
// @Tags         Profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Avatar image"
// @Success      200  {object}  response.APIResponse[string]
// @Router       /api/v1/me/avatar [post]
func ApiUploadAvatar(svc *profile.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "file is required"))
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		defer f.Close()

		url, err := svc.SetAvatar(c.Request.Context(), currentUserID(c), fh.Filename, f)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(url))
	}
}

func RegisterProfileRoutes(r gin.IRouter, svc *profile.Service) {
	r.GET("/me", ApiGetProfile(svc))
	r.PUT("/me", ApiUpdateProfile(svc))
	r.POST("/me/avatar", ApiUploadAvatar(svc))
}
