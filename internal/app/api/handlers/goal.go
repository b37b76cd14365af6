package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upmkt/affiliates-api/internal/app/service/goal"
	"github.com/upmkt/affiliates-api/pkg/response"
)

// @Summary      Create Goal
// @Description  Creates a monthly goal. Target accepts localized input like "5.000,00". One goal per type and period.
// @Tags         Goals
// @Accept       json
// @Produce      json
// @Param        request body goal.UpsertRequest true "Goal fields"
// @Success      200  {object}  response.APIResponse[models.AffiliateGoal]
// @Router       /api/v1/goals [post]
func ApiCreateGoal(svc *goal.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req goal.UpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		g, err := svc.Create(c.Request.Context(), currentUserID(c), &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(g))
	}
}

// @Summary      Update Goal
// @Tags         Goals
// @Accept       json
// @Produce      json
// @Param        id path string true "Goal ID"
// @Param        request body goal.UpsertRequest true "Goal fields"
// @Success      200  {object}  response.APIResponse[models.AffiliateGoal]
// @Router       /api/v1/goals/{id} [put]
func ApiUpdateGoal(svc *goal.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req goal.UpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		g, err := svc.Update(c.Request.Context(), currentUserID(c), c.Param("id"), &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(g))
	}
}

// @Summary      Delete Goal
// @Tags         Goals
// @Produce      json
// @Param        id path string true "Goal ID"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/goals/{id} [delete]
func ApiDeleteGoal(svc *goal.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      List Goals
// @Description  Goals for a period (defaults to the current month) with live progress.
// @Tags         Goals
// @Produce      json
// @Param        period query string false "Period YYYY-MM"
// @Success      200  {object}  response.APIResponse[[]goal.GoalWithProgress]
// @Router       /api/v1/goals [get]
func ApiListGoals(svc *goal.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		goals, err := svc.List(c.Request.Context(), currentUserID(c), c.Query("period"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(goals))
	}
}

type GoalHistoryResponse struct {
	Items []*goal.GoalWithProgress `json:"items"`
	Total int64                    `json:"total"`
}

// @Summary      Goal History
// @Description  Past goals with their final progress, newest period first.
// @Tags         Goals
// @Produce      json
// @Param        from query int false "Offset"
// @Param        size query int false "Page size"
// @Success      200  {object}  response.APIResponse[GoalHistoryResponse]
// @Router       /api/v1/goals/history [get]
func ApiGoalHistory(svc *goal.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, size := pageParams(c)
		items, total, err := svc.History(c.Request.Context(), currentUserID(c), from, size)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(&GoalHistoryResponse{Items: items, Total: total}))
	}
}

func RegisterGoalRoutes(r gin.IRouter, svc *goal.Service) {
	r.POST("/goals", ApiCreateGoal(svc))
	r.GET("/goals", ApiListGoals(svc))
	r.GET("/goals/history", ApiGoalHistory(svc))
	r.PUT("/goals/:id", ApiUpdateGoal(svc))
	r.DELETE("/goals/:id", ApiDeleteGoal(svc))
}
