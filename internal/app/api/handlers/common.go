package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/upmkt/affiliates-api/internal/app/service/auth"
	"github.com/upmkt/affiliates-api/internal/app/service/goal"
	"github.com/upmkt/affiliates-api/internal/app/service/profile"
	"github.com/upmkt/affiliates-api/internal/app/service/stripeevent"
	"github.com/upmkt/affiliates-api/internal/app/service/ticket"
	"github.com/upmkt/affiliates-api/internal/app/service/withdrawal"
	"github.com/upmkt/affiliates-api/pkg/response"
	"github.com/upmkt/affiliates-api/pkg/types"
)

// duplicateGoalMsg is the fixed user-facing text the portal shows verbatim.
const duplicateGoalMsg = "Já existe uma meta deste tipo para este período"

// fail translates service sentinel errors into envelope codes. Unknown
// errors map to the generic 50000 with the error string as data, the same
// contract every endpoint follows.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, goal.ErrDuplicateGoal):
		c.JSON(http.StatusOK, response.ErrorMsg(response.APIResponseCodeConflict, duplicateGoalMsg))
	case errors.Is(err, goal.ErrInvalidTarget),
		errors.Is(err, withdrawal.ErrEmptyReason),
		errors.Is(err, withdrawal.ErrNoPaymentProof),
		errors.Is(err, withdrawal.ErrNothingToWithdraw),
		errors.Is(err, ticket.ErrEmptyMessage),
		errors.Is(err, ticket.ErrInvalidRating),
		errors.Is(err, ticket.ErrInvalidStatus):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeValidation, err.Error()))
	case errors.Is(err, withdrawal.ErrInvalidTransition),
		errors.Is(err, ticket.ErrTicketClosed),
		errors.Is(err, ticket.ErrNotRatable),
		errors.Is(err, ticket.ErrAlreadyRated),
		errors.Is(err, auth.ErrEmailTaken):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeConflict, err.Error()))
	case errors.Is(err, withdrawal.ErrNotFound),
		errors.Is(err, goal.ErrNotFound),
		errors.Is(err, ticket.ErrNotFound),
		errors.Is(err, profile.ErrNotFound),
		errors.Is(err, stripeevent.ErrNotFound):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
	case errors.Is(err, ticket.ErrForbidden):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeForbidden, err.Error()))
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeUnauthorized, err.Error()))
	default:
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

// pageParams reads from/size query params with the listing defaults.
func pageParams(c *gin.Context) (int, int) {
	from := 0
	if v := c.Query("from"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			from = n
		}
	}
	size := 20
	if v := c.Query("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			size = n
		}
	}
	return from, size
}

func currentSender(c *gin.Context) ticket.Sender {
	s := ticket.Sender{ID: c.GetString("user_id"), Role: types.RoleAffiliate}
	if r, ok := c.Get("role"); ok {
		if role, ok := r.(types.Role); ok {
			s.Role = role
		}
	}
	return s
}
