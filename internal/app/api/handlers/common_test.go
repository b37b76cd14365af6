package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/upmkt/affiliates-api/internal/app/service/goal"
	"github.com/upmkt/affiliates-api/internal/app/service/ticket"
	"github.com/upmkt/affiliates-api/internal/app/service/withdrawal"
	"github.com/upmkt/affiliates-api/pkg/response"
)

func failWith(t *testing.T, err error) (int, *response.APIResponse[any]) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	fail(c, err)

	var body response.APIResponse[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, &body
}

func TestFail_DuplicateGoalKeepsFixedMessage(t *testing.T) {
	status, body := failWith(t, goal.ErrDuplicateGoal)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, response.APIResponseCodeConflict, body.Code)
	require.Equal(t, "Já existe uma meta deste tipo para este período", body.Message)
}

func TestFail_WrappedDuplicateGoal(t *testing.T) {
	_, body := failWith(t, errors.Join(errors.New("create goal"), goal.ErrDuplicateGoal))
	require.Equal(t, response.APIResponseCodeConflict, body.Code)
	require.Equal(t, "Já existe uma meta deste tipo para este período", body.Message)
}

func TestFail_ValidationSentinels(t *testing.T) {
	for _, err := range []error{
		goal.ErrInvalidTarget,
		withdrawal.ErrEmptyReason,
		withdrawal.ErrNoPaymentProof,
		ticket.ErrInvalidStatus,
	} {
		_, body := failWith(t, err)
		require.Equal(t, response.APIResponseCodeValidation, body.Code, "error %v", err)
	}
}

func TestFail_NotFoundSentinels(t *testing.T) {
	_, body := failWith(t, withdrawal.ErrNotFound)
	require.Equal(t, response.APIResponseCodeNotFound, body.Code)
	require.Equal(t, withdrawal.ErrNotFound.Error(), body.Data)
}

func TestFail_UnknownErrorIsGeneric(t *testing.T) {
	_, body := failWith(t, errors.New("boom"))
	require.Equal(t, response.APIResponseCodeError, body.Code)
	require.Equal(t, "boom", body.Data)
}
