package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOKT(t *testing.T) {
	r := OKT(map[string]int{"n": 1})
	require.Equal(t, APIResponseCodeOK, r.Code)
	require.Equal(t, "ok", r.Message)
	require.Equal(t, 1, r.Data["n"])
}

func TestErrorT_DefaultMessage(t *testing.T) {
	r := ErrorT[any](APIResponseCodeNotFound, "withdrawal not found")
	require.Equal(t, APIResponseCodeNotFound, r.Code)
	require.Equal(t, "not found", r.Message)
	require.Equal(t, "withdrawal not found", r.Data)
}

func TestErrorMsg_OverridesMessage(t *testing.T) {
	r := ErrorMsg(APIResponseCodeConflict, "Já existe uma meta deste tipo para este período")
	require.Equal(t, APIResponseCodeConflict, r.Code)
	require.Equal(t, "Já existe uma meta deste tipo para este período", r.Message)
	require.Nil(t, r.Data)
}

func TestEnvelopeJSONShape(t *testing.T) {
	b, err := json.Marshal(OKT("x"))
	require.NoError(t, err)
	require.JSONEq(t, `{"code":0,"message":"ok","data":"x"}`, string(b))
}
