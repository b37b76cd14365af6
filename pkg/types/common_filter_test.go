package types

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func buildSQL(t *testing.T, f *CommonFilter) (string, []interface{}) {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	require.NoError(t, err)
	stmt := &gorm.Statement{DB: db}
	f.Build(stmt)
	return stmt.SQL.String(), stmt.Vars
}

func TestCommonFilter_Eq(t *testing.T) {
	sql, vars := buildSQL(t, &CommonFilter{Field: "status", Operator: CommonFilterOperatorEq, Values: []any{"pending"}})
	require.Equal(t, "`status` = ?", sql)
	require.Equal(t, []interface{}{"pending"}, vars)
}

func TestCommonFilter_EqJSONField(t *testing.T) {
	sql, vars := buildSQL(t, &CommonFilter{Field: "payload->>'type'", Operator: CommonFilterOperatorEq, Values: []any{"invoice.paid"}})
	require.Equal(t, "payload->>'type' = ?", sql)
	require.Equal(t, []interface{}{"invoice.paid"}, vars)
}

func TestCommonFilter_ILike(t *testing.T) {
	sql, vars := buildSQL(t, &CommonFilter{Field: "email", Operator: CommonFilterOperatorILike, Values: []any{"maria"}})
	require.Equal(t, "email ILIKE ?", sql)
	require.Equal(t, []interface{}{"%maria%"}, vars)
}

func TestCommonFilter_Range(t *testing.T) {
	sql, vars := buildSQL(t, &CommonFilter{Field: "amount_cents", Operator: CommonFilterOperatorRange, Values: []any{100, 500}})
	require.Contains(t, sql, ">=")
	require.Contains(t, sql, "<=")
	require.Equal(t, []interface{}{100, 500}, vars)
}

func TestCommonFilter_RangeRequiresTwoValues(t *testing.T) {
	sql, _ := buildSQL(t, &CommonFilter{Field: "created_at", Operator: CommonFilterOperatorDateRange, Values: []any{"2026-01-01"}})
	require.Empty(t, sql)
}

func TestCommonFilter_In(t *testing.T) {
	sql, vars := buildSQL(t, &CommonFilter{Field: "status", Operator: CommonFilterOperatorIn, Values: []any{"approved", "paid"}})
	require.Equal(t, "`status` IN (?,?)", sql)
	require.Equal(t, []interface{}{"approved", "paid"}, vars)
}

func TestCommonFilter_EmptyValuesIsNoop(t *testing.T) {
	sql, _ := buildSQL(t, &CommonFilter{Field: "status", Operator: CommonFilterOperatorEq})
	require.Empty(t, sql)
}

func TestCommonFilter_UnknownOperatorIsNoop(t *testing.T) {
	sql, _ := buildSQL(t, &CommonFilter{Field: "status", Operator: "regex", Values: []any{"x"}})
	require.Empty(t, sql)
}
