package types

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/utils/tests"
)

func buildSQL(t *testing.T, expr clause.Expression) (string, []any) {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	require.NoError(t, err)
	stmt := &gorm.Statement{DB: db, Clauses: map[string]clause.Clause{}}
	expr.Build(stmt)
	return stmt.SQL.String(), stmt.Vars
}

func TestCommonFilter_Build(t *testing.T) {
	tests := []struct {
		name     string
		filter   CommonFilter
		wantSQL  string
		wantVars []any
	}{
		{name: "eq", filter: CommonFilter{Field: "status", Operator: CommonFilterOperatorEq, Values: []any{"active"}}, wantSQL: "`status` = ?", wantVars: []any{"active"}},
		{name: "gte", filter: CommonFilter{Field: "end_date", Operator: CommonFilterOperatorGte, Values: []any{"2025-01-01"}}, wantSQL: "`end_date` >= ?", wantVars: []any{"2025-01-01"}},
		{name: "range", filter: CommonFilter{Field: "end_date", Operator: CommonFilterOperatorRange, Values: []any{"a", "b"}}, wantSQL: "(`end_date` >= ? AND `end_date` <= ?)", wantVars: []any{"a", "b"}},
		{name: "contains", filter: CommonFilter{Field: "member_name", Operator: CommonFilterOperatorContains, Values: []any{"ann"}}, wantSQL: "`member_name` LIKE ?", wantVars: []any{"%ann%"}},
		{name: "in", filter: CommonFilter{Field: "duration", Operator: CommonFilterOperatorIn, Values: []any{"1_year", "2_years"}}, wantSQL: "`duration` IN (?,?)", wantVars: []any{"1_year", "2_years"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, vars := buildSQL(t, &tt.filter)
			require.Equal(t, tt.wantSQL, sql)
			require.Equal(t, tt.wantVars, vars)
		})
	}
}

func TestCommonFilter_Validate(t *testing.T) {
	require.NoError(t, (&CommonFilter{Field: "status", Operator: CommonFilterOperatorEq, Values: []any{"active"}}).Validate())
	require.Error(t, (&CommonFilter{Field: "", Operator: CommonFilterOperatorEq, Values: []any{"x"}}).Validate())
	require.Error(t, (&CommonFilter{Field: "status", Operator: "regex", Values: []any{"x"}}).Validate())
	require.Error(t, (&CommonFilter{Field: "end_date", Operator: CommonFilterOperatorRange, Values: []any{"x"}}).Validate())
	require.Error(t, (&CommonFilter{Field: "status", Operator: CommonFilterOperatorEq}).Validate())
}
