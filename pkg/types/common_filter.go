package types

import (
	"fmt"

	"gorm.io/gorm/clause"
)

type CommonFilterOperator string

const (
	CommonFilterOperatorEq       CommonFilterOperator = "eq"
	CommonFilterOperatorNotEq    CommonFilterOperator = "not_eq"
	CommonFilterOperatorLt       CommonFilterOperator = "lt"
	CommonFilterOperatorLte      CommonFilterOperator = "lte"
	CommonFilterOperatorGt       CommonFilterOperator = "gt"
	CommonFilterOperatorGte      CommonFilterOperator = "gte"
	CommonFilterOperatorRange    CommonFilterOperator = "range"
	CommonFilterOperatorIn       CommonFilterOperator = "in"
	CommonFilterOperatorContains CommonFilterOperator = "contains"
)

// CommonFilter is a single column predicate sent by list and report clients.
// Field is a column name; callers whitelist it before building.
type CommonFilter struct {
	Field    string               `json:"field"`
	Operator CommonFilterOperator `json:"operator"`
	Values   []any                `json:"values"`
}

// Validate checks the operator and the number of values it needs.
func (f *CommonFilter) Validate() error {
	if f == nil || f.Field == "" {
		return fmt.Errorf("filter field required")
	}
	need := 1
	switch f.Operator {
	case CommonFilterOperatorEq, CommonFilterOperatorNotEq, CommonFilterOperatorLt, CommonFilterOperatorLte,
		CommonFilterOperatorGt, CommonFilterOperatorGte, CommonFilterOperatorIn, CommonFilterOperatorContains:
	case CommonFilterOperatorRange:
		need = 2
	default:
		return fmt.Errorf("unsupported filter operator %q", f.Operator)
	}
	if len(f.Values) < need {
		return fmt.Errorf("filter %s %s needs %d value(s)", f.Field, f.Operator, need)
	}
	return nil
}

// Build constructs a GORM expression.
func (f *CommonFilter) Build(builder clause.Builder) {
	if len(f.Values) == 0 {
		return
	}

	value := f.Values[0]

	switch f.Operator {
	case CommonFilterOperatorEq:
		clause.Eq{Column: f.Field, Value: value}.Build(builder)
	case CommonFilterOperatorNotEq:
		clause.NotConditions{Exprs: []clause.Expression{clause.Eq{Column: f.Field, Value: value}}}.Build(builder)
	case CommonFilterOperatorLt:
		clause.Lt{Column: f.Field, Value: value}.Build(builder)
	case CommonFilterOperatorLte:
		clause.Lte{Column: f.Field, Value: value}.Build(builder)
	case CommonFilterOperatorGt:
		clause.Gt{Column: f.Field, Value: value}.Build(builder)
	case CommonFilterOperatorGte:
		clause.Gte{Column: f.Field, Value: value}.Build(builder)
	case CommonFilterOperatorRange:
		if len(f.Values) < 2 {
			return
		}

		clause.And(clause.Gte{Column: f.Field, Value: f.Values[0]}, clause.Lte{Column: f.Field, Value: f.Values[1]}).Build(builder)
	case CommonFilterOperatorIn:
		clause.IN{Column: f.Field, Values: f.Values}.Build(builder)
	case CommonFilterOperatorContains:
		clause.Like{Column: f.Field, Value: "%" + fmt.Sprint(value) + "%"}.Build(builder)
	default:
		return
	}
}
