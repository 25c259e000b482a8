// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisJob is the predicate function for analysisjob builders.
type AnalysisJob func(*sql.Selector)

// BillResult is the predicate function for billresult builders.
type BillResult func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
