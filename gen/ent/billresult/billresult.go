// Code generated by ent, DO NOT EDIT.

package billresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the billresult type in the database.
	Label = "bill_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTotalConsumption holds the string denoting the total_consumption field in the database.
	FieldTotalConsumption = "total_consumption"
	// FieldCarbonKg holds the string denoting the carbon_kg field in the database.
	FieldCarbonKg = "carbon_kg"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldEnergyUsage holds the string denoting the energy_usage field in the database.
	FieldEnergyUsage = "energy_usage"
	// FieldSavingsTip holds the string denoting the savings_tip field in the database.
	FieldSavingsTip = "savings_tip"
	// FieldBillID holds the string denoting the bill_id field in the database.
	FieldBillID = "bill_id"
	// FieldBillDate holds the string denoting the bill_date field in the database.
	FieldBillDate = "bill_date"
	// FieldAnalysisDate holds the string denoting the analysis_date field in the database.
	FieldAnalysisDate = "analysis_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the billresult in the database.
	Table = "bill_results"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "bill_results"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "analysis_jobs"
	// JobsInverseTable is the table name for the AnalysisJob entity.
	// It exists in this package in order to avoid circular dependency with the "analysisjob" package.
	JobsInverseTable = "analysis_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "result_id"
)

// Columns holds all SQL columns for billresult fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTotalConsumption,
	FieldCarbonKg,
	FieldTotalAmount,
	FieldEnergyUsage,
	FieldSavingsTip,
	FieldBillID,
	FieldBillDate,
	FieldAnalysisDate,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TotalConsumptionValidator is a validator for the "total_consumption" field. It is called by the builders before save.
	TotalConsumptionValidator func(float64) error
	// CarbonKgValidator is a validator for the "carbon_kg" field. It is called by the builders before save.
	CarbonKgValidator func(float64) error
	// DefaultAnalysisDate holds the default value on creation for the "analysis_date" field.
	DefaultAnalysisDate func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BillResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTotalConsumption orders the results by the total_consumption field.
func ByTotalConsumption(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalConsumption, opts...).ToFunc()
}

// ByCarbonKg orders the results by the carbon_kg field.
func ByCarbonKg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCarbonKg, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// BySavingsTip orders the results by the savings_tip field.
func BySavingsTip(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSavingsTip, opts...).ToFunc()
}

// ByBillID orders the results by the bill_id field.
func ByBillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBillID, opts...).ToFunc()
}

// ByBillDate orders the results by the bill_date field.
func ByBillDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBillDate, opts...).ToFunc()
}

// ByAnalysisDate orders the results by the analysis_date field.
func ByAnalysisDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
