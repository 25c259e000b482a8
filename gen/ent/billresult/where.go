// Code generated by ent, DO NOT EDIT.

package billresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mygreenhome/greenhome-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldUserID, v))
}

// TotalConsumption applies equality check predicate on the "total_consumption" field. It's identical to TotalConsumptionEQ.
func TotalConsumption(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldTotalConsumption, v))
}

// CarbonKg applies equality check predicate on the "carbon_kg" field. It's identical to CarbonKgEQ.
func CarbonKg(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldCarbonKg, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldTotalAmount, v))
}

// SavingsTip applies equality check predicate on the "savings_tip" field. It's identical to SavingsTipEQ.
func SavingsTip(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldSavingsTip, v))
}

// BillID applies equality check predicate on the "bill_id" field. It's identical to BillIDEQ.
func BillID(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldBillID, v))
}

// BillDate applies equality check predicate on the "bill_date" field. It's identical to BillDateEQ.
func BillDate(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldBillDate, v))
}

// AnalysisDate applies equality check predicate on the "analysis_date" field. It's identical to AnalysisDateEQ.
func AnalysisDate(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldAnalysisDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.BillResult {
	return predicate.BillResult(sql.FieldNotIn(FieldUserID, vs...))
}

// TotalConsumptionEQ applies the EQ predicate on the "total_consumption" field.
func TotalConsumptionEQ(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldTotalConsumption, v))
}

// TotalConsumptionNEQ applies the NEQ predicate on the "total_consumption" field.
func TotalConsumptionNEQ(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldNEQ(FieldTotalConsumption, v))
}

// TotalConsumptionIn applies the In predicate on the "total_consumption" field.
func TotalConsumptionIn(vs ...float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldIn(FieldTotalConsumption, vs...))
}

// TotalConsumptionNotIn applies the NotIn predicate on the "total_consumption" field.
func TotalConsumptionNotIn(vs ...float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldNotIn(FieldTotalConsumption, vs...))
}

// TotalConsumptionGT applies the GT predicate on the "total_consumption" field.
func TotalConsumptionGT(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldGT(FieldTotalConsumption, v))
}

// TotalConsumptionGTE applies the GTE predicate on the "total_consumption" field.
func TotalConsumptionGTE(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldGTE(FieldTotalConsumption, v))
}

// TotalConsumptionLT applies the LT predicate on the "total_consumption" field.
func TotalConsumptionLT(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldLT(FieldTotalConsumption, v))
}

// TotalConsumptionLTE applies the LTE predicate on the "total_consumption" field.
func TotalConsumptionLTE(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldLTE(FieldTotalConsumption, v))
}

// CarbonKgEQ applies the EQ predicate on the "carbon_kg" field.
func CarbonKgEQ(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldCarbonKg, v))
}

// CarbonKgNEQ applies the NEQ predicate on the "carbon_kg" field.
func CarbonKgNEQ(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldNEQ(FieldCarbonKg, v))
}

// CarbonKgIn applies the In predicate on the "carbon_kg" field.
func CarbonKgIn(vs ...float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldIn(FieldCarbonKg, vs...))
}

// CarbonKgNotIn applies the NotIn predicate on the "carbon_kg" field.
func CarbonKgNotIn(vs ...float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldNotIn(FieldCarbonKg, vs...))
}

// CarbonKgGT applies the GT predicate on the "carbon_kg" field.
func CarbonKgGT(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldGT(FieldCarbonKg, v))
}

// CarbonKgGTE applies the GTE predicate on the "carbon_kg" field.
func CarbonKgGTE(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldGTE(FieldCarbonKg, v))
}

// CarbonKgLT applies the LT predicate on the "carbon_kg" field.
func CarbonKgLT(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldLT(FieldCarbonKg, v))
}

// CarbonKgLTE applies the LTE predicate on the "carbon_kg" field.
func CarbonKgLTE(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldLTE(FieldCarbonKg, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.BillResult {
	return predicate.BillResult(sql.FieldLTE(FieldTotalAmount, v))
}

// SavingsTipEQ applies the EQ predicate on the "savings_tip" field.
func SavingsTipEQ(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldSavingsTip, v))
}

// SavingsTipNEQ applies the NEQ predicate on the "savings_tip" field.
func SavingsTipNEQ(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldNEQ(FieldSavingsTip, v))
}

// SavingsTipIn applies the In predicate on the "savings_tip" field.
func SavingsTipIn(vs ...string) predicate.BillResult {
	return predicate.BillResult(sql.FieldIn(FieldSavingsTip, vs...))
}

// SavingsTipNotIn applies the NotIn predicate on the "savings_tip" field.
func SavingsTipNotIn(vs ...string) predicate.BillResult {
	return predicate.BillResult(sql.FieldNotIn(FieldSavingsTip, vs...))
}

// SavingsTipGT applies the GT predicate on the "savings_tip" field.
func SavingsTipGT(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldGT(FieldSavingsTip, v))
}

// SavingsTipGTE applies the GTE predicate on the "savings_tip" field.
func SavingsTipGTE(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldGTE(FieldSavingsTip, v))
}

// SavingsTipLT applies the LT predicate on the "savings_tip" field.
func SavingsTipLT(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldLT(FieldSavingsTip, v))
}

// SavingsTipLTE applies the LTE predicate on the "savings_tip" field.
func SavingsTipLTE(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldLTE(FieldSavingsTip, v))
}

// SavingsTipContains applies the Contains predicate on the "savings_tip" field.
func SavingsTipContains(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldContains(FieldSavingsTip, v))
}

// SavingsTipHasPrefix applies the HasPrefix predicate on the "savings_tip" field.
func SavingsTipHasPrefix(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldHasPrefix(FieldSavingsTip, v))
}

// SavingsTipHasSuffix applies the HasSuffix predicate on the "savings_tip" field.
func SavingsTipHasSuffix(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldHasSuffix(FieldSavingsTip, v))
}

// SavingsTipEqualFold applies the EqualFold predicate on the "savings_tip" field.
func SavingsTipEqualFold(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldEqualFold(FieldSavingsTip, v))
}

// SavingsTipContainsFold applies the ContainsFold predicate on the "savings_tip" field.
func SavingsTipContainsFold(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldContainsFold(FieldSavingsTip, v))
}

// BillIDEQ applies the EQ predicate on the "bill_id" field.
func BillIDEQ(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldBillID, v))
}

// BillIDNEQ applies the NEQ predicate on the "bill_id" field.
func BillIDNEQ(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldNEQ(FieldBillID, v))
}

// BillIDIn applies the In predicate on the "bill_id" field.
func BillIDIn(vs ...string) predicate.BillResult {
	return predicate.BillResult(sql.FieldIn(FieldBillID, vs...))
}

// BillIDNotIn applies the NotIn predicate on the "bill_id" field.
func BillIDNotIn(vs ...string) predicate.BillResult {
	return predicate.BillResult(sql.FieldNotIn(FieldBillID, vs...))
}

// BillIDGT applies the GT predicate on the "bill_id" field.
func BillIDGT(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldGT(FieldBillID, v))
}

// BillIDGTE applies the GTE predicate on the "bill_id" field.
func BillIDGTE(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldGTE(FieldBillID, v))
}

// BillIDLT applies the LT predicate on the "bill_id" field.
func BillIDLT(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldLT(FieldBillID, v))
}

// BillIDLTE applies the LTE predicate on the "bill_id" field.
func BillIDLTE(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldLTE(FieldBillID, v))
}

// BillIDContains applies the Contains predicate on the "bill_id" field.
func BillIDContains(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldContains(FieldBillID, v))
}

// BillIDHasPrefix applies the HasPrefix predicate on the "bill_id" field.
func BillIDHasPrefix(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldHasPrefix(FieldBillID, v))
}

// BillIDHasSuffix applies the HasSuffix predicate on the "bill_id" field.
func BillIDHasSuffix(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldHasSuffix(FieldBillID, v))
}

// BillIDIsNil applies the IsNil predicate on the "bill_id" field.
func BillIDIsNil() predicate.BillResult {
	return predicate.BillResult(sql.FieldIsNull(FieldBillID))
}

// BillIDNotNil applies the NotNil predicate on the "bill_id" field.
func BillIDNotNil() predicate.BillResult {
	return predicate.BillResult(sql.FieldNotNull(FieldBillID))
}

// BillIDEqualFold applies the EqualFold predicate on the "bill_id" field.
func BillIDEqualFold(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldEqualFold(FieldBillID, v))
}

// BillIDContainsFold applies the ContainsFold predicate on the "bill_id" field.
func BillIDContainsFold(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldContainsFold(FieldBillID, v))
}

// BillDateEQ applies the EQ predicate on the "bill_date" field.
func BillDateEQ(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldBillDate, v))
}

// BillDateNEQ applies the NEQ predicate on the "bill_date" field.
func BillDateNEQ(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldNEQ(FieldBillDate, v))
}

// BillDateIn applies the In predicate on the "bill_date" field.
func BillDateIn(vs ...string) predicate.BillResult {
	return predicate.BillResult(sql.FieldIn(FieldBillDate, vs...))
}

// BillDateNotIn applies the NotIn predicate on the "bill_date" field.
func BillDateNotIn(vs ...string) predicate.BillResult {
	return predicate.BillResult(sql.FieldNotIn(FieldBillDate, vs...))
}

// BillDateGT applies the GT predicate on the "bill_date" field.
func BillDateGT(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldGT(FieldBillDate, v))
}

// BillDateGTE applies the GTE predicate on the "bill_date" field.
func BillDateGTE(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldGTE(FieldBillDate, v))
}

// BillDateLT applies the LT predicate on the "bill_date" field.
func BillDateLT(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldLT(FieldBillDate, v))
}

// BillDateLTE applies the LTE predicate on the "bill_date" field.
func BillDateLTE(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldLTE(FieldBillDate, v))
}

// BillDateContains applies the Contains predicate on the "bill_date" field.
func BillDateContains(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldContains(FieldBillDate, v))
}

// BillDateHasPrefix applies the HasPrefix predicate on the "bill_date" field.
func BillDateHasPrefix(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldHasPrefix(FieldBillDate, v))
}

// BillDateHasSuffix applies the HasSuffix predicate on the "bill_date" field.
func BillDateHasSuffix(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldHasSuffix(FieldBillDate, v))
}

// BillDateIsNil applies the IsNil predicate on the "bill_date" field.
func BillDateIsNil() predicate.BillResult {
	return predicate.BillResult(sql.FieldIsNull(FieldBillDate))
}

// BillDateNotNil applies the NotNil predicate on the "bill_date" field.
func BillDateNotNil() predicate.BillResult {
	return predicate.BillResult(sql.FieldNotNull(FieldBillDate))
}

// BillDateEqualFold applies the EqualFold predicate on the "bill_date" field.
func BillDateEqualFold(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldEqualFold(FieldBillDate, v))
}

// BillDateContainsFold applies the ContainsFold predicate on the "bill_date" field.
func BillDateContainsFold(v string) predicate.BillResult {
	return predicate.BillResult(sql.FieldContainsFold(FieldBillDate, v))
}

// AnalysisDateEQ applies the EQ predicate on the "analysis_date" field.
func AnalysisDateEQ(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldAnalysisDate, v))
}

// AnalysisDateNEQ applies the NEQ predicate on the "analysis_date" field.
func AnalysisDateNEQ(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldNEQ(FieldAnalysisDate, v))
}

// AnalysisDateIn applies the In predicate on the "analysis_date" field.
func AnalysisDateIn(vs ...time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldIn(FieldAnalysisDate, vs...))
}

// AnalysisDateNotIn applies the NotIn predicate on the "analysis_date" field.
func AnalysisDateNotIn(vs ...time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldNotIn(FieldAnalysisDate, vs...))
}

// AnalysisDateGT applies the GT predicate on the "analysis_date" field.
func AnalysisDateGT(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldGT(FieldAnalysisDate, v))
}

// AnalysisDateGTE applies the GTE predicate on the "analysis_date" field.
func AnalysisDateGTE(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldGTE(FieldAnalysisDate, v))
}

// AnalysisDateLT applies the LT predicate on the "analysis_date" field.
func AnalysisDateLT(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldLT(FieldAnalysisDate, v))
}

// AnalysisDateLTE applies the LTE predicate on the "analysis_date" field.
func AnalysisDateLTE(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldLTE(FieldAnalysisDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BillResult {
	return predicate.BillResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.BillResult {
	return predicate.BillResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.BillResult {
	return predicate.BillResult(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.BillResult {
	return predicate.BillResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.AnalysisJob) predicate.BillResult {
	return predicate.BillResult(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BillResult) predicate.BillResult {
	return predicate.BillResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BillResult) predicate.BillResult {
	return predicate.BillResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BillResult) predicate.BillResult {
	return predicate.BillResult(sql.NotPredicates(p))
}
