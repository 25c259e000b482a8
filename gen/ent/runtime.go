// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/mygreenhome/greenhome-tracker/db/ent/schema"
	"github.com/mygreenhome/greenhome-tracker/gen/ent/analysisjob"
	"github.com/mygreenhome/greenhome-tracker/gen/ent/billresult"
	"github.com/mygreenhome/greenhome-tracker/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisjobFields := schema.AnalysisJob{}.Fields()
	_ = analysisjobFields
	// analysisjobDescFilename is the schema descriptor for filename field.
	analysisjobDescFilename := analysisjobFields[3].Descriptor()
	// analysisjob.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	analysisjob.FilenameValidator = analysisjobDescFilename.Validators[0].(func(string) error)
	// analysisjobDescStatus is the schema descriptor for status field.
	analysisjobDescStatus := analysisjobFields[4].Descriptor()
	// analysisjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	analysisjob.StatusValidator = analysisjobDescStatus.Validators[0].(func(string) error)
	// analysisjobDescStartedAt is the schema descriptor for started_at field.
	analysisjobDescStartedAt := analysisjobFields[8].Descriptor()
	// analysisjob.DefaultStartedAt holds the default value on creation for the started_at field.
	analysisjob.DefaultStartedAt = analysisjobDescStartedAt.Default.(func() time.Time)
	// analysisjobDescID is the schema descriptor for id field.
	analysisjobDescID := analysisjobFields[0].Descriptor()
	// analysisjob.DefaultID holds the default value on creation for the id field.
	analysisjob.DefaultID = analysisjobDescID.Default.(func() uuid.UUID)
	billresultFields := schema.BillResult{}.Fields()
	_ = billresultFields
	// billresultDescTotalConsumption is the schema descriptor for total_consumption field.
	billresultDescTotalConsumption := billresultFields[2].Descriptor()
	// billresult.TotalConsumptionValidator is a validator for the "total_consumption" field. It is called by the builders before save.
	billresult.TotalConsumptionValidator = billresultDescTotalConsumption.Validators[0].(func(float64) error)
	// billresultDescCarbonKg is the schema descriptor for carbon_kg field.
	billresultDescCarbonKg := billresultFields[3].Descriptor()
	// billresult.CarbonKgValidator is a validator for the "carbon_kg" field. It is called by the builders before save.
	billresult.CarbonKgValidator = billresultDescCarbonKg.Validators[0].(func(float64) error)
	// billresultDescAnalysisDate is the schema descriptor for analysis_date field.
	billresultDescAnalysisDate := billresultFields[9].Descriptor()
	// billresult.DefaultAnalysisDate holds the default value on creation for the analysis_date field.
	billresult.DefaultAnalysisDate = billresultDescAnalysisDate.Default.(func() time.Time)
	// billresultDescCreatedAt is the schema descriptor for created_at field.
	billresultDescCreatedAt := billresultFields[10].Descriptor()
	// billresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	billresult.DefaultCreatedAt = billresultDescCreatedAt.Default.(func() time.Time)
	// billresultDescID is the schema descriptor for id field.
	billresultDescID := billresultFields[0].Descriptor()
	// billresult.DefaultID holds the default value on creation for the id field.
	billresult.DefaultID = billresultDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPoints is the schema descriptor for points field.
	userDescPoints := userFields[4].Descriptor()
	// user.DefaultPoints holds the default value on creation for the points field.
	user.DefaultPoints = userDescPoints.Default.(int)
	// user.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	user.PointsValidator = userDescPoints.Validators[0].(func(int) error)
	// userDescBadges is the schema descriptor for badges field.
	userDescBadges := userFields[5].Descriptor()
	// user.DefaultBadges holds the default value on creation for the badges field.
	user.DefaultBadges = userDescBadges.Default.([]string)
	// userDescBillsAnalyzedCount is the schema descriptor for bills_analyzed_count field.
	userDescBillsAnalyzedCount := userFields[6].Descriptor()
	// user.DefaultBillsAnalyzedCount holds the default value on creation for the bills_analyzed_count field.
	user.DefaultBillsAnalyzedCount = userDescBillsAnalyzedCount.Default.(int)
	// user.BillsAnalyzedCountValidator is a validator for the "bills_analyzed_count" field. It is called by the builders before save.
	user.BillsAnalyzedCountValidator = userDescBillsAnalyzedCount.Validators[0].(func(int) error)
	// userDescTotalConsumptionReduced is the schema descriptor for total_consumption_reduced field.
	userDescTotalConsumptionReduced := userFields[7].Descriptor()
	// user.DefaultTotalConsumptionReduced holds the default value on creation for the total_consumption_reduced field.
	user.DefaultTotalConsumptionReduced = userDescTotalConsumptionReduced.Default.(float64)
	// user.TotalConsumptionReducedValidator is a validator for the "total_consumption_reduced" field. It is called by the builders before save.
	user.TotalConsumptionReducedValidator = userDescTotalConsumptionReduced.Validators[0].(func(float64) error)
	// userDescVersion is the schema descriptor for version field.
	userDescVersion := userFields[8].Descriptor()
	// user.DefaultVersion holds the default value on creation for the version field.
	user.DefaultVersion = userDescVersion.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[9].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[10].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
