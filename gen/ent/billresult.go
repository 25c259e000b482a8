// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mygreenhome/greenhome-tracker/db/ent/schema"
	"github.com/mygreenhome/greenhome-tracker/gen/ent/billresult"
	"github.com/mygreenhome/greenhome-tracker/gen/ent/user"
)

// BillResult is the model entity for the BillResult schema.
type BillResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// TotalConsumption holds the value of the "total_consumption" field.
	TotalConsumption float64 `json:"total_consumption,omitempty"`
	// CarbonKg holds the value of the "carbon_kg" field.
	CarbonKg float64 `json:"carbon_kg,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount float64 `json:"total_amount,omitempty"`
	// EnergyUsage holds the value of the "energy_usage" field.
	EnergyUsage []schema.EnergyReading `json:"energy_usage,omitempty"`
	// SavingsTip holds the value of the "savings_tip" field.
	SavingsTip string `json:"savings_tip,omitempty"`
	// BillID holds the value of the "bill_id" field.
	BillID *string `json:"bill_id,omitempty"`
	// BillDate holds the value of the "bill_date" field.
	BillDate *string `json:"bill_date,omitempty"`
	// AnalysisDate holds the value of the "analysis_date" field.
	AnalysisDate time.Time `json:"analysis_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BillResultQuery when eager-loading is set.
	Edges        BillResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BillResultEdges holds the relations/edges for other nodes in the graph.
type BillResultEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*AnalysisJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BillResultEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e BillResultEdges) JobsOrErr() ([]*AnalysisJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BillResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case billresult.FieldEnergyUsage:
			values[i] = new([]byte)
		case billresult.FieldTotalConsumption, billresult.FieldCarbonKg, billresult.FieldTotalAmount:
			values[i] = new(sql.NullFloat64)
		case billresult.FieldSavingsTip, billresult.FieldBillID, billresult.FieldBillDate:
			values[i] = new(sql.NullString)
		case billresult.FieldAnalysisDate, billresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case billresult.FieldID, billresult.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BillResult fields.
func (_m *BillResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case billresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case billresult.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case billresult.FieldTotalConsumption:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_consumption", values[i])
			} else if value.Valid {
				_m.TotalConsumption = value.Float64
			}
		case billresult.FieldCarbonKg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field carbon_kg", values[i])
			} else if value.Valid {
				_m.CarbonKg = value.Float64
			}
		case billresult.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.Float64
			}
		case billresult.FieldEnergyUsage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field energy_usage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EnergyUsage); err != nil {
					return fmt.Errorf("unmarshal field energy_usage: %w", err)
				}
			}
		case billresult.FieldSavingsTip:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field savings_tip", values[i])
			} else if value.Valid {
				_m.SavingsTip = value.String
			}
		case billresult.FieldBillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bill_id", values[i])
			} else if value.Valid {
				_m.BillID = new(string)
				*_m.BillID = value.String
			}
		case billresult.FieldBillDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bill_date", values[i])
			} else if value.Valid {
				_m.BillDate = new(string)
				*_m.BillDate = value.String
			}
		case billresult.FieldAnalysisDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_date", values[i])
			} else if value.Valid {
				_m.AnalysisDate = value.Time
			}
		case billresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BillResult.
// This includes values selected through modifiers, order, etc.
func (_m *BillResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the BillResult entity.
func (_m *BillResult) QueryUser() *UserQuery {
	return NewBillResultClient(_m.config).QueryUser(_m)
}

// QueryJobs queries the "jobs" edge of the BillResult entity.
func (_m *BillResult) QueryJobs() *AnalysisJobQuery {
	return NewBillResultClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this BillResult.
// Note that you need to call BillResult.Unwrap() before calling this method if this BillResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BillResult) Update() *BillResultUpdateOne {
	return NewBillResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BillResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BillResult) Unwrap() *BillResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BillResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BillResult) String() string {
	var builder strings.Builder
	builder.WriteString("BillResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("total_consumption=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalConsumption))
	builder.WriteString(", ")
	builder.WriteString("carbon_kg=")
	builder.WriteString(fmt.Sprintf("%v", _m.CarbonKg))
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("energy_usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnergyUsage))
	builder.WriteString(", ")
	builder.WriteString("savings_tip=")
	builder.WriteString(_m.SavingsTip)
	builder.WriteString(", ")
	if v := _m.BillID; v != nil {
		builder.WriteString("bill_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BillDate; v != nil {
		builder.WriteString("bill_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("analysis_date=")
	builder.WriteString(_m.AnalysisDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BillResults is a parsable slice of BillResult.
type BillResults []*BillResult
