// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mygreenhome/greenhome-tracker/db/ent/schema"
	"github.com/mygreenhome/greenhome-tracker/gen/ent/analysisjob"
	"github.com/mygreenhome/greenhome-tracker/gen/ent/billresult"
	"github.com/mygreenhome/greenhome-tracker/gen/ent/user"
)

// BillResultCreate is the builder for creating a BillResult entity.
type BillResultCreate struct {
	config
	mutation *BillResultMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BillResultCreate) SetUserID(v uuid.UUID) *BillResultCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTotalConsumption sets the "total_consumption" field.
func (_c *BillResultCreate) SetTotalConsumption(v float64) *BillResultCreate {
	_c.mutation.SetTotalConsumption(v)
	return _c
}

// SetCarbonKg sets the "carbon_kg" field.
func (_c *BillResultCreate) SetCarbonKg(v float64) *BillResultCreate {
	_c.mutation.SetCarbonKg(v)
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *BillResultCreate) SetTotalAmount(v float64) *BillResultCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetEnergyUsage sets the "energy_usage" field.
func (_c *BillResultCreate) SetEnergyUsage(v []schema.EnergyReading) *BillResultCreate {
	_c.mutation.SetEnergyUsage(v)
	return _c
}

// SetSavingsTip sets the "savings_tip" field.
func (_c *BillResultCreate) SetSavingsTip(v string) *BillResultCreate {
	_c.mutation.SetSavingsTip(v)
	return _c
}

// SetBillID sets the "bill_id" field.
func (_c *BillResultCreate) SetBillID(v string) *BillResultCreate {
	_c.mutation.SetBillID(v)
	return _c
}

// SetNillableBillID sets the "bill_id" field if the given value is not nil.
func (_c *BillResultCreate) SetNillableBillID(v *string) *BillResultCreate {
	if v != nil {
		_c.SetBillID(*v)
	}
	return _c
}

// SetBillDate sets the "bill_date" field.
func (_c *BillResultCreate) SetBillDate(v string) *BillResultCreate {
	_c.mutation.SetBillDate(v)
	return _c
}

// SetNillableBillDate sets the "bill_date" field if the given value is not nil.
func (_c *BillResultCreate) SetNillableBillDate(v *string) *BillResultCreate {
	if v != nil {
		_c.SetBillDate(*v)
	}
	return _c
}

// SetAnalysisDate sets the "analysis_date" field.
func (_c *BillResultCreate) SetAnalysisDate(v time.Time) *BillResultCreate {
	_c.mutation.SetAnalysisDate(v)
	return _c
}

// SetNillableAnalysisDate sets the "analysis_date" field if the given value is not nil.
func (_c *BillResultCreate) SetNillableAnalysisDate(v *time.Time) *BillResultCreate {
	if v != nil {
		_c.SetAnalysisDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillResultCreate) SetCreatedAt(v time.Time) *BillResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillResultCreate) SetNillableCreatedAt(v *time.Time) *BillResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillResultCreate) SetID(v uuid.UUID) *BillResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BillResultCreate) SetNillableID(v *uuid.UUID) *BillResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *BillResultCreate) SetUser(v *User) *BillResultCreate {
	return _c.SetUserID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the AnalysisJob entity by IDs.
func (_c *BillResultCreate) AddJobIDs(ids ...uuid.UUID) *BillResultCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the AnalysisJob entity.
func (_c *BillResultCreate) AddJobs(v ...*AnalysisJob) *BillResultCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the BillResultMutation object of the builder.
func (_c *BillResultCreate) Mutation() *BillResultMutation {
	return _c.mutation
}

// Save creates the BillResult in the database.
func (_c *BillResultCreate) Save(ctx context.Context) (*BillResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillResultCreate) SaveX(ctx context.Context) *BillResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillResultCreate) defaults() {
	if _, ok := _c.mutation.AnalysisDate(); !ok {
		v := billresult.DefaultAnalysisDate()
		_c.mutation.SetAnalysisDate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := billresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := billresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillResultCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BillResult.user_id"`)}
	}
	if _, ok := _c.mutation.TotalConsumption(); !ok {
		return &ValidationError{Name: "total_consumption", err: errors.New(`ent: missing required field "BillResult.total_consumption"`)}
	}
	if v, ok := _c.mutation.TotalConsumption(); ok {
		if err := billresult.TotalConsumptionValidator(v); err != nil {
			return &ValidationError{Name: "total_consumption", err: fmt.Errorf(`ent: validator failed for field "BillResult.total_consumption": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CarbonKg(); !ok {
		return &ValidationError{Name: "carbon_kg", err: errors.New(`ent: missing required field "BillResult.carbon_kg"`)}
	}
	if v, ok := _c.mutation.CarbonKg(); ok {
		if err := billresult.CarbonKgValidator(v); err != nil {
			return &ValidationError{Name: "carbon_kg", err: fmt.Errorf(`ent: validator failed for field "BillResult.carbon_kg": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`ent: missing required field "BillResult.total_amount"`)}
	}
	if _, ok := _c.mutation.EnergyUsage(); !ok {
		return &ValidationError{Name: "energy_usage", err: errors.New(`ent: missing required field "BillResult.energy_usage"`)}
	}
	if _, ok := _c.mutation.SavingsTip(); !ok {
		return &ValidationError{Name: "savings_tip", err: errors.New(`ent: missing required field "BillResult.savings_tip"`)}
	}
	if _, ok := _c.mutation.AnalysisDate(); !ok {
		return &ValidationError{Name: "analysis_date", err: errors.New(`ent: missing required field "BillResult.analysis_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BillResult.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "BillResult.user"`)}
	}
	return nil
}

func (_c *BillResultCreate) sqlSave(ctx context.Context) (*BillResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BillResultCreate) createSpec() (*BillResult, *sqlgraph.CreateSpec) {
	var (
		_node = &BillResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(billresult.Table, sqlgraph.NewFieldSpec(billresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TotalConsumption(); ok {
		_spec.SetField(billresult.FieldTotalConsumption, field.TypeFloat64, value)
		_node.TotalConsumption = value
	}
	if value, ok := _c.mutation.CarbonKg(); ok {
		_spec.SetField(billresult.FieldCarbonKg, field.TypeFloat64, value)
		_node.CarbonKg = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(billresult.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.EnergyUsage(); ok {
		_spec.SetField(billresult.FieldEnergyUsage, field.TypeJSON, value)
		_node.EnergyUsage = value
	}
	if value, ok := _c.mutation.SavingsTip(); ok {
		_spec.SetField(billresult.FieldSavingsTip, field.TypeString, value)
		_node.SavingsTip = value
	}
	if value, ok := _c.mutation.BillID(); ok {
		_spec.SetField(billresult.FieldBillID, field.TypeString, value)
		_node.BillID = &value
	}
	if value, ok := _c.mutation.BillDate(); ok {
		_spec.SetField(billresult.FieldBillDate, field.TypeString, value)
		_node.BillDate = &value
	}
	if value, ok := _c.mutation.AnalysisDate(); ok {
		_spec.SetField(billresult.FieldAnalysisDate, field.TypeTime, value)
		_node.AnalysisDate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(billresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billresult.UserTable,
			Columns: []string{billresult.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   billresult.JobsTable,
			Columns: []string{billresult.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BillResultCreateBulk is the builder for creating many BillResult entities in bulk.
type BillResultCreateBulk struct {
	config
	err      error
	builders []*BillResultCreate
}

// Save creates the BillResult entities in the database.
func (_c *BillResultCreateBulk) Save(ctx context.Context) ([]*BillResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BillResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BillResultCreateBulk) SaveX(ctx context.Context) []*BillResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
