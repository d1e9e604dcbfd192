// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/totli/ent/learnerrecord"
)

// LearnerRecordCreate is the builder for creating a LearnerRecord entity.
type LearnerRecordCreate struct {
	config
	mutation *LearnerRecordMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *LearnerRecordCreate) SetName(v string) *LearnerRecordCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAge sets the "age" field.
func (_c *LearnerRecordCreate) SetAge(v int) *LearnerRecordCreate {
	_c.mutation.SetAge(v)
	return _c
}

// SetPreferredLanguage sets the "preferred_language" field.
func (_c *LearnerRecordCreate) SetPreferredLanguage(v string) *LearnerRecordCreate {
	_c.mutation.SetPreferredLanguage(v)
	return _c
}

// SetNillablePreferredLanguage sets the "preferred_language" field if the given value is not nil.
func (_c *LearnerRecordCreate) SetNillablePreferredLanguage(v *string) *LearnerRecordCreate {
	if v != nil {
		_c.SetPreferredLanguage(*v)
	}
	return _c
}

// SetLearningLevel sets the "learning_level" field.
func (_c *LearnerRecordCreate) SetLearningLevel(v string) *LearnerRecordCreate {
	_c.mutation.SetLearningLevel(v)
	return _c
}

// SetNillableLearningLevel sets the "learning_level" field if the given value is not nil.
func (_c *LearnerRecordCreate) SetNillableLearningLevel(v *string) *LearnerRecordCreate {
	if v != nil {
		_c.SetLearningLevel(*v)
	}
	return _c
}

// SetParentName sets the "parent_name" field.
func (_c *LearnerRecordCreate) SetParentName(v string) *LearnerRecordCreate {
	_c.mutation.SetParentName(v)
	return _c
}

// SetNillableParentName sets the "parent_name" field if the given value is not nil.
func (_c *LearnerRecordCreate) SetNillableParentName(v *string) *LearnerRecordCreate {
	if v != nil {
		_c.SetParentName(*v)
	}
	return _c
}

// SetParentEmail sets the "parent_email" field.
func (_c *LearnerRecordCreate) SetParentEmail(v string) *LearnerRecordCreate {
	_c.mutation.SetParentEmail(v)
	return _c
}

// SetNillableParentEmail sets the "parent_email" field if the given value is not nil.
func (_c *LearnerRecordCreate) SetNillableParentEmail(v *string) *LearnerRecordCreate {
	if v != nil {
		_c.SetParentEmail(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *LearnerRecordCreate) SetContext(v map[string]interface{}) *LearnerRecordCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearnerRecordCreate) SetUpdatedAt(v time.Time) *LearnerRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearnerRecordCreate) SetNillableUpdatedAt(v *time.Time) *LearnerRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LearnerRecordMutation object of the builder.
func (_c *LearnerRecordCreate) Mutation() *LearnerRecordMutation {
	return _c.mutation
}

// Save creates the LearnerRecord in the database.
func (_c *LearnerRecordCreate) Save(ctx context.Context) (*LearnerRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerRecordCreate) SaveX(ctx context.Context) *LearnerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerRecordCreate) defaults() {
	if _, ok := _c.mutation.PreferredLanguage(); !ok {
		v := learnerrecord.DefaultPreferredLanguage
		_c.mutation.SetPreferredLanguage(v)
	}
	if _, ok := _c.mutation.LearningLevel(); !ok {
		v := learnerrecord.DefaultLearningLevel
		_c.mutation.SetLearningLevel(v)
	}
	if _, ok := _c.mutation.ParentName(); !ok {
		v := learnerrecord.DefaultParentName
		_c.mutation.SetParentName(v)
	}
	if _, ok := _c.mutation.ParentEmail(); !ok {
		v := learnerrecord.DefaultParentEmail
		_c.mutation.SetParentEmail(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learnerrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerRecordCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "LearnerRecord.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := learnerrecord.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LearnerRecord.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Age(); !ok {
		return &ValidationError{Name: "age", err: errors.New(`ent: missing required field "LearnerRecord.age"`)}
	}
	if v, ok := _c.mutation.Age(); ok {
		if err := learnerrecord.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "LearnerRecord.age": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreferredLanguage(); !ok {
		return &ValidationError{Name: "preferred_language", err: errors.New(`ent: missing required field "LearnerRecord.preferred_language"`)}
	}
	if _, ok := _c.mutation.LearningLevel(); !ok {
		return &ValidationError{Name: "learning_level", err: errors.New(`ent: missing required field "LearnerRecord.learning_level"`)}
	}
	if _, ok := _c.mutation.ParentName(); !ok {
		return &ValidationError{Name: "parent_name", err: errors.New(`ent: missing required field "LearnerRecord.parent_name"`)}
	}
	if _, ok := _c.mutation.ParentEmail(); !ok {
		return &ValidationError{Name: "parent_email", err: errors.New(`ent: missing required field "LearnerRecord.parent_email"`)}
	}
	if _, ok := _c.mutation.Context(); !ok {
		return &ValidationError{Name: "context", err: errors.New(`ent: missing required field "LearnerRecord.context"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearnerRecord.updated_at"`)}
	}
	return nil
}

func (_c *LearnerRecordCreate) sqlSave(ctx context.Context) (*LearnerRecord, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearnerRecordCreate) createSpec() (*LearnerRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnerrecord.Table, sqlgraph.NewFieldSpec(learnerrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(learnerrecord.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Age(); ok {
		_spec.SetField(learnerrecord.FieldAge, field.TypeInt, value)
		_node.Age = value
	}
	if value, ok := _c.mutation.PreferredLanguage(); ok {
		_spec.SetField(learnerrecord.FieldPreferredLanguage, field.TypeString, value)
		_node.PreferredLanguage = value
	}
	if value, ok := _c.mutation.LearningLevel(); ok {
		_spec.SetField(learnerrecord.FieldLearningLevel, field.TypeString, value)
		_node.LearningLevel = value
	}
	if value, ok := _c.mutation.ParentName(); ok {
		_spec.SetField(learnerrecord.FieldParentName, field.TypeString, value)
		_node.ParentName = value
	}
	if value, ok := _c.mutation.ParentEmail(); ok {
		_spec.SetField(learnerrecord.FieldParentEmail, field.TypeString, value)
		_node.ParentEmail = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(learnerrecord.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearnerRecordCreateBulk is the builder for creating many LearnerRecord entities in bulk.
type LearnerRecordCreateBulk struct {
	config
	err      error
	builders []*LearnerRecordCreate
}

// Save creates the LearnerRecord entities in the database.
func (_c *LearnerRecordCreateBulk) Save(ctx context.Context) ([]*LearnerRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerRecordMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *LearnerRecordCreateBulk) SaveX(ctx context.Context) []*LearnerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
