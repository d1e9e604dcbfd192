// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/totli/ent/learnerrecord"
	"github.com/abhisek/totli/ent/predicate"
)

// LearnerRecordUpdate is the builder for updating LearnerRecord entities.
type LearnerRecordUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerRecordMutation
}

// Where appends a list predicates to the LearnerRecordUpdate builder.
func (_u *LearnerRecordUpdate) Where(ps ...predicate.LearnerRecord) *LearnerRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LearnerRecordUpdate) SetName(v string) *LearnerRecordUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LearnerRecordUpdate) SetNillableName(v *string) *LearnerRecordUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *LearnerRecordUpdate) SetAge(v int) *LearnerRecordUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *LearnerRecordUpdate) SetNillableAge(v *int) *LearnerRecordUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *LearnerRecordUpdate) AddAge(v int) *LearnerRecordUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// SetPreferredLanguage sets the "preferred_language" field.
func (_u *LearnerRecordUpdate) SetPreferredLanguage(v string) *LearnerRecordUpdate {
	_u.mutation.SetPreferredLanguage(v)
	return _u
}

// SetNillablePreferredLanguage sets the "preferred_language" field if the given value is not nil.
func (_u *LearnerRecordUpdate) SetNillablePreferredLanguage(v *string) *LearnerRecordUpdate {
	if v != nil {
		_u.SetPreferredLanguage(*v)
	}
	return _u
}

// SetLearningLevel sets the "learning_level" field.
func (_u *LearnerRecordUpdate) SetLearningLevel(v string) *LearnerRecordUpdate {
	_u.mutation.SetLearningLevel(v)
	return _u
}

// SetNillableLearningLevel sets the "learning_level" field if the given value is not nil.
func (_u *LearnerRecordUpdate) SetNillableLearningLevel(v *string) *LearnerRecordUpdate {
	if v != nil {
		_u.SetLearningLevel(*v)
	}
	return _u
}

// SetParentName sets the "parent_name" field.
func (_u *LearnerRecordUpdate) SetParentName(v string) *LearnerRecordUpdate {
	_u.mutation.SetParentName(v)
	return _u
}

// SetNillableParentName sets the "parent_name" field if the given value is not nil.
func (_u *LearnerRecordUpdate) SetNillableParentName(v *string) *LearnerRecordUpdate {
	if v != nil {
		_u.SetParentName(*v)
	}
	return _u
}

// SetParentEmail sets the "parent_email" field.
func (_u *LearnerRecordUpdate) SetParentEmail(v string) *LearnerRecordUpdate {
	_u.mutation.SetParentEmail(v)
	return _u
}

// SetNillableParentEmail sets the "parent_email" field if the given value is not nil.
func (_u *LearnerRecordUpdate) SetNillableParentEmail(v *string) *LearnerRecordUpdate {
	if v != nil {
		_u.SetParentEmail(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *LearnerRecordUpdate) SetContext(v map[string]interface{}) *LearnerRecordUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerRecordUpdate) SetUpdatedAt(v time.Time) *LearnerRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerRecordMutation object of the builder.
func (_u *LearnerRecordUpdate) Mutation() *LearnerRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerRecordUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := learnerrecord.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LearnerRecord.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := learnerrecord.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "LearnerRecord.age": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnerrecord.Table, learnerrecord.Columns, sqlgraph.NewFieldSpec(learnerrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(learnerrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(learnerrecord.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(learnerrecord.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreferredLanguage(); ok {
		_spec.SetField(learnerrecord.FieldPreferredLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningLevel(); ok {
		_spec.SetField(learnerrecord.FieldLearningLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentName(); ok {
		_spec.SetField(learnerrecord.FieldParentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentEmail(); ok {
		_spec.SetField(learnerrecord.FieldParentEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(learnerrecord.FieldContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerRecordUpdateOne is the builder for updating a single LearnerRecord entity.
type LearnerRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerRecordMutation
}

// SetName sets the "name" field.
func (_u *LearnerRecordUpdateOne) SetName(v string) *LearnerRecordUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LearnerRecordUpdateOne) SetNillableName(v *string) *LearnerRecordUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *LearnerRecordUpdateOne) SetAge(v int) *LearnerRecordUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *LearnerRecordUpdateOne) SetNillableAge(v *int) *LearnerRecordUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *LearnerRecordUpdateOne) AddAge(v int) *LearnerRecordUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// SetPreferredLanguage sets the "preferred_language" field.
func (_u *LearnerRecordUpdateOne) SetPreferredLanguage(v string) *LearnerRecordUpdateOne {
	_u.mutation.SetPreferredLanguage(v)
	return _u
}

// SetNillablePreferredLanguage sets the "preferred_language" field if the given value is not nil.
func (_u *LearnerRecordUpdateOne) SetNillablePreferredLanguage(v *string) *LearnerRecordUpdateOne {
	if v != nil {
		_u.SetPreferredLanguage(*v)
	}
	return _u
}

// SetLearningLevel sets the "learning_level" field.
func (_u *LearnerRecordUpdateOne) SetLearningLevel(v string) *LearnerRecordUpdateOne {
	_u.mutation.SetLearningLevel(v)
	return _u
}

// SetNillableLearningLevel sets the "learning_level" field if the given value is not nil.
func (_u *LearnerRecordUpdateOne) SetNillableLearningLevel(v *string) *LearnerRecordUpdateOne {
	if v != nil {
		_u.SetLearningLevel(*v)
	}
	return _u
}

// SetParentName sets the "parent_name" field.
func (_u *LearnerRecordUpdateOne) SetParentName(v string) *LearnerRecordUpdateOne {
	_u.mutation.SetParentName(v)
	return _u
}

// SetNillableParentName sets the "parent_name" field if the given value is not nil.
func (_u *LearnerRecordUpdateOne) SetNillableParentName(v *string) *LearnerRecordUpdateOne {
	if v != nil {
		_u.SetParentName(*v)
	}
	return _u
}

// SetParentEmail sets the "parent_email" field.
func (_u *LearnerRecordUpdateOne) SetParentEmail(v string) *LearnerRecordUpdateOne {
	_u.mutation.SetParentEmail(v)
	return _u
}

// SetNillableParentEmail sets the "parent_email" field if the given value is not nil.
func (_u *LearnerRecordUpdateOne) SetNillableParentEmail(v *string) *LearnerRecordUpdateOne {
	if v != nil {
		_u.SetParentEmail(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *LearnerRecordUpdateOne) SetContext(v map[string]interface{}) *LearnerRecordUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerRecordUpdateOne) SetUpdatedAt(v time.Time) *LearnerRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerRecordMutation object of the builder.
func (_u *LearnerRecordUpdateOne) Mutation() *LearnerRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerRecordUpdate builder.
func (_u *LearnerRecordUpdateOne) Where(ps ...predicate.LearnerRecord) *LearnerRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerRecordUpdateOne) Select(field string, fields ...string) *LearnerRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerRecord entity.
func (_u *LearnerRecordUpdateOne) Save(ctx context.Context) (*LearnerRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerRecordUpdateOne) SaveX(ctx context.Context) *LearnerRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := learnerrecord.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LearnerRecord.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := learnerrecord.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "LearnerRecord.age": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerRecordUpdateOne) sqlSave(ctx context.Context) (_node *LearnerRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnerrecord.Table, learnerrecord.Columns, sqlgraph.NewFieldSpec(learnerrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnerrecord.FieldID)
		for _, f := range fields {
			if !learnerrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnerrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(learnerrecord.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(learnerrecord.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(learnerrecord.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreferredLanguage(); ok {
		_spec.SetField(learnerrecord.FieldPreferredLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningLevel(); ok {
		_spec.SetField(learnerrecord.FieldLearningLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentName(); ok {
		_spec.SetField(learnerrecord.FieldParentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentEmail(); ok {
		_spec.SetField(learnerrecord.FieldParentEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(learnerrecord.FieldContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearnerRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
