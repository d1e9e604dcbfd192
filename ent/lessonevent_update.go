// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/totli/ent/lessonevent"
	"github.com/abhisek/totli/ent/predicate"
)

// LessonEventUpdate is the builder for updating LessonEvent entities.
type LessonEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonEventMutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdate) Where(ps ...predicate.LessonEvent) *LessonEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LessonEventUpdate) SetSessionID(v string) *LessonEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableSessionID(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LessonEventUpdate) SetSubject(v string) *LessonEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableSubject(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *LessonEventUpdate) SetLanguage(v string) *LessonEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableLanguage(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *LessonEventUpdate) SetLessonTitle(v string) *LessonEventUpdate {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableLessonTitle(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *LessonEventUpdate) SetSteps(v int) *LessonEventUpdate {
	_u.mutation.ResetSteps()
	_u.mutation.SetSteps(v)
	return _u
}

// SetNillableSteps sets the "steps" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableSteps(v *int) *LessonEventUpdate {
	if v != nil {
		_u.SetSteps(*v)
	}
	return _u
}

// AddSteps adds value to the "steps" field.
func (_u *LessonEventUpdate) AddSteps(v int) *LessonEventUpdate {
	_u.mutation.AddSteps(v)
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *LessonEventUpdate) SetFallback(v bool) *LessonEventUpdate {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableFallback(v *bool) *LessonEventUpdate {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdate) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessonevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := lessonevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := lessonevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonTitle(); ok {
		if err := lessonevent.LessonTitleValidator(v); err != nil {
			return &ValidationError{Name: "lesson_title", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_title": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lessonevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(lessonevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(lessonevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(lessonevent.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(lessonevent.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSteps(); ok {
		_spec.AddField(lessonevent.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(lessonevent.FieldFallback, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonEventUpdateOne is the builder for updating a single LessonEvent entity.
type LessonEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *LessonEventUpdateOne) SetSessionID(v string) *LessonEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableSessionID(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LessonEventUpdateOne) SetSubject(v string) *LessonEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableSubject(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *LessonEventUpdateOne) SetLanguage(v string) *LessonEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableLanguage(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *LessonEventUpdateOne) SetLessonTitle(v string) *LessonEventUpdateOne {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableLessonTitle(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *LessonEventUpdateOne) SetSteps(v int) *LessonEventUpdateOne {
	_u.mutation.ResetSteps()
	_u.mutation.SetSteps(v)
	return _u
}

// SetNillableSteps sets the "steps" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableSteps(v *int) *LessonEventUpdateOne {
	if v != nil {
		_u.SetSteps(*v)
	}
	return _u
}

// AddSteps adds value to the "steps" field.
func (_u *LessonEventUpdateOne) AddSteps(v int) *LessonEventUpdateOne {
	_u.mutation.AddSteps(v)
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *LessonEventUpdateOne) SetFallback(v bool) *LessonEventUpdateOne {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableFallback(v *bool) *LessonEventUpdateOne {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdateOne) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdateOne) Where(ps ...predicate.LessonEvent) *LessonEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonEventUpdateOne) Select(field string, fields ...string) *LessonEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonEvent entity.
func (_u *LessonEventUpdateOne) Save(ctx context.Context) (*LessonEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdateOne) SaveX(ctx context.Context) *LessonEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessonevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := lessonevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := lessonevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonTitle(); ok {
		if err := lessonevent.LessonTitleValidator(v); err != nil {
			return &ValidationError{Name: "lesson_title", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_title": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonevent.FieldID)
		for _, f := range fields {
			if !lessonevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lessonevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(lessonevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(lessonevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(lessonevent.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(lessonevent.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSteps(); ok {
		_spec.AddField(lessonevent.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(lessonevent.FieldFallback, field.TypeBool, value)
	}
	_node = &LessonEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
