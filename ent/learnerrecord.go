// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/totli/ent/learnerrecord"
)

// LearnerRecord is the model entity for the LearnerRecord schema.
type LearnerRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Child's name
	Name string `json:"name,omitempty"`
	// Child's age in years
	Age int `json:"age,omitempty"`
	// Language lessons are delivered in
	PreferredLanguage string `json:"preferred_language,omitempty"`
	// beginner, intermediate, or advanced
	LearningLevel string `json:"learning_level,omitempty"`
	// Guardian's name
	ParentName string `json:"parent_name,omitempty"`
	// Guardian's email
	ParentEmail string `json:"parent_email,omitempty"`
	// AdaptiveContext: previous lessons, strengths, weaknesses, progress
	Context map[string]interface{} `json:"context,omitempty"`
	// Last mutation time
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnerRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnerrecord.FieldContext:
			values[i] = new([]byte)
		case learnerrecord.FieldID, learnerrecord.FieldAge:
			values[i] = new(sql.NullInt64)
		case learnerrecord.FieldName, learnerrecord.FieldPreferredLanguage, learnerrecord.FieldLearningLevel, learnerrecord.FieldParentName, learnerrecord.FieldParentEmail:
			values[i] = new(sql.NullString)
		case learnerrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnerRecord fields.
func (_m *LearnerRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnerrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learnerrecord.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case learnerrecord.FieldAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field age", values[i])
			} else if value.Valid {
				_m.Age = int(value.Int64)
			}
		case learnerrecord.FieldPreferredLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_language", values[i])
			} else if value.Valid {
				_m.PreferredLanguage = value.String
			}
		case learnerrecord.FieldLearningLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_level", values[i])
			} else if value.Valid {
				_m.LearningLevel = value.String
			}
		case learnerrecord.FieldParentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_name", values[i])
			} else if value.Valid {
				_m.ParentName = value.String
			}
		case learnerrecord.FieldParentEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_email", values[i])
			} else if value.Valid {
				_m.ParentEmail = value.String
			}
		case learnerrecord.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		case learnerrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnerRecord.
// This includes values selected through modifiers, order, etc.
func (_m *LearnerRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnerRecord.
// Note that you need to call LearnerRecord.Unwrap() before calling this method if this LearnerRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnerRecord) Update() *LearnerRecordUpdateOne {
	return NewLearnerRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnerRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnerRecord) Unwrap() *LearnerRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnerRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnerRecord) String() string {
	var builder strings.Builder
	builder.WriteString("LearnerRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("age=")
	builder.WriteString(fmt.Sprintf("%v", _m.Age))
	builder.WriteString(", ")
	builder.WriteString("preferred_language=")
	builder.WriteString(_m.PreferredLanguage)
	builder.WriteString(", ")
	builder.WriteString("learning_level=")
	builder.WriteString(_m.LearningLevel)
	builder.WriteString(", ")
	builder.WriteString("parent_name=")
	builder.WriteString(_m.ParentName)
	builder.WriteString(", ")
	builder.WriteString("parent_email=")
	builder.WriteString(_m.ParentEmail)
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearnerRecords is a parsable slice of LearnerRecord.
type LearnerRecords []*LearnerRecord
