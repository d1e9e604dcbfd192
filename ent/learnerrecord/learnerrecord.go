// Code generated by ent, DO NOT EDIT.

package learnerrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnerrecord type in the database.
	Label = "learner_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAge holds the string denoting the age field in the database.
	FieldAge = "age"
	// FieldPreferredLanguage holds the string denoting the preferred_language field in the database.
	FieldPreferredLanguage = "preferred_language"
	// FieldLearningLevel holds the string denoting the learning_level field in the database.
	FieldLearningLevel = "learning_level"
	// FieldParentName holds the string denoting the parent_name field in the database.
	FieldParentName = "parent_name"
	// FieldParentEmail holds the string denoting the parent_email field in the database.
	FieldParentEmail = "parent_email"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learnerrecord in the database.
	Table = "learner_records"
)

// Columns holds all SQL columns for learnerrecord fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldAge,
	FieldPreferredLanguage,
	FieldLearningLevel,
	FieldParentName,
	FieldParentEmail,
	FieldContext,
	FieldUpdatedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// AgeValidator is a validator for the "age" field. It is called by the builders before save.
	AgeValidator func(int) error
	// DefaultPreferredLanguage holds the default value on creation for the "preferred_language" field.
	DefaultPreferredLanguage string
	// DefaultLearningLevel holds the default value on creation for the "learning_level" field.
	DefaultLearningLevel string
	// DefaultParentName holds the default value on creation for the "parent_name" field.
	DefaultParentName string
	// DefaultParentEmail holds the default value on creation for the "parent_email" field.
	DefaultParentEmail string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LearnerRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAge orders the results by the age field.
func ByAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAge, opts...).ToFunc()
}

// ByPreferredLanguage orders the results by the preferred_language field.
func ByPreferredLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredLanguage, opts...).ToFunc()
}

// ByLearningLevel orders the results by the learning_level field.
func ByLearningLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningLevel, opts...).ToFunc()
}

// ByParentName orders the results by the parent_name field.
func ByParentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentName, opts...).ToFunc()
}

// ByParentEmail orders the results by the parent_email field.
func ByParentEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentEmail, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
