// Code generated by ent, DO NOT EDIT.

package learnerrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/totli/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldName, v))
}

// Age applies equality check predicate on the "age" field. It's identical to AgeEQ.
func Age(v int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldAge, v))
}

// PreferredLanguage applies equality check predicate on the "preferred_language" field. It's identical to PreferredLanguageEQ.
func PreferredLanguage(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldPreferredLanguage, v))
}

// LearningLevel applies equality check predicate on the "learning_level" field. It's identical to LearningLevelEQ.
func LearningLevel(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldLearningLevel, v))
}

// ParentName applies equality check predicate on the "parent_name" field. It's identical to ParentNameEQ.
func ParentName(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldParentName, v))
}

// ParentEmail applies equality check predicate on the "parent_email" field. It's identical to ParentEmailEQ.
func ParentEmail(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldParentEmail, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldContainsFold(FieldName, v))
}

// AgeEQ applies the EQ predicate on the "age" field.
func AgeEQ(v int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldAge, v))
}

// AgeNEQ applies the NEQ predicate on the "age" field.
func AgeNEQ(v int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNEQ(FieldAge, v))
}

// AgeIn applies the In predicate on the "age" field.
func AgeIn(vs ...int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldIn(FieldAge, vs...))
}

// AgeNotIn applies the NotIn predicate on the "age" field.
func AgeNotIn(vs ...int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNotIn(FieldAge, vs...))
}

// AgeGT applies the GT predicate on the "age" field.
func AgeGT(v int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGT(FieldAge, v))
}

// AgeGTE applies the GTE predicate on the "age" field.
func AgeGTE(v int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGTE(FieldAge, v))
}

// AgeLT applies the LT predicate on the "age" field.
func AgeLT(v int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLT(FieldAge, v))
}

// AgeLTE applies the LTE predicate on the "age" field.
func AgeLTE(v int) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLTE(FieldAge, v))
}

// PreferredLanguageEQ applies the EQ predicate on the "preferred_language" field.
func PreferredLanguageEQ(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldPreferredLanguage, v))
}

// PreferredLanguageNEQ applies the NEQ predicate on the "preferred_language" field.
func PreferredLanguageNEQ(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNEQ(FieldPreferredLanguage, v))
}

// PreferredLanguageIn applies the In predicate on the "preferred_language" field.
func PreferredLanguageIn(vs ...string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldIn(FieldPreferredLanguage, vs...))
}

// PreferredLanguageNotIn applies the NotIn predicate on the "preferred_language" field.
func PreferredLanguageNotIn(vs ...string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNotIn(FieldPreferredLanguage, vs...))
}

// PreferredLanguageGT applies the GT predicate on the "preferred_language" field.
func PreferredLanguageGT(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGT(FieldPreferredLanguage, v))
}

// PreferredLanguageGTE applies the GTE predicate on the "preferred_language" field.
func PreferredLanguageGTE(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGTE(FieldPreferredLanguage, v))
}

// PreferredLanguageLT applies the LT predicate on the "preferred_language" field.
func PreferredLanguageLT(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLT(FieldPreferredLanguage, v))
}

// PreferredLanguageLTE applies the LTE predicate on the "preferred_language" field.
func PreferredLanguageLTE(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLTE(FieldPreferredLanguage, v))
}

// PreferredLanguageContains applies the Contains predicate on the "preferred_language" field.
func PreferredLanguageContains(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldContains(FieldPreferredLanguage, v))
}

// PreferredLanguageHasPrefix applies the HasPrefix predicate on the "preferred_language" field.
func PreferredLanguageHasPrefix(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldHasPrefix(FieldPreferredLanguage, v))
}

// PreferredLanguageHasSuffix applies the HasSuffix predicate on the "preferred_language" field.
func PreferredLanguageHasSuffix(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldHasSuffix(FieldPreferredLanguage, v))
}

// PreferredLanguageEqualFold applies the EqualFold predicate on the "preferred_language" field.
func PreferredLanguageEqualFold(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEqualFold(FieldPreferredLanguage, v))
}

// PreferredLanguageContainsFold applies the ContainsFold predicate on the "preferred_language" field.
func PreferredLanguageContainsFold(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldContainsFold(FieldPreferredLanguage, v))
}

// LearningLevelEQ applies the EQ predicate on the "learning_level" field.
func LearningLevelEQ(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldLearningLevel, v))
}

// LearningLevelNEQ applies the NEQ predicate on the "learning_level" field.
func LearningLevelNEQ(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNEQ(FieldLearningLevel, v))
}

// LearningLevelIn applies the In predicate on the "learning_level" field.
func LearningLevelIn(vs ...string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldIn(FieldLearningLevel, vs...))
}

// LearningLevelNotIn applies the NotIn predicate on the "learning_level" field.
func LearningLevelNotIn(vs ...string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNotIn(FieldLearningLevel, vs...))
}

// LearningLevelGT applies the GT predicate on the "learning_level" field.
func LearningLevelGT(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGT(FieldLearningLevel, v))
}

// LearningLevelGTE applies the GTE predicate on the "learning_level" field.
func LearningLevelGTE(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGTE(FieldLearningLevel, v))
}

// LearningLevelLT applies the LT predicate on the "learning_level" field.
func LearningLevelLT(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLT(FieldLearningLevel, v))
}

// LearningLevelLTE applies the LTE predicate on the "learning_level" field.
func LearningLevelLTE(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLTE(FieldLearningLevel, v))
}

// LearningLevelContains applies the Contains predicate on the "learning_level" field.
func LearningLevelContains(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldContains(FieldLearningLevel, v))
}

// LearningLevelHasPrefix applies the HasPrefix predicate on the "learning_level" field.
func LearningLevelHasPrefix(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldHasPrefix(FieldLearningLevel, v))
}

// LearningLevelHasSuffix applies the HasSuffix predicate on the "learning_level" field.
func LearningLevelHasSuffix(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldHasSuffix(FieldLearningLevel, v))
}

// LearningLevelEqualFold applies the EqualFold predicate on the "learning_level" field.
func LearningLevelEqualFold(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEqualFold(FieldLearningLevel, v))
}

// LearningLevelContainsFold applies the ContainsFold predicate on the "learning_level" field.
func LearningLevelContainsFold(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldContainsFold(FieldLearningLevel, v))
}

// ParentNameEQ applies the EQ predicate on the "parent_name" field.
func ParentNameEQ(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldParentName, v))
}

// ParentNameNEQ applies the NEQ predicate on the "parent_name" field.
func ParentNameNEQ(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNEQ(FieldParentName, v))
}

// ParentNameIn applies the In predicate on the "parent_name" field.
func ParentNameIn(vs ...string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldIn(FieldParentName, vs...))
}

// ParentNameNotIn applies the NotIn predicate on the "parent_name" field.
func ParentNameNotIn(vs ...string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNotIn(FieldParentName, vs...))
}

// ParentNameGT applies the GT predicate on the "parent_name" field.
func ParentNameGT(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGT(FieldParentName, v))
}

// ParentNameGTE applies the GTE predicate on the "parent_name" field.
func ParentNameGTE(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGTE(FieldParentName, v))
}

// ParentNameLT applies the LT predicate on the "parent_name" field.
func ParentNameLT(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLT(FieldParentName, v))
}

// ParentNameLTE applies the LTE predicate on the "parent_name" field.
func ParentNameLTE(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLTE(FieldParentName, v))
}

// ParentNameContains applies the Contains predicate on the "parent_name" field.
func ParentNameContains(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldContains(FieldParentName, v))
}

// ParentNameHasPrefix applies the HasPrefix predicate on the "parent_name" field.
func ParentNameHasPrefix(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldHasPrefix(FieldParentName, v))
}

// ParentNameHasSuffix applies the HasSuffix predicate on the "parent_name" field.
func ParentNameHasSuffix(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldHasSuffix(FieldParentName, v))
}

// ParentNameEqualFold applies the EqualFold predicate on the "parent_name" field.
func ParentNameEqualFold(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEqualFold(FieldParentName, v))
}

// ParentNameContainsFold applies the ContainsFold predicate on the "parent_name" field.
func ParentNameContainsFold(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldContainsFold(FieldParentName, v))
}

// ParentEmailEQ applies the EQ predicate on the "parent_email" field.
func ParentEmailEQ(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldParentEmail, v))
}

// ParentEmailNEQ applies the NEQ predicate on the "parent_email" field.
func ParentEmailNEQ(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNEQ(FieldParentEmail, v))
}

// ParentEmailIn applies the In predicate on the "parent_email" field.
func ParentEmailIn(vs ...string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldIn(FieldParentEmail, vs...))
}

// ParentEmailNotIn applies the NotIn predicate on the "parent_email" field.
func ParentEmailNotIn(vs ...string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNotIn(FieldParentEmail, vs...))
}

// ParentEmailGT applies the GT predicate on the "parent_email" field.
func ParentEmailGT(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGT(FieldParentEmail, v))
}

// ParentEmailGTE applies the GTE predicate on the "parent_email" field.
func ParentEmailGTE(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGTE(FieldParentEmail, v))
}

// ParentEmailLT applies the LT predicate on the "parent_email" field.
func ParentEmailLT(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLT(FieldParentEmail, v))
}

// ParentEmailLTE applies the LTE predicate on the "parent_email" field.
func ParentEmailLTE(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLTE(FieldParentEmail, v))
}

// ParentEmailContains applies the Contains predicate on the "parent_email" field.
func ParentEmailContains(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldContains(FieldParentEmail, v))
}

// ParentEmailHasPrefix applies the HasPrefix predicate on the "parent_email" field.
func ParentEmailHasPrefix(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldHasPrefix(FieldParentEmail, v))
}

// ParentEmailHasSuffix applies the HasSuffix predicate on the "parent_email" field.
func ParentEmailHasSuffix(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldHasSuffix(FieldParentEmail, v))
}

// ParentEmailEqualFold applies the EqualFold predicate on the "parent_email" field.
func ParentEmailEqualFold(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEqualFold(FieldParentEmail, v))
}

// ParentEmailContainsFold applies the ContainsFold predicate on the "parent_email" field.
func ParentEmailContainsFold(v string) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldContainsFold(FieldParentEmail, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnerRecord) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnerRecord) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnerRecord) predicate.LearnerRecord {
	return predicate.LearnerRecord(sql.NotPredicates(p))
}
