// Code generated by ent, DO NOT EDIT.

package merchantmapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/spendsync/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldLTE(FieldID, id))
}

// Merchant applies equality check predicate on the "merchant" field. It's identical to MerchantEQ.
func Merchant(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldEQ(FieldMerchant, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldEQ(FieldCategory, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// MerchantEQ applies the EQ predicate on the "merchant" field.
func MerchantEQ(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldEQ(FieldMerchant, v))
}

// MerchantNEQ applies the NEQ predicate on the "merchant" field.
func MerchantNEQ(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldNEQ(FieldMerchant, v))
}

// MerchantIn applies the In predicate on the "merchant" field.
func MerchantIn(vs ...string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldIn(FieldMerchant, vs...))
}

// MerchantNotIn applies the NotIn predicate on the "merchant" field.
func MerchantNotIn(vs ...string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldNotIn(FieldMerchant, vs...))
}

// MerchantGT applies the GT predicate on the "merchant" field.
func MerchantGT(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldGT(FieldMerchant, v))
}

// MerchantGTE applies the GTE predicate on the "merchant" field.
func MerchantGTE(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldGTE(FieldMerchant, v))
}

// MerchantLT applies the LT predicate on the "merchant" field.
func MerchantLT(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldLT(FieldMerchant, v))
}

// MerchantLTE applies the LTE predicate on the "merchant" field.
func MerchantLTE(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldLTE(FieldMerchant, v))
}

// MerchantContains applies the Contains predicate on the "merchant" field.
func MerchantContains(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldContains(FieldMerchant, v))
}

// MerchantHasPrefix applies the HasPrefix predicate on the "merchant" field.
func MerchantHasPrefix(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldHasPrefix(FieldMerchant, v))
}

// MerchantHasSuffix applies the HasSuffix predicate on the "merchant" field.
func MerchantHasSuffix(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldHasSuffix(FieldMerchant, v))
}

// MerchantEqualFold applies the EqualFold predicate on the "merchant" field.
func MerchantEqualFold(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldEqualFold(FieldMerchant, v))
}

// MerchantContainsFold applies the ContainsFold predicate on the "merchant" field.
func MerchantContainsFold(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldContainsFold(FieldMerchant, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldContainsFold(FieldCategory, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MerchantMapping) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MerchantMapping) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MerchantMapping) predicate.MerchantMapping {
	return predicate.MerchantMapping(sql.NotPredicates(p))
}
