// Package submission models the installment form: the editable draft, its
// validation, the derived installment and the persisted submission log.
//
// The log lives in a single storage slot as a JSON array. Every write replaces
// the whole array; a payload that does not decode to well-formed submissions
// is reported as ErrCorruptLog and never repaired field by field.
package submission
