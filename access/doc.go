// Package access routes dot-separated path strings to fields of
// statically typed records.
//
// Each record type gets an immutable accessor Table: one entry per
// field, either a leaf (a primitive kind with read and write closures)
// or a nested record (a reference to the sub-record's own table). A
// table is built once, via the Builder or reflection-based Derive, and
// is thereafter shared read-only by any number of callers.
//
// Dispatch walks a parsed path left to right through tables, descending
// into nested records, and performs the get or set on the final leaf
// with kind checking:
//
//	cfg := Config{Motion: Motion{MaxVerticalVelocity: 30}, Version: "v1"}
//	err := access.Set(&cfg, "motion.max_vertical_velocity", value.Double(40))
//	got, err := access.Get(&cfg, "motion.max_vertical_velocity")
//
// Errors are typed (EmptyPathError, UnknownFieldError, PathTooLongError,
// TypeMismatchError, CannotAssignNestedError) and always leave the
// record unmodified. The package does no locking: a record being
// written concurrently needs whatever exclusivity the caller already
// uses for it.
package access
