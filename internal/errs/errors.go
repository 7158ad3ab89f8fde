// Package errs defines the core error taxonomy shared by the sdd, order and
// hom packages: Top (incompatible SDD shapes), order lookup/build errors,
// evaluation-contract violations, and configuration errors.
package errs

import "github.com/pkg/errors"

// Top is raised when two SDDs of incompatible shape are combined: different
// depths, or mismatched variables at the same depth.
var Top = errors.New("top: incompatible sdd shapes")

// OrderErrNotFound is raised when a query names an identifier absent from
// the order.
var OrderErrNotFound = errors.New("order: identifier not found")

// OrderErrDuplicate is raised by the order builder when an identifier is
// pushed more than once.
var OrderErrDuplicate = errors.New("order: duplicate identifier")

// OrderErrEmpty is raised when head/variable/identifier/next/nested is
// called on an empty order.
var OrderErrEmpty = errors.New("order: operation on empty order")

// Evaluation is raised when an inductive operator violates its contract,
// e.g. declaring Skip(v) true but returning a non-Id homomorphism.
var Evaluation = errors.New("evaluation: inductive operator violated its contract")

// Config is raised at manager construction when an option is invalid.
var Config = errors.New("config: invalid manager configuration")

// WrapTop annotates Top with context about the offending operands.
func WrapTop(format string, args ...interface{}) error {
	return errors.Wrapf(Top, format, args...)
}

// WrapNotFound annotates OrderErrNotFound with the identifier that was
// missing.
func WrapNotFound(format string, args ...interface{}) error {
	return errors.Wrapf(OrderErrNotFound, format, args...)
}

// WrapDuplicate annotates OrderErrDuplicate with the offending identifier.
func WrapDuplicate(format string, args ...interface{}) error {
	return errors.Wrapf(OrderErrDuplicate, format, args...)
}

// WrapEvaluation annotates Evaluation with which operator/contract failed.
func WrapEvaluation(format string, args ...interface{}) error {
	return errors.Wrapf(Evaluation, format, args...)
}

// WrapConfig annotates Config with the invalid field.
func WrapConfig(format string, args ...interface{}) error {
	return errors.Wrapf(Config, format, args...)
}
