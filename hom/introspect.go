package hom

import "github.com/gosdd/gosdd/order"

// AsFixpoint reports whether h is a Fixpoint and returns its operand.
func AsFixpoint[Id comparable](h Homomorphism[Id]) (Homomorphism[Id], bool) {
	d, ok := h.ref.Value().(fixpointData[Id])
	if !ok {
		return Homomorphism[Id]{}, false
	}
	return d.h, true
}

// AsSum reports whether h is a Sum and returns its operands.
func AsSum[Id comparable](h Homomorphism[Id]) ([]Homomorphism[Id], bool) {
	d, ok := h.ref.Value().(sumData[Id])
	if !ok {
		return nil, false
	}
	return d.operands, true
}

// AsLocal reports whether h is a Local and returns its target variable
// and inner homomorphism.
func AsLocal[Id comparable](h Homomorphism[Id]) (order.Variable, Homomorphism[Id], bool) {
	d, ok := h.ref.Value().(localData[Id])
	if !ok {
		return 0, Homomorphism[Id]{}, false
	}
	return d.v, d.h, true
}

// IsSaturationSum reports whether h is a SaturationSum, for tests and
// diagnostics that want to confirm the rewriter actually fired.
func IsSaturationSum[Id comparable](h Homomorphism[Id]) bool {
	_, ok := h.ref.Value().(saturationSumData[Id])
	return ok
}
