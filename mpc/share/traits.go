//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// This file collects the downstream arithmetic trait surface: the
// interfaces generic cryptographic client code (FFT, Merkle, FRI,
// provers) compiles against so it can run over shared values
// unchanged. Fr, Fq, G1, G2, and GT each implement MpcWire. No type
// implements FFTField or PrimeField: their operations are provided as
// package-level functions in fft.go.
package share

// MpcWire is the marker capability generic code uses to check the
// sharing state of a value of otherwise-unknown wrapper shape — the
// common denominator across Fr, G1, G2, and GT, each of which defines
// its own concretely-typed Publicize returning its own type (Go's
// generics cannot express "a method returning the implementing type"
// the way the downstream Rust trait does, so MpcWire only carries the
// capability client code actually branches on).
type MpcWire interface {
	// IsShared reports whether the value still needs opening.
	IsShared() bool
}

// IsShared implements MpcWire for Fr.
func (a Fr) IsShared() bool { return a.Shared }

// IsShared implements MpcWire for G1.
func (a G1) IsShared() bool { return a.Shared }

// IsShared implements MpcWire for G2.
func (a G2) IsShared() bool { return a.Shared }

// IsShared implements MpcWire for GT.
func (a GT) IsShared() bool { return a.Shared }

// IsShared implements MpcWire for Fq.
func (a Fq) IsShared() bool { return a.Shared }

// FFTField is the capability the Fft computation needs: a two-adic
// root of unity and the field's multiplicative generator, both
// forwarded to the underlying field and wrapped public — FFT operates
// on the additive shares directly since it is linear, so the roots of
// unity it multiplies by are never themselves shared.
type FFTField interface {
	// TwoAdicRootOfUnity returns a primitive 2^logOrder-th root of
	// unity, wrapped public.
	TwoAdicRootOfUnity(logOrder uint64) (Fr, error)
	// MultiplicativeGenerator returns the field's generator, public.
	MultiplicativeGenerator() Fr
}

// PrimeField is the from_repr/into_repr capability the wrapper
// forwards unchanged to the underlying field.
type PrimeField interface {
	FromRepr(limbs [4]uint64) Fr
	IntoRepr(Fr) [4]uint64
}

// Unimplemented operations the underlying algebra library's trait
// surface requires but this repository's demonstration circuits never
// exercise. They are intentionally absent from Fr/G1/G2/GT rather
// than defined as silent local-plaintext shortcuts, which would leak
// shares:
//   - Legendre symbol, square roots, and Frobenius on Fr/Fq/Fq2.
//   - Batch normalization of projective curve coordinates.
//   - Cofactor clearing and from_random_bytes on G1/G2.
//   - product_of_pairings, as opposed to the single-pair Pairing
//     kernel this module implements.
// A caller that reaches one of these through generic client code must
// add a real implementation before that path is exercised; calling
// the absent method is a compile error here rather than a runtime
// panic, which is the strongest form of "do not silently define this
// as local plaintext arithmetic."
