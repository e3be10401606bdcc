//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package share

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Fr is the shared-value wrapper over the BLS12-377 scalar field.
type Fr struct {
	Value  fr.Element
	Shared bool
}

// FrFromPublic wraps a value both parties hold identically.
func FrFromPublic(v fr.Element) Fr {
	return Fr{Value: v, Shared: false}
}

// FrFromShared wraps this party's additive summand of a secret value.
func FrFromShared(v fr.Element) Fr {
	return Fr{Value: v, Shared: true}
}

// FrZero is the public additive identity.
func FrZero() Fr {
	var z fr.Element
	return FrFromPublic(z)
}

// FrOne is the public multiplicative identity.
func FrOne() Fr {
	var z fr.Element
	z.SetOne()
	return FrFromPublic(z)
}

// FrFromUint64 wraps a small public integer, the constructor generic
// downstream code reaches for when it needs a field element built
// from a plain Go integer.
func FrFromUint64(v uint64) Fr {
	var z fr.Element
	z.SetUint64(v)
	return FrFromPublic(z)
}

// Add combines two values according to their sharing tags: summing
// two same-tag operands locally, and folding a public operand into a
// shared one without either party double-counting it (see the
// asymmetric branch below).
func (a Fr) Add(b Fr) Fr {
	switch {
	case a.Shared == b.Shared:
		var z fr.Element
		z.Add(&a.Value, &b.Value)
		return Fr{Value: z, Shared: a.Shared}
	case !a.Shared && b.Shared:
		// public + shared: only the first party absorbs the public
		// summand, or the reconstructed sum would double-count it.
		if amFirst() {
			var z fr.Element
			z.Add(&a.Value, &b.Value)
			return FrFromShared(z)
		}
		return FrFromShared(b.Value)
	default: // a.Shared && !b.Shared
		if amFirst() {
			var z fr.Element
			z.Add(&a.Value, &b.Value)
			return FrFromShared(z)
		}
		return FrFromShared(a.Value)
	}
}

// Sub mirrors Add, using the additive inverse of the public operand in
// the asymmetric case.
func (a Fr) Sub(b Fr) Fr {
	switch {
	case a.Shared == b.Shared:
		var z fr.Element
		z.Sub(&a.Value, &b.Value)
		return Fr{Value: z, Shared: a.Shared}
	case !a.Shared && b.Shared:
		if amFirst() {
			var z fr.Element
			z.Sub(&a.Value, &b.Value)
			return FrFromShared(z)
		}
		var neg fr.Element
		neg.Neg(&b.Value)
		return FrFromShared(neg)
	default:
		if amFirst() {
			var z fr.Element
			z.Sub(&a.Value, &b.Value)
			return FrFromShared(z)
		}
		return FrFromShared(a.Value)
	}
}

// Neg negates a public value; negating a share is just local
// negation of the summand (it commutes with the additive split), so
// it is always defined.
func (a Fr) Neg() Fr {
	var z fr.Element
	z.Neg(&a.Value)
	return Fr{Value: z, Shared: a.Shared}
}

// Mul multiplies according to the sharing tags: local for
// public×public, a linear per-share scale for public×shared, and the
// Beaver-triple protocol below for shared×shared.
func (a Fr) Mul(b Fr) Fr {
	switch {
	case !a.Shared && !b.Shared:
		var z fr.Element
		z.Mul(&a.Value, &b.Value)
		return FrFromPublic(z)
	case a.Shared && !b.Shared:
		var z fr.Element
		z.Mul(&a.Value, &b.Value)
		return FrFromShared(z)
	case !a.Shared && b.Shared:
		var z fr.Element
		z.Mul(&a.Value, &b.Value)
		return FrFromShared(z)
	default:
		return fieldMulShared(a, b)
	}
}

// Div is defined only when at least one operand is public; share-by-
// share division has no protocol in this kernel.
func (a Fr) Div(b Fr) (Fr, error) {
	if a.Shared && b.Shared {
		return Fr{}, errors.New("share: shared/shared field division is unimplemented")
	}
	var inv, z fr.Element
	inv.Inverse(&b.Value)
	z.Mul(&a.Value, &inv)
	return Fr{Value: z, Shared: resolveTag(a.Shared, b.Shared)}, nil
}

// Inverse is defined only on public operands.
func (a Fr) Inverse() (Fr, error) {
	if a.Shared {
		return Fr{}, errors.New("share: shared field inversion is unimplemented")
	}
	var z fr.Element
	z.Inverse(&a.Value)
	return FrFromPublic(z), nil
}

// Square is defined only on public operands.
func (a Fr) Square() (Fr, error) {
	if a.Shared {
		return Fr{}, errors.New("share: shared field squaring is unimplemented")
	}
	var z fr.Element
	z.Square(&a.Value)
	return FrFromPublic(z), nil
}

// IsZero panics on a shared value: comparing a summand to zero leaks
// information about the secret and is never the test a caller wants.
func (a Fr) IsZero() bool {
	if a.Shared {
		panic("share: IsZero called on a shared value")
	}
	return a.Value.IsZero()
}

// Equal panics unless both operands are public, for the same reason
// as IsZero.
func (a Fr) Equal(b Fr) bool {
	if a.Shared || b.Shared {
		panic("share: Equal called on a shared value")
	}
	return a.Value.Equal(&b.Value)
}

// Publicize opens a in place: exchanging and summing the local
// summand with the peer's, or a no-op if a is already public.
func (a Fr) Publicize() Fr {
	if !a.Shared {
		return a
	}
	remote := exchangeFr(a.Value)
	var sum fr.Element
	sum.Add(&a.Value, &remote)
	return FrFromPublic(sum)
}

// Bytes canonically serializes a, publicizing first: no share ever
// reaches the wire.
func (a Fr) Bytes() []byte {
	pub := a.Publicize()
	b := pub.Value.Bytes()
	return b[:]
}

// FrFromBytes deserializes a canonical encoding into a public value.
func FrFromBytes(b []byte) (Fr, error) {
	if len(b) != fr.Bytes {
		return Fr{}, errors.New("share: malformed field element encoding")
	}
	var v fr.Element
	v.SetBytes(b)
	return FrFromPublic(v), nil
}

// FrRandom samples a uniformly random public field element. The
// result is always tagged public — both parties' RNGs are assumed to
// agree, which suits non-interactive transcript-driven challenge
// sampling.
func FrRandom() (Fr, error) {
	var v fr.Element
	if _, err := v.SetRandom(); err != nil {
		return Fr{}, err
	}
	return FrFromPublic(v), nil
}

func exchangeFr(v fr.Element) fr.Element {
	ch := current().Channel
	out := v.Bytes()
	in := ch.Exchange(out[:])
	var remote fr.Element
	remote.SetBytes(in)
	return remote
}

// fieldMulShared is the field×field Beaver-triple kernel: mask both
// operands against a fresh triple, open the masks, and recombine so
// that the first party (and only the first party) adds back the
// cross term ε·δ it would otherwise double-count.
func fieldMulShared(a, b Fr) Fr {
	t := current().Source.FieldTriple()

	var maskedA, maskedB fr.Element
	maskedA.Add(&a.Value, &t.A)
	maskedB.Add(&b.Value, &t.B)

	eps := exchangeFr(maskedA)
	eps.Add(&eps, &maskedA)
	delta := exchangeFr(maskedB)
	delta.Add(&delta, &maskedB)

	var yEps, xDelta, z fr.Element
	yEps.Mul(&t.B, &eps)
	xDelta.Mul(&t.A, &delta)

	z.Set(&t.C)
	z.Sub(&z, &yEps)
	z.Sub(&z, &xDelta)

	if amFirst() {
		var epsDelta fr.Element
		epsDelta.Mul(&eps, &delta)
		z.Add(&z, &epsDelta)
	}
	return FrFromShared(z)
}
