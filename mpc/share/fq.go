//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package share

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fp"
)

// Fq is the shared-value wrapper over the BLS12-377 base field — the
// field curve coordinates themselves live in, as opposed to Fr's
// scalar field. Nothing in this module's protocol kernels multiplies
// two shared Fq values (the curve-point wrappers in curve.go work
// entirely in affine/Jacobian coordinates and never expose their raw
// coordinate field to callers), so Fq only carries the additive
// dispatch table every wrapper in this package defines; its
// multiplicative dispatch table stops at the public/shared linear
// case, same as GT's (gt.go).
type Fq struct {
	Value  fp.Element
	Shared bool
}

// FqFromPublic wraps a base-field value both parties hold identically.
func FqFromPublic(v fp.Element) Fq { return Fq{Value: v, Shared: false} }

// FqFromShared wraps this party's additive summand of a secret value.
func FqFromShared(v fp.Element) Fq { return Fq{Value: v, Shared: true} }

// Add combines two values the same way Fr.Add does.
func (a Fq) Add(b Fq) Fq {
	switch {
	case a.Shared == b.Shared:
		var z fp.Element
		z.Add(&a.Value, &b.Value)
		return Fq{Value: z, Shared: a.Shared}
	case !a.Shared && b.Shared:
		if amFirst() {
			var z fp.Element
			z.Add(&a.Value, &b.Value)
			return FqFromShared(z)
		}
		return FqFromShared(b.Value)
	default:
		if amFirst() {
			var z fp.Element
			z.Add(&a.Value, &b.Value)
			return FqFromShared(z)
		}
		return FqFromShared(a.Value)
	}
}

// Sub mirrors Add using the additive inverse of the public operand in
// the asymmetric case.
func (a Fq) Sub(b Fq) Fq {
	switch {
	case a.Shared == b.Shared:
		var z fp.Element
		z.Sub(&a.Value, &b.Value)
		return Fq{Value: z, Shared: a.Shared}
	case !a.Shared && b.Shared:
		if amFirst() {
			var z fp.Element
			z.Sub(&a.Value, &b.Value)
			return FqFromShared(z)
		}
		var neg fp.Element
		neg.Neg(&b.Value)
		return FqFromShared(neg)
	default:
		if amFirst() {
			var z fp.Element
			z.Sub(&a.Value, &b.Value)
			return FqFromShared(z)
		}
		return FqFromShared(a.Value)
	}
}

// Neg negates a value, shared or public; negation commutes with the
// additive split so it is always local.
func (a Fq) Neg() Fq {
	var z fp.Element
	z.Neg(&a.Value)
	return Fq{Value: z, Shared: a.Shared}
}

// Mul is defined for public×public and the public/shared linear scale;
// shared×shared has no Beaver source in this module (see the type doc
// comment above).
func (a Fq) Mul(b Fq) (Fq, error) {
	if a.Shared && b.Shared {
		return Fq{}, errors.New("share: shared Fq × shared Fq has no kernel in this module")
	}
	var z fp.Element
	z.Mul(&a.Value, &b.Value)
	return Fq{Value: z, Shared: resolveTag(a.Shared, b.Shared)}, nil
}

// Publicize opens a in place.
func (a Fq) Publicize() Fq {
	if !a.Shared {
		return a
	}
	remote := exchangeFq(a.Value)
	var sum fp.Element
	sum.Add(&a.Value, &remote)
	return FqFromPublic(sum)
}

// Bytes canonically serializes a, publicizing first.
func (a Fq) Bytes() []byte {
	pub := a.Publicize()
	b := pub.Value.Bytes()
	return b[:]
}

// FqFromBytes deserializes a canonical encoding into a public value.
func FqFromBytes(b []byte) (Fq, error) {
	if len(b) != fp.Bytes {
		return Fq{}, errors.New("share: malformed base field element encoding")
	}
	var v fp.Element
	v.SetBytes(b)
	return FqFromPublic(v), nil
}

func exchangeFq(v fp.Element) fp.Element {
	ch := current().Channel
	out := v.Bytes()
	in := ch.Exchange(out[:])
	var remote fp.Element
	remote.SetBytes(in)
	return remote
}
