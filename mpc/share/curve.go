//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package share

import (
	"math/big"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

func frToBigInt(v fr.Element) *big.Int {
	var b big.Int
	v.BigInt(&b)
	return &b
}

// G1 is the shared-value wrapper over the source group G1.
type G1 struct {
	Value  bls12377.G1Jac
	Shared bool
}

// G2 is the shared-value wrapper over the source group G2.
type G2 struct {
	Value  bls12377.G2Jac
	Shared bool
}

// G1FromPublic wraps a G1 point both parties hold identically.
func G1FromPublic(v bls12377.G1Jac) G1 { return G1{Value: v, Shared: false} }

// G1FromShared wraps this party's additive summand of a secret point.
func G1FromShared(v bls12377.G1Jac) G1 { return G1{Value: v, Shared: true} }

// G2FromPublic is the G2 analogue of G1FromPublic.
func G2FromPublic(v bls12377.G2Jac) G2 { return G2{Value: v, Shared: false} }

// G2FromShared is the G2 analogue of G1FromShared.
func G2FromShared(v bls12377.G2Jac) G2 { return G2{Value: v, Shared: true} }

// G1Generator wraps the public prime-subgroup generator of G1.
func G1Generator() G1 {
	g1, _, _, _ := bls12377.Generators()
	return G1FromPublic(g1)
}

// G2Generator is the G2 analogue of G1Generator.
func G2Generator() G2 {
	_, g2, _, _ := bls12377.Generators()
	return G2FromPublic(g2)
}

// Add combines two points the same way Fr.Add combines field
// elements: local when tags agree, and the asymmetric
// first-party-absorbs-the-public-operand rule otherwise.
func (a G1) Add(b G1) G1 {
	switch {
	case a.Shared == b.Shared:
		var z bls12377.G1Jac
		z.Set(&a.Value)
		z.AddAssign(&b.Value)
		return G1{Value: z, Shared: a.Shared}
	case !a.Shared && b.Shared:
		if amFirst() {
			var z bls12377.G1Jac
			z.Set(&a.Value)
			z.AddAssign(&b.Value)
			return G1FromShared(z)
		}
		return G1FromShared(b.Value)
	default:
		if amFirst() {
			var z bls12377.G1Jac
			z.Set(&a.Value)
			z.AddAssign(&b.Value)
			return G1FromShared(z)
		}
		return G1FromShared(a.Value)
	}
}

// Sub mirrors Add using the point negation of the public operand.
func (a G1) Sub(b G1) G1 {
	var negB bls12377.G1Jac
	negB.Set(&b.Value)
	negB.Neg(&negB)
	return a.Add(G1{Value: negB, Shared: b.Shared})
}

// Neg negates a point; always local, shared or public, since
// negation commutes with the additive split.
func (a G1) Neg() G1 {
	var z bls12377.G1Jac
	z.Neg(&a.Value)
	return G1{Value: z, Shared: a.Shared}
}

// Mul implements curve-scalar multiplication's dispatch table:
// local for public curve × public scalar, a per-share linear scale
// when exactly one side is shared, and the curve-scalar Beaver
// kernel (g1MulShared below) when both are shared.
func (a G1) Mul(b Fr) G1 {
	switch {
	case !a.Shared && !b.Shared:
		var z bls12377.G1Jac
		z.ScalarMultiplication(&a.Value, frToBigInt(b.Value))
		return G1FromPublic(z)
	case a.Shared && !b.Shared:
		var z bls12377.G1Jac
		z.ScalarMultiplication(&a.Value, frToBigInt(b.Value))
		return G1FromShared(z)
	case !a.Shared && b.Shared:
		var z bls12377.G1Jac
		z.ScalarMultiplication(&a.Value, frToBigInt(b.Value))
		return G1FromShared(z)
	default:
		return g1MulShared(a, b)
	}
}

// IsZero panics on a shared value.
func (a G1) IsZero() bool {
	if a.Shared {
		panic("share: IsZero called on a shared value")
	}
	return a.Value.Equal(&bls12377.G1Jac{})
}

// Equal panics unless both operands are public.
func (a G1) Equal(b G1) bool {
	if a.Shared || b.Shared {
		panic("share: Equal called on a shared value")
	}
	return a.Value.Equal(&b.Value)
}

// Publicize opens a in place.
func (a G1) Publicize() G1 {
	if !a.Shared {
		return a
	}
	remote := exchangeG1(a.Value)
	var sum bls12377.G1Jac
	sum.Set(&a.Value)
	sum.AddAssign(&remote)
	return G1FromPublic(sum)
}

// Bytes canonically serializes a, publicizing first.
func (a G1) Bytes() []byte {
	pub := a.Publicize()
	var aff bls12377.G1Affine
	aff.FromJacobian(&pub.Value)
	b := aff.Bytes()
	return b[:]
}

func exchangeG1(v bls12377.G1Jac) bls12377.G1Jac {
	ch := current().Channel
	var aff bls12377.G1Affine
	aff.FromJacobian(&v)
	out := aff.Bytes()
	in := ch.Exchange(out[:])
	var remoteAff bls12377.G1Affine
	if _, err := remoteAff.SetBytes(in); err != nil {
		panic("share: malformed peer G1 point: " + err.Error())
	}
	var remote bls12377.G1Jac
	remote.FromAffine(&remoteAff)
	return remote
}

// g1MulShared is the curve×scalar Beaver-triple kernel: it masks both
// operands against a fresh triple, reconstructs the two masks (one a
// group element, one a field element), and recombines.
func g1MulShared(a G1, b Fr) G1 {
	t := current().Source.G1Triple()

	var maskedA bls12377.G1Jac
	maskedA.Set(&a.Value)
	maskedA.AddAssign(&t.A)
	var maskedB fr.Element
	maskedB.Add(&b.Value, &t.B)

	eps := exchangeG1(maskedA)
	eps.AddAssign(&maskedA)
	delta := exchangeFr(maskedB)
	delta.Add(&delta, &maskedB)

	var yEps, z bls12377.G1Jac
	yEps.ScalarMultiplication(&eps, frToBigInt(t.B))
	var xDelta bls12377.G1Jac
	xDelta.ScalarMultiplication(&t.A, frToBigInt(delta))

	z.Set(&t.C)
	jacSubG1(&z, &yEps)
	jacSubG1(&z, &xDelta)

	if amFirst() {
		var deltaEps bls12377.G1Jac
		deltaEps.ScalarMultiplication(&eps, frToBigInt(delta))
		z.AddAssign(&deltaEps)
	}
	return G1FromShared(z)
}

// jacSubG1 computes p -= q in place; gnark-crypto's Jacobian type
// exposes addition (AddAssign) and negation (Neg) but not a direct
// subtraction, so subtraction is addition of the negation.
func jacSubG1(p, q *bls12377.G1Jac) {
	var negQ bls12377.G1Jac
	negQ.Neg(q)
	p.AddAssign(&negQ)
}

// The remainder of this file repeats the G1 logic for G2, since
// gnark-crypto gives G1 and G2 distinct concrete types with no shared
// interface to dispatch through.

// Add is the G2 analogue of G1.Add.
func (a G2) Add(b G2) G2 {
	switch {
	case a.Shared == b.Shared:
		var z bls12377.G2Jac
		z.Set(&a.Value)
		z.AddAssign(&b.Value)
		return G2{Value: z, Shared: a.Shared}
	case !a.Shared && b.Shared:
		if amFirst() {
			var z bls12377.G2Jac
			z.Set(&a.Value)
			z.AddAssign(&b.Value)
			return G2FromShared(z)
		}
		return G2FromShared(b.Value)
	default:
		if amFirst() {
			var z bls12377.G2Jac
			z.Set(&a.Value)
			z.AddAssign(&b.Value)
			return G2FromShared(z)
		}
		return G2FromShared(a.Value)
	}
}

// Sub is the G2 analogue of G1.Sub.
func (a G2) Sub(b G2) G2 {
	var negB bls12377.G2Jac
	negB.Set(&b.Value)
	negB.Neg(&negB)
	return a.Add(G2{Value: negB, Shared: b.Shared})
}

// Neg is the G2 analogue of G1.Neg.
func (a G2) Neg() G2 {
	var z bls12377.G2Jac
	z.Neg(&a.Value)
	return G2{Value: z, Shared: a.Shared}
}

// Mul is the G2 analogue of G1.Mul.
func (a G2) Mul(b Fr) G2 {
	switch {
	case !a.Shared && !b.Shared:
		var z bls12377.G2Jac
		z.ScalarMultiplication(&a.Value, frToBigInt(b.Value))
		return G2FromPublic(z)
	case a.Shared && !b.Shared:
		var z bls12377.G2Jac
		z.ScalarMultiplication(&a.Value, frToBigInt(b.Value))
		return G2FromShared(z)
	case !a.Shared && b.Shared:
		var z bls12377.G2Jac
		z.ScalarMultiplication(&a.Value, frToBigInt(b.Value))
		return G2FromShared(z)
	default:
		return g2MulShared(a, b)
	}
}

// IsZero is the G2 analogue of G1.IsZero.
func (a G2) IsZero() bool {
	if a.Shared {
		panic("share: IsZero called on a shared value")
	}
	return a.Value.Equal(&bls12377.G2Jac{})
}

// Equal is the G2 analogue of G1.Equal.
func (a G2) Equal(b G2) bool {
	if a.Shared || b.Shared {
		panic("share: Equal called on a shared value")
	}
	return a.Value.Equal(&b.Value)
}

// Publicize is the G2 analogue of G1.Publicize.
func (a G2) Publicize() G2 {
	if !a.Shared {
		return a
	}
	remote := exchangeG2(a.Value)
	var sum bls12377.G2Jac
	sum.Set(&a.Value)
	sum.AddAssign(&remote)
	return G2FromPublic(sum)
}

// Bytes is the G2 analogue of G1.Bytes.
func (a G2) Bytes() []byte {
	pub := a.Publicize()
	var aff bls12377.G2Affine
	aff.FromJacobian(&pub.Value)
	b := aff.Bytes()
	return b[:]
}

func exchangeG2(v bls12377.G2Jac) bls12377.G2Jac {
	ch := current().Channel
	var aff bls12377.G2Affine
	aff.FromJacobian(&v)
	out := aff.Bytes()
	in := ch.Exchange(out[:])
	var remoteAff bls12377.G2Affine
	if _, err := remoteAff.SetBytes(in); err != nil {
		panic("share: malformed peer G2 point: " + err.Error())
	}
	var remote bls12377.G2Jac
	remote.FromAffine(&remoteAff)
	return remote
}

func g2MulShared(a G2, b Fr) G2 {
	t := current().Source.G2Triple()

	var maskedA bls12377.G2Jac
	maskedA.Set(&a.Value)
	maskedA.AddAssign(&t.A)
	var maskedB fr.Element
	maskedB.Add(&b.Value, &t.B)

	eps := exchangeG2(maskedA)
	eps.AddAssign(&maskedA)
	delta := exchangeFr(maskedB)
	delta.Add(&delta, &maskedB)

	var yEps, z bls12377.G2Jac
	yEps.ScalarMultiplication(&eps, frToBigInt(t.B))
	var xDelta bls12377.G2Jac
	xDelta.ScalarMultiplication(&t.A, frToBigInt(delta))

	z.Set(&t.C)
	jacSubG2(&z, &yEps)
	jacSubG2(&z, &xDelta)

	if amFirst() {
		var deltaEps bls12377.G2Jac
		deltaEps.ScalarMultiplication(&eps, frToBigInt(delta))
		z.AddAssign(&deltaEps)
	}
	return G2FromShared(z)
}

// jacSubG2 is the G2 analogue of jacSubG1.
func jacSubG2(p, q *bls12377.G2Jac) {
	var negQ bls12377.G2Jac
	negQ.Neg(q)
	p.AddAssign(&negQ)
}
