//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package share

import (
	"errors"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
)

// GT is the shared-value wrapper over the pairing target group. Unlike
// Fr, G1, and G2, GT's ambient group operation for secret sharing is
// multiplication, not addition: pairing is bilinear, so
// e(a0+a1, b) = e(a0,b)·e(a1,b), and a GT value's two summands
// reconstruct by multiplying rather than summing; the pairing kernel
// below is written entirely in terms of the multiplicative group for
// exactly this reason.
type GT struct {
	Value  bls12377.GT
	Shared bool
}

// GTFromPublic wraps a target-group value both parties hold
// identically.
func GTFromPublic(v bls12377.GT) GT { return GT{Value: v, Shared: false} }

// GTFromShared wraps this party's multiplicative summand.
func GTFromShared(v bls12377.GT) GT { return GT{Value: v, Shared: true} }

// GTOne is the public multiplicative identity.
func GTOne() GT {
	var z bls12377.GT
	z.SetOne()
	return GTFromPublic(z)
}

// Mul combines two target-group values under the group's own
// multiplicative dispatch table: local when both are public, and when
// exactly one is shared only the first party multiplies in the public
// operand (the second keeps its share unchanged), since the shares
// reconstruct by multiplying. Shared×shared GT values never arise from
// a Beaver kernel directly in this module — they are only produced by
// Pairing below — so that case is left unimplemented rather than faked
// with a local plaintext multiply.
func (a GT) Mul(b GT) (GT, error) {
	switch {
	case a.Shared && b.Shared:
		return GT{}, errors.New("share: shared GT × shared GT has no kernel in this module")
	case a.Shared != b.Shared && !amFirst():
		if a.Shared {
			return a, nil
		}
		return b, nil
	default:
		var z bls12377.GT
		z.Mul(&a.Value, &b.Value)
		return GT{Value: z, Shared: resolveTag(a.Shared, b.Shared)}, nil
	}
}

// Inverse is defined only on a public operand.
func (a GT) Inverse() (GT, error) {
	if a.Shared {
		return GT{}, errors.New("share: shared GT inversion is unimplemented")
	}
	var z bls12377.GT
	z.Inverse(&a.Value)
	return GTFromPublic(z), nil
}

// Equal panics unless both operands are public.
func (a GT) Equal(b GT) bool {
	if a.Shared || b.Shared {
		panic("share: Equal called on a shared value")
	}
	return a.Value.Equal(&b.Value)
}

// Publicize opens a in place by exchanging and multiplying the local
// summand with the peer's — the multiplicative analogue of Fr/G1/G2's
// additive Publicize.
func (a GT) Publicize() GT {
	if !a.Shared {
		return a
	}
	remote := exchangeGT(a.Value)
	var product bls12377.GT
	product.Mul(&a.Value, &remote)
	return GTFromPublic(product)
}

// Bytes canonically serializes a, publicizing first.
func (a GT) Bytes() []byte {
	pub := a.Publicize()
	b := pub.Value.Bytes()
	return b[:]
}

func exchangeGT(v bls12377.GT) bls12377.GT {
	ch := current().Channel
	out := v.Bytes()
	in := ch.Exchange(out[:])
	var remote bls12377.GT
	if err := remote.SetBytes(in); err != nil {
		panic("share: malformed peer GT element: " + err.Error())
	}
	return remote
}

// Pairing computes e(a,b), dispatching on the sharing tags of its
// operands exactly like a binary multiplication: local when both are
// public, a local per-party pairing (no communication) when exactly
// one side is shared — since e(x,b) is a group homomorphism in x for
// fixed public b, each party's share can be paired independently and
// the product of the two results reconstructs e(a,b) — and the
// pairing Beaver kernel below when both are shared.
func Pairing(a G1, b G2) GT {
	switch {
	case !a.Shared && !b.Shared:
		return GTFromPublic(localPair(a.Value, b.Value))
	case a.Shared && !b.Shared:
		return GTFromShared(localPair(a.Value, b.Value))
	case !a.Shared && b.Shared:
		return GTFromShared(localPair(a.Value, b.Value))
	default:
		return pairingShared(a, b)
	}
}

func localPair(a bls12377.G1Jac, b bls12377.G2Jac) bls12377.GT {
	var aAff bls12377.G1Affine
	var bAff bls12377.G2Affine
	aAff.FromJacobian(&a)
	bAff.FromJacobian(&b)
	z, err := bls12377.Pair([]bls12377.G1Affine{aAff}, []bls12377.G2Affine{bAff})
	if err != nil {
		panic("share: pairing failed: " + err.Error())
	}
	return z
}

// pairingShared is the share×share pairing Beaver-triple kernel: it
// masks both operands against a fresh pairing triple, reconstructs
// both masks, and recombines multiplicatively, dividing out the
// cross terms e(ε,y) and e(x,δ) and — on the first party only — folding
// back in e(ε,δ), which both parties would otherwise drop entirely
// (the mirror image of the additive kernels' double-counted ε·δ).
func pairingShared(a G1, b G2) GT {
	t := current().Source.PairingTriple()

	var maskedA bls12377.G1Jac
	maskedA.Set(&a.Value)
	maskedA.AddAssign(jacFromAffineG1(&t.A))
	var maskedB bls12377.G2Jac
	maskedB.Set(&b.Value)
	maskedB.AddAssign(jacFromAffineG2(&t.B))

	eps := exchangeG1(maskedA)
	eps.AddAssign(&maskedA)
	delta := exchangeG2(maskedB)
	delta.AddAssign(&maskedB)

	var epsAff bls12377.G1Affine
	epsAff.FromJacobian(&eps)
	var deltaAff bls12377.G2Affine
	deltaAff.FromJacobian(&delta)

	eEpsY := mustPair(epsAff, t.B)
	eXDelta := mustPair(t.A, deltaAff)

	var eEpsYInv, eXDeltaInv bls12377.GT
	eEpsYInv.Inverse(&eEpsY)
	eXDeltaInv.Inverse(&eXDelta)

	z := t.C
	z.Mul(&z, &eEpsYInv)
	z.Mul(&z, &eXDeltaInv)

	if amFirst() {
		eEpsDelta := mustPair(epsAff, deltaAff)
		z.Mul(&z, &eEpsDelta)
	}
	return GTFromShared(z)
}

func jacFromAffineG1(a *bls12377.G1Affine) *bls12377.G1Jac {
	var j bls12377.G1Jac
	j.FromAffine(a)
	return &j
}

func jacFromAffineG2(a *bls12377.G2Affine) *bls12377.G2Jac {
	var j bls12377.G2Jac
	j.FromAffine(a)
	return &j
}

func mustPair(a bls12377.G1Affine, b bls12377.G2Affine) bls12377.GT {
	z, err := bls12377.Pair([]bls12377.G1Affine{a}, []bls12377.G2Affine{b})
	if err != nil {
		panic("share: pairing failed: " + err.Error())
	}
	return z
}
