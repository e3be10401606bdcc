//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package beaver supplies the correlated randomness ("triples") the
// multiplication kernels in mpc/share consume: for a relation
// a·b = c, each party holds a summand of a, b, and c such that the
// reconstructed values satisfy the relation. Three triple shapes
// exist, one per wire type the kernel layer multiplies: field×field,
// curve-scalar, and pairing.
//
// The Source in this package is a deterministic stub, grounded on
// original_source/src/mpc/channel.rs's Triple trait: the first party
// holds the all-ones triple share, the second the all-zeros share, so
// they reconstruct to the correct (but non-random) triple (1,1,1).
// A production deployment replaces Source with an offline
// OT-extension or homomorphic-encryption-based generator; the
// interface below is the stable seam that substitution plugs into.
package beaver

import (
	"math/big"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// FieldTriple is this party's share of (a, b, c) with a·b = c over Fr.
type FieldTriple struct {
	A, B, C fr.Element
}

// G1Triple is this party's share of a curve-scalar relation a·b = c
// with a, c in G1 and b in Fr.
type G1Triple struct {
	A bls12377.G1Jac
	B fr.Element
	C bls12377.G1Jac
}

// G2Triple is the G2 analogue of G1Triple.
type G2Triple struct {
	A bls12377.G2Jac
	B fr.Element
	C bls12377.G2Jac
}

// PairingTriple is this party's share of a pairing relation e(a,b)=c
// with a in G1, b in G2, c in the target group Gt.
type PairingTriple struct {
	A bls12377.G1Affine
	B bls12377.G2Affine
	C bls12377.GT
}

// Source produces one triple per call, each freshly correlated with
// its peer's call to the matching method.
type Source interface {
	FieldTriple() FieldTriple
	G1Triple() G1Triple
	G2Triple() G2Triple
	PairingTriple() PairingTriple
}

// Stub is the deterministic, non-random Source described above.
// First selects which half of the (1,1,1)/(0,0,0) split this party
// holds.
type Stub struct {
	First bool
}

// FieldTriple implements Source.
func (s Stub) FieldTriple() FieldTriple {
	if s.First {
		return FieldTriple{A: one(), B: one(), C: one()}
	}
	return FieldTriple{}
}

// G1Triple implements Source: scale the field triple's a and c shares
// by the G1 generator.
func (s Stub) G1Triple() G1Triple {
	ft := s.FieldTriple()
	g1, _, _, _ := bls12377.Generators()

	var a, c bls12377.G1Jac
	a.ScalarMultiplication(&g1, frToBigInt(ft.A))
	c.ScalarMultiplication(&g1, frToBigInt(ft.C))

	return G1Triple{A: a, B: ft.B, C: c}
}

// G2Triple is the G2 analogue of G1Triple.
func (s Stub) G2Triple() G2Triple {
	ft := s.FieldTriple()
	_, g2, _, _ := bls12377.Generators()

	var a, c bls12377.G2Jac
	a.ScalarMultiplication(&g2, frToBigInt(ft.A))
	c.ScalarMultiplication(&g2, frToBigInt(ft.C))

	return G2Triple{A: a, B: ft.B, C: c}
}

// PairingTriple implements Source: scale the G1/G2 generators by the
// field triple's a/b shares, and set this party's c share to the
// pairing of its fc share against the G2 generator.
func (s Stub) PairingTriple() PairingTriple {
	ft := s.FieldTriple()
	g1Jac, g2Jac, g1Aff, g2Aff := bls12377.Generators()
	_ = g1Jac
	_ = g2Jac

	var a bls12377.G1Affine
	var b bls12377.G2Affine
	a.ScalarMultiplication(&g1Aff, frToBigInt(ft.A))
	b.ScalarMultiplication(&g2Aff, frToBigInt(ft.B))

	var cPoint bls12377.G1Affine
	cPoint.ScalarMultiplication(&g1Aff, frToBigInt(ft.C))

	c, err := bls12377.Pair([]bls12377.G1Affine{cPoint}, []bls12377.G2Affine{g2Aff})
	if err != nil {
		panic("beaver: pairing triple construction failed: " + err.Error())
	}

	return PairingTriple{A: a, B: b, C: c}
}

func one() fr.Element {
	var v fr.Element
	v.SetOne()
	return v
}

func frToBigInt(v fr.Element) *big.Int {
	var b big.Int
	v.BigInt(&b)
	return &b
}
