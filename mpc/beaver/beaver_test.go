//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package beaver

import (
	"testing"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"
)

func TestFieldTripleReconstructsToOne(t *testing.T) {
	first := Stub{First: true}.FieldTriple()
	second := Stub{First: false}.FieldTriple()

	var a, b, c fr.Element
	a.Add(&first.A, &second.A)
	b.Add(&first.B, &second.B)
	c.Add(&first.C, &second.C)

	var want fr.Element
	want.SetOne()

	require.True(t, a.Equal(&want))
	require.True(t, b.Equal(&want))
	require.True(t, c.Equal(&want))

	var product fr.Element
	product.Mul(&a, &b)
	require.True(t, product.Equal(&c))
}

func TestG1TripleReconstructsAndSatisfiesRelation(t *testing.T) {
	first := Stub{First: true}.G1Triple()
	second := Stub{First: false}.G1Triple()

	var a, c bls12377.G1Jac
	a.Set(&first.A)
	a.AddAssign(&second.A)
	c.Set(&first.C)
	c.AddAssign(&second.C)

	var b fr.Element
	b.Add(&first.B, &second.B)

	var got bls12377.G1Jac
	got.ScalarMultiplication(&a, frToBigInt(b))
	require.True(t, got.Equal(&c))
}

func TestG2TripleReconstructsAndSatisfiesRelation(t *testing.T) {
	first := Stub{First: true}.G2Triple()
	second := Stub{First: false}.G2Triple()

	var a, c bls12377.G2Jac
	a.Set(&first.A)
	a.AddAssign(&second.A)
	c.Set(&first.C)
	c.AddAssign(&second.C)

	var b fr.Element
	b.Add(&first.B, &second.B)

	var got bls12377.G2Jac
	got.ScalarMultiplication(&a, frToBigInt(b))
	require.True(t, got.Equal(&c))
}

func TestPairingTripleReconstructsAndSatisfiesRelation(t *testing.T) {
	first := Stub{First: true}.PairingTriple()
	second := Stub{First: false}.PairingTriple()

	var aJac bls12377.G1Jac
	aJac.FromAffine(&first.A)
	var secondAJac bls12377.G1Jac
	secondAJac.FromAffine(&second.A)
	aJac.AddAssign(&secondAJac)
	var aAff bls12377.G1Affine
	aAff.FromJacobian(&aJac)

	var bJac bls12377.G2Jac
	bJac.FromAffine(&first.B)
	var secondBJac bls12377.G2Jac
	secondBJac.FromAffine(&second.B)
	bJac.AddAssign(&secondBJac)
	var bAff bls12377.G2Affine
	bAff.FromJacobian(&bJac)

	var c bls12377.GT
	c.Mul(&first.C, &second.C)

	got, err := bls12377.Pair([]bls12377.G1Affine{aAff}, []bls12377.G2Affine{bAff})
	require.NoError(t, err)
	require.True(t, got.Equal(&c))
}
