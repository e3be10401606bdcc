//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fri

import (
	"net"
	"sync"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/markkurossi/mpcalgebra/mpc/channel"
	"github.com/markkurossi/mpcalgebra/mpc/share"
	"github.com/stretchr/testify/require"
)

func frOf(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

func splitShares(values []uint64) (vs0, vs1 []share.Fr) {
	for _, v := range values {
		vs0 = append(vs0, share.FrFromShared(frOf(v)))
		vs1 = append(vs1, share.FrFromShared(frOf(0)))
	}
	return
}

// TestProveVerifyRoundTrip runs the commit-fold-query protocol between
// two real parties over an in-process net.Pipe and checks that the
// resulting proofs verify. Each party derives every fold challenge
// locally from the shared commitment, so both sides' Proofs are
// checked — Prove never puts a challenge on the wire.
func TestProveVerifyRoundTrip(t *testing.T) {
	a, b := net.Pipe()
	first := channel.FromConn(a, true)
	second := channel.FromConn(b, false)

	vs0, vs1 := splitShares([]uint64{1, 2, 3, 4, 5, 6, 7, 8})

	var wg sync.WaitGroup
	wg.Add(2)

	var proof0, proof1 Proof
	var err0, err1 error

	go func() {
		defer wg.Done()
		proof1, err1 = Prove(second, vs1, 1)
	}()
	proof0, err0 = Prove(first, vs0, 1)
	wg.Wait()

	require.NoError(t, err0)
	require.NoError(t, err1)

	require.True(t, Verify(proof0))
	require.True(t, Verify(proof1))
}

func TestProveRejectsNonPowerOfTwo(t *testing.T) {
	a, _ := net.Pipe()
	ch := channel.FromConn(a, true)
	vs := []share.Fr{share.FrFromShared(frOf(1)), share.FrFromShared(frOf(2)), share.FrFromShared(frOf(3))}
	_, err := Prove(ch, vs, 0)
	require.Error(t, err)
}

func TestProveRejectsQueryOutOfRange(t *testing.T) {
	a, _ := net.Pipe()
	ch := channel.FromConn(a, true)
	vs := []share.Fr{share.FrFromShared(frOf(1)), share.FrFromShared(frOf(2))}
	_, err := Prove(ch, vs, 5)
	require.Error(t, err)
}

func TestVerifyRejectsTamperedFinal(t *testing.T) {
	a, b := net.Pipe()
	first := channel.FromConn(a, true)
	second := channel.FromConn(b, false)

	vs0, vs1 := splitShares([]uint64{1, 2, 3, 4})

	var wg sync.WaitGroup
	wg.Add(2)
	var proof0 Proof
	go func() {
		defer wg.Done()
		Prove(second, vs1, 0)
	}()
	proof0, _ = Prove(first, vs0, 0)
	wg.Wait()

	require.True(t, Verify(proof0))

	tampered := proof0
	tampered.Final = share.FrFromPublic(frOf(999))
	require.False(t, Verify(tampered))
}

func TestVerifyRejectsEmptyProof(t *testing.T) {
	require.False(t, Verify(Proof{}))
}
