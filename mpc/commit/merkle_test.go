//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package commit

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

// splitShares builds the two parties' share vectors for
// vs0[i]+vs1[i] == values[i], handing the first party its value
// verbatim and the second party zero — unlike mpc/share's Beaver
// kernel tests, this package takes the channel and shares as explicit
// parameters rather than a configured singleton, so both parties run
// for real, concurrently, in this one test binary.
func splitShares(values []uint64) (vs0, vs1 []share.Fr) {
	for _, v := range values {
		vs0 = append(vs0, share.FrFromShared(frOf(v)))
		vs1 = append(vs1, share.FrFromShared(frOf(0)))
	}
	return
}

func TestCommitOpenCheckRoundTrip(t *testing.T) {
	a, b := net.Pipe()
	first := channel.FromConn(a, true)
	second := channel.FromConn(b, false)

	values := []uint64{1, 2, 3, 4, 5, 6, 7, 8}
	vs0, vs1 := splitShares(values)

	var wg sync.WaitGroup
	wg.Add(2)

	var c0, c1 Commitment
	var tree0, tree1 *Tree
	var err0, err1 error

	go func() {
		defer wg.Done()
		c1, tree1, err1 = Commit(second, vs1)
	}()
	c0, tree0, err0 = Commit(first, vs0)
	wg.Wait()

	require.NoError(t, err0)
	require.NoError(t, err1)
	require.Equal(t, c0, c1)

	const index = 5

	var opened0, opened1 share.Fr
	var proof0, proof1 Proof
	var openErr0, openErr1 error

	wg.Add(2)
	go func() {
		defer wg.Done()
		opened1, proof1, openErr1 = Open(second, vs1, tree1, index)
	}()
	opened0, proof0, openErr0 = Open(first, vs0, tree0, index)
	wg.Wait()

	require.NoError(t, openErr0)
	require.NoError(t, openErr1)
	require.Equal(t, proof0, proof1)

	want := share.FrFromPublic(frOf(values[index]))
	require.True(t, opened0.Value.Equal(&want.Value))
	require.True(t, opened1.Value.Equal(&want.Value))

	require.True(t, Check(c0, proof0, index, want))
}

func TestCheckFailsOnBitFlippedShare(t *testing.T) {
	a, b := net.Pipe()
	first := channel.FromConn(a, true)
	second := channel.FromConn(b, false)

	values := []uint64{1, 2, 3, 4, 5, 6, 7, 8}
	vs0, vs1 := splitShares(values)

	var wg sync.WaitGroup
	wg.Add(2)
	var c0, c1 Commitment
	var tree0, tree1 *Tree
	go func() {
		defer wg.Done()
		c1, tree1, _ = Commit(second, vs1)
	}()
	c0, tree0, _ = Commit(first, vs0)
	wg.Wait()
	require.Equal(t, c0, c1)

	const index = 2

	wg.Add(2)
	var proof0, proof1 Proof
	go func() {
		defer wg.Done()
		_, proof1, _ = Open(second, vs1, tree1, index)
	}()
	_, proof0, _ = Open(first, vs0, tree0, index)
	wg.Wait()
	require.Equal(t, proof0, proof1)

	want := share.FrFromPublic(frOf(values[index]))
	require.True(t, Check(c0, proof0, index, want))

	tampered := proof0
	tampered.Share0 = share.FrFromPublic(frOf(values[index] + 1))
	require.False(t, Check(c0, tampered, index, want))
}

func TestCommitRejectsUnsharedEntries(t *testing.T) {
	a, _ := net.Pipe()
	first := channel.FromConn(a, true)
	vs := []share.Fr{share.FrFromPublic(frOf(1))}
	_, _, err := Commit(first, vs)
	require.Error(t, err)
}

func TestBuildRejectsNonPowerOfTwoLength(t *testing.T) {
	vs := []share.Fr{share.FrFromShared(frOf(1)), share.FrFromShared(frOf(2)), share.FrFromShared(frOf(3))}
	_, err := build(vs)
	require.Error(t, err)
}

func TestDeriveQueryIndexIsDeterministicAndInRange(t *testing.T) {
	c := Commitment{Root0: [32]byte{1, 2, 3}, Root1: [32]byte{4, 5, 6}}
	i, err := DeriveQueryIndex(c, 8)
	require.NoError(t, err)
	require.GreaterOrEqual(t, i, 0)
	require.Less(t, i, 8)

	again, err := DeriveQueryIndex(c, 8)
	require.NoError(t, err)
	require.Equal(t, i, again)
}

func TestDeriveQueryIndexVariesWithTranscript(t *testing.T) {
	c1 := Commitment{Root0: [32]byte{1}, Root1: [32]byte{2}}
	c2 := Commitment{Root0: [32]byte{9}, Root1: [32]byte{9}}
	i1, err := DeriveQueryIndex(c1, 1024)
	require.NoError(t, err)
	i2, err := DeriveQueryIndex(c2, 1024)
	require.NoError(t, err)
	require.NotEqual(t, i1, i2)
}

func TestDeriveQueryIndexRejectsNonPowerOfTwo(t *testing.T) {
	c := Commitment{}
	_, err := DeriveQueryIndex(c, 3)
	require.Error(t, err)
}
