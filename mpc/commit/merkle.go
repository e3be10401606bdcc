//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package commit implements the Merkle commitment layer: each party
// commits to its own share vector, the pair jointly opens a position
// to the reconstructed value, and a verifier checks the opening
// against the pair of roots. Leaves are SHA-256 of each party's own
// serialized share, never the reconstructed value, so a commitment
// never requires opening a share to produce.
package commit

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/markkurossi/mpcalgebra/mpc/channel"
	"github.com/markkurossi/mpcalgebra/mpc/share"
	"golang.org/x/crypto/hkdf"
)

// Tree is one party's local Merkle tree over its own share vector.
// Levels[0] holds the leaves; the last entry holds the single root.
type Tree struct {
	Levels [][][32]byte
}

// Root returns the tree's top hash.
func (t *Tree) Root() [32]byte {
	top := t.Levels[len(t.Levels)-1]
	return top[0]
}

// Commitment is the canonical (root of the first party, root of the
// second party) pair, in that order regardless of who is calling.
type Commitment struct {
	Root0, Root1 [32]byte
}

// leaf hashes one party's local share value.
func leaf(v share.Fr) [32]byte {
	b := v.Value.Bytes()
	return sha256.Sum256(b[:])
}

// build constructs the full binary tree over n = len(vs) leaves; n
// must be a power of two.
func build(vs []share.Fr) (*Tree, error) {
	n := len(vs)
	if n == 0 || n&(n-1) != 0 {
		return nil, errors.New("commit: vector length must be a power of two")
	}

	leaves := make([][32]byte, n)
	for i, v := range vs {
		leaves[i] = leaf(v)
	}

	levels := [][][32]byte{leaves}
	cur := leaves
	for len(cur) > 1 {
		next := make([][32]byte, len(cur)/2)
		for i := range next {
			next[i] = hashPair(cur[2*i], cur[2*i+1])
		}
		levels = append(levels, next)
		cur = next
	}
	return &Tree{Levels: levels}, nil
}

func hashPair(left, right [32]byte) [32]byte {
	h := sha256.New()
	h.Write(left[:])
	h.Write(right[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Commit builds this party's tree over vs (each entry must be shared)
// and exchanges roots with the peer to produce the canonical
// commitment pair.
func Commit(ch *channel.Channel, vs []share.Fr) (Commitment, *Tree, error) {
	for _, v := range vs {
		if !v.Shared {
			return Commitment{}, nil, errors.New("commit: all entries must be shared")
		}
	}

	tree, err := build(vs)
	if err != nil {
		return Commitment{}, nil, err
	}

	root := tree.Root()
	peerRoot := exchangeRoot(ch, root)

	var c Commitment
	if ch.AmFirst() {
		c.Root0, c.Root1 = root, peerRoot
	} else {
		c.Root0, c.Root1 = peerRoot, root
	}
	return c, tree, nil
}

func exchangeRoot(ch *channel.Channel, root [32]byte) [32]byte {
	return channel.ExchangeValue(ch, root,
		func(r [32]byte) []byte { return r[:] },
		func(b []byte) [32]byte {
			var out [32]byte
			copy(out[:], b)
			return out
		})
}

// DeriveQueryIndex picks the position a Merkle opening proves, the
// same way for both parties without a round trip: both already hold
// the canonical commitment, so both can expand it through HKDF (the
// teacher's own Fiat–Shamir-flavored way of turning a transcript into
// pseudorandom output, crypto/hkdf/tls13.go) into an index modulo n.
func DeriveQueryIndex(c Commitment, n int) (int, error) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, errors.New("commit: n must be a power of two")
	}
	info := []byte("mpcalgebra/commit/query-index")
	transcript := append(append([]byte{}, c.Root0[:]...), c.Root1[:]...)
	r := hkdf.New(sha256.New, transcript, nil, info)
	var buf [8]byte
	if _, err := r.Read(buf[:]); err != nil {
		return 0, err
	}
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n)), nil
}

// Sibling is one level of a proof's path, in canonical
// first-party-then-second-party order (not caller-then-peer: both
// parties must agree on the same Proof regardless of which one calls
// Open).
type Sibling struct {
	First  [32]byte
	Second [32]byte
}

// Proof is the opening of position i: both parties' shares there, and
// the sibling path up to the roots.
type Proof struct {
	Share0, Share1 share.Fr
	Siblings       []Sibling
}

// Open reveals position i: each party reads its own share and sibling
// path, exchanges its share and each sibling hash with the peer, and
// returns the reconstructed public value alongside the proof.
func Open(ch *channel.Channel, vs []share.Fr, tree *Tree, i int) (share.Fr, Proof, error) {
	n := len(vs)
	if i < 0 || i >= n {
		return share.Fr{}, Proof{}, errors.New("commit: index out of range")
	}

	selfShare := vs[i]
	selfShareBytes := selfShare.Value.Bytes()
	peerShareVal := ch.Exchange(selfShareBytes[:])
	peerFr, err := share.FrFromBytes(peerShareVal)
	if err != nil {
		return share.Fr{}, Proof{}, err
	}

	amFirst := ch.AmFirst()
	siblings := make([]Sibling, len(tree.Levels)-1)
	idx := i
	for l := 0; l < len(tree.Levels)-1; l++ {
		level := tree.Levels[l]
		siblingIdx := idx ^ 1
		selfSib := level[siblingIdx]
		peerSibBytes := ch.Exchange(selfSib[:])
		var peerSib [32]byte
		copy(peerSib[:], peerSibBytes)
		if amFirst {
			siblings[l] = Sibling{First: selfSib, Second: peerSib}
		} else {
			siblings[l] = Sibling{First: peerSib, Second: selfSib}
		}
		idx /= 2
	}

	// Both revealed shares are tagged public in the proof, so the two
	// parties' Proof values are identical.
	selfPub := share.FrFromPublic(selfShare.Value)
	var proof Proof
	if amFirst {
		proof = Proof{Share0: selfPub, Share1: peerFr, Siblings: siblings}
	} else {
		proof = Proof{Share0: peerFr, Share1: selfPub, Siblings: siblings}
	}

	var sumVal fr.Element
	sumVal.Add(&selfShare.Value, &peerFr.Value)
	return share.FrFromPublic(sumVal), proof, nil
}

// Check verifies that proof opens commitment at position i to
// expected, re-deriving each party's leaf hash from its claimed share
// and re-hashing up the path using the low bits of i to choose the
// left/right order at each level.
func Check(commitment Commitment, proof Proof, i int, expected share.Fr) bool {
	var sumVal fr.Element
	sumVal.Add(&proof.Share0.Value, &proof.Share1.Value)
	if !sumVal.Equal(&expected.Value) {
		return false
	}

	h0 := leaf(proof.Share0)
	h1 := leaf(proof.Share1)

	idx := i
	cur0, cur1 := h0, h1
	for _, sib := range proof.Siblings {
		if idx&1 == 0 {
			cur0 = hashPair(cur0, sib.First)
			cur1 = hashPair(cur1, sib.Second)
		} else {
			cur0 = hashPair(sib.First, cur0)
			cur1 = hashPair(sib.Second, cur1)
		}
		idx /= 2
	}

	return cur0 == commitment.Root0 && cur1 == commitment.Root1
}
