//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package fri implements a supplemental low-degree test over the
// shared-value wrapper: a verifier-facing proof that a committed
// vector of shares folds down to a single constant under a sequence of
// public challenges, built entirely out of mpc/commit's Merkle layer
// and mpc/share's dispatch tables. It plays the role
// original_source/src/mpc/poly/pc.rs gives a polynomial commitment
// scheme (committing to a vector of evaluations and proving openings
// against it), but folds by linear interpolation between a pair of
// positions rather than by division by evaluation-domain points, so a
// fold step uses only Add, Sub, and public-scalar Mul on the shares.
package fri

import (
	"crypto/sha256"
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/markkurossi/mpcalgebra/mpc/channel"
	"github.com/markkurossi/mpcalgebra/mpc/commit"
	"github.com/markkurossi/mpcalgebra/mpc/share"
)

// Layer is one round's commitment, challenge, and the pair of openings
// the fold at Index needs: the value at Index and at Index+Width/2 in
// that round's (pre-fold) vector.
type Layer struct {
	Commitment commit.Commitment
	Challenge  share.Fr
	Width      int
	Index      int
	Even       commit.Proof
	Odd        commit.Proof
}

// Proof is a full folding proof: one Layer per halving round, plus the
// fully-folded constant both parties converge on.
type Proof struct {
	Layers []Layer
	Final  share.Fr
}

// fold halves values by linear interpolation toward challenge between
// each (even, odd) pair: next[i] = even[i] + challenge*(odd[i]-even[i]).
// Every operation here is one the shared-value dispatch table actually
// defines (Add, Sub, the public-scalar Mul), so it runs whether values
// are public or shared.
func fold(values []share.Fr, challenge share.Fr) []share.Fr {
	n := len(values) / 2
	next := make([]share.Fr, n)
	for i := 0; i < n; i++ {
		even := values[i]
		odd := values[i+n]
		diff := odd.Sub(even)
		next[i] = even.Add(challenge.Mul(diff))
	}
	return next
}

// Prove runs the commit-fold-query protocol down to a single value:
// at each round both parties commit to the current layer, derive a
// public challenge by hashing that round's canonical commitment with
// SHA-256 into Fr (both parties hold the same commitment, so both get
// the same challenge without a round trip), open the query pair the
// fold at the current index needs, and fold. query must be less than
// half the initial vector's length.
func Prove(ch *channel.Channel, values []share.Fr, query int) (Proof, error) {
	n := len(values)
	if n == 0 || n&(n-1) != 0 {
		return Proof{}, errors.New("fri: vector length must be a power of two")
	}
	if query < 0 || query >= n/2 {
		return Proof{}, errors.New("fri: query index out of range")
	}

	var layers []Layer
	cur := values
	idx := query
	for len(cur) > 1 {
		width := len(cur)
		half := width / 2
		idx = idx % half

		c, tree, err := commit.Commit(ch, cur)
		if err != nil {
			return Proof{}, err
		}

		h := sha256.New()
		h.Write(c.Root0[:])
		h.Write(c.Root1[:])
		var chVal fr.Element
		chVal.SetBytes(h.Sum(nil))
		challenge := share.FrFromPublic(chVal)

		_, evenProof, err := commit.Open(ch, cur, tree, idx)
		if err != nil {
			return Proof{}, err
		}
		_, oddProof, err := commit.Open(ch, cur, tree, idx+half)
		if err != nil {
			return Proof{}, err
		}

		layers = append(layers, Layer{
			Commitment: c,
			Challenge:  challenge,
			Width:      width,
			Index:      idx,
			Even:       evenProof,
			Odd:        oddProof,
		})

		cur = fold(cur, challenge)
	}

	final := publicizeFr(ch, cur[0])
	return Proof{Layers: layers, Final: final}, nil
}

// publicizeFr opens v by exchanging and summing the local share with
// the peer's, the same reconstruction share.Fr.Publicize performs —
// but through the ch parameter this package already threads explicitly
// rather than mpc/share's process-wide Engine singleton, which this
// package never configures.
func publicizeFr(ch *channel.Channel, v share.Fr) share.Fr {
	out := v.Value.Bytes()
	in := ch.Exchange(out[:])
	remote, err := share.FrFromBytes(in)
	if err != nil {
		panic("fri: malformed peer field element: " + err.Error())
	}
	var sum fr.Element
	sum.Add(&v.Value, &remote.Value)
	return share.FrFromPublic(sum)
}

// Verify checks a Proof's internal consistency: every layer's openings
// must verify against that layer's commitment (commit.Check), and
// folding the opened pair under the layer's challenge must produce the
// value the next layer opens at the corresponding position — or, for
// the last layer, must equal proof.Final.
func Verify(proof Proof) bool {
	if len(proof.Layers) == 0 {
		return false
	}

	for i, layer := range proof.Layers {
		even := reconstruct(layer.Even)
		odd := reconstruct(layer.Odd)

		if !commit.Check(layer.Commitment, layer.Even, layer.Index, even) {
			return false
		}
		if !commit.Check(layer.Commitment, layer.Odd, layer.Index+layer.Width/2, odd) {
			return false
		}

		folded := even.Add(layer.Challenge.Mul(odd.Sub(even)))

		if i == len(proof.Layers)-1 {
			if !folded.Equal(proof.Final) {
				return false
			}
			continue
		}

		next := proof.Layers[i+1]
		nextHalf := next.Width / 2
		if layer.Index < nextHalf {
			if !folded.Equal(reconstruct(next.Even)) {
				return false
			}
		} else {
			if !folded.Equal(reconstruct(next.Odd)) {
				return false
			}
		}
	}
	return true
}

// reconstruct sums a proof's two revealed party shares into the public
// value the opening attests to, adding the underlying fr.Element
// values directly (commit.Open tags both of them public) the same way
// commit.Open computes its own return value.
func reconstruct(p commit.Proof) share.Fr {
	var sum fr.Element
	sum.Add(&p.Share0.Value, &p.Share1.Value)
	return share.FrFromPublic(sum)
}
