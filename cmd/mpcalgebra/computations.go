//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/markkurossi/mpcalgebra/mpc/channel"
	"github.com/markkurossi/mpcalgebra/mpc/commit"
	"github.com/markkurossi/mpcalgebra/mpc/fri"
	"github.com/markkurossi/mpcalgebra/mpc/share"
)

// computationArgs bundles the flag values every computation draws
// from; not every computation uses every field.
type computationArgs struct {
	a0, b0, c0 int64
	vs         string
	index      int
	useG2      bool
	party      int
}

func (a computationArgs) shareVector() ([]share.Fr, error) {
	parts := strings.Split(a.vs, ",")
	out := make([]share.Fr, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("computations: invalid -vs entry %q: %w", p, err)
		}
		out = append(out, share.FrFromShared(share.FrFromUint64(uint64(n)).Value))
	}
	return out, nil
}

// runProduct multiplies this party's share of a against its share of
// b and publicizes the result.
func runProduct(ch *channel.Channel, args computationArgs) error {
	a := share.FrFromShared(share.FrFromUint64(uint64(args.a0)).Value)
	b := share.FrFromShared(share.FrFromUint64(uint64(args.b0)).Value)
	result := a.Mul(b).Publicize()
	fmt.Printf("Product: %x\n", result.Bytes())
	return nil
}

// runSum reduces a shared vector with Fr.Add and publicizes the
// total.
func runSum(ch *channel.Channel, args computationArgs) error {
	vs, err := args.shareVector()
	if err != nil {
		return err
	}
	sum := share.FrZero()
	for _, v := range vs {
		sum = sum.Add(v)
	}
	result := sum.Publicize()
	fmt.Printf("Sum: %x\n", result.Bytes())
	return nil
}

// runFft runs the inverse FFT directly on this party's local shares
// (share.InverseFFT is linear, so no protocol round trip is needed
// for the transform itself), then publicizes each output coordinate.
func runFft(ch *channel.Channel, args computationArgs) error {
	vs, err := args.shareVector()
	if err != nil {
		return err
	}
	out, err := share.InverseFFT(vs)
	if err != nil {
		return err
	}
	for i, v := range out {
		fmt.Printf("Fft[%d]: %x\n", i, v.Publicize().Bytes())
	}
	return nil
}

// runCommit implements the Commit computation: commit to this party's
// share vector and print the canonical root pair.
func runCommit(ch *channel.Channel, args computationArgs) error {
	vs, err := args.shareVector()
	if err != nil {
		return err
	}
	c, _, err := commit.Commit(ch, vs)
	if err != nil {
		return err
	}
	fmt.Printf("Commit: root0=%x root1=%x\n", c.Root0, c.Root1)
	return nil
}

// runMerkle commits to the share vector, derives a query index from
// the commitment transcript, opens that position, and checks the
// opening against the commitment.
func runMerkle(ch *channel.Channel, args computationArgs) error {
	vs, err := args.shareVector()
	if err != nil {
		return err
	}
	c, tree, err := commit.Commit(ch, vs)
	if err != nil {
		return err
	}
	i, err := commit.DeriveQueryIndex(c, len(vs))
	if err != nil {
		return err
	}
	expected, proof, err := commit.Open(ch, vs, tree, i)
	if err != nil {
		return err
	}
	ok := commit.Check(c, proof, i, expected)
	fmt.Printf("Merkle: index=%d value=%x verifies=%v\n", i, expected.Bytes(), ok)
	return nil
}

// runFri implements the supplemental Fri computation: commit-fold-query
// down to a single constant and verify the resulting proof.
func runFri(ch *channel.Channel, args computationArgs) error {
	vs, err := args.shareVector()
	if err != nil {
		return err
	}
	query := args.index % (len(vs) / 2)
	proof, err := fri.Prove(ch, vs, query)
	if err != nil {
		return err
	}
	ok := fri.Verify(proof)
	fmt.Printf("Fri: final=%x verifies=%v\n", proof.Final.Bytes(), ok)
	return nil
}

// runDh checks g^a + g^b == g^c over either the G1 or G2 domain,
// selected by -use_g2.
func runDh(ch *channel.Channel, args computationArgs) error {
	a := share.FrFromShared(share.FrFromUint64(uint64(args.a0)).Value)
	b := share.FrFromShared(share.FrFromUint64(uint64(args.b0)).Value)
	c := share.FrFromShared(share.FrFromUint64(uint64(args.c0)).Value)

	if args.useG2 {
		g := share.G2Generator()
		lhs := g.Mul(a).Add(g.Mul(b)).Publicize()
		rhs := g.Mul(c).Publicize()
		fmt.Printf("Dh (G2): g^a+g^b == g^c: %v\n", lhs.Equal(rhs))
		return nil
	}

	g := share.G1Generator()
	lhs := g.Mul(a).Add(g.Mul(b)).Publicize()
	rhs := g.Mul(c).Publicize()
	fmt.Printf("Dh (G1): g^a+g^b == g^c: %v\n", lhs.Equal(rhs))
	return nil
}

// runPairingDh checks e(g1·a, g2·b) == e(g1·c, g2) for c = a*b mod r.
func runPairingDh(ch *channel.Channel, args computationArgs) error {
	a := share.FrFromShared(share.FrFromUint64(uint64(args.a0)).Value)
	b := share.FrFromShared(share.FrFromUint64(uint64(args.b0)).Value)
	c := share.FrFromShared(share.FrFromUint64(uint64(args.c0)).Value)

	g1 := share.G1Generator()
	g2 := share.G2Generator()

	ga := g1.Mul(a)
	hb := g2.Mul(b)
	gc := g1.Mul(c)

	lhs := share.Pairing(ga, hb).Publicize()
	rhs := share.Pairing(gc, g2).Publicize()
	fmt.Printf("PairingDh: e(g1*a,g2*b) == e(g1*c,g2): %v\n", lhs.Equal(rhs))
	return nil
}
