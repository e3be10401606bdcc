//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command mpcalgebra runs one party of the two-party shared-value
// arithmetic engine over a TCP connection to its peer, for each of the
// demonstration computations the kernel supports: Fft, Sum, Product,
// Commit, Merkle, Fri, Dh, and PairingDh. Run two copies against each
// other, one per party, e.g.:
//
//	mpcalgebra -party 0 -self_port :9000 -peer_port :9001 -computation Product
//	mpcalgebra -party 1 -self_port :9001 -peer_port :9000 -computation Product
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/markkurossi/mpcalgebra/mpc/beaver"
	"github.com/markkurossi/mpcalgebra/mpc/channel"
	"github.com/markkurossi/mpcalgebra/mpc/share"
)

func main() {
	selfHost := flag.String("self_host", "127.0.0.1", "host this party listens on, when it is not talk-first")
	selfPort := flag.String("self_port", ":9000", "port this party listens on")
	peerHost := flag.String("peer_host", "127.0.0.1", "peer host to dial, when this party is talk-first")
	peerPort := flag.String("peer_port", ":9001", "peer port to dial")
	party := flag.Int("party", 0, "party number: 0 (talk-first) or 1")
	computation := flag.String("computation", "Product", "one of Fft, Sum, Product, Commit, Merkle, Fri, Dh, PairingDh")
	useG2 := flag.Bool("use_g2", false, "use the G2 domain instead of G1 for the Dh demo")
	debug := flag.Bool("debug", false, "print channel statistics after the computation")

	a0 := flag.Int64("a0", 2, "this party's share of a, for Product/Dh/PairingDh")
	b0 := flag.Int64("b0", 3, "this party's share of b, for Product/Dh/PairingDh")
	c0 := flag.Int64("c0", 5, "this party's share of c, for Dh/PairingDh")
	vs := flag.String("vs", "1,0,0,0", "this party's share vector, comma-separated, for Sum/Fft/Commit/Merkle/Fri")
	index := flag.Int("index", 5, "query index for Fri (Merkle derives its own index from the commitment transcript)")

	flag.Parse()
	log.SetFlags(0)

	if *party != 0 && *party != 1 {
		log.Fatalf("invalid -party %d: must be 0 or 1", *party)
	}
	talkFirst := *party == 0

	selfAddr := *selfHost + *selfPort
	peerAddr := *peerHost + *peerPort

	ch := channel.Global()
	ch.Init(selfAddr, peerAddr, talkFirst)
	defer ch.Deinit()

	share.Configure(ch, beaver.Stub{First: talkFirst})

	args := computationArgs{
		a0:    *a0,
		b0:    *b0,
		c0:    *c0,
		vs:    *vs,
		index: *index,
		useG2: *useG2,
		party: *party,
	}

	var err error
	switch *computation {
	case "Fft":
		err = runFft(ch, args)
	case "Sum":
		err = runSum(ch, args)
	case "Product":
		err = runProduct(ch, args)
	case "Commit":
		err = runCommit(ch, args)
	case "Merkle":
		err = runMerkle(ch, args)
	case "Fri":
		err = runFri(ch, args)
	case "Dh":
		err = runDh(ch, args)
	case "PairingDh":
		err = runPairingDh(ch, args)
	default:
		log.Fatalf("unknown computation: %s", *computation)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *debug {
		st := ch.Stats()
		fmt.Printf("channel stats: sent=%d recv=%d exchanges=%d\n",
			st.BytesSent, st.BytesRecv, st.Exchanges)
	}
}
