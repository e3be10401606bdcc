//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package share

import (
	"encoding/binary"
	"io"
	"net"
	"testing"

	"github.com/markkurossi/mpcalgebra/mpc/beaver"
	"github.com/markkurossi/mpcalgebra/mpc/channel"
	"github.com/stretchr/testify/require"
)

// configureFirst wires this process in as the talk-first party over an
// in-process net.Pipe and returns the peer's raw, un-configured end, so
// a test can script the second party's wire replies directly — the
// package's singleton Engine (share.go) only ever holds one party's
// view in a single test binary, so the "second party" in these tests
// is a scripted peer rather than a second configured Engine.
func configureFirst(t *testing.T) net.Conn {
	t.Helper()
	a, b := net.Pipe()
	ch := channel.FromConn(a, true)
	Configure(ch, beaver.Stub{First: true})
	t.Cleanup(func() { engine = nil })
	return b
}

func configureSecond(t *testing.T) net.Conn {
	t.Helper()
	a, b := net.Pipe()
	ch := channel.FromConn(a, false)
	Configure(ch, beaver.Stub{First: false})
	t.Cleanup(func() { engine = nil })
	return b
}

// peerRespond plays the wire role of the party on the other end of
// conn: for each entry in replies it reads one length-framed message
// (discarding its content) and writes back the given bytes, matching
// channel.Channel's own framing (mpc/channel/channel.go).
func peerRespond(t *testing.T, conn net.Conn, replies [][]byte) {
	t.Helper()
	for _, r := range replies {
		var lenBuf [8]byte
		_, err := io.ReadFull(conn, lenBuf[:])
		require.NoError(t, err)
		n := binary.NativeEndian.Uint64(lenBuf[:])
		buf := make([]byte, n)
		_, err = io.ReadFull(conn, buf)
		require.NoError(t, err)

		var outLen [8]byte
		binary.NativeEndian.PutUint64(outLen[:], uint64(len(r)))
		_, err = conn.Write(outLen[:])
		require.NoError(t, err)
		_, err = conn.Write(r)
		require.NoError(t, err)
	}
}
