//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package channel implements the two-party wire protocol for the MPC
// arithmetic kernel: a single reliable byte stream to the peer,
// symmetric lockstep exchange, and the byte/round-trip counters the
// rest of the kernel reports as statistics.
package channel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"syscall"
	"time"
)

var bo = binary.NativeEndian

// dialRetryInterval and dialTimeout bound the active-connect side of
// Init: connection-refused is retried on this interval until the
// timeout elapses, after which Init panics.
const (
	dialRetryInterval = 100 * time.Millisecond
	dialTimeout       = 30 * time.Second
)

// Channel is the process-wide singleton byte pipe to the peer. It is
// guarded by m so that a single-threaded caller reaching it through
// the package-level functions below sees at most one operation in
// flight at a time (Design Note (a): the mutexed singleton, not
// thread-local state or an explicit context parameter).
type Channel struct {
	m sync.Mutex

	conn net.Conn

	selfAddr string
	peerAddr string
	talkFirst bool

	bytesSent uint64
	bytesRecv uint64
	exchanges uint64
}

var global = &Channel{}

// Global returns the process-wide channel singleton.
func Global() *Channel {
	return global
}

// Stats holds the channel's cumulative transport counters.
type Stats struct {
	BytesSent uint64
	BytesRecv uint64
	Exchanges uint64
}

// Init connects the channel to the peer. If talkFirst, it actively
// dials peerAddr, retrying connection-refused every 100ms for up to
// 30s before panicking; any other dial error is fatal immediately.
// Otherwise it listens on selfAddr and accepts exactly one inbound
// connection. Init may be called only once per channel lifetime (or
// once per Deinit/Init cycle); calling it while already connected is
// an invariant violation.
func (c *Channel) Init(selfAddr, peerAddr string, talkFirst bool) {
	c.m.Lock()
	defer c.m.Unlock()

	if c.conn != nil {
		panic("channel: already initialized, did you call Init twice?")
	}

	var conn net.Conn
	if talkFirst {
		deadline := time.Now().Add(dialTimeout)
		for {
			var err error
			conn, err = net.Dial("tcp", peerAddr)
			if err == nil {
				break
			}
			if !isConnRefused(err) || time.Now().After(deadline) {
				panic(fmt.Sprintf("channel: dial %s: %v", peerAddr, err))
			}
			time.Sleep(dialRetryInterval)
		}
	} else {
		l, err := net.Listen("tcp", selfAddr)
		if err != nil {
			panic(fmt.Sprintf("channel: listen %s: %v", selfAddr, err))
		}
		defer l.Close()
		conn, err = l.Accept()
		if err != nil {
			panic(fmt.Sprintf("channel: accept on %s: %v", selfAddr, err))
		}
	}

	c.conn = conn
	c.selfAddr = selfAddr
	c.peerAddr = peerAddr
	c.talkFirst = talkFirst
}

// FromConn builds a Channel directly from an already-connected conn,
// bypassing Init's dial/listen negotiation. It exists for tests and for
// transports other than TCP (e.g. an in-process net.Pipe): production
// callers reach Init through Global() instead.
func FromConn(conn net.Conn, talkFirst bool) *Channel {
	return &Channel{conn: conn, talkFirst: talkFirst}
}

// isConnRefused reports whether err looks like ECONNREFUSED, the only
// dial error Init retries; every other dial failure is fatal.
func isConnRefused(err error) bool {
	var opErr *net.OpError
	return asOpError(err, &opErr) && opErr.Op == "dial" &&
		errors.Is(opErr.Err, syscall.ECONNREFUSED)
}

func asOpError(err error, target **net.OpError) bool {
	for err != nil {
		if op, ok := err.(*net.OpError); ok {
			*target = op
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Deinit releases the underlying stream. The counters survive and
// remain queryable through Stats. A second Init call may reconnect
// the channel afterwards.
func (c *Channel) Deinit() {
	c.m.Lock()
	defer c.m.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

// AmFirst returns the talkFirst flag recorded at Init.
func (c *Channel) AmFirst() bool {
	c.m.Lock()
	defer c.m.Unlock()
	return c.talkFirst
}

// Stats returns the cumulative byte and round-trip counters.
func (c *Channel) Stats() Stats {
	c.m.Lock()
	defer c.m.Unlock()
	return Stats{
		BytesSent: c.bytesSent,
		BytesRecv: c.bytesRecv,
		Exchanges: c.exchanges,
	}
}

// Exchange performs one symmetric round-trip: if talkFirst, send then
// receive; otherwise receive then send. Both directions are framed as
// an 8-byte native-endian length followed by that many payload bytes.
// Any I/O error is fatal.
func (c *Channel) Exchange(out []byte) []byte {
	c.m.Lock()
	defer c.m.Unlock()

	if c.conn == nil {
		panic("channel: exchange before Init")
	}

	var in []byte
	if c.talkFirst {
		c.send(out)
		in = c.recv()
	} else {
		in = c.recv()
		c.send(out)
	}
	c.exchanges++
	return in
}

// ExchangeValue is a typed convenience wrapper around Exchange:
// canonically serialize out with marshal, exchange the bytes, and
// reconstruct the reply with unmarshal. Kept as a generic free
// function rather than a method because the wire types (field
// elements, curve points, the pairing target) do not share a common
// marshal interface in the underlying algebra library.
func ExchangeValue[T any](c *Channel, out T, marshal func(T) []byte, unmarshal func([]byte) T) T {
	in := c.Exchange(marshal(out))
	return unmarshal(in)
}

func (c *Channel) send(v []byte) {
	var lenBuf [8]byte
	bo.PutUint64(lenBuf[:], uint64(len(v)))
	if _, err := c.conn.Write(lenBuf[:]); err != nil {
		panic(fmt.Sprintf("channel: write length: %v", err))
	}
	if _, err := c.conn.Write(v); err != nil {
		panic(fmt.Sprintf("channel: write payload: %v", err))
	}
	c.bytesSent += uint64(8 + len(v))
}

func (c *Channel) recv() []byte {
	var lenBuf [8]byte
	if _, err := io.ReadFull(c.conn, lenBuf[:]); err != nil {
		panic(fmt.Sprintf("channel: read length: %v", err))
	}
	n := bo.Uint64(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.conn, buf); err != nil {
		panic(fmt.Sprintf("channel: read payload: %v", err))
	}
	c.bytesRecv += uint64(8 + n)
	return buf
}
