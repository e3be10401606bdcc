//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package share implements the shared-value wrapper: the algebraic
// types downstream cryptographic code computes with, each tagged
// public or shared and dispatching every operator on that tag pair.
// Five concrete wrappers exist — Fr, Fq, G1, G2, GT — one per concrete
// type the underlying curve library (gnark-crypto's BLS12-377
// package) hands back; they are isomorphic in shape but not unified
// behind a single generic container, since Go generics cannot
// abstract over gnark-crypto's mutate-through-pointer-receiver API
// without losing the library's own ergonomics.
package share

import (
	"github.com/markkurossi/mpcalgebra/mpc/beaver"
	"github.com/markkurossi/mpcalgebra/mpc/channel"
)

// Engine bundles the channel and Beaver source every shared×shared
// kernel needs. Rather than thread it through every operator call,
// the kernel functions in this package close over a package-level
// Engine set once at process start, the same singleton discipline as
// mpc/channel itself.
type Engine struct {
	Channel *channel.Channel
	Source  beaver.Source
}

var engine *Engine

// Configure installs the process-wide engine. It must be called
// exactly once, after channel.Global().Init, before any shared×shared
// operator is evaluated.
func Configure(ch *channel.Channel, src beaver.Source) {
	engine = &Engine{Channel: ch, Source: src}
}

func current() *Engine {
	if engine == nil {
		panic("share: Configure was never called")
	}
	return engine
}

// resolveTag implements the sharing-tag rule common to every binary
// operator: the result is shared iff at least one operand is shared.
func resolveTag(a, b bool) bool {
	return a || b
}

// amFirst reports whether this process is the talk-first party, the
// flag the asymmetric additive rule and every multiplicative kernel's
// final +ε·δ term depend on.
func amFirst() bool {
	return current().Channel.AmFirst()
}
