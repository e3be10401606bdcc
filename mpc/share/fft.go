//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package share

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/fft"
)

// TwoAdicRootOfUnity returns a primitive 2^logOrder-th root of unity
// of Fr, wrapped public, forwarding to gnark-crypto's FFT domain
// construction.
func TwoAdicRootOfUnity(logOrder uint64) (Fr, error) {
	if logOrder > fr.RootOfUnityBitLen() {
		return Fr{}, errors.New("share: requested root of unity exceeds the field's two-adicity")
	}
	domain := fft.NewDomain(uint64(1) << logOrder)
	return FrFromPublic(domain.Generator), nil
}

// MultiplicativeGenerator returns Fr's multiplicative generator,
// wrapped public.
func MultiplicativeGenerator() Fr {
	return FrFromPublic(fr.MultiplicativeGen)
}

// FromRepr wraps a prime-field big-integer representation as a public
// Fr value.
func FromRepr(limbs [4]uint64) Fr {
	var v fr.Element
	v.SetRaw(limbs)
	return FrFromPublic(v)
}

// IntoRepr is the inverse of FromRepr. It panics on a shared value,
// like every other path that would let a share reach outside the
// wrapper.
func IntoRepr(a Fr) [4]uint64 {
	if a.Shared {
		panic("share: IntoRepr called on a shared value")
	}
	return a.Value.Bits()
}

// InverseFFT runs the inverse FFT of length len(values) directly on
// each party's local shares. This is sound without any protocol round
// trip because the FFT is a linear map: running it independently on
// v0 and v1 and summing the results is identical to running it once
// on v0+v1. Every input must carry the same sharing tag; the result
// carries that tag too.
func InverseFFT(values []Fr) ([]Fr, error) {
	if len(values) == 0 {
		return nil, errors.New("share: InverseFFT requires a non-empty input")
	}
	shared := values[0].Shared
	elems := make([]fr.Element, len(values))
	for i, v := range values {
		if v.Shared != shared {
			return nil, errors.New("share: InverseFFT requires uniformly tagged input")
		}
		elems[i] = v.Value
	}

	domain := fft.NewDomain(uint64(len(values)))
	domain.FFTInverse(elems, fft.DIF)
	fft.BitReverse(elems)

	out := make([]Fr, len(elems))
	for i, e := range elems {
		out[i] = Fr{Value: e, Shared: shared}
	}
	return out, nil
}
