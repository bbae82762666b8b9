package common

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto/blake2b"
)

const (
	blake2bBlockSize = 128
	blake2bRounds    = 12
)

var blake2bIV = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// Blake2bHasher is a 256 bit blake2b digest with a personalization string,
// built on the exported compression function of go-ethereum.
type Blake2bHasher struct {
	h       [8]uint64
	counter uint64
	buf     []byte
}

func NewBlake2bHasher(personal string) *Blake2bHasher {
	var param [64]byte
	param[0] = HashLength
	param[2] = 1
	param[3] = 1
	copy(param[48:], personal)

	x := &Blake2bHasher{}
	for i := range x.h {
		x.h[i] = blake2bIV[i] ^ binary.LittleEndian.Uint64(param[i*8:])
	}
	return x
}

func NewCkbHasher() *Blake2bHasher {
	return NewBlake2bHasher(CkbHashPersonalization)
}

func (x *Blake2bHasher) compress(block []byte, final bool) {
	var m [16]uint64
	for i := range m {
		m[i] = binary.LittleEndian.Uint64(block[i*8:])
	}
	blake2b.F(&x.h, m, [2]uint64{x.counter, 0}, final, blake2bRounds)
}

func (x *Blake2bHasher) Write(data []byte) (int, error) {
	x.buf = append(x.buf, data...)
	// the last block is only compressed in Sum
	for len(x.buf) > blake2bBlockSize {
		x.counter += blake2bBlockSize
		x.compress(x.buf[:blake2bBlockSize], false)
		x.buf = x.buf[blake2bBlockSize:]
	}
	return len(data), nil
}

func (x *Blake2bHasher) Sum() [HashLength]byte {
	h := x.h
	counter := x.counter

	var block [blake2bBlockSize]byte
	copy(block[:], x.buf)
	counter += uint64(len(x.buf))

	var m [16]uint64
	for i := range m {
		m[i] = binary.LittleEndian.Uint64(block[i*8:])
	}
	blake2b.F(&h, m, [2]uint64{counter, 0}, true, blake2bRounds)

	var out [HashLength]byte
	for i := 0; i < HashLength/8; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], h[i])
	}
	return out
}

func CkbHash(data ...[]byte) [HashLength]byte {
	x := NewCkbHasher()
	for _, d := range data {
		x.Write(d)
	}
	return x.Sum()
}

// Blake160 is the first 20 bytes of the ckb hash, used as lock args.
func Blake160(data []byte) []byte {
	hash := CkbHash(data)
	return hash[:Blake160Length]
}
