package x448

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"
)

// testStream is a deterministic byte source made of SHA-256(label || counter)
// blocks, so a failing random test reproduces on every run.
type testStream struct {
	label []byte
	ctr   uint64
	buf   []byte
}

func newTestStream(label string) io.Reader {
	return &testStream{label: []byte(label)}
}

func (s *testStream) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(s.buf) == 0 {
			var c [8]byte
			binary.LittleEndian.PutUint64(c[:], s.ctr)
			s.ctr++
			h := sha256simd.New()
			h.Write(s.label)
			h.Write(c[:])
			s.buf = h.Sum(nil)
		}
		k := copy(p[n:], s.buf)
		s.buf = s.buf[k:]
		n += k
	}
	return n, nil
}

// fieldPrime is p = 2^448 - 2^224 - 1
var fieldPrime = func() *big.Int {
	one := big.NewInt(1)
	p := new(big.Int).Lsh(one, 448)
	p.Sub(p, new(big.Int).Lsh(one, 224))
	return p.Sub(p, one)
}()

// randomElement reads 56 raw bytes, so about one in 2^224 draws is >= p and
// all draws exercise the redundant range up to 2^448.
func randomElement(r io.Reader) FieldElement {
	var fe FieldElement
	if _, err := io.ReadFull(r, fe[:]); err != nil {
		panic(err)
	}
	return fe
}

// toBig returns the residue of fe mod p
func toBig(fe *FieldElement) *big.Int {
	be := make([]byte, fieldBytes)
	for i := range fe {
		be[fieldBytes-1-i] = fe[i]
	}
	x := new(big.Int).SetBytes(be)
	return x.Mod(x, fieldPrime)
}

// fromBig returns the canonical field element for x mod p
func fromBig(x *big.Int) FieldElement {
	var be [fieldBytes]byte
	new(big.Int).Mod(x, fieldPrime).FillBytes(be[:])
	var fe FieldElement
	for i := range fe {
		fe[i] = be[fieldBytes-1-i]
	}
	return fe
}

// mustHex decodes a 56-byte hex string
func mustHex(s string) (out [Size]byte) {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != Size {
		panic("bad test vector: " + s)
	}
	copy(out[:], b)
	return out
}
