// Package kat holds the RFC 7748 test vectors for X448 and runs them against
// the x448 package.
package kat

import (
	"bytes"
	"encoding/hex"

	"github.com/pkg/errors"

	"x448.mleku.dev"
)

// Vector is a single known-answer test: Scalar * Point must equal Expected.
// All fields are hex encoded, little-endian as in the RFC.
type Vector struct {
	Name     string
	Scalar   string
	Point    string
	Expected string
}

// Vectors are the X448 test vectors of RFC 7748 sections 5.2 and 6.2.
var Vectors = []Vector{
	{
		Name:     "rfc7748-5.2-1",
		Scalar:   "3d262fddf9ec8e88495266fea19a34d28882acef045104d0d1aae121700a779c984c24f8cdd78fbff44943eba368f54b29259a4f1c600ad3",
		Point:    "06fce640fa3487bfda5f6cf2d5263f8aad88334cbd07437f020f08f9814dc031ddbdc38c19c6da2583fa5429db94ada18aa7a7fb4ef8a086",
		Expected: "ce3e4ff95a60dc6697da1db1d85e6afbdf79b50a2412d7546d5f239fe14fbaadeb445fc66a01b0779d98223961111e21766282f73dd96b6f",
	},
	{
		Name:     "rfc7748-5.2-2",
		Scalar:   "203d494428b8399352665ddca42f9de8fef600908e0d461cb021f8c538345dd77c3e4806e25f46d3315c44e0a5b4371282dd2c8d5be3095f",
		Point:    "0fbcc2f993cd56d3305b0b7d9e55d4c1a8fb5dbb52f8e9a1e9b6201b165d015894e56c4d3570bee52fe205e28a78b91cdfbde71ce8d157db",
		Expected: "884a02576239ff7a2f2f63b2db6a9ff37047ac13568e1e30fe63c4a7ad1b3ee3a5700df34321d62077e63633c575c1c954514e99da7c179d",
	},
	{
		Name:     "rfc7748-6.2-alice-public",
		Scalar:   AlicePrivate,
		Point:    "0500000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000",
		Expected: AlicePublic,
	},
	{
		Name:     "rfc7748-6.2-bob-public",
		Scalar:   BobPrivate,
		Point:    "0500000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000",
		Expected: BobPublic,
	},
	{
		Name:     "rfc7748-6.2-alice-shared",
		Scalar:   AlicePrivate,
		Point:    BobPublic,
		Expected: SharedSecret,
	},
	{
		Name:     "rfc7748-6.2-bob-shared",
		Scalar:   BobPrivate,
		Point:    AlicePublic,
		Expected: SharedSecret,
	},
}

// RFC 7748 section 6.2 Diffie-Hellman values.
const (
	AlicePrivate = "9a8f4925d1519f5775cf46b04b5800d4ee9ee8bae8bc5565d498c28dd9c9baf574a9419744897391006382a6f127ab1d9ac2d8c0a598726b"
	AlicePublic  = "9b08f7cc31b7e3e67d22d5aea121074a273bd2b83de09c63faa73d2c22c5d9bbc836647241d953d40c5b12da88120d53177f80e532c41fa0"
	BobPrivate   = "1c306a7ac2a0e2e0990b294470cba339e6453772b075811d8fad0d1d6927c120bb5ee8972b0d3e21374c9c921b09d1b0366f10b65173992d"
	BobPublic    = "3eb7a829b0cd20f5bcfc0b599b6feccf6da4627107bdb0d4f345b43027d8b972fc3e34fb4232a13ca706dcb57aec3dae07bdc1c67bf33609"
	SharedSecret = "07fff4181ac6cc95ec1c16a94a0f74d12da232ce40a77552281d282bb60c0b56fd2464c335543936521c24403085d59a449a5037514a879d"
)

// Iterations maps a round count of the RFC 7748 section 5.2 iterated test to
// the expected value of k after that many rounds.
var Iterations = map[int]string{
	1:       "3f482c8a9f19b01e6c46ee9711d9dc14fd4bf67af30765c2ae2b846a4d23a8cd0db897086239492caf350b51f833868b9bc2b3bca9cf4113",
	1000:    "aa3b4749d55b9daf1e5b00288826c467274ce3ebbdd5c17b975e09d4af6c67cf10d087202db88286e2b79fceea3ec353ef54faa26e219f38",
	1000000: "077f453681caca3693198420bbe515cae0002472519b3e67661a7e89cab94695c8f4bcd66e61b9b9c946da8d524de3d69bd9d9d66b997e37",
}

// Decode parses a 56-byte hex string.
func Decode(s string) (out [x448.Size]byte, err error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, err
	}
	if len(b) != x448.Size {
		return out, errors.Errorf("expected %d bytes, got %d", x448.Size, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// Check runs v and returns an error describing any mismatch.
func (v Vector) Check() error {
	k, err := Decode(v.Scalar)
	if err != nil {
		return errors.Wrapf(err, "%s: scalar", v.Name)
	}
	u, err := Decode(v.Point)
	if err != nil {
		return errors.Wrapf(err, "%s: point", v.Name)
	}
	want, err := Decode(v.Expected)
	if err != nil {
		return errors.Wrapf(err, "%s: expected", v.Name)
	}

	var got [x448.Size]byte
	x448.ScalarMult(&got, &k, &u)
	if !bytes.Equal(got[:], want[:]) {
		return errors.Errorf("%s: got %x, want %x", v.Name, got, want)
	}
	return nil
}

// Iterate runs the RFC 7748 iterated test: starting with k = u = 5, each
// round sets k, u = X448(k, u), k. It returns k after n rounds. progress, if
// not nil, is called after every round.
func Iterate(n int, progress func(round int)) [x448.Size]byte {
	k := x448.Basepoint
	u := x448.Basepoint
	for i := 1; i <= n; i++ {
		var r [x448.Size]byte
		x448.ScalarMult(&r, &k, &u)
		u = k
		k = r
		if progress != nil {
			progress(i)
		}
	}
	return k
}

// CheckIterations runs Iterate for n rounds and compares with the published
// value. n must be a key of Iterations.
func CheckIterations(n int, progress func(round int)) error {
	want, ok := Iterations[n]
	if !ok {
		return errors.Errorf("no published value for %d iterations", n)
	}
	got := Iterate(n, progress)
	if hex.EncodeToString(got[:]) != want {
		return errors.Errorf("after %d iterations: got %x, want %s", n, got, want)
	}
	return nil
}
