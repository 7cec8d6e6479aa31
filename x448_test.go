package x448_test

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"testing"

	circl "github.com/cloudflare/circl/dh/x448"

	"x448.mleku.dev"
	"x448.mleku.dev/internal/kat"
)

func TestVectors(t *testing.T) {
	for _, v := range kat.Vectors {
		t.Run(v.Name, func(t *testing.T) {
			if err := v.Check(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestIterations(t *testing.T) {
	if err := kat.CheckIterations(1, nil); err != nil {
		t.Fatal(err)
	}
	if testing.Short() {
		t.Skip("skipping 1000 iterations in short mode")
	}
	if err := kat.CheckIterations(1000, nil); err != nil {
		t.Fatal(err)
	}
}

func TestScalarBaseMult(t *testing.T) {
	r := x448.NewTestStream("basemult")
	for i := 0; i < 3; i++ {
		var k, viaBase, viaMult [x448.Size]byte
		if _, err := io.ReadFull(r, k[:]); err != nil {
			t.Fatal(err)
		}
		x448.ScalarBaseMult(&viaBase, &k)
		x448.ScalarMult(&viaMult, &k, &x448.Basepoint)
		if viaBase != viaMult {
			t.Fatalf("ScalarBaseMult = %x, ScalarMult(k, 5) = %x", viaBase, viaMult)
		}
	}
}

func TestAgainstCircl(t *testing.T) {
	r := x448.NewTestStream("circl")
	for i := 0; i < 20; i++ {
		var k, u [x448.Size]byte
		if _, err := io.ReadFull(r, k[:]); err != nil {
			t.Fatal(err)
		}
		if _, err := io.ReadFull(r, u[:]); err != nil {
			t.Fatal(err)
		}
		// keep u canonical, below p
		u[x448.Size-1] &= 0x7f

		var got [x448.Size]byte
		x448.ScalarMult(&got, &k, &u)

		var want, secret, public circl.Key
		copy(secret[:], k[:])
		copy(public[:], u[:])
		if !circl.Shared(&want, &secret, &public) {
			t.Fatalf("circl rejected point %x", u)
		}
		if !bytes.Equal(got[:], want[:]) {
			t.Fatalf("ScalarMult(%x, %x) = %x, circl says %x", k, u, got, want)
		}

		// Public keys derived from the same secret must agree too
		var pub [x448.Size]byte
		var circlPub circl.Key
		x448.ScalarBaseMult(&pub, &k)
		circl.KeyGen(&circlPub, &secret)
		if !bytes.Equal(pub[:], circlPub[:]) {
			t.Fatalf("ScalarBaseMult(%x) = %x, circl says %x", k, pub, circlPub)
		}
	}
}

func TestX448(t *testing.T) {
	alice, err := hex.DecodeString(kat.AlicePrivate)
	if err != nil {
		t.Fatal(err)
	}
	bobPub, err := hex.DecodeString(kat.BobPublic)
	if err != nil {
		t.Fatal(err)
	}

	shared, err := x448.X448(alice, bobPub)
	if err != nil {
		t.Fatalf("X448 failed: %v", err)
	}
	if got := hex.EncodeToString(shared); got != kat.SharedSecret {
		t.Errorf("X448 = %s, want %s", got, kat.SharedSecret)
	}

	testCases := []struct {
		name   string
		scalar []byte
		point  []byte
		err    error
	}{
		{name: "short_scalar", scalar: alice[:55], point: bobPub, err: x448.ErrInvalidLength},
		{name: "long_point", scalar: alice, point: append(append([]byte{}, bobPub...), 0), err: x448.ErrInvalidLength},
		{name: "nil", err: x448.ErrInvalidLength},
		{name: "zero_point", scalar: alice, point: make([]byte, x448.Size), err: x448.ErrLowOrderPoint},
		{name: "one_point", scalar: alice, point: append([]byte{1}, make([]byte, x448.Size-1)...), err: x448.ErrLowOrderPoint},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := x448.X448(tc.scalar, tc.point)
			if err != tc.err {
				t.Errorf("X448 error = %v, want %v", err, tc.err)
			}
			if out != nil {
				t.Errorf("X448 returned %x alongside an error", out)
			}
		})
	}
}

func TestConcurrentScalarMult(t *testing.T) {
	v := kat.Vectors[0]
	k, _ := kat.Decode(v.Scalar)
	u, _ := kat.Decode(v.Point)
	want, _ := kat.Decode(v.Expected)

	const workers = 4
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		go func() {
			var got [x448.Size]byte
			x448.ScalarMult(&got, &k, &u)
			if got != want {
				errs <- fmt.Errorf("got %x, want %x", got, want)
				return
			}
			errs <- nil
		}()
	}
	for w := 0; w < workers; w++ {
		if err := <-errs; err != nil {
			t.Error(err)
		}
	}
}

func ExampleScalarBaseMult() {
	secret, _ := hex.DecodeString("9a8f4925d1519f5775cf46b04b5800d4ee9ee8bae8bc5565d498c28dd9c9baf574a9419744897391006382a6f127ab1d9ac2d8c0a598726b")

	var k, pub [x448.Size]byte
	copy(k[:], secret)
	x448.ScalarBaseMult(&pub, &k)
	fmt.Println(hex.EncodeToString(pub[:]))
	// Output: 9b08f7cc31b7e3e67d22d5aea121074a273bd2b83de09c63faa73d2c22c5d9bbc836647241d953d40c5b12da88120d53177f80e532c41fa0
}
