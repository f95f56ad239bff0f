package statecodec

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Malcan-Technologies/shoraka-sub003/roles"
	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/securecookie"
)

func newTestCodec(t *testing.T, opts ...Option) *Codec {
	t.Helper()

	return New(
		securecookie.GenerateRandomKey(64),
		securecookie.GenerateRandomKey(32),
		NewMemoryReplayStore(),
		opts...,
	)
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := newTestCodec(t)

	in := &Payload{
		Nonce:     "nonce-1",
		CSRFState: "state-1",
		Role:      roles.Issuer,
		Signup:    true,
	}

	encoded, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	if in.TxID == "" || in.IssuedAt.IsZero() {
		t.Fatal("Encode() did not stamp TxID/IssuedAt")
	}

	got, err := c.Decode(ctx, encoded)
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestCodecRejectsTampering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := newTestCodec(t)

	encoded, err := c.Encode(&Payload{Nonce: "n", CSRFState: "s", Role: roles.Investor})
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}

	// Flip one bit at a time; every mutation must fail authentication.
	for i := 0; i < len(encoded); i++ {
		mutated := []byte(encoded)
		mutated[i] ^= 0x01
		if string(mutated) == encoded {
			continue
		}
		if _, err := c.Decode(ctx, string(mutated)); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("Decode(bit %d flipped) = %v, want ErrInvalidState", i, err)
		}
	}
}

func TestCodecRejectsForeignKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := newTestCodec(t)
	b := newTestCodec(t)

	encoded, err := a.Encode(&Payload{Nonce: "n", CSRFState: "s"})
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}

	if _, err := b.Decode(ctx, encoded); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Decode() with foreign key = %v, want ErrInvalidState", err)
	}
}

func TestCodecRejectsExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := newTestCodec(t, WithMaxAge(50*time.Millisecond))

	encoded, err := c.Encode(&Payload{Nonce: "n", CSRFState: "s"})
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	if _, err := c.Decode(ctx, encoded); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Decode() after expiry = %v, want ErrInvalidState", err)
	}
}

func TestCodecRejectsReplay(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := newTestCodec(t)

	encoded, err := c.Encode(&Payload{Nonce: "n", CSRFState: "s"})
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}

	if _, err := c.Decode(ctx, encoded); err != nil {
		t.Fatalf("first Decode() = %v", err)
	}
	if _, err := c.Decode(ctx, encoded); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Decode() = %v, want ErrInvalidState", err)
	}
}
