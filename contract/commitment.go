package contract

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Choice is a round move. Rock, Paper and Scissors are the legal codes; any
// other value committed to is a "void" choice, a deliberate fold that rolls
// the round back to the move phase when revealed.
type Choice uint8

const (
	ChoiceNone Choice = 0
	Rock       Choice = 1
	Paper      Choice = 2
	Scissors   Choice = 3
)

// Legal reports whether c is one of the three playable codes.
func (c Choice) Legal() bool { return c >= Rock && c <= Scissors }

func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "none"
}

// ParseChoice maps a choice name to its code. Unknown names (including
// "none") come back as ChoiceNone.
func ParseChoice(s string) Choice {
	switch s {
	case "rock":
		return Rock
	case "paper":
		return Paper
	case "scissors":
		return Scissors
	}
	return ChoiceNone
}

const digestLen = 32

// Digest is a Keccak-256 output. A game slot stores either the committed
// move hash (pre-reveal) or the canonical choice hash (post-reveal).
type Digest [digestLen]byte

// NullDigest marks an absent commitment.
var NullDigest Digest

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Salt is the random blinder mixed into a commitment. It must be fresh per
// round: reusing a salt lets the counterparty dictionary the commitment.
type Salt [32]byte

func keccak256(parts ...[]byte) Digest {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	var d Digest
	h.Sum(d[:0])
	return d
}

// Commit binds a choice under a salt: H(choice ‖ salt). This is the digest
// a player submits during the move phase.
func Commit(c Choice, salt Salt) Digest {
	return keccak256([]byte{byte(c)}, salt[:])
}

// Canonical is the salt-free digest H(choice) stored once a reveal is
// accepted. By then both parties are committed, so secrecy is no longer
// needed and the resolver can compare bare choice digests.
func Canonical(c Choice) Digest {
	return keccak256([]byte{byte(c)})
}
