package contract

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"okinoko-roshambo/sdk"
)

// ---------- Types & Constants ----------

// GameState is the lifecycle position of a game. States only advance in
// the order listed, except for the explicit backward edges: a void reveal
// rolls AwaitingReveals back to AwaitingMoves, and the rematch paths
// re-enter AwaitingStakes / AwaitingMoves from Finished.
type GameState uint8

const (
	StateCreated         GameState = 0 // registered, no stake escrowed yet
	StateAwaitingStakes  GameState = 1 // at least one deposit outstanding
	StateAwaitingMoves   GameState = 2 // both staked, commitments outstanding
	StateAwaitingReveals GameState = 3 // both committed, reveals outstanding
	StateFinished        GameState = 4 // resolved; winner set or draw
	StateWithdrawn       GameState = 5 // escrow released; record recyclable
)

func (s GameState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateAwaitingStakes:
		return "awaitingStakes"
	case StateAwaitingMoves:
		return "awaitingMoves"
	case StateAwaitingReveals:
		return "awaitingReveals"
	case StateFinished:
		return "finished"
	case StateWithdrawn:
		return "withdrawn"
	}
	return "unknown"
}

// PlayerState is the per-side position within the current round.
type PlayerState uint8

const (
	PlayerInitialized      PlayerState = 0
	PlayerStaked           PlayerState = 1
	PlayerMoveSubmitted    PlayerState = 2
	PlayerRevealed         PlayerState = 3
	PlayerRematchRequested PlayerState = 4
)

// funded reports whether this side's stake is sitting in escrow.
func (s PlayerState) funded() bool {
	return s == PlayerStaked || s == PlayerMoveSubmitted || s == PlayerRevealed
}

// PlayerSlot is the mutable per-side data. Commitment is meaningful only
// relative to State: the committed-move hash while MoveSubmitted, the
// canonical choice hash once Revealed, the null digest otherwise.
type PlayerSlot struct {
	State      PlayerState
	Commitment Digest
}

// Slot indices. The winner of a resolved round is a slot index or drawSlot.
const (
	hostSlot  = 0
	guestSlot = 1
	drawSlot  = -1
)

// Game is one escrowed match between the instance host and a guest. The
// record's identity (ID) is immutable once created; rematches overwrite the
// mutable fields in place rather than allocating a fresh record.
//
// Deadline is the per-game incentive deadline in unix seconds, zero while
// unarmed. It is cleared whenever the phase it guards completes.
type Game struct {
	ID       uint64
	State    GameState
	Host     sdk.Address
	Guest    sdk.Address
	Winner   sdk.Address // empty while running and on a draw
	Stake    uint64      // per-side deposit; doubles on rematch-with-winnings
	Deadline uint64
	Slots    [2]PlayerSlot // index 0 = host, index 1 = guest
}

// sideOf resolves the caller to a slot index. Every state-mutating entry
// point goes through this exactly once; nothing else derives a side.
func (g *Game) sideOf(caller sdk.Address) (int, error) {
	switch caller {
	case g.Host:
		return hostSlot, nil
	case g.Guest:
		return guestSlot, nil
	}
	return 0, errors.Wrapf(ErrNotParticipant, "caller %s, game %d", caller, g.ID)
}

// player returns the identity occupying a slot.
func (g *Game) player(side int) sdk.Address {
	if side == hostSlot {
		return g.Host
	}
	return g.Guest
}

func opponent(side int) int { return 1 - side }

// ---------- Storage Keys ----------

func gameKey(id uint64) string             { return "g:" + u64ToString(id) }
func registryKey(guest sdk.Address) string { return "r:" + string(guest) }

const counterKey = "g:count"

// ---------- Binary Codec ----------

// codecVersion increments when the storage encoding changes. Decoding
// rejects any other version rather than guessing.
const codecVersion uint8 = 1

// encodeGame packs a game into its stored form.
//
// Layout:
//
//	version | ID | State | Stake | Deadline | Host | Guest | winner? |
//	2 x (slot state | commitment)
//
// Strings are u16 length-prefixed; the winner is flag-prefixed; slot
// commitments are raw 32-byte digests (null digest when absent).
func encodeGame(g *Game) []byte {
	out := make([]byte, 0, 96+len(g.Host)+len(g.Guest)+len(g.Winner))

	w8 := func(x byte) { out = append(out, x) }
	w64 := func(x uint64) {
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], x)
		out = append(out, tmp[:]...)
	}
	writeStr := func(s string) {
		var tmp [2]byte
		binary.BigEndian.PutUint16(tmp[:], uint16(len(s)))
		out = append(out, tmp[:]...)
		out = append(out, s...)
	}

	w8(codecVersion)
	w64(g.ID)
	w8(byte(g.State))
	w64(g.Stake)
	w64(g.Deadline)
	writeStr(string(g.Host))
	writeStr(string(g.Guest))

	if g.Winner != sdk.NullAddress {
		w8(1)
		writeStr(string(g.Winner))
	} else {
		w8(0)
	}

	for i := range g.Slots {
		w8(byte(g.Slots[i].State))
		out = append(out, g.Slots[i].Commitment[:]...)
	}
	return out
}

// decodeGame reconstructs a game from storage, ensuring no trailing bytes
// remain.
func decodeGame(b []byte) (*Game, error) {
	r := &rd{b: b}
	if r.u8() != codecVersion {
		return nil, errors.Wrap(ErrCorruptState, "unsupported codec version")
	}
	g := &Game{}
	g.ID = r.u64()
	g.State = GameState(r.u8())
	g.Stake = r.u64()
	g.Deadline = r.u64()
	g.Host = sdk.Address(r.str())
	g.Guest = sdk.Address(r.str())
	if r.u8() == 1 {
		g.Winner = sdk.Address(r.str())
	}
	for i := range g.Slots {
		g.Slots[i].State = PlayerState(r.u8())
		copy(g.Slots[i].Commitment[:], r.bytes(digestLen))
	}
	if err := r.mustEnd(); err != nil {
		return nil, err
	}
	return g, nil
}

// rd is a bounds-checked binary reader over a stored byte slice. The first
// out-of-range read poisons the reader; mustEnd surfaces the error.
type rd struct {
	b   []byte
	i   int
	err error
}

func (r *rd) need(n int) bool {
	if r.err != nil {
		return false
	}
	if r.i+n > len(r.b) {
		r.err = errors.Wrap(ErrCorruptState, "decode overflow")
		return false
	}
	return true
}

func (r *rd) u8() byte {
	if !r.need(1) {
		return 0
	}
	v := r.b[r.i]
	r.i++
	return v
}

func (r *rd) u16() uint16 {
	if !r.need(2) {
		return 0
	}
	v := binary.BigEndian.Uint16(r.b[r.i : r.i+2])
	r.i += 2
	return v
}

func (r *rd) u64() uint64 {
	if !r.need(8) {
		return 0
	}
	v := binary.BigEndian.Uint64(r.b[r.i : r.i+8])
	r.i += 8
	return v
}

func (r *rd) bytes(n int) []byte {
	if !r.need(n) {
		return make([]byte, n)
	}
	v := r.b[r.i : r.i+n]
	r.i += n
	return v
}

func (r *rd) str() string {
	l := int(r.u16())
	return string(r.bytes(l))
}

func (r *rd) mustEnd() error {
	if r.err == nil && r.i != len(r.b) {
		return errors.Wrap(ErrCorruptState, "trailing bytes")
	}
	return r.err
}
