package contract

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"okinoko-roshambo/sdk"
)

const (
	hostAddr     = sdk.Address("hive:host")
	guestAddr    = sdk.Address("hive:guest")
	otherAddr    = sdk.Address("hive:someoneelse")
	strangerAddr = sdk.Address("hive:stranger")
	escrowAddr   = sdk.Address("contract:roshambo")
)

type fixture struct {
	t      *testing.T
	c      *Contract
	chain  *sdk.MemoryChain
	ledger *sdk.MemoryLedger
	clock  *clock.Mock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mock := clock.NewMock()
	// Start block time at an unremarkable date well past the epoch.
	mock.Add(40 * 365 * 24 * time.Hour)
	chain := sdk.NewMemoryChain(mock, zerolog.Nop())
	ledger := sdk.NewMemoryLedger(escrowAddr)
	chain.SetSender(hostAddr)
	c := New(chain, ledger, escrowAddr, hostAddr, zerolog.Nop())
	return &fixture{t: t, c: c, chain: chain, ledger: ledger, clock: mock}
}

// as switches the authenticated caller for the next call.
func (f *fixture) as(a sdk.Address) *Contract {
	f.chain.SetSender(a)
	return f.c
}

func (f *fixture) fund(a sdk.Address, amount uint64)    { f.ledger.Mint(a, amount) }
func (f *fixture) approve(a sdk.Address, amount uint64) { f.ledger.Approve(a, escrowAddr, amount) }

func (f *fixture) game(id uint64) *Game {
	f.t.Helper()
	g, err := f.c.loadGame(id)
	require.NoError(f.t, err)
	return g
}

// createStaked funds both sides with exactly the stake, creates the game
// and deposits both stakes, leaving it in AwaitingMoves.
func (f *fixture) createStaked(stake uint64) uint64 {
	f.t.Helper()
	id, err := f.as(hostAddr).CreateGame(guestAddr, stake)
	require.NoError(f.t, err)
	f.fund(hostAddr, stake)
	f.fund(guestAddr, stake)
	f.stakeBoth(id, stake)
	return id
}

func (f *fixture) stakeBoth(id uint64, stake uint64) {
	f.t.Helper()
	f.approve(hostAddr, stake)
	require.NoError(f.t, f.as(hostAddr).Stake(id))
	f.approve(guestAddr, stake)
	require.NoError(f.t, f.as(guestAddr).Stake(id))
	require.Equal(f.t, StateAwaitingMoves, f.game(id).State)
}

func saltOf(b byte) Salt {
	var s Salt
	for i := range s {
		s[i] = b
	}
	return s
}

func (f *fixture) commitBoth(id uint64, hc, gc Choice, hs, gs Salt) {
	f.t.Helper()
	require.NoError(f.t, f.as(hostAddr).SubmitMove(id, Commit(hc, hs)))
	require.NoError(f.t, f.as(guestAddr).SubmitMove(id, Commit(gc, gs)))
}

func (f *fixture) revealBoth(id uint64, hc, gc Choice, hs, gs Salt) {
	f.t.Helper()
	require.NoError(f.t, f.as(hostAddr).RevealMove(id, hc, hs))
	require.NoError(f.t, f.as(guestAddr).RevealMove(id, gc, gs))
}

// playRound runs a full commit-reveal round from AwaitingMoves to Finished.
func (f *fixture) playRound(id uint64, hc, gc Choice) {
	f.t.Helper()
	hs, gs := saltOf(0x11), saltOf(0x22)
	f.commitBoth(id, hc, gc, hs, gs)
	f.revealBoth(id, hc, gc, hs, gs)
}

// events decodes every emitted notification of the given type, in order.
func (f *fixture) events(eventType string) []Event {
	f.t.Helper()
	var out []Event
	for _, raw := range f.chain.Events {
		var ev Event
		require.NoError(f.t, json.Unmarshal([]byte(raw), &ev))
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}
