package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncentivizeStalledMovePhase(t *testing.T) {
	f := newFixture(t)
	id := f.createStaked(100)

	// Nobody has moved yet, so neither side is ahead of the other.
	assert.ErrorIs(t, f.as(hostAddr).Incentivize(id), ErrNotEligible)

	hs := saltOf(0x11)
	require.NoError(t, f.as(hostAddr).SubmitMove(id, Commit(Rock, hs)))

	// The laggard cannot pressure the player who already moved.
	assert.ErrorIs(t, f.as(guestAddr).Incentivize(id), ErrNotEligible)

	// First eligible call only arms the deadline.
	require.NoError(t, f.as(hostAddr).Incentivize(id))
	g := f.game(id)
	assert.Equal(t, StateAwaitingMoves, g.State)
	assert.NotZero(t, g.Deadline)

	// Before the hour is up the call is a no-op.
	f.clock.Add(30 * time.Minute)
	require.NoError(t, f.as(hostAddr).Incentivize(id))
	assert.Equal(t, StateAwaitingMoves, f.game(id).State)

	// After the hour the stalled opponent forfeits.
	f.clock.Add(30*time.Minute + time.Second)
	require.NoError(t, f.as(hostAddr).Incentivize(id))
	g = f.game(id)
	assert.Equal(t, StateFinished, g.State)
	assert.Equal(t, hostAddr, g.Winner)
	assert.Zero(t, g.Deadline)
	assert.Len(t, f.events("gameFinished"), 1)

	require.NoError(t, f.as(hostAddr).Withdraw(id))
	assert.EqualValues(t, 200, f.ledger.BalanceOf(hostAddr))
}

func TestIncentivizeStalledRevealPhase(t *testing.T) {
	f := newFixture(t)
	id := f.createStaked(100)
	hs, gs := saltOf(0x11), saltOf(0x22)
	f.commitBoth(id, Rock, Paper, hs, gs)
	require.NoError(t, f.as(guestAddr).RevealMove(id, Paper, gs))

	assert.ErrorIs(t, f.as(hostAddr).Incentivize(id), ErrNotEligible)

	require.NoError(t, f.as(guestAddr).Incentivize(id))
	f.clock.Add(time.Hour + time.Second)
	require.NoError(t, f.as(guestAddr).Incentivize(id))

	g := f.game(id)
	assert.Equal(t, StateFinished, g.State)
	assert.Equal(t, guestAddr, g.Winner)
}

func TestDeadlineBlocksLateSubmissions(t *testing.T) {
	f := newFixture(t)
	id := f.createStaked(100)

	hs := saltOf(0x11)
	require.NoError(t, f.as(hostAddr).SubmitMove(id, Commit(Rock, hs)))
	require.NoError(t, f.as(hostAddr).Incentivize(id))
	f.clock.Add(time.Hour + time.Second)

	gs := saltOf(0x22)
	assert.ErrorIs(t, f.as(guestAddr).SubmitMove(id, Commit(Paper, gs)), ErrTooLate)
}

func TestDeadlineBlocksLateReveals(t *testing.T) {
	f := newFixture(t)
	id := f.createStaked(100)
	hs, gs := saltOf(0x11), saltOf(0x22)
	f.commitBoth(id, Rock, Paper, hs, gs)
	require.NoError(t, f.as(hostAddr).RevealMove(id, Rock, hs))
	require.NoError(t, f.as(hostAddr).Incentivize(id))
	f.clock.Add(time.Hour + time.Second)

	assert.ErrorIs(t, f.as(guestAddr).RevealMove(id, Paper, gs), ErrTooLate)
}

func TestDeadlineClearedWhenPhaseCompletes(t *testing.T) {
	f := newFixture(t)
	id := f.createStaked(100)

	hs := saltOf(0x11)
	require.NoError(t, f.as(hostAddr).SubmitMove(id, Commit(Rock, hs)))
	require.NoError(t, f.as(hostAddr).Incentivize(id))
	require.NotZero(t, f.game(id).Deadline)

	// The guest answers in time; the pressure on the reveal phase has to
	// be rebuilt from scratch.
	f.clock.Add(30 * time.Minute)
	gs := saltOf(0x22)
	require.NoError(t, f.as(guestAddr).SubmitMove(id, Commit(Paper, gs)))
	g := f.game(id)
	assert.Equal(t, StateAwaitingReveals, g.State)
	assert.Zero(t, g.Deadline)

	f.clock.Add(2 * time.Hour)
	require.NoError(t, f.as(hostAddr).RevealMove(id, Rock, hs))
	require.NoError(t, f.as(guestAddr).RevealMove(id, Paper, gs))
	assert.Equal(t, guestAddr, f.game(id).Winner)
}

func TestVoidRevealClearsDeadline(t *testing.T) {
	f := newFixture(t)
	id := f.createStaked(100)
	hs, gs := saltOf(0x11), saltOf(0x22)
	void := Choice(9)
	f.commitBoth(id, Rock, void, hs, gs)
	require.NoError(t, f.as(hostAddr).RevealMove(id, Rock, hs))
	require.NoError(t, f.as(hostAddr).Incentivize(id))
	require.NotZero(t, f.game(id).Deadline)

	// The fold lands in time. The rolled-back round must start with a
	// clean clock: neither slot is in the reveal-expected state anymore,
	// so an expired deadline could never be claimed yet would reject
	// every resubmission.
	f.clock.Add(30 * time.Minute)
	require.NoError(t, f.as(guestAddr).RevealMove(id, void, gs))
	g := f.game(id)
	assert.Equal(t, StateAwaitingMoves, g.State)
	assert.Zero(t, g.Deadline)

	// Well past the old deadline, both sides replay without complaint.
	f.clock.Add(2 * time.Hour)
	f.playRound(id, Rock, Scissors)
	assert.Equal(t, hostAddr, f.game(id).Winner)
}

func TestRecycledRecordStartsUnarmed(t *testing.T) {
	f := newFixture(t)
	id := f.createStaked(100)
	require.NoError(t, f.as(hostAddr).SubmitMove(id, Commit(Rock, saltOf(0x11))))
	require.NoError(t, f.as(hostAddr).Incentivize(id))
	require.NotZero(t, f.game(id).Deadline)
	require.NoError(t, f.as(hostAddr).WithdrawBeforeStart(id))

	id2, err := f.as(hostAddr).CreateGame(guestAddr, 100)
	require.NoError(t, err)
	require.Equal(t, id, id2)
	assert.Zero(t, f.game(id2).Deadline)
}

func TestIncentivizeRejections(t *testing.T) {
	f := newFixture(t)
	id := f.createStaked(100)

	assert.ErrorIs(t, f.as(strangerAddr).Incentivize(id), ErrNotParticipant)
	assert.ErrorIs(t, f.as(hostAddr).Incentivize(999), ErrUnknownGame)

	f.playRound(id, Rock, Scissors)
	assert.ErrorIs(t, f.as(hostAddr).Incentivize(id), ErrWrongPhase)
}
