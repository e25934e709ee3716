package contract

import (
	"github.com/pkg/errors"

	"okinoko-roshambo/sdk"
)

// Game registry: one live game per guest, identified by a stable index.
// Index 0 is the terminal bootstrap record written at initialization, so a
// zero lookup always means "no game".

func (c *Contract) registryGet(guest sdk.Address) uint64 {
	ptr := c.chain.StateGetObject(registryKey(guest))
	if ptr == nil || *ptr == "" {
		return 0
	}
	return stringToU64(*ptr)
}

func (c *Contract) registrySet(guest sdk.Address, id uint64) {
	c.chain.StateSetObject(registryKey(guest), u64ToString(id))
}

// CreateGame registers a new game against guest for the given per-side
// stake, or recycles the withdrawn record already mapped to that guest.
// Owner only; the owner is the host side of every game on this instance.
func (c *Contract) CreateGame(guest sdk.Address, stake uint64) (uint64, error) {
	env := c.chain.GetEnv()
	if env.Sender != c.owner {
		return 0, errors.Wrapf(ErrNotOwner, "caller %s", env.Sender)
	}
	if guest == sdk.NullAddress || guest == c.owner {
		return 0, errors.Wrapf(ErrBadGuest, "guest %q", guest)
	}

	if id := c.registryGet(guest); id != 0 {
		g, err := c.loadGame(id)
		if err != nil {
			return 0, err
		}
		if g.State != StateWithdrawn {
			return 0, errors.Wrapf(ErrGameLive, "game %d is %s", id, g.State)
		}
		resetGame(g, stake)
		c.saveGame(g)
		c.emitGameCreated(g)
		return g.ID, nil
	}

	id := c.gameCount()
	g := &Game{
		ID:    id,
		State: StateCreated,
		Host:  c.owner,
		Guest: guest,
		Stake: stake,
	}
	c.saveGame(g)
	c.setGameCount(id + 1)
	// The mapping records the index actually allocated for this game.
	c.registrySet(guest, id)
	c.emitGameCreated(g)
	return id, nil
}

// resetGame recycles a withdrawn record for a fresh match against the same
// guest. Identity (ID, Host, Guest) is preserved; everything mutable is
// overwritten in place.
func resetGame(g *Game, stake uint64) {
	g.State = StateCreated
	g.Winner = sdk.NullAddress
	g.Stake = stake
	g.Deadline = 0
	for i := range g.Slots {
		g.Slots[i].State = PlayerInitialized
		g.Slots[i].Commitment = NullDigest
	}
}

// GameID is the pure registry lookup: the game index mapped to guest, or 0
// when no game exists for that pairing.
func (c *Contract) GameID(guest sdk.Address) uint64 {
	return c.registryGet(guest)
}
