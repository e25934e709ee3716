package contract

import (
	"github.com/rs/zerolog"

	"okinoko-roshambo/sdk"
)

// Contract is one deployed escrow instance: a fixed host (the owner) playing
// repeated commit-reveal rock/paper/scissors matches against registered
// guests, with stakes held by the contract's own ledger account until a
// round resolves.
//
// Every operation is an atomic, serialized state transition; the host
// guarantees calls never interleave. "Waiting" is expressed purely as
// stored state observed by later calls.
type Contract struct {
	chain  sdk.Chain
	ledger sdk.Ledger
	self   sdk.Address // the contract's escrow account on the ledger
	owner  sdk.Address // instance owner; the host side of every game
	log    zerolog.Logger
}

// New binds a contract instance to its host surfaces. On first use it
// writes the bootstrap record: game index 0 is permanently terminal so the
// registry's zero value can mean "no game".
func New(chain sdk.Chain, ledger sdk.Ledger, self, owner sdk.Address, log zerolog.Logger) *Contract {
	c := &Contract{
		chain:  chain,
		ledger: ledger,
		self:   self,
		owner:  owner,
		log:    log,
	}
	if ptr := chain.StateGetObject(counterKey); ptr == nil || *ptr == "" {
		boot := &Game{ID: 0, State: StateFinished, Host: owner}
		c.saveGame(boot)
		c.setGameCount(1)
		c.emitInstanceInitialized(owner)
	}
	return c
}

// Owner is the host side of every game on this instance.
func (c *Contract) Owner() sdk.Address { return c.owner }

func (c *Contract) saveGame(g *Game) {
	c.chain.StateSetObject(gameKey(g.ID), string(encodeGame(g)))
	c.log.Debug().
		Uint64("game", g.ID).
		Stringer("state", g.State).
		Msg("game saved")
}

func (c *Contract) loadGame(id uint64) (*Game, error) {
	val := c.chain.StateGetObject(gameKey(id))
	if val == nil || *val == "" {
		return nil, wrapUnknown(id)
	}
	return decodeGame([]byte(*val))
}

// loadFor is the shared entry-point preamble: load the game, authenticate
// the caller as one of its two participants, and resolve their slot.
// Index 0 is the terminal bootstrap record and never accepts calls.
func (c *Contract) loadFor(gameID uint64) (sdk.Env, *Game, int, error) {
	env := c.chain.GetEnv()
	if gameID == 0 {
		return env, nil, 0, wrapUnknown(gameID)
	}
	g, err := c.loadGame(gameID)
	if err != nil {
		return env, nil, 0, err
	}
	side, err := g.sideOf(env.Sender)
	if err != nil {
		return env, nil, 0, err
	}
	return env, g, side, nil
}

func (c *Contract) gameCount() uint64 {
	ptr := c.chain.StateGetObject(counterKey)
	if ptr == nil || *ptr == "" {
		return 0
	}
	return stringToU64(*ptr)
}

func (c *Contract) setGameCount(n uint64) {
	c.chain.StateSetObject(counterKey, u64ToString(n))
}
