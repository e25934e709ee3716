package contract

import "okinoko-roshambo/sdk"

// Read-only queries. These never mutate and require no caller identity.

// GameSnapshot is the read model of one game.
type GameSnapshot struct {
	Host   sdk.Address
	Guest  sdk.Address
	Winner sdk.Address
	Stake  uint64
	State  GameState
}

// StakeOf returns the per-side stake of a game.
func (c *Contract) StakeOf(gameID uint64) (uint64, error) {
	g, err := c.loadGame(gameID)
	if err != nil {
		return 0, err
	}
	return g.Stake, nil
}

// Participants returns the host and guest identities of a game.
func (c *Contract) Participants(gameID uint64) (host, guest sdk.Address, err error) {
	g, err := c.loadGame(gameID)
	if err != nil {
		return sdk.NullAddress, sdk.NullAddress, err
	}
	return g.Host, g.Guest, nil
}

// Snapshot returns the full read model of a game.
func (c *Contract) Snapshot(gameID uint64) (GameSnapshot, error) {
	g, err := c.loadGame(gameID)
	if err != nil {
		return GameSnapshot{}, err
	}
	return GameSnapshot{
		Host:   g.Host,
		Guest:  g.Guest,
		Winner: g.Winner,
		Stake:  g.Stake,
		State:  g.State,
	}, nil
}
