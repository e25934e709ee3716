package contract

import "okinoko-roshambo/sdk"

// Event is the common structure for all emitted notifications: a type and
// a flat set of key/value attributes, logged as one JSON object per event.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

func (c *Contract) emitEvent(eventType string, attributes map[string]string) {
	c.chain.Log(toJSON(Event{Type: eventType, Attributes: attributes}))
	c.log.Debug().Str("event", eventType).Msg("event emitted")
}

func (c *Contract) emitInstanceInitialized(owner sdk.Address) {
	c.emitEvent("instanceInitialized", map[string]string{
		"owner": owner.String(),
	})
}

func (c *Contract) emitGameCreated(g *Game) {
	c.emitEvent("gameCreated", map[string]string{
		"id":    u64ToString(g.ID),
		"host":  g.Host.String(),
		"guest": g.Guest.String(),
		"stake": u64ToString(g.Stake),
	})
}

func (c *Contract) emitGameStarted(g *Game) {
	c.emitEvent("gameStarted", map[string]string{
		"id":    u64ToString(g.ID),
		"host":  g.Host.String(),
		"guest": g.Guest.String(),
	})
}

func (c *Contract) emitMoveSubmitted(player sdk.Address, gameID uint64, commitment Digest) {
	c.emitEvent("moveSubmitted", map[string]string{
		"player":     player.String(),
		"id":         u64ToString(gameID),
		"commitment": commitment.String(),
	})
}

func (c *Contract) emitMoveRevealed(player sdk.Address, gameID uint64, choice Choice) {
	c.emitEvent("moveRevealed", map[string]string{
		"player": player.String(),
		"id":     u64ToString(gameID),
		"choice": choice.String(),
	})
}

// emitGameFinished fires exactly once per completed or timed-out game; the
// winner attribute is empty on a draw.
func (c *Contract) emitGameFinished(g *Game) {
	c.emitEvent("gameFinished", map[string]string{
		"id":     u64ToString(g.ID),
		"host":   g.Host.String(),
		"guest":  g.Guest.String(),
		"winner": g.Winner.String(),
	})
}

func (c *Contract) emitFundsWithdrawn(player sdk.Address, gameID uint64, amount uint64) {
	c.emitEvent("fundsWithdrawn", map[string]string{
		"player": player.String(),
		"id":     u64ToString(gameID),
		"amount": u64ToString(amount),
	})
}
