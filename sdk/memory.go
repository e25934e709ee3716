package sdk

import (
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// timestampLayout is the fixed block-timestamp format handed to contracts.
const timestampLayout = "2006-01-02T15:04:05"

// MemoryChain is an in-process Chain used by the test suite and the local
// simulator. State lives in a plain map, events are collected in emission
// order, and block time comes from an injected clock so tests can run the
// timeout paths deterministically.
type MemoryChain struct {
	state  map[string]string
	clock  clock.Clock
	sender Address
	log    zerolog.Logger

	// Events holds every Log line in emission order.
	Events []string
}

// NewMemoryChain builds an empty chain host reading time from cl.
func NewMemoryChain(cl clock.Clock, log zerolog.Logger) *MemoryChain {
	return &MemoryChain{
		state: make(map[string]string),
		clock: cl,
		log:   log,
	}
}

// SetSender switches the authenticated caller for subsequent calls.
func (m *MemoryChain) SetSender(a Address) { m.sender = a }

func (m *MemoryChain) StateSetObject(key, value string) {
	m.state[key] = value
}

func (m *MemoryChain) StateGetObject(key string) *string {
	val, ok := m.state[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MemoryChain) Log(msg string) {
	m.Events = append(m.Events, msg)
	m.log.Info().Str("sender", m.sender.String()).Msg(msg)
}

func (m *MemoryChain) GetEnv() Env {
	return Env{
		Sender:    m.sender,
		TxID:      uuid.NewString(),
		Timestamp: m.clock.Now().UTC().Format(timestampLayout),
	}
}

// MemoryLedger is an in-process value ledger with the allowance semantics
// the escrow adapter expects. Transfers debit the escrow account the ledger
// was constructed with, mirroring how the real ledger sees the contract as
// just another account.
type MemoryLedger struct {
	escrow     Address
	balances   map[Address]uint64
	allowances map[Address]map[Address]uint64
}

// NewMemoryLedger builds an empty ledger whose Transfer calls spend from
// the given escrow account.
func NewMemoryLedger(escrow Address) *MemoryLedger {
	return &MemoryLedger{
		escrow:     escrow,
		balances:   make(map[Address]uint64),
		allowances: make(map[Address]map[Address]uint64),
	}
}

// Mint credits owner out of thin air. Test and simulator setup only.
func (l *MemoryLedger) Mint(owner Address, amount uint64) {
	l.balances[owner] += amount
}

// Approve authorizes spender to pull up to amount from owner.
func (l *MemoryLedger) Approve(owner, spender Address, amount uint64) {
	inner, ok := l.allowances[owner]
	if !ok {
		inner = make(map[Address]uint64)
		l.allowances[owner] = inner
	}
	inner[spender] = amount
}

func (l *MemoryLedger) BalanceOf(owner Address) uint64 {
	return l.balances[owner]
}

func (l *MemoryLedger) Allowance(owner, spender Address) uint64 {
	return l.allowances[owner][spender]
}

func (l *MemoryLedger) TransferFrom(from, to Address, amount uint64) bool {
	if l.allowances[from][to] < amount || l.balances[from] < amount {
		return false
	}
	l.allowances[from][to] -= amount
	l.balances[from] -= amount
	l.balances[to] += amount
	return true
}

func (l *MemoryLedger) Transfer(to Address, amount uint64) bool {
	if l.balances[l.escrow] < amount {
		return false
	}
	l.balances[l.escrow] -= amount
	l.balances[to] += amount
	return true
}
