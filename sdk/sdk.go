package sdk

// Address identifies an account on the host ledger (e.g. "hive:someone").
type Address string

// NullAddress is the zero identity. It is never a valid participant.
const NullAddress Address = ""

func (a Address) String() string { return string(a) }

// Env carries the call environment the host hands to every contract
// invocation: the authenticated sender, the transaction id, and the
// block timestamp as "YYYY-MM-DDThh:mm:ss" UTC.
type Env struct {
	Sender    Address
	TxID      string
	Timestamp string
}

// Chain is the host surface the contract runs against: keyed state storage,
// an event log sink, and the call environment. The host guarantees every
// call runs to completion without interleaving, so implementations do not
// need internal locking for correctness of a single contract instance.
type Chain interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	Log(msg string)
	GetEnv() Env
}

// Ledger is the external value ledger holding staked funds. TransferFrom
// pulls a pre-authorized deposit into escrow; Transfer pushes a payout out
// of the contract's own account. Both report success, never partial moves.
//
// The ledger is untrusted: callers must complete their own state
// transitions before invoking Transfer.
type Ledger interface {
	BalanceOf(owner Address) uint64
	Allowance(owner, spender Address) uint64
	TransferFrom(from, to Address, amount uint64) bool
	Transfer(to Address, amount uint64) bool
}
