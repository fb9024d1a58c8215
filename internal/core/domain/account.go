package domain

import (
	"github.com/google/uuid"
)

// AccountID identifies an account holding a balance. Accounts are created
// implicitly on first mutation and have no other attributes of their own.
type AccountID = uuid.UUID

// EconomySnapshot is an immutable, point-in-time copy of the ledger and claim
// state. It is what crosses the boundary to storage backends and the
// leaderboard; mutating a snapshot never affects live state.
type EconomySnapshot struct {
	Balances map[AccountID]float64
	Claims   map[AccountID]ClaimDate
}

// Clone returns a deep copy of the snapshot.
func (s EconomySnapshot) Clone() EconomySnapshot {
	out := EconomySnapshot{
		Balances: make(map[AccountID]float64, len(s.Balances)),
		Claims:   make(map[AccountID]ClaimDate, len(s.Claims)),
	}
	for id, b := range s.Balances {
		out.Balances[id] = b
	}
	for id, d := range s.Claims {
		out.Claims[id] = d
	}
	return out
}
