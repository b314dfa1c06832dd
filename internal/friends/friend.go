// Package friends holds the friend record and the add-friend form logic.
//
// A Friend carries a signed running balance from the user's point of view:
// negative means the user owes the friend, positive means the friend owes the
// user, zero means the two are even.
package friends

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ID identifies a friend. Seed friends use numeric strings, new friends UUIDs.
type ID string

// DefaultAvatarBase is the placeholder avatar service; the friend id is appended.
const DefaultAvatarBase = "https://i.pravatar.cc/48?u="

// Friend is a single entry in the friend list.
// ID, Name and Image never change after creation; Balance is adjusted by bill splits.
type Friend struct {
	ID      ID
	Name    string
	Image   string
	Balance decimal.Decimal
}

// BalanceStatus classifies a balance by its sign.
type BalanceStatus int

const (
	StatusSettled BalanceStatus = iota
	StatusOwing                 // user owes the friend
	StatusOwed                  // friend owes the user
)

func (s BalanceStatus) String() string {
	switch s {
	case StatusSettled:
		return "Settled"
	case StatusOwing:
		return "Owing"
	case StatusOwed:
		return "Owed"
	default:
		return "Unknown"
	}
}

// Status returns exactly one of StatusOwing, StatusOwed or StatusSettled.
func (f Friend) Status() BalanceStatus {
	switch f.Balance.Sign() {
	case -1:
		return StatusOwing
	case 1:
		return StatusOwed
	default:
		return StatusSettled
	}
}

// BalanceMessage returns the human-readable balance line shown in the friend list.
func (f Friend) BalanceMessage() string {
	switch f.Status() {
	case StatusOwing:
		return fmt.Sprintf("You owe %s $%s", f.Name, f.Balance.Abs().String())
	case StatusOwed:
		return fmt.Sprintf("%s owes you $%s", f.Name, f.Balance.String())
	default:
		return fmt.Sprintf("You and %s are even", f.Name)
	}
}

// WithBalance returns a copy of f with delta added to its balance.
func (f Friend) WithBalance(delta decimal.Decimal) Friend {
	f.Balance = f.Balance.Add(delta)
	return f
}

// Seed returns the friends every session starts with.
func Seed() []Friend {
	return []Friend{
		{ID: "118836", Name: "Clark", Image: DefaultAvatarBase + "118836", Balance: decimal.NewFromInt(-7)},
		{ID: "933372", Name: "Sarah", Image: DefaultAvatarBase + "933372", Balance: decimal.NewFromInt(20)},
		{ID: "499476", Name: "Anthony", Image: DefaultAvatarBase + "499476", Balance: decimal.Zero},
	}
}
