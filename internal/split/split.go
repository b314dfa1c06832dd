// Package split computes how a shared bill moves a friend's balance.
//
// Amounts are decimal.NullDecimal so a field that was never filled in is
// distinguishable from one holding zero. Submission still treats zero as missing.
package split

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Payer says who settled the bill at the table.
type Payer int

const (
	PayerUser Payer = iota
	PayerFriend
)

func (p Payer) String() string {
	switch p {
	case PayerUser:
		return "user"
	case PayerFriend:
		return "friend"
	default:
		return "unknown"
	}
}

// Other returns the opposite payer.
func (p Payer) Other() Payer {
	if p == PayerUser {
		return PayerFriend
	}
	return PayerUser
}

// Form is the state of one bill split with the selected friend.
// A new Form is created whenever the selection changes.
type Form struct {
	bill       decimal.NullDecimal
	paidByUser decimal.NullDecimal
	Payer      Payer
}

// NewForm returns an empty form with the user as payer.
func NewForm() *Form {
	return &Form{Payer: PayerUser}
}

// Bill returns the bill total.
func (f *Form) Bill() decimal.NullDecimal { return f.bill }

// PaidByUser returns the user's own expense.
func (f *Form) PaidByUser() decimal.NullDecimal { return f.paidByUser }

// PaidByFriend is bill minus the user's expense, unset while no bill is entered.
func (f *Form) PaidByFriend() decimal.NullDecimal {
	if !f.bill.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(f.bill.Decimal.Sub(f.paidByUser.Decimal))
}

// SetBill parses text into the bill. Empty text clears it; text that is not a
// number is rejected and the previous bill kept.
func (f *Form) SetBill(text string) bool {
	v, ok := parseAmount(text)
	if !ok {
		return false
	}
	f.bill = v
	return true
}

// SetPaidByUser parses text into the user's expense. The edit is rejected, keeping
// the previous value, when the text is not a number or the amount exceeds the bill.
// A missing bill counts as zero for that comparison.
func (f *Form) SetPaidByUser(text string) bool {
	v, ok := parseAmount(text)
	if !ok {
		return false
	}
	if v.Valid && v.Decimal.GreaterThan(f.bill.Decimal) {
		return false
	}
	f.paidByUser = v
	return true
}

// Delta is the signed change to apply to the friend's balance. It reports false
// when the bill or the user's expense is missing or zero.
func (f *Form) Delta() (decimal.Decimal, bool) {
	if isBlank(f.bill) || isBlank(f.paidByUser) {
		return decimal.Zero, false
	}
	if f.Payer == PayerUser {
		return f.PaidByFriend().Decimal, true
	}
	return f.paidByUser.Decimal.Neg(), true
}

func isBlank(v decimal.NullDecimal) bool {
	return !v.Valid || v.Decimal.IsZero()
}

func parseAmount(text string) (decimal.NullDecimal, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.NullDecimal{}, true
	}
	// "12." is an amount still being typed.
	num := strings.TrimSuffix(text, ".")
	if num == "" {
		return decimal.NullDecimal{}, false
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.NullDecimal{}, false
	}
	return decimal.NewNullDecimal(d), true
}
