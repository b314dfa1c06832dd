package split

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestForm_Defaults(t *testing.T) {
	f := NewForm()
	assert.Equal(t, PayerUser, f.Payer)
	assert.False(t, f.Bill().Valid)
	assert.False(t, f.PaidByUser().Valid)
	assert.False(t, f.PaidByFriend().Valid, "no bill means no friend expense")

	_, ok := f.Delta()
	assert.False(t, ok)
}

func TestForm_PayerUser(t *testing.T) {
	f := NewForm()
	require.True(t, f.SetBill("50"))
	require.True(t, f.SetPaidByUser("20"))

	pbf := f.PaidByFriend()
	require.True(t, pbf.Valid)
	assert.True(t, pbf.Decimal.Equal(dec("30")))

	delta, ok := f.Delta()
	require.True(t, ok)
	assert.True(t, delta.Equal(dec("30")), "delta = %s", delta)
}

func TestForm_PayerFriend(t *testing.T) {
	f := NewForm()
	require.True(t, f.SetBill("100"))
	require.True(t, f.SetPaidByUser("40"))
	f.Payer = PayerFriend

	delta, ok := f.Delta()
	require.True(t, ok)
	assert.True(t, delta.Equal(dec("-40")), "delta = %s", delta)
}

func TestForm_PaidByUserAboveBillRejected(t *testing.T) {
	f := NewForm()
	require.True(t, f.SetBill("50"))
	require.True(t, f.SetPaidByUser("20"))

	assert.False(t, f.SetPaidByUser("80"))
	assert.True(t, f.PaidByUser().Decimal.Equal(dec("20")), "previous value must be retained")

	// Equal to the bill is allowed.
	assert.True(t, f.SetPaidByUser("50"))
	assert.True(t, f.PaidByFriend().Decimal.IsZero())
}

func TestForm_PaidByUserWithoutBill(t *testing.T) {
	f := NewForm()
	assert.False(t, f.SetPaidByUser("5"), "missing bill compares as zero")
	assert.False(t, f.PaidByUser().Valid)
	assert.True(t, f.SetPaidByUser("0"))
	assert.True(t, f.PaidByUser().Valid)
}

func TestForm_LoweringBillKeepsExpense(t *testing.T) {
	f := NewForm()
	require.True(t, f.SetBill("50"))
	require.True(t, f.SetPaidByUser("40"))
	require.True(t, f.SetBill("30"))

	assert.True(t, f.PaidByUser().Decimal.Equal(dec("40")))
	assert.True(t, f.PaidByFriend().Decimal.Equal(dec("-10")))
}

func TestForm_UnparseableInputRejected(t *testing.T) {
	f := NewForm()
	require.True(t, f.SetBill("12"))
	for _, in := range []string{"abc", ".", "1.2.3", "--1"} {
		assert.False(t, f.SetBill(in), "input %q", in)
	}
	assert.True(t, f.Bill().Decimal.Equal(dec("12")))
}

func TestForm_PartialDecimalAccepted(t *testing.T) {
	f := NewForm()
	require.True(t, f.SetBill("12."))
	assert.True(t, f.Bill().Decimal.Equal(dec("12")))
	require.True(t, f.SetBill("12.5"))
	assert.True(t, f.Bill().Decimal.Equal(dec("12.5")))
}

func TestForm_ClearingField(t *testing.T) {
	f := NewForm()
	require.True(t, f.SetBill("10"))
	require.True(t, f.SetBill(""))
	assert.False(t, f.Bill().Valid)
	assert.False(t, f.PaidByFriend().Valid)
}

func TestForm_ZeroCountsAsMissingOnSubmit(t *testing.T) {
	tests := []struct {
		name string
		bill string
		paid string
	}{
		{"zero bill", "0", "0"},
		{"zero expense", "10", "0"},
		{"missing expense", "10", ""},
		{"missing bill", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm()
			require.True(t, f.SetBill(tt.bill))
			require.True(t, f.SetPaidByUser(tt.paid))
			_, ok := f.Delta()
			assert.False(t, ok)
		})
	}
}

// A bill entered as zero is distinct from no bill: the friend's share is shown.
func TestForm_ZeroBillIsSet(t *testing.T) {
	f := NewForm()
	require.True(t, f.SetBill("0"))
	pbf := f.PaidByFriend()
	assert.True(t, pbf.Valid)
	assert.True(t, pbf.Decimal.IsZero())
}

func TestForm_FractionalAmounts(t *testing.T) {
	f := NewForm()
	require.True(t, f.SetBill("45.60"))
	require.True(t, f.SetPaidByUser("12.35"))
	delta, ok := f.Delta()
	require.True(t, ok)
	assert.True(t, delta.Equal(dec("33.25")), "delta = %s", delta)
}

func TestPayer(t *testing.T) {
	assert.Equal(t, PayerFriend, PayerUser.Other())
	assert.Equal(t, PayerUser, PayerFriend.Other())
	assert.Equal(t, "user", PayerUser.String())
	assert.Equal(t, "friend", PayerFriend.String())
}
