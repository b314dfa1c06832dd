package ui

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatnsplit/internal/friends"
	"eatnsplit/internal/split"
)

func sarah() friends.Friend {
	return friends.Seed()[1]
}

func submitSplit(t *testing.T, f *SplitBillForm) (SplitBillMsg, bool) {
	t.Helper()
	_, cmd := f.Update(keyMsg("enter"))
	if cmd == nil {
		return SplitBillMsg{}, false
	}
	msg, ok := cmd().(SplitBillMsg)
	require.True(t, ok)
	return msg, true
}

func TestSplitBillForm_View(t *testing.T) {
	f := NewSplitBillForm(sarah())
	assert.Equal(t, friends.ID("933372"), f.FriendID())

	out := f.View()
	for _, want := range []string{
		"Split a bill with Sarah",
		"Bill value",
		"Your expense",
		"Sarah's expense",
		"Who is paying the bill?",
		"(•) You",
		"( ) Sarah",
		"[ Split bill ]",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSplitBillForm_DerivesFriendExpense(t *testing.T) {
	f := NewSplitBillForm(sarah())
	typeText(f, "100")
	f.Update(keyMsg("tab"))
	typeText(f, "40")

	paid := f.Form().PaidByFriend()
	require.True(t, paid.Valid)
	assert.True(t, paid.Decimal.Equal(decimal.NewFromInt(60)))
	assert.Contains(t, f.View(), "> 60")
}

func TestSplitBillForm_UserPays(t *testing.T) {
	f := NewSplitBillForm(sarah())
	typeText(f, "100")
	f.Update(keyMsg("tab"))
	typeText(f, "40")

	msg, ok := submitSplit(t, f)
	require.True(t, ok)
	assert.True(t, msg.Delta.Equal(decimal.NewFromInt(60)), "delta = %s", msg.Delta)
}

func TestSplitBillForm_FriendPays(t *testing.T) {
	f := NewSplitBillForm(sarah())
	typeText(f, "100")
	f.Update(keyMsg("tab"))
	typeText(f, "40")
	f.Update(keyMsg("tab"))
	require.Equal(t, splitFieldPayer, f.Field())
	f.Update(keyMsg("right"))
	require.Equal(t, split.PayerFriend, f.Form().Payer)
	assert.Contains(t, f.View(), "(•) Sarah")

	msg, ok := submitSplit(t, f)
	require.True(t, ok)
	assert.True(t, msg.Delta.Equal(decimal.NewFromInt(-40)), "delta = %s", msg.Delta)
}

func TestSplitBillForm_PayerToggleKeys(t *testing.T) {
	f := NewSplitBillForm(sarah())
	f.focusField(splitFieldPayer)

	f.Update(keyMsg("space"))
	assert.Equal(t, split.PayerFriend, f.Form().Payer)
	f.Update(keyMsg("h"))
	assert.Equal(t, split.PayerUser, f.Form().Payer)
	f.Update(keyMsg("x"))
	assert.Equal(t, split.PayerUser, f.Form().Payer, "other keys ignored on the selector")
}

func TestSplitBillForm_RejectsExpenseAboveBill(t *testing.T) {
	f := NewSplitBillForm(sarah())
	typeText(f, "50")
	f.Update(keyMsg("tab"))
	typeText(f, "80")

	paid := f.Form().PaidByUser()
	require.True(t, paid.Valid)
	assert.True(t, paid.Decimal.Equal(decimal.NewFromInt(8)))
}

func TestSplitBillForm_RejectsNonNumeric(t *testing.T) {
	f := NewSplitBillForm(sarah())
	typeText(f, "1a2")
	assert.True(t, f.Form().Bill().Decimal.Equal(decimal.NewFromInt(12)))
}

func TestSplitBillForm_DecimalAmounts(t *testing.T) {
	f := NewSplitBillForm(sarah())
	typeText(f, "10.5")
	f.Update(keyMsg("tab"))
	typeText(f, "3.25")

	msg, ok := submitSplit(t, f)
	require.True(t, ok)
	assert.True(t, msg.Delta.Equal(decimal.RequireFromString("7.25")), "delta = %s", msg.Delta)
}

func TestSplitBillForm_IncompleteIgnored(t *testing.T) {
	f := NewSplitBillForm(sarah())
	_, ok := submitSplit(t, f)
	assert.False(t, ok, "empty form")

	typeText(f, "50")
	_, ok = submitSplit(t, f)
	assert.False(t, ok, "no expense")

	f.Update(keyMsg("tab"))
	typeText(f, "0")
	_, ok = submitSplit(t, f)
	assert.False(t, ok, "zero expense")
}
