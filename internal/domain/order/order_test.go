package order

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/kart-relations/internal/domain/account"
	"github.com/xenking/kart-relations/internal/domain/discount"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func newOrder(owner *account.Account, items ...string) *Order {
	o := New(owner, discount.Default())
	for _, item := range items {
		o.AddItem(item)
	}
	return o
}

func TestOrder_Totals(t *testing.T) {
	customer := account.NewCustomer("JaneDoe", "jane@example.com", 456)

	tests := []struct {
		name         string
		items        []string
		wantTotal    decimal.Decimal
		wantDiscount decimal.Decimal
		wantFinal    decimal.Decimal
	}{
		{
			name:         "empty",
			wantTotal:    d("0"),
			wantDiscount: d("0"),
			wantFinal:    d("0"),
		},
		{
			name:         "below threshold",
			items:        []string{"Tablet", "Headphones"},
			wantTotal:    d("20"),
			wantDiscount: d("0"),
			wantFinal:    d("20"),
		},
		{
			name:         "exactly threshold",
			items:        []string{"a", "b", "c", "d", "e"},
			wantTotal:    d("50"),
			wantDiscount: d("0"),
			wantFinal:    d("50"),
		},
		{
			name:         "six items",
			items:        []string{"a", "a", "a", "a", "a", "a"},
			wantTotal:    d("60"),
			wantDiscount: d("6"),
			wantFinal:    d("54"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newOrder(customer, tt.items...).Totals()

			assert.True(t, tt.wantTotal.Equal(got.Total), "total %s", got.Total)
			assert.True(t, tt.wantDiscount.Equal(got.Discount), "discount %s", got.Discount)
			assert.True(t, tt.wantFinal.Equal(got.Final), "final %s", got.Final)
			assert.True(t, got.Final.Equal(got.Total.Sub(got.Discount)))
		})
	}
}

func TestOrder_TotalsUsesPolicy(t *testing.T) {
	var seen decimal.Decimal
	policy := discount.Func(func(total decimal.Decimal) decimal.Decimal {
		seen = total
		return d("2.5")
	})
	o := New(account.NewAdmin("root", "root@example.com", 1), policy)
	o.AddItem("Laptop")

	got := o.Totals()

	assert.True(t, d("10").Equal(seen))
	assert.True(t, d("7.5").Equal(got.Final))
	assert.NotNil(t, o.Policy())
}

func TestOrder_Process_Customer(t *testing.T) {
	o := newOrder(account.NewCustomer("JaneDoe", "jane@example.com", 456), "Tablet", "Headphones")

	var buf bytes.Buffer
	totals, err := o.Process(&buf)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Processing order for Customer with items:",
		"- Tablet",
		"- Headphones",
		"Total: 20.0 USD",
		"Discount: 0.0 USD",
		"Final total after discount: 20.0 USD",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
	assert.True(t, d("20").Equal(totals.Final))
}

func TestOrder_Process_AdminWithDiscount(t *testing.T) {
	o := newOrder(account.NewAdmin("root", "root@example.com", 9), "x", "x", "x", "x", "x", "x")

	var buf bytes.Buffer
	_, err := o.Process(&buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Processing order for Admin with items:", lines[0])
	assert.Equal(t, "Total: 60.0 USD", lines[7])
	assert.Equal(t, "Discount: 6.0 USD", lines[8])
	assert.Equal(t, "Final total after discount: 54.0 USD", lines[9])
}

func TestOrder_Process_Empty(t *testing.T) {
	o := newOrder(account.NewCustomer("", "", 0))

	var buf bytes.Buffer
	_, err := o.Process(&buf)
	require.NoError(t, err)

	assert.Equal(t, "Processing order for Customer with items:\n"+
		"Total: 0.0 USD\n"+
		"Discount: 0.0 USD\n"+
		"Final total after discount: 0.0 USD\n", buf.String())
}

func TestOrder_Process_WriteError(t *testing.T) {
	o := newOrder(account.NewCustomer("JaneDoe", "jane@example.com", 456), "Tablet")

	_, err := o.Process(failingWriter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestOrder_SharedOwner(t *testing.T) {
	owner := account.NewCustomer("JaneDoe", "jane@example.com", 456)
	a := New(owner, discount.Default())
	b := New(owner, discount.Default())

	assert.Same(t, a.Owner(), b.Owner())
}

func TestReceipt_MarshalJSON(t *testing.T) {
	o := newOrder(account.NewCustomer("JaneDoe", "jane@example.com", 456), "Tablet", "Headphones")
	r := o.Receipt("r-1")
	r.Payment = "paypal"

	data, err := r.MarshalJSON()
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "r-1",
		"role": "Customer",
		"username": "JaneDoe",
		"items": ["Tablet", "Headphones"],
		"total": "20.0",
		"discount": "0.0",
		"final_total": "20.0",
		"currency": "USD",
		"payment": "paypal"
	}`, string(data))
}

func TestReceipt_MarshalJSON_NoIDNoPayment(t *testing.T) {
	o := newOrder(account.NewAdmin("root", "root@example.com", 1))

	data, err := o.Receipt("").MarshalJSON()
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"role": "Admin",
		"username": "root",
		"items": [],
		"total": "0.0",
		"discount": "0.0",
		"final_total": "0.0",
		"currency": "USD"
	}`, string(data))
}
