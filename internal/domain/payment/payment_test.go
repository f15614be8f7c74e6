package payment

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessors(t *testing.T) {
	tests := []struct {
		method Method
		amount string
		want   string
	}{
		{method: MethodCreditCard, amount: "54", want: "Processing Credit Card payment of 54.0 USD.\n"},
		{method: MethodPayPal, amount: "20", want: "Processing PayPal payment of 20.0 USD.\n"},
		{method: MethodPayPal, amount: "45.009", want: "Processing PayPal payment of 45.009 USD.\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			p, err := New(tt.method)
			require.NoError(t, err)
			require.NotNil(t, p)
			assert.Equal(t, tt.method, p.Method())

			var buf bytes.Buffer
			require.NoError(t, p.Pay(context.Background(), &buf, decimal.RequireFromString(tt.amount)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNew_None(t *testing.T) {
	p, err := New(MethodNone)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestNew_Unknown(t *testing.T) {
	_, err := New(Method("cash"))
	assert.True(t, errors.Is(err, ErrUnknownMethod))
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{in: "", want: MethodNone},
		{in: "credit_card", want: MethodCreditCard},
		{in: " PayPal ", want: MethodPayPal},
		{in: "bitcoin", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownMethod))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
