package ecobalance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{BRL(0), "R$ 0.00"},
		{BRL(105), "R$ 105.00"},
		{BRL(1234.5), "R$ 1234.50"},
		{BRL(-40), "-R$ 40.00"},
		{BRL(0.005), "R$ 0.01"},
		{BRL(-0.005), "-R$ 0.01"},
		{BRL(2.344), "R$ 2.34"},
		{BRL(2.345), "R$ 2.35"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.m.String())
		})
	}
}

func TestMoney_SignedString(t *testing.T) {
	assert.Equal(t, "-", BRL(0).SignedString())
	assert.Equal(t, "+R$ 1.00", BRL(1).SignedString())
	assert.Equal(t, "-R$ 1.00", BRL(-1).SignedString())
}

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "100", want: BRL(100)},
		{in: " 12.50 ", want: BRL(12.5)},
		{in: "-3.333", want: BRL(-3.333)},
		{in: "1e3", want: BRL(1000)},
		{in: "", wantErr: true},
		{in: "12,50", wantErr: true},
		{in: "R$ 5", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMoney(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "ParseMoney(%q) = %v, want %v", tc.in, got.Text(), tc.want.Text())
		})
	}
}

func TestMoney_Round(t *testing.T) {
	assert.Equal(t, "2.35", BRL(2.345).Round().Text())
	assert.Equal(t, "-2.35", BRL(-2.345).Round().Text())
	assert.Equal(t, "7", BRL(7).Round().Text())
}

func TestParsePercent(t *testing.T) {
	for _, in := range []string{"5", "5%", " 5 % ", "5.0"} {
		p, err := ParsePercent(in)
		assert.NoError(t, err, in)
		assert.True(t, p.Equal(P(5)), "ParsePercent(%q) = %v", in, p)
	}
	_, err := ParsePercent("five")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "0.5%", P(0.5).String())
}

func TestParseKind(t *testing.T) {
	testCases := []struct {
		in   string
		want Kind
	}{
		{"Receita", Income}, {"RECEITA", Income}, {"income", Income}, {"r", Income},
		{"despesa", Expense}, {"Expense", Expense}, {"D", Expense},
		{"Investimento", Investment}, {"investment", Investment}, {" i ", Investment},
	}
	for _, tc := range testCases {
		got, err := ParseKind(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("x")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
