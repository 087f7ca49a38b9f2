package srn

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatRoundTrip(t *testing.T) {
	kinds := []Kind{
		Account, User, Wallet, Transfer, PaymentMethod, ACHPaymentMethod,
		Email, Cellphone, Bitcoin, Ethereum, Avalanche, Stellar,
		Algorand, Matic, Flow, Loopring,
	}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			original := New(kind, "ID_12345")
			parsed, err := Parse(original.String())
			require.NoError(t, err)
			assert.Equal(t, original, parsed)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  SRN
	}{
		{"payment method", "paymentmethod:PA_ABC123", SRN{Kind: PaymentMethod, ID: "PA_ABC123"}},
		{"ach payment method", "paymentmethod:PA_ABC123:ach", SRN{Kind: ACHPaymentMethod, ID: "PA_ABC123"}},
		{"account", "account:AC_XXYYZZ", SRN{Kind: Account, ID: "AC_XXYYZZ"}},
		{"ethereum address", "ethereum:0xc12fae05cbe72a501540f260d6c49ddc6f9d9f4d", SRN{Kind: Ethereum, ID: "0xc12fae05cbe72a501540f260d6c49ddc6f9d9f4d"}},
		{"cellphone", "cellphone:+12062108021", SRN{Kind: Cellphone, ID: "+12062108021"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnknownVariant(t *testing.T) {
	_, err := Parse("bogus:xyz")
	require.Error(t, err)

	var unknown *UnknownVariantError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bogus", unknown.Tag)

	// the error message names the bad tag and lists every valid one
	msg := err.Error()
	assert.Contains(t, msg, `"bogus"`)
	for _, tag := range validTags {
		assert.Contains(t, msg, tag)
	}
}

func TestParseMissingType(t *testing.T) {
	for _, input := range []string{"", "noColonHere", ":justAnId"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			var missing *MissingTypeError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, input, missing.Input)
		})
	}
}

func TestParseUnsupportedSuffix(t *testing.T) {
	_, err := Parse("ethereum:0xabc:ach")
	var unsupported *UnsupportedSuffixError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "ethereum", unsupported.Tag)
	assert.Equal(t, "ach", unsupported.Suffix)

	_, err = Parse("paymentmethod:PA_1:wire")
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "wire", unsupported.Suffix)
}

func TestJSONRoundTrip(t *testing.T) {
	type owner struct {
		Owner SRN `json:"owner"`
	}

	encoded, err := json.Marshal(owner{Owner: New(ACHPaymentMethod, "PA_9")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"owner":"paymentmethod:PA_9:ach"}`, string(encoded))

	var decoded owner
	require.NoError(t, json.Unmarshal([]byte(`{"owner":"account:AC_1"}`), &decoded))
	assert.Equal(t, New(Account, "AC_1"), decoded.Owner)

	var bad owner
	err = json.Unmarshal([]byte(`{"owner":"widget:W_1"}`), &bad)
	var unknown *UnknownVariantError
	assert.ErrorAs(t, err, &unknown)
}
