package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type createRequest struct {
	Country string          `validate:"required,iso3166_1_alpha2"`
	Amount  decimal.Decimal `validate:"gt=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(createRequest{
		Country: "US",
		Amount:  decimal.NewFromInt(20),
	}))
}

func TestValidateFailures(t *testing.T) {
	v := New()

	err := v.Validate(createRequest{Country: "", Amount: decimal.NewFromInt(1)})
	assert.ErrorContains(t, err, "Country")

	err = v.Validate(createRequest{Country: "USA", Amount: decimal.NewFromInt(1)})
	assert.ErrorContains(t, err, "iso3166_1_alpha2")

	err = v.Validate(createRequest{Country: "US", Amount: decimal.Zero})
	assert.ErrorContains(t, err, "Amount")
}
