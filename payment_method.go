package wyre

import "wyre/pkg/srn"

// PaymentMethodStatus is the lifecycle state of a payment method. The client
// only decodes it; all transitions happen server-side.
type PaymentMethodStatus string

const (
	// PaymentMethodStatusPending means the method has not been activated and
	// is under review. No user action is required.
	PaymentMethodStatusPending PaymentMethodStatus = "PENDING"

	// PaymentMethodStatusAwaitingFollowup means the method needs more
	// information from the user, e.g. a bank statement on a wire transfer
	// method.
	PaymentMethodStatusAwaitingFollowup PaymentMethodStatus = "AWAITING_FOLLOWUP"

	// PaymentMethodStatusActive means the method is ready for use.
	PaymentMethodStatusActive PaymentMethodStatus = "ACTIVE"

	// PaymentMethodStatusRejected means the method cannot be used.
	PaymentMethodStatusRejected PaymentMethodStatus = "REJECTED"
)

// PaymentMethodType selects the transfer rail behind a payment method.
type PaymentMethodType string

const (
	// PaymentMethodTypeWireTransfer is an international wire transfer.
	PaymentMethodTypeWireTransfer PaymentMethodType = "WIRE_TRANSFER"

	// PaymentMethodTypeLocalTransfer uses the local banking system; in the
	// US this is an ACH payment.
	PaymentMethodTypeLocalTransfer PaymentMethodType = "LOCAL_TRANSFER"
)

// ACHPaymentMethodCountry is the country of an ACH payment method. US is the
// only supported value.
type ACHPaymentMethodCountry string

const ACHPaymentMethodCountryUS ACHPaymentMethodCountry = "US"

// CreateACHPaymentMethod is the request body for attaching a bank account
// through a Plaid processor token.
type CreateACHPaymentMethod struct {
	// Token from Plaid's /processor/token/create endpoint.
	PlaidProcessorToken string `json:"plaidProcessorToken" validate:"required"`

	// The only supported type is LOCAL_TRANSFER.
	PaymentMethodType PaymentMethodType `json:"paymentMethodType" validate:"required"`

	// The only supported country is US.
	Country ACHPaymentMethodCountry `json:"country" validate:"required"`
}

// PaymentMethod is a funding source attached to an account.
type PaymentMethod struct {
	ID                     string              `json:"id"`
	Owner                  srn.SRN             `json:"owner"`
	CreatedAt              int64               `json:"createdAt"`
	Name                   string              `json:"name"`
	DefaultCurrency        Currency            `json:"defaultCurrency"`
	Status                 PaymentMethodStatus `json:"status"`
	LinkType               string              `json:"linkType"`
	BeneficiaryType        string              `json:"beneficiaryType"`
	SupportsDeposits       *bool               `json:"supportsDeposits"`
	Last4Digits            string              `json:"last4Digits"`
	Brand                  *string             `json:"brand"`
	CountryCode            string              `json:"countryCode"`
	Disabled               bool                `json:"disabled"`
	SupportsPayment        bool                `json:"supportsPayment"`
	ChargeableCurrencies   []Currency          `json:"chargeableCurrencies"`
	DepositableCurrencies  []Currency          `json:"depositableCurrencies"`
	SRN                    srn.SRN             `json:"srn"`
}

// PaymentMethodList is one page of payment methods, with total and filtered
// record counts for offset/limit pagination.
type PaymentMethodList struct {
	Data            []PaymentMethod `json:"data"`
	RecordsTotal    int             `json:"recordsTotal"`
	Position        int             `json:"position"`
	RecordsFiltered int             `json:"recordsFiltered"`
}
