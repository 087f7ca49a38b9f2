package wyre

import "wyre/pkg/srn"

// TransferStatus is the lifecycle state of a transfer. All transitions are
// server-driven. An UNCONFIRMED transfer expires automatically if it is not
// confirmed within the server's confirmation window (documented as 30
// seconds); the client performs no local timing.
type TransferStatus string

const (
	// TransferStatusPreview is a quote-only transfer that never executes
	// fund movement.
	TransferStatusPreview TransferStatus = "PREVIEW"

	// TransferStatusUnconfirmed is an executable transfer awaiting
	// confirmation.
	TransferStatusUnconfirmed TransferStatus = "UNCONFIRMED"

	// TransferStatusPending is a confirmed transfer in flight.
	TransferStatusPending TransferStatus = "PENDING"

	// TransferStatusCompleted is a settled transfer.
	TransferStatusCompleted TransferStatus = "COMPLETED"

	// TransferStatusExpired means the confirmation window lapsed.
	TransferStatusExpired TransferStatus = "EXPIRED"

	// TransferStatusReversed means the funds were returned after settlement.
	TransferStatusReversed TransferStatus = "REVERSED"

	// TransferStatusFailed means the transfer could not execute.
	TransferStatusFailed TransferStatus = "FAILED"
)

// CreateTransfer is the request body for moving funds between two SRNs.
// Exactly one of SourceAmount and DestAmount should be set.
type CreateTransfer struct {
	// The account the funds are retrieved from.
	Source srn.SRN `json:"source" validate:"required"`

	// The amount to withdraw from the source, in units of SourceCurrency.
	SourceAmount *Amount `json:"sourceAmount"`

	// The currency to withdraw from the source.
	SourceCurrency Currency `json:"sourceCurrency" validate:"required"`

	// Where the funds go: an email, cellphone, digital currency address or
	// bank account, e.g. bitcoin:<address>. Cellphone numbers without a +
	// prefix are assumed to be US numbers.
	Dest srn.SRN `json:"dest" validate:"required"`

	// The total amount to deposit, in units of DestCurrency.
	DestAmount *Amount `json:"destAmount"`

	// The currency to deposit. When absent the deposit uses the withdrawal
	// currency and no exchange is performed.
	DestCurrency *Currency `json:"destCurrency"`

	// An optional user-visible message sent with the transaction.
	Message *string `json:"message"`

	// An optional url the API POSTs status callbacks to.
	NotifyURL *string `json:"notifyUrl"`

	// Automatically confirm the transfer order.
	AutoConfirm *bool `json:"autoConfirm"`

	// An optional custom id to tag the transfer.
	CustomID *string `json:"customId"`

	// When true, the indicated amount is treated as already including fees.
	AmountIncludesFees *bool `json:"amountIncludesFees"`

	// Create a quote transfer object without executing a real transfer.
	Preview *bool `json:"preview"`

	// Disable outbound emails/messages to the destination.
	MuteMessages *bool `json:"muteMessages"`
}

// Transfer is a fund movement between two SRNs.
type Transfer struct {
	ID               string              `json:"id"`
	Owner            string              `json:"owner"`
	Source           srn.SRN             `json:"source"`
	SourceAmount     Amount              `json:"sourceAmount"`
	SourceCurrency   Currency            `json:"sourceCurrency"`
	Dest             srn.SRN             `json:"dest"`
	DestAmount       Amount              `json:"destAmount"`
	DestCurrency     Currency            `json:"destCurrency"`
	Status           TransferStatus      `json:"status"`
	PendingSubStatus *string             `json:"pendingSubStatus"`
	CompletedAt      *int64              `json:"completedAt"`
	UpdatedAt        *int64              `json:"updatedAt"`
	CancelledAt      *int64              `json:"cancelledAt"`
	ExpiresAt        *int64              `json:"expiresAt"`
	ExchangeRate     *Amount             `json:"exchangeRate"`
	Fees             map[Currency]Amount `json:"fees"`
	TotalFees        Amount              `json:"totalFees"`
	Message          *string             `json:"message"`
	CustomID         *string             `json:"customId"`
}
