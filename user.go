package wyre

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ApprovalStatus is the verification state of a user or one of its fields.
// Entity-level APPROVED does not imply every field is SUBMITTED; callers
// must check both.
type ApprovalStatus string

const (
	// ApprovalStatusOpen means the user or field is waiting on data, either
	// initially or after a correctable problem with a previous submission.
	ApprovalStatusOpen ApprovalStatus = "OPEN"

	// ApprovalStatusPending means information is fully submitted and under
	// review.
	ApprovalStatusPending ApprovalStatus = "PENDING"

	// ApprovalStatusApproved means information has been reviewed and
	// accepted.
	ApprovalStatusApproved ApprovalStatus = "APPROVED"

	// ApprovalStatusClosed means the user may not transact.
	ApprovalStatusClosed ApprovalStatus = "CLOSED"

	// ApprovalStatusSubmitted means a field value has been uploaded and
	// accepted. Fields may revert to OPEN if later verification fails.
	ApprovalStatusSubmitted ApprovalStatus = "SUBMITTED"
)

// UserFieldID identifies a datapoint on the lightweight user KYC schema.
type UserFieldID string

const (
	UserFieldFirstName        UserFieldID = "firstName"
	UserFieldLastName         UserFieldID = "lastName"
	UserFieldResidenceAddress UserFieldID = "residenceAddress"
)

// UserFieldValue is the untagged union of user field payloads: no
// discriminator is transmitted, so decoding sniffs the JSON shape. A JSON
// object decodes as Address (the only multi-key shape in the schema), a
// JSON string as Str, and null as neither.
//
// This is inherently less safe than the discriminated account-side model;
// it exists because the user endpoints genuinely transmit no discriminator.
type UserFieldValue struct {
	Str     *string
	Address *Address
}

// UserStringValue builds a string-shaped user field value.
func UserStringValue(v string) UserFieldValue {
	return UserFieldValue{Str: &v}
}

// UserAddressValue builds an address-shaped user field value.
func UserAddressValue(v Address) UserFieldValue {
	return UserFieldValue{Address: &v}
}

func (v UserFieldValue) MarshalJSON() ([]byte, error) {
	if v.Address != nil {
		return json.Marshal(v.Address)
	}
	return json.Marshal(v.Str)
}

func (v *UserFieldValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = UserFieldValue{}
		return nil
	}
	// the structured shape wins whenever the input is an object
	switch trimmed[0] {
	case '{':
		v.Str = nil
		return json.Unmarshal(trimmed, &v.Address)
	case '"':
		v.Address = nil
		return json.Unmarshal(trimmed, &v.Str)
	default:
		return fmt.Errorf("user field value is neither an object nor a string: %s", trimmed)
	}
}

// UserField is one datapoint on a user, with its verification state.
type UserField struct {
	// A representation of the underlying KYC data.
	Value UserFieldValue `json:"value"`

	// The current verification status of the field.
	Status ApprovalStatus `json:"status"`

	// A message indicating the nature of a correctable problem, accompanying
	// an OPEN status.
	Error *string `json:"error"`
}

// UserFields maps field ids to their current state. A map keeps fields the
// server added after this binding was written.
type UserFields map[UserFieldID]UserField

// User is a lightweight KYC identity for the Users API.
type User struct {
	ID                string              `json:"id"`
	Status            ApprovalStatus      `json:"status"`
	CreatedAt         int64               `json:"createdAt"`
	DepositAddresses  map[Currency]string `json:"depositAddresses"`
	TotalBalances     map[Currency]Amount `json:"totalBalances"`
	AvailableBalances map[Currency]Amount `json:"availableBalances"`
	Fields            UserFields          `json:"fields"`
}

// UserScope biases the view returned for a user and gates API surfaces.
type UserScope string

const (
	// UserScopeTransfer grants general access to the Transfers API.
	// Required for all transfers.
	UserScopeTransfer UserScope = "TRANSFER"

	// UserScopeACH allows attaching bank accounts to users.
	UserScopeACH UserScope = "ACH"

	// UserScopeDebitCardL2 allows higher-limit card processing.
	UserScopeDebitCardL2 UserScope = "DEBIT_CARD_L2"
)

// ModifyUser is the request body for both CreateUser and UpdateUser.
type ModifyUser struct {
	// Blockchains to connect the user to: BTC, ETH, or ALL. Defaults to
	// none.
	Blockchains []string `json:"blockchains"`

	// When true the call returns immediately instead of waiting up to five
	// seconds for processing, and so always yields a PENDING user.
	Immediate bool `json:"immediate"`

	// Field values to submit.
	Fields ModifyUserFields `json:"fields"`

	// Scopes to bias the returned view.
	Scopes []UserScope `json:"scopes"`
}

// ModifyUserFields carries the submittable user fields. Requests use this
// explicit struct rather than the untagged union: on the way out the shapes
// are known.
type ModifyUserFields struct {
	FirstName        *string  `json:"firstName,omitempty"`
	LastName         *string  `json:"lastName,omitempty"`
	ResidenceAddress *Address `json:"residenceAddress,omitempty"`
}

// OnboardingURL is a hosted-flow link where a user can complete KYC.
type OnboardingURL struct {
	URL string `json:"url"`
}

// UploadUserDocument describes a binary document upload for a user field.
// The document streams as the raw request body, as with account documents.
type UploadUserDocument struct {
	// The user field the uploaded document is associated with.
	FieldID UserFieldID

	// Optional FRONT/BACK marker, for two-sided documents.
	DocumentSubType *DocumentSubType

	// The document bytes.
	Document io.Reader

	// The content type of the document.
	ContentType string
}
