package wyre

import (
	"encoding/json"
	"fmt"
	"io"
)

// AccountStatus is the verification state of an account. It is server-driven;
// the client only ever decodes it.
type AccountStatus string

const (
	// AccountStatusOpen means the account is waiting on action from the
	// caller or the account holder, either before information has been
	// submitted or after some of it failed verification.
	AccountStatusOpen AccountStatus = "OPEN"

	// AccountStatusPending means information has been fully submitted and is
	// under review. The account cannot yet transact.
	AccountStatusPending AccountStatus = "PENDING"

	// AccountStatusApproved means the account may transact.
	AccountStatusApproved AccountStatus = "APPROVED"

	// AccountStatusClosed means the account may not transact. Reachable from
	// any non-terminal state.
	AccountStatusClosed AccountStatus = "CLOSED"
)

// AccountType is the kind of account being registered.
type AccountType string

const (
	AccountTypeIndividual AccountType = "INDIVIDUAL"
	AccountTypeBusiness   AccountType = "BUSINESS"
)

// ProfileFieldStatus is the verification state of a single profile field:
// OPEN, then PENDING once submitted, then APPROVED. There is no rejected
// state at the field level; failed verification reverts the field to OPEN
// with a note.
type ProfileFieldStatus string

const (
	ProfileFieldStatusOpen     ProfileFieldStatus = "OPEN"
	ProfileFieldStatusPending  ProfileFieldStatus = "PENDING"
	ProfileFieldStatusApproved ProfileFieldStatus = "APPROVED"
)

// ProfileFieldID identifies the specific KYC datapoint a field carries.
type ProfileFieldID string

const (
	// IndividualLegalName is the full legal name of the account holder
	// (value kind STRING).
	IndividualLegalName ProfileFieldID = "individualLegalName"

	// IndividualCellphoneNumber is the account holder's cellphone number
	// including country code, e.g. +15554445555 (value kind CELLPHONE).
	IndividualCellphoneNumber ProfileFieldID = "individualCellphoneNumber"

	// IndividualEmail is the account holder's email address (value kind
	// EMAIL).
	IndividualEmail ProfileFieldID = "individualEmail"

	// IndividualResidenceAddress is the account holder's residence address
	// (value kind ADDRESS).
	IndividualResidenceAddress ProfileFieldID = "individualResidenceAddress"

	// IndividualGovernmentID is a scan or photo of a drivers license or
	// passport, uploaded through UploadDocument (value kind DOCUMENT).
	IndividualGovernmentID ProfileFieldID = "individualGovernmentId"

	// IndividualDateOfBirth is the account holder's date of birth in
	// YYYY-MM-DD form (value kind DATE).
	IndividualDateOfBirth ProfileFieldID = "individualDateOfBirth"

	// IndividualSSN is the account holder's social security number (value
	// kind STRING).
	IndividualSSN ProfileFieldID = "individualSsn"

	// IndividualSourceOfFunds is a payment method the account holder owns
	// (value kind PAYMENT_METHOD).
	IndividualSourceOfFunds ProfileFieldID = "individualSourceOfFunds"

	// IndividualProofOfAddress is a utility bill or bank statement. The
	// field starts PENDING while the source-of-funds account is used to fill
	// the requirement, and reverts to OPEN with a note if that fails (value
	// kind DOCUMENT).
	IndividualProofOfAddress ProfileFieldID = "individualProofOfAddress"

	// IndividualACHAuthorizationForm verifies a payment method after the
	// compliance team requests further verification (value kind DOCUMENT).
	IndividualACHAuthorizationForm ProfileFieldID = "individualAchAuthorizationForm"
)

// ProfileFieldKind discriminates the shape of a profile field value on the
// wire.
type ProfileFieldKind string

const (
	FieldKindString        ProfileFieldKind = "STRING"
	FieldKindCellphone     ProfileFieldKind = "CELLPHONE"
	FieldKindEmail         ProfileFieldKind = "EMAIL"
	FieldKindAddress       ProfileFieldKind = "ADDRESS"
	FieldKindDate          ProfileFieldKind = "DATE"
	FieldKindDocument      ProfileFieldKind = "DOCUMENT"
	FieldKindPaymentMethod ProfileFieldKind = "PAYMENT_METHOD"
)

// expectedFieldKinds is the value kind the API requires for each field id.
var expectedFieldKinds = map[ProfileFieldID]ProfileFieldKind{
	IndividualLegalName:            FieldKindString,
	IndividualCellphoneNumber:      FieldKindCellphone,
	IndividualEmail:                FieldKindEmail,
	IndividualResidenceAddress:     FieldKindAddress,
	IndividualGovernmentID:         FieldKindDocument,
	IndividualDateOfBirth:          FieldKindDate,
	IndividualSSN:                  FieldKindString,
	IndividualSourceOfFunds:        FieldKindPaymentMethod,
	IndividualProofOfAddress:       FieldKindDocument,
	IndividualACHAuthorizationForm: FieldKindDocument,
}

// ProfileFieldValue is the tagged union of profile field payloads. Exactly
// one of the payload fields is meaningful, selected by Kind:
//
//	STRING, CELLPHONE, EMAIL, DATE, PAYMENT_METHOD -> Str
//	ADDRESS                                        -> Address
//	DOCUMENT                                       -> Documents
//
// A nil payload is a legitimate value (a field the server knows about but
// holds no data for yet), not a decode failure.
type ProfileFieldValue struct {
	Kind      ProfileFieldKind
	Str       *string
	Address   *Address
	Documents []string
}

// StringValue builds a STRING value.
func StringValue(v *string) ProfileFieldValue {
	return ProfileFieldValue{Kind: FieldKindString, Str: v}
}

// CellphoneValue builds a CELLPHONE value. The number must include the
// country code, e.g. +15554445555.
func CellphoneValue(v *string) ProfileFieldValue {
	return ProfileFieldValue{Kind: FieldKindCellphone, Str: v}
}

// EmailValue builds an EMAIL value.
func EmailValue(v *string) ProfileFieldValue {
	return ProfileFieldValue{Kind: FieldKindEmail, Str: v}
}

// AddressValue builds an ADDRESS value.
func AddressValue(v *Address) ProfileFieldValue {
	return ProfileFieldValue{Kind: FieldKindAddress, Address: v}
}

// DateValue builds a DATE value in YYYY-MM-DD form.
func DateValue(v *string) ProfileFieldValue {
	return ProfileFieldValue{Kind: FieldKindDate, Str: v}
}

// DocumentValue builds a DOCUMENT value holding uploaded document ids.
// Documents are uploaded through UploadDocument; the API returns the ids
// associated with the field.
func DocumentValue(ids []string) ProfileFieldValue {
	return ProfileFieldValue{Kind: FieldKindDocument, Documents: ids}
}

// PaymentMethodValue builds a PAYMENT_METHOD value holding a payment method
// id.
func PaymentMethodValue(id *string) ProfileFieldValue {
	return ProfileFieldValue{Kind: FieldKindPaymentMethod, Str: id}
}

// encodePayload marshals the payload selected by Kind.
func (v ProfileFieldValue) encodePayload() (json.RawMessage, error) {
	switch v.Kind {
	case FieldKindString, FieldKindCellphone, FieldKindEmail, FieldKindDate, FieldKindPaymentMethod:
		return json.Marshal(v.Str)
	case FieldKindAddress:
		return json.Marshal(v.Address)
	case FieldKindDocument:
		return json.Marshal(v.Documents)
	default:
		return nil, &UnrecognizedFieldTypeError{Token: string(v.Kind)}
	}
}

// decodePayload fills the payload for the given discriminator. An unknown
// discriminator fails rather than defaulting; the server speaks a newer
// schema than this client.
func (v *ProfileFieldValue) decodePayload(kind ProfileFieldKind, raw json.RawMessage) error {
	v.Kind = kind
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}
	switch kind {
	case FieldKindString, FieldKindCellphone, FieldKindEmail, FieldKindDate, FieldKindPaymentMethod:
		return json.Unmarshal(raw, &v.Str)
	case FieldKindAddress:
		return json.Unmarshal(raw, &v.Address)
	case FieldKindDocument:
		return json.Unmarshal(raw, &v.Documents)
	default:
		return &UnrecognizedFieldTypeError{Token: string(kind)}
	}
}

// UnrecognizedFieldTypeError reports a fieldType discriminator outside the
// known set. Like an unknown SRN tag, it signals a protocol version mismatch
// and is never silently coerced.
type UnrecognizedFieldTypeError struct {
	Token string
}

func (e *UnrecognizedFieldTypeError) Error() string {
	return fmt.Sprintf("unrecognized profile field type %q", e.Token)
}

// ProfileField is one KYC datapoint on an account, with its verification
// state.
type ProfileField struct {
	// The specific datapoint encapsulated by the field.
	FieldID ProfileFieldID

	// A representation of the underlying KYC data.
	Value ProfileFieldValue

	// A message to the accountholder regarding the field.
	Note *string

	// When the field was last updated, in epoch milliseconds.
	UpdatedT *int64

	// The current verification status of the field.
	Status ProfileFieldStatus
}

// profileFieldWire is the flattened wire shape: the fieldType/value pair
// sits alongside the other keys of the field record.
type profileFieldWire struct {
	FieldID   ProfileFieldID     `json:"fieldId"`
	FieldType ProfileFieldKind   `json:"fieldType"`
	Value     json.RawMessage    `json:"value"`
	Note      *string            `json:"note,omitempty"`
	UpdatedT  *int64             `json:"updatedT,omitempty"`
	Status    ProfileFieldStatus `json:"status,omitempty"`
}

func (f ProfileField) MarshalJSON() ([]byte, error) {
	payload, err := f.Value.encodePayload()
	if err != nil {
		return nil, err
	}
	return json.Marshal(profileFieldWire{
		FieldID:   f.FieldID,
		FieldType: f.Value.Kind,
		Value:     payload,
		Note:      f.Note,
		UpdatedT:  f.UpdatedT,
		Status:    f.Status,
	})
}

func (f *ProfileField) UnmarshalJSON(data []byte) error {
	var wire profileFieldWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	f.FieldID = wire.FieldID
	f.Note = wire.Note
	f.UpdatedT = wire.UpdatedT
	f.Status = wire.Status
	return f.Value.decodePayload(wire.FieldType, wire.Value)
}

// CreateProfileField is the request form of a profile field: just the
// datapoint id and its value.
type CreateProfileField struct {
	FieldID ProfileFieldID
	Value   ProfileFieldValue
}

// Validate checks that the value's kind matches the kind the API requires
// for the field id. The server enforces this anyway; checking before
// dispatch turns a round trip into an immediate error.
func (f CreateProfileField) Validate() error {
	expected, ok := expectedFieldKinds[f.FieldID]
	if !ok {
		// unknown ids are passed through untouched; the server may know them
		return nil
	}
	if f.Value.Kind != expected {
		return fmt.Errorf("field %s requires a %s value, got %s", f.FieldID, expected, f.Value.Kind)
	}
	return nil
}

type createProfileFieldWire struct {
	FieldID   ProfileFieldID   `json:"fieldId"`
	FieldType ProfileFieldKind `json:"fieldType"`
	Value     json.RawMessage  `json:"value"`
}

func (f CreateProfileField) MarshalJSON() ([]byte, error) {
	payload, err := f.Value.encodePayload()
	if err != nil {
		return nil, err
	}
	return json.Marshal(createProfileFieldWire{
		FieldID:   f.FieldID,
		FieldType: f.Value.Kind,
		Value:     payload,
	})
}

func (f *CreateProfileField) UnmarshalJSON(data []byte) error {
	var wire createProfileFieldWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	f.FieldID = wire.FieldID
	return f.Value.decodePayload(wire.FieldType, wire.Value)
}

// Account is a KYC-scoped customer account.
type Account struct {
	ID               string              `json:"id"`
	Status           AccountStatus       `json:"status"`
	Type             AccountType         `json:"type"`
	Country          string              `json:"country"`
	CreatedAt        int64               `json:"createdAt"`
	UpdatedAt        int64               `json:"updatedAt"`
	DepositAddresses map[Currency]string `json:"depositAddresses"`
	TotalBalances    map[Currency]Amount `json:"totalBalances"`
	AvailableBalance map[Currency]Amount `json:"availableBalances"`
	ProfileFields    []ProfileField      `json:"profileFields"`
}

// CreateAccount is the request body for creating an account.
type CreateAccount struct {
	// The type of account; currently INDIVIDUAL is the only supported value.
	Type AccountType `json:"type" validate:"required"`

	// The country of the account holder. For individuals this is the country
	// of residence.
	Country string `json:"country" validate:"required,iso3166_1_alpha2"`

	// Fields submitted at creation time. Submit as many or as few as needed;
	// the rest can follow through UpdateAccount.
	ProfileFields []CreateProfileField `json:"profileFields"`

	// Tracks which account referred this one into the system.
	ReferrerAccountID *string `json:"referrerAccountId"`

	// When true the new account is a custodial subaccount owned by the
	// caller; otherwise it is a standalone non-custodial account. Defaults
	// to true.
	Subaccount *bool `json:"subaccount"`

	// When true prevents all outbound emails to the account. Defaults to
	// false.
	DisableEmail *bool `json:"disableEmail"`
}

// UpdateAccount is the request body for submitting further account fields.
type UpdateAccount struct {
	ProfileFields []CreateProfileField `json:"profileFields"`
}

// MasterAccount is the partner's own top-level account.
type MasterAccount struct {
	ID                   string               `json:"id"`
	SRN                  string               `json:"srn"`
	CreatedAt            int64                `json:"createdAt"`
	UpdatedAt            *int64               `json:"updatedAt"`
	DeletedAt            *int64               `json:"deletedAt"`
	DisabledAt           *int64               `json:"disabledAt"`
	LockedAt             *int64               `json:"lockedAt"`
	UnderReviewAt        *int64               `json:"underReviewAt"`
	InReviewAt           *int64               `json:"inReviewAt"`
	ComplianceApprovedAt *int64               `json:"complianceApprovedAt"`
	Status               AccountStatus        `json:"status"`
	Profile              MasterAccountProfile `json:"profile"`
	PaymentMethods       []PaymentMethod      `json:"paymentMethods"`
	DepositAddresses     map[Currency]string  `json:"depositAddresses"`
	PusherChannel        string               `json:"pusherChannel"`
	Email                string               `json:"email"`
	Verified             bool                 `json:"verified"`
	Type                 string               `json:"type"`
}

// MasterAccountProfile is the profile block of the master account.
type MasterAccountProfile struct {
	FirstName                    string  `json:"firstName"`
	LastName                     string  `json:"lastName"`
	Language                     string  `json:"language"`
	Address                      Address `json:"address"`
	BusinessAccount              bool    `json:"businessAccount"`
	NotifyCellphone              bool    `json:"notifyCellphone"`
	OnboardingDashboardCompleted bool    `json:"onboardingDashboardCompleted"`
	DisplayCurrency              string  `json:"displayCurrency"`
	Type                         string  `json:"type"`
	Vertical                     string  `json:"vertical"`
	Country                      string  `json:"country"`
}

// DocumentType narrows what an uploaded government id document is.
type DocumentType string

const (
	DocumentTypeGovtID         DocumentType = "GOVT_ID"
	DocumentTypeDrivingLicense DocumentType = "DRIVING_LICENSE"
	DocumentTypePassportCard   DocumentType = "PASSPORT_CARD"
	DocumentTypePassport       DocumentType = "PASSPORT"
)

// DocumentSubType marks which side of a two-sided document an upload is.
// GOVT_ID, DRIVING_LICENSE and PASSPORT_CARD require both FRONT and BACK.
type DocumentSubType string

const (
	DocumentSubTypeFront DocumentSubType = "FRONT"
	DocumentSubTypeBack  DocumentSubType = "BACK"
)

// UploadDocument describes a binary document upload for a DOCUMENT-kind
// profile field. The document streams as the raw request body; there is no
// chunking, and the server enforces the size cap (about 7.75MB).
type UploadDocument struct {
	// The field the uploaded document is associated with. Only DOCUMENT-kind
	// fields accept uploads.
	FieldID ProfileFieldID

	// Optional narrowing of the document type, for government id fields.
	DocumentType *DocumentType

	// Optional FRONT/BACK marker, for two-sided documents.
	DocumentSubType *DocumentSubType

	// The document bytes.
	Document io.Reader

	// The content type of the document: application/pdf, image/jpeg,
	// image/png, application/msword, or
	// application/vnd.openxmlformats-officedocument.wordprocessingml.document.
	ContentType string
}
