package wyre

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wyre/pkg/errors"
	"wyre/pkg/srn"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("test-key", "test-secret", EnvironmentTest, WithBaseURL(server.URL))
}

func TestGetTransferDecodesResponse(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v3/transfers/TF_ABC123", r.URL.Path)
		assert.Equal(t, "Bearer test-secret", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Write([]byte(`{
			"id": "TF_ABC123",
			"owner": "account:AC_OWNER",
			"source": "account:AC_SOURCE",
			"sourceAmount": 20.01,
			"sourceCurrency": "USD",
			"dest": "bitcoin:1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2",
			"destAmount": 0.00052,
			"destCurrency": "BTC",
			"status": "COMPLETED",
			"completedAt": 1609876543210,
			"exchangeRate": 0.000026,
			"fees": {"USD": 0.5},
			"totalFees": 0.5
		}`))
	})

	transfer, err := client.GetTransfer(context.Background(), "TF_ABC123", "")
	require.NoError(t, err)

	assert.Equal(t, "TF_ABC123", transfer.ID)
	assert.Equal(t, srn.New(srn.Account, "AC_SOURCE"), transfer.Source)
	assert.Equal(t, srn.New(srn.Bitcoin, "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2"), transfer.Dest)
	assert.Equal(t, TransferStatusCompleted, transfer.Status)
	assert.True(t, transfer.SourceAmount.Equal(decimal.RequireFromString("20.01")))
	assert.True(t, transfer.TotalFees.Equal(decimal.RequireFromString("0.5")))
	require.Contains(t, transfer.Fees, USD)
}

func TestNonOKStatusDecodesAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{
			"exceptionId": "test_1K4AXK",
			"type": "ValidationException",
			"errorCode": "validation.invalidValue",
			"message": "sourceCurrency is invalid",
			"language": "en",
			"transient": false
		}`))
	})

	_, err := client.GetAccount(context.Background(), "AC_MISSING", "")
	require.Error(t, err)

	apiErr, ok := errors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "test_1K4AXK", apiErr.ExceptionID)
	assert.Equal(t, errors.KindValidation, apiErr.Kind)
	require.NotNil(t, apiErr.ErrorCode)
	assert.Equal(t, "validation.invalidValue", *apiErr.ErrorCode)
	assert.False(t, apiErr.Transient)
	assert.Contains(t, apiErr.Error(), "sourceCurrency is invalid")
}

func TestNonErrorBodyYieldsProtocolError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := client.GetMasterAccount(context.Background())
	require.Error(t, err)

	var protoErr *errors.ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, http.StatusBadGateway, protoErr.Status)
}

func TestMalformedSuccessBodyYieldsProtocolError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": `))
	})

	_, err := client.GetMasterAccount(context.Background())
	require.Error(t, err)

	var protoErr *errors.ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, http.StatusOK, protoErr.Status)
}

func TestUnreachableServerYieldsTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := NewClient("test-key", "test-secret", EnvironmentTest, WithBaseURL(server.URL))

	_, err := client.GetMasterAccount(context.Background())
	require.Error(t, err)

	var transportErr *errors.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestMasqueradeAlwaysPresent(t *testing.T) {
	t.Run("empty when absent", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			values, ok := r.URL.Query()["masqueradeAs"]
			require.True(t, ok)
			assert.Equal(t, []string{""}, values)
			w.Write([]byte(`{"id": "AC_X"}`))
		})
		_, err := client.GetAccount(context.Background(), "AC_X", "")
		require.NoError(t, err)
	})

	t.Run("carries the caller value", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "account:AC_SUB", r.URL.Query().Get("masqueradeAs"))
			w.Write([]byte(`{"id": "AC_SUB"}`))
		})
		_, err := client.GetAccount(context.Background(), "AC_SUB", Masquerade("AC_SUB"))
		require.NoError(t, err)
	})
}

func TestCreateTransferValidatesBeforeDispatch(t *testing.T) {
	called := false
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.CreateTransfer(context.Background(), CreateTransfer{
		// Source and Dest missing
		SourceCurrency: USD,
	}, "")

	require.Error(t, err)
	assert.False(t, called)
	assert.Contains(t, err.Error(), "Source")
}

func TestCreateTransferSendsDecimalAmounts(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(body, &raw))
		assert.Equal(t, `"account:AC_SOURCE"`, string(raw["source"]))
		// decimals serialize as strings, which the API accepts for amounts
		assert.Equal(t, `"20.01"`, string(raw["sourceAmount"]))

		w.Write([]byte(`{"id": "TF_NEW", "status": "UNCONFIRMED", "sourceAmount": 20.01}`))
	})

	amount := Amount(decimal.RequireFromString("20.01"))
	transfer, err := client.CreateTransfer(context.Background(), CreateTransfer{
		Source:         srn.New(srn.Account, "AC_SOURCE"),
		SourceAmount:   &amount,
		SourceCurrency: USD,
		Dest:           srn.New(srn.Email, "dest@example.com"),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, TransferStatusUnconfirmed, transfer.Status)
}

func TestUploadDocumentStreamsRawBody(t *testing.T) {
	docBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/accounts/AC_DOC/individualGovernmentId", r.URL.Path)
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
		assert.Equal(t, "GOVT_ID", r.URL.Query().Get("documentType"))
		assert.Equal(t, "FRONT", r.URL.Query().Get("documentSubType"))
		assert.Equal(t, "AC_DOC", r.URL.Query().Get("masqueradeAs"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, docBytes, body)

		w.Write([]byte(`{"id": "AC_DOC", "status": "PENDING"}`))
	})

	docType := DocumentTypeGovtID
	subType := DocumentSubTypeFront
	account, err := client.UploadDocument(context.Background(), "AC_DOC", UploadDocument{
		FieldID:         IndividualGovernmentID,
		DocumentType:    &docType,
		DocumentSubType: &subType,
		Document:        bytes.NewReader(docBytes),
		ContentType:     "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, AccountStatusPending, account.Status)
}

func TestGetPaymentMethodsPagination(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/paymentMethods", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("offset"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(`{
			"data": [{"id": "PA_1", "owner": "account:AC_OWNER", "srn": "paymentmethod:PA_1:ach", "status": "ACTIVE"}],
			"recordsTotal": 26,
			"position": 25,
			"recordsFiltered": 26
		}`))
	})

	list, err := client.GetPaymentMethods(context.Background(), "", 25, 10)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, srn.New(srn.ACHPaymentMethod, "PA_1"), list.Data[0].SRN)
	assert.Equal(t, 26, list.RecordsTotal)
}

func TestGetUserJoinsScopes(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/users/US_1", r.URL.Path)
		assert.Equal(t, "TRANSFER,ACH", r.URL.Query().Get("scopes"))
		w.Write([]byte(`{"id": "US_1", "status": "APPROVED"}`))
	})

	user, err := client.GetUser(context.Background(), "US_1", "", UserScopeTransfer, UserScopeACH)
	require.NoError(t, err)
	assert.Equal(t, ApprovalStatusApproved, user.Status)
}

func TestGetUserOnboardingURL(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/users/US_1/onboarding", r.URL.Path)
		w.Write([]byte(`{"url": "https://verify.sendwyre.com/hosted/abc"}`))
	})

	link, err := client.GetUserOnboardingURL(context.Background(), "US_1", "")
	require.NoError(t, err)
	assert.Equal(t, "https://verify.sendwyre.com/hosted/abc", link.URL)
}
