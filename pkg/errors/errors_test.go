package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindRecognized(t *testing.T) {
	assert.True(t, KindValidation.Recognized())
	assert.True(t, KindRateLimit.Recognized())
	assert.True(t, KindUnknown.Recognized())

	// a server-added kind passes through with its raw token intact
	novel := ErrorKind("QuantumFluxException")
	assert.False(t, novel.Recognized())
	assert.Equal(t, "QuantumFluxException", string(novel))
}

func TestAPIErrorDecode(t *testing.T) {
	body := `{
		"exceptionId": "EX_8F2",
		"type": "InsufficientFundsException",
		"errorCode": "insufficientFunds.sourceCurrency",
		"message": "not enough USD",
		"language": "en",
		"transient": false
	}`

	var apiErr APIError
	require.NoError(t, json.Unmarshal([]byte(body), &apiErr))
	assert.Equal(t, KindInsufficientFunds, apiErr.Kind)
	assert.Equal(t, "EX_8F2", apiErr.ExceptionID)
	require.NotNil(t, apiErr.ErrorCode)
	assert.Equal(t, "insufficientFunds.sourceCurrency", *apiErr.ErrorCode)
	assert.False(t, apiErr.Transient)
	assert.Contains(t, apiErr.Error(), "not enough USD")
}

func TestAsAPIError(t *testing.T) {
	apiErr := &APIError{ExceptionID: "EX_1", Kind: KindNotFound, Message: "gone"}
	wrapped := Wrap(apiErr, "get transfer")

	got, ok := AsAPIError(wrapped)
	require.True(t, ok)
	assert.Same(t, apiErr, got)

	_, ok = AsAPIError(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &TransportError{Op: "GET /v2/account", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "GET /v2/account")
}

func TestProtocolErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := &ProtocolError{Op: "GET /v3/transfers/TF_1", Status: 200, Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "status 200")
}
