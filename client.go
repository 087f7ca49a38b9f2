// Package wyre is a typed client binding for the Wyre payments HTTP API:
// accounts, KYC profile fields, payment methods, transfers, and users.
//
// The client holds only immutable credential and base-URL state, so a single
// Client may be shared across goroutines. No operation is retried
// automatically; API errors carry a Transient flag advising whether a blind
// retry is safe, and transport errors are always potentially retryable.
package wyre

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"wyre/pkg/errors"
	"wyre/pkg/logger"
	"wyre/pkg/srn"
	"wyre/pkg/validator"
)

// Client accesses the Wyre API. Construct with NewClient or FromEnv.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
	log        logger.Logger
	validate   *validator.Validator
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Timeouts, pooling and
// TLS configuration all belong to it; this layer sets no policy of its own.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLogger enables structured request logging. The default is a nop
// logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithBaseURL overrides the environment-derived base URL. Intended for
// tests.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// NewClient creates a client for the given environment. The API secret is
// sent as the bearer token on every request; the key is held for future
// header schemes but never transmitted by the current operations.
func NewClient(apiKey, apiSecret string, env Environment, opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    env.APIURL(),
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		log:        logger.NewNop(),
		validate:   validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// masqueradeQuery returns query values carrying the masqueradeAs parameter.
// The parameter is always present, as an empty string when no masquerade is
// given; the API distinguishes empty from absent.
func masqueradeQuery(masquerade string) url.Values {
	q := url.Values{}
	q.Set("masqueradeAs", masquerade)
	return q
}

// do dispatches one request and decodes the response. A 200 decodes into
// out; any other status decodes the API error body. Failures before a
// response map to *errors.TransportError, and bodies matching neither
// schema map to *errors.ProtocolError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, contentType string, out any) error {
	op := method + " " + path

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case io.Reader:
		reader = b
	case []byte:
		reader = bytes.NewReader(b)
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(encoded)
		if contentType == "" {
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiSecret)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &errors.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errors.TransportError{Op: op, Err: err}
	}

	c.log.Info("api request", map[string]interface{}{
		"method":      method,
		"url":         u,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
		"request_id":  req.Header.Get("X-Request-Id"),
	})

	if resp.StatusCode == http.StatusOK {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return &errors.ProtocolError{Op: op, Status: resp.StatusCode, Err: err}
		}
		return nil
	}

	var apiErr errors.APIError
	if err := json.Unmarshal(respBody, &apiErr); err != nil {
		return &errors.ProtocolError{Op: op, Status: resp.StatusCode, Err: err}
	}
	if apiErr.ExceptionID == "" && apiErr.Kind == "" {
		return &errors.ProtocolError{
			Op:     op,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("response body is not an api error: %s", respBody),
		}
	}
	return &apiErr
}

// GetMasterAccount fetches the partner's own top-level account.
func (c *Client) GetMasterAccount(ctx context.Context) (*MasterAccount, error) {
	var out MasterAccount
	if err := c.do(ctx, http.MethodGet, "/v2/account", nil, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAccount registers a new account. Profile fields are validated
// optimistically before dispatch: each value's kind must match the kind its
// field id requires.
func (c *Client) CreateAccount(ctx context.Context, body CreateAccount) (*Account, error) {
	if err := c.validate.Validate(body); err != nil {
		return nil, err
	}
	for _, field := range body.ProfileFields {
		if err := field.Validate(); err != nil {
			return nil, err
		}
	}
	var out Account
	if err := c.do(ctx, http.MethodPost, "/v3/accounts", nil, body, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAccount fetches an account by id.
func (c *Client) GetAccount(ctx context.Context, accountID string, masquerade string) (*Account, error) {
	path := "/v3/accounts/" + url.PathEscape(accountID)
	var out Account
	if err := c.do(ctx, http.MethodGet, path, masqueradeQuery(masquerade), nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAccount submits further profile fields to an existing account.
func (c *Client) UpdateAccount(ctx context.Context, accountID string, body UpdateAccount, masquerade string) (*Account, error) {
	for _, field := range body.ProfileFields {
		if err := field.Validate(); err != nil {
			return nil, err
		}
	}
	path := "/v3/accounts/" + url.PathEscape(accountID)
	var out Account
	if err := c.do(ctx, http.MethodPost, path, masqueradeQuery(masquerade), body, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadDocument streams a binary document to a DOCUMENT-kind profile field
// on the given account. The masquerade is fixed to the account being
// documented.
func (c *Client) UploadDocument(ctx context.Context, accountID string, doc UploadDocument) (*Account, error) {
	q := masqueradeQuery(accountID)
	if doc.DocumentType != nil {
		q.Set("documentType", string(*doc.DocumentType))
	}
	if doc.DocumentSubType != nil {
		q.Set("documentSubType", string(*doc.DocumentSubType))
	}
	path := "/v3/accounts/" + url.PathEscape(accountID) + "/" + url.PathEscape(string(doc.FieldID))
	var out Account
	if err := c.do(ctx, http.MethodPost, path, q, doc.Document, doc.ContentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateACHPaymentMethod attaches a bank account through a Plaid processor
// token.
func (c *Client) CreateACHPaymentMethod(ctx context.Context, body CreateACHPaymentMethod, masquerade string) (*PaymentMethod, error) {
	if err := c.validate.Validate(body); err != nil {
		return nil, err
	}
	var out PaymentMethod
	if err := c.do(ctx, http.MethodPost, "/v2/paymentMethods", masqueradeQuery(masquerade), body, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPaymentMethods lists payment methods, paginated by offset and limit.
func (c *Client) GetPaymentMethods(ctx context.Context, masquerade string, offset, limit int) (*PaymentMethodList, error) {
	q := masqueradeQuery(masquerade)
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	var out PaymentMethodList
	if err := c.do(ctx, http.MethodGet, "/v2/paymentMethods", q, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTransfer creates (or, with Preview, quotes) a transfer.
func (c *Client) CreateTransfer(ctx context.Context, body CreateTransfer, masquerade string) (*Transfer, error) {
	if err := c.validate.Validate(body); err != nil {
		return nil, err
	}
	var out Transfer
	if err := c.do(ctx, http.MethodPost, "/v3/transfers", masqueradeQuery(masquerade), body, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTransfer fetches a transfer by id.
func (c *Client) GetTransfer(ctx context.Context, transferID string, masquerade string) (*Transfer, error) {
	path := "/v3/transfers/" + url.PathEscape(transferID)
	var out Transfer
	if err := c.do(ctx, http.MethodGet, path, masqueradeQuery(masquerade), nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser creates a lightweight KYC user.
func (c *Client) CreateUser(ctx context.Context, body ModifyUser, masquerade string) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPost, "/v3/users", masqueradeQuery(masquerade), body, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches a user by id. Scopes bias the returned view.
func (c *Client) GetUser(ctx context.Context, userID string, masquerade string, scopes ...UserScope) (*User, error) {
	q := masqueradeQuery(masquerade)
	if len(scopes) > 0 {
		tokens := make([]string, len(scopes))
		for i, s := range scopes {
			tokens[i] = string(s)
		}
		q.Set("scopes", strings.Join(tokens, ","))
	}
	path := "/v3/users/" + url.PathEscape(userID)
	var out User
	if err := c.do(ctx, http.MethodGet, path, q, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser submits further fields to an existing user.
func (c *Client) UpdateUser(ctx context.Context, userID string, body ModifyUser, masquerade string) (*User, error) {
	path := "/v3/users/" + url.PathEscape(userID)
	var out User
	if err := c.do(ctx, http.MethodPost, path, masqueradeQuery(masquerade), body, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserOnboardingURL fetches the hosted-flow link where a user completes
// KYC.
func (c *Client) GetUserOnboardingURL(ctx context.Context, userID string, masquerade string) (*OnboardingURL, error) {
	path := "/v3/users/" + url.PathEscape(userID) + "/onboarding"
	var out OnboardingURL
	if err := c.do(ctx, http.MethodGet, path, masqueradeQuery(masquerade), nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadUserDocument streams a binary document to a user field, mirroring
// the account-side UploadDocument.
func (c *Client) UploadUserDocument(ctx context.Context, userID string, doc UploadUserDocument) (*User, error) {
	q := masqueradeQuery(userID)
	if doc.DocumentSubType != nil {
		q.Set("documentSubType", string(*doc.DocumentSubType))
	}
	path := "/v3/users/" + url.PathEscape(userID) + "/" + url.PathEscape(string(doc.FieldID))
	var out User
	if err := c.do(ctx, http.MethodPost, path, q, doc.Document, doc.ContentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Masquerade formats an account SRN for use as a masquerade parameter.
// Operations also accept a bare account id.
func Masquerade(accountID string) string {
	return srn.New(srn.Account, accountID).String()
}
