// Package crafterapi provides a crafter.Client implementation backed by the
// Crafter CMS authentication REST API.
package crafterapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"gateway/pkg/crafter"
	"gateway/pkg/domain"
	"gateway/pkg/logger"
	"gateway/pkg/metrics"
	"gateway/pkg/serrors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Operation labels used for metrics and logging.
const (
	opActivate       = "activate"
	opSignIn         = "signin"
	opSignUp         = "signup"
	opForgotPassword = "forgot-password"
	opUserLookup     = "user-lookup"
)

// Client talks to the Crafter CMS authentication REST API and fulfills the
// crafter.Client interface. The website identity is published exactly once by
// a successful Activate through an atomic pointer, so all later reads are
// race-free without locks. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client     // httpClient performs HTTP requests to the CMS
	apiURL     string           // apiURL is the API base URL, without trailing slash
	licenseKey string           // licenseKey is verified once during Activate
	secretKey  string           // secretKey authenticates gateway requests via X-API-Secret
	metrics    *metrics.Gateway // metrics records per-operation outcomes, may be nil

	// website holds the identity established by Activate. nil means not
	// activated; it is written at most once.
	website atomic.Pointer[domain.Website]
}

// Ensure Client conforms to the crafter.Client interface at compile time.
var _ crafter.Client = (*Client)(nil)

// Options carry the remote API coordinates for a Client.
type Options struct {
	// APIURL is the base URL of the Crafter CMS API.
	APIURL string
	// LicenseKey is the key verified during activation.
	LicenseKey string
	// SecretKey is the shared secret sent as X-API-Secret on gateway calls.
	SecretKey string
	// Metrics optionally records per-operation instruments; nil disables
	// instrumentation.
	Metrics *metrics.Gateway
}

// New constructs a Client that uses the provided http.Client to interact with
// the Crafter CMS API described by opts.
func New(httpClient *http.Client, opts Options) *Client {
	return &Client{
		httpClient: httpClient,
		apiURL:     strings.TrimRight(opts.APIURL, "/"),
		licenseKey: opts.LicenseKey,
		secretKey:  opts.SecretKey,
		metrics:    opts.Metrics,
	}
}

// Activated reports whether a license activation has succeeded.
func (c *Client) Activated() bool { return c.website.Load() != nil }

// Website returns the identity published by Activate, or nil before a
// successful activation.
func (c *Client) Website() *domain.Website { return c.website.Load() }

// Activate verifies the configured license key against the remote service and
// publishes the website identity on success. The returned error's kind
// distinguishes the failure: missing configuration, HTTP status, transport
// fault, undecodable body, missing fields, or an explicit rejection.
// Activating an already activated
// client is a conflict and leaves the published identity untouched.
func (c *Client) Activate(ctx context.Context) error {
	if c.website.Load() != nil {
		return serrors.With(serrors.ErrConflict, "license already activated")
	}
	if c.apiURL == "" || c.licenseKey == "" {
		return serrors.With(serrors.ErrNotActivated, crafter.NotInitializedMessage)
	}

	start := time.Now()
	site, err := c.verifyLicense(ctx)
	c.metrics.Observe(ctx, opActivate, err == nil, time.Since(start))
	if err != nil {
		logger.Error(ctx, "license verification failed", zap.Error(err))

		return err
	}

	// losing the swap means a concurrent Activate won the single write
	if !c.website.CompareAndSwap(nil, site) {
		return serrors.With(serrors.ErrConflict, "license already activated")
	}

	logger.Info(ctx, "license verified",
		zap.String("websiteID", site.ID),
		zap.String("websiteName", site.Name))

	return nil
}

// verifyLicense performs the activation round trip and returns the website
// identity the API bound to the license key.
func (c *Client) verifyLicense(ctx context.Context) (*domain.Website, error) {
	bodyBytes, err := json.Marshal(struct {
		Key string `json:"key"`
	}{Key: c.licenseKey})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.apiURL+"/website/key/verify",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransport, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransport, err, "could not read response body")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, serrors.With(serrors.ErrHTTPStatus, "HTTP error status: %d", resp.StatusCode)
	}

	// pointer fields distinguish absent from zero-valued
	var vr struct {
		Success *bool `json:"success"`
		Website *struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"website"`
	}
	if err := json.Unmarshal(b, &vr); err != nil {
		return nil, serrors.Wrap(serrors.ErrSchema, err, "could not decode response")
	}
	switch {
	case vr.Success == nil:
		return nil, serrors.With(serrors.ErrSchema, "response missing 'success' field")
	case !*vr.Success:
		return nil, serrors.With(serrors.ErrRejected, "API returned success=false")
	case vr.Website == nil:
		return nil, serrors.With(serrors.ErrSchema, "response missing 'website' field")
	case vr.Website.ID == "" || vr.Website.Name == "":
		return nil, serrors.With(serrors.ErrSchema, "website data missing required fields")
	}

	return &domain.Website{ID: vr.Website.ID, Name: vr.Website.Name, URL: vr.Website.URL}, nil
}

// SignIn authenticates the user against the CMS. The client IP is forwarded
// for backend rate limiting.
func (c *Client) SignIn(ctx context.Context, username, password, ip string) crafter.Result {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	return c.authRequest(ctx, opSignIn, body, ip)
}

// SignUp registers a new user. The transmitted email is always the
// synthesized placeholder <username>@temp.com; the caller-supplied address is
// accepted but not sent, matching the backend's current expectations.
func (c *Client) SignUp(ctx context.Context, username, _, password, passwordConfirm, ip string) crafter.Result {
	body := struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}{
		Username:        username,
		Email:           username + "@temp.com",
		Password:        password,
		ConfirmPassword: passwordConfirm,
	}

	return c.authRequest(ctx, opSignUp, body, ip)
}

// ForgotPassword requests a password reset for the user.
func (c *Client) ForgotPassword(ctx context.Context, username, email, ip string) crafter.Result {
	body := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}{Username: username, Email: email}

	return c.authRequest(ctx, opForgotPassword, body, ip)
}

// authRequest gates the operation on activation, performs the round trip and
// records its outcome. Failed results are logged here so callers only deal
// with the Result value.
func (c *Client) authRequest(ctx context.Context, operation string, body any, ip string) crafter.Result {
	site := c.website.Load()
	if site == nil {
		logger.Error(ctx, "request rejected - API client not initialized",
			zap.String("operation", operation))

		return crafter.Fail(crafter.NotInitializedMessage)
	}

	start := time.Now()
	res := c.doAuthRequest(ctx, site, operation, body, ip)
	c.metrics.Observe(ctx, operation, res.Success, time.Since(start))
	if !res.Success {
		logger.Error(ctx, "auth request failed",
			zap.String("operation", operation),
			zap.String("message", res.Message))
	}

	return res
}

// doAuthRequest posts the operation body to the activated website's auth
// endpoint and normalizes the response. Every failure, from request build to
// decoding, folds into a failed Result.
func (c *Client) doAuthRequest(ctx context.Context,
	site *domain.Website,
	operation string,
	body any,
	ip string) crafter.Result {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return crafter.Fail("Request creation failed: " + err.Error())
	}

	endpoint := c.apiURL + "/website/v2/" + site.ID + "/auth/" + operation
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(bodyBytes)))
	if err != nil {
		return crafter.Fail("Request creation failed: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Secret", c.secretKey)
	req.Header.Set("X-Forwarded-For", ip)
	req.Header.Set("X-Real-IP", ip)
	setOrigin(req, site)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return crafter.Fail("Request failed: " + err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return crafter.Fail("Request failed: " + err.Error())
	}

	return ParseResponse(resp.StatusCode, b)
}

// ParseResponse normalizes an auth endpoint response into a Result. A non-200
// status maps to "HTTP <code>: <body>"; a 200 body that does not decode maps
// to a parse failure; otherwise success and message are read as sent, with
// absent fields defaulting to false and empty.
func ParseResponse(statusCode int, body []byte) crafter.Result {
	if statusCode != http.StatusOK {
		return crafter.Fail(fmt.Sprintf("HTTP %d: %s", statusCode, body))
	}

	var ar struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &ar); err != nil {
		return crafter.Fail("Response parsing failed: " + err.Error())
	}

	return crafter.Result{Success: ar.Success, Message: ar.Message}
}

// CheckUserExists looks the user up by name on the activated website. A 404
// is a miss, not an error: it yields a failed Result and is never logged at
// error level. A found user yields a successful Result carrying the raw user
// object.
func (c *Client) CheckUserExists(ctx context.Context, username string) crafter.Result {
	site := c.website.Load()
	if site == nil {
		logger.Error(ctx, "user check rejected - API client not initialized")

		return crafter.Fail(crafter.NotInitializedMessage)
	}

	start := time.Now()
	user, err := c.lookupUser(ctx, site, username)
	c.metrics.Observe(ctx, opUserLookup, err == nil, time.Since(start))
	if err != nil {
		// a miss is a valid outcome, not a failure worth the error log
		if !errors.Is(err, serrors.ErrNotFound) {
			logger.Error(ctx, "user check failed", zap.Error(err))
		}

		return crafter.Fail(err.Error())
	}

	return crafter.Result{Success: true, Message: "User found", UserData: user}
}

// lookupUser fetches the raw user object by name. Failures carry the kind of
// the stage that broke; a 404 carries ErrNotFound.
func (c *Client) lookupUser(ctx context.Context, site *domain.Website, username string) (map[string]any, error) {
	endpoint := c.apiURL + "/website/v2/" + site.ID + "/users/" + url.PathEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransport, err, "Request creation failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Secret", c.secretKey)
	setOrigin(req, site)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransport, err, "Request failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransport, err, "Request failed")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, serrors.With(serrors.ErrNotFound, "User not found")
	case resp.StatusCode != http.StatusOK:
		return nil, serrors.With(serrors.ErrHTTPStatus, "HTTP %d: %s", resp.StatusCode, b)
	}

	// the users endpoint returns the user object directly, without the
	// success envelope of the auth endpoints
	var user map[string]any
	if err := json.Unmarshal(b, &user); err != nil {
		return nil, serrors.Wrap(serrors.ErrSchema, err, "Response parsing failed")
	}
	if _, ok := user["username"]; !ok {
		return nil, serrors.With(serrors.ErrSchema, "User data not found in response")
	}
	if _, ok := user["email"]; !ok {
		return nil, serrors.With(serrors.ErrSchema, "User data not found in response")
	}

	return user, nil
}

// setOrigin sets the Origin header to the activated website URL. The header
// is omitted entirely when the URL is empty, never sent blank.
func setOrigin(req *http.Request, site *domain.Website) {
	if site.URL != "" {
		req.Header.Set("Origin", site.URL)
	}
}
