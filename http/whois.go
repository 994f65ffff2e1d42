package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/fwojciec/citer"
)

// DefaultWhoisBaseURL is the WHOIS proxy queried when no base URL is configured.
const DefaultWhoisBaseURL = "https://www.whoisxmlapi.com"

// whoisPath is the service endpoint relative to the base URL.
const whoisPath = "/whoisserver/WhoisService"

// Ensure WhoisClient implements citer.OwnerResolver.
var _ citer.OwnerResolver = (*WhoisClient)(nil)

// WhoisClient resolves domain owners through a WHOIS XML proxy API.
type WhoisClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
	timeout time.Duration
}

// WhoisOption configures a WhoisClient.
type WhoisOption func(*WhoisClient)

// WithWhoisBaseURL sets the scheme and host of the WHOIS proxy.
// Defaults to DefaultWhoisBaseURL.
func WithWhoisBaseURL(baseURL string) WhoisOption {
	return func(c *WhoisClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithWhoisTimeout sets the timeout for WHOIS requests.
// Defaults to DefaultFetchTimeout (10s).
func WithWhoisTimeout(d time.Duration) WhoisOption {
	return func(c *WhoisClient) {
		c.timeout = d
	}
}

// WithWhoisHTTPClient sets the HTTP client used for requests.
// The timeout option is ignored when a client is provided.
func WithWhoisHTTPClient(client *http.Client) WhoisOption {
	return func(c *WhoisClient) {
		c.client = client
	}
}

// NewWhoisClient creates a new WhoisClient authenticating with apiKey.
func NewWhoisClient(apiKey string, opts ...WhoisOption) *WhoisClient {
	c := &WhoisClient{
		apiKey:  apiKey,
		baseURL: DefaultWhoisBaseURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	return c
}

// ResolveOwner returns the registrant organisation recorded for host.
func (c *WhoisClient) ResolveOwner(ctx context.Context, host string) (string, error) {
	body, err := c.query(ctx, host)
	if err != nil {
		return "", err
	}
	return parseOwner(host, body)
}

// query issues the WHOIS request and returns the response body as text.
func (c *WhoisClient) query(ctx context.Context, host string) (string, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("domainName", host)
	target := c.baseURL + whoisPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", &citer.OwnerError{Kind: citer.OwnerQueryWhois, Host: host, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &citer.OwnerError{Kind: citer.OwnerQueryWhois, Host: host, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &citer.OwnerError{
			Kind: citer.OwnerQueryWhois,
			Host: host,
			Err:  fmt.Errorf("HTTP %d", resp.StatusCode),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &citer.OwnerError{Kind: citer.OwnerReadWhoisText, Host: host, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &citer.OwnerError{
			Kind: citer.OwnerReadWhoisText,
			Host: host,
			Err:  fmt.Errorf("response is not valid UTF-8"),
		}
	}

	return string(data), nil
}

// parseOwner extracts registrant/organization text from a WHOIS XML body.
func parseOwner(host, body string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return "", &citer.OwnerError{Kind: citer.OwnerParseXML, Host: host, Err: err}
	}
	if doc.Root() == nil {
		return "", &citer.OwnerError{
			Kind: citer.OwnerParseXML,
			Host: host,
			Err:  fmt.Errorf("empty WHOIS XML"),
		}
	}

	registrant := FindUnique(&doc.Element, "registrant")
	if registrant == nil {
		return "", &citer.OwnerError{Kind: citer.OwnerParseRegistrant, Host: host}
	}

	organisation := FindUnique(registrant, "organization")
	if organisation == nil {
		return "", &citer.OwnerError{Kind: citer.OwnerParseOrganisation, Host: host}
	}

	text := strings.TrimSpace(organisation.Text())
	if text == "" {
		return "", &citer.OwnerError{Kind: citer.OwnerNoOrganisation, Host: host}
	}

	return text, nil
}
