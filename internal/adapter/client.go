package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/internal/utils"
	"github.com/MKhiriev/connector-sync/models"
)

const (
	// EDCNamespace is the default JSON-LD vocabulary of the management API.
	EDCNamespace = "https://w3id.org/edc/v0.0.1/ns/"

	apiKeyHeader = "X-Api-Key"
)

// Response is the raw result of one management API call.
type Response struct {
	Status int
	Body   []byte
}

type querySpec struct {
	Context map[string]string `json:"@context"`
	Type    string            `json:"@type"`
	Offset  int               `json:"offset"`
	Limit   int               `json:"limit"`
}

// connectorClient is the resty implementation of [ConnectorClient].
type connectorClient struct {
	client    *utils.HTTPClient
	listLimit int
}

func (c *connectorClient) Get(ctx context.Context, kind Kind, remoteID string) (Response, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(kindPath(kind, remoteID))
	return toResponse(resp, err, "get", kind)
}

func (c *connectorClient) List(ctx context.Context, kind Kind) (Response, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(querySpec{
			Context: map[string]string{"@vocab": EDCNamespace},
			Type:    "QuerySpec",
			Offset:  0,
			Limit:   c.listLimit,
		}).
		Post(kindPath(kind, "request"))

	out, err := toResponse(resp, err, "list", kind)
	if err == nil {
		c.warnOnFullPage(ctx, kind, out)
	}
	return out, err
}

// warnOnFullPage logs when a list response fills the whole page. Lists are
// fetched in one call, so remote entities past the limit are not seen and
// their local copies read as out of sync.
func (c *connectorClient) warnOnFullPage(ctx context.Context, kind Kind, resp Response) {
	if c.listLimit <= 0 || !gjson.ValidBytes(resp.Body) {
		return
	}
	body := gjson.ParseBytes(resp.Body)
	if !body.IsArray() {
		return
	}
	if n := len(body.Array()); n >= c.listLimit {
		logger.FromContext(ctx).Warn().
			Str("func", "connectorClient.List").
			Str("kind", kind.Name).
			Int("returned", n).
			Int("limit", c.listLimit).
			Msg("list response reached the page limit, entities beyond it are reported out of sync")
	}
}

func (c *connectorClient) Create(ctx context.Context, kind Kind, payload models.Payload) (Response, error) {
	body, err := jsonLDBody(kind, payload)
	if err != nil {
		return Response{}, err
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post(kindPath(kind, ""))
	return toResponse(resp, err, "create", kind)
}

func (c *connectorClient) Update(ctx context.Context, kind Kind, remoteID string, payload models.Payload) (Response, error) {
	body, err := jsonLDBody(kind, payload)
	if err != nil {
		return Response{}, err
	}
	// the path or body identifier always names the entity being replaced
	body["@id"] = remoteID

	path := kindPath(kind, "")
	if kind.UpdateByID {
		path = kindPath(kind, remoteID)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		Put(path)
	return toResponse(resp, err, "update", kind)
}

func (c *connectorClient) Delete(ctx context.Context, kind Kind, remoteID string) (Response, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete(kindPath(kind, remoteID))
	return toResponse(resp, err, "delete", kind)
}

func kindPath(kind Kind, suffix string) string {
	if suffix == "" {
		return "/" + kind.Resource
	}
	return "/" + kind.Resource + "/" + url.PathEscape(suffix)
}

func toResponse(resp *resty.Response, err error, op string, kind Kind) (Response, error) {
	if err != nil {
		return Response{}, fmt.Errorf("%s %s request: %w", op, kind.Name, err)
	}
	return Response{Status: resp.StatusCode(), Body: resp.Body()}, nil
}

// jsonLDBody re-encodes payload as a JSON object and adds the "@context" and
// "@type" keys the management API expects when the DTO does not carry them.
func jsonLDBody(kind Kind, payload models.Payload) (map[string]any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", kind.Name, err)
	}

	body := make(map[string]any)
	if err = json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", kind.Name, err)
	}

	if _, ok := body["@context"]; !ok {
		body["@context"] = map[string]string{"@vocab": EDCNamespace}
	}
	if _, ok := body["@type"]; !ok && kind.Type != "" {
		body["@type"] = kind.Type
	}

	return body, nil
}

// ClientFactoryConfig holds the settings shared by all clients built by a
// factory.
type ClientFactoryConfig struct {
	Timeout   time.Duration
	ListLimit int
	// Transport is shared between clients so that connections to the same
	// endpoint are reused. nil selects http.DefaultTransport.
	Transport http.RoundTripper
}

type clientFactory struct {
	cfg ClientFactoryConfig
}

// NewClientFactory returns a [ClientFactory] building resty clients.
func NewClientFactory(cfg ClientFactoryConfig) ClientFactory {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = 1000
	}
	if cfg.Transport == nil {
		cfg.Transport = http.DefaultTransport
	}
	return &clientFactory{cfg: cfg}
}

// Client implements [ClientFactory]. Requests go to
// {ManagementURL}/{ProtocolVersion}/{resource}.
func (f *clientFactory) Client(endpoint models.Endpoint) ConnectorClient {
	version := endpoint.ProtocolVersion
	if version == "" {
		version = models.DefaultProtocolVersion
	}

	cli := utils.NewHTTPClient(
		utils.WithTransport(f.cfg.Transport),
		utils.WithBaseURL(strings.TrimRight(endpoint.ManagementURL, "/")+"/"+version),
		utils.WithTimeout(f.cfg.Timeout),
		utils.WithHeader(apiKeyHeader, endpoint.APIKey),
	)

	return &connectorClient{client: cli, listLimit: f.cfg.ListLimit}
}
