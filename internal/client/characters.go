package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"rickmorty/catalog/internal/config"
	"rickmorty/catalog/internal/domain"
	"rickmorty/catalog/internal/proxy"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// ErrTransport marks every failure to obtain a usable page: network errors,
// non-success statuses and bodies that are not a character page.
var ErrTransport = errors.New("transport failure")

type CharacterClient interface {
	GetCharacterPage(ctx context.Context, pageNumber int) (*domain.CharacterPage, error)
	Close() error
}

type characterClient struct {
	rl         ratelimit.Limiter
	baseURL    string
	httpClient *resty.Client
}

func NewCharacterClient(cfg config.APIConfig, proxySupplier proxy.Supplier) CharacterClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")

	if cfg.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	if proxySupplier != nil {
		if proxyURL := proxySupplier.Get(); proxyURL != "" {
			client.SetProxy(proxyURL)
			log.Infof("🔗 Using proxy: %s", proxyURL)
		}
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &characterClient{
		rl:         rl,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: client,
	}
}

// CharacterEndpoint is the collection URL under the given API base.
func CharacterEndpoint(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/character"
}

func (c *characterClient) GetCharacterPage(ctx context.Context, pageNumber int) (*domain.CharacterPage, error) {
	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(pageNumber)).
		Get(CharacterEndpoint(c.baseURL))
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: request cancelled: %w", ErrTransport, ctx.Err())
		}
		return nil, fmt.Errorf("%w: failed to fetch page %d: %w", ErrTransport, pageNumber, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: HTTP error: %s", ErrTransport, resp.Status())
	}

	page, err := decodeCharacterPage([]byte(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("%w: malformed page %d: %w", ErrTransport, pageNumber, err)
	}

	log.Debugf("Fetched page %d with %d characters", pageNumber, len(page.Results))
	return page, nil
}

// pageEnvelope mirrors domain.CharacterPage with nullable fields so a body
// missing "info" or "results" can be told apart from an empty page.
type pageEnvelope struct {
	Info    *domain.PageInfo   `json:"info"`
	Results []domain.Character `json:"results"`
}

var errMissingEnvelope = errors.New("response is not a character page")

func decodeCharacterPage(body []byte) (*domain.CharacterPage, error) {
	var env pageEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	if env.Info == nil || env.Results == nil {
		return nil, errMissingEnvelope
	}
	return &domain.CharacterPage{Info: *env.Info, Results: env.Results}, nil
}

func (c *characterClient) Close() error {
	return c.httpClient.Close()
}
