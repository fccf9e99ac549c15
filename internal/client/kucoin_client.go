package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"supply_checker/internal/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrPriceMissing is returned when the response carries no usable latestPrice.
var ErrPriceMissing = errors.New("latestPrice missing in market statistics response")

// MarketStatisticsClient fetches the latest traded price of a symbol.
type MarketStatisticsClient interface {
	// GetLatestPrice returns latestPrice as it appeared in the body: the unquoted string,
	// or the literal text of a JSON number.
	GetLatestPrice(ctx context.Context, symbol string) (string, error)
}

type kucoinClientImpl struct {
	client         *fasthttp.Client
	baseURL        string
	statisticsPath string
	lang           string
	timeout        time.Duration
	logger         *zap.Logger
}

// NewKuCoinClient creates a client for the KuCoin grey-market statistics endpoint.
func NewKuCoinClient(baseURL, statisticsPath, lang string, timeout time.Duration, logger *zap.Logger) MarketStatisticsClient {
	return &kucoinClientImpl{
		client:         &fasthttp.Client{},
		baseURL:        strings.TrimRight(baseURL, "/"),
		statisticsPath: "/" + strings.TrimLeft(statisticsPath, "/"),
		lang:           lang,
		timeout:        timeout,
		logger:         logger.Named("KuCoinClient"),
	}
}

// GetLatestPrice implements MarketStatisticsClient.
func (c *kucoinClientImpl) GetLatestPrice(ctx context.Context, symbol string) (string, error) {
	if symbol == "" {
		return "", fmt.Errorf("symbol cannot be empty")
	}

	requestURL := c.requestURL(symbol)
	c.logger.Debug("Requesting market statistics", zap.String("url", requestURL))

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("request to %s not started: %w", requestURL, err)
	}

	// fasthttp takes no context: race the call against ctx. fetch owns req/resp.
	done := make(chan fetchResult, 1)
	go func() {
		done <- c.fetch(ctx, requestURL)
	}()

	var res fetchResult
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("request to %s aborted: %w", requestURL, ctx.Err())
	case res = <-done:
	}
	if res.err != nil {
		return "", res.err
	}
	rawBody := res.body

	if res.status < 200 || res.status > 299 {
		return "", fmt.Errorf("market statistics request to %s failed with status %d: %s", requestURL, res.status, string(rawBody))
	}

	var stats entity.MarketStatisticsResponse
	if err := json.Unmarshal(rawBody, &stats); err != nil {
		return "", fmt.Errorf("failed to unmarshal market statistics from %s: %w", requestURL, err)
	}
	if stats.Data == nil {
		return "", fmt.Errorf("%w: no data object (msg=%q)", ErrPriceMissing, stats.Msg)
	}

	price, err := rawPriceText(stats.Data.LatestPrice)
	if err != nil {
		return "", err
	}

	c.logger.Debug("Received latest price", zap.String("symbol", symbol), zap.String("latestPrice", price))
	return price, nil
}

type fetchResult struct {
	status int
	body   []byte
	err    error
}

func (c *kucoinClientImpl) requestURL(symbol string) string {
	uri := fasthttp.AcquireURI()
	defer fasthttp.ReleaseURI(uri)
	_ = uri.Parse(nil, []byte(c.baseURL+c.statisticsPath))
	uri.QueryArgs().Add("lang", c.lang)
	uri.QueryArgs().Add("symbol", symbol)
	return uri.String()
}

func (c *kucoinClientImpl) fetch(ctx context.Context, requestURL string) fetchResult {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return fetchResult{err: fmt.Errorf("failed to execute request to %s: %w", requestURL, err)}
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			return fetchResult{err: fmt.Errorf("failed to execute request to %s with default timeout: %w", requestURL, err)}
		}
	}

	// resp is released on return; the body must be copied out
	return fetchResult{
		status: resp.StatusCode(),
		body:   append([]byte(nil), resp.Body()...),
	}
}

func rawPriceText(raw jsoniter.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", ErrPriceMissing
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", fmt.Errorf("failed to decode latestPrice string: %w", err)
		}
		if s == "" {
			return "", ErrPriceMissing
		}
		return s, nil
	}

	var n jsoniter.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return "", fmt.Errorf("latestPrice is neither string nor number: %s", string(trimmed))
	}
	return n.String(), nil
}
