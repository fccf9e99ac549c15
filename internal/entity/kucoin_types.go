package entity

import jsoniter "github.com/json-iterator/go"

// MarketStatisticsResponse is the envelope returned by the KuCoin market statistics endpoint.
type MarketStatisticsResponse struct {
	Success bool              `json:"success"`
	Msg     string            `json:"msg"`
	Data    *MarketStatistics `json:"data"`
}

// MarketStatistics holds the per-symbol statistics. Only latestPrice is consumed;
// it is kept raw because the endpoint has served it both as a string and as a number.
type MarketStatistics struct {
	Symbol      string              `json:"symbol"`
	LatestPrice jsoniter.RawMessage `json:"latestPrice"`
}
