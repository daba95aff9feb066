package quote

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"stocktracker/internal/alphavantage"
	"stocktracker/internal/market"
	"stocktracker/internal/symbol"
)

// Provenance values stamped on every Result.
const (
	DataQualityRealTime = "real_time"
	SourceAlphaVantage  = "Alpha Vantage API"
)

var hundred = decimal.NewFromInt(100)

// Result is the simplified quote returned to clients.
type Result struct {
	Symbol             string        `json:"symbol"`
	CompanyName        string        `json:"company_name"`
	LastRefreshed      string        `json:"last_refreshed"`
	LatestTimeEastern  string        `json:"latest_time_eastern"`
	LatestTimePacific  string        `json:"latest_time_pacific"`
	Open               string        `json:"open"`
	High               string        `json:"high"`
	Low                string        `json:"low"`
	Close              string        `json:"close"`
	Volume             string        `json:"volume"`
	PriceChange        float64       `json:"price_change"`
	PriceChangePercent float64       `json:"price_change_percent"`
	MarketStatus       market.Status `json:"market_status"`
	DataQuality        string        `json:"data_quality"`
	Source             string        `json:"source"`
}

// Translate derives a Result from a successful payload for the requested
// symbol. Prices are echoed as upstream text; the change fields are computed
// on exact decimals and rounded half-to-even to two places.
func Translate(requested string, s *alphavantage.Success) (*Result, error) {
	obs := s.Latest

	open, err := decimal.NewFromString(obs.Open)
	if err != nil {
		return nil, fmt.Errorf("parsing open %q: %w", obs.Open, err)
	}
	closePrice, err := decimal.NewFromString(obs.Close)
	if err != nil {
		return nil, fmt.Errorf("parsing close %q: %w", obs.Close, err)
	}
	if _, err := strconv.ParseUint(obs.Volume, 10, 64); err != nil {
		return nil, fmt.Errorf("parsing volume %q: %w", obs.Volume, err)
	}

	eastern, err := market.ParseExchangeTime(obs.Timestamp)
	if err != nil {
		return nil, err
	}
	pacific := market.ToReference(eastern)

	change := closePrice.Sub(open)
	percent := decimal.Zero
	if open.IsPositive() {
		percent = change.Div(open).Mul(hundred)
	}

	sym := s.Meta.Symbol
	if sym == "" {
		sym = requested
	}

	return &Result{
		Symbol:             sym,
		CompanyName:        symbol.CompanyName(requested),
		LastRefreshed:      s.Meta.LastRefreshed,
		LatestTimeEastern:  obs.Timestamp,
		LatestTimePacific:  pacific.Format(market.DisplayLayout),
		Open:               obs.Open,
		High:               obs.High,
		Low:                obs.Low,
		Close:              obs.Close,
		Volume:             obs.Volume,
		PriceChange:        change.RoundBank(2).InexactFloat64(),
		PriceChangePercent: percent.RoundBank(2).InexactFloat64(),
		MarketStatus:       market.StatusAt(pacific),
		DataQuality:        DataQualityRealTime,
		Source:             SourceAlphaVantage,
	}, nil
}
