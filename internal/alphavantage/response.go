package alphavantage

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Top-level keys of an intraday payload.
const (
	keyInformation  = "Information"
	keyErrorMessage = "Error Message"
	keyNote         = "Note"
	keyMetaData     = "Meta Data"
)

// ErrMalformed is returned when a recognised block of the payload has an
// unexpected shape.
var ErrMalformed = errors.New("alphavantage: malformed payload")

// SeriesKey returns the top-level key holding the bars for interval.
func SeriesKey(interval string) string {
	return fmt.Sprintf("Time Series (%s)", interval)
}

// MetaData is the "Meta Data" block of an intraday payload.
type MetaData struct {
	Information   string `json:"1. Information"`
	Symbol        string `json:"2. Symbol"`
	LastRefreshed string `json:"3. Last Refreshed"`
	Interval      string `json:"4. Interval"`
	OutputSize    string `json:"5. Output Size"`
	TimeZone      string `json:"6. Time Zone"`
}

// Observation is a single intraday bar. Values are kept as upstream text.
type Observation struct {
	// Timestamp is exchange-local wall-clock time, "2006-01-02 15:04:05".
	Timestamp string `json:"-"`
	Open      string `json:"1. open"`
	High      string `json:"2. high"`
	Low       string `json:"3. low"`
	Close     string `json:"4. close"`
	Volume    string `json:"5. volume"`
}

// Response is the classified outcome of an intraday call. It is one of
// *Success, *RateLimited, *Informational, *NotFound, *QuotaNote,
// *MissingMetadata or *MissingSeries.
type Response interface {
	isResponse()
}

// Success carries the metadata and the most recent bar.
type Success struct {
	Meta   MetaData
	Latest Observation
}

// RateLimited is an "Information" message mentioning a rate limit.
type RateLimited struct{ Message string }

// Informational is any other "Information" message.
type Informational struct{ Message string }

// NotFound is an "Error Message" reply, typically an unknown symbol.
type NotFound struct{ Message string }

// QuotaNote is a "Note" reply, used by the API for call-frequency notices.
type QuotaNote struct{ Message string }

// MissingMetadata is a payload without a "Meta Data" block.
type MissingMetadata struct{ Keys []string }

// MissingSeries is a payload without bars for the requested interval.
type MissingSeries struct{ Keys []string }

func (*Success) isResponse()         {}
func (*RateLimited) isResponse()     {}
func (*Informational) isResponse()   {}
func (*NotFound) isResponse()        {}
func (*QuotaNote) isResponse()       {}
func (*MissingMetadata) isResponse() {}
func (*MissingSeries) isResponse()   {}

// Decode classifies an intraday payload. The checks run in a fixed order
// and the first match wins, so an "Information" message always beats an
// "Error Message" and so on down to a successful payload.
func Decode(body []byte, interval string) (Response, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding intraday response: %w", err)
	}

	if raw, ok := payload[keyInformation]; ok {
		msg := text(raw)
		if strings.Contains(strings.ToLower(msg), "rate limit") {
			return &RateLimited{Message: msg}, nil
		}
		return &Informational{Message: msg}, nil
	}
	if raw, ok := payload[keyErrorMessage]; ok {
		return &NotFound{Message: text(raw)}, nil
	}
	if raw, ok := payload[keyNote]; ok {
		return &QuotaNote{Message: text(raw)}, nil
	}

	rawMeta, ok := payload[keyMetaData]
	if !ok {
		return &MissingMetadata{Keys: sortedKeys(payload)}, nil
	}
	rawSeries, ok := payload[SeriesKey(interval)]
	if !ok {
		return &MissingSeries{Keys: sortedKeys(payload)}, nil
	}

	var meta MetaData
	if err := json.Unmarshal(rawMeta, &meta); err != nil {
		return nil, fmt.Errorf("%w: meta data: %v", ErrMalformed, err)
	}

	var series map[string]json.RawMessage
	if err := json.Unmarshal(rawSeries, &series); err != nil {
		return nil, fmt.Errorf("%w: time series: %v", ErrMalformed, err)
	}
	if len(series) == 0 {
		return &MissingSeries{Keys: sortedKeys(payload)}, nil
	}

	// Timestamps are fixed-width, so the lexicographic maximum is the latest.
	latest := slices.Max(slices.Collect(maps.Keys(series)))

	var obs Observation
	if err := json.Unmarshal(series[latest], &obs); err != nil {
		return nil, fmt.Errorf("%w: bar %s: %v", ErrMalformed, latest, err)
	}
	obs.Timestamp = latest

	return &Success{Meta: meta, Latest: obs}, nil
}

// text returns a JSON string value, or the raw JSON for non-string values.
func text(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func sortedKeys(m map[string]json.RawMessage) []string {
	return slices.Sorted(maps.Keys(m))
}
