package symbol

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

var (
	// ErrRequired is returned when the symbol is empty after trimming.
	ErrRequired = errors.New("symbol: required")
	// ErrInvalidFormat is returned when the symbol is not 1-5 letters.
	ErrInvalidFormat = errors.New("symbol: invalid format")
)

var pattern = regexp.MustCompile(`^[A-Z]{1,5}$`)

// Normalize trims and uppercases raw user input and checks it is a
// 1-5 letter ticker. The normalized form is returned even on
// ErrInvalidFormat so callers can echo it back.
func Normalize(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", ErrRequired
	}
	if !pattern.MatchString(s) {
		return s, ErrInvalidFormat
	}
	return s, nil
}

var companyNames = map[string]string{
	"AAPL":  "Apple Inc.",
	"TSLA":  "Tesla, Inc.",
	"GOOGL": "Alphabet Inc.",
	"MSFT":  "Microsoft Corporation",
	"AMZN":  "Amazon.com, Inc.",
	"META":  "Meta Platforms, Inc.",
	"NVDA":  "NVIDIA Corporation",
	"NFLX":  "Netflix, Inc.",
	"SPY":   "SPDR S&P 500 ETF Trust",
	"QQQ":   "Invesco QQQ Trust",
	"IWM":   "iShares Russell 2000 ETF",
	"VTI":   "Vanguard Total Stock Market ETF",
	"VOO":   "Vanguard S&P 500 ETF",
	"ARKK":  "ARK Innovation ETF",
	"BTC":   "Bitcoin",
	"ETH":   "Ethereum",
	"COIN":  "Coinbase Global, Inc.",
	"SQ":    "Block, Inc.",
	"PYPL":  "PayPal Holdings, Inc.",
	"ADBE":  "Adobe Inc.",
	"CRM":   "Salesforce, Inc.",
	"ORCL":  "Oracle Corporation",
	"IBM":   "International Business Machines Corporation",
	"INTC":  "Intel Corporation",
	"AMD":   "Advanced Micro Devices, Inc.",
}

// supported is the display-only list of symbols advertised by the API
// description. It is never used to reject a request.
var supported = func() []string {
	out := make([]string, 0, len(companyNames))
	for s := range companyNames {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}()

// CompanyName returns the display name for sym, or sym itself when unknown.
func CompanyName(sym string) string {
	if name, ok := companyNames[sym]; ok {
		return name
	}
	return sym
}

// Supported returns a copy of the advertised symbols in sorted order.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}
