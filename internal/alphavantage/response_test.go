package alphavantage_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"stocktracker/internal/alphavantage"
)

const bar = `{"1. open":"100.00","2. high":"106.00","3. low":"99.50","4. close":"105.00","5. volume":"1200"}`

func decode(t *testing.T, body string) alphavantage.Response {
	t.Helper()
	res, err := alphavantage.Decode([]byte(body), alphavantage.DefaultInterval)
	require.NoError(t, err)
	return res
}

func TestDecode_RateLimited(t *testing.T) {
	t.Parallel()

	res := decode(t, `{"Information":"Thank you for using Alpha Vantage! Our standard API RATE LIMIT is 25 requests per day."}`)
	require.Equal(t, &alphavantage.RateLimited{
		Message: "Thank you for using Alpha Vantage! Our standard API RATE LIMIT is 25 requests per day.",
	}, res)
}

func TestDecode_Informational(t *testing.T) {
	t.Parallel()

	res := decode(t, `{"Information":"The demo API key is for demo purposes only."}`)
	require.Equal(t, &alphavantage.Informational{Message: "The demo API key is for demo purposes only."}, res)
}

func TestDecode_NotFound(t *testing.T) {
	t.Parallel()

	res := decode(t, `{"Error Message":"Invalid API call."}`)
	require.Equal(t, &alphavantage.NotFound{Message: "Invalid API call."}, res)
}

func TestDecode_QuotaNote(t *testing.T) {
	t.Parallel()

	res := decode(t, `{"Note":"Thank you for using Alpha Vantage! Our standard API call frequency is 5 calls per minute."}`)
	require.IsType(t, &alphavantage.QuotaNote{}, res)
}

func TestDecode_MissingMetadata(t *testing.T) {
	t.Parallel()

	res := decode(t, `{"Time Series (5min)":{"2024-01-02 09:30:00":`+bar+`},"foo":1}`)
	require.Equal(t, &alphavantage.MissingMetadata{Keys: []string{"Time Series (5min)", "foo"}}, res)
}

func TestDecode_MissingSeries(t *testing.T) {
	t.Parallel()

	res := decode(t, `{"Meta Data":{"2. Symbol":"IBM"},"Time Series (Daily)":{}}`)
	require.Equal(t, &alphavantage.MissingSeries{Keys: []string{"Meta Data", "Time Series (Daily)"}}, res)

	// Assert: an empty series counts as missing.
	res = decode(t, `{"Meta Data":{"2. Symbol":"IBM"},"Time Series (5min)":{}}`)
	require.Equal(t, &alphavantage.MissingSeries{Keys: []string{"Meta Data", "Time Series (5min)"}}, res)
}

func TestDecode_Precedence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
		want alphavantage.Response
	}{
		{
			name: "information beats error message",
			body: `{"Information":"info","Error Message":"err","Note":"note"}`,
			want: &alphavantage.Informational{Message: "info"},
		},
		{
			name: "error message beats note",
			body: `{"Error Message":"err","Note":"note","Meta Data":{}}`,
			want: &alphavantage.NotFound{Message: "err"},
		},
		{
			name: "note beats missing meta data",
			body: `{"Note":"note"}`,
			want: &alphavantage.QuotaNote{Message: "note"},
		},
		{
			name: "note beats a full payload",
			body: `{"Note":"note","Meta Data":{},"Time Series (5min)":{"2024-01-02 09:30:00":` + bar + `}}`,
			want: &alphavantage.QuotaNote{Message: "note"},
		},
		{
			name: "missing meta data beats missing series",
			body: `{"foo":"bar"}`,
			want: &alphavantage.MissingMetadata{Keys: []string{"foo"}},
		},
	}
	for _, tc := range cases {
		require.Equalf(t, tc.want, decode(t, tc.body), tc.name)
	}
}

func TestDecode_SelectsLatestBar(t *testing.T) {
	t.Parallel()

	res := decode(t, `{
		"Meta Data": {"2. Symbol": "AAPL", "3. Last Refreshed": "2024-01-02 09:35:00"},
		"Time Series (5min)": {
			"2024-01-02 09:30:00": {"1. open":"1","2. high":"1","3. low":"1","4. close":"1","5. volume":"1"},
			"2024-01-02 09:35:00": `+bar+`
		}
	}`)

	success, ok := res.(*alphavantage.Success)
	require.True(t, ok)
	require.Equal(t, "AAPL", success.Meta.Symbol)
	require.Equal(t, "2024-01-02 09:35:00", success.Latest.Timestamp)
	require.Equal(t, "100.00", success.Latest.Open)
	require.Equal(t, "105.00", success.Latest.Close)
	require.Equal(t, "1200", success.Latest.Volume)
}

func TestDecode_NonStringMessage(t *testing.T) {
	t.Parallel()

	res := decode(t, `{"Error Message":{"reason":"bad"}}`)
	require.Equal(t, &alphavantage.NotFound{Message: `{"reason":"bad"}`}, res)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	// Assert: undecodable bodies are not classified as malformed blocks.
	for _, body := range []string{"", "not json", "[1,2,3]", `"text"`} {
		_, err := alphavantage.Decode([]byte(body), alphavantage.DefaultInterval)
		require.Errorf(t, err, "body %q", body)
		require.NotErrorIs(t, err, alphavantage.ErrMalformed)
	}

	// Assert: recognised blocks with the wrong shape are malformed.
	for _, body := range []string{
		`{"Meta Data":"x","Time Series (5min)":{}}`,
		`{"Meta Data":{},"Time Series (5min)":[]}`,
		`{"Meta Data":{},"Time Series (5min)":{"2024-01-02 09:30:00":"x"}}`,
		`{"Meta Data":{},"Time Series (5min)":{"2024-01-02 09:30:00":{"1. open":1}}}`,
	} {
		_, err := alphavantage.Decode([]byte(body), alphavantage.DefaultInterval)
		require.ErrorIsf(t, err, alphavantage.ErrMalformed, "body %q", body)
	}
}
