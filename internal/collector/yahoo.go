package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"StockAnalysis/internal/model"
)

// DefaultYahooBaseURL is the public Yahoo Finance chart API host.
const DefaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using Yahoo Finance public API.
type YahooFetcher struct {
	BaseURL   string
	Client    *http.Client
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(baseURL, proxyURL string, timeout time.Duration) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = DefaultYahooBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &YahooFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure from Yahoo Finance chart API.
// Quote columns are pointers because the vendor emits null for missing sessions.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol    string `json:"symbol"`
				Currency  string `json:"currency"`
				Gmtoffset int64  `json:"gmtoffset"`
				Timezone  string `json:"exchangeTimezoneName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchDailyBars downloads daily bars for the whole period.
func (f *YahooFetcher) FetchDailyBars(symbol string, period model.Period) (model.PriceSeries, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s&includePrePost=false",
		f.BaseURL, url.PathEscape(f.yahooSymbol(symbol)), url.QueryEscape(string(period)))

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return model.PriceSeries{}, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("yahoo read body: %w", err)
	}

	notFound := func(reason string) error {
		return &model.DataNotFoundError{Ticker: symbol, Period: period, Reason: reason}
	}

	var chart yahooChart
	decodeErr := json.Unmarshal(body, &chart)

	if resp.StatusCode == http.StatusNotFound {
		reason := "symbol not found"
		if decodeErr == nil && chart.Chart.Error != nil {
			reason = chart.Chart.Error.Description
		}
		return model.PriceSeries{}, notFound(reason)
	}
	if resp.StatusCode != http.StatusOK {
		return model.PriceSeries{}, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, truncate(string(body), 200))
	}
	if decodeErr != nil {
		return model.PriceSeries{}, fmt.Errorf("yahoo decode: %w", decodeErr)
	}
	if e := chart.Chart.Error; e != nil {
		if strings.EqualFold(e.Code, "Not Found") {
			return model.PriceSeries{}, notFound(e.Description)
		}
		return model.PriceSeries{}, fmt.Errorf("yahoo api error: %s", e.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 ||
		len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return model.PriceSeries{}, notFound("")
	}

	bars := normalizeChart(chart)
	if len(bars) == 0 {
		return model.PriceSeries{}, notFound("")
	}
	log.Printf("[INFO] yahoo: %d daily bars for %s (%s)", len(bars), symbol, period)
	return model.PriceSeries{Symbol: symbol, Period: period, Bars: bars}, nil
}

// normalizeChart converts the vendor column layout into canonical daily bars:
// null sessions dropped, timestamps reduced to exchange-local dates, one bar
// per date (last wins), oldest first.
func normalizeChart(chart yahooChart) []model.OHLCV {
	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	offset := result.Meta.Gmtoffset

	byDate := make(map[time.Time]model.OHLCV, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		c, ok := at(quote.Close, i)
		if !ok || c <= 0 {
			continue // skip null bars (holidays etc.)
		}
		o, _ := at(quote.Open, i)
		h, _ := at(quote.High, i)
		l, _ := at(quote.Low, i)
		v, _ := at(quote.Volume, i)

		local := time.Unix(ts+offset, 0).UTC()
		date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
		byDate[date] = model.OHLCV{
			Time:   date,
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: int64(v),
		}
	}

	bars := make([]model.OHLCV, 0, len(byDate))
	for _, b := range byDate {
		bars = append(bars, b)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars
}

func at(col []*float64, i int) (float64, bool) {
	if i >= len(col) || col[i] == nil {
		return 0, false
	}
	return *col[i], true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
