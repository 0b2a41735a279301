package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cta-tracker/internal/common/config"
	"github.com/cta-tracker/internal/common/logger"
	"github.com/cta-tracker/pkg/tracker/models"
)

// arrivalsResponse mirrors the Train Tracker envelope. Everything outside
// ctatt.eta is ignored.
type arrivalsResponse struct {
	Ctatt struct {
		Eta []etaEntry `json:"eta"`
	} `json:"ctatt"`
}

type etaEntry struct {
	Route       string `json:"rt"`
	Destination string `json:"destNm"`
	ArrivalTime string `json:"arrT"`
}

// Fetcher retrieves upcoming arrivals for a single stop from the CTA Train
// Tracker API.
type Fetcher struct {
	client *http.Client
	cfg    config.APIConfig
	loc    *time.Location
	logger logger.Logger

	// now is replaceable in tests; defaults to the wall clock.
	now func() time.Time
}

func New(cfg *config.Config, log logger.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		cfg:    cfg.API,
		loc:    cfg.Board.Location(),
		logger: log,
		now:    time.Now,
	}
}

// Fetch performs one request against the arrivals endpoint and returns the
// stop's upcoming arrivals with countdowns computed against the current time.
// A response with no ctatt or eta member means no trains are scheduled and
// yields an empty slice, not an error.
func (f *Fetcher) Fetch(ctx context.Context) ([]models.ArrivalRecord, error) {
	params := url.Values{}
	params.Set("key", f.cfg.Key)
	params.Set("mapid", f.cfg.StopID)
	params.Set("outputType", "JSON")
	requestURL := f.cfg.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	f.logger.Info("Requesting arrivals",
		"url", f.cfg.BaseURL,
		"mapid", f.cfg.StopID,
		"outputType", "JSON")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request to %s: %w", f.cfg.BaseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		f.logger.Error("API returned error status",
			"status_code", resp.StatusCode,
			"response_body", string(body))
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result arrivalsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	now := f.now().In(f.loc)
	records := make([]models.ArrivalRecord, 0, len(result.Ctatt.Eta))
	for _, eta := range result.Ctatt.Eta {
		arrival, err := models.ParseArrivalTime(eta.ArrivalTime, f.loc)
		if err != nil {
			return nil, fmt.Errorf("arrival entry for route %q: %w", eta.Route, err)
		}
		records = append(records, models.NewArrivalRecord(eta.Route, eta.Destination, arrival.In(f.loc), now))
	}

	f.logger.Info("Fetched arrival entries", "count", len(records))

	return records, nil
}
