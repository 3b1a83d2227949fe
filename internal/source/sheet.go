package source

import (
	"context"
	"crypto/tls"
	"encoding/csv"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/trendscout/skimmer/internal/config"
	"github.com/trendscout/skimmer/internal/model"
)

// SheetSource loads product records from a published spreadsheet CSV export
// over HTTPS. Fetch and parse failures are logged and yield an empty batch:
// the dashboard renders an empty table instead of failing the page.
type SheetSource struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

// NewSheetSource builds a SheetSource from config. Certificate verification
// can be disabled for local development against self-signed proxies.
func NewSheetSource(cfg config.SheetConfig) *SheetSource {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	transport := http.DefaultTransport
	if cfg.InsecureSkipVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
		}
	}

	perSec := cfg.RatePerSec
	if perSec <= 0 {
		perSec = 1
	}

	return &SheetSource{
		url:     cfg.CSVURL,
		client:  &http.Client{Timeout: timeout, Transport: transport},
		limiter: rate.NewLimiter(rate.Limit(perSec), 1),
	}
}

// Load fetches and parses the CSV export. It never returns an error: any
// failure is logged and an empty batch returned.
func (s *SheetSource) Load(ctx context.Context) ([]model.RawRecord, error) {
	if s.url == "" {
		zap.L().Warn("sheet: no csv_url configured, serving empty catalog")
		return nil, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		zap.L().Warn("sheet: rate limiter interrupted", zap.Error(err))
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		zap.L().Error("sheet: build request", zap.Error(err))
		return nil, nil
	}

	resp, err := s.client.Do(req)
	if err != nil {
		zap.L().Error("sheet: fetch csv", zap.String("url", s.url), zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Error("sheet: unexpected status",
			zap.String("url", s.url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, nil
	}

	records, err := ParseCSV(resp.Body)
	if err != nil {
		zap.L().Error("sheet: parse csv", zap.Error(err))
		return nil, nil
	}

	zap.L().Info("sheet: loaded products", zap.Int("count", len(records)))
	return records, nil
}

// ParseCSV reads header-mapped CSV into raw records. The header row names
// the RawRecord fields; cell values stay as strings for the coercion layer.
func ParseCSV(r io.Reader) ([]model.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "source: read csv")
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, col := range rows[0] {
		header[i] = strings.TrimSpace(col)
	}

	records := make([]model.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(model.RawRecord, len(header))
		for i, col := range header {
			if col == "" || i >= len(row) {
				continue
			}
			rec[col] = row[i]
		}
		records = append(records, rec)
	}
	return records, nil
}
