package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"solenoidctl/application"

	"github.com/rs/zerolog"
)

const SolenoidDefaultTimeout = 5 * time.Second

// RemoteError is a non-2xx answer from the controller. The body is kept
// verbatim since the firmware's responses are free-form text.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("device responded with status %d: %s", e.StatusCode, e.Body)
}

type SolenoidClientParams struct {
	Host string
	Port int

	Timeout    time.Duration
	HTTPClient *http.Client

	Log zerolog.Logger
}

func (p *SolenoidClientParams) EnsureDefaults() {
	if p.Port == 0 {
		p.Port = 80
	}

	if p.Timeout == 0 {
		p.Timeout = SolenoidDefaultTimeout
	}

	if p.HTTPClient == nil {
		p.HTTPClient = &http.Client{Timeout: p.Timeout}
	}
}

// SolenoidClient talks plain HTTP to the irrigation controller at a fixed
// address. It performs no retries; the caller reports errors and exits.
type SolenoidClient struct {
	params SolenoidClientParams

	client *http.Client

	log zerolog.Logger
}

func NewSolenoidClient(params SolenoidClientParams) (*SolenoidClient, error) {
	if params.Host == "" {
		return nil, fmt.Errorf("Host is required")
	}
	params.EnsureDefaults()

	return &SolenoidClient{params: params, client: params.HTTPClient, log: params.Log}, nil
}

func (c *SolenoidClient) Open(ctx context.Context) (string, error) {
	return c.postText(ctx, "/open", nil, nil)
}

func (c *SolenoidClient) Close(ctx context.Context) (string, error) {
	return c.postText(ctx, "/close", nil, nil)
}

func (c *SolenoidClient) OpenTimed(ctx context.Context, seconds int) (string, error) {
	query := url.Values{}
	query.Set("time", strconv.Itoa(seconds))
	return c.postText(ctx, "/timed", query, nil)
}

func (c *SolenoidClient) State(ctx context.Context) (string, error) {
	data, err := c.do(ctx, http.MethodGet, "/state", nil, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (c *SolenoidClient) SetThresholds(ctx context.Context, t application.Thresholds) (string, error) {
	form := url.Values{}
	form.Set("min", formatPercent(t.Min))
	form.Set("max", formatPercent(t.Max))
	return c.postText(ctx, "/irrigation_setup", nil, form)
}

func (c *SolenoidClient) SetAuto(ctx context.Context, enable bool) (string, error) {
	form := url.Values{}
	form.Set("enable", strconv.FormatBool(enable))
	return c.postText(ctx, "/auto", nil, form)
}

func (c *SolenoidClient) Status(ctx context.Context) (*application.StatusSnapshot, error) {
	data, err := c.do(ctx, http.MethodGet, "/status", nil, nil)
	if err != nil {
		return nil, err
	}

	var resp statusResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("malformed status payload: %w", err)
	}

	return &application.StatusSnapshot{
		SolenoidState:   resp.SolenoidState,
		CurrentMoisture: resp.CurrentMoisture,
		AutoEnabled:     resp.AutoIrrigationEnabled,
		MinThreshold:    resp.MinThreshold,
		MaxThreshold:    resp.MaxThreshold,
		CheckInterval:   resp.CheckIntervalSeconds,
	}, nil
}

var _ application.DeviceClient = &SolenoidClient{}

// statusResponse mirrors the firmware's /status JSON document.
type statusResponse struct {
	SolenoidState         string  `json:"solenoid_state"`
	CurrentMoisture       float64 `json:"current_moisture"`
	AutoIrrigationEnabled bool    `json:"auto_irrigation_enabled"`
	MinThreshold          float64 `json:"min_threshold"`
	MaxThreshold          float64 `json:"max_threshold"`
	CheckIntervalSeconds  int     `json:"check_interval_seconds"`
}

func (c *SolenoidClient) postText(ctx context.Context, path string, query, form url.Values) (string, error) {
	data, err := c.do(ctx, http.MethodPost, path, query, form)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (c *SolenoidClient) do(ctx context.Context, method, path string, query, form url.Values) ([]byte, error) {
	u := url.URL{
		Scheme:   "http",
		Host:     net.JoinHostPort(c.params.Host, strconv.Itoa(c.params.Port)),
		Path:     path,
		RawQuery: query.Encode(),
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	c.log.Debug().Str("method", method).Str("url", u.String()).Msg("device request")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not reach controller at %s: %w", u.Host, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading device response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &RemoteError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	return data, nil
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
