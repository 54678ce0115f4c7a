package rapidapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/denisAlshanov/clipgrab/internal/config"
	"github.com/denisAlshanov/clipgrab/internal/models"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

const serviceName = "Video download service"

// Client queries the RapidAPI metadata endpoint GET https://{host}/dl?id={id}.
type Client struct {
	httpClient *http.Client
	cfg        config.RapidAPIConfig
	baseURL    string
}

// envelope holds the loosely specified upstream body. Success bodies carry
// title and formats, error bodies carry message or error; a field of an
// unexpected type is treated as absent.
type envelope struct {
	Title   string
	Message string
	Error   string
	Formats []json.RawMessage
}

func (e envelope) errorText() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

func parseEnvelope(body []byte) (envelope, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return envelope{}, err
	}

	var env envelope
	_ = json.Unmarshal(fields["title"], &env.Title)
	_ = json.Unmarshal(fields["message"], &env.Message)
	_ = json.Unmarshal(fields["error"], &env.Error)
	_ = json.Unmarshal(fields["formats"], &env.Formats)
	return env, nil
}

func NewClient(cfg config.RapidAPIConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		baseURL:    "https://" + cfg.Host,
	}
}

// WithBaseURL points the client at another origin, e.g. a test server.
// The x-rapidapi-host header still carries the configured host.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

func (c *Client) Name() string {
	return serviceName
}

// CheckConfigured rejects an unset or placeholder API key.
func (c *Client) CheckConfigured() error {
	if !c.cfg.Configured() {
		return utils.NewConfigurationError("RapidAPI key is not configured or is still the placeholder. Please set RAPIDAPI_KEY in your .env file.")
	}
	return nil
}

// GetVideoMetadata performs a single GET with no retries. A non-200 status,
// an error body or an empty format list are all terminal failures.
func (c *Client) GetVideoMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	if err := c.CheckConfigured(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/dl?id=%s", c.baseURL, url.QueryEscape(videoID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("x-rapidapi-host", c.cfg.Host)
	req.Header.Set("x-rapidapi-key", c.cfg.Key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		utils.LogError(ctx, "Fetch error calling RapidAPI", err, utils.Fields{"video_id": videoID})
		return nil, utils.NewUpstreamTransportError(serviceName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, utils.NewUpstreamTransportError(serviceName, err)
	}

	if resp.StatusCode != http.StatusOK {
		utils.LogWarn(ctx, "RapidAPI returned non-200 status", utils.Fields{
			"video_id": videoID,
			"status":   resp.StatusCode,
			"body":     truncate(string(body), 500),
		})
		upstreamMessage := ""
		if env, err := parseEnvelope(body); err == nil {
			upstreamMessage = env.errorText()
		} else if text := strings.TrimSpace(string(body)); text != "" {
			upstreamMessage = truncate(text, 200)
		}
		return nil, utils.NewUpstreamProtocolError(serviceName, resp.StatusCode, upstreamMessage)
	}

	env, err := parseEnvelope(body)
	if err != nil {
		return nil, utils.NewUpstreamProtocolError(serviceName, resp.StatusCode, "response body is not a JSON object")
	}
	if env.Error != "" {
		return nil, utils.NewUpstreamProtocolError(serviceName, resp.StatusCode, env.Error)
	}

	candidates := decodeCandidates(env.Formats)
	if len(candidates) == 0 {
		message := env.Message
		if message == "" {
			message = `No downloadable links found. Expected a non-empty "formats" array.`
		}
		utils.LogWarn(ctx, "RapidAPI response has no formats", utils.Fields{
			"video_id": videoID,
			"body":     truncate(string(body), 500),
		})
		return nil, utils.NewUpstreamProtocolError(serviceName, resp.StatusCode, message)
	}

	return &models.VideoMetadata{
		Title:   env.Title,
		Formats: candidates,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
