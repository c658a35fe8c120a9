package tvmaze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrShowNotFound reports that the provider has no show for the query. The
// resolution engine treats it as a silent miss rather than a failure.
var ErrShowNotFound = errors.New("show not found")

// Client provides access to the TVMaze public API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option adjusts how the Client talks to the provider.
type Option func(*Client)

// WithHTTPClient substitutes the HTTP client used for provider calls.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = strings.TrimSpace(userAgent)
	}
}

// New creates a TVMaze client.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tvmaze base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ShowQuery identifies a show to fetch from the provider. Identifier fields
// take precedence over the name; year, network, country, and language qualify
// a name search.
type ShowQuery struct {
	TVMazeID int64
	TVDBID   int64
	TVRageID int64
	Name     string
	Year     int
	Network  string
	Country  string
	Language string
}

func (q ShowQuery) hasQualifiers() bool {
	return q.Year > 0 || q.Network != "" || q.Country != "" || q.Language != ""
}

// GetShow fetches a show using the strongest identifier the query carries:
// TVMaze ID, then TVDB ID, then TVRage ID, then name search. The returned
// show always has its episode list embedded; when the provider omits the
// embed, the episode endpoint fills it in.
func (c *Client) GetShow(ctx context.Context, query ShowQuery) (*Show, error) {
	show, err := c.fetchShow(ctx, query)
	if err != nil {
		return nil, err
	}
	if show.Embedded == nil || show.Embedded.Episodes == nil {
		episodes, err := c.Episodes(ctx, show.ID)
		if err != nil {
			return nil, err
		}
		show.Embedded = &ShowEmbedding{Episodes: episodes}
	}
	return show, nil
}

func (c *Client) fetchShow(ctx context.Context, query ShowQuery) (*Show, error) {
	switch {
	case query.TVMazeID != 0:
		return c.ShowByID(ctx, query.TVMazeID)
	case query.TVDBID != 0:
		return c.ShowByTVDBID(ctx, query.TVDBID)
	case query.TVRageID != 0:
		return c.ShowByTVRageID(ctx, query.TVRageID)
	case strings.TrimSpace(query.Name) != "":
		return c.showByName(ctx, query)
	default:
		return nil, errors.New("show query needs an id or a name")
	}
}

func (c *Client) showByName(ctx context.Context, query ShowQuery) (*Show, error) {
	name := strings.TrimSpace(query.Name)
	if !query.hasQualifiers() {
		return c.SingleSearch(ctx, name)
	}

	results, err := c.SearchShows(ctx, name)
	if err != nil {
		return nil, err
	}
	for _, result := range results {
		if matchesQualifiers(result.Show, query) {
			return c.ShowByID(ctx, result.Show.ID)
		}
	}
	return nil, fmt.Errorf("tvmaze search %q: %w", name, ErrShowNotFound)
}

// ShowByID fetches a show by TVMaze ID with its episodes embedded.
func (c *Client) ShowByID(ctx context.Context, tvmazeID int64) (*Show, error) {
	if tvmazeID <= 0 {
		return nil, errors.New("tvmaze id must be positive")
	}
	params := url.Values{}
	params.Set("embed", "episodes")

	var show Show
	if err := c.getJSON(ctx, fmt.Sprintf("/shows/%d", tvmazeID), params, &show, "show fetch"); err != nil {
		return nil, err
	}
	return &show, nil
}

// ShowByTVDBID resolves a TVDB ID through the lookup endpoint, then fetches
// the full show with episodes embedded.
func (c *Client) ShowByTVDBID(ctx context.Context, tvdbID int64) (*Show, error) {
	if tvdbID <= 0 {
		return nil, errors.New("tvdb id must be positive")
	}
	return c.lookupShow(ctx, "thetvdb", tvdbID)
}

// ShowByTVRageID resolves a TVRage ID through the lookup endpoint, then
// fetches the full show with episodes embedded.
func (c *Client) ShowByTVRageID(ctx context.Context, tvrageID int64) (*Show, error) {
	if tvrageID <= 0 {
		return nil, errors.New("tvrage id must be positive")
	}
	return c.lookupShow(ctx, "tvrage", tvrageID)
}

func (c *Client) lookupShow(ctx context.Context, externalKey string, externalID int64) (*Show, error) {
	params := url.Values{}
	params.Set(externalKey, strconv.FormatInt(externalID, 10))

	// The lookup endpoint does not support embeds, so a second fetch picks
	// up the episode list.
	var stub Show
	if err := c.getJSON(ctx, "/lookup/shows", params, &stub, externalKey+" lookup"); err != nil {
		return nil, err
	}
	return c.ShowByID(ctx, stub.ID)
}

// SingleSearch asks the provider for its single best match on a name, with
// episodes embedded. A miss surfaces as ErrShowNotFound.
func (c *Client) SingleSearch(ctx context.Context, name string) (*Show, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("search name must not be empty")
	}
	params := url.Values{}
	params.Set("q", name)
	params.Set("embed", "episodes")

	var show Show
	if err := c.getJSON(ctx, "/singlesearch/shows", params, &show, "single search"); err != nil {
		return nil, err
	}
	return &show, nil
}

// SearchShows returns the provider's scored candidate list for a name. No
// matches is an empty list, not an error.
func (c *Client) SearchShows(ctx context.Context, name string) ([]SearchResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("search name must not be empty")
	}
	params := url.Values{}
	params.Set("q", name)

	var results []SearchResult
	if err := c.getJSON(ctx, "/search/shows", params, &results, "search"); err != nil {
		return nil, err
	}
	return results, nil
}

// Episodes fetches the full episode list of a show, specials included.
func (c *Client) Episodes(ctx context.Context, tvmazeID int64) ([]Episode, error) {
	if tvmazeID <= 0 {
		return nil, errors.New("tvmaze id must be positive")
	}
	params := url.Values{}
	params.Set("specials", "1")

	var episodes []Episode
	if err := c.getJSON(ctx, fmt.Sprintf("/shows/%d/episodes", tvmazeID), params, &episodes, "episode list"); err != nil {
		return nil, err
	}
	return episodes, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any, operation string) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tvmaze url: %w", err)
	}
	if len(params) > 0 {
		endpoint.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("tvmaze %s after %v: %w", operation, elapsed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("tvmaze %s: %w", operation, ErrShowNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tvmaze %s: status %d after %v", operation, resp.StatusCode, elapsed)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

func matchesQualifiers(show Show, query ShowQuery) bool {
	if query.Year > 0 {
		if len(show.Premiered) < 4 || show.Premiered[:4] != strconv.Itoa(query.Year) {
			return false
		}
	}
	if query.Network != "" && !matchesNetworkName(show, query.Network) {
		return false
	}
	if query.Country != "" && !matchesCountry(show, query.Country) {
		return false
	}
	if query.Language != "" && !strings.EqualFold(show.Language, query.Language) {
		return false
	}
	return true
}

func matchesNetworkName(show Show, name string) bool {
	if show.Network != nil && strings.EqualFold(show.Network.Name, name) {
		return true
	}
	return show.WebChannel != nil && strings.EqualFold(show.WebChannel.Name, name)
}

func matchesCountry(show Show, country string) bool {
	for _, network := range []*Network{show.Network, show.WebChannel} {
		if network == nil || network.Country == nil {
			continue
		}
		if strings.EqualFold(network.Country.Code, country) || strings.EqualFold(network.Country.Name, country) {
			return true
		}
	}
	return false
}
