// Package external is the PokeAPI client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/harsheetasys/pokemon-battle-simulation/internal/clients/external Client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
)

const (
	// DefaultBaseURL is the public PokeAPI
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	// DefaultHTTPTimeout bounds every outbound request
	DefaultHTTPTimeout = 10 * time.Second

	// LanguageEnglish is the language tag used for effect texts
	LanguageEnglish = "en"

	// maxBodyBytes caps how much of a response body is read
	maxBodyBytes = 4 << 20
)

// Client defines the interface for PokeAPI interactions
type Client interface {
	// GetPokemon fetches /pokemon/{name}
	GetPokemon(ctx context.Context, name string) (*PokemonData, error)

	// GetSpecies fetches /pokemon-species/{name}
	GetSpecies(ctx context.Context, name string) (*SpeciesData, error)

	// GetEvolutionChain fetches /evolution-chain/{id}
	GetEvolutionChain(ctx context.Context, id int) (*EvolutionChainData, error)

	// GetMove fetches /move/{name}
	GetMove(ctx context.Context, name string) (*MoveData, error)

	// GetAbility fetches /ability/{name}
	GetAbility(ctx context.Context, name string) (*AbilityData, error)
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for PokeAPI (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 10 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the default client (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base url %q: %v", cfg.BaseURL, err)
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.HTTPTimeout < 0 {
		return errors.InvalidArgument("http timeout must not be negative")
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

func (c *client) GetPokemon(ctx context.Context, name string) (*PokemonData, error) {
	var data PokemonData
	if err := c.getNamed(ctx, "pokemon", name, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *client) GetSpecies(ctx context.Context, name string) (*SpeciesData, error) {
	var data SpeciesData
	if err := c.getNamed(ctx, "pokemon-species", name, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *client) GetEvolutionChain(ctx context.Context, id int) (*EvolutionChainData, error) {
	if id <= 0 {
		return nil, errors.InvalidArgumentf("invalid evolution chain id: %d", id)
	}

	var data EvolutionChainData
	if err := c.get(ctx, "evolution-chain/"+strconv.Itoa(id), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *client) GetMove(ctx context.Context, name string) (*MoveData, error) {
	var data MoveData
	if err := c.getNamed(ctx, "move", name, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *client) GetAbility(ctx context.Context, name string) (*AbilityData, error) {
	var data AbilityData
	if err := c.getNamed(ctx, "ability", name, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// NormalizeName lower-cases and trims a resource name the way PokeAPI expects it
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (c *client) getNamed(ctx context.Context, resource, name string, out any) error {
	key := NormalizeName(name)
	if key == "" {
		return errors.InvalidArgumentf("%s name is required", resource)
	}
	return c.get(ctx, resource+"/"+url.PathEscape(key), out)
}

// get fetches baseURL+path and decodes the JSON body into out
func (c *client) get(ctx context.Context, path string, out any) error {
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", path)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return contextError(ctxErr, path)
		}
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "pokeapi request for %s failed", path)
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug("pokeapi request",
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NotFoundf("%s not found", path).WithMeta("path", path)
	case resp.StatusCode != http.StatusOK:
		return errors.Unavailablef("pokeapi returned %d for %s", resp.StatusCode, path).
			WithMeta("status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read pokeapi response for %s", path)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInternal, "failed to decode pokeapi response for %s", path)
	}
	return nil
}

func contextError(err error, path string) *errors.Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.WrapWithCodef(err, errors.CodeDeadlineExceeded, "pokeapi request for %s timed out", path)
	}
	return errors.WrapWithCodef(err, errors.CodeCanceled, "pokeapi request for %s canceled", path)
}

// ParseResourceID extracts the trailing numeric id of a PokeAPI resource URL,
// e.g. "https://pokeapi.co/api/v2/evolution-chain/10/" -> 10.
func ParseResourceID(resourceURL string) (int, error) {
	u, err := url.Parse(resourceURL)
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid resource url %q", resourceURL)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := segments[len(segments)-1]

	id, err := strconv.Atoi(last)
	if err != nil || id <= 0 {
		return 0, errors.InvalidArgumentf("no resource id in url %q", resourceURL)
	}
	return id, nil
}
