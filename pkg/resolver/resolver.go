// Package resolver turns blockchain domain names (.eth, .sol, Unstoppable
// Domains TLDs) into validated addresses. It is the only part of the engine
// that performs network I/O; resolved values are never trusted and always go
// back through address validation (one hop, never recursively).
package resolver

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/grendel/chainaddr/pkg/chain"
	"github.com/grendel/chainaddr/pkg/ens"
	"github.com/grendel/chainaddr/pkg/validate"
)

// Default upstream endpoints. Each can be overridden via Config or the
// corresponding CHAINADDR_* environment variable.
const (
	DefaultEthereumRPC    = "https://eth.llamarpc.com"
	DefaultUnstoppableURL = "https://resolve.unstoppabledomains.com"
	DefaultSNSProxyURL    = "https://sns-sdk-proxy.bonfida.workers.dev"
	DefaultHTTPTimeout    = 10 * time.Second
)

// unstoppableTLDs are the Unstoppable Domains namespaces.
var unstoppableTLDs = []string{".crypto", ".nft", ".x", ".wallet", ".blockchain", ".bitcoin", ".dao", ".888"}

// Config carries the resolver endpoints.
type Config struct {
	EthereumRPC    string
	UnstoppableURL string
	SNSProxyURL    string
	HTTPTimeout    time.Duration
}

// FromEnv fills a Config from defaults, overridden by CHAINADDR_ETH_RPC,
// CHAINADDR_UD_URL and CHAINADDR_SNS_URL when set.
func FromEnv() Config {
	cfg := Config{
		EthereumRPC:    DefaultEthereumRPC,
		UnstoppableURL: DefaultUnstoppableURL,
		SNSProxyURL:    DefaultSNSProxyURL,
		HTTPTimeout:    DefaultHTTPTimeout,
	}
	if v := os.Getenv("CHAINADDR_ETH_RPC"); v != "" {
		cfg.EthereumRPC = v
	}
	if v := os.Getenv("CHAINADDR_UD_URL"); v != "" {
		cfg.UnstoppableURL = v
	}
	if v := os.Getenv("CHAINADDR_SNS_URL"); v != "" {
		cfg.SNSProxyURL = v
	}
	return cfg
}

// Resolver is the domain-resolution surface. Callers that want caching,
// deduplication or retry policies wrap this interface; the engine itself
// issues exactly one attempt per call.
type Resolver interface {
	Resolve(ctx context.Context, name string, id chain.ID) validate.Result
}

// Service resolves domains against the configured upstreams. The zero
// Service is not usable; construct with New.
type Service struct {
	cfg  Config
	http *http.Client
	ens  *ens.Client
	log  zerolog.Logger
}

var _ Resolver = (*Service)(nil)

// New builds a Service. The logger may be zerolog.Nop().
func New(cfg Config, log zerolog.Logger) *Service {
	if cfg.EthereumRPC == "" {
		cfg.EthereumRPC = DefaultEthereumRPC
	}
	if cfg.UnstoppableURL == "" {
		cfg.UnstoppableURL = DefaultUnstoppableURL
	}
	if cfg.SNSProxyURL == "" {
		cfg.SNSProxyURL = DefaultSNSProxyURL
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	return &Service{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.HTTPTimeout},
		ens:  ens.NewClient(cfg.EthereumRPC),
		log:  log,
	}
}

// IsDomain reports whether the input names a domain in one of the supported
// namespaces rather than a literal address.
func IsDomain(input string) bool {
	name := strings.ToLower(strings.TrimSpace(input))
	if !strings.Contains(name, ".") || strings.HasPrefix(name, ".") {
		return false
	}
	if strings.HasSuffix(name, ".eth") || strings.HasSuffix(name, ".sol") {
		return true
	}
	for _, tld := range unstoppableTLDs {
		if strings.HasSuffix(name, tld) {
			return true
		}
	}
	return false
}

// Check is the combined entry point: domains are resolved and re-validated,
// anything else is validated directly (no network).
func (s *Service) Check(ctx context.Context, input string, id chain.ID) validate.Result {
	if IsDomain(input) {
		return s.Resolve(ctx, strings.TrimSpace(input), id)
	}
	return validate.Address(input, id)
}

// Resolve maps a domain name to a validated address for the given chain.
// One upstream request chain per call; failures come back as structured
// Invalid results, never as panics or raw errors.
func (s *Service) Resolve(ctx context.Context, name string, id chain.ID) validate.Result {
	name = strings.ToLower(strings.TrimSpace(name))
	s.log.Debug().Str("domain", name).Str("chain", string(id)).Msg("resolving domain")

	switch {
	case strings.HasSuffix(name, ".eth"):
		return s.resolveENS(ctx, name, id)
	case strings.HasSuffix(name, ".sol"):
		return s.resolveSNS(ctx, name, id)
	default:
		for _, tld := range unstoppableTLDs {
			if strings.HasSuffix(name, tld) {
				return s.resolveUnstoppable(ctx, name, id)
			}
		}
	}
	return invalid(id, validate.KindFormat, "not a supported domain name")
}

func invalid(id chain.ID, kind validate.ErrorKind, msg string) validate.Result {
	return validate.Result{Chain: id, Err: &validate.ValidationError{Kind: kind, Message: msg}}
}
