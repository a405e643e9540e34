package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/grendel/chainaddr/pkg/chain"
	"github.com/grendel/chainaddr/pkg/validate"
)

// resolveSNS handles .sol names through the Solana Name Service proxy.
// Solana addresses carry no checksum, so a non-empty result is returned as
// valid without further encoding checks.
func (s *Service) resolveSNS(ctx context.Context, name string, id chain.ID) validate.Result {
	if id != chain.Solana {
		return invalid(id, validate.KindUnsupportedChain, ".sol names resolve to Solana addresses only")
	}

	url := fmt.Sprintf("%s/resolve/%s", s.cfg.SNSProxyURL, strings.TrimSuffix(name, ".sol"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return invalid(id, validate.KindNetwork, err.Error())
	}

	resp, err := s.http.Do(req)
	if err != nil {
		s.log.Warn().Err(err).Str("domain", name).Msg("sns request failed")
		return invalid(id, validate.KindNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return invalid(id, validate.KindNetwork, fmt.Sprintf("sns proxy returned status %d", resp.StatusCode))
	}

	var body struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return invalid(id, validate.KindNetwork, "malformed sns response: "+err.Error())
	}
	if body.Result == "" {
		return invalid(id, validate.KindNotFound, "name has no registered address")
	}

	return validate.Result{
		Valid:             true,
		Chain:             id,
		NormalizedAddress: body.Result,
		DisplayName:       name,
	}
}
