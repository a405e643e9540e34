package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/grendel/chainaddr/pkg/chain"
	"github.com/grendel/chainaddr/pkg/validate"
)

// resolveUnstoppable looks up a domain in the Unstoppable Domains
// resolution API and extracts the crypto.<TICKER>.address record for the
// requested chain. The record value is re-validated as a literal address:
// a record pointing at another domain name fails validation instead of
// being resolved again.
func (s *Service) resolveUnstoppable(ctx context.Context, name string, id chain.ID) validate.Result {
	ticker, ok := chain.Ticker[id]
	if !ok {
		return invalid(id, validate.KindUnsupportedChain, fmt.Sprintf("no resolution records for chain %s", id))
	}

	url := fmt.Sprintf("%s/domains/%s", s.cfg.UnstoppableURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return invalid(id, validate.KindNetwork, err.Error())
	}

	resp, err := s.http.Do(req)
	if err != nil {
		s.log.Warn().Err(err).Str("domain", name).Msg("unstoppable request failed")
		return invalid(id, validate.KindNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return invalid(id, validate.KindNotFound, "domain not registered")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return invalid(id, validate.KindNetwork, fmt.Sprintf("unstoppable API returned status %d", resp.StatusCode))
	}

	var body struct {
		Records map[string]string `json:"records"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return invalid(id, validate.KindNetwork, "malformed unstoppable response: "+err.Error())
	}

	record := body.Records["crypto."+ticker+".address"]
	if record == "" {
		return invalid(id, validate.KindNotFound, "no "+ticker+" address set for domain")
	}

	res := validate.Address(record, id)
	if res.Valid {
		res.DisplayName = name
	}
	return res
}
