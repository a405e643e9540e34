package resolver

import (
	"context"
	"errors"

	"github.com/grendel/chainaddr/pkg/chain"
	"github.com/grendel/chainaddr/pkg/ens"
	"github.com/grendel/chainaddr/pkg/validate"
)

// resolveENS handles .eth names. ENS addr records are Ethereum addresses,
// so only Ethereum-family chains are eligible. The resolved address is not
// trusted: it goes through the normal Ethereum validator.
func (s *Service) resolveENS(ctx context.Context, name string, id chain.ID) validate.Result {
	if !id.IsEVM() {
		return invalid(id, validate.KindUnsupportedChain, "ENS names resolve to Ethereum addresses only")
	}

	addr, err := s.ens.ResolveName(ctx, name)
	if err != nil {
		if errors.Is(err, ens.ErrNoResolver) || errors.Is(err, ens.ErrNoAddress) {
			return invalid(id, validate.KindNotFound, err.Error())
		}
		s.log.Warn().Err(err).Str("domain", name).Msg("ens resolution failed")
		return invalid(id, validate.KindNetwork, err.Error())
	}

	res := validate.Address(addr.Hex(), id)
	if res.Valid {
		res.DisplayName = name
	}
	return res
}
