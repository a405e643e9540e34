// Package cli wires the validation engine and resolver into the chainaddr
// command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grendel/chainaddr/pkg/chain"
	"github.com/grendel/chainaddr/pkg/resolver"
	"github.com/grendel/chainaddr/pkg/ui"
)

var (
	flagChain   string
	flagRPC     string
	flagUDURL   string
	flagSNSURL  string
	flagTimeout time.Duration
	flagVerbose bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chainaddr",
		Short: "Validate cryptocurrency addresses and resolve blockchain domain names",
		Long: `chainaddr validates addresses for Bitcoin, Litecoin, Ethereum, Solana and
XRP (plus testnets) and resolves ENS, Unstoppable Domains and Solana Name
Service names into validated addresses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&flagChain, "chain", "c", string(chain.Ethereum),
		"chain to validate against: "+chainList())
	root.PersistentFlags().StringVar(&flagRPC, "rpc", "", "Ethereum JSON-RPC endpoint for ENS lookups")
	root.PersistentFlags().StringVar(&flagUDURL, "ud-url", "", "Unstoppable Domains resolution API base URL")
	root.PersistentFlags().StringVar(&flagSNSURL, "sns-url", "", "Solana Name Service proxy base URL")
	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 15*time.Second, "overall timeout for resolution")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newResolveCmd())
	root.AddCommand(newFormatCmd())
	root.AddCommand(newChecksumCmd())
	root.AddCommand(newNamehashCmd())
	root.AddCommand(newChainsCmd())
	return root
}

func chainList() string {
	s := ""
	for i, id := range chain.All {
		if i > 0 {
			s += ", "
		}
		s += string(id)
	}
	return s
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func newService() *resolver.Service {
	cfg := resolver.FromEnv()
	if flagRPC != "" {
		cfg.EthereumRPC = flagRPC
	}
	if flagUDURL != "" {
		cfg.UnstoppableURL = flagUDURL
	}
	if flagSNSURL != "" {
		cfg.SNSProxyURL = flagSNSURL
	}
	return resolver.New(cfg, newLogger())
}

func parseChainFlag() (chain.ID, error) {
	id, err := chain.Parse(flagChain)
	if err != nil {
		return "", fmt.Errorf("%w (supported: %s)", err, chainList())
	}
	return id, nil
}

func runContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), flagTimeout)
}

// Execute runs the command tree. Invalid addresses exit non-zero so the
// binary composes in scripts.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		cs := ui.DefaultColorScheme()
		cs.Error.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
