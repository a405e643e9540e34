package cli

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grendel/chainaddr/pkg/ens"
	"github.com/grendel/chainaddr/pkg/resolver"
	"github.com/grendel/chainaddr/pkg/ui"
	"github.com/grendel/chainaddr/pkg/validate"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <address-or-domain>",
		Short: "Validate an address, resolving it first if it is a domain name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseChainFlag()
			if err != nil {
				return err
			}
			ctx, cancel := runContext()
			defer cancel()

			res := newService().Check(ctx, args[0], id)
			cs := ui.DefaultColorScheme()
			ui.PrintResult(cs, res)
			if !res.Valid {
				os.Exit(1)
			}
			return nil
		},
	}
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <domain>",
		Short: "Resolve a blockchain domain name to a validated address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !resolver.IsDomain(args[0]) {
				return fmt.Errorf("%q is not a supported domain name", args[0])
			}
			id, err := parseChainFlag()
			if err != nil {
				return err
			}
			ctx, cancel := runContext()
			defer cancel()

			res := newService().Resolve(ctx, args[0], id)
			ui.PrintResult(ui.DefaultColorScheme(), res)
			if !res.Valid {
				os.Exit(1)
			}
			return nil
		},
	}
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <address>",
		Short: "Check address format only, without any network access",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseChainFlag()
			if err != nil {
				return err
			}
			res := validate.Address(args[0], id)
			ui.PrintResult(ui.DefaultColorScheme(), res)
			if !res.Valid {
				os.Exit(1)
			}
			return nil
		},
	}
}

func newChecksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum <address>",
		Short: "Print the EIP-55 mixed-case form of an Ethereum address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := strings.TrimSpace(args[0])
			if len(addr) != 42 || !strings.HasPrefix(strings.ToLower(addr), "0x") {
				return fmt.Errorf("expected 0x plus 40 hex characters, got %q", args[0])
			}
			if _, err := hex.DecodeString(strings.ToLower(addr[2:])); err != nil {
				return fmt.Errorf("address body is not hexadecimal: %q", args[0])
			}
			fmt.Println(validate.ToChecksumAddress(addr))
			return nil
		},
	}
}

func newChainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List supported chains and their address formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs := ui.DefaultColorScheme()
			ui.PrintHeader(cs, "Supported Chains")

			ui.PrintSectionHeader(cs, "Chains:")
			ui.PrintOption(cs, "bitcoin           ", "Base58Check (1.., 3..) and bech32 (bc1..)")
			ui.PrintOption(cs, "bitcoin-testnet   ", "Base58Check (m.., n.., 2..) and bech32 (tb1..)")
			ui.PrintOption(cs, "litecoin          ", "Base58Check (L.., M.., 3..) and bech32 (ltc1..)")
			ui.PrintOption(cs, "ethereum          ", "0x plus 40 hex characters, EIP-55 checksum")
			ui.PrintOption(cs, "ethereum-sepolia  ", "same format as ethereum mainnet")
			ui.PrintOption(cs, "solana            ", "base58-encoded 32-byte ed25519 public key")
			ui.PrintOption(cs, "xrp               ", "Base58Check in the Ripple alphabet (r..)")

			fmt.Println()
			ui.PrintSectionHeader(cs, "Examples:")
			ui.PrintExample(cs, "chainaddr validate -c bitcoin 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", "")
			ui.PrintExample(cs, "chainaddr validate -c ethereum vitalik.eth", "resolves via ENS")
			ui.PrintExample(cs, "chainaddr checksum 0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359", "")

			ui.PrintFooter(cs, "Domains: .eth (ENS), .sol (SNS), .crypto/.nft/.x/... (Unstoppable)")
			return nil
		},
	}
}

func newNamehashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "namehash <name>",
		Short: "Print the ENS namehash node for a domain name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node := ens.Namehash(strings.ToLower(strings.TrimSpace(args[0])))
			fmt.Println("0x" + hex.EncodeToString(node[:]))
			return nil
		},
	}
}
