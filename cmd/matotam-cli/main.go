// matotam-cli is an offline preview and diagnostic tool for the message
// NFT pipeline: it renders sigils and bubbles, assembles mint documents,
// and encodes/decodes quick-burn ids without touching a wallet.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/matotam-io/matotam-core/config"
	"github.com/matotam-io/matotam-core/internal/bubble"
	"github.com/matotam-io/matotam-core/internal/inbox"
	"github.com/matotam-io/matotam-core/internal/indexer"
	"github.com/matotam-io/matotam-core/internal/log"
	"github.com/matotam-io/matotam-core/internal/metadata"
	"github.com/matotam-io/matotam-core/internal/msgcrypt"
	"github.com/matotam-io/matotam-core/internal/ornament"
	"github.com/matotam-io/matotam-core/internal/policy"
	"github.com/matotam-io/matotam-core/internal/sigil"
	"github.com/matotam-io/matotam-core/internal/wallet"
	"github.com/matotam-io/matotam-core/pkg/rarity"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	network := "mainnet"
	indexerURL := ""
	projectID := ""

	// Global flags before the subcommand.
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--network" && len(args) > 1:
			network = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--network="):
			network = args[0][len("--network="):]
			args = args[1:]
		case args[0] == "--indexer" && len(args) > 1:
			indexerURL = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--indexer="):
			indexerURL = args[0][len("--indexer="):]
			args = args[1:]
		case args[0] == "--project-id" && len(args) > 1:
			projectID = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--project-id="):
			projectID = args[0][len("--project-id="):]
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	cfg := config.Default(config.Network(network))
	if indexerURL != "" {
		cfg.IndexerEndpoint = indexerURL
	}
	if projectID != "" {
		cfg.IndexerProjectID = projectID
	}
	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration: %v", err)
	}
	if err := log.Init("warn", false, ""); err != nil {
		fatal("init logging: %v", err)
	}

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "sigil":
		cmdSigil(args)
	case "bubble":
		cmdBubble(args)
	case "mint-preview":
		cmdMintPreview(cfg, args)
	case "quickburn":
		cmdQuickBurn(args)
	case "inbox":
		cmdInbox(cfg, args)
	case "wallet":
		cmdWallet(cfg, args)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: matotam-cli [global flags] <command> [flags]

Global flags:
  --network <net>       mainnet (default), preprod, or preview
  --indexer <url>       Indexer endpoint (default per network)
  --project-id <id>     Indexer project id

Commands:
  sigil --address <addr> [--size <px>]
                                  Render an address's sigil SVG to stdout
  bubble --sender <addr> --recipient <addr> --message <text>
                                  Render the full bubble SVG to stdout
  mint-preview --sender <addr> --recipient <addr> --message <text> --policy <hex>
               [--encrypt] [--offline]
                                  Assemble and print the mint document
  quickburn encode <unit-hex>     Encode a unit as a quick-burn id
  quickburn decode <id>           Decode a quick-burn id back to unit hex
  quickburn parse <input>         Classify pasted input (URL/fingerprint/hex)
  inbox --address <addr> [--stake <stake>]
                                  List messages held by a wallet
  wallet create                   Generate a mnemonic and derived addresses
  wallet address --mnemonic "..." Show addresses for an existing mnemonic
`)
}

func cmdSigil(args []string) {
	fs := flag.NewFlagSet("sigil", flag.ExitOnError)
	address := fs.String("address", "", "wallet address")
	size := fs.Float64("size", 240, "output size in pixels")
	fs.Parse(args)
	if *address == "" {
		fatal("--address is required")
	}

	params := sigil.ParamsFor(*address)
	fmt.Fprintf(os.Stderr, "color=%s interior=%s frame=%s\n",
		params.Color.ID, params.Interior.ID, params.Frame.ID)
	fmt.Println(sigil.SVGFor(*address, *size))
}

func cmdBubble(args []string) {
	fs := flag.NewFlagSet("bubble", flag.ExitOnError)
	sender := fs.String("sender", "", "sender address")
	recipient := fs.String("recipient", "", "recipient address")
	message := fs.String("message", "", "message text")
	fs.Parse(args)
	if *sender == "" || *recipient == "" {
		fatal("--sender and --recipient are required")
	}

	info := rarity.FromTimestamp(time.Now(), config.ProjectEpoch)
	params := ornament.ParamsFor(*sender, *recipient, info.ProjectYear, info.DayInYear)
	lines := bubble.Wrap(metadata.SafeText(*message, metadata.SafeTextMaxLength),
		bubble.MaxLineLength, bubble.MaxLines)
	frag := sigil.Fragment(sigil.ParamsFor(*sender), 64)
	fmt.Println(bubble.BuildSVG(lines, info.Code, params, frag))
}

func cmdMintPreview(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("mint-preview", flag.ExitOnError)
	sender := fs.String("sender", "", "sender address")
	recipient := fs.String("recipient", "", "recipient address")
	message := fs.String("message", "", "message text")
	policyID := fs.String("policy", "", "policy id (empty derives one)")
	encrypt := fs.Bool("encrypt", false, "encrypt the message with a passphrase")
	offline := fs.Bool("offline", false, "skip the indexer sequence query")
	fs.Parse(args)
	if *sender == "" || *recipient == "" {
		fatal("--sender and --recipient are required")
	}

	if *policyID == "" {
		p, err := policy.Build(*sender, *recipient, cfg.ServiceAddress)
		if err != nil {
			fatal("derive policy: %v", err)
		}
		*policyID = p.ID
		fmt.Fprintf(os.Stderr, "derived policy id: %s\n", p.ID)
	}

	params := metadata.BuildParams{
		SenderAddr:    *sender,
		RecipientAddr: *recipient,
		Message:       *message,
		PolicyID:      *policyID,
		MaxImageBytes: cfg.MaxImageBytes,
	}

	if *encrypt {
		passphrase, err := readPassword("Passphrase: ")
		if err != nil {
			fatal("read passphrase: %v", err)
		}
		payload, err := msgcrypt.Encrypt(*message, string(passphrase))
		if err != nil {
			fatal("encrypt message: %v", err)
		}
		params.Encrypted = payload
	}

	var seq metadata.SequenceSource
	if !*offline {
		seq = indexer.NewWithTimeout(cfg.IndexerEndpoint, cfg.IndexerProjectID, cfg.IndexerTimeout)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	data, err := metadata.BuildMintData(ctx, seq, params)
	if err != nil {
		fatal("build mint data: %v", err)
	}

	fmt.Fprintf(os.Stderr, "unit:          %s\n", data.Unit)
	fmt.Fprintf(os.Stderr, "asset name:    %s\n", data.AssetNameBase)
	fmt.Fprintf(os.Stderr, "quick-burn id: %s\n", data.QuickBurnID)

	encoded, err := json.MarshalIndent(data.Metadata, "", "  ")
	if err != nil {
		fatal("encode metadata: %v", err)
	}
	fmt.Println(string(encoded))
}

func cmdQuickBurn(args []string) {
	if len(args) < 2 {
		fatal("usage: quickburn <encode|decode|parse> <value>")
	}
	switch args[0] {
	case "encode":
		id, err := metadata.EncodeQuickBurnID(args[1])
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(id)
	case "decode":
		unit := metadata.DecodeQuickBurnID(args[1])
		if unit == "" {
			fatal("malformed quick-burn id")
		}
		fmt.Println(unit)
	case "parse":
		parsed := metadata.ParseQuickBurnInput(args[1])
		switch {
		case parsed.Unit != "":
			fmt.Printf("unit: %s\n", parsed.Unit)
		case parsed.FingerprintLike:
			fmt.Println("fingerprint: needs an indexer lookup to resolve")
		default:
			fatal("unrecognized input")
		}
	default:
		fatal("unknown quickburn subcommand: %s", args[0])
	}
}

func cmdInbox(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("inbox", flag.ExitOnError)
	address := fs.String("address", "", "payment address")
	stake := fs.String("stake", "", "stake address")
	fs.Parse(args)
	if *address == "" && *stake == "" {
		fatal("--address or --stake is required")
	}

	client := indexer.NewWithTimeout(cfg.IndexerEndpoint, cfg.IndexerProjectID, cfg.IndexerTimeout)
	loader := inbox.NewLoader(client, inbox.NewMemoryCache())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	messages, err := loader.Fetch(ctx, *address, *stake)
	if err != nil {
		fatal("fetch inbox: %v", err)
	}

	if len(messages) == 0 {
		fmt.Println("no messages")
		return
	}
	for _, msg := range messages {
		fmt.Printf("%s  [%s]  %s\n", msg.CreatedAt, msg.RarityCode, msg.TextPreview)
		fmt.Printf("  from: %s\n  unit: %s\n", msg.FromAddress, msg.Unit)
	}
}

func cmdWallet(cfg config.Config, args []string) {
	if len(args) < 1 {
		fatal("usage: wallet <create|address>")
	}
	switch args[0] {
	case "create":
		mnemonic, err := wallet.GenerateMnemonic()
		if err != nil {
			fatal("generate mnemonic: %v", err)
		}
		fmt.Fprintln(os.Stderr, "Write these 24 words down; they are the only backup:")
		fmt.Println(mnemonic)
		printAddresses(cfg, mnemonic)
	case "address":
		fs := flag.NewFlagSet("wallet address", flag.ExitOnError)
		mnemonic := fs.String("mnemonic", "", "24-word mnemonic")
		fs.Parse(args[1:])
		if *mnemonic == "" {
			fatal("--mnemonic is required")
		}
		printAddresses(cfg, *mnemonic)
	default:
		fatal("unknown wallet subcommand: %s", args[0])
	}
}

func printAddresses(cfg config.Config, mnemonic string) {
	seed, err := wallet.SeedFromMnemonic(mnemonic, "")
	if err != nil {
		fatal("derive seed: %v", err)
	}
	acct, err := wallet.NewAccount(seed, cfg.Network)
	if err != nil {
		fatal("derive account: %v", err)
	}
	fmt.Printf("address: %s\n", acct.Address())
	fmt.Printf("stake:   %s\n", acct.StakeAddress())
}

// ── Password helper ─────────────────────────────────────────────────────

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
