// Package main provides the keypairs CLI for deriving XRP Ledger keys and addresses.
package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/crypto/ssh"
	"golang.org/x/term"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/complex-gh/keypairs"
)

const (
	maxWidth = 72
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	language       string
	algorithmName  string
	entropyHex     string
	mnemonicWords  string
	sshKeyPath     string
	seedPassphrase string
	validator      bool

	rootCmd = &cobra.Command{
		Use:   "keypairs",
		Short: "Derive XRP Ledger keypairs and addresses from seeds",
		Long: `Derive XRP Ledger keypairs and addresses from seeds.

Seeds carry 16 bytes of entropy and a signing algorithm, either
secp256k1 (the default) or ed25519. Keys are printed as hex; the
algorithm of a key is recognised from its shape, so sign and verify
take no algorithm flag.

SECURITY TIP: Add a space before the command to prevent it from being
saved in your shell history. For example:
    keypairs derive snoPBrXtMeMyMHUVTgbuqAfg1SUTb
    ^ (note the leading space)
Or leave the seed out and type it at the prompt.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Generate a new seed",
		Long: `Generate a new seed.

Without a source flag the entropy is read from the system's secure
random source. --entropy, --mnemonic and --ssh-key are mutually exclusive.`,
		Example: `  keypairs seed
  keypairs seed --algorithm ed25519
  keypairs seed --entropy 00000000000000000000000000000000
  keypairs seed --mnemonic "abandon abandon ... about"
  keypairs seed --ssh-key ~/.ssh/id_ed25519 --seed-passphrase "my-passphrase"`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			algorithm, err := keypairs.ParseAlgorithm(algorithmName)
			if err != nil {
				return err
			}
			seed, err := generateSeed(algorithm)
			if err != nil {
				return err
			}
			fmt.Println(seed)
			return nil
		},
	}

	deriveCmd = &cobra.Command{
		Use:   "derive [seed]",
		Short: "Derive the keypair and address of a seed",
		Example: `  keypairs derive snoPBrXtMeMyMHUVTgbuqAfg1SUTb
  keypairs derive --validator`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			seed, err := seedFromArgs(args)
			if err != nil {
				return err
			}
			var opts []keypairs.DeriveOption
			if validator {
				opts = append(opts, keypairs.WithValidator())
			}
			kp, err := keypairs.DeriveKeypair(seed, opts...)
			if err != nil {
				return fmt.Errorf("could not derive keypair: %w", err)
			}
			address, err := keypairs.DeriveAddress(kp.PublicKey)
			if err != nil {
				return fmt.Errorf("could not derive address: %w", err)
			}

			printSection("private key", kp.PrivateKey)
			printSection("public key", kp.PublicKey)
			if validator {
				node, err := keypairs.EncodeNodePublic(kp.PublicKey)
				if err != nil {
					return fmt.Errorf("could not encode node public key: %w", err)
				}
				printSection("node public key", node)
			}
			printSection("address", address)
			return nil
		},
	}

	mnemonicCmd = &cobra.Command{
		Use:   "mnemonic [seed]",
		Short: "Show the 12 word backup phrase of a seed",
		Long: `Show the 12 word BIP39 backup phrase of a seed.

The phrase holds the seed's entropy only. Restore it with
"keypairs seed --mnemonic" and the same --algorithm.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := setLanguage(language); err != nil {
				return err
			}
			seed, err := seedFromArgs(args)
			if err != nil {
				return err
			}
			words, err := keypairs.SeedToMnemonic(seed)
			if err != nil {
				return err
			}
			fmt.Println(words)
			return nil
		},
	}

	signCmd = &cobra.Command{
		Use:   "sign <message-hex> <private-key>",
		Short: "Sign a hex encoded message",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(_ *cobra.Command, args []string) error {
			sig, err := keypairs.Sign(args[0], args[1])
			if err != nil {
				return fmt.Errorf("could not sign: %w", err)
			}
			fmt.Println(sig)
			return nil
		},
	}

	verifyCmd = &cobra.Command{
		Use:   "verify <message-hex> <signature> <public-key>",
		Short: "Verify a signature; exits non-zero when it does not match",
		Args:  cobra.ExactArgs(3), //nolint:mnd
		RunE: func(_ *cobra.Command, args []string) error {
			ok, err := keypairs.Verify(args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("could not verify: %w", err)
			}
			if !ok {
				return errors.New("signature does not verify")
			}
			fmt.Println("valid")
			return nil
		},
	}

	addressCmd = &cobra.Command{
		Use:   "address <public-key>",
		Short: "Derive the address of a hex encoded public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			address, err := keypairs.DeriveAddress(args[0])
			if err != nil {
				return err
			}
			fmt.Println(address)
			return nil
		},
	}

	nodeAddressCmd = &cobra.Command{
		Use:   "node-address <node-public-key>",
		Short: "Derive the account address of a node public key (n...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			address, err := keypairs.DeriveNodeAddress(args[0])
			if err != nil {
				return err
			}
			fmt.Println(address)
			return nil
		},
	}

	manCmd = &cobra.Command{
		Use:    "man",
		Args:   cobra.NoArgs,
		Short:  "generate man pages",
		Hidden: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex.\n"+
				"Released under MIT license.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for keypairs.

To load completions:

Bash:
  $ source <(keypairs completion bash)

Zsh:
  $ keypairs completion zsh > "${fpath[1]}/_keypairs"

Fish:
  $ keypairs completion fish | source

PowerShell:
  PS> keypairs completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "en", "Language of BIP39 words")
	seedCmd.Flags().StringVarP(&algorithmName, "algorithm", "a", "secp256k1", "Signing algorithm (secp256k1 or ed25519)")
	seedCmd.Flags().StringVar(&entropyHex, "entropy", "", "Hex encoded entropy (at least 16 bytes, first 16 used)")
	seedCmd.Flags().StringVar(&mnemonicWords, "mnemonic", "", "12 word BIP39 phrase to restore entropy from")
	seedCmd.Flags().StringVar(&sshKeyPath, "ssh-key", "", "Derive entropy from an ed25519 SSH private key (- for stdin)")
	seedCmd.Flags().StringVar(&seedPassphrase, "seed-passphrase", "", "Passphrase to combine with the SSH key seed")
	seedCmd.MarkFlagsMutuallyExclusive("entropy", "mnemonic", "ssh-key")
	deriveCmd.Flags().BoolVar(&validator, "validator", false, "Derive the validator (node) keypair instead of the account keypair")

	rootCmd.AddCommand(seedCmd, deriveCmd, mnemonicCmd, signCmd, verifyCmd, addressCmd, nodeAddressCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		renderError(err)
		os.Exit(1)
	}
}

// generateSeed builds a seed from whichever entropy source flag was given.
func generateSeed(algorithm keypairs.Algorithm) (string, error) {
	switch {
	case entropyHex != "":
		entropy, err := hex.DecodeString(entropyHex)
		if err != nil {
			return "", fmt.Errorf("invalid entropy: %w", err)
		}
		return keypairs.GenerateSeed(keypairs.SeedOptions{Entropy: entropy, Algorithm: algorithm})
	case mnemonicWords != "":
		if err := setLanguage(language); err != nil {
			return "", err
		}
		return keypairs.SeedFromMnemonic(mnemonicWords, algorithm)
	case sshKeyPath != "":
		key, err := loadSSHKey(sshKeyPath)
		if err != nil {
			return "", err
		}
		entropy := keypairs.EntropyFromSSHKey(key, seedPassphrase)
		return keypairs.GenerateSeed(keypairs.SeedOptions{Entropy: entropy, Algorithm: algorithm})
	default:
		return keypairs.GenerateSeed(keypairs.SeedOptions{Algorithm: algorithm})
	}
}

// seedFromArgs returns the seed argument, or prompts for it on the tty so
// it stays out of shell history.
func seedFromArgs(args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}
	defer fmt.Fprintf(os.Stderr, "\n")
	seed, err := readPassword("Enter the seed: ")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(seed)), nil
}

func printSection(title, value string) {
	fmt.Printf("[%s]\n", title)
	fmt.Println()
	fmt.Println(value)
	fmt.Println()
}

// loadSSHKey reads an ed25519 SSH private key, asking for its passphrase
// when the key is encrypted.
func loadSSHKey(path string) (*ed25519.PrivateKey, error) {
	bts, err := readFileOrStdin(path)
	if err != nil {
		return nil, fmt.Errorf("could not read key: %w", err)
	}

	key, err := parsePrivateKey(bts, nil)
	if err != nil && isPasswordError(err) {
		pass, err := askKeyPassphrase(path)
		if err != nil {
			return nil, err
		}
		key, err = parsePrivateKey(bts, pass)
		if err != nil {
			return nil, fmt.Errorf("could not parse key with passphrase: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("could not parse key: %w", err)
	}

	ed25519Key, ok := key.(*ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("unknown key type: %T", key)
	}
	return ed25519Key, nil
}

func readFileOrStdin(path string) ([]byte, error) {
	if path == "-" {
		//nolint: wrapcheck
		return io.ReadAll(os.Stdin)
	}
	// G304: path is user-provided input, which is expected for a CLI tool
	//nolint: wrapcheck
	return os.ReadFile(path) //nolint:gosec
}

func parsePrivateKey(bts, pass []byte) (interface{}, error) {
	if len(pass) == 0 {
		//nolint: wrapcheck
		return ssh.ParseRawPrivateKey(bts)
	}
	//nolint: wrapcheck
	return ssh.ParseRawPrivateKeyWithPassphrase(bts, pass)
}

func isPasswordError(err error) bool {
	var kerr *ssh.PassphraseMissingError
	return errors.As(err, &kerr)
}

func askKeyPassphrase(path string) ([]byte, error) {
	defer fmt.Fprintf(os.Stderr, "\n")
	return readPassword(fmt.Sprintf("Enter the passphrase to unlock %q: ", path))
}

func readPassword(msg string) ([]byte, error) {
	_, _ = fmt.Fprint(os.Stderr, msg)
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                     //nolint: errcheck
	pass, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read passphrase: %w", err)
	}
	return pass, nil
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stderr.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// renderError prints err in the error style on a terminal and as a plain
// line otherwise.
func renderError(err error) {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	b := strings.Builder{}
	b.WriteRune('\n')
	renderBlock(&b, errorStyle, getWidth(maxWidth), err.Error())
	fmt.Fprint(os.Stderr, b.String())
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}

// setLanguage sets the language of the bip39 mnemonic words.
func setLanguage(language string) error {
	list := getWordlist(language)
	if list == nil {
		return fmt.Errorf("this language is not supported")
	}
	bip39.SetWordList(list)
	return nil
}

func sanitizeLang(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

var wordLists = map[lang.Tag][]string{
	lang.Chinese:              wordlists.ChineseSimplified,
	lang.SimplifiedChinese:    wordlists.ChineseSimplified,
	lang.TraditionalChinese:   wordlists.ChineseTraditional,
	lang.Czech:                wordlists.Czech,
	lang.AmericanEnglish:      wordlists.English,
	lang.BritishEnglish:       wordlists.English,
	lang.English:              wordlists.English,
	lang.French:               wordlists.French,
	lang.Italian:              wordlists.Italian,
	lang.Japanese:             wordlists.Japanese,
	lang.Korean:               wordlists.Korean,
	lang.Spanish:              wordlists.Spanish,
	lang.EuropeanSpanish:      wordlists.Spanish,
	lang.LatinAmericanSpanish: wordlists.Spanish,
}

func getWordlist(language string) []string {
	language = sanitizeLang(language)
	tag := lang.Make(language)
	en := display.English.Languages() // default language name matcher
	for t := range wordLists {
		if sanitizeLang(en.Name(t)) == language {
			tag = t
			break
		}
	}
	if tag == lang.Und { // Unknown language
		return nil
	}
	base, _ := tag.Base()
	btag := lang.MustParse(base.String())
	wl := wordLists[tag]
	if wl == nil {
		return wordLists[btag]
	}
	return wl
}
