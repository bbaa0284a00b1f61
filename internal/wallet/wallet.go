// Package wallet derives the keys and addresses a message wallet needs:
// BIP-39 mnemonic handling, Ed25519 payment and stake keys from the seed,
// and the credential hashes the minting policy checks against.
package wallet

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/tyler-smith/go-bip39"
	"github.com/zeebo/blake3"

	"github.com/matotam-io/matotam-core/config"
)

// MnemonicEntropyBits is the entropy size for 24-word mnemonics.
const MnemonicEntropyBits = 256

// credentialSize is the byte length of a credential hash.
const credentialSize = 28

// GenerateMnemonic creates a new 24-word BIP-39 mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks word count, word list membership, and checksum.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// SeedFromMnemonic derives the BIP-39 512-bit seed.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	if !ValidateMnemonic(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("derive seed: %w", err)
	}
	return seed, nil
}

// Account holds one wallet's payment and stake key pairs. The payment key
// signs mint and burn transactions; the stake key only anchors the account
// view used by the inbox.
type Account struct {
	network config.Network

	paymentKey ed25519.PrivateKey
	stakeKey   ed25519.PrivateKey
}

// NewAccount derives an account from a seed. Each role key comes from a
// domain-separated hash of the seed, so the two keys are independent.
func NewAccount(seed []byte, network config.Network) (*Account, error) {
	if len(seed) != 64 {
		return nil, fmt.Errorf("seed must be 64 bytes, got %d", len(seed))
	}
	return &Account{
		network:    network,
		paymentKey: roleKey(seed, "payment"),
		stakeKey:   roleKey(seed, "stake"),
	}, nil
}

func roleKey(seed []byte, role string) ed25519.PrivateKey {
	h := blake3.New()
	h.Write([]byte("matotam/" + role + "/"))
	h.Write(seed)
	sum := h.Sum(nil)
	return ed25519.NewKeyFromSeed(sum[:ed25519.SeedSize])
}

// PaymentCredential is the hash the minting policy lists for this wallet.
func (a *Account) PaymentCredential() string {
	return credential(a.paymentKey.Public().(ed25519.PublicKey))
}

// StakeCredential identifies the account across all of its addresses.
func (a *Account) StakeCredential() string {
	return credential(a.stakeKey.Public().(ed25519.PublicKey))
}

func credential(pub ed25519.PublicKey) string {
	sum := blake3.Sum256(pub)
	return hex.EncodeToString(sum[:credentialSize])
}

// Address is the wallet's textual payment address: a network prefix over
// the payment and stake credentials.
func (a *Account) Address() string {
	return addrPrefix(a.network) + a.PaymentCredential() + a.StakeCredential()
}

// StakeAddress is the account-level address the inbox queries by.
func (a *Account) StakeAddress() string {
	return stakePrefix(a.network) + a.StakeCredential()
}

func addrPrefix(n config.Network) string {
	if n == config.Mainnet {
		return "addr1"
	}
	return "addr_test1"
}

func stakePrefix(n config.Network) string {
	if n == config.Mainnet {
		return "stake1"
	}
	return "stake_test1"
}

// Sign signs a message with the payment key.
func (a *Account) Sign(message []byte) []byte {
	return ed25519.Sign(a.paymentKey, message)
}

// Verify checks a payment-key signature.
func (a *Account) Verify(message, sig []byte) bool {
	return ed25519.Verify(a.paymentKey.Public().(ed25519.PublicKey), message, sig)
}
