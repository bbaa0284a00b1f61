package msgcrypt

import (
	"errors"
	"strings"
	"testing"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	tests := []string{
		"hello",
		"",
		"multi\nline message with émoji 😀 and spaces",
		strings.Repeat("long ", 100),
	}
	for _, plaintext := range tests {
		payload, err := Encrypt(plaintext, "correct horse battery staple")
		if err != nil {
			t.Fatalf("Encrypt(%q): %v", plaintext, err)
		}
		got, err := Decrypt(payload, "correct horse battery staple")
		if err != nil {
			t.Fatalf("Decrypt(%q): %v", plaintext, err)
		}
		if got != plaintext {
			t.Errorf("round trip got %q, want %q", got, plaintext)
		}
	}
}

func TestDecrypt_WrongPassphrase(t *testing.T) {
	payload, err := Encrypt("secret", "right")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decrypt(payload, "wrong"); err == nil {
		t.Error("wrong passphrase must fail authentication")
	}
}

func TestDecrypt_ChunkedCipherText(t *testing.T) {
	payload, err := Encrypt("a message long enough to produce multi-chunk ciphertext when segmented at 64", "pw")
	if err != nil {
		t.Fatal(err)
	}

	// Readers join cipherText segments before decoding; simulate the
	// metadata layer having re-chunked it.
	joined := strings.Join(payload.CipherText, "")
	var chunks []string
	for i := 0; i < len(joined); i += 64 {
		end := i + 64
		if end > len(joined) {
			end = len(joined)
		}
		chunks = append(chunks, joined[i:end])
	}
	if len(chunks) < 2 {
		t.Fatalf("test needs multi-chunk ciphertext, got %d chunk(s)", len(chunks))
	}
	payload.CipherText = chunks

	got, err := Decrypt(payload, "pw")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "a message long enough") {
		t.Errorf("decrypted %q", got)
	}
}

func TestDecrypt_UnsupportedVersion(t *testing.T) {
	payload, err := Encrypt("x", "pw")
	if err != nil {
		t.Fatal(err)
	}
	payload.Version = "v9"
	_, err = Decrypt(payload, "pw")
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestEncrypt_FreshSaltAndNonce(t *testing.T) {
	a, err := Encrypt("same", "pw")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encrypt("same", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if a.Salt == b.Salt || a.Nonce == b.Nonce {
		t.Error("salt and nonce must be fresh per encryption")
	}
}

func TestPayloadDefaults(t *testing.T) {
	payload, err := Encrypt("x", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if payload.Version != "v1" {
		t.Errorf("version = %q", payload.Version)
	}
	if payload.Iterations != 210_000 {
		t.Errorf("iterations = %d", payload.Iterations)
	}
}
