package security

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
)

func TestSignAndVerify(t *testing.T) {
	pub, priv, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	sig := SignData(priv, []byte("record-hash"))
	ok, err := VerifySignature(pub, []byte("record-hash"), sig)
	if err != nil || !ok {
		t.Fatalf("signature did not verify: ok=%v err=%v", ok, err)
	}

	ok, err = VerifySignature(pub, []byte("different-data"), sig)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("signature verified against wrong data")
	}

	ok, err = VerifySignatureFromHex(hex.EncodeToString(pub), []byte("record-hash"), sig)
	if err != nil || !ok {
		t.Fatalf("hex-key verification failed: ok=%v err=%v", ok, err)
	}
}

func TestEnsureKeyPairPersists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keys")

	pub1, _, err := EnsureKeyPair(dir)
	if err != nil {
		t.Fatalf("first EnsureKeyPair failed: %v", err)
	}

	// Second call must load the same identity, not generate a new one.
	pub2, _, err := EnsureKeyPair(dir)
	if err != nil {
		t.Fatalf("second EnsureKeyPair failed: %v", err)
	}
	if !pub1.Equal(pub2) {
		t.Error("EnsureKeyPair generated a new key instead of loading")
	}
}

func TestLoadRejectsBadKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.priv")
	if err := writeHex(path, []byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPrivateKey(path); err == nil {
		t.Error("expected error for truncated private key")
	}
	if _, err := LoadPublicKey(path); err == nil {
		t.Error("expected error for truncated public key")
	}
}

func writeHex(path string, data []byte) error {
	return os.WriteFile(path, []byte(hex.EncodeToString(data)), 0600)
}
