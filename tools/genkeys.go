package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
)

// Prints a fresh build-signer keypair. Write the two values to
// keys/signer.pub and keys/signer.priv to pin the signing identity.
func main() {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keygen error: %v\n", err)
		os.Exit(2)
	}

	fmt.Println("# ======= Ed25519 build signer (hex) =======")
	fmt.Println()
	fmt.Println("SIGNER_PRIV_HEX:")
	fmt.Println(hex.EncodeToString(priv))
	fmt.Println()
	fmt.Println("SIGNER_PUB_HEX:")
	fmt.Println(hex.EncodeToString(pub))
	fmt.Println()
	fmt.Println("# ==========================================")
}
