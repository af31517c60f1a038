package history

import (
	"fmt"

	"wasmci/internal/security"
)

// Verify re-computes every record hash, chain link and signature to
// detect tampering anywhere in the history file.
func (l *Ledger) Verify() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.records {
		r := l.records[i]

		h, err := r.ComputeHash()
		if err != nil {
			return fmt.Errorf("compute hash for index %d: %w", r.Index, err)
		}
		if h != r.Hash {
			return fmt.Errorf("hash mismatch at index %d", r.Index)
		}

		if i > 0 && r.PrevHash != l.records[i-1].Hash {
			return fmt.Errorf("prev hash mismatch at index %d", r.Index)
		}

		if r.Index != i {
			return fmt.Errorf("index mismatch: expected %d got %d", i, r.Index)
		}

		ok, err := security.VerifySignatureFromHex(r.PubKey, []byte(r.Hash), r.Signature)
		if err != nil {
			return fmt.Errorf("check signature at index %d: %w", r.Index, err)
		}
		if !ok {
			return fmt.Errorf("bad signature at index %d", r.Index)
		}
	}
	return nil
}
