package vocab

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/gotiktoken/tiktoken/bpe"
)

// VerifyHash checks that data hashes to wantHex (a lowercase hex-encoded
// SHA-256 digest), the same pinned-hash check the reference loader
// performs before trusting a downloaded vocabulary file
// (original_source/src/vocab.rs's load_tiktoken_bpe). This package never
// performs the download itself — callers that fetch vocabulary data over
// the network are expected to verify it with this function before
// handing it to Parse.
func VerifyHash(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	got := hex.EncodeToString(sum[:])
	if got != wantHex {
		return bpe.NewDataError("verify_hash", fmt.Sprintf("hash mismatch: want %s, got %s", wantHex, got))
	}
	return nil
}
