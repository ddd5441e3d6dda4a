// internal/engine/cachekey.go
package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"layout-engine/internal/models"
)

// cacheKey builds the canonical hash for one request: sha256 over the
// normalized prompt, user id, and the JSON encodings of context and options.
// Two requests differing only in prompt whitespace or casing share a key.
func cacheKey(req *models.RecommendRequest, opts models.RequestOptions) string {
	contextJSON := "{}"
	if req.Context != nil {
		if b, err := json.Marshal(req.Context); err == nil {
			contextJSON = string(b)
		}
	}
	optionsJSON := "{}"
	if b, err := json.Marshal(opts); err == nil {
		optionsJSON = string(b)
	}

	payload := strings.Join([]string{
		normalizePrompt(req.Prompt),
		req.UserID,
		contextJSON,
		optionsJSON,
	}, "|")

	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func normalizePrompt(prompt string) string {
	return strings.Join(strings.Fields(strings.ToLower(prompt)), " ")
}
