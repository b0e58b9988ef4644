package record

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/heartmarshall/records-api/internal/domain"
)

const fingerprintPrefix = "blake2b:"

// Fingerprint returns a short, stable digest of a secret value.
func Fingerprint(secret string) string {
	sum := blake2b.Sum256([]byte(secret))
	return fingerprintPrefix + hex.EncodeToString(sum[:8])
}

// Redact returns a copy of rec with every Secret field replaced by its fingerprint.
func Redact(schema domain.Schema, rec domain.Record) domain.Record {
	if rec == nil {
		return nil
	}
	out := rec.Clone()
	for _, f := range schema.Fields {
		if !f.Secret {
			continue
		}
		if s := out.String(f.Name); s != "" {
			out[f.Name] = Fingerprint(s)
		}
	}
	return out
}
