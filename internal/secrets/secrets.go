// Package secrets fills unset secret keys in the deployment env file
// with freshly generated values before the stack first starts.
package secrets

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"

	"github.com/placeos/deployctl/internal/envfile"
)

// DefaultKeys are the env file entries that must hold secret values
// before the stack starts. Keys already set to a non-empty value are
// never regenerated.
var DefaultKeys = []string{
	"PLACE_SERVER_SECRET",
	"POSTGRES_PASSWORD",
	"JWT_SECRET",
	"SECRET_KEY_BASE",
}

// secretBytes of CSPRNG output per generated value; 32 bytes encodes
// to a 52-character base32 string.
const secretBytes = 32

// Generate returns a new random secret value.
func Generate() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating secret: %w", err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf), nil
}

// Ensure fills every listed key that is missing or empty in the env
// file and returns the keys that were generated. The caller is
// responsible for writing the file back.
func Ensure(env *envfile.File, keys []string) ([]string, error) {
	var generated []string
	for _, key := range keys {
		if value, ok := env.Get(key); ok && value != "" {
			continue
		}
		secret, err := Generate()
		if err != nil {
			return nil, err
		}
		env.Set(key, secret)
		generated = append(generated, key)
	}
	return generated, nil
}
