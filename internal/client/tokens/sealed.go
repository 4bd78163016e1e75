package tokens

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/udharoguru/internal/cryptox"
)

// SaltKey holds the per-database salt used to derive the sealing key.
const SaltKey = "token_salt"

// SealedBackend encrypts every value before handing it to the wrapped
// Backend. The salt itself is stored in clear.
type SealedBackend struct {
	inner  Backend
	sealer *cryptox.Sealer
}

// NewSealedBackend loads the salt from inner, creating and storing one on
// first use, and derives the sealing key from passphrase.
func NewSealedBackend(ctx context.Context, inner Backend, passphrase []byte) (*SealedBackend, error) {
	salt, err := inner.Get(ctx, SaltKey)
	if err != nil {
		return nil, fmt.Errorf("load salt: %w", err)
	}
	if salt == nil {
		if salt, err = cryptox.NewSalt(); err != nil {
			return nil, fmt.Errorf("generate salt: %w", err)
		}
		if err := inner.SetMany(ctx, map[string][]byte{SaltKey: salt}); err != nil {
			return nil, fmt.Errorf("store salt: %w", err)
		}
	}

	sealer, err := cryptox.NewPassphraseSealer(passphrase, salt)
	if err != nil {
		return nil, err
	}
	return &SealedBackend{inner: inner, sealer: sealer}, nil
}

func (b *SealedBackend) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := b.inner.Get(ctx, key)
	if err != nil || sealed == nil {
		return nil, err
	}
	plain, err := b.sealer.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", key, err)
	}
	return plain, nil
}

func (b *SealedBackend) SetMany(ctx context.Context, values map[string][]byte) error {
	sealed := make(map[string][]byte, len(values))
	for k, v := range values {
		s, err := b.sealer.Seal(v)
		if err != nil {
			return fmt.Errorf("seal %s: %w", k, err)
		}
		sealed[k] = s
	}
	return b.inner.SetMany(ctx, sealed)
}

func (b *SealedBackend) Delete(ctx context.Context, keys ...string) error {
	return b.inner.Delete(ctx, keys...)
}
