package solana

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/solforge/fairmint/internal/domain"
)

// ValidateAddress checks that s is a base58 encoded 32 byte public key
func ValidateAddress(s string) error {
	if _, err := solana.PublicKeyFromBase58(s); err != nil {
		return fmt.Errorf("%w: invalid address %q", domain.ErrInvalidRequest, s)
	}
	return nil
}

// ValidateSignature checks that s is a base58 encoded 64 byte transaction signature
func ValidateSignature(s string) error {
	if _, err := solana.SignatureFromBase58(s); err != nil {
		return fmt.Errorf("%w: invalid transaction signature", domain.ErrInvalidRequest)
	}
	return nil
}
