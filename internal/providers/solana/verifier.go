package solana

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/logger"
	"github.com/solforge/fairmint/internal/store/schema"
)

// BurnClaim is what a caller asserts about a burn transaction
type BurnClaim struct {
	Signature   string
	Wallet      string
	Mint        string
	TokenAmount decimal.Decimal
}

// ChainVerifier corroborates burns against the chain and resolves mint decimals
//
//go:generate mockgen -source=verifier.go -destination=../../mocks/chain_verifier.go -package=mocks -mock_names=ChainVerifier=MockChainVerifier
type ChainVerifier interface {
	// VerifyBurn checks that the transaction succeeded and burned at least the claimed amount of the mint from the wallet
	VerifyBurn(ctx context.Context, claim BurnClaim) (*schema.BurnEvidence, error)
	// MintDecimals returns the decimals of a mint
	MintDecimals(ctx context.Context, mint string) (uint8, error)
}

type verifier struct {
	rpc        adapter.SolanaRPC
	commitment rpc.CommitmentType
	decimals   sync.Map // mint -> uint8
}

// NewChainVerifier creates a verifier over the given RPC client
func NewChainVerifier(client adapter.SolanaRPC, commitment string) ChainVerifier {
	c := rpc.CommitmentType(commitment)
	if c == "" {
		c = rpc.CommitmentConfirmed
	}
	return &verifier{rpc: client, commitment: c}
}

func (v *verifier) MintDecimals(ctx context.Context, mint string) (uint8, error) {
	if d, ok := v.decimals.Load(mint); ok {
		return d.(uint8), nil
	}

	pk, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid mint %q", domain.ErrInvalidRequest, mint)
	}

	supply, err := v.rpc.GetTokenSupply(ctx, pk, v.commitment)
	if err != nil {
		return 0, fmt.Errorf("failed to get token supply: %w", err)
	}
	if supply == nil || supply.Value == nil {
		return 0, fmt.Errorf("empty token supply for mint %s", mint)
	}

	v.decimals.Store(mint, supply.Value.Decimals)
	return supply.Value.Decimals, nil
}

func (v *verifier) VerifyBurn(ctx context.Context, claim BurnClaim) (*schema.BurnEvidence, error) {
	sig, err := solana.SignatureFromBase58(claim.Signature)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid transaction signature", domain.ErrInvalidRequest)
	}
	wallet, err := solana.PublicKeyFromBase58(claim.Wallet)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid wallet", domain.ErrInvalidRequest)
	}
	mint, err := solana.PublicKeyFromBase58(claim.Mint)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid mint", domain.ErrInvalidRequest)
	}

	maxVersion := uint64(0)
	result, err := v.rpc.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Encoding:                       solana.EncodingBase64,
		Commitment:                     v.commitment,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, fmt.Errorf("%w: transaction not found", domain.ErrBurnNotVerified)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if result == nil || result.Meta == nil {
		return nil, fmt.Errorf("%w: transaction has no metadata", domain.ErrBurnNotVerified)
	}
	if result.Meta.Err != nil {
		return nil, fmt.Errorf("%w: transaction failed on-chain", domain.ErrBurnNotVerified)
	}

	var (
		decimals              uint8
		walletPre, walletPost uint64
		mintPre, mintPost     uint64
		sawMint               bool
	)
	sum := func(balances []rpc.TokenBalance, walletTotal, mintTotal *uint64) error {
		for _, b := range balances {
			if !b.Mint.Equals(mint) || b.UiTokenAmount == nil {
				continue
			}
			amount, err := strconv.ParseUint(b.UiTokenAmount.Amount, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid token amount %q: %w", b.UiTokenAmount.Amount, err)
			}
			sawMint = true
			decimals = b.UiTokenAmount.Decimals
			*mintTotal += amount
			if b.Owner != nil && b.Owner.Equals(wallet) {
				*walletTotal += amount
			}
		}
		return nil
	}
	if err := sum(result.Meta.PreTokenBalances, &walletPre, &mintPre); err != nil {
		return nil, err
	}
	if err := sum(result.Meta.PostTokenBalances, &walletPost, &mintPost); err != nil {
		return nil, err
	}
	if !sawMint {
		return nil, fmt.Errorf("%w: mint not touched by transaction", domain.ErrBurnNotVerified)
	}

	expected := claim.TokenAmount.Shift(int32(decimals)).Truncate(0)
	if !expected.IsPositive() {
		return nil, fmt.Errorf("%w: invalid token amount", domain.ErrInvalidRequest)
	}
	if expected.GreaterThan(domain.MaxRawAmount) {
		return nil, fmt.Errorf("%w: claimed amount exceeds the token amount range", domain.ErrBurnNotVerified)
	}
	raw := expected.BigInt().Uint64()

	// supply leaving every account of the mint is burned, transfers net out
	var burned uint64
	if mintPre > mintPost {
		burned = mintPre - mintPost
	}
	if walletPre < walletPost || walletPre-walletPost < raw || burned < raw {
		logger.WarnCtx(ctx, "burn amount not corroborated",
			zap.String("signature", claim.Signature),
			zap.Uint64("expected", raw),
			zap.Uint64("burned", burned))
		return nil, fmt.Errorf("%w: burned amount lower than claimed", domain.ErrBurnNotVerified)
	}

	evidence := &schema.BurnEvidence{
		Signature:   claim.Signature,
		Slot:        result.Slot,
		Wallet:      claim.Wallet,
		Mint:        claim.Mint,
		RawAmount:   raw,
		BurnedDelta: burned,
	}
	if result.BlockTime != nil {
		evidence.BlockTime = result.BlockTime.Time().UTC()
	}

	return evidence, nil
}
