package solana_test

import (
	"context"
	"errors"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/mocks"
	"github.com/solforge/fairmint/internal/providers/solana"
)

const (
	bonkMint = "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
	wallet   = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	other    = "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
)

func signature(b byte) solanago.Signature {
	var s solanago.Signature
	for i := range s {
		s[i] = b
	}
	return s
}

func balance(owner, mint string, amount string) rpc.TokenBalance {
	o := solanago.MustPublicKeyFromBase58(owner)
	return rpc.TokenBalance{
		Owner: &o,
		Mint:  solanago.MustPublicKeyFromBase58(mint),
		UiTokenAmount: &rpc.UiTokenAmount{
			Amount:   amount,
			Decimals: 5,
		},
	}
}

func txResult(pre, post []rpc.TokenBalance) *rpc.GetTransactionResult {
	blockTime := solanago.UnixTimeSeconds(1741600000)
	return &rpc.GetTransactionResult{
		Slot:      42,
		BlockTime: &blockTime,
		Meta: &rpc.TransactionMeta{
			PreTokenBalances:  pre,
			PostTokenBalances: post,
		},
	}
}

func claim(sig solanago.Signature, amount string) solana.BurnClaim {
	return solana.BurnClaim{
		Signature:   sig.String(),
		Wallet:      wallet,
		Mint:        bonkMint,
		TokenAmount: decimal.RequireFromString(amount),
	}
}

func TestVerifyBurn(t *testing.T) {
	ctx := context.Background()

	t.Run("burn corroborated by balance deltas", func(t *testing.T) {
		client := mocks.NewMockSolanaRPC(gomock.NewController(t))
		v := solana.NewChainVerifier(client, "")
		sig := signature(1)

		client.EXPECT().GetTransaction(gomock.Any(), sig, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ solanago.Signature, opts *rpc.GetTransactionOpts) (*rpc.GetTransactionResult, error) {
				assert.Equal(t, rpc.CommitmentConfirmed, opts.Commitment)
				require.NotNil(t, opts.MaxSupportedTransactionVersion)
				return txResult(
					[]rpc.TokenBalance{balance(wallet, bonkMint, "5000000"), balance(other, bonkMint, "100")},
					[]rpc.TokenBalance{balance(wallet, bonkMint, "2500000"), balance(other, bonkMint, "100")},
				), nil
			})

		evidence, err := v.VerifyBurn(ctx, claim(sig, "25"))
		require.NoError(t, err)
		assert.Equal(t, uint64(42), evidence.Slot)
		assert.Equal(t, uint64(2500000), evidence.RawAmount)
		assert.Equal(t, uint64(2500000), evidence.BurnedDelta)
		assert.Equal(t, wallet, evidence.Wallet)
		assert.Equal(t, int64(1741600000), evidence.BlockTime.Unix())
	})

	t.Run("transfer is not a burn", func(t *testing.T) {
		client := mocks.NewMockSolanaRPC(gomock.NewController(t))
		v := solana.NewChainVerifier(client, "finalized")
		sig := signature(2)

		client.EXPECT().GetTransaction(gomock.Any(), sig, gomock.Any()).Return(txResult(
			[]rpc.TokenBalance{balance(wallet, bonkMint, "5000000"), balance(other, bonkMint, "0")},
			[]rpc.TokenBalance{balance(wallet, bonkMint, "2500000"), balance(other, bonkMint, "2500000")},
		), nil)

		_, err := v.VerifyBurn(ctx, claim(sig, "25"))
		assert.ErrorIs(t, err, domain.ErrBurnNotVerified)
	})

	t.Run("burned less than claimed", func(t *testing.T) {
		client := mocks.NewMockSolanaRPC(gomock.NewController(t))
		v := solana.NewChainVerifier(client, "")
		sig := signature(3)

		client.EXPECT().GetTransaction(gomock.Any(), sig, gomock.Any()).Return(txResult(
			[]rpc.TokenBalance{balance(wallet, bonkMint, "5000000")},
			[]rpc.TokenBalance{balance(wallet, bonkMint, "4000000")},
		), nil)

		_, err := v.VerifyBurn(ctx, claim(sig, "25"))
		assert.ErrorIs(t, err, domain.ErrBurnNotVerified)
	})

	t.Run("claim beyond u64 does not wrap", func(t *testing.T) {
		client := mocks.NewMockSolanaRPC(gomock.NewController(t))
		v := solana.NewChainVerifier(client, "")
		sig := signature(10)

		client.EXPECT().GetTransaction(gomock.Any(), sig, gomock.Any()).Return(txResult(
			[]rpc.TokenBalance{balance(wallet, bonkMint, "1000")},
			[]rpc.TokenBalance{balance(wallet, bonkMint, "900")},
		), nil)

		// 2^64 + 100 base units at 5 decimals
		_, err := v.VerifyBurn(ctx, claim(sig, "184467440737095.51716"))
		assert.ErrorIs(t, err, domain.ErrBurnNotVerified)
	})

	t.Run("failed transaction", func(t *testing.T) {
		client := mocks.NewMockSolanaRPC(gomock.NewController(t))
		v := solana.NewChainVerifier(client, "")
		sig := signature(4)

		result := txResult(nil, nil)
		result.Meta.Err = map[string]interface{}{"InstructionError": []interface{}{0, "Custom"}}
		client.EXPECT().GetTransaction(gomock.Any(), sig, gomock.Any()).Return(result, nil)

		_, err := v.VerifyBurn(ctx, claim(sig, "25"))
		assert.ErrorIs(t, err, domain.ErrBurnNotVerified)
	})

	t.Run("mint not touched", func(t *testing.T) {
		client := mocks.NewMockSolanaRPC(gomock.NewController(t))
		v := solana.NewChainVerifier(client, "")
		sig := signature(5)

		client.EXPECT().GetTransaction(gomock.Any(), sig, gomock.Any()).Return(txResult(nil, nil), nil)

		_, err := v.VerifyBurn(ctx, claim(sig, "25"))
		assert.ErrorIs(t, err, domain.ErrBurnNotVerified)
	})

	t.Run("transaction not found", func(t *testing.T) {
		client := mocks.NewMockSolanaRPC(gomock.NewController(t))
		v := solana.NewChainVerifier(client, "")
		sig := signature(6)

		client.EXPECT().GetTransaction(gomock.Any(), sig, gomock.Any()).Return(nil, rpc.ErrNotFound)

		_, err := v.VerifyBurn(ctx, claim(sig, "25"))
		assert.ErrorIs(t, err, domain.ErrBurnNotVerified)
	})

	t.Run("rpc failure is not a verification failure", func(t *testing.T) {
		client := mocks.NewMockSolanaRPC(gomock.NewController(t))
		v := solana.NewChainVerifier(client, "")
		sig := signature(7)

		client.EXPECT().GetTransaction(gomock.Any(), sig, gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := v.VerifyBurn(ctx, claim(sig, "25"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrBurnNotVerified)
	})

	t.Run("invalid input", func(t *testing.T) {
		v := solana.NewChainVerifier(mocks.NewMockSolanaRPC(gomock.NewController(t)), "")

		_, err := v.VerifyBurn(ctx, solana.BurnClaim{Signature: "0OIl", Wallet: wallet, Mint: bonkMint})
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)

		c := claim(signature(8), "1")
		c.Wallet = "not-a-wallet"
		_, err = v.VerifyBurn(ctx, c)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})
}

func TestMintDecimals(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockSolanaRPC(gomock.NewController(t))
	v := solana.NewChainVerifier(client, "")

	client.EXPECT().
		GetTokenSupply(gomock.Any(), solanago.MustPublicKeyFromBase58(bonkMint), rpc.CommitmentConfirmed).
		Return(&rpc.GetTokenSupplyResult{Value: &rpc.UiTokenAmount{Amount: "1", Decimals: 5}}, nil).
		Times(1)

	for range 2 {
		d, err := v.MintDecimals(ctx, bonkMint)
		require.NoError(t, err)
		assert.Equal(t, uint8(5), d)
	}

	_, err := v.MintDecimals(ctx, "bad mint")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, solana.ValidateAddress(wallet))
	assert.ErrorIs(t, solana.ValidateAddress("0x1234"), domain.ErrInvalidRequest)

	assert.NoError(t, solana.ValidateSignature(signature(9).String()))
	assert.ErrorIs(t, solana.ValidateSignature(wallet), domain.ErrInvalidRequest)
}
