package session

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"gitlab.com/TitanInd/crowdfunding/internal/repositories/contracts/crowdfunding"
)

// Backend is the low level chain access the contract binding needs
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Signer authorizes state-changing transactions
type Signer interface {
	Address() common.Address
	NewTransactor(chainID *big.Int) (*bind.TransactOpts, error)
}

// ChainSDK is the chain handle: a provider and, once a wallet is connected, a signer.
// Signer returns nil while no wallet is connected.
type ChainSDK interface {
	Provider() Backend
	Signer() Signer
}

// Wallet supplies the connected address and the connect action
type Wallet interface {
	Address() (common.Address, bool)
	Connect(ctx context.Context) error
}

// PendingTx is a sent transaction that can be awaited
type PendingTx interface {
	Hash() common.Hash
	Wait(ctx context.Context) (*types.Receipt, error)
}

// ContractHandle is a crowdfunding contract bound to a provider and optionally to a signer
type ContractHandle interface {
	Address() common.Address
	Signer() Signer

	CreateCampaign(ctx context.Context, owner common.Address, title string, description string, target *big.Int, deadline *big.Int, image string) (PendingTx, error)
	DonateToCampaign(ctx context.Context, index *big.Int, value *big.Int) (PendingTx, error)

	GetCampaigns(ctx context.Context) ([]crowdfunding.CrowdFundingCampaign, error)
	GetDonators(ctx context.Context, index *big.Int) ([]common.Address, []*big.Int, error)
}

// Binder instantiates a contract handle from an address, an ABI definition and a chain
// handle. It binds with the signer when the SDK has one, read-only otherwise.
type Binder func(contractAddr common.Address, abiJSON string, sdk ChainSDK) (ContractHandle, error)
