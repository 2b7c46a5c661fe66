package contracts

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"gitlab.com/TitanInd/crowdfunding/internal/interfaces"
	"gitlab.com/TitanInd/crowdfunding/internal/lib"
	"gitlab.com/TitanInd/crowdfunding/internal/repositories/contracts/crowdfunding"
	"gitlab.com/TitanInd/crowdfunding/internal/session"
)

var (
	ErrInvalidABI    = errors.New("invalid contract ABI")
	ErrMissingMethod = errors.New("contract ABI is missing a required method")
	ErrReadOnly      = errors.New("contract is bound without a signer")
)

// RequiredMethods must be present in any ABI the contract is bound with
var RequiredMethods = []string{"createCampaign", "getCampaigns"}

type CrowdfundingEthereum struct {
	// config
	legacyTx       bool          // use legacy transaction fee, for local node testing
	confirmTimeout time.Duration // zero waits for the receipt until ctx is done
	address        common.Address

	// state
	nonce uint64
	mutex sync.Mutex

	// deps
	contract *crowdfunding.Crowdfunding
	client   EthereumClient
	signer   session.Signer
	log      interfaces.ILogger
}

// NewBinder returns a session.Binder producing CrowdfundingEthereum handles
func NewBinder(legacyTx bool, confirmTimeout time.Duration, log interfaces.ILogger) session.Binder {
	return func(contractAddr common.Address, abiJSON string, sdk session.ChainSDK) (session.ContractHandle, error) {
		handle, err := NewCrowdfundingEthereum(contractAddr, abiJSON, sdk.Provider(), sdk.Signer(), log)
		if err != nil {
			return nil, err
		}
		handle.SetLegacyTx(legacyTx)
		handle.SetConfirmTimeout(confirmTimeout)
		return handle, nil
	}
}

// NewCrowdfundingEthereum binds the contract at address. A nil signer yields a read-only handle.
func NewCrowdfundingEthereum(address common.Address, abiJSON string, client EthereumClient, signer session.Signer, log interfaces.ILogger) (*CrowdfundingEthereum, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, lib.WrapError(ErrInvalidABI, err)
	}
	for _, method := range RequiredMethods {
		if _, ok := parsed.Methods[method]; !ok {
			return nil, lib.WrapError(ErrMissingMethod, errors.New(method))
		}
	}

	contract, err := crowdfunding.NewCrowdfundingWithABI(address, parsed, client)
	if err != nil {
		return nil, err
	}

	return &CrowdfundingEthereum{
		address:  address,
		contract: contract,
		client:   client,
		signer:   signer,
		log:      log,
	}, nil
}

func (g *CrowdfundingEthereum) SetLegacyTx(legacyTx bool) {
	g.legacyTx = legacyTx
}

func (g *CrowdfundingEthereum) SetConfirmTimeout(timeout time.Duration) {
	g.confirmTimeout = timeout
}

func (g *CrowdfundingEthereum) Address() common.Address {
	return g.address
}

func (g *CrowdfundingEthereum) Signer() session.Signer {
	return g.signer
}

func (g *CrowdfundingEthereum) GetCampaigns(ctx context.Context) ([]crowdfunding.CrowdFundingCampaign, error) {
	return g.contract.GetCampaigns(&bind.CallOpts{Context: ctx})
}

func (g *CrowdfundingEthereum) GetDonators(ctx context.Context, index *big.Int) ([]common.Address, []*big.Int, error) {
	return g.contract.GetDonators(&bind.CallOpts{Context: ctx}, index)
}

func (g *CrowdfundingEthereum) CreateCampaign(ctx context.Context, owner common.Address, title string, description string, target *big.Int, deadline *big.Int, image string) (session.PendingTx, error) {
	opts, err := g.getTransactOpts(ctx, big.NewInt(0))
	if err != nil {
		return nil, err
	}

	tx, err := g.contract.CreateCampaign(opts, owner, title, description, target, deadline, image)
	if err != nil {
		g.releaseNonce(opts.Nonce)
		return nil, err
	}

	g.log.Debugf("create campaign sent, hash %s, nonce %d", tx.Hash().Hex(), tx.Nonce())
	return g.pending(tx), nil
}

func (g *CrowdfundingEthereum) DonateToCampaign(ctx context.Context, index *big.Int, value *big.Int) (session.PendingTx, error) {
	opts, err := g.getTransactOpts(ctx, value)
	if err != nil {
		return nil, err
	}

	tx, err := g.contract.DonateToCampaign(opts, index)
	if err != nil {
		g.releaseNonce(opts.Nonce)
		return nil, err
	}

	g.log.Debugf("donation sent, campaign %s, value %s, hash %s, nonce %d", index, value, tx.Hash().Hex(), tx.Nonce())
	return g.pending(tx), nil
}

func (g *CrowdfundingEthereum) getTransactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error) {
	if g.signer == nil {
		return nil, ErrReadOnly
	}

	chainID, err := g.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	transactOpts, err := g.signer.NewTransactor(chainID)
	if err != nil {
		return nil, err
	}

	if g.legacyTx {
		gasPrice, err := g.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, err
		}
		transactOpts.GasPrice = gasPrice
	}

	nonce, err := g.getNonce(ctx, g.signer.Address())
	if err != nil {
		return nil, err
	}

	transactOpts.Value = value
	transactOpts.Nonce = nonce
	transactOpts.Context = ctx

	return transactOpts, nil
}

// getNonce hands out nonces for the signer so that concurrent writes never reuse one
func (g *CrowdfundingEthereum) getNonce(ctx context.Context, from common.Address) (*big.Int, error) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	nonce := &big.Int{}
	blockchainNonce, err := g.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nonce, err
	}

	if g.nonce > blockchainNonce {
		nonce.SetUint64(g.nonce)
	} else {
		nonce.SetUint64(blockchainNonce)
	}

	g.nonce = nonce.Uint64() + 1

	return nonce, nil
}

// releaseNonce gives back the last handed out nonce if its transaction was never sent
func (g *CrowdfundingEthereum) releaseNonce(nonce *big.Int) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if nonce != nil && g.nonce == nonce.Uint64()+1 {
		g.nonce = nonce.Uint64()
	}
}

func (g *CrowdfundingEthereum) pending(tx *types.Transaction) *pendingTx {
	return &pendingTx{tx: tx, client: g.client, timeout: g.confirmTimeout}
}

type pendingTx struct {
	tx      *types.Transaction
	client  bind.DeployBackend
	timeout time.Duration
}

func (p *pendingTx) Hash() common.Hash {
	return p.tx.Hash()
}

func (p *pendingTx) Wait(ctx context.Context) (*types.Receipt, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return bind.WaitMined(ctx, p.client, p.tx)
}

var _ session.ContractHandle = new(CrowdfundingEthereum)
