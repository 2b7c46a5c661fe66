package session

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"gitlab.com/TitanInd/crowdfunding/internal/repositories/contracts/crowdfunding"
)

var (
	testContractAddr = common.HexToAddress("0x9fbff9d6448e34965347d352302b5bb042a40b1f")
	testWalletAddr   = common.HexToAddress("0x60EbdC73d89a9f02D1cA0EbcD842650873c4dec2")
	testABI          = crowdfunding.CrowdfundingMetaData.ABI

	errKiki = errors.New("kiki")
)

type signerMock struct {
	addr common.Address
}

func (s *signerMock) Address() common.Address {
	return s.addr
}

func (s *signerMock) NewTransactor(chainID *big.Int) (*bind.TransactOpts, error) {
	return &bind.TransactOpts{From: s.addr}, nil
}

type sdkMock struct {
	signer Signer
}

func (s *sdkMock) Provider() Backend {
	return nil
}

func (s *sdkMock) Signer() Signer {
	return s.signer
}

type walletMock struct {
	ConnectFunc        func(ctx context.Context) error
	ConnectCalledTimes int
	addr               common.Address
	connected          bool
}

func (w *walletMock) Address() (common.Address, bool) {
	return w.addr, w.connected
}

func (w *walletMock) Connect(ctx context.Context) error {
	w.ConnectCalledTimes++
	if w.ConnectFunc != nil {
		return w.ConnectFunc(ctx)
	}
	w.connected = true
	return nil
}

type txMock struct {
	hash    common.Hash
	receipt *types.Receipt
	waitErr error
}

func (t *txMock) Hash() common.Hash {
	return t.hash
}

func (t *txMock) Wait(ctx context.Context) (*types.Receipt, error) {
	return t.receipt, t.waitErr
}

type createCampaignArgs struct {
	owner       common.Address
	title       string
	description string
	target      *big.Int
	deadline    *big.Int
	image       string
}

type handleMock struct {
	mutex  sync.Mutex
	addr   common.Address
	signer Signer

	Campaigns               []crowdfunding.CrowdFundingCampaign
	GetCampaignsErr         error
	GetCampaignsCalledTimes int

	Donors         []common.Address
	Amounts        []*big.Int
	GetDonatorsErr error

	Tx                        *txMock
	CreateCampaignErr         error
	CreateCampaignCalledTimes int
	CreateCampaignArgs        createCampaignArgs

	DonateCalledTimes int
	DonateIndex       *big.Int
	DonateValue       *big.Int
}

func newHandleMock(signer Signer) *handleMock {
	return &handleMock{
		addr:   testContractAddr,
		signer: signer,
		Tx: &txMock{
			hash:    common.HexToHash("0x01"),
			receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(10), GasUsed: 21000},
		},
	}
}

func (h *handleMock) Address() common.Address {
	return h.addr
}

func (h *handleMock) Signer() Signer {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.signer
}

func (h *handleMock) setSigner(s Signer) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.signer = s
}

func (h *handleMock) CreateCampaign(ctx context.Context, owner common.Address, title string, description string, target *big.Int, deadline *big.Int, image string) (PendingTx, error) {
	h.CreateCampaignCalledTimes++
	h.CreateCampaignArgs = createCampaignArgs{owner, title, description, target, deadline, image}
	if h.CreateCampaignErr != nil {
		return nil, h.CreateCampaignErr
	}
	return h.Tx, nil
}

func (h *handleMock) DonateToCampaign(ctx context.Context, index *big.Int, value *big.Int) (PendingTx, error) {
	h.DonateCalledTimes++
	h.DonateIndex = index
	h.DonateValue = value
	return h.Tx, nil
}

func (h *handleMock) GetCampaigns(ctx context.Context) ([]crowdfunding.CrowdFundingCampaign, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.GetCampaignsCalledTimes++
	return h.Campaigns, h.GetCampaignsErr
}

func (h *handleMock) GetDonators(ctx context.Context, index *big.Int) ([]common.Address, []*big.Int, error) {
	return h.Donors, h.Amounts, h.GetDonatorsErr
}

// binderMock binds handleMocks carrying the sdk signer and records the calls
type binderMock struct {
	mutex       sync.Mutex
	err         error
	calledTimes int
	last        *handleMock
	prepare     func(h *handleMock)
}

func (b *binderMock) Bind(contractAddr common.Address, abiJSON string, sdk ChainSDK) (ContractHandle, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.calledTimes++
	if b.err != nil {
		return nil, b.err
	}
	h := newHandleMock(sdk.Signer())
	h.addr = contractAddr
	if b.prepare != nil {
		b.prepare(h)
	}
	b.last = h
	return h, nil
}

func (b *binderMock) Last() *handleMock {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.last
}
