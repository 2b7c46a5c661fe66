package contracts

import (
	"context"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// EthClientMock implements the client methods used by the contract bindings,
// calling any other method panics
type EthClientMock struct {
	EthereumClient

	ChainIDValue *big.Int

	PendingNonceAtFunc        func(ctx context.Context, account common.Address) (uint64, error)
	PendingNonceAtCalledTimes int

	CallContractFunc func(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)

	GasPrice     *big.Int
	Code         []byte
	Gas          uint64
	SentTxs      []*types.Transaction
	SendTxErr    error
	Receipt      *types.Receipt
	ReceiptCalls int
}

func (m *EthClientMock) ChainID(ctx context.Context) (*big.Int, error) {
	return m.ChainIDValue, nil
}

func (m *EthClientMock) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	m.PendingNonceAtCalledTimes++
	return m.PendingNonceAtFunc(ctx, account)
}

func (m *EthClientMock) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return m.CallContractFunc(ctx, call, blockNumber)
}

func (m *EthClientMock) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return m.GasPrice, nil
}

func (m *EthClientMock) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return m.Code, nil
}

func (m *EthClientMock) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return m.Gas, nil
}

func (m *EthClientMock) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if m.SendTxErr != nil {
		return m.SendTxErr
	}
	m.SentTxs = append(m.SentTxs, tx)
	return nil
}

func (m *EthClientMock) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	m.ReceiptCalls++
	if m.Receipt == nil {
		return nil, ethereum.NotFound
	}
	return m.Receipt, nil
}
