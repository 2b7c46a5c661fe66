package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
	"gitlab.com/TitanInd/crowdfunding/internal/interfaces"
	"gitlab.com/TitanInd/crowdfunding/internal/lib"
)

var (
	ErrNoCredentials = errors.New("wallet credentials are not configured")
	ErrDerivation    = errors.New("cannot derive wallet account")
)

// Wallet holds local credentials and exposes an account once connected
type Wallet struct {
	// config
	mnemonic     string
	privateKey   string
	accountIndex int

	// state
	mutex  sync.RWMutex
	signer *Signer

	log interfaces.ILogger
}

func NewWallet(mnemonic string, privateKey string, accountIndex int, log interfaces.ILogger) *Wallet {
	return &Wallet{
		mnemonic:     mnemonic,
		privateKey:   privateKey,
		accountIndex: accountIndex,
		log:          log,
	}
}

func (w *Wallet) HasCredentials() bool {
	return w.mnemonic != "" || w.privateKey != ""
}

// Connect unlocks the configured account. Connecting twice is a no-op.
func (w *Wallet) Connect(ctx context.Context) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.signer != nil {
		return nil
	}

	key, err := w.deriveKey()
	if err != nil {
		return err
	}

	addr, err := lib.PrivKeyToAddr(key)
	if err != nil {
		return lib.WrapError(ErrDerivation, err)
	}

	w.signer = &Signer{address: addr, key: key}
	w.log.Infof("wallet connected, address %s", lib.AddrShort(addr.Hex()))
	return nil
}

func (w *Wallet) Disconnect() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.signer != nil {
		w.log.Infof("wallet disconnected, address %s", lib.AddrShort(w.signer.address.Hex()))
	}
	w.signer = nil
}

func (w *Wallet) Address() (common.Address, bool) {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	if w.signer == nil {
		return common.Address{}, false
	}
	return w.signer.address, true
}

// Signer returns nil while the wallet is not connected
func (w *Wallet) Signer() *Signer {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.signer
}

func (w *Wallet) deriveKey() (*ecdsa.PrivateKey, error) {
	if w.privateKey != "" {
		key, err := lib.ParsePrivKey(w.privateKey)
		if err != nil {
			return nil, lib.WrapError(ErrDerivation, err)
		}
		return key, nil
	}

	if w.mnemonic == "" {
		return nil, ErrNoCredentials
	}

	wallet, err := hdwallet.NewFromMnemonic(w.mnemonic)
	if err != nil {
		return nil, lib.WrapError(ErrDerivation, err)
	}

	path, err := hdwallet.ParseDerivationPath(fmt.Sprintf("m/44'/60'/0'/0/%d", w.accountIndex))
	if err != nil {
		return nil, lib.WrapError(ErrDerivation, err)
	}

	account, err := wallet.Derive(path, false)
	if err != nil {
		return nil, lib.WrapError(ErrDerivation, err)
	}

	key, err := wallet.PrivateKey(account)
	if err != nil {
		return nil, lib.WrapError(ErrDerivation, err)
	}
	return key, nil
}

type Signer struct {
	address common.Address
	key     *ecdsa.PrivateKey
}

func (s *Signer) Address() common.Address {
	return s.address
}

func (s *Signer) NewTransactor(chainID *big.Int) (*bind.TransactOpts, error) {
	return bind.NewKeyedTransactorWithChainID(s.key, chainID)
}
