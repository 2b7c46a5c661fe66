package sdk

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"gitlab.com/TitanInd/crowdfunding/internal/interfaces"
	"gitlab.com/TitanInd/crowdfunding/internal/lib"
	"gitlab.com/TitanInd/crowdfunding/internal/repositories/contracts"
	"gitlab.com/TitanInd/crowdfunding/internal/session"
	"gitlab.com/TitanInd/crowdfunding/internal/wallet"
	"go.uber.org/atomic"
)

var ErrChainIDMismatch = errors.New("chain id mismatch")

// SDK pairs a chain provider with the signer of the connected wallet
type SDK struct {
	client contracts.EthereumClient
	wallet *wallet.Wallet
}

func NewSDK(client contracts.EthereumClient, wallet *wallet.Wallet) *SDK {
	return &SDK{
		client: client,
		wallet: wallet,
	}
}

func (s *SDK) Provider() session.Backend {
	return s.client
}

// Signer returns nil while the wallet is not connected
func (s *SDK) Signer() session.Signer {
	signer := s.wallet.Signer()
	if signer == nil {
		return nil
	}
	return signer
}

var _ session.ChainSDK = new(SDK)

type Dialer func(ctx context.Context, url string) (contracts.EthereumClient, error)

// DefaultDialer dials the node with go-ethereum's rpc client
func DefaultDialer(ctx context.Context, url string) (contracts.EthereumClient, error) {
	return contracts.DialContext(ctx, url)
}

type closer interface {
	Close()
}

// Holder dials the chain node and publishes the SDK once it is reachable
type Holder struct {
	// config
	nodeURL         string
	expectedChainID *big.Int // nil accepts any chain
	dialTimeout     time.Duration
	retryInterval   time.Duration

	// state
	sdk       *SDK
	mutex     sync.RWMutex
	available atomic.Bool

	// deps
	dial   Dialer
	wallet *wallet.Wallet
	log    interfaces.ILogger
}

func NewHolder(nodeURL string, dialTimeout time.Duration, retryInterval time.Duration, dial Dialer, wallet *wallet.Wallet, log interfaces.ILogger) *Holder {
	return &Holder{
		nodeURL:       nodeURL,
		dialTimeout:   dialTimeout,
		retryInterval: retryInterval,
		dial:          dial,
		wallet:        wallet,
		log:           log,
	}
}

// SetExpectedChainID makes the holder refuse nodes serving another chain
func (h *Holder) SetExpectedChainID(chainID *big.Int) {
	h.expectedChainID = chainID
}

// Run connects to the node, retrying until ctx is cancelled, and keeps the
// SDK published until then
func (h *Holder) Run(ctx context.Context) error {
	var client contracts.EthereumClient

	err := lib.Poll(ctx, 0, h.retryInterval, func(ctx context.Context) error {
		c, err := h.connect(ctx)
		if err != nil {
			return err
		}
		client = c
		return nil
	}, func(attempt int, err error) {
		h.log.Warnf("cannot connect to eth node, attempt %d: %s", attempt, err)
	})
	if err != nil {
		return nil
	}

	h.mutex.Lock()
	h.sdk = NewSDK(client, h.wallet)
	h.mutex.Unlock()
	h.available.Store(true)
	h.log.Infof("connected to eth node %s", lib.SanitizeURL(h.nodeURL))

	<-ctx.Done()

	h.available.Store(false)
	h.mutex.Lock()
	h.sdk = nil
	h.mutex.Unlock()

	if c, ok := client.(closer); ok {
		c.Close()
	}
	h.log.Info("eth node connection closed")
	return nil
}

func (h *Holder) connect(ctx context.Context) (contracts.EthereumClient, error) {
	dialCtx := ctx
	if h.dialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, h.dialTimeout)
		defer cancel()
	}

	client, err := h.dial(dialCtx, h.nodeURL)
	if err != nil {
		return nil, err
	}

	chainID, err := client.ChainID(dialCtx)
	if err != nil {
		if c, ok := client.(closer); ok {
			c.Close()
		}
		return nil, err
	}

	if h.expectedChainID != nil && chainID.Cmp(h.expectedChainID) != 0 {
		if c, ok := client.(closer); ok {
			c.Close()
		}
		return nil, lib.WrapError(ErrChainIDMismatch, fmt.Errorf("expected %s, got %s", h.expectedChainID, chainID))
	}

	return client, nil
}

func (h *Holder) IsAvailable() bool {
	return h.available.Load()
}

// Get returns the published SDK or nil while the node is not connected
func (h *Holder) Get() session.ChainSDK {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if h.sdk == nil {
		return nil
	}
	return h.sdk
}

// DepsSource reports the session deps from the holder and the wallet
func DepsSource(holder *Holder, w session.Wallet, abiJSON string) session.DepsSource {
	return func() session.Deps {
		deps := session.Deps{
			SDK: holder.Get(),
			ABI: abiJSON,
		}
		if addr, ok := w.Address(); ok {
			deps.Address = addr.Hex()
		}
		return deps
	}
}

var _ interfaces.Runnable = new(Holder)
