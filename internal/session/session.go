package session

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"gitlab.com/TitanInd/crowdfunding/internal/interfaces"
	"gitlab.com/TitanInd/crowdfunding/internal/lib"
)

// Deps are the inputs the contract binding is derived from
type Deps struct {
	SDK     ChainSDK
	Address string
	ABI     string
}

type depsKey struct {
	sdk     ChainSDK
	address string
	abiHash common.Hash
}

func (d Deps) key() depsKey {
	return depsKey{
		sdk:     d.SDK,
		address: d.Address,
		abiHash: crypto.Keccak256Hash([]byte(d.ABI)),
	}
}

const DefaultHistorySize = 64

// Session tracks the wallet connection and the contract binding derived from it.
// Ready implies a bound contract with a signer and a connected wallet address.
type Session struct {
	// config
	contractAddr common.Address

	// state
	mutex     sync.RWMutex
	address   string
	handle    ContractHandle
	readiness Readiness
	lastErr   error
	key       depsKey
	derived   bool
	latch     FetchLatch
	history   *SubmissionHistory

	// deps
	binder Binder
	wallet Wallet
	clock  func() time.Time
	log    interfaces.ILogger
}

func NewSession(contractAddr common.Address, binder Binder, wallet Wallet, log interfaces.ILogger) *Session {
	return &Session{
		contractAddr: contractAddr,
		binder:       binder,
		wallet:       wallet,
		history:      NewSubmissionHistory(DefaultHistorySize),
		clock:        time.Now,
		log:          log,
	}
}

// SetClock overrides the time source used for deadline validation
func (s *Session) SetClock(clock func() time.Time) {
	s.clock = clock
}

// Update re-derives the contract binding if any of the deps changed since the
// last derivation. It reports whether a re-derivation happened.
func (s *Session) Update(deps Deps) (bool, error) {
	key := deps.key()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.derived && s.key == key {
		return false, nil
	}
	s.key = key
	s.derived = true

	return true, s.recompute(deps)
}

// recompute must be called with the mutex held
func (s *Session) recompute(deps Deps) error {
	s.address = deps.Address

	if deps.SDK == nil {
		s.log.Debug("sdk not available yet")
		s.readiness = ReadinessUninitialized
		s.handle = nil
		s.lastErr = nil
		return ErrSDKUnavailable
	}

	s.readiness = ReadinessLoading
	s.lastErr = nil

	handle, err := s.binder(s.contractAddr, deps.ABI, deps.SDK)
	if err != nil {
		err = lib.WrapError(ErrInstantiation, err)
		s.log.Errorf("error loading contract: %s", err)
		s.readiness = ReadinessError
		s.lastErr = err
		s.handle = nil
		return err
	}
	s.handle = handle
	s.log.Infof("contract loaded, address %s, signer present %t", handle.Address().Hex(), handle.Signer() != nil)

	if handle.Signer() == nil || deps.Address == "" {
		s.log.Infow("contract is not yet ready for write operations",
			"missingSigner", handle.Signer() == nil,
			"missingAddress", deps.Address == "",
		)
		return nil
	}

	s.readiness = ReadinessReady
	s.log.Info("contract is ready for write operations")
	return nil
}

// Reset tears the session down to its initial state
func (s *Session) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.address = ""
	s.handle = nil
	s.readiness = ReadinessUninitialized
	s.lastErr = nil
	s.key = depsKey{}
	s.derived = false
	s.latch.ResetFetched()
}

func (s *Session) Readiness() Readiness {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.readiness
}

func (s *Session) Address() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.address
}

func (s *Session) Handle() ContractHandle {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.handle
}

func (s *Session) LastError() error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.lastErr
}

func (s *Session) Latch() *FetchLatch {
	return &s.latch
}

func (s *Session) ContractAddress() common.Address {
	return s.contractAddr
}

func (s *Session) state() (string, Readiness, ContractHandle) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.address, s.readiness, s.handle
}

type Snapshot struct {
	Address         string    `json:"address"`
	ContractAddress string    `json:"contractAddress"`
	Readiness       Readiness `json:"readiness"`
	ContractLoaded  bool      `json:"contractLoaded"`
	Ready           bool      `json:"isContractReady"`
	LastError       string    `json:"contractError,omitempty"`
	Fetched         bool      `json:"campaignsFetched"`
}

// Snapshot is a point in time view of the session for API clients
func (s *Session) Snapshot() Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	snap := Snapshot{
		Address:         s.address,
		ContractAddress: s.contractAddr.Hex(),
		Readiness:       s.readiness,
		ContractLoaded:  s.handle != nil,
		Ready:           s.readiness == ReadinessReady,
		Fetched:         s.latch.Fetched(),
	}
	if s.lastErr != nil {
		snap.LastError = s.lastErr.Error()
	}
	return snap
}
