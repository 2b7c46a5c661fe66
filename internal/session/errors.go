package session

import "errors"

var (
	ErrSDKUnavailable     = errors.New("chain sdk is not available yet")
	ErrInstantiation      = errors.New("contract instantiation failed")
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrNotReady           = errors.New("contract is not ready for write operations")
	ErrInconsistentState  = errors.New("contract or signer is missing while session is ready")
	ErrInvalidInput       = errors.New("invalid input")
	ErrChain              = errors.New("network or contract failure")

	ErrDeadlineNotFuture = errors.New("deadline must be in the future")
	ErrTxReverted        = errors.New("transaction reverted")
	ErrMalformedRecord   = errors.New("malformed campaign record")
)
