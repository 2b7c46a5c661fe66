package session

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"gitlab.com/TitanInd/crowdfunding/internal/interfaces"
	"gitlab.com/TitanInd/crowdfunding/internal/lib"
)

type SubmitResult struct {
	ID          uuid.UUID   `json:"id"`
	TxHash      common.Hash `json:"txHash"`
	BlockNumber uint64      `json:"blockNumber"`
	GasUsed     uint64      `json:"gasUsed"`
}

// SubmitCampaign creates a campaign owned by the connected wallet and waits for the
// transaction to be mined. Nothing is cached locally, callers re-fetch the list.
func (s *Session) SubmitCampaign(ctx context.Context, form CampaignForm) (*SubmitResult, error) {
	id := uuid.New()
	log := s.log.With("submission", id.String())

	address, handle, err := s.writeHandle(ctx, log)
	if err != nil {
		return nil, err
	}

	args, err := form.prepare(s.clock())
	if err != nil {
		log.Errorf("campaign form rejected: %s", err)
		return nil, err
	}

	log.Debugw("arguments prepared for createCampaign",
		"owner", address,
		"title", form.Title,
		"target", args.target.String(),
		"deadline", args.deadline.String(),
		"image", form.Image,
	)

	sub := Submission{ID: id, Kind: SubmissionCreateCampaign}

	tx, err := handle.CreateCampaign(ctx, common.HexToAddress(address), form.Title, form.Description, args.target, args.deadline, form.Image)
	if err != nil {
		err = lib.WrapError(ErrChain, err)
		log.Errorf("contract call failure: %s", err)
		s.record(sub, err)
		return nil, err
	}

	return s.await(ctx, sub, tx, log)
}

// Donate sends amount (decimal ether) to the campaign at index
func (s *Session) Donate(ctx context.Context, index int, amount string) (*SubmitResult, error) {
	id := uuid.New()
	log := s.log.With("donation", id.String(), "campaign", index)

	_, handle, err := s.writeHandle(ctx, log)
	if err != nil {
		return nil, err
	}

	if index < 0 {
		return nil, lib.WrapError(ErrInvalidInput, fmt.Errorf("negative campaign index %d", index))
	}
	value, err := lib.ParseEther(amount)
	if err != nil {
		return nil, lib.WrapError(ErrInvalidInput, err)
	}
	if value.Sign() <= 0 {
		return nil, lib.WrapError(ErrInvalidInput, fmt.Errorf("donation must be positive, got %s", amount))
	}

	sub := Submission{ID: id, Kind: SubmissionDonate, Campaign: &index}

	tx, err := handle.DonateToCampaign(ctx, big.NewInt(int64(index)), value)
	if err != nil {
		err = lib.WrapError(ErrChain, err)
		log.Errorf("contract call failure: %s", err)
		s.record(sub, err)
		return nil, err
	}

	return s.await(ctx, sub, tx, log)
}

// writeHandle checks the write path preconditions in order: connected wallet,
// ready session, bound contract with signer
func (s *Session) writeHandle(ctx context.Context, log interfaces.ILogger) (string, ContractHandle, error) {
	address, readiness, handle := s.state()

	if address == "" {
		log.Warn("wallet not connected, starting connect flow")
		err := s.wallet.Connect(ctx)
		if err != nil {
			log.Errorf("wallet connect failed: %s", err)
			return "", nil, lib.WrapError(ErrWalletNotConnected, err)
		}
		return "", nil, ErrWalletNotConnected
	}

	if readiness != ReadinessReady {
		log.Warnf("contract is not ready for write operations, readiness %s", readiness)
		return "", nil, ErrNotReady
	}

	if handle == nil || handle.Signer() == nil {
		log.Error("contract or signer is missing right before transaction attempt while session is ready")
		return "", nil, ErrInconsistentState
	}

	return address, handle, nil
}

func (s *Session) await(ctx context.Context, sub Submission, tx PendingTx, log interfaces.ILogger) (*SubmitResult, error) {
	hash := tx.Hash()
	sub.TxHash = &hash
	log.Infof("transaction sent, waiting for confirmation, hash %s", hash.Hex())

	receipt, err := tx.Wait(ctx)
	if err != nil {
		err = lib.WrapError(ErrChain, err)
		log.Errorf("transaction confirmation failed: %s", err)
		s.record(sub, err)
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		err = lib.WrapError(ErrChain, fmt.Errorf("%w: %s", ErrTxReverted, hash.Hex()))
		log.Error(err)
		s.record(sub, err)
		return nil, err
	}

	sub.Confirmed = true
	s.record(sub, nil)

	log.Infof("contract call success, block %s", receipt.BlockNumber)

	res := &SubmitResult{
		ID:      sub.ID,
		TxHash:  hash,
		GasUsed: receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		res.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return res, nil
}

func (s *Session) record(sub Submission, err error) {
	sub.Timestamp = s.clock()
	if err != nil {
		sub.Error = err.Error()
	}
	s.history.Add(sub)
}

// Submissions returns the recent contract writes, most recent last
func (s *Session) Submissions() []Submission {
	return s.history.Items()
}

// ListCampaigns fetches every campaign in one round trip. Without a bound contract it
// returns an empty list and no error.
func (s *Session) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	handle := s.Handle()
	if handle == nil {
		s.log.Warn("contract not available to get campaigns")
		return []Campaign{}, nil
	}

	raw, err := handle.GetCampaigns(ctx)
	if err != nil {
		err = lib.WrapError(ErrChain, err)
		s.log.Errorf("failed to retrieve campaigns: %s", err)
		return []Campaign{}, err
	}

	campaigns := make([]Campaign, len(raw))
	for i := range raw {
		campaigns[i], err = mapCampaign(i, &raw[i])
		if err != nil {
			err = lib.WrapError(ErrChain, err)
			s.log.Errorf("failed to parse campaigns: %s", err)
			return []Campaign{}, err
		}
	}

	return campaigns, nil
}

// ListCampaignsForOwner returns the campaigns whose owner equals address
func (s *Session) ListCampaignsForOwner(ctx context.Context, address string) ([]Campaign, error) {
	all, err := s.ListCampaigns(ctx)
	if err != nil {
		return all, err
	}

	owned := []Campaign{}
	for _, c := range all {
		if c.Owner == address {
			owned = append(owned, c)
		}
	}
	return owned, nil
}

// ListDonations returns donors and their donations of the campaign at index
func (s *Session) ListDonations(ctx context.Context, index int) ([]Donation, error) {
	if index < 0 {
		return nil, lib.WrapError(ErrInvalidInput, fmt.Errorf("negative campaign index %d", index))
	}

	handle := s.Handle()
	if handle == nil {
		s.log.Warn("contract not available to get donations")
		return []Donation{}, nil
	}

	donors, amounts, err := handle.GetDonators(ctx, big.NewInt(int64(index)))
	if err != nil {
		err = lib.WrapError(ErrChain, err)
		s.log.Errorf("failed to retrieve donations: %s", err)
		return []Donation{}, err
	}

	donations, err := mapDonations(index, donors, amounts)
	if err != nil {
		err = lib.WrapError(ErrChain, err)
		s.log.Error(err)
		return []Donation{}, err
	}
	return donations, nil
}

// AutoFetch runs the campaign listing once per session lifetime, as soon as a contract
// is bound. The latch is set only after a successful listing.
func (s *Session) AutoFetch(ctx context.Context) (bool, error) {
	if s.latch.Fetched() {
		return false, nil
	}

	_, readiness, handle := s.state()
	if handle == nil || readiness == ReadinessError {
		if readiness != ReadinessUninitialized {
			s.log.Debug("cannot fetch campaigns yet, contract not available")
		}
		return false, nil
	}

	campaigns, err := s.ListCampaigns(ctx)
	if err != nil {
		return false, err
	}

	s.latch.MarkFetched()
	s.log.Infof("fetched %d campaigns", len(campaigns))
	return true, nil
}
