package session

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"gitlab.com/TitanInd/crowdfunding/internal/lib"
	"gitlab.com/TitanInd/crowdfunding/internal/repositories/contracts/crowdfunding"
)

var validate = validator.New()

// Campaign is a display-ready view of an on-chain campaign. Index is the position in the
// list returned by the contract, which is also the id donateToCampaign expects.
type Campaign struct {
	Index           int      `json:"pId"`
	Owner           string   `json:"owner"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Target          string   `json:"target"`
	Deadline        int64    `json:"deadline"` // epoch milliseconds
	AmountCollected string   `json:"amountCollected"`
	ImageURL        string   `json:"image"`
	Donors          []string `json:"donators"`
	Donations       []string `json:"donations"`
}

type Donation struct {
	Donor  string `json:"donator"`
	Amount string `json:"donation"`
}

type CampaignForm struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Target      string    `json:"target"      validate:"required"`
	Deadline    time.Time `json:"deadline"    validate:"required"`
	Image       string    `json:"image"`
}

type campaignArgs struct {
	target   *big.Int
	deadline *big.Int
}

// prepare validates the form and converts it into contract arguments
func (f *CampaignForm) prepare(now time.Time) (*campaignArgs, error) {
	err := validate.Struct(f)
	if err != nil {
		return nil, lib.WrapError(ErrInvalidInput, err)
	}

	target, err := lib.ParseEther(f.Target)
	if err != nil {
		return nil, lib.WrapError(ErrInvalidInput, err)
	}
	if target.Sign() <= 0 {
		return nil, lib.WrapError(ErrInvalidInput, fmt.Errorf("target must be positive, got %s", f.Target))
	}

	deadlineSeconds := f.Deadline.Unix()
	if deadlineSeconds <= now.Unix() {
		return nil, lib.WrapError(ErrInvalidInput, ErrDeadlineNotFuture)
	}

	return &campaignArgs{
		target:   target,
		deadline: big.NewInt(deadlineSeconds),
	}, nil
}

func mapCampaign(index int, raw *crowdfunding.CrowdFundingCampaign) (Campaign, error) {
	if len(raw.Donators) != len(raw.Donations) {
		return Campaign{}, lib.WrapError(ErrMalformedRecord, fmt.Errorf("campaign %d: %d donators, %d donations", index, len(raw.Donators), len(raw.Donations)))
	}

	donations := make([]string, len(raw.Donations))
	for i, d := range raw.Donations {
		donations[i] = lib.FormatEther(d)
	}

	var deadline int64
	if raw.Deadline != nil {
		if !raw.Deadline.IsInt64() || raw.Deadline.Sign() < 0 || raw.Deadline.Int64() > math.MaxInt64/1000 {
			return Campaign{}, lib.WrapError(ErrMalformedRecord, fmt.Errorf("campaign %d: deadline %s out of range", index, raw.Deadline))
		}
		deadline = raw.Deadline.Int64() * 1000
	}

	return Campaign{
		Index:           index,
		Owner:           raw.Owner.Hex(),
		Title:           raw.Title,
		Description:     raw.Description,
		Target:          lib.FormatEther(raw.Target),
		Deadline:        deadline,
		AmountCollected: lib.FormatEther(raw.AmountCollected),
		ImageURL:        raw.Image,
		Donors:          addressesToHex(raw.Donators),
		Donations:       donations,
	}, nil
}

func mapDonations(index int, donors []common.Address, amounts []*big.Int) ([]Donation, error) {
	if len(donors) != len(amounts) {
		return nil, lib.WrapError(ErrMalformedRecord, fmt.Errorf("campaign %d: %d donators, %d donations", index, len(donors), len(amounts)))
	}

	res := make([]Donation, len(donors))
	for i := range donors {
		res[i] = Donation{
			Donor:  donors[i].Hex(),
			Amount: lib.FormatEther(amounts[i]),
		}
	}
	return res, nil
}

func addressesToHex(addrs []common.Address) []string {
	res := make([]string, len(addrs))
	for i, a := range addrs {
		res[i] = a.Hex()
	}
	return res
}
