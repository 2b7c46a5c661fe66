// Package crowdfunding is a go-ethereum binding of the CrowdFunding contract.
// It follows the shape of abigen output, the ABI is embedded as a JSON string.
package crowdfunding

import (
	"errors"
	"math/big"
	"strings"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Reference imports to suppress errors if they are not otherwise used.
var (
	_ = errors.New
	_ = big.NewInt
	_ = strings.NewReader
	_ = ethereum.NotFound
	_ = bind.Bind
	_ = common.Big1
	_ = types.BloomLookup
)

// CrowdFundingCampaign is an auto generated low-level Go binding around an user-defined struct.
type CrowdFundingCampaign struct {
	Owner           common.Address
	Title           string
	Description     string
	Target          *big.Int
	Deadline        *big.Int
	AmountCollected *big.Int
	Image           string
	Donators        []common.Address
	Donations       []*big.Int
}

// CrowdfundingMetaData contains all meta data concerning the Crowdfunding contract.
var CrowdfundingMetaData = &bind.MetaData{
	ABI: "[{\"inputs\":[{\"internalType\":\"uint256\",\"name\":\"\",\"type\":\"uint256\"}],\"name\":\"campaigns\",\"outputs\":[{\"internalType\":\"address\",\"name\":\"owner\",\"type\":\"address\"},{\"internalType\":\"string\",\"name\":\"title\",\"type\":\"string\"},{\"internalType\":\"string\",\"name\":\"description\",\"type\":\"string\"},{\"internalType\":\"uint256\",\"name\":\"target\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"deadline\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"amountCollected\",\"type\":\"uint256\"},{\"internalType\":\"string\",\"name\":\"image\",\"type\":\"string\"}],\"stateMutability\":\"view\",\"type\":\"function\"}," +
		"{\"inputs\":[{\"internalType\":\"address\",\"name\":\"_owner\",\"type\":\"address\"},{\"internalType\":\"string\",\"name\":\"_title\",\"type\":\"string\"},{\"internalType\":\"string\",\"name\":\"_description\",\"type\":\"string\"},{\"internalType\":\"uint256\",\"name\":\"_target\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"_deadline\",\"type\":\"uint256\"},{\"internalType\":\"string\",\"name\":\"_image\",\"type\":\"string\"}],\"name\":\"createCampaign\",\"outputs\":[{\"internalType\":\"uint256\",\"name\":\"\",\"type\":\"uint256\"}],\"stateMutability\":\"nonpayable\",\"type\":\"function\"}," +
		"{\"inputs\":[{\"internalType\":\"uint256\",\"name\":\"_id\",\"type\":\"uint256\"}],\"name\":\"donateToCampaign\",\"outputs\":[],\"stateMutability\":\"payable\",\"type\":\"function\"}," +
		"{\"inputs\":[],\"name\":\"getCampaigns\",\"outputs\":[{\"components\":[{\"internalType\":\"address\",\"name\":\"owner\",\"type\":\"address\"},{\"internalType\":\"string\",\"name\":\"title\",\"type\":\"string\"},{\"internalType\":\"string\",\"name\":\"description\",\"type\":\"string\"},{\"internalType\":\"uint256\",\"name\":\"target\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"deadline\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"amountCollected\",\"type\":\"uint256\"},{\"internalType\":\"string\",\"name\":\"image\",\"type\":\"string\"},{\"internalType\":\"address[]\",\"name\":\"donators\",\"type\":\"address[]\"},{\"internalType\":\"uint256[]\",\"name\":\"donations\",\"type\":\"uint256[]\"}],\"internalType\":\"struct CrowdFunding.Campaign[]\",\"name\":\"\",\"type\":\"tuple[]\"}],\"stateMutability\":\"view\",\"type\":\"function\"}," +
		"{\"inputs\":[{\"internalType\":\"uint256\",\"name\":\"_id\",\"type\":\"uint256\"}],\"name\":\"getDonators\",\"outputs\":[{\"internalType\":\"address[]\",\"name\":\"\",\"type\":\"address[]\"},{\"internalType\":\"uint256[]\",\"name\":\"\",\"type\":\"uint256[]\"}],\"stateMutability\":\"view\",\"type\":\"function\"}," +
		"{\"inputs\":[],\"name\":\"numberOfCampaigns\",\"outputs\":[{\"internalType\":\"uint256\",\"name\":\"\",\"type\":\"uint256\"}],\"stateMutability\":\"view\",\"type\":\"function\"}]",
}

// CrowdfundingABI is the input ABI used to generate the binding from.
// Deprecated: Use CrowdfundingMetaData.ABI instead.
var CrowdfundingABI = CrowdfundingMetaData.ABI

// Crowdfunding is an auto generated Go binding around an Ethereum contract.
type Crowdfunding struct {
	CrowdfundingCaller     // Read-only binding to the contract
	CrowdfundingTransactor // Write-only binding to the contract
}

// CrowdfundingCaller is an auto generated read-only Go binding around an Ethereum contract.
type CrowdfundingCaller struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// CrowdfundingTransactor is an auto generated write-only Go binding around an Ethereum contract.
type CrowdfundingTransactor struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// NewCrowdfunding creates a new instance of Crowdfunding, bound to a specific deployed contract.
func NewCrowdfunding(address common.Address, backend bind.ContractBackend) (*Crowdfunding, error) {
	parsed, err := CrowdfundingMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, errors.New("GetABI returned nil")
	}
	return NewCrowdfundingWithABI(address, *parsed, backend)
}

// NewCrowdfundingWithABI binds a deployed contract using a caller supplied interface definition.
// The definition must at least describe the methods the caller is going to use.
func NewCrowdfundingWithABI(address common.Address, parsed abi.ABI, backend bind.ContractBackend) (*Crowdfunding, error) {
	contract := bind.NewBoundContract(address, parsed, backend, backend, backend)
	return &Crowdfunding{
		CrowdfundingCaller:     CrowdfundingCaller{contract: contract},
		CrowdfundingTransactor: CrowdfundingTransactor{contract: contract},
	}, nil
}

// Campaigns is a free data retrieval call binding the contract method.
//
// Solidity: function campaigns(uint256 ) view returns(address owner, string title, string description, uint256 target, uint256 deadline, uint256 amountCollected, string image)
func (_Crowdfunding *CrowdfundingCaller) Campaigns(opts *bind.CallOpts, arg0 *big.Int) (struct {
	Owner           common.Address
	Title           string
	Description     string
	Target          *big.Int
	Deadline        *big.Int
	AmountCollected *big.Int
	Image           string
}, error) {
	var out []interface{}
	err := _Crowdfunding.contract.Call(opts, &out, "campaigns", arg0)

	outstruct := new(struct {
		Owner           common.Address
		Title           string
		Description     string
		Target          *big.Int
		Deadline        *big.Int
		AmountCollected *big.Int
		Image           string
	})
	if err != nil {
		return *outstruct, err
	}

	outstruct.Owner = *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	outstruct.Title = *abi.ConvertType(out[1], new(string)).(*string)
	outstruct.Description = *abi.ConvertType(out[2], new(string)).(*string)
	outstruct.Target = *abi.ConvertType(out[3], new(*big.Int)).(**big.Int)
	outstruct.Deadline = *abi.ConvertType(out[4], new(*big.Int)).(**big.Int)
	outstruct.AmountCollected = *abi.ConvertType(out[5], new(*big.Int)).(**big.Int)
	outstruct.Image = *abi.ConvertType(out[6], new(string)).(*string)

	return *outstruct, err
}

// GetCampaigns is a free data retrieval call binding the contract method.
//
// Solidity: function getCampaigns() view returns((address,string,string,uint256,uint256,uint256,string,address[],uint256[])[])
func (_Crowdfunding *CrowdfundingCaller) GetCampaigns(opts *bind.CallOpts) ([]CrowdFundingCampaign, error) {
	var out []interface{}
	err := _Crowdfunding.contract.Call(opts, &out, "getCampaigns")

	if err != nil {
		return *new([]CrowdFundingCampaign), err
	}

	out0 := *abi.ConvertType(out[0], new([]CrowdFundingCampaign)).(*[]CrowdFundingCampaign)

	return out0, err
}

// GetDonators is a free data retrieval call binding the contract method.
//
// Solidity: function getDonators(uint256 _id) view returns(address[], uint256[])
func (_Crowdfunding *CrowdfundingCaller) GetDonators(opts *bind.CallOpts, _id *big.Int) ([]common.Address, []*big.Int, error) {
	var out []interface{}
	err := _Crowdfunding.contract.Call(opts, &out, "getDonators", _id)

	if err != nil {
		return *new([]common.Address), *new([]*big.Int), err
	}

	out0 := *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address)
	out1 := *abi.ConvertType(out[1], new([]*big.Int)).(*[]*big.Int)

	return out0, out1, err
}

// NumberOfCampaigns is a free data retrieval call binding the contract method.
//
// Solidity: function numberOfCampaigns() view returns(uint256)
func (_Crowdfunding *CrowdfundingCaller) NumberOfCampaigns(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	err := _Crowdfunding.contract.Call(opts, &out, "numberOfCampaigns")

	if err != nil {
		return *new(*big.Int), err
	}

	out0 := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)

	return out0, err
}

// CreateCampaign is a paid mutator transaction binding the contract method.
//
// Solidity: function createCampaign(address _owner, string _title, string _description, uint256 _target, uint256 _deadline, string _image) returns(uint256)
func (_Crowdfunding *CrowdfundingTransactor) CreateCampaign(opts *bind.TransactOpts, _owner common.Address, _title string, _description string, _target *big.Int, _deadline *big.Int, _image string) (*types.Transaction, error) {
	return _Crowdfunding.contract.Transact(opts, "createCampaign", _owner, _title, _description, _target, _deadline, _image)
}

// DonateToCampaign is a paid mutator transaction binding the contract method.
//
// Solidity: function donateToCampaign(uint256 _id) payable returns()
func (_Crowdfunding *CrowdfundingTransactor) DonateToCampaign(opts *bind.TransactOpts, _id *big.Int) (*types.Transaction, error) {
	return _Crowdfunding.contract.Transact(opts, "donateToCampaign", _id)
}
