package etherman

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	methodApprove = "approve"
	methodDeposit = "deposit"
)

// erc20ABI only holds the methods used by the deposit flow
const erc20ABI = `[
	{
		"constant": false,
		"inputs": [
			{"name": "_spender", "type": "address"},
			{"name": "_value", "type": "uint256"}
		],
		"name": "approve",
		"outputs": [{"name": "", "type": "bool"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [
			{"name": "_owner", "type": "address"},
			{"name": "_spender", "type": "address"}
		],
		"name": "allowance",
		"outputs": [{"name": "", "type": "uint256"}],
		"type": "function"
	}
]`

// minterHelperABI is the deposit entry point of the ckERC20 minter helper contract
const minterHelperABI = `[
	{
		"inputs": [
			{"internalType": "address", "name": "erc20_address", "type": "address"},
			{"internalType": "uint256", "name": "amount", "type": "uint256"},
			{"internalType": "bytes32", "name": "principal", "type": "bytes32"}
		],
		"name": "deposit",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

var (
	erc20Parsed        = mustParseABI(erc20ABI)
	minterHelperParsed = mustParseABI(minterHelperABI)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}
