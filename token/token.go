package token

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// USDCDecimals is the fixed decimal exponent of USDC on every supported chain
const USDCDecimals = 6

// Asset describes an ERC20 token that can be deposited through the minter helper
type Asset struct {
	Symbol   string
	Address  common.Address
	ChainID  uint64
	Decimals int32
}

var (
	// SepoliaUSDC is the USDC deployment on Sepolia, minted as ckSepoliaUSDC
	SepoliaUSDC = Asset{
		Symbol:   "ckSepoliaUSDC",
		Address:  common.HexToAddress("0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"),
		ChainID:  11155111, //nolint:gomnd
		Decimals: USDCDecimals,
	}
	// MainnetUSDC is the USDC deployment on Ethereum mainnet, minted as ckUSDC
	MainnetUSDC = Asset{
		Symbol:   "ckUSDC",
		Address:  common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"),
		ChainID:  1,
		Decimals: USDCDecimals,
	}
)

var assets = []Asset{SepoliaUSDC, MainnetUSDC}

// Lookup returns the known asset with the given symbol (case insensitive)
func Lookup(symbol string) (Asset, bool) {
	for _, a := range assets {
		if strings.EqualFold(a.Symbol, symbol) {
			return a, true
		}
	}
	return Asset{}, false
}

// ToBaseUnits converts a human decimal amount into the asset smallest unit.
func (a Asset) ToBaseUnits(raw string) *big.Int {
	return ToBaseUnits(raw, a.Decimals)
}

// Format renders a base units amount as a human decimal string.
func (a Asset) Format(amount *big.Int) string {
	return FromBaseUnits(amount, a.Decimals).String()
}

// ToBaseUnits converts a human decimal amount (e.g. "100.5") into base units by
// multiplying by 10^decimals and truncating the remaining fraction.
// Non numeric, negative and out of uint256 range input is normalized to 0.
func ToBaseUnits(raw string, decimals int32) *big.Int {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return big.NewInt(0)
	}
	return shiftAndTruncate(d, decimals)
}

// FromBaseUnits converts a base units amount back into its decimal value.
func FromBaseUnits(amount *big.Int, decimals int32) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, -decimals)
}

// maxDigits is the number of decimal digits of 2^256-1
const maxDigits = 78

func shiftAndTruncate(d decimal.Decimal, decimals int32) *big.Int {
	if d.Sign() <= 0 {
		return big.NewInt(0)
	}
	// digits left of the point once shifted, checked before anything is expanded
	intDigits := int64(d.NumDigits()) + int64(d.Exponent()) + int64(decimals)
	if intDigits <= 0 || intDigits > maxDigits {
		return big.NewInt(0)
	}
	v := d.Shift(decimals).Truncate(0).BigInt()
	if v.BitLen() > 256 { //nolint:gomnd
		return big.NewInt(0)
	}
	return v
}
