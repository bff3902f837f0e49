package token

import "github.com/phantasma-io/phantasma-go-sdk/wire"

// checkedMul multiplies two uint64 values, failing with NumericDomain on
// overflow rather than silently wrapping.
func checkedMul(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	result := a * b
	if result/a != b {
		return 0, wire.Newf(wire.KindNumericDomain, "gas fee multiplication overflow: %d * %d", a, b)
	}
	return result, nil
}

func checkedAdd(a, b uint64) (uint64, error) {
	result := a + b
	if result < a {
		return 0, wire.Newf(wire.KindNumericDomain, "gas fee addition overflow: %d + %d", a, b)
	}
	return result, nil
}

// GenericFee computes max_gas = gas_fee_base * multiplier.
func GenericFee(gasFeeBase, multiplier uint64) (uint64, error) {
	return checkedMul(gasFeeBase, multiplier)
}

// CreateTokenFee computes
// max_gas = (gas_fee_base + gas_fee_create_token_base + (gas_fee_create_token_symbol >> max(0, symbol_len - 1))) * multiplier.
func CreateTokenFee(gasFeeBase, gasFeeCreateTokenBase, gasFeeCreateTokenSymbol uint64, symbolLen int, multiplier uint64) (uint64, error) {
	shift := symbolLen - 1
	if shift < 0 {
		shift = 0
	}
	symbolTerm := gasFeeCreateTokenSymbol
	if shift > 0 {
		symbolTerm = gasFeeCreateTokenSymbol >> uint(shift)
	}
	sum, err := checkedAdd(gasFeeBase, gasFeeCreateTokenBase)
	if err != nil {
		return 0, err
	}
	sum, err = checkedAdd(sum, symbolTerm)
	if err != nil {
		return 0, err
	}
	return checkedMul(sum, multiplier)
}

// CreateSeriesFee computes max_gas = (gas_fee_base + gas_fee_create_series_base) * multiplier.
func CreateSeriesFee(gasFeeBase, gasFeeCreateSeriesBase, multiplier uint64) (uint64, error) {
	sum, err := checkedAdd(gasFeeBase, gasFeeCreateSeriesBase)
	if err != nil {
		return 0, err
	}
	return checkedMul(sum, multiplier)
}
