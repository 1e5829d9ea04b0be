package contract

import (
	"fmt"
	"math/bits"
	"strings"
	"unicode/utf8"

	"flightcover/errcode"
)

func validateRequiredString(input, field string, max int) error {
	if strings.TrimSpace(input) == "" {
		return errcode.New(errcode.InvalidArgument, "%s cannot be empty", field)
	}
	if len(input) > max {
		return errcode.New(errcode.InvalidArgument, "%s exceeds max length %d", field, max)
	}
	return nil
}

func validateOptionalString(input, field string, max int) error {
	if len(input) > max {
		return errcode.New(errcode.InvalidArgument, "%s exceeds max length %d", field, max)
	}
	return nil
}

// addChecked returns a+b or InvalidAmount when the sum overflows.
func addChecked(a, b uint64, field string) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errcode.New(errcode.InvalidAmount, "%s would overflow", field)
	}
	return sum, nil
}

// proofTokenName names a proof token after its policy and flight, cut to the
// registry's name limit without splitting a UTF-8 sequence.
func proofTokenName(policyID uint64, flightNumber string) string {
	name := fmt.Sprintf("%s %d %s", proofTokenNamePrefix, policyID, flightNumber)
	if len(name) <= maxMetadataNameLength {
		return name
	}
	cut := maxMetadataNameLength
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}
