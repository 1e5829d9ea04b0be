package contract

import (
	"math/bits"

	"flightcover/errcode"
	"flightcover/model"
)

// Authorization and invariant checks. Each returns nil or the typed error the
// caller receives; none of them touch the ledger.

const bpsDenominator = 10_000

func requireNotPaused(cfg *model.ProtocolConfig) error {
	if cfg.Paused {
		return errcode.New(errcode.ProtocolPaused, "protocol is paused")
	}
	return nil
}

func requireAdmin(cfg *model.ProtocolConfig, caller string) error {
	if caller != cfg.Admin {
		return errcode.New(errcode.Unauthorized, "caller '%s' is not the protocol admin", caller)
	}
	return nil
}

func requirePositive(amount uint64) error {
	if amount == 0 {
		return errcode.New(errcode.InvalidAmount, "amount must be greater than zero")
	}
	return nil
}

func requireWithinDeposit(lp *model.LiquidityProviderAccount, amount uint64) error {
	if amount > lp.ActiveDeposit {
		return errcode.New(errcode.InvalidAmount, "amount %d exceeds active deposit %d of '%s'", amount, lp.ActiveDeposit, lp.Provider)
	}
	return nil
}

func requireProductActive(p *model.Product) error {
	if !p.Active {
		return errcode.New(errcode.ProductInactive, "product %d is not active", p.ID)
	}
	return nil
}

func requirePolicyActive(p *model.Policy) error {
	if p.Status != model.PolicyActive {
		return errcode.New(errcode.PolicyNotActive, "policy %d is %s", p.ID, p.Status)
	}
	return nil
}

func requireDelayThreshold(p *model.Product, delayMinutes uint32) error {
	if delayMinutes < p.DelayThresholdMinutes {
		return errcode.New(errcode.DelayThresholdNotMet, "delay of %d minutes is below the %d minute threshold of product %d", delayMinutes, p.DelayThresholdMinutes, p.ID)
	}
	return nil
}

// requiredPremium is floor(coverage * bps / 10000) computed over 128 bits.
func requiredPremium(coverage uint64, bps uint16) (uint64, error) {
	hi, lo := bits.Mul64(coverage, uint64(bps))
	if hi >= bpsDenominator {
		return 0, errcode.New(errcode.InvalidAmount, "premium for coverage %d at %d bps overflows", coverage, bps)
	}
	q, _ := bits.Div64(hi, lo, bpsDenominator)
	return q, nil
}

func requireSufficientPremium(p *model.Product, paid uint64) error {
	required, err := requiredPremium(p.CoverageAmount, p.PremiumRateBps)
	if err != nil {
		return err
	}
	if paid < required {
		return errcode.New(errcode.InsufficientPremium, "premium %d is below the required %d", paid, required)
	}
	return nil
}

func requireAddressMatch(what, expected, got string) error {
	if expected != got {
		return errcode.New(errcode.Unauthorized, "%s address mismatch: expected '%s', got '%s'", what, expected, got)
	}
	return nil
}
