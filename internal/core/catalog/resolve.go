package catalog

import (
	"fmt"
	"strings"

	"github.com/bahikhata/bahikhata/internal/apperrors"
	"github.com/bahikhata/bahikhata/internal/core/domain"
)

// Lookup returns the base category with the given name.
func Lookup(name string) (domain.BaseCategory, error) {
	base, ok := byName[name]
	if !ok {
		return domain.BaseCategory{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownCategory, name)
	}
	return base, nil
}

// Resolve expands a base category with a payment mode into its concrete
// category. The mode is required iff the base category needs one and is
// ignored otherwise.
func Resolve(baseName string, mode domain.PaymentMode) (domain.ConcreteCategory, error) {
	base, err := Lookup(baseName)
	if err != nil {
		return domain.ConcreteCategory{}, err
	}

	if !base.NeedsPaymentMode {
		mode = ""
	} else {
		if mode == "" {
			return domain.ConcreteCategory{}, fmt.Errorf("%w: category %q", apperrors.ErrMissingPaymentMode, baseName)
		}
		if !mode.IsValid() {
			return domain.ConcreteCategory{}, fmt.Errorf("%w: unsupported payment mode %q", apperrors.ErrValidation, mode)
		}
	}

	concrete := domain.ConcreteCategory{
		FullName:        expandName(base, mode),
		BaseName:        base.Name,
		Group:           base.Group,
		Mode:            mode,
		Ledger:          expandLedger(base, mode),
		RelevantTo:      base.RelevantTo,
		PartySign:       base.PartySign,
		ProductSale:     base.ProductSale,
		ProductPurchase: base.ProductPurchase,
	}
	if base.NeedsPaymentMode {
		concrete.Flow = base.FlowByMode[mode]
	} else {
		concrete.Flow = base.Flow
	}
	return concrete, nil
}

// MatchConcrete reverses a stored category display string back to its
// concrete resolution. Every transaction written by the normalizer matches
// exactly one base category; historical strings that no longer match report
// ok=false and must be skipped by projections, never treated as an error.
func MatchConcrete(fullName string) (domain.ConcreteCategory, bool) {
	modes := []domain.PaymentMode{domain.ModeCash, domain.ModeBank, domain.ModeCredit}
	for _, base := range entries {
		if !base.NeedsPaymentMode {
			if expandName(base, "") == fullName {
				c, err := Resolve(base.Name, "")
				return c, err == nil
			}
			continue
		}
		for _, mode := range modes {
			if expandName(base, mode) == fullName {
				c, err := Resolve(base.Name, mode)
				return c, err == nil
			}
		}
	}
	return domain.ConcreteCategory{}, false
}

// ResolveRecorded resolves the category of a stored transaction for
// projection purposes. It prefers the catalog match for the display string;
// when the string no longer matches but the row carries its flow tags, a
// minimal concrete category is synthesized from them (group-less, so it is
// invisible to group filters but still posts to its ledger). Rows with
// neither resolve ok=false and are skipped.
func ResolveRecorded(fullName string, flow domain.FlowKind, effect domain.LedgerEffect) (domain.ConcreteCategory, bool) {
	if c, ok := MatchConcrete(fullName); ok {
		return c, true
	}
	if flow != "" && effect != "" {
		return domain.ConcreteCategory{
			FullName: fullName,
			Flow:     flow,
			Ledger:   effect,
		}, true
	}
	return domain.ConcreteCategory{}, false
}

// expandName substitutes the payment-mode placeholders into the display-name
// pattern. "On Credit" always substitutes literally as "(On Credit)" in the
// destination form; otherwise loan-style categories render "(to Cash)" for
// money arriving into the business and "from Cash" for money leaving it,
// keyed by the group's _in/_out suffix.
func expandName(base domain.BaseCategory, mode domain.PaymentMode) string {
	name := base.NamePattern
	if strings.Contains(name, "{PaymentModeDestination}") {
		var dest string
		switch {
		case mode == domain.ModeCredit:
			dest = "(On Credit)"
		case strings.HasSuffix(base.Group, "_in"):
			dest = fmt.Sprintf("(to %s)", mode)
		default:
			dest = fmt.Sprintf("from %s", mode)
		}
		name = strings.ReplaceAll(name, "{PaymentModeDestination}", dest)
	}
	name = strings.ReplaceAll(name, "{PaymentMode}", string(mode))
	name = strings.ReplaceAll(name, "{PaymentModeLowerCase}", strings.ToLower(string(mode)))
	return name
}

// expandLedger derives the ledger effect from the ledger pattern. Credit
// settlements touch no ledger; categories without a payment mode already
// carry a concrete effect.
func expandLedger(base domain.BaseCategory, mode domain.PaymentMode) domain.LedgerEffect {
	if base.LedgerPattern != "{PaymentModeLowerCase}" {
		return domain.LedgerEffect(base.LedgerPattern)
	}
	switch mode {
	case domain.ModeCash:
		return domain.AffectsCash
	case domain.ModeBank:
		return domain.AffectsBank
	default:
		return domain.AffectsNone
	}
}
