package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RecalcResult reports the outcome of a balance recalculation.
// OverAmortized flags corrupt upstream data: the amortized sums exceeded
// the principal and the running balance had to be clamped at zero. Callers
// must surface it, not absorb it.
type RecalcResult struct {
	OutstandingBalance decimal.Decimal
	OverAmortized      bool
}

// RecalculateBalances re-derives the loan's aggregate outstanding balance
// and the per-installment prior/new running-balance ledger from scratch.
//
// This is a full rederivation, not an incremental patch, so it self-heals
// from any prior inconsistency: calling it twice with no intervening
// payment yields identical output. Both the loan and the installments are
// mutated in place.
func RecalculateBalances(loan *LoanAccount, installments []*Installment) RecalcResult {
	sort.SliceStable(installments, func(a, b int) bool {
		return installments[a].SequenceNumber < installments[b].SequenceNumber
	})

	outstanding := decimal.Zero
	for _, inst := range installments {
		if inst.State == InstallmentPaid {
			continue
		}

		outstanding = outstanding.Add(inst.DueAmount)
	}

	outstanding = RoundMoney(outstanding)

	running := loan.Principal
	overAmortized := false

	for _, inst := range installments {
		prior := RoundMoney(running)
		if prior.IsNegative() {
			prior = decimal.Zero
		}

		running = RoundMoney(running.Sub(inst.AmortizedPrincipal))
		if running.IsNegative() {
			overAmortized = true
		}

		newBalance := running
		if newBalance.IsNegative() {
			newBalance = decimal.Zero
		}

		inst.PriorBalance = prior
		inst.NewBalance = newBalance
	}

	loan.OutstandingBalance = outstanding

	return RecalcResult{
		OutstandingBalance: outstanding,
		OverAmortized:      overAmortized,
	}
}
