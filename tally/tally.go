// Package tally aggregates voter weights per proposal.
//
// Ordering is deterministic. Proposals are first seen while walking voters in
// their replay order and each voter's yays in declaration order. Ranking is a
// stable sort by descending total, so equal totals keep that order.
package tally

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/spacemeshos/go-chief/common/types"
)

// Entry is the total weight of a single proposal.
type Entry struct {
	Proposal types.Proposal  `json:"proposal"`
	Total    decimal.Decimal `json:"total"`
}

// Result of a tally.
type Result struct {
	order  []types.Proposal
	totals map[types.Proposal]decimal.Decimal
}

// Tally adds the weight of every voter to each proposal the voter supports.
func Tally(voters []types.Voter) *Result {
	r := &Result{totals: make(map[types.Proposal]decimal.Decimal)}
	for _, voter := range voters {
		for _, p := range voter.Yays {
			total, ok := r.totals[p]
			if !ok {
				r.order = append(r.order, p)
				total = decimal.Zero
			}
			r.totals[p] = total.Add(voter.Weight)
		}
	}
	return r
}

// Ranked returns proposals with a positive total, highest first.
func (r *Result) Ranked() []Entry {
	ranked := make([]Entry, 0, len(r.order))
	for _, p := range r.order {
		if total := r.totals[p]; total.IsPositive() {
			ranked = append(ranked, Entry{Proposal: p, Total: total})
		}
	}
	slices.SortStableFunc(ranked, func(a, b Entry) int {
		return b.Total.Cmp(a.Total)
	})
	return ranked
}

// Total returns the weight behind the proposal, zero if nobody supports it.
func (r *Result) Total(p types.Proposal) decimal.Decimal {
	if total, ok := r.totals[p]; ok {
		return total
	}
	return decimal.Zero
}

// Leader returns the proposal with the highest total.
// ok is false when no proposal has a positive total.
func (r *Result) Leader() (Entry, bool) {
	ranked := r.Ranked()
	if len(ranked) == 0 {
		return Entry{}, false
	}
	return ranked[0], true
}

// VotersFor lists voters with a positive weight that support p, heaviest first.
func VotersFor(p types.Proposal, voters []types.Voter) []types.VoterWeight {
	var supporters []types.VoterWeight
	for i := range voters {
		if !voters[i].Weight.IsPositive() || !voters[i].Supports(p) {
			continue
		}
		supporters = append(supporters, types.VoterWeight{
			Voter:  voters[i].Address,
			Weight: voters[i].Weight,
		})
	}
	slices.SortStableFunc(supporters, func(a, b types.VoterWeight) int {
		return b.Weight.Cmp(a.Weight)
	})
	return supporters
}
