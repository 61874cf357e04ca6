// Package report renders the result of a run for operators.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/spacemeshos/go-chief/chief"
	"github.com/spacemeshos/go-chief/common/types"
	"github.com/spacemeshos/go-chief/trigger"
)

var (
	hatColor     = color.New(color.FgGreen, color.Bold)
	pendingColor = color.New(color.FgCyan, color.Bold)
	castColor    = color.New(color.FgYellow, color.Bold)
	unknownColor = color.New(color.FgRed, color.Bold)
	pendingSpell = color.New(color.FgCyan)
	castSpell    = color.New(color.FgYellow)
	actionColor  = color.New(color.FgMagenta)
	plainColor   = color.New()
	skippedColor = color.New(color.Faint)
)

// Text writes one block per ranked proposal: the proposal with its total,
// its spell if known and its supporters. Actions taken are listed last.
func Text(w io.Writer, r *chief.Report) error {
	for i, entry := range r.Ranked {
		spell, known := r.Classifications[entry.Proposal]
		headline := unknownColor
		switch {
		case entry.Proposal == r.Hat:
			headline = hatColor
		case known && spell.Executed:
			headline = castColor
		case known:
			headline = pendingColor
		}
		if _, err := headline.Fprintf(w, "%d. %s %s\n", i+1, entry.Proposal.Hex(), entry.Total); err != nil {
			return err
		}
		if known {
			if err := writeSpell(w, spell); err != nil {
				return err
			}
		}
		for _, voter := range r.Voters[entry.Proposal] {
			if _, err := plainColor.Fprintf(w, "  %s %s\n", voter.Voter.Hex(), voter.Weight); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return writeOutcome(w, r.Outcome)
}

func writeSpell(w io.Writer, spell types.Classification) error {
	state, c := "can cast", pendingSpell
	if spell.Executed {
		state, c = "already cast", castSpell
	}
	var err error
	if spell.Recognized() {
		_, err = c.Fprintf(w, "spell(%s): %s %s %v\n", state, spell.Name, spell.Description, spell.Args)
	} else {
		_, err = c.Fprintf(w, "spell(%s)\n", state)
	}
	return err
}

func writeOutcome(w io.Writer, outcome trigger.Outcome) error {
	if r := outcome.Promoted; r != nil {
		if _, err := actionColor.Fprintf(w, "chief.lift(%s) %s: lifted in block %d\n", r.Proposal.Hex(), r.Tx.Hex(), r.Block); err != nil {
			return err
		}
	}
	if r := outcome.Executed; r != nil {
		if _, err := actionColor.Fprintf(w, "spell.cast() %s: %s cast in block %d\n", r.Tx.Hex(), r.Proposal.Hex(), r.Block); err != nil {
			return err
		}
	}
	for _, action := range outcome.Skipped {
		var proposal *types.Proposal
		switch action {
		case trigger.ActionPromote:
			proposal = outcome.Plan.Promote
		case trigger.ActionExecute:
			proposal = outcome.Plan.Execute
		}
		if proposal == nil {
			continue
		}
		if _, err := skippedColor.Fprintf(w, "%s %s skipped: not authorized\n", action, proposal.Hex()); err != nil {
			return err
		}
	}
	return nil
}

type jsonProposal struct {
	Total  decimal.Decimal                    `json:"total"`
	Voters map[common.Address]decimal.Decimal `json:"voters"`
	Spell  *types.Classification              `json:"spell"`
}

type jsonReport struct {
	Hat       common.Address                  `json:"hat"`
	Ranked    []common.Address                `json:"ranked"`
	Proposals map[common.Address]jsonProposal `json:"proposals"`
	Outcome   trigger.Outcome                 `json:"outcome"`
}

// JSON writes the report as an indented json document keyed by proposal.
func JSON(w io.Writer, r *chief.Report) error {
	out := jsonReport{
		Hat:       r.Hat,
		Ranked:    make([]common.Address, 0, len(r.Ranked)),
		Proposals: make(map[common.Address]jsonProposal, len(r.Ranked)),
		Outcome:   r.Outcome,
	}
	for _, entry := range r.Ranked {
		p := jsonProposal{
			Total:  entry.Total,
			Voters: make(map[common.Address]decimal.Decimal, len(r.Voters[entry.Proposal])),
		}
		for _, voter := range r.Voters[entry.Proposal] {
			p.Voters[voter.Voter] = voter.Weight
		}
		if spell, ok := r.Classifications[entry.Proposal]; ok {
			p.Spell = &spell
		}
		out.Ranked = append(out.Ranked, entry.Proposal)
		out.Proposals[entry.Proposal] = p
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
