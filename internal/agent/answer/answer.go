// Package answer splits a finalized model reply into the user-facing
// answer and the justification for the routing decision.
package answer

import "strings"

const (
	AnswerMarker        = "**Answer:**"
	JustificationMarker = "**Justification for Tool Selection:**"

	// Fallback justifications when the reply does not follow the format.
	JustificationUnclear      = "Justification could not be clearly extracted."
	JustificationUndetermined = "Justification could not be determined."
)

// Outcome records which branch of the parser produced the result.
type Outcome int

const (
	OutcomeComplete Outcome = iota
	OutcomeMissingJustification
	OutcomeUnparsed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomeMissingJustification:
		return "missing_justification"
	default:
		return "unparsed"
	}
}

// Parsed is the split reply.
type Parsed struct {
	Answer        string
	Justification string
	Outcome       Outcome
}

// Parse splits text on the answer and justification markers.
// It never fails: a reply without the answer marker is returned whole as
// the answer, even when it carries a justification marker.
func Parse(text string) Parsed {
	answerIdx := strings.Index(text, AnswerMarker)
	justIdx := strings.Index(text, JustificationMarker)

	var p Parsed
	switch {
	case answerIdx >= 0 && justIdx >= 0:
		p.Outcome = OutcomeComplete
		if answerIdx < justIdx {
			p.Answer = text[answerIdx+len(AnswerMarker) : justIdx]
			p.Justification = text[justIdx+len(JustificationMarker):]
		} else {
			p.Answer = text[answerIdx+len(AnswerMarker):]
			p.Justification = text[justIdx+len(JustificationMarker) : answerIdx]
		}
	case answerIdx >= 0:
		p.Outcome = OutcomeMissingJustification
		p.Answer = text[answerIdx+len(AnswerMarker):]
		p.Justification = JustificationUnclear
	default:
		return Parsed{
			Answer:        strings.TrimSpace(text),
			Justification: JustificationUndetermined,
			Outcome:       OutcomeUnparsed,
		}
	}

	p.Answer = strings.TrimSpace(stripMarkers(p.Answer))
	p.Justification = strings.Join(strings.Fields(stripMarkers(p.Justification)), " ")
	return p
}

func stripMarkers(s string) string {
	s = strings.ReplaceAll(s, AnswerMarker, "")
	return strings.ReplaceAll(s, JustificationMarker, "")
}
