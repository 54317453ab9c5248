package answer

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name              string
		text              string
		wantAnswer        string
		wantJustification string
		wantOutcome       Outcome
	}{
		{
			name:              "both markers in order",
			text:              "**Answer:** Paris is the capital.\n\n**Justification for Tool Selection:** The question was\n general   knowledge.",
			wantAnswer:        "Paris is the capital.",
			wantJustification: "The question was general knowledge.",
			wantOutcome:       OutcomeComplete,
		},
		{
			name:              "preamble before answer marker is dropped",
			text:              "Sure!\n**Answer:** 42\n**Justification for Tool Selection:** Direct.",
			wantAnswer:        "42",
			wantJustification: "Direct.",
			wantOutcome:       OutcomeComplete,
		},
		{
			name:              "markers reversed",
			text:              "**Justification for Tool Selection:** Needed search.\n**Answer:** It rained.",
			wantAnswer:        "It rained.",
			wantJustification: "Needed search.",
			wantOutcome:       OutcomeComplete,
		},
		{
			name:              "empty justification after marker",
			text:              "**Answer:** yes\n**Justification for Tool Selection:**   ",
			wantAnswer:        "yes",
			wantJustification: "",
			wantOutcome:       OutcomeComplete,
		},
		{
			name:              "only answer marker",
			text:              "**Answer:**\n  The summary is ready.  ",
			wantAnswer:        "The summary is ready.",
			wantJustification: JustificationUnclear,
			wantOutcome:       OutcomeMissingJustification,
		},
		{
			name:              "only justification marker keeps the whole reply",
			text:              "Here is the answer.\n**Justification for Tool Selection:** Used the documents.\n",
			wantAnswer:        "Here is the answer.\n**Justification for Tool Selection:** Used the documents.",
			wantJustification: JustificationUndetermined,
			wantOutcome:       OutcomeUnparsed,
		},
		{
			name:              "no markers",
			text:              "  Plain reply.\n",
			wantAnswer:        "Plain reply.",
			wantJustification: JustificationUndetermined,
			wantOutcome:       OutcomeUnparsed,
		},
		{
			name:              "repeated answer marker is stripped",
			text:              "**Answer:** one **Answer:** two\n**Justification for Tool Selection:** because",
			wantAnswer:        "one  two",
			wantJustification: "because",
			wantOutcome:       OutcomeComplete,
		},
		{
			name:              "empty text",
			text:              "",
			wantAnswer:        "",
			wantJustification: JustificationUndetermined,
			wantOutcome:       OutcomeUnparsed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			if got.Answer != tt.wantAnswer {
				t.Errorf("Answer = %q, want %q", got.Answer, tt.wantAnswer)
			}
			if got.Justification != tt.wantJustification {
				t.Errorf("Justification = %q, want %q", got.Justification, tt.wantJustification)
			}
			if got.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %s, want %s", got.Outcome, tt.wantOutcome)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	want := map[Outcome]string{
		OutcomeComplete:             "complete",
		OutcomeMissingJustification: "missing_justification",
		OutcomeUnparsed:             "unparsed",
	}
	for o, s := range want {
		if o.String() != s {
			t.Errorf("%d.String() = %q, want %q", o, o.String(), s)
		}
	}
}
