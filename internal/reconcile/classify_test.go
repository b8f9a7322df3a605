package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier("中興")

	tests := []struct {
		name string
		code string
		want LinkType
	}{
		{name: "company prefix", code: "中興字第1130001號", want: CompanyOutgoing},
		{name: "agency code", code: "府地測字第1130042號", want: AgencyIncoming},
		{name: "empty code", code: "", want: AgencyIncoming},
		{name: "prefix in the middle does not count", code: "轉中興字第1130001號", want: AgencyIncoming},
		{name: "prefix alone", code: "中興", want: CompanyOutgoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.code))
		})
	}
}

func TestClassifier_InjectedPrefix(t *testing.T) {
	// the prefix is configuration, not a literal: the same code classifies
	// differently under a different organization
	code := "ACME-2024-0001"

	assert.Equal(t, CompanyOutgoing, NewClassifier("ACME").Classify(code))
	assert.Equal(t, AgencyIncoming, NewClassifier("中興").Classify(code))
}

func TestClassifier_EmptyPrefixNeverMatches(t *testing.T) {
	classifier := NewClassifier("")

	assert.Equal(t, AgencyIncoming, classifier.Classify("anything"))
	assert.Equal(t, AgencyIncoming, classifier.Classify(""))
}

func TestLinkType_Direction(t *testing.T) {
	assert.Equal(t, DirectionOutgoing, CompanyOutgoing.Direction())
	assert.Equal(t, DirectionIncoming, AgencyIncoming.Direction())
}
