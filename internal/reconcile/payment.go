package reconcile

import (
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/emrgen/dispatch/internal/model"
)

// A category label is only valid when it starts with one of the seven
// two-digit payment codes followed by a period, e.g. "01.地上物查估作業".
var paymentCodePattern = regexp.MustCompile(`^0[1-7]\.`)

// ParsePaymentCodes extracts the two-digit category codes from free-text
// category labels. Labels may arrive as one comma-delimited string or as the
// multi-select list form; both are accepted through the variadic parameter.
// Codes come back in first-encounter order without duplicates; labels that do
// not carry a valid code prefix are skipped, never an error.
func ParsePaymentCodes(labels ...string) []string {
	codes := make([]string, 0, len(labels))
	seen := mapset.NewThreadUnsafeSet[string]()

	for _, label := range labels {
		for _, part := range splitLabels(label) {
			part = strings.TrimSpace(part)
			if !paymentCodePattern.MatchString(part) {
				continue
			}
			code := part[:2]
			if seen.Add(code) {
				codes = append(codes, code)
			}
		}
	}

	return codes
}

func splitLabels(s string) []string {
	// the multi-select form writes "," while older rows carry the fullwidth
	// comma inside one string
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '、' || r == '，'
	})
}

// PaymentAdvisory flags a payment amount recorded under a category code the
// dispatch order's category set does not contain. Advisories annotate, they
// never block a save.
type PaymentAdvisory struct {
	Code   string
	Amount int64
}

// CheckPaymentConsistency cross-checks recorded payment items against the
// category codes parsed from the dispatch order's labels.
func CheckPaymentConsistency(codes []string, items []model.PaymentItem) []PaymentAdvisory {
	allowed := mapset.NewThreadUnsafeSet(codes...)

	advisories := make([]PaymentAdvisory, 0)
	for _, item := range items {
		if item.Amount == nil {
			continue
		}
		if allowed.Contains(item.Code) {
			continue
		}
		advisories = append(advisories, PaymentAdvisory{Code: item.Code, Amount: *item.Amount})
	}

	return advisories
}
