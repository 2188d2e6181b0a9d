package extract

import "strings"

const (
	TypeRental     = "Rental Agreement"
	TypeEmployment = "Employment Contract"
	TypeLoan       = "Loan Agreement"
	TypeGeneric    = "Legal Document"
)

var typeKeywords = []struct {
	label    string
	keywords []string
}{
	{TypeRental, []string{"rental", "rent", "lease", "tenant", "tenants", "landlord", "tenancy"}},
	{TypeEmployment, []string{"employment", "employee", "employer", "job", "salary", "offer letter"}},
	{TypeLoan, []string{"loan", "borrower", "lender", "emi", "interest rate"}},
}

// DetectDocumentType labels a document by scanning its filename, then its
// content. The filename wins because users name files after what they are.
// Content is labelled by whichever type's keywords occur most often, so a
// passing "house rent allowance" does not turn a salary contract into a lease.
func DetectDocumentType(name, content string) string {
	if label := scanType(strings.ToLower(name)); label != "" {
		return label
	}
	if label := scoreType(strings.ToLower(content)); label != "" {
		return label
	}
	return TypeGeneric
}

// scoreType returns the label with the most keyword occurrences in s.
// Ties go to the earlier label.
func scoreType(s string) string {
	best, bestScore := "", 0
	for _, t := range typeKeywords {
		score := 0
		for _, kw := range t.keywords {
			score += countWord(s, kw)
		}
		if score > bestScore {
			best, bestScore = t.label, score
		}
	}
	return best
}

func scanType(s string) string {
	if s == "" {
		return ""
	}
	for _, t := range typeKeywords {
		for _, kw := range t.keywords {
			if containsWord(s, kw) {
				return t.label
			}
		}
	}
	return ""
}

// containsWord matches kw at word boundaries so "emi" does not hit "premises"
func containsWord(s, kw string) bool {
	return countWord(s, kw) > 0
}

func countWord(s, kw string) int {
	n := 0
	for i := 0; i < len(s); {
		j := strings.Index(s[i:], kw)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(kw)
		if (start == 0 || !isWordByte(s[start-1])) && (end == len(s) || !isWordByte(s[end])) {
			n++
		}
		i = start + 1
	}
	return n
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
