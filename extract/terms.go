package extract

import (
	"regexp"
	"strconv"
	"strings"

	"legalclarify-backend/models"
)

var (
	// A full stop ends a sentence only before whitespace or the end of text,
	// so decimals like "2.5" survive. Abbreviation dots are dropped first.
	sentenceSplit = regexp.MustCompile(`[;\n]+|\.(?:\s+|$)`)
	abbrevDot     = regexp.MustCompile(`\b(rs|no|approx)\.\s*`)
	daysPattern   = regexp.MustCompile(`(\d+)\s*\)?\s*(?:calendar\s+|working\s+)?days?`)
	monthsPattern = regexp.MustCompile(`(\d+(?:\.\d+)?|one|two|three|four|five|six|ten|twelve)\s*(?:\(\d+\)\s*)?months?`)
	amountPattern = regexp.MustCompile(`(?:\$|\brs\.?|\binr|₹)\s*([\d,]+(?:\.\d+)?)`)
)

var wordNumbers = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6, "ten": 10, "twelve": 12,
}

// ExtractTerms reads the comparable contract terms out of agreement text.
// Each term is taken from the first sentence that states it.
func ExtractTerms(content string) models.ContractTerms {
	var terms models.ContractTerms

	lowered := abbrevDot.ReplaceAllString(strings.ToLower(content), "$1 ")
	for _, sentence := range sentenceSplit.Split(lowered, -1) {
		switch {
		case strings.Contains(sentence, "deposit"):
			if terms.SecurityDepositMonths == 0 {
				terms.SecurityDepositMonths = firstMonths(sentence)
			}
		case strings.Contains(sentence, "rent") && containsAny(sentence, "increase", "raise", "revise"):
			if terms.RentIncreaseNoticeDays == 0 {
				terms.RentIncreaseNoticeDays = firstDays(sentence)
			}
		case strings.Contains(sentence, "renew"):
			if terms.RenewalNoticeDays == 0 {
				terms.RenewalNoticeDays = firstDays(sentence)
			}
		case containsAny(sentence, "evict", "vacate", "terminate"):
			if terms.EvictionNoticeDays == 0 {
				terms.EvictionNoticeDays = firstDays(sentence)
			}
		case containsAny(sentence, "maintenance", "repair"):
			if terms.MaintenanceThreshold == 0 {
				if amount := firstAmount(sentence); amount > 0 {
					terms.MaintenanceThreshold = amount
					terms.MaintenancePayer = payer(sentence)
				}
			}
		}
	}
	return terms
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func firstDays(s string) int {
	m := daysPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

func firstMonths(s string) float64 {
	m := monthsPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	if n, ok := wordNumbers[m[1]]; ok {
		return n
	}
	n, _ := strconv.ParseFloat(m[1], 64)
	return n
}

func firstAmount(s string) float64 {
	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, _ := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	return n
}

// payer is whichever party the sentence names first
func payer(s string) models.Party {
	tenant := strings.Index(s, "tenant")
	landlord := strings.Index(s, "landlord")
	switch {
	case landlord >= 0 && (tenant < 0 || landlord < tenant):
		return models.PartyLandlord
	case tenant >= 0:
		return models.PartyTenant
	}
	return ""
}
