package service

import (
	"fmt"
	"strconv"

	"legalclarify-backend/models"
)

// Impact describes how a term in the other document compares for the reader
type Impact string

const (
	ImpactBetter Impact = "Better"
	ImpactWorse  Impact = "Worse"
	ImpactSame   Impact = "Same"
)

// Difference is one compared category between two documents
type Difference struct {
	Category    string `json:"category"`
	Primary     string `json:"primary"`
	Comparison  string `json:"comparison"`
	Impact      Impact `json:"impact"`
	Explanation string `json:"explanation"`
}

// Verdict summarizes a comparison
type Verdict string

const (
	VerdictComparisonBetter Verdict = "comparison_better"
	VerdictPrimaryBetter    Verdict = "primary_better"
	VerdictMixed            Verdict = "mixed"
	VerdictEquivalent       Verdict = "equivalent"
)

const notStated = "Not stated"

// CompareTerms compares the contract terms of a primary document with another.
// Impact is from the point of view of a tenant choosing the other document.
// Categories neither document states are omitted.
func CompareTerms(primary, other models.ContractTerms) []Difference {
	var diffs []Difference

	if primary.SecurityDepositMonths != 0 || other.SecurityDepositMonths != 0 {
		d := Difference{
			Category:   "Security Deposit",
			Primary:    depositText(primary.SecurityDepositMonths),
			Comparison: depositText(other.SecurityDepositMonths),
		}
		d.Impact = lowerIsBetter(primary.SecurityDepositMonths, other.SecurityDepositMonths)
		d.Explanation = explain(d.Impact, "Lower upfront cost for you", "Higher upfront cost for you")
		diffs = append(diffs, d)
	}

	diffs = appendNotice(diffs, "Notice Period for Renewal", primary.RenewalNoticeDays, other.RenewalNoticeDays,
		"More time to plan your next move", "Less time to plan your next move")
	diffs = appendNotice(diffs, "Rent Increase Notice", primary.RentIncreaseNoticeDays, other.RentIncreaseNoticeDays,
		"More time to prepare for rent changes", "Less time to prepare for rent changes")
	diffs = appendNotice(diffs, "Eviction Notice", primary.EvictionNoticeDays, other.EvictionNoticeDays,
		"More time to find a new home if asked to leave", "Less time to find a new home if asked to leave")

	if primary.MaintenancePayer != "" || other.MaintenancePayer != "" {
		d := Difference{
			Category:   "Maintenance Responsibility",
			Primary:    maintenanceText(primary),
			Comparison: maintenanceText(other),
		}
		d.Impact = maintenanceImpact(primary, other)
		d.Explanation = explain(d.Impact, "Less financial burden on you", "More financial burden on you")
		diffs = append(diffs, d)
	}

	return diffs
}

// Summarize derives the overall verdict and a recommendation sentence
func Summarize(diffs []Difference) (Verdict, string) {
	var better, worse int
	for _, d := range diffs {
		switch d.Impact {
		case ImpactBetter:
			better++
		case ImpactWorse:
			worse++
		}
	}

	switch {
	case better > 0 && worse == 0:
		return VerdictComparisonBetter, "Document B is clearly better for you! It saves you money upfront, gives you more time to make decisions, and protects you from unexpected repair costs. If you like the location and apartment equally, definitely go with Document B."
	case worse > 0 && better == 0:
		return VerdictPrimaryBetter, "Document A is the better deal. Document B asks more of you on every term that differs, so only choose it if something else about it matters more to you."
	case better > 0 && worse > 0:
		return VerdictMixed, fmt.Sprintf("Each document has advantages: Document B is better on %d terms and worse on %d. Weigh the terms that matter most to you before deciding.", better, worse)
	default:
		return VerdictEquivalent, "Both documents offer the same terms on everything we could compare."
	}
}

func appendNotice(diffs []Difference, category string, primary, other int, better, worse string) []Difference {
	if primary == 0 && other == 0 {
		return diffs
	}
	d := Difference{
		Category:   category,
		Primary:    daysText(primary),
		Comparison: daysText(other),
		Impact:     higherIsBetter(float64(primary), float64(other)),
	}
	d.Explanation = explain(d.Impact, better, worse)
	return append(diffs, d)
}

func lowerIsBetter(primary, other float64) Impact {
	if primary == 0 || other == 0 || primary == other {
		return ImpactSame
	}
	if other < primary {
		return ImpactBetter
	}
	return ImpactWorse
}

func higherIsBetter(primary, other float64) Impact {
	if primary == 0 || other == 0 || primary == other {
		return ImpactSame
	}
	if other > primary {
		return ImpactBetter
	}
	return ImpactWorse
}

func maintenanceImpact(primary, other models.ContractTerms) Impact {
	if primary.MaintenancePayer == "" || other.MaintenancePayer == "" {
		return ImpactSame
	}
	if primary.MaintenancePayer != other.MaintenancePayer {
		if other.MaintenancePayer == models.PartyLandlord {
			return ImpactBetter
		}
		return ImpactWorse
	}
	// Same payer: the threshold is the line above which the payer covers repairs
	if other.MaintenancePayer == models.PartyLandlord {
		return lowerIsBetter(primary.MaintenanceThreshold, other.MaintenanceThreshold)
	}
	return higherIsBetter(primary.MaintenanceThreshold, other.MaintenanceThreshold)
}

func explain(impact Impact, better, worse string) string {
	switch impact {
	case ImpactBetter:
		return better
	case ImpactWorse:
		return worse
	default:
		return "No meaningful difference"
	}
}

func depositText(months float64) string {
	if months == 0 {
		return notStated
	}
	n := strconv.FormatFloat(months, 'f', -1, 64)
	if months == 1 {
		return n + " month rent"
	}
	return n + " months rent"
}

func daysText(days int) string {
	if days == 0 {
		return notStated
	}
	return fmt.Sprintf("%d days", days)
}

func maintenanceText(t models.ContractTerms) string {
	if t.MaintenancePayer == "" {
		return notStated
	}
	payer := "Tenant"
	if t.MaintenancePayer == models.PartyLandlord {
		payer = "Landlord"
	}
	if t.MaintenanceThreshold == 0 {
		return payer + " pays"
	}
	return fmt.Sprintf("%s pays over $%s", payer, strconv.FormatFloat(t.MaintenanceThreshold, 'f', -1, 64))
}
