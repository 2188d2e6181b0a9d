package service

import "legalclarify-backend/models"

// Each builder returns a fresh value so callers may modify it.

func rentalAnalysis() *models.DocumentAnalysis {
	return &models.DocumentAnalysis{
		Summary:       "This rental agreement contains standard terms with some potentially concerning clauses that favor the landlord. The security deposit requirement is higher than typical, and the maintenance cost responsibility shifts significant expenses to the tenant.",
		SimpleSummary: "This rental contract has some rules that might not be great for you. You have to pay a lot of money upfront, and you might have to pay for fixing things that break.",
		KeyPoints: []string{
			"Security deposit of 2 months rent required",
			"Automatic renewal clause unless 60-day notice given",
			"Landlord can increase rent with 30-day notice",
			"Tenant responsible for all maintenance costs over $100",
		},
		RiskLevel: models.RiskMedium,
		Concerns: []string{
			"Short notice period for rent increases",
			"High tenant responsibility for maintenance",
		},
		RiskyClauses: []models.RiskyClause{
			{
				Title:             "Excessive Security Deposit Requirement",
				SimpleTitle:       "Too Much Money Upfront",
				OriginalText:      "Tenant shall provide a security deposit equal to two (2) months' rent prior to occupancy.",
				Explanation:       "This clause requires you to pay double the monthly rent as a security deposit, which is significantly higher than the typical one month's rent standard.",
				SimpleExplanation: "You have to pay 2 months of rent before you can move in. Most places only ask for 1 month.",
				Risk:              "This ties up a large amount of your money and may indicate the landlord expects problems or wants to discourage tenant turnover.",
				Severity:          models.RiskMedium,
			},
			{
				Title:             "Short Notice for Rent Increases",
				SimpleTitle:       "Rent Can Go Up Quickly",
				OriginalText:      "Landlord may increase rent with thirty (30) days written notice to tenant.",
				Explanation:       "The landlord can raise your rent with only 30 days notice, which is less time than many jurisdictions require.",
				SimpleExplanation: "Your landlord can make your rent more expensive with only 1 month warning.",
				Risk:              "This gives you very little time to budget for increased housing costs or find alternative housing if the increase is unaffordable.",
				Severity:          models.RiskHigh,
			},
			{
				Title:             "Tenant Maintenance Cost Burden",
				SimpleTitle:       "You Pay When Things Break",
				OriginalText:      "Tenant is responsible for all maintenance and repair costs exceeding one hundred dollars ($100).",
				Explanation:       "You are financially responsible for any maintenance or repairs that cost more than $100, which could include major appliances, plumbing, or electrical issues.",
				SimpleExplanation: "If something expensive breaks (like the AC or toilet), you have to pay to fix it if it costs more than $100.",
				Risk:              "This could result in unexpected large expenses that are typically the landlord's responsibility.",
				Severity:          models.RiskHigh,
			},
		},
		DetailedClauses: []models.DetailedClause{
			{
				Title:             "Security Deposit Terms",
				SimpleTitle:       "Getting Your Money Back",
				OriginalText:      "Security deposit shall be returned within thirty (30) days of lease termination, less any deductions for damages beyond normal wear and tear.",
				Explanation:       "Your security deposit will be returned within 30 days after you move out, minus any costs for damage you caused beyond normal use.",
				SimpleExplanation: "You'll get your deposit back in a month after moving out, unless you damaged something.",
				Suggestion:        "Document the apartment's condition with photos when you move in to protect your deposit.",
				Importance:        models.ImportanceCritical,
			},
			{
				Title:             "Lease Renewal Process",
				SimpleTitle:       "Staying Another Year",
				OriginalText:      "This lease shall automatically renew for successive one-year terms unless either party provides sixty (60) days written notice of intent not to renew.",
				Explanation:       "Your lease will automatically continue for another year unless you or the landlord give 60 days written notice that you want to end it.",
				SimpleExplanation: "If you don't tell your landlord 2 months before your lease ends that you're leaving, you're stuck for another whole year.",
				Risk:              "Forgetting to give notice could lock you into another year-long commitment.",
				Suggestion:        "Set a calendar reminder 70 days before your lease ends to decide about renewal.",
				Importance:        models.ImportanceCritical,
			},
		},
		LegalTerms: []models.LegalTerm{
			{
				Term:             "Normal Wear and Tear",
				Definition:       "The expected deterioration of a property due to ordinary use, for which a tenant cannot be charged.",
				SimpleDefinition: "Normal damage that happens when you live somewhere, like small nail holes or carpet getting a bit worn.",
				Example:          "Faded paint, small nail holes, or carpet wear in high-traffic areas",
			},
			{
				Term:             "Automatic Renewal Clause",
				Definition:       "A provision that extends a lease for another term unless proper notice is given by either party.",
				SimpleDefinition: "A rule that makes your lease continue automatically unless you say you want to leave.",
				Example:          "Your one-year lease becomes another one-year lease if you don't give notice",
			},
		},
		Rights: []models.Right{
			{
				Title:             "Right to Habitable Living Conditions",
				Explanation:       "You have the legal right to live in a property that meets basic health and safety standards.",
				SimpleExplanation: "Your home must be safe and livable - working plumbing, electricity, and no dangerous conditions.",
				LegalBasis:        "Consumer Protection Act, 2019 & Model Tenancy Act, 2021",
			},
			{
				Title:             "Right to Privacy",
				Explanation:       "Landlords must provide reasonable notice (typically 24-48 hours) before entering your rental unit.",
				SimpleExplanation: "Your landlord can't just walk into your home whenever they want - they need to tell you first.",
				LegalBasis:        "Right to Privacy under Article 21 of Indian Constitution",
			},
		},
		Checklist: []models.ChecklistItem{
			{
				Title:             "Verify the security deposit amount is reasonable",
				Description:       "Ensure the security deposit doesn't exceed local legal limits and is refundable.",
				SimpleDescription: "Make sure you're not paying too much money upfront and that you can get it back.",
				Urgency:           models.RiskHigh,
			},
			{
				Title:             "Understand maintenance responsibilities",
				Description:       "Clarify which repairs you'll be responsible for and ensure major systems remain landlord's responsibility.",
				SimpleDescription: "Know what you have to fix yourself and what the landlord should fix.",
				Urgency:           models.RiskHigh,
			},
			{
				Title:             "Check rent increase notice period",
				Description:       "Verify the notice period for rent increases complies with local tenant protection laws.",
				SimpleDescription: "Make sure your landlord can't surprise you with higher rent without enough warning.",
				Urgency:           models.RiskMedium,
			},
			{
				Title:             "Document current property condition",
				Description:       "Take photos and create a written record of the property's condition before moving in.",
				SimpleDescription: "Take pictures of everything when you move in so you can prove what was already broken.",
				Urgency:           models.RiskHigh,
			},
		},
		Terms: models.ContractTerms{
			SecurityDepositMonths:  2,
			RenewalNoticeDays:      60,
			RentIncreaseNoticeDays: 30,
			EvictionNoticeDays:     7,
			MaintenancePayer:       models.PartyTenant,
			MaintenanceThreshold:   100,
		},
	}
}

func employmentAnalysis() *models.DocumentAnalysis {
	return &models.DocumentAnalysis{
		Summary:       "This employment contract follows common terms for technology roles. Salary, probation and leave are clearly defined. The notice period and the confidentiality obligations are the main points to read carefully.",
		SimpleSummary: "This job contract looks fair. It tells you your pay, your leave and how to quit. Check how long you must keep working after you resign.",
		KeyPoints: []string{
			"Six month probation with a 15-day notice period",
			"60-day notice period after confirmation",
			"Annual leave of 18 days plus public holidays",
			"Confidentiality obligations continue after you leave",
		},
		RiskLevel: models.RiskLow,
		Concerns: []string{
			"Long notice period after confirmation",
		},
		RiskyClauses: []models.RiskyClause{
			{
				Title:             "Notice Period Buyout",
				SimpleTitle:       "Leaving Early Costs Money",
				OriginalText:      "Employee shall serve a notice period of sixty (60) days or pay basic salary in lieu thereof.",
				Explanation:       "If you resign you must keep working for 60 days or pay the employer your basic salary for the days you skip.",
				SimpleExplanation: "If you quit you must work 2 more months, or pay money instead.",
				Risk:              "A new employer may not wait 60 days, and a buyout can be expensive.",
				Severity:          models.RiskLow,
			},
		},
		DetailedClauses: []models.DetailedClause{
			{
				Title:             "Compensation",
				SimpleTitle:       "Your Pay",
				OriginalText:      "The Employee shall be paid an annual cost to company as set out in Annexure A, payable monthly.",
				Explanation:       "Your yearly package is listed in the annexure and is paid in monthly instalments.",
				SimpleExplanation: "Your salary is in the attached page and you get it every month.",
				Suggestion:        "Check that the fixed and variable parts of the package match your offer letter.",
				Importance:        models.ImportanceImportant,
			},
			{
				Title:             "Confidentiality",
				SimpleTitle:       "Keeping Secrets",
				OriginalText:      "The Employee shall not disclose any confidential information during or after the term of employment.",
				Explanation:       "You cannot share the company's confidential information, even after you leave.",
				SimpleExplanation: "Do not tell others the company's private information, now or later.",
				Importance:        models.ImportanceModerate,
			},
		},
		LegalTerms: []models.LegalTerm{
			{
				Term:             "Probation",
				Definition:       "An initial period of employment during which performance is assessed and termination terms are shorter.",
				SimpleDefinition: "A trial time at the start of a job.",
				Example:          "The first six months after your joining date",
			},
			{
				Term:             "In Lieu of Notice",
				Definition:       "A payment made instead of working through the required notice period.",
				SimpleDefinition: "Paying money instead of working your last days.",
			},
		},
		Rights: []models.Right{
			{
				Title:             "Right to Timely Wages",
				Explanation:       "Wages must be paid within the time limits set by law.",
				SimpleExplanation: "Your employer must pay you on time.",
				LegalBasis:        "Code on Wages, 2019",
			},
			{
				Title:             "Right to Gratuity",
				Explanation:       "After five years of continuous service you are entitled to gratuity when you leave.",
				SimpleExplanation: "If you work there 5 years you get extra money when you leave.",
				LegalBasis:        "Payment of Gratuity Act, 1972",
			},
		},
		Checklist: []models.ChecklistItem{
			{
				Title:             "Compare the annexure with your offer letter",
				Description:       "Confirm that salary components and joining bonus match what was offered.",
				SimpleDescription: "Make sure the pay written here is the pay you were promised.",
				Urgency:           models.RiskMedium,
			},
			{
				Title:             "Note your notice period",
				Description:       "Record both the probation and post-confirmation notice periods before accepting another offer.",
				SimpleDescription: "Remember how long you must work after you say you are leaving.",
				Urgency:           models.RiskLow,
			},
		},
	}
}

func loanAnalysis() *models.DocumentAnalysis {
	return &models.DocumentAnalysis{
		Summary:       "This personal loan agreement carries a high interest rate with compounding penalties on late payment. The lender may recall the full loan on a single missed instalment and recover dues through third-party agents.",
		SimpleSummary: "This loan is expensive. If you miss even one payment, the lender can ask for all the money back at once and send agents to collect it.",
		KeyPoints: []string{
			"Interest rate of 26% per year on a reducing balance",
			"Late payment penalty of 3% per month on overdue amounts",
			"Full loan can be recalled after one missed instalment",
			"Prepayment charge of 5% on the outstanding principal",
		},
		RiskLevel: models.RiskHigh,
		Concerns: []string{
			"Very high interest and penalty rates",
			"Acceleration clause triggered by a single default",
			"Recovery through third-party agents",
		},
		RiskyClauses: []models.RiskyClause{
			{
				Title:             "Acceleration on Default",
				SimpleTitle:       "Miss One Payment, Owe Everything",
				OriginalText:      "Upon failure to pay any instalment on its due date, the entire outstanding amount shall become immediately due and payable.",
				Explanation:       "A single missed EMI lets the lender demand the whole remaining loan at once.",
				SimpleExplanation: "If you are late once, you may have to pay back all the money right away.",
				Risk:              "A short cash problem can turn into a demand you cannot meet.",
				Severity:          models.RiskHigh,
			},
			{
				Title:             "Compounding Penalty Interest",
				SimpleTitle:       "Late Fees Grow Fast",
				OriginalText:      "Overdue amounts shall attract penal interest at three percent (3%) per month, compounded monthly.",
				Explanation:       "Late amounts grow by 3% every month on top of the normal interest, which is over 40% a year.",
				SimpleExplanation: "If you pay late, the amount you owe grows very quickly.",
				Risk:              "Debt can grow faster than you are able to repay it.",
				Severity:          models.RiskHigh,
			},
			{
				Title:             "Recovery Agents",
				SimpleTitle:       "People May Come to Collect",
				OriginalText:      "The Lender may appoint recovery agents to collect any amounts due from the Borrower.",
				Explanation:       "The lender may send outside agents to collect overdue money.",
				SimpleExplanation: "The lender can send people to ask you for the money.",
				Risk:              "Agents must follow fair practice rules, but harassment does happen.",
				Severity:          models.RiskMedium,
			},
		},
		DetailedClauses: []models.DetailedClause{
			{
				Title:             "Prepayment",
				SimpleTitle:       "Paying Back Early",
				OriginalText:      "The Borrower may prepay the loan after twelve EMIs subject to a charge of five percent (5%) of the principal outstanding.",
				Explanation:       "You can close the loan early after a year, but you pay 5% of what is left as a fee.",
				SimpleExplanation: "You can finish the loan early after 1 year, but you pay a fee.",
				Suggestion:        "Ask whether the prepayment charge can be waived for part payments.",
				Importance:        models.ImportanceImportant,
			},
		},
		LegalTerms: []models.LegalTerm{
			{
				Term:             "EMI",
				Definition:       "Equated monthly instalment, a fixed payment covering interest and principal.",
				SimpleDefinition: "The same amount you pay every month.",
			},
			{
				Term:             "Acceleration Clause",
				Definition:       "A term allowing the lender to demand immediate repayment of the whole loan on default.",
				SimpleDefinition: "A rule that lets the lender ask for all the money at once.",
				Example:          "Missing the March EMI makes the full balance due in March",
			},
		},
		Rights: []models.Right{
			{
				Title:             "Right to Fair Recovery Practices",
				Explanation:       "Recovery agents may not harass, threaten or call at unreasonable hours.",
				SimpleExplanation: "Collectors cannot threaten you or bother you late at night.",
				LegalBasis:        "RBI Fair Practices Code for Lenders",
			},
			{
				Title:             "Right to a Key Fact Statement",
				Explanation:       "The lender must disclose the annual percentage rate and all charges before you sign.",
				SimpleExplanation: "You must be told the full cost of the loan before you sign.",
				LegalBasis:        "RBI Key Fact Statement directions, 2024",
			},
		},
		Checklist: []models.ChecklistItem{
			{
				Title:             "Ask for the Key Fact Statement",
				Description:       "Request the annual percentage rate including all fees before signing.",
				SimpleDescription: "Ask how much the loan really costs in total.",
				Urgency:           models.RiskHigh,
			},
			{
				Title:             "Set up automatic EMI payments",
				Description:       "Use a standing instruction so a missed payment cannot trigger acceleration.",
				SimpleDescription: "Let your bank pay the EMI automatically so you are never late.",
				Urgency:           models.RiskHigh,
			},
			{
				Title:             "Compare offers from other lenders",
				Description:       "Banks often offer lower rates for the same amount and tenure.",
				SimpleDescription: "Check if another bank gives you a cheaper loan.",
				Urgency:           models.RiskMedium,
			},
		},
	}
}
