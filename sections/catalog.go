package sections

import "legalclarify-backend/models"

// catalog holds the Indian Penal Code sections the advisor can reference.
// Related sections may name ids that are not in the catalog.
var catalog = map[string]models.LegalSection{
	"420": {
		Section:     "420",
		Title:       "Cheating and dishonestly inducing delivery of property",
		Description: "Whoever cheats and thereby dishonestly induces the person deceived to deliver any property to any person, or to make, alter or destroy the whole or any part of a valuable security, or anything which is signed or sealed, and which is capable of being converted into a valuable security, shall be punished with imprisonment of either description for a term which may extend to seven years, and shall also be liable to fine.",
		Punishment:  "Imprisonment up to 7 years and fine",
		ApplicableScenarios: []string{
			"Fraudulent rental agreements",
			"Fake property documents",
			"Employment contract fraud",
			"Insurance fraud",
			"Banking fraud",
		},
		RelatedSections: []string{"415", "417", "418", "419"},
		Examples: []string{
			"Creating fake rental agreements to collect advance money",
			"Forging employment contracts with false salary promises",
			"Creating fraudulent property sale deeds",
		},
	},
	"415": {
		Section:     "415",
		Title:       "Cheating",
		Description: "Whoever, by deceiving any person, fraudulently or dishonestly induces the person so deceived to do or omit to do any act which he would not do or omit if he were not so deceived, and which act or omission causes or is likely to cause damage or harm to that person in body, mind, reputation or property, is said to 'cheat'.",
		Punishment:  "Imprisonment up to 1 year or fine or both",
		ApplicableScenarios: []string{
			"Misleading contract terms",
			"False representations in agreements",
			"Deceptive business practices",
			"Fraudulent loan applications",
		},
		RelatedSections: []string{"417", "418", "420"},
		Examples: []string{
			"Hiding important terms in rental agreements",
			"Misrepresenting property conditions",
			"False promises in employment contracts",
		},
	},
	"406": {
		Section:     "406",
		Title:       "Punishment for criminal breach of trust",
		Description: "Whoever commits criminal breach of trust shall be punished with imprisonment of either description for a term which may extend to three years, or with fine, or with both.",
		Punishment:  "Imprisonment up to 3 years or fine or both",
		ApplicableScenarios: []string{
			"Misuse of security deposits",
			"Breach of fiduciary duty",
			"Misappropriation of funds",
			"Violation of trust in contracts",
		},
		RelatedSections: []string{"405", "407", "408", "409"},
		Examples: []string{
			"Landlord misusing tenant's security deposit",
			"Employer not paying promised salary",
			"Misuse of advance payments",
		},
	},
	"405": {
		Section:     "405",
		Title:       "Criminal breach of trust",
		Description: "Whoever, being in any manner entrusted with property, or with any dominion over property, dishonestly misappropriates or converts to his own use that property, or dishonestly uses or disposes of that property in violation of any direction of law prescribing the mode in which such trust is to be discharged, or of any legal contract, express or implied, which he has made touching the discharge of such trust, or wilfully suffers any other person so to do, commits 'criminal breach of trust'.",
		Punishment:  "As per section 406 - up to 3 years imprisonment",
		ApplicableScenarios: []string{
			"Misuse of entrusted property",
			"Violation of contractual obligations",
			"Breach of trust by agents",
			"Misappropriation by employees",
		},
		RelatedSections: []string{"406", "407", "408"},
		Examples: []string{
			"Property manager misusing rental income",
			"Employee misusing company resources",
			"Agent not following client instructions",
		},
	},
	"463": {
		Section:     "463",
		Title:       "Forgery",
		Description: "Whoever makes any false document or false electronic record or part of a document or electronic record, with intent to cause damage or injury, to the public or to any person, or to support any claim or title, or to cause any person to part with property, or to enter into any express or implied contract, or with intent to commit fraud or that fraud may be committed, commits forgery.",
		Punishment:  "Imprisonment up to 2 years or fine or both",
		ApplicableScenarios: []string{
			"Forged signatures on contracts",
			"Fake documents",
			"Altered agreements",
			"False certificates",
		},
		RelatedSections: []string{"464", "465", "466", "467", "468", "469", "470", "471"},
		Examples: []string{
			"Forging landlord's signature on lease",
			"Creating fake employment certificates",
			"Altering contract terms after signing",
		},
	},
	"504": {
		Section:     "504",
		Title:       "Intentional insult with intent to provoke breach of the peace",
		Description: "Whoever intentionally insults, and thereby gives provocation to any person, intending or knowing it to be likely that such provocation will cause him to break the public peace, or to commit any other offence, shall be punished with imprisonment of either description for a term which may extend to two years, or with fine, or with both.",
		Punishment:  "Imprisonment up to 2 years or fine or both",
		ApplicableScenarios: []string{
			"Harassment by landlords",
			"Workplace harassment",
			"Intimidation tactics",
			"Verbal abuse in disputes",
		},
		RelatedSections: []string{"506", "507", "509"},
		Examples: []string{
			"Landlord using abusive language",
			"Employer threatening employee",
			"Harassment during contract disputes",
		},
	},
	"506": {
		Section:     "506",
		Title:       "Punishment for criminal intimidation",
		Description: "Whoever commits, the offence of criminal intimidation shall be punished with imprisonment of either description for a term which may extend to two years, or with fine, or with both; If threat be to cause death or grievous hurt, etc. - and if the threat be to cause death or grievous hurt, or to cause the destruction of any property by fire, or to cause an offence punishable with death or imprisonment for life, or with imprisonment for a term which may extend to seven years, or to impute, unchastity to a woman, shall be punished with imprisonment of either description for a term which may extend to seven years, or with fine, or with both.",
		Punishment:  "Imprisonment up to 2 years (simple) or 7 years (aggravated) or fine or both",
		ApplicableScenarios: []string{
			"Threats during contract negotiations",
			"Intimidation to sign agreements",
			"Coercion in business deals",
			"Threats of legal action",
		},
		RelatedSections: []string{"503", "504", "507"},
		Examples: []string{
			"Threatening tenant to vacate illegally",
			"Coercing employee to accept unfair terms",
			"Intimidating party to sign contract",
		},
	},
}
