package matcher

import "legalclarify-backend/i18n"

// Response categories, in no particular order. Rule order lives in defaultRules.
const (
	SecurityDeposit  Category = "security_deposit"
	RentIncrease     Category = "rent_increase"
	Maintenance      Category = "maintenance"
	Eviction         Category = "eviction"
	Rights           Category = "rights"
	EarlyTermination Category = "early_termination"
	General          Category = "general"
)

// defaultRules is evaluated top to bottom; the first match wins.
// "rent" with "rights" resolves to rent_increase because it is checked first.
var defaultRules = []Rule{
	{Category: SecurityDeposit, AnyOf: []string{"security", "deposit"}},
	{Category: RentIncrease, AllOf: [][]string{{"rent"}, {"increase", "raise"}}},
	{Category: Maintenance, AnyOf: []string{"repair", "maintenance", "fix"}},
	{Category: Eviction, AnyOf: []string{"evict", "kick out", "terminate"}},
	{Category: Rights, AnyOf: []string{"rights", "protect"}},
	{Category: EarlyTermination, AllOf: [][]string{{"early"}, {"move"}}},
}

// defaultResponses must carry English text for every category.
// security_deposit and general have no translations yet and fall back to English.
var defaultResponses = i18n.Table{
	"en": {
		string(SecurityDeposit):  "A security deposit is money the landlord holds to cover unpaid rent or damage beyond normal wear and tear. Your agreement asks for two months' rent, while one month is more common. Take photos of the flat when you move in and get a written receipt; the deposit should come back within 30 days of moving out, minus any documented deductions.",
		string(RentIncrease):     "This part is actually not great for you. Most places give tenants 60 days notice before raising rent, but yours only gives 30 days. That's not much time to plan if you can't afford the increase.",
		string(Maintenance):      "This clause basically says you have to pay for expensive repairs. That's unusual - normally landlords pay for big stuff like broken heaters or plumbing. You might want to negotiate this to a higher amount, like $200 instead of $100.",
		string(Eviction):         "According to the Model Tenancy Act 2021, landlords usually need to give 30 days notice for eviction, but your contract says only 7 days. That's really short and might not even be legal in your state.",
		string(Rights):           "Good news! You have the right to ask for reasonable changes to make the place work for you. Your landlord can't just ignore requests to fix things that make the place unsafe or unlivable.",
		string(EarlyTermination): "Looking at your document, this means you need to tell your landlord in writing at least 30 days before you want to move out, or you might lose your security deposit. This is pretty normal, but make sure to set a reminder!",
		string(General):          "I can help you understand this document. Ask me about the security deposit, rent increases, repairs, eviction notice, your rights, or moving out early, and I'll explain what your agreement says in simple words.",
	},
	"hi": {
		string(RentIncrease):     "यह हिस्सा वास्तव में आपके लिए अच्छा नहीं है। अधिकांश जगहों पर किरायेदारों को किराया बढ़ाने से पहले 60 दिन का नोटिस मिलता है, लेकिन आपको केवल 30 दिन मिलते हैं।",
		string(Maintenance):      "इस खंड का मतलब है कि आपको महंगी मरम्मत के लिए भुगतान करना होगा। यह असामान्य है - आमतौर पर मकान मालिक बड़ी चीजों के लिए भुगतान करते हैं।",
		string(Eviction):         "मॉडल टेनेंसी एक्ट 2021 के अनुसार, मकान मालिकों को आमतौर पर बेदखली के लिए 30 दिन का नोटिस देना होता है, लेकिन आपके अनुबंध में केवल 7 दिन कहा गया है।",
		string(Rights):           "अच्छी खबर! आपको उचित बदलाव मांगने का अधिकार है। आपका मकान मालिक सुरक्षा संबंधी समस्याओं को ठीक करने के अनुरोधों को नजरअंदाज नहीं कर सकता।",
		string(EarlyTermination): "आपके दस्तावेज़ को देखते हुए, इसका मतलब है कि आपको अपने मकान मालिक को कम से कम 30 दिन पहले लिखित में बताना होगा कि आप बाहर जाना चाहते हैं, नहीं तो आप अपनी सिक्यूरिटी डिपॉजिट खो सकते हैं।",
	},
	"ta": {
		string(RentIncrease):     "இந்த பகுதி உங்களுக்கு நல்லதல்ல. பெரும்பாலான இடங்களில் வாடகை அதிகரிப்பதற்கு முன் 60 நாட்கள் அறிவிப்பு கொடுக்கப்படும், ஆனால் உங்களுக்கு 30 நாட்கள் மட்டுமே.",
		string(Maintenance):      "இந்த விதி அடிப்படையில் நீங்கள் விலையுயர்ந்த பழுதுபார்ப்புகளுக்கு பணம் செலுத்த வேண்டும் என்று கூறுகிறது. இது அசாதாரணமானது.",
		string(Eviction):         "மாதிரி குத்தகை சட்டம் 2021 படி, வீட்டு உரிமையாளர்கள் பொதுவாக வெளியேற்றுவதற்கு 30 நாட்கள் அறிவிப்பு கொடுக்க வேண்டும், ஆனால் உங்கள் ஒப்பந்தத்தில் 7 நாட்கள் மட்டுமே.",
		string(Rights):           "நல்ல செய்தி! நியாயமான மாற்றங்களைக் கேட்க உங்களுக்கு உரிமை உண்டு. உங்கள் வீட்டு உரிமையாளர் பாதுகாப்பு பிரச்சினைகளை சரிசெய்யும் கோரிக்கைகளை புறக்கணிக்க முடியாது.",
		string(EarlyTermination): "உங்கள் ஆவணத்தைப் பார்க்கும்போது, நீங்கள் வெளியேற விரும்பினால் குறைந்தது 30 நாட்களுக்கு முன்பு உங்கள் வீட்டு உரிமையாளரிடம் எழுத்துப்பூர்வமாக தெரிவிக்க வேண்டும்.",
	},
	"te": {
		string(RentIncrease):     "ఈ భాగం మీకు మంచిది కాదు. చాలా చోట్ల అద్దె పెంచడానికి ముందు 60 రోజుల నోటీసు ఇస్తారు, కానీ మీకు 30 రోజులు మాత్రమే.",
		string(Maintenance):      "ఈ నిబంధన ప్రాథమికంగా మీరు ఖరీదైన మరమ్మతులకు డబ్బు చెల్లించాలని చెబుతుంది. ఇది అసాధారణం.",
		string(Eviction):         "మోడల్ టెనెన్సీ యాక్ట్ 2021 ప్రకారం, ఇంటి యజమానులు సాధారణంగా తొలగింపుకు 30 రోజుల నోటీసు ఇవ్వాలి, కానీ మీ ఒప్పందంలో 7 రోజులు మాత్రమే.",
		string(Rights):           "మంచి వార్త! సహేతుకమైన మార్పులను అడగడానికి మీకు హక్కు ఉంది. మీ ఇంటి యజమాని భద్రతా సమస్యలను పరిష్కరించే అభ్యర్థనలను విస్మరించలేరు.",
		string(EarlyTermination): "మీ పత్రాన్ని చూస్తే, మీరు బయటకు వెళ్లాలని అనుకుంటే కనీసం 30 దినాల ముందు మీ ఇంటి యజమానికి వ్రాతపూర్వకంగా తెలియజేయాలి.",
	},
}
