package fallback

import "github.com/krishikendra/agri-data-service/internal/domain"

// schemeLastUpdated is the catalog revision date stamped on every entry.
const schemeLastUpdated = "2026-02-08"

// schemeCatalog is the hand-authored government scheme set: central flagship
// programs plus a spread of state-level ones. IDs are stable slugs; handlers
// look schemes up by them.
var schemeCatalog = []domain.SchemeRecord{
	{
		ID:                "pm-kisan-001",
		SchemeName:        "PM-KISAN Samman Nidhi",
		GovernmentType:    domain.GovernmentCentral,
		State:             domain.StateAllIndia,
		Benefit:           "Rs 6,000 per year in three equal installments of Rs 2,000 directly to farmer bank accounts",
		Eligibility:       "All landholding farmer families with cultivable land, subject to exclusion criteria",
		Description:       "Income support scheme providing direct benefit transfer to small and marginal farmers across the country.",
		ApplicationLink:   "https://pmkisan.gov.in",
		ContactPhone:      "155261",
		OfficeAddress:     "Ministry of Agriculture and Farmers Welfare, Krishi Bhawan, New Delhi",
		DocumentsRequired: "Aadhaar card, land ownership records, bank account details",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "pmfby-001",
		SchemeName:        "Pradhan Mantri Fasal Bima Yojana",
		GovernmentType:    domain.GovernmentCentral,
		State:             domain.StateAllIndia,
		Benefit:           "Crop insurance at premium of 2% for kharif, 1.5% for rabi, and 5% for commercial crops",
		Eligibility:       "All farmers growing notified crops in notified areas, including sharecroppers and tenant farmers",
		Description:       "Comprehensive crop insurance against non-preventable natural risks from pre-sowing to post-harvest.",
		ApplicationLink:   "https://pmfby.gov.in",
		ContactPhone:      "18001801551",
		DocumentsRequired: "Land records, sowing certificate, bank account details, Aadhaar card",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "kusum-001",
		SchemeName:        "PM-KUSUM Solar Pump Scheme",
		GovernmentType:    domain.GovernmentCentral,
		State:             domain.StateAllIndia,
		Benefit:           "60% subsidy on standalone solar pumps and solarisation of existing grid-connected pumps",
		Eligibility:       "Individual farmers, farmer groups, cooperatives, and panchayats",
		Description:       "Promotes solar energy in agriculture to reduce diesel dependence and provide daytime power for irrigation.",
		ApplicationLink:   "https://pmkusum.mnre.gov.in",
		ContactPhone:      "18001803333",
		DocumentsRequired: "Land documents, electricity connection details where applicable, bank account details",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "pkvy-001",
		SchemeName:        "Paramparagat Krishi Vikas Yojana",
		GovernmentType:    domain.GovernmentCentral,
		State:             domain.StateAllIndia,
		Benefit:           "Rs 50,000 per hectare over three years for organic farming, including Rs 31,000 as direct incentive",
		Eligibility:       "Farmers willing to form clusters of 20 hectares and adopt organic farming practices",
		Description:       "Cluster-based organic farming promotion with certification support and market linkage.",
		DocumentsRequired: "Land records, cluster formation agreement, bank account details",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "soil-health-001",
		SchemeName:        "Soil Health Card Scheme",
		GovernmentType:    domain.GovernmentCentral,
		State:             domain.StateAllIndia,
		Benefit:           "Free soil testing and crop-wise fertiliser recommendations every two years",
		Eligibility:       "All farmers with agricultural land",
		Description:       "Soil nutrient status reports with recommendations on dosage of fertilisers and soil amendments.",
		ApplicationLink:   "https://soilhealth.dac.gov.in",
		DocumentsRequired: "Land records, Aadhaar card",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "enam-001",
		SchemeName:        "e-NAM National Agriculture Market",
		GovernmentType:    domain.GovernmentCentral,
		State:             domain.StateAllIndia,
		Benefit:           "Online trading platform access for better price discovery across integrated mandis",
		Eligibility:       "Farmers, traders, and buyers registered with a participating APMC mandi",
		Description:       "Pan-India electronic trading portal networking existing APMC mandis into a unified national market.",
		ApplicationLink:   "https://enam.gov.in",
		ContactPhone:      "18002700224",
		DocumentsRequired: "Mandi registration, bank account details, Aadhaar card",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "atmanirbhar-001",
		SchemeName:        "Atmanirbhar Krishi Infrastructure Fund",
		GovernmentType:    domain.GovernmentCentral,
		State:             domain.StateAllIndia,
		Benefit:           "3% interest subvention on loans up to Rs 2 crore for post-harvest infrastructure",
		Eligibility:       "Farmers, FPOs, PACS, marketing cooperatives, and agri-entrepreneurs",
		Description:       "Medium to long term debt financing for farm-gate infrastructure like warehouses and cold chains.",
		DocumentsRequired: "Project report, land or lease documents, bank account details",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "fpo-formation-001",
		SchemeName:        "Formation of 10,000 FPOs",
		GovernmentType:    domain.GovernmentCentral,
		State:             domain.StateAllIndia,
		Benefit:           "Financial support up to Rs 18 lakh per FPO over three years plus equity grant up to Rs 15 lakh",
		Eligibility:       "Groups of at least 300 farmers in plains or 100 in hilly and north-eastern regions",
		Description:       "Support for forming and nurturing farmer producer organisations with professional handholding.",
		DocumentsRequired: "Member list, registration documents, business plan",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "krivishakti-001",
		SchemeName:        "Krivishakti Farm Mechanisation Support",
		GovernmentType:    domain.GovernmentCentral,
		State:             domain.StateAllIndia,
		Benefit:           "40-50% subsidy on purchase of tractors, tillers, and harvesters",
		Eligibility:       "Small and marginal farmers; higher subsidy for SC, ST, and women farmers",
		Description:       "Farm mechanisation support to improve productivity and reduce drudgery.",
		DocumentsRequired: "Land records, quotation from dealer, caste certificate where applicable, bank account details",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "karnataka-power-001",
		SchemeName:        "Karnataka Free Electricity for Farmers",
		GovernmentType:    domain.GovernmentState,
		State:             "Karnataka",
		Benefit:           "Free electricity up to 10 HP for irrigation pump sets",
		Eligibility:       "Farmers in Karnataka with registered irrigation pump set connections",
		ContactPhone:      "1912",
		OfficeAddress:     "Energy Department, Vikasa Soudha, Bengaluru",
		DocumentsRequired: "Pump set registration, land records, Aadhaar card",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "maharashtra-crop-001",
		SchemeName:        "Maharashtra Crop Loan Waiver Scheme",
		GovernmentType:    domain.GovernmentState,
		State:             "Maharashtra",
		Benefit:           "Waiver of outstanding crop loans up to Rs 2 lakh",
		Eligibility:       "Farmers in Maharashtra with crop loans outstanding as on the cutoff date",
		IncomeLimit:       "Annual family income below Rs 2.5 lakh",
		DocumentsRequired: "Loan account statement, land records, Aadhaar card",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "punjab-subsidy-001",
		SchemeName:        "Punjab Agricultural Input Subsidy",
		GovernmentType:    domain.GovernmentState,
		State:             "Punjab",
		Benefit:           "50% subsidy on certified seeds and micronutrients",
		Eligibility:       "Farmers in Punjab with landholding up to 5 acres",
		FarmSizeLimit:     "Up to 5 acres",
		DocumentsRequired: "Land records, Aadhaar card, bank account details",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "up-pipe-001",
		SchemeName:        "UP Free Boring and Pipe Network Scheme",
		GovernmentType:    domain.GovernmentState,
		State:             "Uttar Pradesh",
		Benefit:           "Free boring for tubewells and subsidised HDPE pipe network for irrigation",
		Eligibility:       "Small and marginal farmers in Uttar Pradesh",
		FarmSizeLimit:     "Up to 2 hectares",
		DocumentsRequired: "Land records, Aadhaar card, bank passbook",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "rajasthan-solar-001",
		SchemeName:        "Rajasthan Solar Water Pump Subsidy",
		GovernmentType:    domain.GovernmentState,
		State:             "Rajasthan",
		Benefit:           "Up to 60% subsidy on solar water pumps for drip and sprinkler users",
		Eligibility:       "Farmers in Rajasthan with micro-irrigation systems installed",
		DocumentsRequired: "Land records, micro-irrigation installation proof, bank account details",
		LastUpdated:       schemeLastUpdated,
	},
	{
		ID:                "tn-drip-001",
		SchemeName:        "Tamil Nadu Micro Irrigation Scheme",
		GovernmentType:    domain.GovernmentState,
		State:             "Tamil Nadu",
		Benefit:           "100% subsidy for small and marginal farmers on drip irrigation, 75% for others",
		Eligibility:       "Farmers in Tamil Nadu; priority to water-stressed blocks",
		DocumentsRequired: "Land records, water source certificate, Aadhaar card",
		LastUpdated:       schemeLastUpdated,
	},
}

// Schemes returns the full scheme catalog.
func Schemes() []domain.SchemeRecord {
	out := make([]domain.SchemeRecord, len(schemeCatalog))
	copy(out, schemeCatalog)
	return out
}

// SchemeByID looks a scheme up by its slug. The second return is false when
// no such scheme exists.
func SchemeByID(id string) (domain.SchemeRecord, bool) {
	for _, s := range schemeCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return domain.SchemeRecord{}, false
}
