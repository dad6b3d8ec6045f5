// Package fallback holds the in-memory sample datasets and reference
// catalogs served when the live mandi upstream is unreachable or empty.
// Everything here is generated or hand-authored filler: non-authoritative
// by design, so the UI always has something to display. Generation never
// fails and has no external dependency.
package fallback

import "sort"

// indianStates lists the 28 states covered by the sample price set.
var indianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram",
	"Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
	"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
}

// allCommodities is the full commodity catalog offered in search filters:
// cereals, pulses, oilseeds, cash crops, vegetables, spices, and fruits.
var allCommodities = []string{
	"Wheat", "Rice", "Maize", "Jowar", "Bajra", "Ragi", "Barley",
	"Gram", "Arhar", "Moong", "Masoor", "Urad", "Peas",
	"Groundnut", "Soyabean", "Sunflower", "Safflower", "Sesamum", "Castor", "Mustard", "Coconut",
	"Cotton", "Tobacco", "Sugarcane", "Jute",
	"Onion", "Garlic", "Potato", "Tomato", "Cabbage", "Cauliflower",
	"Carrot", "Radish", "Brinjal", "Capsicum", "Chilli", "Pumpkin",
	"Bottle Gourd", "Bitter Gourd", "Ridge Gourd", "Cucumber", "Spinach",
	"Beans", "Beetroot", "Coriander", "Okra", "Mushroom",
	"Turmeric", "Coriander (Dry)", "Chilli (Dry)", "Cumin", "Fenugreek",
	"Black Cardamom", "Cardamom", "Clove", "Cinnamon", "Nutmeg",
	"Apple", "Banana", "Grapes", "Mango", "Orange", "Lemon", "Papaya",
	"Guava", "Pomegranate", "Watermelon", "Pineapple", "Pomelo", "Sweet Lime",
}

// sampleCommodities is the subset used to generate sample prices for every
// state; smaller than the full catalog to keep the cross product bounded.
var sampleCommodities = []string{
	"Wheat", "Rice", "Maize", "Jowar", "Bajra", "Ragi", "Barley",
	"Gram", "Arhar", "Moong", "Masoor", "Urad", "Groundnut",
	"Soyabean", "Sunflower", "Safflower", "Sesamum", "Castor",
	"Cotton", "Tobacco", "Sugarcane", "Coconut",
	"Onion", "Garlic", "Potato", "Tomato", "Cabbage", "Cauliflower",
	"Carrot", "Radish", "Brinjal", "Capsicum", "Chilli", "Coriander",
	"Turmeric", "Ginger", "Apple", "Banana", "Grapes", "Mango",
	"Orange", "Lemon", "Papaya", "Guava", "Pomegranate", "Watermelon",
}

// districtsByState carries district lists for the major agricultural
// states. States without an entry return no districts; callers treat that
// as "free-text district entry".
var districtsByState = map[string][]string{
	"Andhra Pradesh": {"Anantapur", "Chittoor", "East Godavari", "Guntur", "Krishna", "Kurnool", "Nellore", "Prakasam", "Srikakulam", "Visakhapatnam", "Vizianagaram", "West Godavari", "Kadapa"},
	"Bihar":          {"Araria", "Aurangabad", "Begusarai", "Bhagalpur", "Darbhanga", "Gaya", "Muzaffarpur", "Nalanda", "Patna", "Purnia", "Rohtas", "Samastipur", "Saran", "Siwan", "Vaishali"},
	"Gujarat":        {"Ahmedabad", "Amreli", "Anand", "Banaskantha", "Bharuch", "Bhavnagar", "Jamnagar", "Junagadh", "Kheda", "Mehsana", "Rajkot", "Surat", "Surendranagar", "Vadodara"},
	"Haryana":        {"Ambala", "Bhiwani", "Faridabad", "Fatehabad", "Gurugram", "Hisar", "Jind", "Kaithal", "Karnal", "Kurukshetra", "Panipat", "Rohtak", "Sirsa", "Sonipat", "Yamunanagar"},
	"Karnataka":      {"Bagalkote", "Bangalore Rural", "Bangalore Urban", "Belgaum", "Bellary", "Bijapur", "Chitradurga", "Davanagere", "Dharwad", "Gadag", "Gulbarga", "Hassan", "Kolar", "Mandya", "Mysore", "Raichur", "Shimoga", "Tumkur", "Udupi", "Yadgir"},
	"Kerala":         {"Alappuzha", "Ernakulam", "Idukki", "Kannur", "Kasaragod", "Kollam", "Kottayam", "Kozhikode", "Malappuram", "Palakkad", "Pathanamthitta", "Thiruvananthapuram", "Thrissur", "Wayanad"},
	"Madhya Pradesh": {"Balaghat", "Betul", "Bhopal", "Chhindwara", "Dewas", "Dhar", "Gwalior", "Hoshangabad", "Indore", "Jabalpur", "Mandsaur", "Ratlam", "Rewa", "Sagar", "Satna", "Sehore", "Ujjain", "Vidisha"},
	"Maharashtra":    {"Ahmednagar", "Akola", "Amravati", "Aurangabad", "Beed", "Buldhana", "Dhule", "Jalgaon", "Kolhapur", "Latur", "Nagpur", "Nanded", "Nashik", "Osmanabad", "Parbhani", "Pune", "Sangli", "Satara", "Solapur", "Yavatmal"},
	"Punjab":         {"Amritsar", "Barnala", "Bathinda", "Faridkot", "Fatehgarh Sahib", "Gurdaspur", "Hoshiarpur", "Jalandhar", "Kapurthala", "Ludhiana", "Mansa", "Moga", "Mohali", "Muktsar", "Pathankot", "Patiala", "Rupnagar", "Sangrur", "Tarn Taran"},
	"Rajasthan":      {"Ajmer", "Alwar", "Banswara", "Barmer", "Bharatpur", "Bhilwara", "Bikaner", "Bundi", "Chittorgarh", "Churu", "Ganganagar", "Hanumangarh", "Jaipur", "Jodhpur", "Kota", "Nagaur", "Sikar", "Udaipur"},
	"Tamil Nadu":     {"Coimbatore", "Cuddalore", "Dindigul", "Erode", "Kanchipuram", "Madurai", "Nagapattinam", "Salem", "Thanjavur", "Theni", "Tiruchirappalli", "Tirunelveli", "Tiruppur", "Vellore", "Villupuram", "Virudhunagar"},
	"Telangana":      {"Adilabad", "Hyderabad", "Jagtial", "Kamareddy", "Karimnagar", "Khammam", "Mahbubnagar", "Medak", "Nalgonda", "Nizamabad", "Warangal"},
	"Uttar Pradesh":  {"Agra", "Aligarh", "Allahabad", "Azamgarh", "Bareilly", "Basti", "Etawah", "Ghaziabad", "Gorakhpur", "Jhansi", "Kanpur", "Lucknow", "Mathura", "Meerut", "Moradabad", "Muzaffarnagar", "Saharanpur", "Varanasi"},
	"Uttarakhand":    {"Almora", "Bageshwar", "Chamoli", "Champawat", "Dehradun", "Haridwar", "Nainital", "Pauri", "Pithoragarh", "Rudraprayag", "Tehri", "Udham Singh Nagar", "Uttarkashi"},
	"West Bengal":    {"Alipurduar", "Bankura", "Bardhaman", "Birbhum", "Cooch Behar", "Darjeeling", "Hooghly", "Howrah", "Jalpaiguri", "Malda", "Murshidabad", "Nadia", "North 24 Parganas", "Purulia", "South 24 Parganas"},
}

// maxDistricts caps how many districts a state reports in filter dropdowns.
const maxDistricts = 20

// States returns the state catalog, sorted.
func States() []string {
	out := make([]string, len(indianStates))
	copy(out, indianStates)
	sort.Strings(out)
	return out
}

// Commodities returns the full commodity catalog, sorted.
func Commodities() []string {
	out := make([]string, len(allCommodities))
	copy(out, allCommodities)
	sort.Strings(out)
	return out
}

// Districts returns up to maxDistricts districts for a state, sorted.
// Unknown states yield an empty list.
func Districts(state string) []string {
	src := districtsByState[state]
	out := make([]string, len(src))
	copy(out, src)
	sort.Strings(out)
	if len(out) > maxDistricts {
		out = out[:maxDistricts]
	}
	return out
}
