package chronicle

// IATA two-letter codes for the carriers that turn up in personal logs. Unknown codes
// fall back to the code itself.
var airlineNames = map[string]string{
	"3U": "Sichuan Airlines",
	"8L": "Lucky Air",
	"9C": "Spring Airlines",
	"AA": "American Airlines",
	"AC": "Air Canada",
	"AF": "Air France",
	"AK": "AirAsia",
	"BA": "British Airways",
	"BR": "EVA Air",
	"CA": "Air China",
	"CI": "China Airlines",
	"CX": "Cathay Pacific",
	"CZ": "China Southern Airlines",
	"DL": "Delta Air Lines",
	"EK": "Emirates",
	"FM": "Shanghai Airlines",
	"GS": "Tianjin Airlines",
	"HO": "Juneyao Air",
	"HU": "Hainan Airlines",
	"HX": "Hong Kong Airlines",
	"JL": "Japan Airlines",
	"KE": "Korean Air",
	"KN": "China United Airlines",
	"LH": "Lufthansa",
	"MF": "Xiamen Airlines",
	"MH": "Malaysia Airlines",
	"MU": "China Eastern Airlines",
	"NH": "All Nippon Airways",
	"OZ": "Asiana Airlines",
	"QF": "Qantas",
	"SC": "Shandong Airlines",
	"SQ": "Singapore Airlines",
	"TG": "Thai Airways",
	"TR": "Scoot",
	"UA": "United Airlines",
	"UO": "HK Express",
	"VN": "Vietnam Airlines",
	"ZH": "Shenzhen Airlines",
}

func AirlineName(code string) string {
	if name,exists := airlineNames[code]; exists { return name }
	return code
}
