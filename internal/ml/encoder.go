package ml

// Teams and Venues are the closed categorical vocabularies fixed when the
// live-match model was trained. Order matters: the first entry of each list
// is the reference category, represented by all indicator columns being 0.
var Teams = []string{
	"Chennai Super Kings", "Delhi Capitals", "Kings XI Punjab", "Kolkata Knight Riders",
	"Mumbai Indians", "Rajasthan Royals", "Royal Challengers Bangalore", "Sunrisers Hyderabad",
	"Gujarat Titans", "Lucknow Super Giants", "Punjab Kings", "Rising Pune Supergiant",
	"Rising Pune Supergiants", "Gujarat Lions", "Delhi Daredevils",
}

var Venues = []string{
	"Arun Jaitley Stadium",
	"Arun Jaitley Stadium, Delhi",
	"Barabati Stadium",
	"Barsapara Cricket Stadium, Guwahati",
	"Bharat Ratna Shri Atal Bihari Vajpayee Ekana Cricket Stadium, Lucknow",
	"Brabourne Stadium",
	"Brabourne Stadium, Mumbai",
	"Buffalo Park",
	"De Beers Diamond Oval",
	"Dr DY Patil Sports Academy",
	"Dr DY Patil Sports Academy, Mumbai",
	"Dr. Y.S. Rajasekhara Reddy ACA-VDCA Cricket Stadium",
	"Dr. Y.S. Rajasekhara Reddy ACA-VDCA Cricket Stadium, Visakhapatnam",
	"Dubai International Cricket Stadium",
	"Eden Gardens",
	"Eden Gardens, Kolkata",
	"Feroz Shah Kotla",
	"Green Park",
	"Himachal Pradesh Cricket Association Stadium",
	"Himachal Pradesh Cricket Association Stadium, Dharamsala",
	"Holkar Cricket Stadium",
	"JSCA International Stadium Complex",
	"Kingsmead",
	"M Chinnaswamy Stadium",
	"M Chinnaswamy Stadium, Bengaluru",
	"M.Chinnaswamy Stadium",
	"MA Chidambaram Stadium",
	"MA Chidambaram Stadium, Chepauk",
	"MA Chidambaram Stadium, Chepauk, Chennai",
	"Maharaja Yadavindra Singh International Cricket Stadium, Mullanpur",
	"Maharashtra Cricket Association Stadium",
	"Maharashtra Cricket Association Stadium, Pune",
	"Narendra Modi Stadium, Ahmedabad",
	"Nehru Stadium",
	"New Wanderers Stadium",
	"Newlands",
	"OUTsurance Oval",
	"Punjab Cricket Association IS Bindra Stadium",
	"Punjab Cricket Association IS Bindra Stadium, Mohali",
	"Punjab Cricket Association IS Bindra Stadium, Mohali, Chandigarh",
	"Punjab Cricket Association Stadium, Mohali",
	"Rajiv Gandhi International Stadium",
	"Rajiv Gandhi International Stadium, Uppal",
	"Rajiv Gandhi International Stadium, Uppal, Hyderabad",
	"Sardar Patel Stadium, Motera",
	"Saurashtra Cricket Association Stadium",
	"Sawai Mansingh Stadium",
	"Sawai Mansingh Stadium, Jaipur",
	"Shaheed Veer Narayan Singh International Stadium",
	"Sharjah Cricket Stadium",
	"Sheikh Zayed Stadium",
	"St George's Park",
	"Subrata Roy Sahara Stadium",
	"SuperSport Park",
	"Vidarbha Cricket Association Stadium, Jamtha",
	"Wankhede Stadium",
	"Wankhede Stadium, Mumbai",
	"Zayed Cricket Stadium, Abu Dhabi",
}

// EncodeOneHot appends drop-first indicator columns for value against vocab,
// named "<prefix>_<entry>" for every vocabulary entry except the first.
// A value outside the vocabulary sets no indicator, which makes it
// indistinguishable from the reference category. Training-time encoding
// behaves exactly the same way, so unknown categories must not error here.
func EncodeOneHot(r *Row, prefix, value string, vocab []string) {
	for _, entry := range vocab[1:] {
		col := prefix + "_" + entry
		if value == entry {
			r.Set(col, 1)
		} else {
			r.Set(col, 0)
		}
	}
}
