package rules

import (
	"jsethi/finanalyzer/internal/models"
)

// DefaultKeywords is the built-in general category table. Account-number
// keys come from the source statements; lookups are case-insensitive so the
// loader does not normalize them.
var DefaultKeywords = KeywordTable{
	// Interest and salary
	"credit interest": "Interest",
	"interest":        "Interest",
	"sbint":           "Interest",
	"salary":          "Salary",
	"sal":             "Salary",

	// Known account numbers and counterparties
	"11157594174": "Dad",
	"41860880772": "Mommy",
	"36515075873": "Credit Card Payment",
	"cred":        "Credit Card Payment",
	"42560298142": "Loan Account 1",
	"43772632759": "Loan Account 2",
	"homeloan":    "Processing Fee",
	"home loan":   "Processing Fee",
	"stamp duty":  "Processing Fee",
	"iskcon":      "Donation",
	"srijagannat": "Donation",

	// Self transfers, most specific first by length
	"sbin/**1739":    "Self Transfer - SBI",
	"jyotirmay/sbin": "Self Transfer - SBI",
	"jyotirmay/cnrb": "Self Transfer - Canara",
	"jyotirmay/kmb":  "Self Transfer - Kotak",
	"41083981739":    "Self Transfer - SBI",
	"jyotirmay":      "Self Transfer",
	"cnrb-xx159":     "Self Transfer - Canara",
	"kkbk-xx321":     "Self Transfer - Kotak",

	// Food & dining
	"swiggy":   "Food & Dining",
	"zomato":   "Food & Dining",
	"dominos":  "Food & Dining",
	"mcdonald": "Food & Dining",

	// Shopping
	"amazon":   "Shopping",
	"flipkart": "Shopping",
	"myntra":   "Shopping",
	"zepto":    "Shopping",

	// Travel
	"ola":    "Travel",
	"uber":   "Travel",
	"redbus": "Travel",
	"irctc":  "Travel",

	// Mobile & recharge
	"airtel":   "Mobile Recharge",
	"jio":      "Mobile Recharge",
	"recharge": "Mobile Recharge",

	// Investment
	"zerodha":            "Investment",
	"groww":              "Investment",
	"mutual":             "Investment",
	"indianclearingcorp": "Investment",

	// Banking & transfers
	"upi": models.CategoryUPITransfer,
	"apy": "APY",
	"atm": "ATM Withdrawal",

	// Charges, schemes, refunds
	"debit card annual charges": "Bank Charges",
	"sms":    "Bank Charges",
	"pmsby":  "PMSBY",
	"refund": "Refunds",
}

// DefaultTransfers is the built-in hierarchical transfer table.
var DefaultTransfers = TransferTable{
	"Construction": {
		"Cement":     {"bijan kum", "manoranja", "rabindra"},
		"Brick":      {"shyamsund", "mita bric", "harischan"},
		"Sand":       {"mr srikan"},
		"Contractor": {"bijay  je", "kahnu ch"},
		"Home Loan":  {"lic housi"},
	},
	"Investment": {
		"NPS":         {"nps trust"},
		"Mutual Fund": {"indiancle", "mutual", "indianclearingcorp"},
		"Trading":     {"zerodha", "groww"},
	},
	"Rent & Housing": {
		"Rent": {"prasad", "bhavanipr", "nagireddy"},
	},
	"Credit Card Payment": {
		"CRED": {"cred/", "cred flash", "credclub", "credpaycr"},
		"Cheq": {"cheq digi", "cheq"},
	},
	"Bills & Entertainment": {
		"Food & Dining":   {"credpaysw", "swiggy", "zomato", "dominos", "mcdonald", "eatclub", "smartq"},
		"Utilities":       {"credpayea", "euronetgp", "tp northe"},
		"Mobile Recharge": {"airtel", "jio", "recharge"},
		"Donation":        {"iskcon", "bal raksh", "srijagannat"},
		"Internet Bill":   {"act  broa"},
		"Health-Med":      {"slv medic", "manoj med"},
	},
	"Shopping": {
		"E-commerce":     {"amazon", "flipkart", "myntra"},
		"Quick Commerce": {"dunzo", "zepto", "blinkit", "bigbasket"},
		"Clothing":       {"meesho", "fashion f"},
		"Delivery":       {"ekart", "ecomexpre"},
	},
	"Travel": {
		"Train Booking": {"irctc", "ixigo"},
		"Cab Service":   {"ola", "uber"},
		"Bus Booking":   {"redbus"},
		"AirTravel":     {"goibibo", "akasa air"},
		"Daily Commute": {"rapido", "bmtc", "roppen tr"},
	},
	"Wallet": {
		"Paytm":  {"add money/pytm"},
		"Amazon": {"amzn1.acc"},
		"Gpay":   {"gpay", "google in"},
	},
	"Cashbacks": {
		"Cashback": {"cashback", "googlepay"},
	},
	"Friends": {
		"Self Transfer": {"jyotirmay", "jyotirma"},
		"Arunanshu":     {"arunanshu"},
		"Rajesh":        {"rajesh"},
		"Satyajit":      {"satyajit"},
		"Soubhagya":     {"soubhagya"},
	},
}

// DefaultBroadCategories is the built-in closed mapping from category labels
// to portfolio-level broad categories. Any label missing here resolves to
// "Miscellaneous".
var DefaultBroadCategories = BroadCategoryMap{
	// Income
	"Salary":                 models.BroadIncome,
	"Refunds":                models.BroadIncome,
	"UPI-Cashbacks-Cashback": models.BroadIncome,

	// Self transfers, eliminated from external totals
	"Self Transfer":             models.BroadSelfTransfer,
	"Self Transfer - SBI":       models.BroadSelfTransfer,
	"Self Transfer - Canara":    models.BroadSelfTransfer,
	"Self Transfer - Kotak":     models.BroadSelfTransfer,
	"UPI-Friends-Self Transfer": models.BroadSelfTransfer,

	// Food & dining
	"Food & Dining":                           "Food & Dining",
	"UPI-Bills & Entertainment-Food & Dining": "Food & Dining",

	// Transportation
	"Travel":                   "Transportation & Commute",
	"UPI-Travel-Daily Commute": "Transportation & Commute",
	"UPI-Travel-Cab Service":   "Transportation & Commute",
	"UPI-Travel-Bus Booking":   "Transportation & Commute",
	"UPI-Travel-Train Booking": "Transportation & Commute",
	"UPI-Travel-AirTravel":     "Travel & Vacation",

	// Utilities & bills
	"Mobile Recharge":                           "Utilities & Bills",
	"UPI-Bills & Entertainment-Mobile Recharge": "Utilities & Bills",
	"UPI-Bills & Entertainment-Utilities":       "Utilities & Bills",
	"UPI-Bills & Entertainment-Internet Bill":   "Utilities & Bills",

	// Healthcare
	"UPI-Bills & Entertainment-Health-Med": "Healthcare & Medical",

	// Shopping
	"Shopping":                    "Shopping & Retail",
	"UPI-Shopping-E-commerce":     "Shopping & Retail",
	"UPI-Shopping-Quick Commerce": "Shopping & Retail",
	"UPI-Shopping-Clothing":       "Shopping & Retail",
	"UPI-Shopping-Delivery":       "Shopping & Retail",

	// Investment
	"Investment":                 "Investment & SIP",
	"UPI-Investment-Mutual Fund": "Investment & SIP",
	"UPI-Investment-NPS":         "Investment & SIP",
	"UPI-Investment-Trading":     "Investment & SIP",
	"APY":                        "Investment & SIP",

	// Insurance
	"PMSBY": "Insurance & PMSBY",

	// Charges and withdrawals
	"Bank Charges":   "Bank Charges & Fees",
	"ATM Withdrawal": "ATM Withdrawals",

	// Credit card payments
	"Credit Card Payment":          "Credit Card Payments",
	"UPI-Credit Card Payment-CRED": "Credit Card Payments",
	"UPI-Credit Card Payment-Cheq": "Credit Card Payments",

	// Construction
	"UPI-Construction-Cement":     "Construction",
	"UPI-Construction-Brick":      "Construction",
	"UPI-Construction-Sand":       "Construction",
	"UPI-Construction-Contractor": "Construction",
	"UPI-Construction-Home Loan":  "Construction",

	// Donations
	"Donation":                           "Donations & Temple",
	"UPI-Bills & Entertainment-Donation": "Donations & Temple",

	// Rent & housing
	"UPI-Rent & Housing-Rent": "Rent & Housing",

	// Friends & family
	"Dad":                   "Friends & Family",
	"Mommy":                 "Friends & Family",
	"UPI-Friends-Arunanshu": "Friends & Family",
	"UPI-Friends-Rajesh":    "Friends & Family",
	"UPI-Friends-Satyajit":  "Friends & Family",
	"UPI-Friends-Soubhagya": "Friends & Family",

	// Loans; the direction-dependent override may replace these per row
	"Loan Account 1": models.BroadLoanRepayment,
	"Loan Account 2": models.BroadLoanRepayment,

	// Wallets and services
	"UPI-Wallet-Amazon": "Digital Wallets",
	"UPI-Wallet-Gpay":   "Digital Wallets",
	"UPI-Wallet-Paytm":  "Digital Wallets",
	"Processing Fee":    "Bank Charges & Fees",

	// Catch-alls
	"Others":     models.BroadMiscellaneous,
	"UPI-Others": models.BroadMiscellaneous,
	"Interest":   models.BroadMiscellaneous,
}

// DefaultTables returns the built-in rule tables as one bundle.
func DefaultTables() Tables {
	return Tables{
		Keywords:        DefaultKeywords,
		Transfers:       DefaultTransfers,
		BroadCategories: DefaultBroadCategories,
	}
}
