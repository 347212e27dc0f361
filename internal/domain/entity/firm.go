package entity

import "fmt"

// FirmProfile is the static seller identity printed on every quotation:
// header block, bank details and the closing signature. Profiles are
// plug-and-play per branch and selected by configuration.
type FirmProfile struct {
	Name         string
	Subtitle     string
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	GSTIN        string

	BankAccountName   string
	BankNameBranch    string
	BankAccountNumber string
	BankIFSC          string

	RegardsName string
	PhoneNumber string
}

var firmProfiles = map[string]FirmProfile{
	"btk": {
		Name:         "BELGAUM TYRES",
		Subtitle:     "(Unit 1 of Belgaum Tyres & Treads Pvt Ltd.)",
		AddressLine1: "Plot No. 469/18, Mukt Sainik Society,",
		AddressLine2: "Opp. Market Yard, Old Bangalore- Pune Road,",
		AddressLine3: "Kolhapur, Maharashtra-416 005.",
		GSTIN:        "GSTIN: 27AABCB0079N1ZI",

		BankAccountName:   "Belgaum Tyres.",
		BankNameBranch:    "Axis Bank, Tarabai Park Branch.",
		BankAccountNumber: "920020016291615",
		BankIFSC:          "UTIB 000 4388",

		RegardsName: "Belgaum Tyres,",
		PhoneNumber: "+91-7026615005",
	},
	"cvac": {
		Name:         "BELGAUM TYRES - CVAC",
		Subtitle:     "(A Unit of Belgaum Tyres & Treads Pvt Ltd.)",
		AddressLine1: "Near Rani Channamma University,",
		AddressLine2: "P.B Road Bhootramatti,",
		AddressLine3: "Belagavi, Karnataka-591 156.",
		GSTIN:        "GSTIN: 29AABCB0079N2ZD",

		BankAccountName:   "M/S BELGAUM TYRES CVAC.",
		BankNameBranch:    "Union Bank, Kakti Branch.",
		BankAccountNumber: "332001010036265",
		BankIFSC:          "UBIN0533203",

		RegardsName: "Belgaum Tyres CVAC,",
		PhoneNumber: "+91-7026614994",
	},
}

// ProfileByName returns the built-in firm profile for the given key
// ("btk" or "cvac").
func ProfileByName(name string) (FirmProfile, error) {
	p, ok := firmProfiles[name]
	if !ok {
		return FirmProfile{}, fmt.Errorf("unknown firm profile %q", name)
	}
	return p, nil
}
