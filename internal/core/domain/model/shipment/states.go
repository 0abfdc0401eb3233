package shipment

import "fulfillment/internal/pkg/errs"

// AbbreviateState resolves a full US state name to its two-letter code.
// Values of two characters or fewer are assumed to already be abbreviations
// and pass through unchanged. An unknown full name is a lookup failure.
func AbbreviateState(state string) (string, error) {
	if len(state) <= 2 {
		return state, nil
	}

	abbr, ok := stateAbbreviations[state]
	if !ok {
		return "", errs.NewObjectNotFoundError("state", state)
	}
	return abbr, nil
}

var stateAbbreviations = map[string]string{
	"Alabama":                        "AL",
	"Alaska":                         "AK",
	"American Samoa":                 "AS",
	"Arizona":                        "AZ",
	"Arkansas":                       "AR",
	"California":                     "CA",
	"Colorado":                       "CO",
	"Connecticut":                    "CT",
	"Delaware":                       "DE",
	"District Of Columbia":           "DC",
	"Federated States Of Micronesia": "FM",
	"Florida":                        "FL",
	"Georgia":                        "GA",
	"Guam":                           "GU",
	"Hawaii":                         "HI",
	"Idaho":                          "ID",
	"Illinois":                       "IL",
	"Indiana":                        "IN",
	"Iowa":                           "IA",
	"Kansas":                         "KS",
	"Kentucky":                       "KY",
	"Louisiana":                      "LA",
	"Maine":                          "ME",
	"Marshall Islands":               "MH",
	"Maryland":                       "MD",
	"Massachusetts":                  "MA",
	"Michigan":                       "MI",
	"Minnesota":                      "MN",
	"Mississippi":                    "MS",
	"Missouri":                       "MO",
	"Montana":                        "MT",
	"Nebraska":                       "NE",
	"Nevada":                         "NV",
	"New Hampshire":                  "NH",
	"New Jersey":                     "NJ",
	"New Mexico":                     "NM",
	"New York":                       "NY",
	"North Carolina":                 "NC",
	"North Dakota":                   "ND",
	"Northern Mariana Islands":       "MP",
	"Ohio":                           "OH",
	"Oklahoma":                       "OK",
	"Oregon":                         "OR",
	"Palau":                          "PW",
	"Pennsylvania":                   "PA",
	"Puerto Rico":                    "PR",
	"Rhode Island":                   "RI",
	"South Carolina":                 "SC",
	"South Dakota":                   "SD",
	"Tennessee":                      "TN",
	"Texas":                          "TX",
	"Utah":                           "UT",
	"Vermont":                        "VT",
	"Virgin Islands":                 "VI",
	"Virginia":                       "VA",
	"Washington":                     "WA",
	"West Virginia":                  "WV",
	"Wisconsin":                      "WI",
	"Wyoming":                        "WY",
}
