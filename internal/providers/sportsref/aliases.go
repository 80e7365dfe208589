package sportsref

import "strings"

// Registry abbreviations that Sports-Reference spells differently.
var (
	nflAliases = map[string]string{
		"ARI": "CRD",
		"BAL": "RAV",
		"GB":  "GNB",
		"HOU": "HTX",
		"IND": "CLT",
		"KC":  "KAN",
		"LV":  "RAI",
		"LAC": "SDG",
		"LAR": "RAM",
		"NE":  "NWE",
		"NO":  "NOR",
		"SF":  "SFO",
		"TB":  "TAM",
		"TEN": "OTI",
	}
	mlbAliases = map[string]string{
		"CWS": "CHW",
		"KC":  "KCR",
		"SD":  "SDP",
		"SF":  "SFG",
		"TB":  "TBR",
		"WSH": "WSN",
	}
)

func toSite(aliases map[string]string, abbr string) string {
	abbr = strings.ToUpper(strings.TrimSpace(abbr))
	if alias, ok := aliases[abbr]; ok {
		return alias
	}
	return abbr
}

func fromSite(aliases map[string]string, abbr string) string {
	abbr = strings.ToUpper(strings.TrimSpace(abbr))
	for reg, alias := range aliases {
		if alias == abbr {
			return reg
		}
	}
	return abbr
}
