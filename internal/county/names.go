package county

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// UnknownName is the sentinel for FIPS codes missing from the name table.
const UnknownName = "Unknown"

// NameSuffix is appended to the short name to form the legal/statistical
// area description (NAMELSAD).
const NameSuffix = " County"

//go:embed counties.yaml
var countiesYAML []byte

var names = mustLoadNames()

func mustLoadNames() map[string]string {
	var m map[string]string
	if err := yaml.Unmarshal(countiesYAML, &m); err != nil {
		panic(fmt.Sprintf("county: parse embedded name table: %v", err))
	}
	return m
}

// FullCode joins the state and county FIPS components into the combined
// five-digit region code.
func FullCode(stateFIPS, countyFIPS string) string {
	return stateFIPS + countyFIPS
}

// Name resolves a combined FIPS code to its county name, or UnknownName
// when the code is not in the table.
func Name(fullFIPS string) string {
	if n, ok := names[fullFIPS]; ok {
		return n
	}
	return UnknownName
}

// LongName resolves a combined FIPS code to its name with the county
// suffix appended. Unmapped codes yield the sentinel plus the suffix.
func LongName(fullFIPS string) string {
	return Name(fullFIPS) + NameSuffix
}

// Codes returns all known combined FIPS codes in ascending order.
func Codes() []string {
	codes := make([]string, 0, len(names))
	for code := range names {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
