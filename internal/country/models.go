package country

import "regexp"

// Region represents a supported calling region
type Region struct {
	Name     string         `json:"name"`
	DialCode string         `json:"dial_code"`
	ISO      string         `json:"iso"`
	Flag     string         `json:"flag"`
	Pattern  *regexp.Regexp `json:"-"`
}

// RegionResponse is the JSON shape returned by the countries endpoint
type RegionResponse struct {
	Name     string `json:"name"`
	DialCode string `json:"dial_code"`
	ISO      string `json:"iso"`
	Flag     string `json:"flag"`
	Pattern  string `json:"pattern"`
}

// Response converts a Region into its JSON-safe form
func (r Region) Response() RegionResponse {
	return RegionResponse{
		Name:     r.Name,
		DialCode: r.DialCode,
		ISO:      r.ISO,
		Flag:     r.Flag,
		Pattern:  r.Pattern.String(),
	}
}
