package quotes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// flexFloat handles metric values that arrive as number, string or null.
// null and unparsable strings decode to nil: the metric is unavailable,
// not zero.
type flexFloat struct {
	v  float64
	ok bool
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = flexFloat{}
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = flexFloat{v: num, ok: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" || s == "N/A" {
			*f = flexFloat{}
			return nil
		}
		num, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = flexFloat{}
			return nil
		}
		*f = flexFloat{v: num, ok: true}
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into float64", string(data))
}

// value returns the metric as the domain's nil-able representation.
func (f *flexFloat) value() *float64 {
	if f == nil || !f.ok {
		return nil
	}
	v := f.v
	return &v
}

// quoteRow is one instrument in the single-timeframe response.
type quoteRow struct {
	Symbol           string     `json:"symbol"`
	Name             string     `json:"name"`
	Price            *flexFloat `json:"price"`
	Change           *flexFloat `json:"change"`
	ChangePct        *flexFloat `json:"change_pct"`
	RelativeStrength *flexFloat `json:"relative_strength"`
	RS               *flexFloat `json:"rs"` // alternate key used by older deployments
	Error            bool       `json:"error"`
}

// relativeStrength prefers the canonical key over the legacy alias.
func (r quoteRow) relativeStrength() *float64 {
	if v := r.RelativeStrength.value(); v != nil {
		return v
	}
	return r.RS.value()
}

type performanceResponse struct {
	Data []quoteRow `json:"data"`
}

// multiSlice is one timeframe's metrics inside the multi response.
type multiSlice struct {
	Change           *flexFloat `json:"change"`
	ChangePct        *flexFloat `json:"change_pct"`
	RelativeStrength *flexFloat `json:"relative_strength"`
	RS               *flexFloat `json:"rs"`
	Error            bool       `json:"error"`
}

func (s multiSlice) relativeStrength() *float64 {
	if v := s.RelativeStrength.value(); v != nil {
		return v
	}
	return s.RS.value()
}

// multiRow is one instrument in the server-side multi-timeframe response,
// keyed by the compact timeframe spelling.
type multiRow struct {
	Symbol     string                `json:"symbol"`
	Name       string                `json:"name"`
	Price      *flexFloat            `json:"price"`
	Timeframes map[string]multiSlice `json:"timeframes"`
}

type multiResponse struct {
	Data []multiRow `json:"data"`
}
