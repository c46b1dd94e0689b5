package interviews

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

const wireDateFormat = "2006-01-02"

// FetchParameters filter the interview list endpoint. Zero values are
// omitted from the query.
type FetchParameters struct {
	Date        time.Time
	DateFrom    time.Time
	DateTo      time.Time
	IncludePast bool
	CompanyID   int
	CompanyName string
	Outcome     string
}

func (p FetchParameters) Validate() error {

	if !p.Date.IsZero() && (!p.DateFrom.IsZero() || !p.DateTo.IsZero()) {
		return fmt.Errorf("can't use both date and date range")
	}

	if !p.DateTo.IsZero() && p.DateFrom.IsZero() {
		return fmt.Errorf("dateTo requires dateFrom")
	}

	if !p.DateFrom.IsZero() && !p.DateTo.IsZero() && p.DateTo.Before(p.DateFrom) {
		return fmt.Errorf("dateTo must not be before dateFrom")
	}

	return nil
}

func (p FetchParameters) ToUrlParams() url.Values {

	params := url.Values{}

	if !p.Date.IsZero() {
		params.Add("date", p.Date.Format(wireDateFormat))
	}

	if !p.DateFrom.IsZero() {
		params.Add("dateFrom", p.DateFrom.Format(wireDateFormat))
	}

	if !p.DateTo.IsZero() {
		params.Add("dateTo", p.DateTo.Format(wireDateFormat))
	}

	if p.IncludePast {
		params.Add("includePast", "true")
	}

	if p.CompanyID != 0 {
		params.Add("companyId", strconv.Itoa(p.CompanyID))
	}

	if p.CompanyName != "" {
		params.Add("company", p.CompanyName)
	}

	if p.Outcome != "" {
		params.Add("outcome", p.Outcome)
	}

	return params
}
