package domain

// Client is the person receiving care. Only the fields the scheduling
// engine needs are modeled; the full record lives in the agency application.
type Client struct {
	ID       int64
	AgencyID int64
	FullName string
	ZipCode  string // service location zip code used by the eligibility matcher
}
