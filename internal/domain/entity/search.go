package entity

// StationMatch is one result of a station name search.
type StationMatch struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TrainMatch is one result of a train name search.
type TrainMatch struct {
	Number   string `json:"number"`
	Name     string `json:"name"`
	FromCode string `json:"fromStnCode"`
	ToCode   string `json:"toStnCode"`
}
