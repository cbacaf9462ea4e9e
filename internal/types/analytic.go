package types

import "time"

type ClientInfo struct {
	Browser  string `json:"browser"`
	Country  string `json:"country"`
	IP       string `json:"ip"`
	OS       string `json:"os"`
	Referrer string `json:"referrer"`
}

type Click struct {
	Hash     string    `json:"hash" db:"hash"`
	Created  time.Time `json:"created" db:"created"`
	Referrer string    `json:"referrer" db:"referrer"`
	Browser  string    `json:"browser" db:"browser"`
	OS       string    `json:"os" db:"os"`
	IP       string    `json:"ip" db:"ip"`
	Country  string    `json:"country" db:"country"`
}

func NewClick(hash string, info ClientInfo, at time.Time) Click {
	return Click{
		Hash:     hash,
		Created:  at,
		Referrer: info.Referrer,
		Browser:  info.Browser,
		OS:       info.OS,
		IP:       info.IP,
		Country:  info.Country,
	}
}
