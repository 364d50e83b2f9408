package searchlog

import "time"

// Record, üye listesinin yanında tutulan yerel arama/görüşme günlüğünün bir
// satırıdır: kiminle görüşüldü, kim aradı, ne not düşüldü.
type Record struct {
	ID           string    `json:"id"`
	PersonID     string    `json:"personId"`
	PersonName   string    `json:"personName,omitempty"`
	SearcherName string    `json:"searcherName,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Date         time.Time `json:"date"`
}
