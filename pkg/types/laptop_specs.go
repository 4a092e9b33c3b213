package types

// LaptopSpecs is the structured hardware block stored as jsonb on a laptop row.
type LaptopSpecs struct {
	Processor string `json:"processor"`
	RAM       string `json:"ram"`
	Storage   string `json:"storage"`
	Display   string `json:"display"`
	Graphics  string `json:"graphics"`
	Battery   string `json:"battery"`
}
