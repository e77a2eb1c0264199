package model

type AnalyzeRequest struct {
	URL       string  `json:"url"`
	Blocks    int     `json:"blocks,omitempty"`
	Frequency float64 `json:"frequency,omitempty"`
}

// KeyValue pairs a window start time (ms) with its local NPS.
type KeyValue struct {
	Key   int     `json:"key"`
	Value float64 `json:"value"`
}

type AnalyzeResponse struct {
	Id           string     `json:"id,omitempty"`
	AvgNps       float64    `json:"avg_nps"`
	Distribution []KeyValue `json:"distribution,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
