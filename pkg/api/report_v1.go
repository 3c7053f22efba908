// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON schema for --report json.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Genes  []GeneV1   `json:"genes"`
	Legend []LegendV1 `json:"legend"`
}

// GeneV1 is one FASTA record with its exon and motif hits.
// Positions are 1-based and inclusive.
type GeneV1 struct {
	Gene              string    `json:"gene"`
	Track             int       `json:"track"`
	Length            int       `json:"length"`
	ReverseComplement bool      `json:"reverse_complement"`
	Exon              SpanV1    `json:"exon"`
	Matches           []MatchV1 `json:"matches"`
	Header            string    `json:"header,omitempty"`
}

type SpanV1 struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type MatchV1 struct {
	Motif string `json:"motif"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// LegendV1 maps a motif to its color as #rrggbb.
type LegendV1 struct {
	Motif string `json:"motif"`
	Color string `json:"color"`
}
