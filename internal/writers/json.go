// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"

	"motifmark/internal/pipeline"
	"motifmark/pkg/api"
)

func init() { Register("json", WriteJSON) }

// ToAPIReport converts a pipeline result to the stable wire schema (v1).
func ToAPIReport(res pipeline.Result) api.ReportV1 {
	out := api.ReportV1{
		Genes:  make([]api.GeneV1, 0, len(res.Records)),
		Legend: make([]api.LegendV1, 0, res.Colors.Len()),
	}
	for _, r := range res.Records {
		g := api.GeneV1{
			Gene:              r.Gene,
			Track:             r.Track,
			Length:            len(r.Seq),
			ReverseComplement: r.RevComp,
			Exon:              api.SpanV1{Start: r.Exon.Start, End: r.Exon.End},
			Matches:           make([]api.MatchV1, 0, len(r.Matches)),
			Header:            r.Header,
		}
		for _, m := range r.Matches {
			g.Matches = append(g.Matches, api.MatchV1{Motif: m.Motif, Start: m.Start, End: m.End})
		}
		out.Genes = append(out.Genes, g)
	}
	for _, k := range res.Colors.Keys() {
		c, _ := res.Colors.Get(k)
		out.Legend = append(out.Legend, api.LegendV1{Motif: k, Color: c.Hex()})
	}
	return out
}

// WriteJSON writes the report as one indented JSON object.
func WriteJSON(w io.Writer, res pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIReport(res))
}
