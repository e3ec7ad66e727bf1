package render

import (
	"io"
	"math"
	"sort"

	"github.com/soypat/eurorack"
)

// WriteExcellon writes the document's non-plated drills as an Excellon drill
// file. One tool is defined per hole width. Oval holes are written as G85
// slots between their end circle centers. Y is negated as in board CAM
// exports.
func WriteExcellon(w io.Writer, doc *eurorack.Document) error {
	var tools []float64
	byTool := map[float64][]stadium{}
	for _, fp := range doc.Footprints {
		for _, p := range fp.Pads {
			st := padStadium(p)
			d := math.Round(2*st.r*1e3) / 1e3
			if _, ok := byTool[d]; !ok {
				tools = append(tools, d)
			}
			byTool[d] = append(byTool[d], st)
		}
	}
	sort.Float64s(tools)

	ew := &errWriter{w: w}
	ew.printf("M48\n")
	ew.printf("; DRILL file ephelper\n")
	ew.printf("; FORMAT={-:-/ absolute / metric / decimal}\n")
	ew.printf("; #@! TA.AperFunction,NonPlated,NPTH,ComponentDrill\n")
	ew.printf("FMAT,2\n")
	ew.printf("METRIC\n")
	for i, d := range tools {
		ew.printf("T%dC%.3f\n", i+1, d)
	}
	ew.printf("%%\n")
	ew.printf("G90\n")
	ew.printf("G05\n")
	for i, d := range tools {
		ew.printf("T%d\n", i+1)
		for _, st := range byTool[d] {
			if st.l == 0 {
				ew.printf("X%.3fY%.3f\n", st.center.X, -st.center.Y)
				continue
			}
			a, b := st.ends()
			ew.printf("X%.3fY%.3fG85X%.3fY%.3f\n", a.X, -a.Y, b.X, -b.Y)
		}
	}
	ew.printf("M30\n")
	return ew.err
}
