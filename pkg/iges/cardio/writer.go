package cardio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ironplane/ironplane/pkg/iges"
)

const cardWidth = 80

// Writer implements [iges.RecordSink], accumulating Directory Entry /
// Parameter Data pairs and flushing a complete, spec-shaped IGES file
// (Start, Global, Directory Entry, Parameter Data, Terminate sections) on
// Close.
type Writer struct {
	w      *bufio.Writer
	global iges.Global

	deLines []string
	pdLines []string
	deCount int
	pdCount int
}

// NewWriter returns a Writer that renders global into the Global section
// and streams subsequent Put calls into the Directory Entry / Parameter
// Data sections.
func NewWriter(w io.Writer, global iges.Global) *Writer {
	return &Writer{w: bufio.NewWriter(w), global: global}
}

// Put implements [iges.RecordSink]. Model.WriteToRecords calls it once per
// entity, in topological order, with DE sequence numbers already assigned.
func (wr *Writer) Put(de iges.DirectoryEntry, pd iges.PDRecord) error {
	seq := de.SequenceNumber
	pdStart := wr.pdCount + 1
	pdLines := formatPDLines(pd, seq, pdStart)
	wr.deLines = append(wr.deLines, formatDELine1(de, seq, pdStart))
	wr.deLines = append(wr.deLines, formatDELine2(de, seq+1, len(pdLines)))
	wr.deCount += 2

	wr.pdLines = append(wr.pdLines, pdLines...)
	wr.pdCount += len(pdLines)
	return nil
}

// Close renders the Start, Global, and Terminate sections around the
// accumulated Directory Entry / Parameter Data lines and flushes the whole
// file to the underlying writer.
func (wr *Writer) Close() error {
	startLines := formatStartSection(wr.global)
	globalLines := formatGlobalSection(wr.global)

	for i, line := range startLines {
		wr.writeCard(line, 'S', i+1)
	}
	for i, line := range globalLines {
		wr.writeCard(line, 'G', i+1)
	}
	for _, line := range wr.deLines {
		wr.w.WriteString(line)
		wr.w.WriteByte('\n')
	}
	for _, line := range wr.pdLines {
		wr.w.WriteString(line)
		wr.w.WriteByte('\n')
	}

	terminate := fmt.Sprintf("S%7dG%7dD%7dP%7d", len(startLines), len(globalLines), wr.deCount, wr.pdCount)
	wr.writeCard(padField(terminate, 72), 'T', 1)

	return wr.w.Flush()
}

func (wr *Writer) writeCard(content string, section byte, seq int) {
	wr.w.WriteString(padField(content, 72))
	wr.w.WriteByte(section)
	fmt.Fprintf(wr.w, "%7d\n", seq)
}

func formatStartSection(g iges.Global) []string {
	line := fmt.Sprintf("Generated by ironplane for %s", g.FileName)
	return []string{padField(line, 72)}
}

func formatGlobalSection(g iges.Global) []string {
	units := g.Units
	if units == "" {
		units = "MM"
	}
	fields := []string{
		quote(","), quote(";"),
		quote("ironplane"), quote(g.FileName),
		quote("ironplane"), quote("1.0"),
		"32", "38", "6", "38", "6",
		quote(g.Organization), "11",
		formatReal(g.MinResolution), "0",
		quote(g.Author), quote(g.Organization),
		"11", "0",
		quote("2026-07-30"),
		formatReal(g.MinResolution), "0.",
		quote(units), "1",
	}
	return wrapFreeFormat(fields)
}

// wrapFreeFormat joins fields with commas, terminates with a semicolon,
// and wraps the result into cardWidth-8-byte data segments (the trailing 8
// columns are reserved for the section letter and sequence number).
func wrapFreeFormat(fields []string) []string {
	joined := strings.Join(fields, ",") + ";"
	const dataWidth = cardWidth - 8
	var lines []string
	for len(joined) > dataWidth {
		lines = append(lines, joined[:dataWidth])
		joined = joined[dataWidth:]
	}
	lines = append(lines, joined)
	return lines
}

func formatPDLines(pd iges.PDRecord, dePointer, startSeq int) []string {
	joined := strings.Join(pd.Params, ",") + ";"
	const dataWidth = 64
	var segments []string
	for len(joined) > dataWidth {
		segments = append(segments, joined[:dataWidth])
		joined = joined[dataWidth:]
	}
	segments = append(segments, joined)

	lines := make([]string, len(segments))
	for i, seg := range segments {
		data := padField(seg, dataWidth)
		tail := fmt.Sprintf("%8d", dePointer)
		lines[i] = fmt.Sprintf("%s%sP%7d", data, tail, startSeq+i)
	}
	return lines
}

func formatDELine1(de iges.DirectoryEntry, seq, pdStart int) string {
	status := fmt.Sprintf("%02d%02d%02d%02d", de.BlankStatus, de.SubordinateStatus, de.UseFlag, de.HierarchyFlag)
	fields := []string{
		field(de.TypeCode),
		field(pdStart), // Parameter Data Pointer: sequence number of the entity's first PD line.
		field(de.StructureRef),
		field(de.LineFontRef),
		field(de.LevelRef),
		field(de.ViewRef),
		field(de.TransformRef),
		field(de.LabelRef),
		padLeft(status, 8),
	}
	return strings.Join(fields, "") + fmt.Sprintf("D%7d", seq)
}

func formatDELine2(de iges.DirectoryEntry, seq, pdLineCount int) string {
	fields := []string{
		field(de.TypeCode),
		field(de.LineWeight),
		field(de.ColorRef),
		field(pdLineCount), // parameter line count
		field(de.FormNumber),
		padField("", 8),
		padField("", 8),
		padField("", 8),
		padField("", 8),
	}
	return strings.Join(fields, "") + fmt.Sprintf("D%7d", seq)
}

func field(n int) string { return fmt.Sprintf("%8d", n) }

func padField(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func quote(s string) string { return fmt.Sprintf("%dH%s", len(s), s) }

func formatReal(f float64) string {
	return fmt.Sprintf("%gE0", f)
}

var _ iges.RecordSink = (*Writer)(nil)
