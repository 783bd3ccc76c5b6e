package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/journey-planner/network"
	"github.com/theoremus-urban-solutions/journey-planner/planner"
)

// BuildXML serializes a plan response to XML
func (rb *ResponseBuilder) BuildXML(res *PlanResponse) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("<JourneyPlan")
	writeAttr(&b, "generatedAt", res.GeneratedAt)
	b.WriteString(">")
	writeStationXML(&b, "Origin", res.Origin)
	writeStationXML(&b, "Destination", res.Destination)
	b.WriteString("<Journeys>")
	for _, j := range res.Journeys {
		writeJourneyXML(&b, j)
	}
	b.WriteString("</Journeys>")
	b.WriteString("</JourneyPlan>")
	return []byte(b.String())
}

func writeJourneyXML(b *strings.Builder, j planner.Journey) {
	b.WriteString("<Journey")
	writeAttr(b, "totalStops", strconv.Itoa(j.TotalStops))
	writeAttr(b, "changes", strconv.Itoa(j.Changes))
	b.WriteString(">")
	for _, s := range j.Segments {
		b.WriteString("<Segment")
		writeAttr(b, "line", s.Line)
		if s.LineID != "" {
			writeAttr(b, "lineId", s.LineID)
		}
		writeAttr(b, "stops", strconv.Itoa(s.Stops))
		b.WriteString(">")
		writeStationXML(b, "Origin", s.Origin)
		writeStationXML(b, "Destination", s.Destination)
		b.WriteString("</Segment>")
	}
	b.WriteString("</Journey>")
}

func writeStationXML(b *strings.Builder, tag string, s network.Station) {
	b.WriteString("<")
	b.WriteString(tag)
	writeAttr(b, "code", s.Code)
	writeAttr(b, "name", s.Name)
	b.WriteString("/>")
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(xmlEscape(value))
	b.WriteString(`"`)
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
