package docx

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// WordprocessingML main namespace. Every part in the package uses the
// transitional ECMA-376 namespaces that all major readers accept.
const nsWordML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Numbering definition IDs referenced by the list styles. They must match
// the <w:num> entries in the numbering part.
const (
	numIDBullet  = 1
	numIDDecimal = 2
)

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NS      string   `xml:"xmlns:w,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	Paras  []xmlPara  `xml:"w:p"`
	SectPr *xmlSectPr `xml:"w:sectPr"`
}

type xmlPara struct {
	Props *xmlParaProps `xml:"w:pPr,omitempty"`
	Runs  []xmlRun      `xml:"w:r"`
}

// Child order follows the WordprocessingML schema: pStyle, numPr, jc.
type xmlParaProps struct {
	Style *xmlVal   `xml:"w:pStyle,omitempty"`
	NumPr *xmlNumPr `xml:"w:numPr,omitempty"`
	Jc    *xmlVal   `xml:"w:jc,omitempty"`
}

type xmlNumPr struct {
	Ilvl  xmlVal `xml:"w:ilvl"`
	NumID xmlVal `xml:"w:numId"`
}

type xmlRun struct {
	Props *xmlRunProps `xml:"w:rPr,omitempty"`
	Break *xmlBreak    `xml:"w:br,omitempty"`
	Text  *xmlText     `xml:"w:t,omitempty"`
}

// Child order follows the schema: b, i, color, sz.
type xmlRunProps struct {
	Bold   *xmlEmpty `xml:"w:b,omitempty"`
	Italic *xmlEmpty `xml:"w:i,omitempty"`
	Color  *xmlVal   `xml:"w:color,omitempty"`
	Size   *xmlVal   `xml:"w:sz,omitempty"`
}

type xmlBreak struct {
	Type string `xml:"w:type,attr"`
}

type xmlText struct {
	Space string `xml:"xml:space,attr"`
	Text  string `xml:",chardata"`
}

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlEmpty struct{}

// Minimal section properties: US Letter with one-inch margins, in
// twentieths of a point.
type xmlSectPr struct {
	PgSz  xmlPgSz  `xml:"w:pgSz"`
	PgMar xmlPgMar `xml:"w:pgMar"`
}

type xmlPgSz struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

type xmlPgMar struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
}

func documentXML(d *Document) ([]byte, error) {
	body := xmlBody{
		SectPr: &xmlSectPr{
			PgSz:  xmlPgSz{W: "12240", H: "15840"},
			PgMar: xmlPgMar{Top: "1440", Right: "1440", Bottom: "1440", Left: "1440"},
		},
	}
	for _, p := range d.paras {
		body.Paras = append(body.Paras, paraXML(p))
	}
	doc := xmlDocument{NS: nsWordML, Body: body}
	out, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("docx: marshal document part: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func paraXML(p Paragraph) xmlPara {
	if p.PageBreak {
		return xmlPara{Runs: []xmlRun{{Break: &xmlBreak{Type: "page"}}}}
	}

	var props *xmlParaProps
	if p.Style != StyleNormal || p.Align != AlignDefault {
		props = &xmlParaProps{}
		if p.Style != StyleNormal {
			props.Style = &xmlVal{Val: p.Style}
		}
		switch p.Style {
		case StyleListBullet:
			props.NumPr = numPr(numIDBullet)
		case StyleListNumber:
			props.NumPr = numPr(numIDDecimal)
		}
		if p.Align != AlignDefault {
			props.Jc = &xmlVal{Val: p.Align}
		}
	}

	out := xmlPara{Props: props}
	for _, r := range p.Runs {
		out.Runs = append(out.Runs, runXML(r))
	}
	return out
}

func numPr(numID int) *xmlNumPr {
	return &xmlNumPr{
		Ilvl:  xmlVal{Val: "0"},
		NumID: xmlVal{Val: strconv.Itoa(numID)},
	}
}

func runXML(r Run) xmlRun {
	var props *xmlRunProps
	if r.Bold || r.Italic || r.Size != 0 || r.Color != "" {
		props = &xmlRunProps{}
		if r.Bold {
			props.Bold = &xmlEmpty{}
		}
		if r.Italic {
			props.Italic = &xmlEmpty{}
		}
		if r.Color != "" {
			props.Color = &xmlVal{Val: r.Color}
		}
		if r.Size != 0 {
			// w:sz is expressed in half-points.
			props.Size = &xmlVal{Val: strconv.Itoa(r.Size * 2)}
		}
	}
	return xmlRun{
		Props: props,
		Text:  &xmlText{Space: "preserve", Text: r.Text},
	}
}

// stylesXML renders the styles part. Sizes are half-points. The palette
// mirrors the stock report look: big dark-blue title, blue headings.
func stylesXML(s StyleSet) []byte {
	const tmpl = xml.Header + `<w:styles xmlns:w="` + nsWordML + `">` +
		`<w:style w:type="paragraph" w:default="1" w:styleId="Normal">` +
		`<w:name w:val="Normal"/>` +
		`<w:rPr><w:sz w:val="22"/></w:rPr>` +
		`</w:style>` +
		`<w:style w:type="paragraph" w:styleId="Title">` +
		`<w:name w:val="Title"/><w:basedOn w:val="Normal"/>` +
		`<w:pPr><w:spacing w:after="240"/></w:pPr>` +
		`<w:rPr><w:b/><w:color w:val="%[1]s"/><w:sz w:val="48"/></w:rPr>` +
		`</w:style>` +
		`<w:style w:type="paragraph" w:styleId="Heading1">` +
		`<w:name w:val="heading 1"/><w:basedOn w:val="Normal"/>` +
		`<w:pPr><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="0"/></w:pPr>` +
		`<w:rPr><w:b/><w:color w:val="%[1]s"/><w:sz w:val="36"/></w:rPr>` +
		`</w:style>` +
		`<w:style w:type="paragraph" w:styleId="Heading2">` +
		`<w:name w:val="heading 2"/><w:basedOn w:val="Normal"/>` +
		`<w:pPr><w:spacing w:before="200" w:after="100"/><w:outlineLvl w:val="1"/></w:pPr>` +
		`<w:rPr><w:b/><w:color w:val="%[2]s"/><w:sz w:val="28"/></w:rPr>` +
		`</w:style>` +
		`<w:style w:type="paragraph" w:styleId="Heading3">` +
		`<w:name w:val="heading 3"/><w:basedOn w:val="Normal"/>` +
		`<w:pPr><w:spacing w:before="160" w:after="80"/><w:outlineLvl w:val="2"/></w:pPr>` +
		`<w:rPr><w:b/><w:sz w:val="24"/></w:rPr>` +
		`</w:style>` +
		`<w:style w:type="paragraph" w:styleId="ListBullet">` +
		`<w:name w:val="List Bullet"/><w:basedOn w:val="Normal"/>` +
		`</w:style>` +
		`<w:style w:type="paragraph" w:styleId="ListNumber">` +
		`<w:name w:val="List Number"/><w:basedOn w:val="Normal"/>` +
		`</w:style>` +
		`</w:styles>`
	return []byte(fmt.Sprintf(tmpl, s.Accent, s.Secondary))
}
