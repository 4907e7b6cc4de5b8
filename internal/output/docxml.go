package output

import "encoding/xml"

// OOXML part scaffolding for the document encoder. Only the WordprocessingML
// and DrawingML elements the report needs are modeled; namespaces and part
// names follow ECMA-376. Prefixes are baked into the element names, with the
// namespaces declared once on each part's root element.

const (
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsMain          = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsDrawingWP     = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsDrawingMain   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsDrawingPic    = "http://schemas.openxmlformats.org/drawingml/2006/picture"
	nsOfficeRel     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	relTypeDocument = nsOfficeRel + "/officeDocument"
	relTypeStyles   = nsOfficeRel + "/styles"
	relTypeImage    = nsOfficeRel + "/image"

	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partStyles       = "word/styles.xml"
	partChartImage   = "word/media/chart.png"
)

// --- package-level parts ---

type contentTypes struct {
	XMLName   xml.Name          `xml:"Types"`
	Namespace string            `xml:"xmlns,attr"`
	Defaults  []contentDefault  `xml:"Default"`
	Overrides []contentOverride `xml:"Override"`
}

type contentDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type relationships struct {
	XMLName   xml.Name       `xml:"Relationships"`
	Namespace string         `xml:"xmlns,attr"`
	Items     []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

func packageContentTypes() contentTypes {
	return contentTypes{
		Namespace: nsContentTypes,
		Defaults: []contentDefault{
			{Extension: "rels", ContentType: "application/vnd.openxmlformats-package.relationships+xml"},
			{Extension: "xml", ContentType: "application/xml"},
			{Extension: "png", ContentType: "image/png"},
		},
		Overrides: []contentOverride{
			{PartName: "/" + partDocument, ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"},
			{PartName: "/" + partStyles, ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"},
		},
	}
}

func rootRelationships() relationships {
	return relationships{
		Namespace: nsRelationships,
		Items: []relationship{
			{ID: "rId1", Type: relTypeDocument, Target: partDocument},
		},
	}
}

const chartRelID = "rId2"

func documentRelationships() relationships {
	return relationships{
		Namespace: nsRelationships,
		Items: []relationship{
			{ID: "rId1", Type: relTypeStyles, Target: "styles.xml"},
			{ID: chartRelID, Type: relTypeImage, Target: "media/chart.png"},
		},
	}
}

// --- word/document.xml ---

type wordDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NSMain  string   `xml:"xmlns:w,attr"`
	NSWP    string   `xml:"xmlns:wp,attr"`
	NSDraw  string   `xml:"xmlns:a,attr"`
	NSPic   string   `xml:"xmlns:pic,attr"`
	NSRel   string   `xml:"xmlns:r,attr"`
	Body    wordBody `xml:"w:body"`
}

// wordBody holds the document blocks in order. Each block is a paragraph or
// a table; the marshaler names elements from the blocks' own XMLName fields.
type wordBody struct {
	Blocks []any
}

func newWordDocument(blocks []any) wordDocument {
	return wordDocument{
		NSMain: nsMain,
		NSWP:   nsDrawingWP,
		NSDraw: nsDrawingMain,
		NSPic:  nsDrawingPic,
		NSRel:  nsOfficeRel,
		Body:   wordBody{Blocks: blocks},
	}
}

type paragraph struct {
	XMLName xml.Name        `xml:"w:p"`
	Props   *paragraphProps `xml:"w:pPr,omitempty"`
	Runs    []run           `xml:"w:r"`
}

type paragraphProps struct {
	Style   *styleRef   `xml:"w:pStyle,omitempty"`
	Justify *justifyRef `xml:"w:jc,omitempty"`
}

type styleRef struct {
	Val string `xml:"w:val,attr"`
}

type justifyRef struct {
	Val string `xml:"w:val,attr"`
}

type run struct {
	Text    *runText `xml:"w:t,omitempty"`
	Drawing *drawing `xml:"w:drawing,omitempty"`
}

type runText struct {
	Value string `xml:",chardata"`
}

func textParagraph(text string) paragraph {
	if text == "" {
		return paragraph{}
	}
	return paragraph{Runs: []run{{Text: &runText{Value: text}}}}
}

func styledParagraph(style, text string) paragraph {
	p := textParagraph(text)
	p.Props = &paragraphProps{Style: &styleRef{Val: style}}
	return p
}

type table struct {
	XMLName xml.Name   `xml:"w:tbl"`
	Props   tableProps `xml:"w:tblPr"`
	Rows    []tableRow `xml:"w:tr"`
}

type tableProps struct {
	Borders tableBorders `xml:"w:tblBorders"`
}

type tableBorders struct {
	Top     borderEdge `xml:"w:top"`
	Left    borderEdge `xml:"w:left"`
	Bottom  borderEdge `xml:"w:bottom"`
	Right   borderEdge `xml:"w:right"`
	InsideH borderEdge `xml:"w:insideH"`
	InsideV borderEdge `xml:"w:insideV"`
}

type borderEdge struct {
	Val  string `xml:"w:val,attr"`
	Size string `xml:"w:sz,attr"`
}

type tableRow struct {
	Cells []tableCell `xml:"w:tc"`
}

type tableCell struct {
	Paragraphs []paragraph `xml:"w:p"`
}

// newTable builds a bordered table from row cell texts. Every cell carries a
// paragraph even when empty, as the format requires.
func newTable(rows [][]string) table {
	edge := borderEdge{Val: "single", Size: "4"}
	t := table{
		Props: tableProps{Borders: tableBorders{
			Top: edge, Left: edge, Bottom: edge, Right: edge, InsideH: edge, InsideV: edge,
		}},
	}
	for _, cells := range rows {
		row := tableRow{}
		for _, text := range cells {
			row.Cells = append(row.Cells, tableCell{Paragraphs: []paragraph{textParagraph(text)}})
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// --- inline image drawing ---

type drawing struct {
	Inline drawingInline `xml:"wp:inline"`
}

type drawingInline struct {
	DistT  int         `xml:"distT,attr"`
	DistB  int         `xml:"distB,attr"`
	DistL  int         `xml:"distL,attr"`
	DistR  int         `xml:"distR,attr"`
	Extent imageExtent `xml:"wp:extent"`
	DocPr  imageDocPr  `xml:"wp:docPr"`
	Frame  graphic     `xml:"a:graphic"`
}

type imageExtent struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

type imageDocPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type graphic struct {
	Data graphicData `xml:"a:graphicData"`
}

type graphicData struct {
	URI     string  `xml:"uri,attr"`
	Picture picture `xml:"pic:pic"`
}

type picture struct {
	NonVisual pictureNonVisual `xml:"pic:nvPicPr"`
	Fill      pictureFill      `xml:"pic:blipFill"`
	Shape     pictureShape     `xml:"pic:spPr"`
}

type pictureNonVisual struct {
	Props    imageDocPr `xml:"pic:cNvPr"`
	PicProps struct{}   `xml:"pic:cNvPicPr"`
}

type pictureFill struct {
	Blip    pictureBlip    `xml:"a:blip"`
	Stretch pictureStretch `xml:"a:stretch"`
}

type pictureBlip struct {
	Embed string `xml:"r:embed,attr"`
}

type pictureStretch struct {
	FillRect struct{} `xml:"a:fillRect"`
}

type pictureShape struct {
	Transform pictureTransform `xml:"a:xfrm"`
	Geometry  pictureGeometry  `xml:"a:prstGeom"`
}

type pictureTransform struct {
	Offset pictureOffset `xml:"a:off"`
	Extent imageExtent   `xml:"a:ext"`
}

type pictureOffset struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type pictureGeometry struct {
	Preset string   `xml:"prst,attr"`
	AvList struct{} `xml:"a:avLst"`
}

// imageParagraph embeds the relationship relID as a centered inline picture
// of cx by cy EMU.
func imageParagraph(relID, name string, cx, cy int64) paragraph {
	extent := imageExtent{CX: cx, CY: cy}
	d := &drawing{Inline: drawingInline{
		Extent: extent,
		DocPr:  imageDocPr{ID: 1, Name: name},
		Frame: graphic{Data: graphicData{
			URI: nsDrawingPic,
			Picture: picture{
				NonVisual: pictureNonVisual{Props: imageDocPr{ID: 1, Name: name}},
				Fill:      pictureFill{Blip: pictureBlip{Embed: relID}},
				Shape: pictureShape{
					Transform: pictureTransform{Extent: extent},
					Geometry:  pictureGeometry{Preset: "rect"},
				},
			},
		}},
	}}
	return paragraph{
		Props: &paragraphProps{Justify: &justifyRef{Val: "center"}},
		Runs:  []run{{Drawing: d}},
	}
}

// --- word/styles.xml ---

type stylesPart struct {
	XMLName xml.Name `xml:"w:styles"`
	NSMain  string   `xml:"xmlns:w,attr"`
	Styles  []style  `xml:"w:style"`
}

type style struct {
	Type     string         `xml:"w:type,attr"`
	ID       string         `xml:"w:styleId,attr"`
	Name     styleRef       `xml:"w:name"`
	RunProps *styleRunProps `xml:"w:rPr,omitempty"`
}

type styleRunProps struct {
	Bold *struct{} `xml:"w:b,omitempty"`
	Size *styleRef `xml:"w:sz,omitempty"`
}

// documentStyles declares the two heading styles the report uses. Sizes are
// half-points.
func documentStyles() stylesPart {
	bold := &struct{}{}
	return stylesPart{
		NSMain: nsMain,
		Styles: []style{
			{
				Type: "paragraph", ID: "Heading1",
				Name:     styleRef{Val: "heading 1"},
				RunProps: &styleRunProps{Bold: bold, Size: &styleRef{Val: "32"}},
			},
			{
				Type: "paragraph", ID: "Heading2",
				Name:     styleRef{Val: "heading 2"},
				RunProps: &styleRunProps{Bold: bold, Size: &styleRef{Val: "26"}},
			},
		},
	}
}
