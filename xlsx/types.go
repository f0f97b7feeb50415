package xlsx

import "encoding/xml"

// workbookXML represents the xl/workbook.xml file structure.
type workbookXML struct {
	XMLName xml.Name      `xml:"workbook"`
	Sheets  []sheetRefXML `xml:"sheets>sheet"`
}

type sheetRefXML struct {
	Name    string `xml:"name,attr"`
	SheetID string `xml:"sheetId,attr"`
}

// worksheetXML represents a xl/worksheets/sheet*.xml file structure.
type worksheetXML struct {
	XMLName xml.Name `xml:"worksheet"`
	Rows    []rowXML `xml:"sheetData>row"`
}

type rowXML struct {
	R     string    `xml:"r,attr"` // Row number (1-indexed)
	Cells []cellXML `xml:"c"`
}

type cellXML struct {
	R string  `xml:"r,attr"` // Cell reference (e.g., "A1")
	T string  `xml:"t,attr"` // Type: s=shared string, n=number, b=bool, str=formula string, e=error
	S string  `xml:"s,attr"` // Style index
	V *string `xml:"v"`      // Value; nil when the element is absent
}

// sharedStringsXML represents the xl/sharedStrings.xml file structure.
type sharedStringsXML struct {
	XMLName xml.Name `xml:"sst"`
	SI      []siXML  `xml:"si"`
}

type siXML struct {
	T *string `xml:"t"` // Simple text
	R []rXML  `xml:"r"` // Rich text runs
}

type rXML struct {
	T string `xml:"t"` // Text in run
}

// stylesXML represents the xl/styles.xml file structure.
type stylesXML struct {
	XMLName xml.Name `xml:"styleSheet"`
	Xf      []xfXML  `xml:"cellXfs>xf"`
}

type xfXML struct {
	NumFmtID string `xml:"numFmtId,attr"`
}
