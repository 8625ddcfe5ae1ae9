package figuredata

import "encoding/xml"

type xmlDocument struct {
	XMLName  xml.Name     `xml:"figuredata"`
	Palettes []xmlPalette `xml:"colors>palette"`
	SetTypes []xmlSetType `xml:"sets>settype"`
}

type xmlPalette struct {
	ID     string     `xml:"id,attr"`
	Colors []xmlColor `xml:"color"`
}

type xmlColor struct {
	ID         string `xml:"id,attr"`
	Index      string `xml:"index,attr"`
	Club       string `xml:"club,attr"`
	Selectable string `xml:"selectable,attr"`
	Hex        string `xml:",chardata"`
}

type xmlSetType struct {
	Type      string   `xml:"type,attr"`
	PaletteID string   `xml:"paletteid,attr"`
	Sets      []xmlSet `xml:"set"`
}

type xmlSet struct {
	ID         string    `xml:"id,attr"`
	Gender     string    `xml:"gender,attr"`
	Club       string    `xml:"club,attr"`
	Colorable  string    `xml:"colorable,attr"`
	Selectable string    `xml:"selectable,attr"`
	Sellable   string    `xml:"sellable,attr"`
	Parts      []xmlPart `xml:"part"`
}

type xmlPart struct {
	ID         string `xml:"id,attr"`
	Type       string `xml:"type,attr"`
	Colorable  string `xml:"colorable,attr"`
	Index      string `xml:"index,attr"`
	ColorIndex string `xml:"colorindex,attr"`
}
