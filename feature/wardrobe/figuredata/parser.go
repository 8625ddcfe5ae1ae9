package figuredata

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"wardrobe-manager/core/utils"
	"wardrobe-manager/feature/wardrobe/models"

	"go.uber.org/zap"
)

// DocumentName labels figure document parse errors.
const DocumentName = "figuredata"

// SubscriberClub is the club level marking Habbo Club sets and colors.
const SubscriberClub = 2

// SetType is the category header of the figure document.
type SetType struct {
	Code      string
	PaletteID string
}

// Document is a parsed figure document.
type Document struct {
	Palettes []models.Palette
	// SetTypes holds known categories in document order.
	SetTypes []SetType
	// ItemsByCategory holds raw items per known category in document order.
	ItemsByCategory map[string][]models.RawItem
}

// SetType returns the header for code.
func (d *Document) SetType(code string) (SetType, bool) {
	for _, st := range d.SetTypes {
		if st.Code == code {
			return st, true
		}
	}
	return SetType{}, false
}

// Palette returns the palette with the given id.
func (d *Document) Palette(id string) (models.Palette, bool) {
	for _, p := range d.Palettes {
		if p.ID == id {
			return p, true
		}
	}
	return models.Palette{}, false
}

// Items returns every raw item in document order.
func (d *Document) Items() []models.RawItem {
	var out []models.RawItem
	for _, st := range d.SetTypes {
		out = append(out, d.ItemsByCategory[st.Code]...)
	}
	return out
}

// Parser reads figure documents.
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a parser logging skipped content to logger.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// Parse decodes the XML text. Malformed XML yields a *models.ParseError.
// Unknown settypes and sets without a numeric id are skipped.
func (p *Parser) Parse(data []byte) (*Document, error) {
	var raw xmlDocument
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, &models.ParseError{Document: DocumentName, Err: err}
	}
	if err := expectEOF(dec); err != nil {
		return nil, &models.ParseError{Document: DocumentName, Err: err}
	}

	doc := &Document{ItemsByCategory: make(map[string][]models.RawItem)}

	for _, xp := range raw.Palettes {
		palette := models.Palette{ID: strings.TrimSpace(xp.ID), Colors: make([]models.Color, 0, len(xp.Colors))}
		for _, xc := range xp.Colors {
			club := utils.ToInt(xc.Club)
			palette.Colors = append(palette.Colors, models.Color{
				ID:               strings.TrimSpace(xc.ID),
				PaletteIndex:     utils.ToInt(xc.Index),
				Club:             club,
				IsSubscriberOnly: club == SubscriberClub,
				IsSelectable:     flag(xc.Selectable, true),
				Hex:              NormalizeHex(xc.Hex),
			})
		}
		doc.Palettes = append(doc.Palettes, palette)
	}

	for _, st := range raw.SetTypes {
		code := strings.ToLower(strings.TrimSpace(st.Type))
		info, ok := models.LookupCategory(code)
		if !ok {
			p.logger.Debug("Skipping unknown settype", zap.String("type", st.Type), zap.Int("sets", len(st.Sets)))
			continue
		}
		paletteID := strings.TrimSpace(st.PaletteID)
		if paletteID == "" {
			paletteID = info.DefaultPalette
		}
		if _, seen := doc.SetType(code); !seen {
			doc.SetTypes = append(doc.SetTypes, SetType{Code: code, PaletteID: paletteID})
		}

		for _, set := range st.Sets {
			item, err := rawItem(code, set)
			if err != nil {
				p.logger.Debug("Skipping set", zap.String("type", code), zap.Error(err))
				continue
			}
			doc.ItemsByCategory[code] = append(doc.ItemsByCategory[code], item)
		}
	}

	return doc, nil
}

// expectEOF rejects anything but whitespace, comments and processing
// instructions after the root element.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("unexpected text after root element at offset %d", dec.InputOffset())
			}
		case xml.StartElement:
			return fmt.Errorf("unexpected element <%s> after root element", t.Name.Local)
		case xml.EndElement:
			return fmt.Errorf("unexpected closing tag </%s> after root element", t.Name.Local)
		}
	}
}

func rawItem(code string, set xmlSet) (models.RawItem, error) {
	id, err := strconv.Atoi(strings.TrimSpace(set.ID))
	if err != nil {
		return models.RawItem{}, fmt.Errorf("invalid set id %q: %w", set.ID, err)
	}
	club := utils.ToInt(set.Club)
	item := models.RawItem{
		CategoryCode:     code,
		ItemID:           id,
		Gender:           models.ParseGender(set.Gender),
		Club:             club,
		IsSubscriberOnly: club == SubscriberClub,
		IsColorable:      flag(set.Colorable, false),
		IsSelectable:     flag(set.Selectable, true),
		IsPurchasable:    flag(set.Sellable, false),
	}
	for _, xp := range set.Parts {
		item.Parts = append(item.Parts, models.Part{
			ID:         utils.ToInt(xp.ID),
			Type:       xp.Type,
			Colorable:  flag(xp.Colorable, false),
			Index:      utils.ToInt(xp.Index),
			ColorIndex: utils.ToInt(xp.ColorIndex),
		})
	}
	return item, nil
}

// flag reads a 0/1 attribute, using def when the attribute is absent.
func flag(attr string, def bool) bool {
	attr = strings.TrimSpace(attr)
	if attr == "" {
		return def
	}
	return utils.ToBool(attr)
}

// NormalizeHex returns an upper-case #RRGGBB value.
func NormalizeHex(s string) string {
	s = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if s == "" {
		return ""
	}
	return "#" + s
}
