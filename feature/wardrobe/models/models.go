package models

import (
	"fmt"
	"strings"
)

// Gender of a wardrobe item.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderUnisex Gender = "U"
)

// ParseGender maps a figure document attribute to a Gender; unknown values are unisex.
func ParseGender(s string) Gender {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M":
		return GenderMale
	case "F":
		return GenderFemale
	default:
		return GenderUnisex
	}
}

// Color is one entry of a palette.
type Color struct {
	ID               string `json:"id"`
	PaletteIndex     int    `json:"paletteIndex"`
	Club             int    `json:"club"`
	IsSubscriberOnly bool   `json:"isSubscriberOnly"`
	IsSelectable     bool   `json:"isSelectable"`
	Hex              string `json:"hex"`
}

// Palette groups the colors a category can use.
type Palette struct {
	ID     string  `json:"id"`
	Colors []Color `json:"colors"`
}

// ColorIDs returns the unique color ids in palette order.
func (p Palette) ColorIDs() []string {
	seen := make(map[string]struct{}, len(p.Colors))
	ids := make([]string, 0, len(p.Colors))
	for _, c := range p.Colors {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		ids = append(ids, c.ID)
	}
	return ids
}

// Part is a drawable piece of a set.
type Part struct {
	ID         int    `json:"id"`
	Type       string `json:"type"`
	Colorable  bool   `json:"colorable"`
	Index      int    `json:"index"`
	ColorIndex int    `json:"colorIndex"`
}

// RawItem is a set read from the figure document.
type RawItem struct {
	CategoryCode     string `json:"categoryCode"`
	ItemID           int    `json:"itemId"`
	Gender           Gender `json:"gender"`
	Club             int    `json:"club"`
	IsSubscriberOnly bool   `json:"isSubscriberOnly"`
	IsColorable      bool   `json:"isColorable"`
	IsSelectable     bool   `json:"isSelectable"`
	IsPurchasable    bool   `json:"isPurchasable"`
	// OriginalCategory is set when correction moved the item.
	OriginalCategory string `json:"originalCategory,omitempty"`
	Parts            []Part `json:"-"`
}

// Key identifies an item within the catalog.
func (r RawItem) Key() string {
	return fmt.Sprintf("%s-%d-%s", r.CategoryCode, r.ItemID, r.Gender)
}

// FigureID is the figure-string fragment for the item.
func (r RawItem) FigureID() string {
	return fmt.Sprintf("%s-%d", r.CategoryCode, r.ItemID)
}

// MetadataRecord is a clothing entry from the metadata document.
type MetadataRecord struct {
	Classname     string `json:"classname"`
	DisplayName   string `json:"name"`
	Description   string `json:"description"`
	CollectionTag string `json:"furniline"`
	Revision      string `json:"revision"`
}

// Classification is the acquisition tier of an item.
type Classification string

const (
	Ordinary       Classification = "ordinary"
	Subscription   Classification = "subscription"
	Collectible    Classification = "collectible"
	Rare           Classification = "rare"
	LimitedEdition Classification = "limited_edition"
	Purchasable    Classification = "purchasable"
)

// ClassifiedItem is a corrected item ready for presentation.
type ClassifiedItem struct {
	RawItem
	Classification     Classification `json:"classification"`
	IsDuotone          bool           `json:"isDuotone"`
	PrimaryColorSlot   *int           `json:"primaryColorSlot,omitempty"`
	SecondaryColorSlot *int           `json:"secondaryColorSlot,omitempty"`
	ImageURL           string         `json:"imageUrl"`
	DuotoneImageURL    string         `json:"duotoneImageUrl,omitempty"`
	ResolvedName       string         `json:"resolvedName"`
	Classname          string         `json:"classname,omitempty"`
	CollectionTag      string         `json:"collectionTag,omitempty"`
	FigureID           string         `json:"figureId"`
	Key                string         `json:"key"`
}

// Category is the unit returned to consumers.
type Category struct {
	Code        string           `json:"code"`
	DisplayName string           `json:"displayName"`
	Group       string           `json:"group"`
	PaletteID   string           `json:"paletteId"`
	Items       []ClassifiedItem `json:"items"`
	Colors      []string         `json:"colors"`
}

// Source tells whether a catalog came from the live documents.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Catalog is the cached result of one resolution cycle.
type Catalog struct {
	BuildID    string     `json:"buildId"`
	Source     Source     `json:"source"`
	Categories []Category `json:"categories"`
	Palettes   []Palette  `json:"palettes"`
}

// Palette returns the palette with the given id.
func (c Catalog) Palette(id string) (Palette, bool) {
	for _, p := range c.Palettes {
		if p.ID == id {
			return p, true
		}
	}
	return Palette{}, false
}

// Category returns the category with the given code.
func (c Catalog) Category(code string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Code == code {
			return cat, true
		}
	}
	return Category{}, false
}
