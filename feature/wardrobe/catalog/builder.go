package catalog

import (
	"sort"
	"strconv"

	"wardrobe-manager/feature/wardrobe/classify"
	"wardrobe-manager/feature/wardrobe/correction"
	"wardrobe-manager/feature/wardrobe/figuredata"
	"wardrobe-manager/feature/wardrobe/furnidata"
	"wardrobe-manager/feature/wardrobe/imaging"
	"wardrobe-manager/feature/wardrobe/models"
)

// Builder turns parsed documents into a catalog. It performs no I/O.
type Builder struct {
	layer  *correction.Layer
	images *imaging.Generator
}

// NewBuilder creates a builder from its stages.
func NewBuilder(layer *correction.Layer, images *imaging.Generator) *Builder {
	return &Builder{layer: layer, images: images}
}

// Build corrects, classifies and groups every item of doc.
func (b *Builder) Build(doc *figuredata.Document, idx *furnidata.Index, buildID string, source models.Source) models.Catalog {
	items := dedupe(b.layer.Apply(doc.Items()))

	byCategory := make(map[string][]models.ClassifiedItem)
	for _, raw := range items {
		info, _ := models.LookupCategory(raw.CategoryCode)
		palette, _ := doc.Palette(paletteFor(doc, info))
		byCategory[raw.CategoryCode] = append(byCategory[raw.CategoryCode], b.classify(raw, idx, info, palette))
	}

	cat := models.Catalog{
		BuildID:    buildID,
		Source:     source,
		Categories: make([]models.Category, 0, len(byCategory)),
		Palettes:   make([]models.Palette, 0, len(doc.Palettes)),
	}

	for _, info := range models.KnownCategories {
		list := byCategory[info.Code]
		if len(list) == 0 {
			continue
		}
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].ItemID != list[j].ItemID {
				return list[i].ItemID < list[j].ItemID
			}
			return list[i].Gender < list[j].Gender
		})

		paletteID := paletteFor(doc, info)
		palette, _ := doc.Palette(paletteID)
		cat.Categories = append(cat.Categories, models.Category{
			Code:        info.Code,
			DisplayName: info.DisplayName,
			Group:       info.Group,
			PaletteID:   paletteID,
			Items:       list,
			Colors:      palette.ColorIDs(),
		})
	}

	for _, p := range doc.Palettes {
		colors := make([]models.Color, len(p.Colors))
		copy(colors, p.Colors)
		cat.Palettes = append(cat.Palettes, models.Palette{ID: p.ID, Colors: colors})
	}
	sort.SliceStable(cat.Palettes, func(i, j int) bool {
		return cat.Palettes[i].ID < cat.Palettes[j].ID
	})

	return cat
}

func (b *Builder) classify(raw models.RawItem, idx *furnidata.Index, info models.CategoryInfo, palette models.Palette) models.ClassifiedItem {
	meta, ok := idx.Lookup(raw.CategoryCode, raw.ItemID)
	if !ok && raw.OriginalCategory != "" {
		meta, _ = idx.Lookup(raw.OriginalCategory, raw.ItemID)
	}

	item := models.ClassifiedItem{
		RawItem:        raw,
		Classification: classify.Classify(raw, meta),
		IsDuotone:      classify.IsDuotone(raw.CategoryCode, raw.Parts),
		FigureID:       raw.FigureID(),
		Key:            raw.Key(),
		ResolvedName:   info.DisplayName + " " + strconv.Itoa(raw.ItemID),
	}
	// Parts are not serialized; drop them so cached and fresh catalogs match.
	item.Parts = nil
	if meta != nil {
		item.Classname = meta.Classname
		item.CollectionTag = meta.CollectionTag
		if meta.DisplayName != "" {
			item.ResolvedName = meta.DisplayName
		}
	}

	colors := palette.ColorIDs()
	var primary, secondary string
	if len(colors) > 0 {
		primary = colors[0]
		secondary = colors[0]
		if len(colors) > 1 {
			secondary = colors[1]
		}
	}

	switch {
	case item.IsDuotone:
		item.PrimaryColorSlot = slot(classify.PrimarySlot)
		item.SecondaryColorSlot = slot(classify.SecondarySlot)
	case raw.IsColorable:
		item.PrimaryColorSlot = slot(classify.PrimarySlot)
	}

	if raw.IsColorable {
		item.ImageURL = b.images.URLFor(raw.CategoryCode, raw.ItemID, raw.Gender, primary, "")
	} else {
		item.ImageURL = b.images.URLFor(raw.CategoryCode, raw.ItemID, raw.Gender, "", "")
	}
	if item.IsDuotone {
		if raw.CategoryCode == models.ShirtCategory {
			item.DuotoneImageURL = b.images.URLFor(raw.CategoryCode, raw.ItemID, raw.Gender, "", "")
		} else if primary != "" {
			item.DuotoneImageURL = b.images.URLFor(raw.CategoryCode, raw.ItemID, raw.Gender, primary, secondary)
		}
	}
	return item
}

// paletteFor prefers the settype's palette and falls back to the category default.
func paletteFor(doc *figuredata.Document, info models.CategoryInfo) string {
	if st, ok := doc.SetType(info.Code); ok && st.PaletteID != "" {
		return st.PaletteID
	}
	return info.DefaultPalette
}

// dedupe keeps one item per (category, id, gender). An item listed under its
// own category beats one moved there; otherwise the earliest declared category wins.
func dedupe(items []models.RawItem) []models.RawItem {
	index := make(map[string]int, len(items))
	out := make([]models.RawItem, 0, len(items))
	for _, item := range items {
		key := item.Key()
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, item)
			continue
		}
		if preferred(item, out[i]) {
			out[i] = item
		}
	}
	return out
}

func preferred(a, b models.RawItem) bool {
	if (a.OriginalCategory == "") != (b.OriginalCategory == "") {
		return a.OriginalCategory == ""
	}
	return models.DisplayIndex(a.OriginalCategory) < models.DisplayIndex(b.OriginalCategory)
}

func slot(n int) *int {
	return &n
}
