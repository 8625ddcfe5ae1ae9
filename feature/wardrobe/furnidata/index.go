package furnidata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"wardrobe-manager/core/utils"
	"wardrobe-manager/feature/wardrobe/models"
)

// DocumentName labels metadata document parse errors.
const DocumentName = "furnidata"

// ClothingPrefix marks clothing entries in the metadata document.
const ClothingPrefix = "clothing_"

var plainClassname = regexp.MustCompile(`^[a-z]{2}_\d+$`)

type furniType struct {
	Classname   string `json:"classname"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Furniline   string `json:"furniline"`
	Revision    any    `json:"revision"`
	// CustomParams lists the figure set ids a clothing furni unlocks.
	CustomParams string `json:"customparams"`
}

type furniTypes struct {
	FurniType []furniType `json:"furnitype"`
}

type document struct {
	RoomItemTypes furniTypes `json:"roomitemtypes"`
	WallItemTypes furniTypes `json:"wallitemtypes"`
}

// Candidate derives one classname to try for (code, id).
type Candidate func(code string, id int) string

// Candidates are tried in order; the first hit wins.
var Candidates = []Candidate{
	func(code string, id int) string { return fmt.Sprintf("%s_%d", code, id) },
	func(code string, id int) string { return fmt.Sprintf("clothing_%s_%d", code, id) },
	func(code string, id int) string { return fmt.Sprintf("clothing_%s_%d_special", code, id) },
	func(code string, id int) string { return fmt.Sprintf("clothing_%s_%d_hc", code, id) },
	func(code string, id int) string { return fmt.Sprintf("clothing_%s_%d_rare", code, id) },
}

// Index is a clothing lookup keyed by lower-case classname, with a
// secondary key on the set ids listed in customparams.
type Index struct {
	records map[string]models.MetadataRecord
	bySetID map[int]string
}

// IsClothing reports whether classname follows a clothing naming convention.
func IsClothing(classname string) bool {
	c := strings.ToLower(classname)
	if strings.HasPrefix(c, ClothingPrefix) {
		return true
	}
	if !plainClassname.MatchString(c) {
		return false
	}
	return models.IsKnownCategory(c[:2])
}

// Build indexes the metadata JSON. Both the furnidata layout
// ({"roomitemtypes":{"furnitype":[...]}, "wallitemtypes":...}) and a bare
// array of records are accepted. Invalid JSON yields a *models.ParseError.
func Build(data []byte) (*Index, error) {
	var types []furniType

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &types); err != nil {
			return nil, &models.ParseError{Document: DocumentName, Err: err}
		}
	} else {
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, &models.ParseError{Document: DocumentName, Err: err}
		}
		types = append(doc.RoomItemTypes.FurniType, doc.WallItemTypes.FurniType...)
	}

	idx := &Index{
		records: make(map[string]models.MetadataRecord),
		bySetID: make(map[int]string),
	}
	for _, ft := range types {
		if !IsClothing(ft.Classname) {
			continue
		}
		key := strings.ToLower(ft.Classname)
		if _, dup := idx.records[key]; dup {
			continue
		}
		idx.records[key] = models.MetadataRecord{
			Classname:     ft.Classname,
			DisplayName:   ft.Name,
			Description:   ft.Description,
			CollectionTag: ft.Furniline,
			Revision:      utils.ToString(ft.Revision),
		}
		for _, setID := range utils.ParseIDList(ft.CustomParams) {
			if _, taken := idx.bySetID[setID]; !taken {
				idx.bySetID[setID] = key
			}
		}
	}
	return idx, nil
}

// Len returns the number of indexed clothing records.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.records)
}

// Get returns the record for an exact classname.
func (i *Index) Get(classname string) (models.MetadataRecord, bool) {
	if i == nil {
		return models.MetadataRecord{}, false
	}
	rec, ok := i.records[strings.ToLower(classname)]
	return rec, ok
}

// Lookup tries every candidate classname for (code, id), then the set ids
// from customparams. A miss is not an error.
func (i *Index) Lookup(code string, id int) (*models.MetadataRecord, bool) {
	if i == nil {
		return nil, false
	}
	for _, candidate := range Candidates {
		if rec, ok := i.Get(candidate(code, id)); ok {
			return &rec, true
		}
	}
	if key, ok := i.bySetID[id]; ok {
		rec := i.records[key]
		return &rec, true
	}
	return nil, false
}
