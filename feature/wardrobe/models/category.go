package models

// Body-region groups in display order.
const (
	GroupHead  = "head"
	GroupBody  = "body"
	GroupTorso = "torso"
	GroupLegs  = "legs"
)

// CategoryInfo describes a known body-region category.
type CategoryInfo struct {
	Code           string
	DisplayName    string
	Group          string
	DefaultPalette string
	HeadOnly       bool
}

// KnownCategories lists every supported category in display order.
var KnownCategories = []CategoryInfo{
	{Code: "hr", DisplayName: "Hair", Group: GroupHead, DefaultPalette: "3", HeadOnly: true},
	{Code: "ha", DisplayName: "Hat", Group: GroupHead, DefaultPalette: "3", HeadOnly: true},
	{Code: "he", DisplayName: "Head Accessory", Group: GroupHead, DefaultPalette: "3", HeadOnly: true},
	{Code: "ea", DisplayName: "Eyewear", Group: GroupHead, DefaultPalette: "3", HeadOnly: true},
	{Code: "fa", DisplayName: "Face Accessory", Group: GroupHead, DefaultPalette: "3", HeadOnly: true},
	{Code: "hd", DisplayName: "Face", Group: GroupBody, DefaultPalette: "1", HeadOnly: true},
	{Code: "ch", DisplayName: "Shirt", Group: GroupTorso, DefaultPalette: "3"},
	{Code: "cc", DisplayName: "Jacket", Group: GroupTorso, DefaultPalette: "3"},
	{Code: "cp", DisplayName: "Shirt Print", Group: GroupTorso, DefaultPalette: "3"},
	{Code: "ca", DisplayName: "Chest Accessory", Group: GroupTorso, DefaultPalette: "3"},
	{Code: "lg", DisplayName: "Trousers", Group: GroupLegs, DefaultPalette: "3"},
	{Code: "sh", DisplayName: "Shoes", Group: GroupLegs, DefaultPalette: "3"},
	{Code: "wa", DisplayName: "Belt", Group: GroupLegs, DefaultPalette: "3"},
}

// ShirtCategory is always rendered with two colors.
const ShirtCategory = "ch"

var categoryIndex = func() map[string]int {
	m := make(map[string]int, len(KnownCategories))
	for i, c := range KnownCategories {
		m[c.Code] = i
	}
	return m
}()

// LookupCategory returns the info for code.
func LookupCategory(code string) (CategoryInfo, bool) {
	i, ok := categoryIndex[code]
	if !ok {
		return CategoryInfo{}, false
	}
	return KnownCategories[i], true
}

// IsKnownCategory reports whether code is a supported category.
func IsKnownCategory(code string) bool {
	_, ok := categoryIndex[code]
	return ok
}

// DisplayIndex returns the position of code in display order, or -1.
func DisplayIndex(code string) int {
	i, ok := categoryIndex[code]
	if !ok {
		return -1
	}
	return i
}
