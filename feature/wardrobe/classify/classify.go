package classify

import (
	"strings"

	"wardrobe-manager/feature/wardrobe/models"
)

// Classname prefixes used by the metadata document.
const (
	RarePrefix           = "clothing_r"
	LimitedEditionPrefix = "clothing_ltd"
)

// CollectionTags are the furnilines of limited collectible drops.
var CollectionTags = map[string]struct{}{
	"nft2025": {},
	"nft2024": {},
	"nft2023": {},
	"nft":     {},
	"nftmint": {},
	"testing": {},
}

// Classify assigns the acquisition tier of an item.
// Figure document flags take precedence over metadata heuristics.
func Classify(item models.RawItem, meta *models.MetadataRecord) models.Classification {
	switch {
	case item.IsSubscriberOnly:
		return models.Subscription
	case item.IsPurchasable:
		return models.Purchasable
	case meta == nil:
		return models.Ordinary
	}

	if _, ok := CollectionTags[strings.ToLower(meta.CollectionTag)]; ok {
		return models.Collectible
	}
	classname := strings.ToLower(meta.Classname)
	if strings.HasPrefix(classname, RarePrefix) {
		return models.Rare
	}
	if strings.HasPrefix(classname, LimitedEditionPrefix) {
		return models.LimitedEdition
	}
	return models.Ordinary
}
