package imaging

import (
	"net/url"
	"strconv"
	"strings"

	"wardrobe-manager/feature/wardrobe/models"
)

// DefaultBaseURL is the public avatar imaging endpoint.
const DefaultBaseURL = "https://www.habbo.com/habbo-imaging/avatarimage"

// Default shirt colors when no secondary color is given.
const (
	DefaultShirtPrimary   = "66"
	DefaultShirtSecondary = "61"
)

// Generator builds avatar imaging URLs.
type Generator struct {
	baseURL string
}

// NewGenerator creates a generator for baseURL; empty selects DefaultBaseURL.
func NewGenerator(baseURL string) *Generator {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Generator{baseURL: strings.TrimRight(baseURL, "?")}
}

// URLFor builds the image URL of one item. Shirts always carry two colors,
// other items carry primary when set, and head-region items render head only.
func (g *Generator) URLFor(code string, id int, gender models.Gender, primary, secondary string) string {
	figure := code + "-" + strconv.Itoa(id)
	switch {
	case code == models.ShirtCategory:
		if secondary == "" {
			primary, secondary = DefaultShirtPrimary, DefaultShirtSecondary
		}
		figure += "-" + primary + "-" + secondary
	case primary != "":
		figure += "-" + primary
		if secondary != "" {
			figure += "-" + secondary
		}
	}

	var b strings.Builder
	b.WriteString(g.baseURL)
	b.WriteString("?figure=")
	b.WriteString(url.QueryEscape(figure))
	b.WriteString("&gender=")
	b.WriteString(imageGender(gender))
	b.WriteString("&direction=2&head_direction=2&size=l&img_format=png")
	if info, ok := models.LookupCategory(code); ok && info.HeadOnly {
		b.WriteString("&headonly=1")
	}
	return b.String()
}

// The imaging service only knows M and F.
func imageGender(g models.Gender) string {
	if g == models.GenderFemale {
		return "F"
	}
	return "M"
}
