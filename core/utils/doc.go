// Package utils provides small conversion helpers shared by the wardrobe packages,
// such as loosely typed JSON values and comma separated id lists from query strings.
package utils
