// Package classify assigns acquisition tiers and detects two-color items.
package classify
