// Package correction repairs category assignments in the figure document.
//
// The upstream document sometimes lists an item under the wrong body region,
// for example a helmet under jackets. Rules are kept as data in tables.go:
// per-category allow-lists, per-category id ranges and a global deny-list.
//
// For each item the layer, in order:
//
//  1. drops ids on the deny-list;
//  2. keeps ids allow-listed for the declared category;
//  3. moves ids allow-listed for another category to the first such category in Priority;
//  4. keeps ids inside a range of the declared category;
//  5. moves ids inside another category's range to the first such category in Priority;
//  6. keeps everything else.
//
// The tables follow the upstream data and need updating when it changes.
package correction
