// Package furnidata indexes the item-metadata document for clothing lookups.
//
// Only clothing entries are kept: classnames starting with clothing_ or of the
// plain <code>_<id> form. Lookup tries the classname templates in Candidates
// and finally the figure set ids that clothing furni list in customparams.
package furnidata
