// Package imaging derives avatar imaging URLs for wardrobe items.
//
// URLs have a fixed parameter order so that catalogs built from the same
// documents are byte-identical:
//
//	<base>?figure=<code>-<id>[-<c1>[-<c2>]]&gender=<M|F>&direction=2&head_direction=2&size=l&img_format=png[&headonly=1]
package imaging
