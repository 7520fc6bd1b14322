// Package site turns render results into the page records and view models
// the theme templates consume, and writes the Atom feed.
//
// Posts are built one per rendered file, aggregated once every file has been
// rendered, then sorted by creation time (newest first, ties by pathname).
package site
