// Package render turns the event document into the published page.
//
// AvailableMonths derives which months of the current year are still live
// (linked from the page header). FormatDateList joins day lists the way the
// page prints them ("01, 02 e 03"). Renderer executes a text/template, the
// embedded events.md.tmpl by default or one from a configured directory, and
// Generate ties it together: strict database read, Markdown output written
// atomically, optional HTML conversion through gomarkdown.
package render
