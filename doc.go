// Package shelfstat analyzes how long inventory sits on the shelf.
//
// It reads a CSV log of stock movements, partitions it into independent
// (SKU, location) streams, and replays each stream through a FIFO queue
// of cost layers: stock that arrived first is consumed first. Every
// consumption yields a shelf-time record (when the units arrived, when
// they left, at what unit cost), and the layers left open at the end are
// the current stock with its exact age.
//
// From those records and layers the package derives the reports: current
// stock summaries, aging detail, configurable age categories, shelf-time
// statistics by group, product and location, and monthly consumption
// trends. All amounts are exact decimals; see Quantity and Money.
//
// The ssa command in ssa/ is the CLI front end.
package shelfstat
