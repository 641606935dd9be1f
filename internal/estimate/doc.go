package estimate

// Package estimate holds the display-only WebP size heuristic and the size
// formatting helpers used by file rows. The server-reported size always wins
// over the estimate once it is known.
