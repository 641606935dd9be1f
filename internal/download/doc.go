package download

// Package download fetches the optimized archive produced by a finished job
// and stores it in the configured download directory without overwriting
// earlier archives.
