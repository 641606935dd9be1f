package platform

// Package platform contains OS/platform integration: filesystem helpers for
// picking images and saving archives, and OS open/reveal.
