package progress

// Package progress subscribes to the server-sent event stream of a processing
// job. It decodes frames incrementally, reconnects after transport errors the
// way a browser EventSource does and stops once a terminal event arrives.
