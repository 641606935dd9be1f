package upload

// Package upload sends the selected images to the processing server as one
// streamed multipart request and reports byte progress while it is sent.
