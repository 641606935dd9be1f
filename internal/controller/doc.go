package controller

// Package controller holds the upload client state machine: the selected
// files, the quality setting, one upload cycle at a time and the progress of
// the server job. It renders through the View interface so the same logic
// drives the Fyne window and the console client.
