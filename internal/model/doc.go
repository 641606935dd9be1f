package model

// Package model defines domain data structures used across the app: selected
// files, upload job progress, push-stream events and phase enums. Structures are
// designed for direct binding in the UI and explicit state transitions.
