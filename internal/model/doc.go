package model

// Package model defines domain data structures used across the app: drawer
// navigation records, external link sets, and notice severity enums.
// Structures are plain records consumed by the shell widgets and carry no
// widget state of their own.
