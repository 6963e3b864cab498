package model

// Package model defines the data structures shared by the workers and the form:
// the video metadata record, format descriptors and the display format list,
// progress events, status messages and the busy phases of each action.
