// Package plfhelper extracts numeric game state (market prices, player
// rank counters) from text snapshots copied out of a browser game's UI.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package plfhelper
