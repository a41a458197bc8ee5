// Package toolmedia discovers representative media for a tool's website.
// Given a site URL it finds a handful of key pages, requests screenshots of
// them at several viewports, searches for tutorial and demo videos, and
// ranks everything so a caller can pick the best assets for a profile page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package toolmedia
