// Package citer provides a command-line Harvard citation manager.
// Given a URL it guesses the author, publication year, page title and site
// name of a web page, and stores the resulting references in projects.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package citer
