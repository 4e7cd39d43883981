package main

// _version is the version of hilite.
//
// Set at build time with:
//
//	-ldflags "-X main._version=..."
var _version = "dev"
