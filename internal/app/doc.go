// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the import lifecycle that feeds a loaded
// IFC entity graph through the geometry, material and property resolvers
// into a host document, decoupled from any specific entrypoint like a CLI.
package app
