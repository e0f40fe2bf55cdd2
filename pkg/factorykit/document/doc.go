// Package document is the factory-method use of factorykit: each registered
// format has a Creator whose Make method returns the format's Document.
//
// Built-in formats are json, xml and yaml. CallEdit is the shared behavior
// living above the polymorphic boundary: it asks a Creator for its Document
// and edits the Creator's file with it, so a new format only has to supply
// Make.
//
// Converter routes a document from one registered format to another, for
// example XML to JSON.
package document
