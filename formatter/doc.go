// Package formatter provides response wrapping and serialization for journey
// plans.
//
// This package is organized into:
// - wrapper.go: PlanResponse envelope
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
// - text.go: human readable itineraries for terminals
package formatter
