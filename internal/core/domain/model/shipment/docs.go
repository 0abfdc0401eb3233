// Package shipment models the shipping provider's side of the pipeline:
// the carrier-native address and parcel shapes, the pure transformations
// that produce them from platform data, and the records returned by the
// provider's shipment, label and tracking operations.
//
// The transformations are pure functions with no I/O. An unknown US state
// name during address transformation is a fatal lookup error for the
// request, never a silent pass-through.
package shipment
