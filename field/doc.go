// Package field provides the headless state machine of a segmented code
// input: an input router that owns the cursor and drives cell writes, and a
// value synchronizer that pulls an externally controlled value in and pushes
// the consolidated value out.
//
// All transitions run synchronously. Hooks fire before the method that caused
// them returns. Calls made from inside a hook (for example a host mirroring
// OnChange back through SetValue) are queued and applied once the in-flight
// notification finishes. A Field is not safe for concurrent use.
package field
