package dom

// Option flags.
const (
	trackIDs uint8 = 1 << iota
	trackClasses
)

// Options configures document construction.
//
// The zero value is optimized for plain parsing. Enabling tracking makes
// the document maintain lookup tables while it is built, turning
// GetElementByID and GetElementsByClassName into ~O(1) operations.
// Matching never depends on the tables; without tracking those lookups
// fall back to a full arena scan.
//
// Flags are set-only: there is no way to clear a flag once enabled.
type Options uint8

// NewOptions returns Options with no flags set.
func NewOptions() Options { return 0 }

// TrackIDs returns a copy with ID tracking enabled.
func (o Options) TrackIDs() Options { return o | Options(trackIDs) }

// TrackClasses returns a copy with class tracking enabled.
func (o Options) TrackClasses() Options { return o | Options(trackClasses) }

// IsTrackingIDs reports whether ID tracking is enabled.
func (o Options) IsTrackingIDs() bool { return o&Options(trackIDs) != 0 }

// IsTrackingClasses reports whether class tracking is enabled.
func (o Options) IsTrackingClasses() bool { return o&Options(trackClasses) != 0 }

// IsTracking reports whether any tracking flag is enabled.
func (o Options) IsTracking() bool { return o != 0 }
