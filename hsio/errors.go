package hsio

import "errors"

// Sentinel errors returned by Parse when the textual header or edge lines
// are malformed. Instance-construction invariants (zero-degree edges,
// out-of-range vertex ids) surface as hgraph's own sentinels, whose
// messages name the offending edge's 0-based index.
var (
	// ErrMissingHeader indicates the stream had no header line at all.
	ErrMissingHeader = errors.New("hsio: missing header line")

	// ErrMalformedHeader indicates the header line's tokens were not two
	// non-negative integers.
	ErrMalformedHeader = errors.New("hsio: malformed header line")

	// ErrExtraHeaderTokens indicates the header line had more than two
	// whitespace-separated tokens.
	ErrExtraHeaderTokens = errors.New("hsio: extra tokens on header line")

	// ErrMissingEdgeLine indicates the stream ended before m edge lines
	// were read.
	ErrMissingEdgeLine = errors.New("hsio: missing edge line")

	// ErrMalformedEdgeLine indicates an edge line's degree token, or one of
	// its vertex tokens, was not a valid non-negative integer, or the line's
	// vertex-token count differed from its declared degree.
	ErrMalformedEdgeLine = errors.New("hsio: malformed edge line")
)
