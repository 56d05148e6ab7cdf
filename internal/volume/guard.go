package volume

// silenceFloor is the level below which an endpoint is treated as
// effectively silent.
const silenceFloor = 5.0

// Silences reports whether committing resolved would take the endpoint from
// audible (any level at or above 5%) to effectively silent (master and every
// channel below 5%). Callers refuse such a commit unless forced, so an
// operator cannot mute the device by accident with a stray token.
func Silences(snap Snapshot, resolved Resolved) bool {
	before := snap.Master
	for _, level := range snap.Channels {
		if level > before {
			before = level
		}
	}
	if before < silenceFloor {
		return false
	}

	after := snap.Master
	if v, ok := resolved[MasterKey()]; ok {
		after = v
	}
	for i, level := range snap.Channels {
		if v, ok := resolved[ChannelKey(i)]; ok {
			level = v
		}
		if level > after {
			after = level
		}
	}
	return after < silenceFloor
}
