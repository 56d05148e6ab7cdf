package volume

import "sort"

// Key identifies one concrete writable level on an endpoint: the master
// level or a single channel.
type Key struct {
	Master bool
	Index  int
}

// MasterKey is the key for the endpoint-wide master level.
func MasterKey() Key { return Key{Master: true} }

// ChannelKey is the key for channel index n.
func ChannelKey(n int) Key { return Key{Index: n} }

// Resolved maps each targeted level to the final clamped percentage it will
// be set to. It is built by Resolve and consumed once by the applier.
type Resolved map[Key]float64

// Keys returns the targeted levels in write order: master first, then
// channels by ascending index.
func (r Resolved) Keys() []Key {
	keys := make([]Key, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Master != keys[j].Master {
			return keys[i].Master
		}
		return keys[i].Index < keys[j].Index
	})
	return keys
}

// Clamp forces a percentage into [0, 100].
func Clamp(pct float64) float64 {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

// Resolve evaluates ops against snap and returns the final level for every
// targeted channel. Every operand and every relative base is read from the
// snapshot, so the result is independent of token order except that a later
// op targeting the same concrete channel overwrites an earlier one.
func Resolve(ops []Op, snap Snapshot) (Resolved, error) {
	concrete := expandAll(ops, len(snap.Channels))

	resolved := make(Resolved, len(concrete))
	for _, op := range concrete {
		value, err := operandValue(op.Operand, snap)
		if err != nil {
			return nil, err
		}

		key, base, err := targetState(op.Target, snap)
		if err != nil {
			return nil, err
		}

		switch op.Verb {
		case VerbIncrease:
			value = base + value
		case VerbDecrease:
			value = base - value
		}
		resolved[key] = Clamp(value)
	}
	return resolved, nil
}

// expandAll replaces every all-channels op with one op per physical channel,
// keeping command order so last-write-wins still holds.
func expandAll(ops []Op, channels int) []Op {
	out := make([]Op, 0, len(ops))
	for _, op := range ops {
		if op.Target.Kind != SelectAll {
			out = append(out, op)
			continue
		}
		for c := 0; c < channels; c++ {
			out = append(out, Op{Target: Channel(c), Verb: op.Verb, Operand: op.Operand})
		}
	}
	return out
}

func operandValue(operand Operand, snap Snapshot) (float64, error) {
	if operand.Literal {
		return operand.Value, nil
	}
	return snap.Level(operand.Ref)
}

func targetState(target Selector, snap Snapshot) (Key, float64, error) {
	if target.Kind == SelectMaster {
		return MasterKey(), snap.Master, nil
	}
	base, err := snap.Level(target)
	if err != nil {
		return Key{}, 0, err
	}
	return ChannelKey(target.Index), base, nil
}
