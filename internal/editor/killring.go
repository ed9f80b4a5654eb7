package editor

// KillRing stores a history of killed text entries, most recent first.
type KillRing struct {
	entries []string
	pos     int
}

const killRingMax = 60

// NewKillRing returns an empty kill ring.
func NewKillRing() *KillRing {
	return &KillRing{}
}

// Push adds killed text to the front of the ring. Empty strings are ignored.
func (k *KillRing) Push(s string) {
	if s == "" {
		return
	}
	if len(k.entries) < killRingMax {
		k.entries = append(k.entries, "")
	}
	copy(k.entries[1:], k.entries[:len(k.entries)-1])
	k.entries[0] = s
	k.pos = 0
}

// Current returns the entry a yank would insert.
func (k *KillRing) Current() (string, bool) {
	if len(k.entries) == 0 {
		return "", false
	}
	return k.entries[k.pos], true
}

// Rotate moves to the next older entry, wrapping at the end.
func (k *KillRing) Rotate() bool {
	if len(k.entries) <= 1 {
		return false
	}
	k.pos = (k.pos + 1) % len(k.entries)
	return true
}

// Len returns the number of stored kills.
func (k *KillRing) Len() int { return len(k.entries) }
