package domain

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"sync/atomic"
	"time"
)

// Ref is the opaque handle every stored record and blob is addressed by:
// 24 lowercase hex digits, sortable by creation time. The layout is
// 4 bytes of unix seconds, 5 bytes of per-process entropy and a 3-byte
// counter, which keeps the persisted format compatible with the ids
// already in the data set.
type Ref string

var ErrInvalidRef = errors.New("malformed reference")

var (
	processUnique [5]byte
	refCounter    uint32
)

func init() {
	if _, err := rand.Read(processUnique[:]); err != nil {
		panic("domain: cannot seed ref generator: " + err.Error())
	}
	var seed [4]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic("domain: cannot seed ref counter: " + err.Error())
	}
	refCounter = binary.BigEndian.Uint32(seed[:])
}

// NewRef allocates a fresh creation-time-ordered reference.
func NewRef() Ref {
	var b [12]byte
	binary.BigEndian.PutUint32(b[0:4], uint32(time.Now().Unix()))
	copy(b[4:9], processUnique[:])
	c := atomic.AddUint32(&refCounter, 1)
	b[9] = byte(c >> 16)
	b[10] = byte(c >> 8)
	b[11] = byte(c)
	return Ref(hex.EncodeToString(b[:]))
}

// ParseRef validates s as a 24-hex-digit reference.
func ParseRef(s string) (Ref, error) {
	if len(s) != 24 {
		return "", ErrInvalidRef
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", ErrInvalidRef
	}
	return Ref(s), nil
}

// IsRef reports whether s is a well-formed reference.
func IsRef(s string) bool {
	_, err := ParseRef(s)
	return err == nil
}

func (r Ref) String() string {
	return string(r)
}

// Time extracts the creation timestamp encoded in the reference.
func (r Ref) Time() time.Time {
	b, err := hex.DecodeString(string(r))
	if err != nil || len(b) < 4 {
		return time.Time{}
	}
	return time.Unix(int64(binary.BigEndian.Uint32(b[0:4])), 0)
}
