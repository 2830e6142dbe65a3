package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRef(t *testing.T) {
	t.Run("is 24 lowercase hex digits", func(t *testing.T) {
		ref := NewRef()
		assert.Len(t, string(ref), 24)
		assert.True(t, IsRef(string(ref)))
		for _, r := range string(ref) {
			assert.True(t, (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f'), "char %q", r)
		}
	})

	t.Run("is unique across rapid allocation", func(t *testing.T) {
		seen := make(map[Ref]bool, 10000)
		for i := 0; i < 10000; i++ {
			ref := NewRef()
			assert.False(t, seen[ref], "duplicate ref %s", ref)
			seen[ref] = true
		}
	})

	t.Run("encodes the creation time", func(t *testing.T) {
		before := time.Now().Truncate(time.Second)
		ref := NewRef()
		after := time.Now().Add(time.Second)

		assert.False(t, ref.Time().Before(before))
		assert.False(t, ref.Time().After(after))
	})

	t.Run("sorts by creation time", func(t *testing.T) {
		a := NewRef()
		b := NewRef()
		assert.True(t, string(a) < string(b))
	})
}

func TestParseRef(t *testing.T) {
	t.Run("accepts a well-formed ref", func(t *testing.T) {
		ref, err := ParseRef("507f1f77bcf86cd799439011")
		assert.NoError(t, err)
		assert.Equal(t, "507f1f77bcf86cd799439011", ref.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{
			"",
			"507f1f77",
			"507f1f77bcf86cd79943901",
			"507f1f77bcf86cd7994390111",
			"507f1f77bcf86cd79943901z",
		} {
			_, err := ParseRef(input)
			assert.ErrorIs(t, err, ErrInvalidRef, "input %q", input)
		}
	})
}
