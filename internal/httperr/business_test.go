package httperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessError(t *testing.T) {
	t.Run("code only", func(t *testing.T) {
		err := ErrBusiness("slot_unavailable")
		assert.Equal(t, "slot_unavailable", err.Error())
		assert.True(t, IsBusiness(err, "slot_unavailable"))
		assert.False(t, IsBusiness(err, "invalid_time"))
	})

	t.Run("detail is appended", func(t *testing.T) {
		err := ErrBusinessf("invalid_time", "%q is not HH:MM", "9am")
		assert.Equal(t, `invalid_time: "9am" is not HH:MM`, err.Error())
		assert.Equal(t, "invalid_time", Code(err))
	})

	t.Run("wrapped errors are unwrapped", func(t *testing.T) {
		err := fmt.Errorf("create: %w", ErrBusiness("patient_not_found"))
		assert.True(t, IsBusiness(err, "patient_not_found"))
		assert.Equal(t, "patient_not_found", Code(err))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.Equal(t, "", Code(fmt.Errorf("boom")))
		assert.False(t, IsBusiness(nil, "x"))
	})
}
