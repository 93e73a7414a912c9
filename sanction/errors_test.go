package sanction

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	err := newError(KindConflict, "already in the pillory")
	assert.True(t, IsConflict(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "already in the pillory", Reason(err))
}

func TestErrorWrappingSurvivesFmt(t *testing.T) {
	inner := wrapError(KindStorage, errors.New("disk full"), "could not record the sanction")
	outer := fmt.Errorf("create failed: %w", inner)
	assert.True(t, IsStorage(outer))
	assert.Equal(t, "could not record the sanction", Reason(outer))
	assert.ErrorContains(t, outer, "disk full")
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
	assert.Equal(t, "plain", Reason(errors.New("plain")))
}
