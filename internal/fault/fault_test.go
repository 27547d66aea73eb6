package fault

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap("reconcile", nil))
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap("reconcile", fmt.Errorf("symlink bashrc: %w", fs.ErrPermission))

	assert.True(t, IsFatal(err))
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "reconcile", Op(err))
	assert.Equal(t, "reconcile: symlink bashrc: permission denied", err.Error())
}

func TestWrapDoesNotRewrapFatal(t *testing.T) {
	inner := Wrap("yadm pull", errors.New("exit status 1"))
	outer := Wrap("menu", fmt.Errorf("pull: %w", inner))

	assert.Equal(t, "yadm pull", Op(outer))
}

func TestPlainErrorIsNotFatal(t *testing.T) {
	err := errors.New("plain")
	assert.False(t, IsFatal(err))
	assert.Empty(t, Op(err))
}

func TestMessageNamesOperationOnce(t *testing.T) {
	err := Wrap("reconcile", errors.New("back up /h/bashrc: permission denied"))
	assert.Equal(t, "Fatal error during reconcile: back up /h/bashrc: permission denied", Message(err))

	assert.Equal(t, "plain", Message(errors.New("plain")))
}
