package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorKeepsCursorVisible(t *testing.T) {
	n := NewNavigator(0, 0, 3, 10)

	for i := 0; i < 4; i++ {
		n.Move("down")
	}
	assert.Equal(t, 4, n.Cursor())
	assert.Equal(t, 2, n.Offset())

	n.Move("end")
	assert.Equal(t, 9, n.Cursor())
	assert.Equal(t, 7, n.Offset())

	n.Move("pageup")
	assert.Equal(t, 6, n.Cursor())
	assert.Equal(t, 6, n.Offset())

	n.Move("home")
	assert.Equal(t, 0, n.Cursor())
	assert.Equal(t, 0, n.Offset())
}

func TestNavigatorClampsToBounds(t *testing.T) {
	n := NewNavigator(0, 0, 5, 2)
	n.Move("up")
	assert.Equal(t, 0, n.Cursor())

	n.Move("pagedown")
	assert.Equal(t, 1, n.Cursor())
	assert.Equal(t, 0, n.Offset())
}

func TestNavigatorEmptyList(t *testing.T) {
	n := NewNavigator(4, 3, 5, 0)
	assert.Equal(t, 0, n.Cursor())
	assert.Equal(t, 0, n.Offset())

	n.Move("down")
	assert.Equal(t, 0, n.Cursor())
}

func TestNavigatorStaleCursorIsClamped(t *testing.T) {
	// List shrank after a filter change
	n := NewNavigator(7, 5, 3, 4)
	assert.Equal(t, 3, n.Cursor())
	assert.Equal(t, 1, n.Offset())
}

func TestNavigatorScroll(t *testing.T) {
	n := NewNavigator(0, 0, 2, 6)
	n.Scroll(3)
	assert.Equal(t, 3, n.Cursor())
	assert.Equal(t, 3, n.Offset())

	n.Scroll(-10)
	assert.Equal(t, 0, n.Cursor())
	assert.Equal(t, 0, n.Offset())
}
