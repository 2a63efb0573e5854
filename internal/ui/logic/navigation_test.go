package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorClampsSelection(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(5)
	n.SetTotal(3)

	n.MoveUp()
	assert.Equal(t, 0, n.Selected())

	n.JumpBottom()
	assert.Equal(t, 2, n.Selected())

	n.MoveDown()
	assert.Equal(t, 2, n.Selected())
}

func TestNavigatorEmptyList(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(5)
	n.SetTotal(0)

	n.MoveDown()
	assert.Equal(t, 0, n.Selected())
	assert.Equal(t, 0, n.Offset())
}

func TestNavigatorScrollsSelectionIntoView(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(5)
	n.SetTotal(20)

	for i := 0; i < 10; i++ {
		n.MoveDown()
	}
	assert.Equal(t, 10, n.Selected())

	start, end, showTop, showBottom := n.VisibleRange()
	assert.True(t, showTop)
	assert.True(t, showBottom)
	assert.LessOrEqual(t, start, 10)
	assert.Greater(t, end, 10)
}

func TestNavigatorNoIndicatorsWhenEverythingFits(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(10)
	n.SetTotal(4)

	start, end, showTop, showBottom := n.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)
	assert.False(t, showTop)
	assert.False(t, showBottom)
}

func TestNavigatorJumpBottomShowsLastItem(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(5)
	n.SetTotal(50)

	n.JumpBottom()
	assert.Equal(t, 49, n.Selected())

	_, end, _, showBottom := n.VisibleRange()
	assert.Equal(t, 50, end)
	assert.False(t, showBottom)
}

func TestNavigatorShrinkKeepsSelectionVisible(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(10)
	n.SetTotal(30)
	n.Select(25)

	n.SetViewportHeight(4)

	start, end, _, _ := n.VisibleRange()
	assert.GreaterOrEqual(t, 25, start)
	assert.Less(t, 25, end)
}

func TestNavigatorTotalShrinkClampsSelection(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(5)
	n.SetTotal(30)
	n.JumpBottom()

	n.SetTotal(3)
	assert.Equal(t, 2, n.Selected())
	assert.Equal(t, 0, n.Offset())
}

func TestNavigatorPageMovement(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(5)
	n.SetTotal(100)

	n.PageDown()
	assert.Equal(t, 5, n.Selected())

	n.PageDown()
	assert.Equal(t, 10, n.Selected())

	n.PageUp()
	assert.Equal(t, 5, n.Selected())
}
