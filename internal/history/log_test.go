package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_RecordClearsFuture(t *testing.T) {
	l := NewLog[string](0)
	l = l.Record("a")
	l = l.Record("b")

	_, l, ok := l.Undo()
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, l.Future())

	l = l.Record("c")
	assert.Equal(t, []string{"a", "c"}, l.Past())
	assert.Empty(t, l.Future())
}

func TestLog_UndoPushesToFrontOfFuture(t *testing.T) {
	l := NewLog[string](0).Record("a").Record("b").Record("c")

	cmd, l, ok := l.Undo()
	require.True(t, ok)
	assert.Equal(t, "c", cmd)

	cmd, l, ok = l.Undo()
	require.True(t, ok)
	assert.Equal(t, "b", cmd)

	assert.Equal(t, []string{"a"}, l.Past())
	assert.Equal(t, []string{"b", "c"}, l.Future())
}

func TestLog_RedoTakesFirstFuture(t *testing.T) {
	l := NewLog[string](0).Record("a").Record("b")
	_, l, _ = l.Undo()
	_, l, _ = l.Undo()

	cmd, l, ok := l.Redo()
	require.True(t, ok)
	assert.Equal(t, "a", cmd)
	assert.Equal(t, []string{"a"}, l.Past())
	assert.Equal(t, []string{"b"}, l.Future())
}

func TestLog_EmptyStacksAreNoOps(t *testing.T) {
	l := NewLog[int](0)

	_, undone, ok := l.Undo()
	assert.False(t, ok)
	assert.Equal(t, l, undone)

	_, redone, ok := l.Redo()
	assert.False(t, ok)
	assert.Equal(t, l, redone)
}

func TestLog_LimitDropsOldest(t *testing.T) {
	l := NewLog[int](2).Record(1).Record(2).Record(3)

	assert.Equal(t, []int{2, 3}, l.Past())
	assert.Equal(t, 2, l.Limit())
}

func TestLog_NegativeLimitIsUnlimited(t *testing.T) {
	l := NewLog[int](-5)
	for i := range 100 {
		l = l.Record(i)
	}
	assert.Len(t, l.Past(), 100)
}

func TestLog_OlderValuesStayValid(t *testing.T) {
	base := NewLog[int](0).Record(1).Record(2)
	_, undone, _ := base.Undo()

	// Recording on the undone log must not overwrite base's past.
	_ = undone.Record(9)

	assert.Equal(t, []int{1, 2}, base.Past())
	assert.Empty(t, base.Future())
}

func TestLog_AccessorsReturnCopies(t *testing.T) {
	l := NewLog[int](0).Record(1)
	past := l.Past()
	past[0] = 42

	assert.Equal(t, []int{1}, l.Past())
}
