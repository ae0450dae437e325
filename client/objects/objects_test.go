package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObject struct {
	*BaseObject
	updates *[]string
}

func (o *countingObject) Update() error {
	*o.updates = append(*o.updates, o.GetID())
	return nil
}

func TestBaseObject_AddChildSortsByZIndex(t *testing.T) {
	var updates []string
	root := NewBaseObject("root", nil)
	require.NoError(t, root.AddChild(&countingObject{BaseObject: NewBaseObject("top", &NewBaseObjectOpts{ZIndex: 30}), updates: &updates}))
	require.NoError(t, root.AddChild(&countingObject{BaseObject: NewBaseObject("bottom", &NewBaseObjectOpts{ZIndex: 10}), updates: &updates}))
	require.NoError(t, root.AddChild(&countingObject{BaseObject: NewBaseObject("middle", &NewBaseObjectOpts{ZIndex: 20}), updates: &updates}))

	assert.Error(t, root.AddChild(NewBaseObject("top", nil)))

	require.NoError(t, UpdateTree(root))
	assert.Equal(t, []string{"bottom", "middle", "top"}, updates)
}
