package store

import (
	"encoding/json"
	"testing"

	"github.com/acpilot/acpilot/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatch_Apply(t *testing.T) {
	var p Patch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"foo","enabled":false,"maxTemp":22.5,"mode":2}`), &p))
	assert.False(t, p.IsEmpty())

	r := p.Apply(rules.DefaultTemplate())
	want := rules.DefaultTemplate()
	want.Name = "foo"
	want.Enabled = false
	want.MaxTemp = 22.5
	want.Mode = rules.ModeDry
	assert.Equal(t, want, r)

	assert.True(t, Patch{}.IsEmpty())
	assert.Equal(t, rules.DefaultTemplate(), Patch{}.Apply(rules.DefaultTemplate()))
}
