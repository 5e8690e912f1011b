package statesman_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statesman"
)

func TestRules(t *testing.T) {
	t.Parallel()

	rules := statesman.Rules[string]{
		pending:   {confirmed, cancelled},
		confirmed: {cancelled},
	}

	t.Run("allows listed moves", func(t *testing.T) {
		t.Parallel()
		assert.True(t, rules.Allows(pending, confirmed))
		assert.True(t, rules.Allows(confirmed, cancelled))
	})

	t.Run("rejects unlisted moves", func(t *testing.T) {
		t.Parallel()
		assert.False(t, rules.Allows(confirmed, pending))
		assert.False(t, rules.Allows(cancelled, pending))
		assert.False(t, rules.Allows(pending, paid))
	})

	t.Run("allowed returns a copy", func(t *testing.T) {
		t.Parallel()
		allowed := rules.Allowed(pending)
		assert.ElementsMatch(t, []string{confirmed, cancelled}, allowed)

		allowed[0] = paid
		assert.True(t, rules.Allows(pending, confirmed))
	})

	t.Run("absent state allows nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, rules.Allowed(cancelled))
	})
}

func TestParseRules(t *testing.T) {
	t.Parallel()

	t.Run("decodes a rule table", func(t *testing.T) {
		t.Parallel()
		rules, err := statesman.ParseRules[string]([]byte(`
pending: [confirmed, cancelled]
confirmed: [cancelled]
`))
		require.NoError(t, err)
		assert.True(t, rules.Allows(pending, confirmed))
		assert.True(t, rules.Allows(pending, cancelled))
		assert.True(t, rules.Allows(confirmed, cancelled))
		assert.False(t, rules.Allows(confirmed, pending))
	})

	t.Run("invalid document", func(t *testing.T) {
		t.Parallel()
		_, err := statesman.ParseRules[string]([]byte(`pending: {not: a list}`))
		assert.Error(t, err)
	})
}

func TestDecodeRules(t *testing.T) {
	t.Parallel()

	type orderState string
	rules, err := statesman.DecodeRules[orderState](strings.NewReader(`
pending:
  - confirmed
confirmed: []
`))
	require.NoError(t, err)
	assert.True(t, rules.Allows(orderState("pending"), orderState("confirmed")))
	assert.Empty(t, rules.Allowed(orderState("confirmed")))
}
