package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretsCheck(t *testing.T) {
	s, err := NewSecrets()
	require.NoError(t, err)

	assert.NoError(t, s.Check(`<div id="sponsors"><a href="https://github.com/acme"><img src="a.png"></a></div>`))

	leaky := "<p>\n<!-- token: ghp_" + "Zq4tY7bN2mK9xW3vR8sL1pD6hF0jC5gA2eT4 -->\n</p>"
	err = s.Check(leaky)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "possible secrets")

	findings := s.Scan(leaky)
	require.NotEmpty(t, findings)
	assert.Contains(t, findings[0].RuleID, "github")
}
