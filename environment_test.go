package wyre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentAPIURL(t *testing.T) {
	assert.Equal(t, "https://api.testwyre.com", EnvironmentTest.APIURL())
	assert.Equal(t, "https://api.sendwyre.com", EnvironmentProduction.APIURL())
}

func TestParseEnvironment(t *testing.T) {
	cases := []struct {
		in   string
		want Environment
	}{
		{"test", EnvironmentTest},
		{"dev", EnvironmentTest},
		{"development", EnvironmentTest},
		{"TEST", EnvironmentTest},
		{"prod", EnvironmentProduction},
		{"production", EnvironmentProduction},
		{"Production", EnvironmentProduction},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			env, err := ParseEnvironment(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, env)
		})
	}
}

func TestParseEnvironmentRejectsUnknown(t *testing.T) {
	_, err := ParseEnvironment("staging")
	require.Error(t, err)

	var parseErr *EnvironmentParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "staging", parseErr.Value)
}
