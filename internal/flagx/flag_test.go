package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-d", "data"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "flag with equals",
			args:    []string{"-config=alt.yaml", "-d", "data"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.yaml"},
		},
		{
			name:    "boolean style flag followed by another flag",
			args:    []string{"-v", "-d", "data"},
			allowed: []string{"-v"},
			want:    []string{"-v"},
		},
		{
			name:    "positional arguments are dropped",
			args:    []string{"repl", "-d", "data", "extra"},
			allowed: []string{"-d"},
			want:    []string{"-d", "data"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-d", "x"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "a.json", ConfigFile([]string{"-d", "x", "-c", "a.json"}))
	assert.Equal(t, "b.yaml", ConfigFile([]string{"-config=b.yaml"}))
	assert.Equal(t, "c.yml", ConfigFile([]string{"--config", "c.yml"}))
	assert.Equal(t, "", ConfigFile([]string{"-d", "x"}))
}
