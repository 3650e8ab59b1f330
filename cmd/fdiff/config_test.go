package main

import "testing"

func TestInvalidConfig(t *testing.T) {
	tcs := []struct {
		name string
		args []string
	}{
		{
			name: "format",
			args: []string{"--format", "xml", "a", "b"},
		},
		{
			name: "color",
			args: []string{"--color", "rainbow", "a", "b"},
		},
		{
			name: "backend",
			args: []string{"--backend", "hg", "a", "b"},
		},
		{
			name: "verbose-quiet",
			args: []string{"-v", "-q", "a", "b"},
		},
		{
			name: "exclude-set",
			args: []string{"-x", "nope", "a", "b"},
		},
		{
			name: "unknown-flag",
			args: []string{"--nope", "a", "b"},
		},
		{
			name: "too-few-args",
			args: []string{"a"},
		},
		{
			name: "too-many-args",
			args: []string{"a", "b", ".", "d"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Logf("args: %q", tc.args)
			if _, _, err := callFdiff(t, tc.args...); err == nil {
				t.Fatal("expected args to be invalid")
			} else {
				t.Log(err)
			}
		})
	}
}
