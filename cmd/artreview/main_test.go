package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"artreview/internal/document"
	"artreview/internal/validate"
)

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"validate": false, "render": false, "schema": false, "watch": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		assert.True(t, found, "command %q not registered", name)
	}
}

func TestExitCode(t *testing.T) {
	vs := validate.Violations{{Path: []string{"step1"}, Code: validate.MissingField, Message: "m"}}
	assert.Equal(t, 1, exitCode(vs))
	assert.Equal(t, 1, exitCode(fmt.Errorf("run: %w", vs)))

	malformed := fmt.Errorf("%w: bad byte", document.ErrMalformed)
	assert.Equal(t, 2, exitCode(malformed))

	assert.Equal(t, 2, exitCode(errors.New("anything else")))
}
