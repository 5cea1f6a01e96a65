package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptWithoutColor(t *testing.T) {
	SetColorEnabled(false)
	assert.Equal(t, "> ", Prompt("> "))
}

func TestPromptWithColor(t *testing.T) {
	SetColorEnabled(true)
	t.Cleanup(func() { SetColorEnabled(false) })
	assert.Equal(t, "\001\033[32m\002> \001\033[0m\002", Prompt("> "))
}

func TestPrinters(t *testing.T) {
	SetColorEnabled(false)
	var buf bytes.Buffer
	echo, notice := CreateColoredPrinters(&buf)
	echo("hello")
	notice("careful")
	assert.Equal(t, "hello\ncareful\n", buf.String())
}

func TestPrintLogo(t *testing.T) {
	SetColorEnabled(false)
	var buf bytes.Buffer
	PrintLogo(&buf, "Words")
	assert.Contains(t, buf.String(), "Words")
}
