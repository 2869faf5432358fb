package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShareBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░ 5/10", ShareBar(5, 10, 10))
	assert.Equal(t, "░░░░░ 0/1", ShareBar(0, 0, 1))
	assert.Equal(t, "█████ 3/2", ShareBar(3, 2, 5))
}

func TestBadgeCell(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	assert.Equal(t, "[A]", BadgeCell(true))
	assert.Equal(t, "   ", BadgeCell(false))
}

func TestPanelAndStatusLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")
	origOut, origErr := stdout, stderr
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(origOut, origErr)

	Panel([]string{"Iron Man", "Hulk"})
	OK("seeded")
	Fail("boom")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, "┌──────────┐", lines[0])
	assert.Equal(t, "│ Iron Man │", lines[1])
	assert.Equal(t, "│ Hulk     │", lines[2])
	assert.Equal(t, "└──────────┘", lines[3])
	assert.Equal(t, "ok seeded", lines[4])
	assert.Equal(t, "error: boom\n", errOut.String())
}
