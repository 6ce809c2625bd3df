package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenStripsMarkdown(t *testing.T) {
	in := "# Título\n\n**Conceito** importante.\n\n> 💡 Dica: `revisar`\n"
	got := flatten(in)

	assert.NotContains(t, got, "#")
	assert.NotContains(t, got, "*")
	assert.NotContains(t, got, "`")
	assert.NotContains(t, got, ">")
	assert.Contains(t, got, "Título")
	assert.Contains(t, got, "Conceito importante.")
}

func TestFlattenJoinsLines(t *testing.T) {
	got := flatten("primeira linha\n\nsegunda linha")
	assert.Equal(t, "primeira linha. segunda linha", got)
}

func TestFlattenEmpty(t *testing.T) {
	assert.Equal(t, "", flatten("  \n\n  "))
}

func TestNoopSpeaker(t *testing.T) {
	var s Speaker = noopSpeaker{}
	s.Speak("ignored")
	s.Stop()
}
