package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveAccents(t *testing.T) {
	assert.Equal(t, "Resume", string(RemoveAccents([]byte("Résumé"))))
	assert.Equal(t, "Plain Text", string(RemoveAccents([]byte("Plain Text"))))
	assert.Equal(t, "Creme brulee", RemoveAccentsString("Crème brûlée"))
}

func TestLine(t *testing.T) {
	assert.Equal(t, "", Line(""))
	assert.Equal(t, "", Line(" \n\t"))
	assert.Equal(t, "a\n", Line("a"))
	assert.Equal(t, "a = 1\n", Line("\na = 1\n\n"))
}
