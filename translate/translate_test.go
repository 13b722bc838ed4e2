package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("missing input", From("missing input"))
	assert.Equal("opcode add", From("opcode %v", "add"))
	assert.Equal("address 12", From("address %d", 12))
}
