package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_SubstitutesArgs(t *testing.T) {
	got := Get(E00000, "User does not exist.")
	assert.Equal(t, "User does not exist.", got)
}

func TestGet_StripsLeftoverPlaceholders(t *testing.T) {
	//I00001は{0}{1}を持つが、引数なしでも残骸を出さない
	got := Get(I00001)
	assert.Equal(t, "Processing completed successfully.", got)
}

func TestGet_PartialArgs(t *testing.T) {
	got := Get(I00001, "Order:")
	assert.Equal(t, "Order: Processing completed successfully.", got)
}

func TestGet_FixedMessages(t *testing.T) {
	assert.Equal(t, "User does not exist.", Get(E11001))
	assert.Equal(t, "User already exists.", Get(E11004))
	assert.Equal(t, "Input error. Check the message of the error item.", Get(E10000))
}

func TestGet_UnescapesNewline(t *testing.T) {
	got := Get(E99999)
	assert.Equal(t, "A system error occurred.\nPlease contact your system administrator.", got)
}

func TestGet_UnknownID(t *testing.T) {
	assert.Equal(t, "No matching message.", Get("X00000"))
}
