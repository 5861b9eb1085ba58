package failure

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingField_Message(t *testing.T) {
	err := MissingField("petId")
	assert.Equal(t, "Bad or missing data. Missing petId field", err.Error())
	assert.Equal(t, KindMissingField, err.Kind)
}

func TestFieldTooLong_Message(t *testing.T) {
	assert.Equal(t, "Bad or missing data. Category too long", FieldTooLong("Category").Error())
}

func TestIs_MatchesRebuiltFailure(t *testing.T) {
	sentinel := New(KindNotFound, "Pet not found")
	rebuilt := New(KindNotFound, "Pet not found")
	wrapped := fmt.Errorf("load pet: %w", rebuilt)

	require.ErrorIs(t, wrapped, sentinel)
	assert.False(t, errors.Is(wrapped, New(KindNotFound, "Order not found")))
	assert.False(t, errors.Is(errors.New("Pet not found"), sentinel))
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("wrap: %w", New(KindInvalidCredentials, "Invalid username or password")))
	require.True(t, ok)
	assert.Equal(t, KindInvalidCredentials, kind)

	_, ok = KindOf(errors.New("boom"))
	assert.False(t, ok)
	assert.True(t, IsKind(New(KindEmptyFilename, "No selected file"), KindEmptyFilename))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "No file part", MessageOf(fmt.Errorf("upload: %w", New(KindMissingFilePart, "No file part"))))
	assert.Equal(t, "boom", MessageOf(errors.New("boom")))
	assert.Equal(t, "", MessageOf(nil))
}
