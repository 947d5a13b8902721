package provider

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_ValidInput(t *testing.T) {
	website := "https://netflix.com"
	p, err := NewProvider("Netflix", "streaming", &website)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID())
	assert.Equal(t, "Netflix", p.Name())
	assert.Equal(t, "streaming", p.Category())
	require.NotNil(t, p.Website())
	assert.Equal(t, website, *p.Website())
}

func TestNewProvider_RequiresNameAndCategory(t *testing.T) {
	_, err := NewProvider("", "streaming", nil)
	assert.Error(t, err)

	_, err = NewProvider("Netflix", "", nil)
	assert.Error(t, err)
}

func TestReconstructProvider_RejectsNilID(t *testing.T) {
	_, err := ReconstructProvider(uuid.Nil, "Netflix", "streaming", nil, time.Now(), time.Now())
	assert.Error(t, err)
}

func TestProvider_UpdateWebsite(t *testing.T) {
	p, err := NewProvider("Netflix", "streaming", nil)
	require.NoError(t, err)
	require.Nil(t, p.Website())

	website := "https://netflix.com"
	p.UpdateWebsite(&website)

	require.NotNil(t, p.Website())
	assert.Equal(t, website, *p.Website())
}

func TestProvider_EqualsByIdentity(t *testing.T) {
	a, err := NewProvider("Netflix", "streaming", nil)
	require.NoError(t, err)
	b, err := NewProvider("Netflix", "streaming", nil)
	require.NoError(t, err)

	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b), "same attributes but different identity")
	assert.False(t, a.Equals(nil))
}
