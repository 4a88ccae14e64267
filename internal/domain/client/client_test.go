package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StampsIdentityAndTimestamp(t *testing.T) {
	in := Input{
		Name:        "Innovate Corp",
		Email:       "contact@innovatecorp.com",
		Phone:       "555-0101",
		ProjectType: ProjectTypeWebDesign,
		Budget:      15000,
		Status:      StatusNew,
	}

	before := time.Now().UTC()
	c := New(in)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, in.Name, c.Name)
	assert.Equal(t, in.Status, c.Status)

	created, err := time.Parse(time.RFC3339, c.CreatedAt)
	require.NoError(t, err)
	assert.False(t, created.Before(before.Truncate(time.Second)))
	assert.False(t, created.After(time.Now().UTC().Add(time.Second)))
}

func TestNew_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		c := New(Input{})
		assert.False(t, seen[c.ID])
		seen[c.ID] = true
	}
}

func TestValidProjectType(t *testing.T) {
	assert.True(t, ValidProjectType("Web Design"))
	assert.True(t, ValidProjectType("App Development"))
	assert.False(t, ValidProjectType("web design"))
	assert.False(t, ValidProjectType("Consulting"))
	assert.False(t, ValidProjectType(""))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus("New"))
	assert.True(t, ValidStatus("In Progress"))
	assert.True(t, ValidStatus("Completed"))
	assert.False(t, ValidStatus("Archived"))
	assert.False(t, ValidStatus(""))
}
