package omni

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omnikit/internal/bridge"
)

const projectJSON = `{"id":"p1","name":"Quarterly review","note":null,"status":"active status","sequential":false,"folderId":null,"folderName":null,"taskCount":0}`

func TestCreateProjectAtRoot(t *testing.T) {
	runner := &fakeRunner{outputs: []string{projectJSON}}
	client := newTestClient(t, runner, 0)

	out := client.CreateProject(context.Background(), CreateProjectRequest{Name: "Quarterly review"})
	require.True(t, out.Success)
	assert.Equal(t, "p1", out.Data.ID)

	program := runner.lastProgram()
	assert.Contains(t, program, `make new project with properties {name:"Quarterly review"}`)
	assert.NotContains(t, program, "theFolder")
	assert.NotContains(t, program, "set sequential of newProject")
}

func TestCreateProjectInFolderSequential(t *testing.T) {
	runner := &fakeRunner{outputs: []string{projectJSON}}
	client := newTestClient(t, runner, 0)

	out := client.CreateProject(context.Background(), CreateProjectRequest{
		Name:       "Quarterly review",
		Note:       "all departments",
		FolderID:   "f1",
		Sequential: true,
	})
	require.True(t, out.Success)

	program := runner.lastProgram()
	assert.Contains(t, program, `first flattened folder whose id is "f1"`)
	assert.Contains(t, program, "tell theFolder to set newProject")
	assert.Contains(t, program, `set note of newProject to "all departments"`)
	assert.Contains(t, program, "set sequential of newProject to true")
}

func TestCreateProjectEmptyName(t *testing.T) {
	runner := &fakeRunner{}
	client := newTestClient(t, runner, 0)

	out := client.CreateProject(context.Background(), CreateProjectRequest{})
	require.False(t, out.Success)
	assert.Equal(t, bridge.ErrValidation, out.Err.Code)
	assert.Zero(t, runner.calls)
}

func TestUpdateProject(t *testing.T) {
	runner := &fakeRunner{outputs: []string{projectJSON}}
	client := newTestClient(t, runner, 0)

	seq := true
	out := client.UpdateProject(context.Background(), "p1", UpdateProjectRequest{
		Name:       strptr("Renamed"),
		Sequential: &seq,
	})
	require.True(t, out.Success)

	program := runner.lastProgram()
	assert.Contains(t, program, `first flattened project whose id is "p1"`)
	assert.Contains(t, program, `set name of theProject to "Renamed"`)
	assert.Contains(t, program, "set sequential of theProject to true")
	assert.NotContains(t, program, "set note of theProject")
}

func TestDeleteProject(t *testing.T) {
	runner := &fakeRunner{outputs: []string{`{"id":"p1","deleted":true}`}}
	client := newTestClient(t, runner, 0)

	out := client.DeleteProject(context.Background(), "p1")
	require.True(t, out.Success)
	assert.True(t, out.Data.Deleted)
	assert.Contains(t, runner.lastProgram(), "delete theProject")
}

func TestListProjects(t *testing.T) {
	runner := &fakeRunner{outputs: []string{`[` + projectJSON + `]`}}
	client := newTestClient(t, runner, 0)

	out := client.ListProjects(context.Background(), 0, 0)
	require.True(t, out.Success)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Quarterly review", out.Data[0].Name)
	assert.Contains(t, runner.lastProgram(), "flattened projects")
}
