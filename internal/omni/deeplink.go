package omni

import "omnikit/internal/bridge"

// Deep links open OmniFocus focused on an entity. Built locally: no
// subprocess is needed, but ids still pass the gate so a link can never
// smuggle arbitrary text.

// TaskLink builds an omnifocus:///task/<id> deep link.
func TaskLink(id string) bridge.Outcome[string] {
	taskID, serr := bridge.ValidateID(id, "task")
	if serr != nil {
		return bridge.Fail[string](serr)
	}
	return bridge.OK("omnifocus:///task/" + string(taskID))
}

// ProjectLink builds an omnifocus:///task/<id> deep link for a project;
// OmniFocus addresses projects through their root task id.
func ProjectLink(id string) bridge.Outcome[string] {
	projectID, serr := bridge.ValidateID(id, "project")
	if serr != nil {
		return bridge.Fail[string](serr)
	}
	return bridge.OK("omnifocus:///task/" + string(projectID))
}
