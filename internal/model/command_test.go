package model

import "testing"

func TestChatCommandNormalize(t *testing.T) {
	cmd := ChatCommand{Action: " Add_Task "}
	cmd.Normalize()
	if cmd.Action != ActionAddTask {
		t.Errorf("Normalize() action = %q, want %q", cmd.Action, ActionAddTask)
	}
}

func TestChatCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ChatCommand
		wantErr bool
	}{
		{"add_task", ChatCommand{Action: ActionAddTask, Title: "call mom"}, false},
		{"check availability", ChatCommand{Action: ActionCheckAvailabilityNow, Minutes: 45}, false},
		{"unknown action", ChatCommand{Action: "rename_task"}, true},
		{"empty action", ChatCommand{}, true},
		{"negative minutes", ChatCommand{Action: ActionCheckAvailabilityNow, Minutes: -5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
