package jobs

import (
	"encoding/json"
	"testing"
)

func TestEmailVerifyTaskIDIsStable(t *testing.T) {
	if emailVerifyTaskID(42) != emailVerifyTaskID(42) {
		t.Fatal("same user must map to the same task ID")
	}
	if emailVerifyTaskID(42) == emailVerifyTaskID(43) {
		t.Fatal("different users must map to different task IDs")
	}
}

func TestImageOptimizeTaskIDFollowsPath(t *testing.T) {
	a := imageOptimizeTaskID("/tmp/uploads/a.jpg")
	b := imageOptimizeTaskID("/tmp/uploads/b.jpg")
	if a == b {
		t.Fatal("different paths must map to different task IDs")
	}
	if a != imageOptimizeTaskID("/tmp/uploads/a.jpg") {
		t.Fatal("same path must map to the same task ID")
	}
}

func TestNewEmailVerifyTaskPayload(t *testing.T) {
	task, opts, err := NewEmailVerifyTask(7)
	if err != nil {
		t.Fatalf("NewEmailVerifyTask error: %v", err)
	}
	if task.Type() != TypeEmailVerify {
		t.Fatalf("unexpected task type %q", task.Type())
	}
	if len(opts) == 0 {
		t.Fatal("expected enqueue options")
	}

	var p EmailVerifyPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		t.Fatalf("payload unmarshal: %v", err)
	}
	if p.UserID != 7 {
		t.Fatalf("unexpected user id %d", p.UserID)
	}
}
