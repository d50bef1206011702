package monarch

import "testing"

func TestSessionRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadSession(); err == nil {
		t.Error("LoadSession succeeded with no saved session")
	}

	if err := SaveSession("tok-123"); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	token, err := LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("LoadSession = %q, want tok-123", token)
	}

	if err := ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if _, err := LoadSession(); err == nil {
		t.Error("LoadSession succeeded after ClearSession")
	}
	// clearing twice is fine
	if err := ClearSession(); err != nil {
		t.Errorf("second ClearSession: %v", err)
	}
}
