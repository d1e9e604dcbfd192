package learner

import "testing"

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{"valid", Profile{Name: "Zara", Age: 5, LearningLevel: "beginner"}, false},
		{"valid without level", Profile{Name: "Ali", Age: 3}, false},
		{"empty name", Profile{Name: "  ", Age: 5}, true},
		{"too young", Profile{Name: "Zara", Age: 2}, true},
		{"too old", Profile{Name: "Zara", Age: 9}, true},
		{"bad level", Profile{Name: "Zara", Age: 5, LearningLevel: "expert"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKnownSubject(t *testing.T) {
	for _, s := range Subjects {
		if !KnownSubject(s) {
			t.Errorf("KnownSubject(%q) = false, want true", s)
		}
	}
	if KnownSubject("geology") {
		t.Error("KnownSubject(\"geology\") = true, want false")
	}
}
