package models

import "testing"

func TestClassroom_CanEnroll(t *testing.T) {
	tests := []struct {
		name      string
		classroom Classroom
		want      bool
	}{
		{
			name:      "active with one seat left",
			classroom: Classroom{Status: ClassActive, CurrentStudents: 19, MaxStudents: 20},
			want:      true,
		},
		{
			name:      "active but full",
			classroom: Classroom{Status: ClassActive, CurrentStudents: 20, MaxStudents: 20},
			want:      false,
		},
		{
			name:      "active and empty",
			classroom: Classroom{Status: ClassActive, CurrentStudents: 0, MaxStudents: 1},
			want:      true,
		},
		{
			name:      "inactive with free seats",
			classroom: Classroom{Status: ClassInactive, CurrentStudents: 0, MaxStudents: 20},
			want:      false,
		},
		{
			name:      "completed with free seats",
			classroom: Classroom{Status: ClassCompleted, CurrentStudents: 5, MaxStudents: 20},
			want:      false,
		},
		{
			name:      "cancelled with free seats",
			classroom: Classroom{Status: ClassCancelled, CurrentStudents: 5, MaxStudents: 20},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.classroom.CanEnroll(); got != tt.want {
				t.Errorf("CanEnroll() = %v, want %v", got, tt.want)
			}
		})
	}
}
