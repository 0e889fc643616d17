package cmd

import (
	"testing"

	"github.com/MeKo-Tech/swatchgen/internal/pipeline"
)

func TestBuildSweepTasks(t *testing.T) {
	tests := []struct {
		name      string
		hueStep   int
		withHSL   bool
		force     bool
		wantCount int
	}{
		{
			name:      "default step",
			hueStep:   30,
			wantCount: 12,
		},
		{
			name:      "default step with hsl",
			hueStep:   30,
			withHSL:   true,
			wantCount: 24,
		},
		{
			name:      "quarter wheel",
			hueStep:   90,
			wantCount: 4,
		},
		{
			name:      "full wheel in one step",
			hueStep:   360,
			wantCount: 1,
		},
		{
			name:      "step not dividing the wheel",
			hueStep:   7,
			wantCount: 52,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := buildSweepTasks(tt.hueStep, tt.withHSL, tt.force)
			if len(tasks) != tt.wantCount {
				t.Errorf("buildSweepTasks(%d, %v, %v) returned %d tasks, want %d",
					tt.hueStep, tt.withHSL, tt.force, len(tasks), tt.wantCount)
			}
		})
	}
}

func TestBuildSweepTasksJobs(t *testing.T) {
	tasks := buildSweepTasks(120, true, true)
	if len(tasks) != 6 {
		t.Fatalf("expected 6 tasks, got %d", len(tasks))
	}

	wantNames := []string{"palette0", "hsl0", "palette120", "hsl120", "palette240", "hsl240"}
	for i, task := range tasks {
		if got := task.Job.Name(); got != wantNames[i] {
			t.Errorf("task %d name = %q, want %q", i, got, wantNames[i])
		}
		if !task.Force {
			t.Errorf("task %d force = false, want true", i)
		}
	}

	if tasks[0].Job.Kind != pipeline.KindPalette {
		t.Errorf("task 0 kind = %q, want %q", tasks[0].Job.Kind, pipeline.KindPalette)
	}
	if tasks[1].Job.Kind != pipeline.KindHSL {
		t.Errorf("task 1 kind = %q, want %q", tasks[1].Job.Kind, pipeline.KindHSL)
	}
	if tasks[2].Job.Hue != 1200 {
		t.Errorf("task 2 hue = %d tenths, want 1200", tasks[2].Job.Hue)
	}
}
