package assets

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// ProbeDuration reads the container duration of a local media file in
// seconds using ffprobe.
func ProbeDuration(ctx context.Context, path string) (float64, error) {
	out, err := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	return parseProbeOutput(out)
}

func parseProbeOutput(out []byte) (float64, error) {
	s := string(bytes.TrimSpace(out))
	if s == "" {
		return 0, fmt.Errorf("ffprobe returned no duration")
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %f", d)
	}
	return d, nil
}
