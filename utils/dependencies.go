package utils

import (
	"fmt"
	"os/exec"
	"runtime"
)

// requiredTools are the external binaries the montage pipeline shells out to.
var requiredTools = []string{"ffprobe", "ffmpeg", "montage"}

// ValidateDependencies checks that ffmpeg, ffprobe and ImageMagick's montage
// are available in PATH before any work starts.
func ValidateDependencies() error {
	for _, tool := range requiredTools {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%s not found in PATH. %s", tool, installationInstructions(tool))
		}
	}
	return nil
}

// installationInstructions returns platform-specific installation instructions
func installationInstructions(tool string) string {
	pkg := "ffmpeg"
	site := "https://ffmpeg.org/download.html"
	if tool == "montage" {
		pkg = "imagemagick"
		site = "https://imagemagick.org/script/download.php"
	}

	switch runtime.GOOS {
	case "darwin":
		return fmt.Sprintf("Install with: brew install %s", pkg)
	case "linux":
		return fmt.Sprintf("Install with: apt-get install %s (Ubuntu/Debian) or yum install %s (CentOS/RHEL)", pkg, pkg)
	case "windows":
		return fmt.Sprintf("Download from %s and add to PATH", site)
	default:
		return fmt.Sprintf("Download from %s", site)
	}
}
