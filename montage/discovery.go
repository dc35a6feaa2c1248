package montage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// videoExtensions are the file types picked up when scanning directories.
// Explicitly named files bypass this filter; the external tools reject
// anything they cannot decode.
var videoExtensions = map[string]bool{
	".avi":   true,
	".flv":   true,
	".mkv":   true,
	".mng":   true,
	".mov":   true,
	".movie": true,
	".mp4":   true,
	".mpe":   true,
	".mpeg":  true,
	".mpg":   true,
	".mpv":   true,
	".ogv":   true,
	".ts":    true,
	".wmv":   true,
}

// IsVideoFile checks if the given file extension is one of the known video
// file extensions.
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path)) // handle upper case extensions
	return videoExtensions[ext]
}

// FindVideoFiles resolves command line paths into a sorted, de-duplicated
// list of video files. Directories expand to the video files they contain,
// immediate children only unless recursive is set. Files given explicitly
// are taken as-is. A path that does not exist fails the whole resolution.
func FindVideoFiles(paths []string, recursive bool) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !fi.IsDir() {
			add(path)
			continue
		}

		found, err := scanDirectory(path, recursive)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	sort.Strings(files)
	return files, nil
}

// scanDirectory collects the video files under a directory, skipping
// anything without a known video extension and empty files.
func scanDirectory(directory string, recursive bool) ([]string, error) {
	var files []string

	if recursive {
		err := filepath.WalkDir(directory, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if isUsableVideo(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", directory, err)
		}
		return files, nil
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", directory, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(directory, entry.Name())
		if isUsableVideo(path) {
			files = append(files, path)
		}
	}
	return files, nil
}

// isUsableVideo reports whether a scanned path is worth probing: known
// extension and not empty.
func isUsableVideo(path string) bool {
	if !IsVideoFile(path) {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Size() > 0
}
