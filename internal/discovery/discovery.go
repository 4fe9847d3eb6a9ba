package discovery

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"trisub/internal/config"
)

const srtExtension = ".srt"

// Pair is a matched source/translation subtitle couple plus its output path.
type Pair struct {
	BaseName   string
	SourcePath string
	TargetPath string
	OutputPath string
}

// Scanner finds subtitle pairs under the configured media directories.
type Scanner struct {
	cfg *config.Config
}

// NewScanner constructs a scanner bound to the given configuration.
func NewScanner(cfg *config.Config) *Scanner {
	return &Scanner{cfg: cfg}
}

// Scan walks every media directory and returns the pairs found, ordered by
// output path so repeated scans enumerate work deterministically. Pairs whose
// output already exists are skipped unless overwriting is enabled.
func (s *Scanner) Scan() ([]Pair, error) {
	byDir := make(map[string]*dirTracks)

	for _, root := range s.cfg.Paths.MediaDirs {
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtrees are skipped; the rest of the scan
				// still produces work.
				if entry != nil && entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if entry.IsDir() {
				return nil
			}
			name := entry.Name()
			if !strings.EqualFold(filepath.Ext(name), srtExtension) {
				return nil
			}

			dir := filepath.Dir(path)
			tracks := byDir[dir]
			if tracks == nil {
				tracks = &dirTracks{sources: map[string]string{}, targets: map[string]string{}}
				byDir[dir] = tracks
			}

			stem := strings.TrimSuffix(name, filepath.Ext(name))
			if base, ok := trimSuffix(stem, s.cfg.Tracks.SourceSuffixes); ok {
				tracks.sources[base] = path
			} else if base, ok := trimSuffix(stem, s.cfg.Tracks.TargetSuffixes); ok {
				tracks.targets[base] = path
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
	}

	var pairs []Pair
	for dir, tracks := range byDir {
		for base, sourcePath := range tracks.sources {
			targetPath, ok := tracks.targets[base]
			if !ok {
				continue
			}
			outputPath := filepath.Join(dir, base+s.cfg.Tracks.OutputSuffix+srtExtension)
			if !s.cfg.Tracks.OverwriteExisting {
				if _, err := os.Stat(outputPath); err == nil {
					continue
				}
			}
			pairs = append(pairs, Pair{
				BaseName:   base,
				SourcePath: sourcePath,
				TargetPath: targetPath,
				OutputPath: outputPath,
			})
		}
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].OutputPath < pairs[j].OutputPath })
	return pairs, nil
}

type dirTracks struct {
	sources map[string]string
	targets map[string]string
}

func trimSuffix(stem string, suffixes []string) (string, bool) {
	lower := strings.ToLower(stem)
	for _, suffix := range suffixes {
		if strings.HasSuffix(lower, suffix) && len(stem) > len(suffix) {
			return stem[:len(stem)-len(suffix)], true
		}
	}
	return "", false
}

// Fingerprint identifies a pair's current content by hashing both paths with
// their sizes and modification times. A re-timed or replaced track changes
// the fingerprint, so the queue treats it as new work.
func (p Pair) Fingerprint() (string, error) {
	hasher := sha256.New()
	for _, path := range []string{p.SourcePath, p.TargetPath} {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("fingerprint %s: %w", path, err)
		}
		fmt.Fprintf(hasher, "%s|%d|%d\n", path, info.Size(), info.ModTime().UnixNano())
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
