package preflight

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// ArtifactProbe reports the current cached artifact snapshot.
type ArtifactProbe struct {
	Present bool
	Path    string
	Bytes   int64
	ModTime time.Time
}

// ProbeArtifact inspects the artifact location without reading the file.
func ProbeArtifact(path string) ArtifactProbe {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ArtifactProbe{Path: path}
	}
	return ArtifactProbe{
		Present: true,
		Path:    path,
		Bytes:   info.Size(),
		ModTime: info.ModTime(),
	}
}

// Detail renders a display-friendly summary for status UIs.
func (p ArtifactProbe) Detail() string {
	if !p.Present {
		return "No cached artifact"
	}
	return fmt.Sprintf("%s (%s, built %s)", p.Path, humanize.IBytes(uint64(p.Bytes)), humanize.Time(p.ModTime))
}
