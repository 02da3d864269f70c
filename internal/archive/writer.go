package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/oxur/fermata/internal/validation"
)

// mxlMimetype is the content of the mimetype entry that opens an .mxl file.
const mxlMimetype = "application/vnd.recordare.musicxml"

// bundleTime is the modification time stamped on bundle and .mxl entries so
// that equal scores give byte-identical archives.
var bundleTime = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// WriteScore writes MusicXML text to path in the container its name asks
// for: .mxl, .gz, .xz, or plain text for anything else. Parent directories
// are created.
func WriteScore(p string, data []byte) error {
	if err := validation.ValidatePath(p); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	outFile, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("failed to create score file: %w", err)
	}
	if err := writeScoreTo(outFile, p, data); err != nil {
		outFile.Close()
		return err
	}
	return outFile.Close()
}

func writeScoreTo(w io.Writer, p string, data []byte) error {
	lower := strings.ToLower(p)
	switch {
	case strings.HasSuffix(lower, ".mxl"):
		root, err := RootfileName(p)
		if err != nil {
			return err
		}
		return WriteMXL(w, root, data)
	case strings.HasSuffix(lower, ".gz"):
		gw := gzip.NewWriter(w)
		if _, err := gw.Write(data); err != nil {
			return fmt.Errorf("gzip write: %w", err)
		}
		return gw.Close()
	case strings.HasSuffix(lower, ".xz"):
		xw, err := xz.NewWriter(w)
		if err != nil {
			return fmt.Errorf("xz writer: %w", err)
		}
		if _, err := xw.Write(data); err != nil {
			return fmt.Errorf("xz write: %w", err)
		}
		return xw.Close()
	default:
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write score: %w", err)
		}
		return nil
	}
}

// WriteMXL writes a compressed MusicXML archive holding one score stored
// under root.
func WriteMXL(w io.Writer, root string, data []byte) error {
	name, err := validation.ValidateEntryName(root)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(w)

	// The mimetype entry comes first and is stored uncompressed.
	mw, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store, Modified: bundleTime})
	if err != nil {
		return fmt.Errorf("zip mimetype: %w", err)
	}
	if _, err := io.WriteString(mw, mxlMimetype); err != nil {
		return fmt.Errorf("zip mimetype: %w", err)
	}

	manifest := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<container>
  <rootfiles>
    <rootfile full-path=%q media-type=%q/>
  </rootfiles>
</container>
`, name, musicXMLMediaType)
	entries := []Entry{{Name: containerPath, Data: []byte(manifest)}, {Name: name, Data: data}}
	for _, e := range entries {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: zip.Deflate, Modified: bundleTime})
		if err != nil {
			return fmt.Errorf("zip %s: %w", e.Name, err)
		}
		if _, err := fw.Write(e.Data); err != nil {
			return fmt.Errorf("zip %s: %w", e.Name, err)
		}
	}
	return zw.Close()
}

// WriteBundle writes scores into a tar.gz or tar.xz bundle at path, in the
// order given.
func WriteBundle(p string, entries []Entry) error {
	if err := validation.ValidatePath(p); err != nil {
		return err
	}
	lower := strings.ToLower(p)
	xzBundle := strings.HasSuffix(lower, ".tar.xz") || strings.HasSuffix(lower, ".txz")
	if !xzBundle && !strings.HasSuffix(lower, ".tar.gz") && !strings.HasSuffix(lower, ".tgz") {
		return fmt.Errorf("unsupported bundle format: %s", p)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	outFile, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("failed to create bundle file: %w", err)
	}
	defer outFile.Close()

	var compressor io.WriteCloser
	if xzBundle {
		if compressor, err = xz.NewWriter(outFile); err != nil {
			return fmt.Errorf("xz writer: %w", err)
		}
	} else {
		compressor = gzip.NewWriter(outFile)
	}

	tw := tar.NewWriter(compressor)
	for _, e := range entries {
		name, err := validation.ValidateEntryName(e.Name)
		if err != nil {
			return err
		}
		header := &tar.Header{
			Name:     name,
			Mode:     0644,
			Size:     int64(len(e.Data)),
			Typeflag: tar.TypeReg,
			// Normalize timestamps for reproducibility
			ModTime: bundleTime,
		}
		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to create bundle: %w", err)
		}
		if _, err := tw.Write(e.Data); err != nil {
			return fmt.Errorf("failed to create bundle: %w", err)
		}
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to create bundle: %w", err)
	}
	if err := compressor.Close(); err != nil {
		return fmt.Errorf("failed to create bundle: %w", err)
	}
	return outFile.Close()
}
