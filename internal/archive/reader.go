// Package archive reads and writes scores in the containers MusicXML
// travels in: plain text, gzip, xz, the zipped .mxl format, and tar.gz or
// tar.xz bundles of many scores.
package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/ulikunitz/xz"

	"github.com/oxur/fermata/internal/validation"
)

// containerPath is the manifest every .mxl file carries.
const containerPath = "META-INF/container.xml"

// musicXMLMediaType marks the score rootfile in container.xml.
const musicXMLMediaType = "application/vnd.recordare.musicxml+xml"

// Entry is one score read from or written to a container.
type Entry struct {
	Name string
	Data []byte
}

// Detect opens path and identifies its container type.
func Detect(p string) (validation.FileType, error) {
	if err := validation.ValidatePath(p); err != nil {
		return validation.FileTypeUnknown, err
	}
	f, err := os.Open(p)
	if err != nil {
		return validation.FileTypeUnknown, fmt.Errorf("open score: %w", err)
	}
	defer f.Close()
	return validation.DetectFileType(f, p)
}

// ReadScore returns the MusicXML text of the single score at path,
// decompressing it as needed. limit caps the decompressed size.
func ReadScore(p string, limit int64) ([]byte, error) {
	kind, err := Detect(p)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open score: %w", err)
	}
	defer f.Close()

	switch kind {
	case validation.FileTypeMusicXML:
		return validation.ReadAllLimited(f, limit)
	case validation.FileTypeGzip:
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer gzr.Close()
		return validation.ReadAllLimited(gzr, limit)
	case validation.FileTypeXZ:
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		return validation.ReadAllLimited(xzr, limit)
	case validation.FileTypeMXL:
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("stat score: %w", err)
		}
		zr, err := zip.NewReader(f, info.Size())
		if err != nil {
			return nil, fmt.Errorf("zip reader: %w", err)
		}
		return readMXL(zr, limit)
	case validation.FileTypeTarGZ, validation.FileTypeTarXZ:
		return nil, fmt.Errorf("%s is a bundle of scores, not a single score", p)
	default:
		return nil, fmt.Errorf("%s is not a MusicXML score (%s)", p, kind)
	}
}

// readMXL extracts the score named by the container manifest. An archive
// without a manifest falls back to its first top-level MusicXML file.
func readMXL(zr *zip.Reader, limit int64) ([]byte, error) {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	var root string
	if manifest, ok := files[containerPath]; ok {
		data, err := readZipFile(manifest, limit)
		if err != nil {
			return nil, err
		}
		if root, err = rootfile(data); err != nil {
			return nil, err
		}
	} else {
		for _, f := range zr.File {
			if !strings.Contains(f.Name, "/") && isScoreName(f.Name) {
				root = f.Name
				break
			}
		}
		if root == "" {
			return nil, fmt.Errorf("mxl archive has no %s and no top-level score", containerPath)
		}
	}

	name, err := validation.ValidateEntryName(root)
	if err != nil {
		return nil, err
	}
	f, ok := files[name]
	if !ok {
		return nil, fmt.Errorf("mxl rootfile not found: %s", name)
	}
	return readZipFile(f, limit)
}

// rootfile returns the full-path of the first MusicXML rootfile in a
// container manifest.
func rootfile(manifest []byte) (string, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(manifest))
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", containerPath, err)
	}
	for _, n := range xmlquery.Find(doc, "//rootfiles/rootfile[@full-path]") {
		mediaType := n.SelectAttr("media-type")
		if mediaType == "" || mediaType == musicXMLMediaType {
			return n.SelectAttr("full-path"), nil
		}
	}
	return "", fmt.Errorf("%s names no MusicXML rootfile", containerPath)
}

func readZipFile(f *zip.File, limit int64) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()
	return validation.ReadAllLimited(rc, limit)
}

func isScoreName(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".musicxml", ".xml":
		return true
	}
	return false
}

// BundleReader wraps a tar.Reader with automatic decompression handling.
type BundleReader struct {
	*tar.Reader
	file         *os.File
	decompressor io.Closer
}

// OpenBundle opens a tar.gz or tar.xz bundle of scores.
func OpenBundle(p string) (*BundleReader, error) {
	kind, err := Detect(p)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open bundle: %w", err)
	}

	var reader io.Reader
	var decompressor io.Closer

	switch kind {
	case validation.FileTypeTarXZ:
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		reader = xzr
	case validation.FileTypeTarGZ:
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		reader = gzr
		decompressor = gzr
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported bundle format: %s", p)
	}

	return &BundleReader{
		Reader:       tar.NewReader(reader),
		file:         f,
		decompressor: decompressor,
	}, nil
}

// Close closes the bundle reader and any underlying decompressors.
func (r *BundleReader) Close() error {
	var errs []error
	if r.decompressor != nil {
		if err := r.decompressor.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := r.file.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Visitor is a callback function for iterating bundle entries.
// Return true to stop iteration, false to continue.
type Visitor func(header *tar.Header, content io.Reader) (stop bool, err error)

// Iterate walks through all entries in the bundle, calling the visitor for each.
func (r *BundleReader) Iterate(visitor Visitor) error {
	for {
		header, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read header: %w", err)
		}

		stop, err := visitor(header, r)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}

// IterateScores calls fn with every score in the bundle at path, in
// archive order. Plain MusicXML and .mxl entries are read; other files and
// directories are passed over.
func IterateScores(p string, limit int64, fn func(Entry) error) error {
	r, err := OpenBundle(p)
	if err != nil {
		return err
	}
	defer r.Close()
	return r.Iterate(func(header *tar.Header, content io.Reader) (bool, error) {
		if header.Typeflag != tar.TypeReg {
			return false, nil
		}
		name, err := validation.ValidateEntryName(header.Name)
		if err != nil {
			return true, err
		}
		switch {
		case isScoreName(name):
			data, err := validation.ReadAllLimited(content, limit)
			if err != nil {
				return true, fmt.Errorf("%s: %w", name, err)
			}
			return false, fn(Entry{Name: name, Data: data})
		case strings.EqualFold(path.Ext(name), ".mxl"):
			raw, err := validation.ReadAllLimited(content, limit)
			if err != nil {
				return true, fmt.Errorf("%s: %w", name, err)
			}
			zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
			if err != nil {
				return true, fmt.Errorf("%s: zip reader: %w", name, err)
			}
			data, err := readMXL(zr, limit)
			if err != nil {
				return true, fmt.Errorf("%s: %w", name, err)
			}
			return false, fn(Entry{Name: name, Data: data})
		}
		return false, nil
	})
}

// ReadBundle returns every score in the bundle at path.
func ReadBundle(p string, limit int64) ([]Entry, error) {
	var entries []Entry
	err := IterateScores(p, limit, func(e Entry) error {
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
