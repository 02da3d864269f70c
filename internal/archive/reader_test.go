package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/oxur/fermata/internal/validation"
)

const testScore = `<?xml version="1.0" encoding="UTF-8"?>
<score-partwise version="4.0"><part-list><score-part id="P1"><part-name>Piano</part-name></score-part></part-list><part id="P1"><measure number="1"/></part></score-partwise>
`

func writeFile(t *testing.T, path string, data []byte) string {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var b bytes.Buffer
	gw := gzip.NewWriter(&b)
	if _, err := gw.Write(data); err != nil {
		t.Fatalf("gzip: %v", err)
	}
	gw.Close()
	return b.Bytes()
}

func xzBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var b bytes.Buffer
	xw, err := xz.NewWriter(&b)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := xw.Write(data); err != nil {
		t.Fatalf("xz: %v", err)
	}
	xw.Close()
	return b.Bytes()
}

// zipBytes builds a zip archive with the given entries in order.
func zipBytes(t *testing.T, entries ...Entry) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			t.Fatalf("zip create: %v", err)
		}
		if _, err := w.Write(e.Data); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	zw.Close()
	return b.Bytes()
}

func containerFor(fullPath string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<container><rootfiles>
<rootfile full-path="` + fullPath + `" media-type="application/vnd.recordare.musicxml+xml"/>
</rootfiles></container>`)
}

func TestReadScore(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		file string
		data []byte
	}{
		{"plain", "score.musicxml", []byte(testScore)},
		{"gzip", "score.musicxml.gz", gzipBytes(t, []byte(testScore))},
		{"xz", "score.xml.xz", xzBytes(t, []byte(testScore))},
		{"mxl with manifest", "score.mxl", zipBytes(t,
			Entry{Name: "mimetype", Data: []byte(mxlMimetype)},
			Entry{Name: containerPath, Data: containerFor("inner/score.xml")},
			Entry{Name: "inner/score.xml", Data: []byte(testScore)},
		)},
		{"mxl without manifest", "bare.mxl", zipBytes(t,
			Entry{Name: "notes/readme.xml", Data: []byte("<readme/>")},
			Entry{Name: "score.musicxml", Data: []byte(testScore)},
		)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(dir, tt.file), tt.data)
			got, err := ReadScore(path, validation.MaxScoreSize)
			if err != nil {
				t.Fatalf("ReadScore() error = %v", err)
			}
			if string(got) != testScore {
				t.Errorf("ReadScore() = %q, want the score text", got)
			}
		})
	}
}

func TestReadScore_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		file string
		data []byte
		want string
	}{
		{"corrupted gzip", "bad.gz", []byte{0x1f, 0x8b, 0x00, 0x00}, "gzip"},
		{"corrupted xz", "bad.xz", []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00, 0x00}, "xz"},
		{"mxl rootfile missing", "gone.mxl", zipBytes(t,
			Entry{Name: containerPath, Data: containerFor("missing.xml")},
		), "rootfile not found"},
		{"mxl traversal", "evil.mxl", zipBytes(t,
			Entry{Name: containerPath, Data: containerFor("../../etc/passwd")},
		), "path traversal"},
		{"mxl without score", "empty.mxl", zipBytes(t,
			Entry{Name: "image.png", Data: []byte("png")},
		), "no top-level score"},
		{"bundle", "corpus.tar.gz", gzipBytes(t, []byte("tar")), "bundle"},
		{"fermata source", "attrs.fm", []byte("(key c)"), "not a MusicXML score"},
		{"too large", "big.musicxml", []byte(testScore + strings.Repeat(" ", 100)), "size limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(dir, tt.file), tt.data)
			limit := int64(validation.MaxScoreSize)
			if tt.name == "too large" {
				limit = int64(len(testScore))
			}
			_, err := ReadScore(path, limit)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ReadScore() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}

	if _, err := ReadScore(filepath.Join(dir, "nope.musicxml"), 10); err == nil {
		t.Error("ReadScore() of a missing file succeeded")
	}
}

func createTestBundle(t *testing.T, path string, compress func(*testing.T, []byte) []byte) string {
	t.Helper()
	var b bytes.Buffer
	tw := tar.NewWriter(&b)
	add := func(h *tar.Header, data []byte) {
		h.Size = int64(len(data))
		if err := tw.WriteHeader(h); err != nil {
			t.Fatalf("write header: %v", err)
		}
		if _, err := tw.Write(data); err != nil {
			t.Fatalf("write content: %v", err)
		}
	}
	add(&tar.Header{Name: "corpus/", Mode: 0755, Typeflag: tar.TypeDir}, nil)
	add(&tar.Header{Name: "corpus/a.musicxml", Mode: 0644, Typeflag: tar.TypeReg}, []byte(testScore))
	add(&tar.Header{Name: "corpus/README.txt", Mode: 0644, Typeflag: tar.TypeReg}, []byte("hello"))
	add(&tar.Header{Name: "corpus/b.mxl", Mode: 0644, Typeflag: tar.TypeReg}, zipBytes(t,
		Entry{Name: containerPath, Data: containerFor("b.xml")},
		Entry{Name: "b.xml", Data: []byte(testScore)},
	))
	tw.Close()
	return writeFile(t, path, compress(t, b.Bytes()))
}

func TestIterateScores(t *testing.T) {
	dir := t.TempDir()
	for _, path := range []string{
		createTestBundle(t, filepath.Join(dir, "corpus.tar.gz"), gzipBytes),
		createTestBundle(t, filepath.Join(dir, "corpus.tar.xz"), xzBytes),
	} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			entries, err := ReadBundle(path, validation.MaxScoreSize)
			if err != nil {
				t.Fatalf("ReadBundle() error = %v", err)
			}
			var names []string
			for _, e := range entries {
				names = append(names, e.Name)
				if string(e.Data) != testScore {
					t.Errorf("%s: data = %q, want the score text", e.Name, e.Data)
				}
			}
			if got := strings.Join(names, ","); got != "corpus/a.musicxml,corpus/b.mxl" {
				t.Errorf("entries = %s, want corpus/a.musicxml,corpus/b.mxl", got)
			}
		})
	}
}

func TestIterateScores_ErrorInVisitor(t *testing.T) {
	path := createTestBundle(t, filepath.Join(t.TempDir(), "corpus.tar.gz"), gzipBytes)
	stop := errors.New("stop")
	calls := 0
	err := IterateScores(path, validation.MaxScoreSize, func(Entry) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("IterateScores() error = %v, want the visitor's error", err)
	}
	if calls != 1 {
		t.Errorf("visitor called %d times, want 1", calls)
	}
}

func TestBundleReaderIterate_StopEarly(t *testing.T) {
	path := createTestBundle(t, filepath.Join(t.TempDir(), "corpus.tar.gz"), gzipBytes)
	r, err := OpenBundle(path)
	if err != nil {
		t.Fatalf("OpenBundle() error = %v", err)
	}
	defer r.Close()

	count := 0
	err = r.Iterate(func(_ *tar.Header, _ io.Reader) (bool, error) {
		count++
		return count == 2, nil
	})
	if err != nil {
		t.Fatalf("Iterate() error = %v", err)
	}
	if count != 2 {
		t.Errorf("visited %d entries, want 2", count)
	}
}

func TestOpenBundle_Errors(t *testing.T) {
	dir := t.TempDir()
	plain := writeFile(t, filepath.Join(dir, "score.musicxml"), []byte(testScore))
	if _, err := OpenBundle(plain); err == nil {
		t.Error("OpenBundle() of a plain score succeeded")
	}
	corrupt := writeFile(t, filepath.Join(dir, "bad.tar.gz"), []byte{0x1f, 0x8b, 0x00})
	if _, err := OpenBundle(corrupt); err == nil {
		t.Error("OpenBundle() of a corrupted gzip succeeded")
	}
	if _, err := OpenBundle(filepath.Join(dir, "missing.tar.gz")); err == nil {
		t.Error("OpenBundle() of a missing file succeeded")
	}
}

func TestIterateScores_Traversal(t *testing.T) {
	var b bytes.Buffer
	tw := tar.NewWriter(&b)
	data := []byte(testScore)
	tw.WriteHeader(&tar.Header{Name: "../evil.musicxml", Mode: 0644, Size: int64(len(data)), Typeflag: tar.TypeReg})
	tw.Write(data)
	tw.Close()
	path := writeFile(t, filepath.Join(t.TempDir(), "evil.tar.gz"), gzipBytes(t, b.Bytes()))

	err := IterateScores(path, validation.MaxScoreSize, func(Entry) error { return nil })
	if !errors.Is(err, validation.ErrPathTraversal) && !errors.Is(err, tar.ErrInsecurePath) {
		t.Errorf("IterateScores() error = %v, want ErrPathTraversal", err)
	}
}
