package validation

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantError error
	}{
		{"simple path", "score.musicxml", nil},
		{"absolute path", "/home/user/scores/bach.mxl", nil},
		{"empty path", "", ErrEmptyPath},
		{"null byte", "score\x00.xml", ErrInvalidCharacter},
		{"control character", "score\x07.xml", ErrInvalidCharacter},
		{"too long", strings.Repeat("a", MaxPathLength+1), ErrPathTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantError == nil {
				if err != nil {
					t.Errorf("ValidatePath() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantError) {
				t.Errorf("ValidatePath() error = %v, want %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateEntryName(t *testing.T) {
	tests := []struct {
		name      string
		entry     string
		want      string
		wantError error
	}{
		{"root file", "score.xml", "score.xml", nil},
		{"nested file", "scores/bach/bwv1.musicxml", "scores/bach/bwv1.musicxml", nil},
		{"redundant separators", "scores//bwv1.xml", "scores/bwv1.xml", nil},
		{"dot component", "./score.xml", "score.xml", nil},
		{"inner dotdot that stays inside", "a/../score.xml", "score.xml", nil},
		{"traversal", "../etc/passwd", "", ErrPathTraversal},
		{"traversal in middle", "a/../../etc/passwd", "", ErrPathTraversal},
		{"absolute", "/etc/passwd", "", ErrPathTraversal},
		{"backslash", `scores\bwv1.xml`, "", ErrInvalidCharacter},
		{"empty", "", "", ErrEmptyPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateEntryName(tt.entry)
			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Errorf("ValidateEntryName() error = %v, want %v", err, tt.wantError)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateEntryName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidateEntryName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		wantError error
	}{
		{"valid", "score.musicxml", nil},
		{"empty", "", ErrInvalidFilename},
		{"too long", strings.Repeat("a", MaxFilenameLength+1), ErrFilenameTooLong},
		{"dot", ".", ErrInvalidFilename},
		{"dotdot", "..", ErrInvalidFilename},
		{"separator", "a/b.xml", ErrInvalidFilename},
		{"null byte", "a\x00.xml", ErrInvalidFilename},
		{"control", "a\n.xml", ErrInvalidFilename},
		{"leading hyphen", "-rf.xml", ErrInvalidFilename},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.filename)
			if tt.wantError == nil {
				if err != nil {
					t.Errorf("ValidateFilename() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantError) {
				t.Errorf("ValidateFilename() error = %v, want %v", err, tt.wantError)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
		wantErr  bool
	}{
		{"already safe", "score.xml", "score.xml", false},
		{"separators replaced", "bach/bwv1.xml", "bach_bwv1.xml", false},
		{"control removed", "score\t.xml", "score.xml", false},
		{"leading hyphens trimmed", "--score.xml", "score.xml", false},
		{"whitespace trimmed", "  score.xml  ", "score.xml", false},
		{"nothing left", "---", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFilename(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SanitizeFilename() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SanitizeFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadAllLimited(t *testing.T) {
	data, err := ReadAllLimited(strings.NewReader("12345"), 5)
	if err != nil || string(data) != "12345" {
		t.Errorf("ReadAllLimited() = %q, %v, want 12345", data, err)
	}
	if _, err := ReadAllLimited(strings.NewReader("123456"), 5); !errors.Is(err, ErrTooLarge) {
		t.Errorf("ReadAllLimited() error = %v, want ErrTooLarge", err)
	}
}

func TestDetectFileType(t *testing.T) {
	xmlDoc := []byte(`<?xml version="1.0"?><score-partwise/>`)
	tests := []struct {
		name         string
		filename     string
		content      []byte
		wantFileType FileType
		wantError    bool
	}{
		{"musicxml", "score.musicxml", xmlDoc, FileTypeMusicXML, false},
		{"xml extension", "score.xml", xmlDoc, FileTypeMusicXML, false},
		{"xml without extension", "score", xmlDoc, FileTypeMusicXML, false},
		{"xml with byte order mark", "score.xml", append([]byte{0xef, 0xbb, 0xbf}, xmlDoc...), FileTypeMusicXML, false},
		{"mxl", "score.mxl", []byte{0x50, 0x4b, 0x03, 0x04, 0x14}, FileTypeMXL, false},
		{"gzip", "score.musicxml.gz", []byte{0x1f, 0x8b, 0x08, 0x00}, FileTypeGzip, false},
		{"xz", "score.xml.xz", []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, FileTypeXZ, false},
		{"tar.gz bundle", "corpus.tar.gz", []byte{0x1f, 0x8b, 0x08, 0x00}, FileTypeTarGZ, false},
		{"tgz bundle", "corpus.tgz", []byte{0x1f, 0x8b, 0x08, 0x00}, FileTypeTarGZ, false},
		{"tar.xz bundle", "corpus.tar.xz", []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, FileTypeTarXZ, false},
		{"fermata source", "attrs.fm", []byte("(key g major)\n"), FileTypeFermata, false},
		{"mismatch", "score.mxl", []byte{0x1f, 0x8b, 0x08, 0x00}, FileTypeUnknown, true},
		{"binary", "score.bin", []byte{0x00, 0x01, 0x02, 0x03}, FileTypeUnknown, true},
		{"plain text", "notes.txt", []byte("just some words"), FileTypeUnknown, true},
		{"empty", "score.xml", nil, FileTypeUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFileType(bytes.NewReader(tt.content), tt.filename)
			if (err != nil) != tt.wantError {
				t.Fatalf("DetectFileType() error = %v, wantError %v", err, tt.wantError)
			}
			if got != tt.wantFileType {
				t.Errorf("DetectFileType() = %v, want %v", got, tt.wantFileType)
			}
		})
	}
}

type errorReader struct{}

func (errorReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestDetectFileType_ReadError(t *testing.T) {
	if _, err := DetectFileType(errorReader{}, "score.xml"); err == nil {
		t.Error("DetectFileType() succeeded on a failing reader")
	}
}

func TestIsLikelyText(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want bool
	}{
		{"ascii", []byte("hello world\n"), true},
		{"utf-8", []byte("Für Elise"), true},
		{"empty", nil, false},
		{"null byte", []byte("a\x00b"), false},
		{"mostly control", []byte{0x01, 0x02, 0x03, 'a'}, false},
	}
	for _, tt := range tests {
		if got := isLikelyText(tt.buf); got != tt.want {
			t.Errorf("isLikelyText(%q) = %v, want %v", tt.buf, got, tt.want)
		}
	}
}
