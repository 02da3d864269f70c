package ir

import "testing"

func TestHashText(t *testing.T) {
	d := HashText("")
	if d.SHA256 != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("SHA256 = %q", d.SHA256)
	}
	if d.BLAKE3 != "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262" {
		t.Errorf("BLAKE3 = %q", d.BLAKE3)
	}
	if d.String() != d.SHA256 {
		t.Errorf("String() = %q, want SHA256", d.String())
	}
	if len(d.Short()) != 12 {
		t.Errorf("Short() = %q, want 12 characters", d.Short())
	}
}

func TestHashTextDistinguishes(t *testing.T) {
	a := HashText("(score-partwise :version \"4.0\")")
	b := HashText("(score-partwise :version \"3.1\")")
	if a == b {
		t.Error("different texts produced equal digests")
	}
	if a != HashText("(score-partwise :version \"4.0\")") {
		t.Error("same text produced different digests")
	}
}
