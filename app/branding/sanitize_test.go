package branding

import "testing"

func TestValidateHexColor(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"#ABC", "#aabbcc", true},
		{"#aabbcc", "#aabbcc", true},
		{"AABBCC", "#aabbcc", true},
		{"1e7", "#11ee77", true},
		{" #0F172A ", "#0f172a", true},
		{"red", "", false},
		{"javascript:alert(1)", "", false},
		{"#abcd", "", false},
		{"#gggggg", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ValidateHexColor(c.input)
		if got != c.want || ok != c.ok {
			t.Errorf("ValidateHexColor(%q) = (%q, %v), want (%q, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestValidateLogoURL(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"https://cdn.example.com/logo.png", "https://cdn.example.com/logo.png", true},
		{"/logo.png", "/logo.png", true},
		{"./assets/logo.png", "./assets/logo.png", true},
		{"http://cdn.example.com/logo.png", "", false},
		{"data:text/html,<script>alert(1)</script>", "", false},
		{"DATA:text/html,x", "", false},
		{"javascript:alert(1)", "", false},
		{"vbscript:msgbox", "", false},
		{"file:///etc/passwd", "", false},
		{"about:blank", "", false},
		{"blob:https://example.com/x", "", false},
		{"//evil.com/x.png", "", false},
		{"/static/../../etc/passwd", "", false},
		{"logo.png", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ValidateLogoURL(c.input)
		if got != c.want || ok != c.ok {
			t.Errorf("ValidateLogoURL(%q) = (%q, %v), want (%q, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestHoverColor(t *testing.T) {
	got, ok := HoverColor("#ABC")
	if !ok || got != "rgba(170, 187, 204, 0.87)" {
		t.Fatalf("HoverColor(#ABC) = (%q, %v)", got, ok)
	}

	got, ok = HoverColor("0f172a")
	if !ok || got != "rgba(15, 23, 42, 0.87)" {
		t.Fatalf("HoverColor(0f172a) = (%q, %v)", got, ok)
	}

	if _, ok := HoverColor("red"); ok {
		t.Fatal("expected invalid color to be rejected")
	}
}
