package locale

import (
	"context"
	"testing"
)

func TestLocaleContextRoundTrip(t *testing.T) {
	t.Run("set then get", func(t *testing.T) {
		ctx := SetLocaleToContext(context.Background(), EN)
		if got := GetLang(ctx); got != EN {
			t.Errorf("mismatch: got %q, want %q", got, EN)
		}
	})

	t.Run("invalid lang falls back to default", func(t *testing.T) {
		ctx := SetLocaleToContext(context.Background(), "klingon")
		if got := GetLang(ctx); got != DefaultLang {
			t.Errorf("mismatch: got %q, want %q", got, DefaultLang)
		}
	})

	t.Run("unset context returns default", func(t *testing.T) {
		if got := GetLang(context.Background()); got != DefaultLang {
			t.Errorf("mismatch: got %q, want %q", got, DefaultLang)
		}
	})
}

func TestParseLang(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"en", EN},
		{"  English ", EN},
		{"VIETNAMESE", VI},
		{"ja", JA},
		{"fr", DefaultLang},
		{"", DefaultLang},
	}
	for _, c := range cases {
		if got := ParseLang(c.in); got != c.want {
			t.Errorf("ParseLang(%q) mismatch: got %q, want %q", c.in, got, c.want)
		}
	}
}
